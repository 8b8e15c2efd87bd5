package models

import "strings"

// Location kinds recognized by the autocomplete index.
const (
	LocationKindNeighborhood = "neighborhood"
	LocationKindCity         = "city"
)

// LocationSuggestion is a cached, deduplicated location name derived from
// fetched properties, served to the autocomplete UI. The ID is a composite
// "kind:numericId" tag, e.g. "neighborhood:123".
type LocationSuggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"type"`
}

// RawID returns the numeric identifier portion of the composite ID.
func (s LocationSuggestion) RawID() string {
	if _, id, ok := strings.Cut(s.ID, ":"); ok {
		return id
	}
	return s.ID
}
