package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/homez-ar/api/internal/models"
)

// FilterPayload is the remote API's filter shape. Every field is omitted
// when empty: some deployments of the remote API treat a present-but-empty
// array differently from an absent key, so omission is the safe default.
//
// Resolved neighborhood/city identifiers are deliberately not part of this
// shape. The remote API does not reliably filter by them; they only drive
// client-side narrowing and must never reach the wire.
type FilterPayload struct {
	OperationType []string `json:"operation_type,omitempty"`
	PropertyType  []string `json:"property_type,omitempty"`
	MinPrice      string   `json:"min_price,omitempty"`
	MaxPrice      string   `json:"max_price,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	AmountBedroom []string `json:"amount_bedroom,omitempty"`
	AmountRoom    []string `json:"amount_room,omitempty"`
	Location      string   `json:"location,omitempty"`
}

// IsZero reports whether no filter field is set at all, in which case the
// filters key is omitted from the request body entirely.
func (p *FilterPayload) IsZero() bool {
	return p == nil || (len(p.OperationType) == 0 &&
		len(p.PropertyType) == 0 &&
		p.MinPrice == "" &&
		p.MaxPrice == "" &&
		p.Currency == "" &&
		len(p.AmountBedroom) == 0 &&
		len(p.AmountRoom) == 0 &&
		p.Location == "")
}

// searchEnvelope mirrors the remote response wrapper. Its key names have
// drifted across deployments, so every field here is optional.
type searchEnvelope struct {
	Status     string            `json:"status"`
	Errors     []json.RawMessage `json:"errors"`
	Count      *int              `json:"count"`
	Total      *int              `json:"total"`
	Properties []models.Property `json:"properties"`
	Data       []models.Property `json:"data"`
}

// parseSearchEnvelope normalizes the remote response body into a SearchPage.
// The property list is accepted under a "properties" key, a "data" key, or
// as a bare top-level array; the total under "count" or "total", falling
// back to the list length. A "fail" status or a non-empty errors list is a
// logical failure and yields an error.
func parseSearchEnvelope(raw []byte) (SearchPage, error) {
	trimmed := bytes.TrimSpace(raw)

	// Bare array: no envelope at all.
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var properties []models.Property
		if err := json.Unmarshal(trimmed, &properties); err != nil {
			return SearchPage{}, fmt.Errorf("invalid property array: %w", err)
		}
		return SearchPage{Properties: properties, Total: len(properties)}, nil
	}

	var env searchEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return SearchPage{}, fmt.Errorf("invalid response envelope: %w", err)
	}

	if env.Status == "fail" {
		return SearchPage{}, fmt.Errorf("remote reported failure status")
	}
	if len(env.Errors) > 0 {
		return SearchPage{}, fmt.Errorf("remote reported %d errors", len(env.Errors))
	}

	properties := env.Properties
	if properties == nil {
		properties = env.Data
	}

	total := len(properties)
	switch {
	case env.Count != nil:
		total = *env.Count
	case env.Total != nil:
		total = *env.Total
	}

	return SearchPage{Properties: properties, Total: total}, nil
}
