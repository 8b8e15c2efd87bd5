// Package locations maintains the in-memory catalog of neighborhood and
// city names used by the search autocomplete. The catalog is derived from
// one bulk property fetch and cached for the process lifetime so that
// keystrokes never hit the remote API.
package locations

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/remote"
)

const (
	// bulkFetchLimit is the page size of the single catalog-building fetch.
	// One large unfiltered page captures most locations in circulation.
	bulkFetchLimit = 500

	// minQueryLength filters out single-character queries, which match far
	// too much to be useful suggestions.
	minQueryLength = 2

	// maxSuggestions caps the autocomplete result list.
	maxSuggestions = 10
)

// Index is the lazily built location catalog. Construct it with NewIndex
// and inject it where autocomplete is served; the zero value is not usable.
//
// Safe for concurrent use. The build step runs at most once per process
// lifetime: concurrent first callers serialize on the mutex and every
// caller after the first winner sees the cached catalog. Staleness within
// a process lifetime is an accepted tradeoff (no TTL, no invalidation).
type Index struct {
	api remote.API
	log *logger.Logger

	mu          sync.Mutex
	built       bool
	suggestions []models.LocationSuggestion
}

// NewIndex creates an empty location index over the given gateway.
func NewIndex(api remote.API, log *logger.Logger) *Index {
	return &Index{api: api, log: log}
}

// EnsureBuilt populates the catalog on first call and no-ops afterwards.
// Holding the lock across the bulk fetch is what guarantees the fetch runs
// once even when two callers race before the first completes.
func (ix *Index) EnsureBuilt(ctx context.Context) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.built {
		return
	}

	page := ix.api.Search(ctx, remote.SearchRequest{
		Offset: 0,
		Limit:  bulkFetchLimit,
	})

	seen := make(map[string]struct{})
	suggestions := make([]models.LocationSuggestion, 0, len(page.Properties))

	add := func(kind, name string, id int) {
		if name == "" {
			return
		}
		key := kind + ":" + name
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, models.LocationSuggestion{
			ID:   kind + ":" + strconv.Itoa(id),
			Name: name,
			Kind: kind,
		})
	}

	for _, p := range page.Properties {
		add(models.LocationKindNeighborhood, p.Neighborhood.Name, p.Neighborhood.NeighborhoodID)
		add(models.LocationKindCity, p.City.Name, p.City.CityID)
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Name < suggestions[j].Name
	})

	ix.suggestions = suggestions
	ix.built = true

	ix.log.Info("Location index built", map[string]interface{}{
		"locations":  len(suggestions),
		"properties": len(page.Properties),
	})
}

// Search returns up to ten suggestions matching the query, names starting
// with the query ranked before names merely containing it, then
// alphabetically. Queries shorter than two characters return nothing.
//
// A candidate matches when its full name contains the query as a substring,
// or when every whitespace-delimited query word is a substring of some word
// in the name — so "palermo soho" and "soho palermo" both reach
// "Palermo Soho".
func (ix *Index) Search(query string) []models.LocationSuggestion {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(normalized)) < minQueryLength {
		return nil
	}

	ix.mu.Lock()
	catalog := ix.suggestions
	ix.mu.Unlock()

	queryWords := strings.Fields(normalized)

	var prefixed, contained []models.LocationSuggestion
	for _, s := range catalog {
		name := strings.ToLower(s.Name)
		if !matches(name, normalized, queryWords) {
			continue
		}
		if strings.HasPrefix(name, normalized) {
			prefixed = append(prefixed, s)
		} else {
			contained = append(contained, s)
		}
	}

	// Catalog order is alphabetical already, so each bucket stays sorted.
	results := append(prefixed, contained...)
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}

// Reset discards the catalog so the next EnsureBuilt rebuilds it. Intended
// for tests.
func (ix *Index) Reset() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.built = false
	ix.suggestions = nil
}

func matches(name, query string, queryWords []string) bool {
	if strings.Contains(name, query) {
		return true
	}

	nameWords := strings.Fields(name)
	for _, qw := range queryWords {
		found := false
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(queryWords) > 0
}
