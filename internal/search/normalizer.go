package search

import (
	"strings"

	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/remote"
)

// RemoteFilters translates the canonical filter into the remote API's
// request shape. Unset fields stay out of the payload, and a fully empty
// filter yields nil so the filters key is omitted from the request body.
//
// Resolved neighborhood/city identifiers never make it into the payload:
// the remote API is not trusted to filter by them, so they are stripped
// here and honored by the client-side location step instead.
func RemoteFilters(f models.Filter) *remote.FilterPayload {
	payload := &remote.FilterPayload{
		OperationType: f.OperationTypes,
		PropertyType:  f.PropertyTypes,
		MinPrice:      f.MinPrice,
		MaxPrice:      f.MaxPrice,
		Currency:      f.Currency,
		AmountBedroom: f.Bedrooms,
		AmountRoom:    f.Rooms,
		Location:      f.Location,
	}
	if payload.IsZero() {
		return nil
	}
	return payload
}

// FilterByLocation applies the one filtering dimension the remote API cannot
// be trusted with: free-text location matching. Properties are retained when
// their neighborhood or city name contains the location text as a
// case-insensitive substring. Without a location text this is the identity.
//
// This runs even when a resolved location identifier was set, since the
// identifier never reaches the remote API and only the text re-validates
// the results. The operation is idempotent.
func FilterByLocation(properties []models.Property, f models.Filter) []models.Property {
	if f.Location == "" {
		return properties
	}

	needle := strings.ToLower(f.Location)
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Neighborhood.Name), needle) ||
			strings.Contains(strings.ToLower(p.City.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
