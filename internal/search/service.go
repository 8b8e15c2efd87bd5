package search

import (
	"context"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/pagination"
	"github.com/homez-ar/api/internal/remote"
)

// Result is one assembled page of search results handed back to the UI.
type Result struct {
	Properties []models.Property `json:"properties"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	PageWindow []int             `json:"pageWindow"`
}

// Service runs property searches: it normalizes the filter for the remote
// API, fetches one page through the gateway, applies the client-side
// location step and assembles pagination metadata.
type Service interface {
	Search(ctx context.Context, page int, f models.Filter) Result
}

type service struct {
	api remote.API
	log *logger.Logger
}

// NewService creates a search service backed by the given gateway.
func NewService(api remote.API, log *logger.Logger) Service {
	return &service{api: api, log: log}
}

// Search fetches and assembles the requested result page. Page numbers
// below 1 are clamped to 1, so a stale or malformed page parameter can
// never produce a negative offset.
//
// Total-count policy: when the client-side location filter ran, the remote
// total would overcount (it knows nothing of the narrowing), so the
// post-filter count of the fetched page is reported instead, which can
// under-report across multi-page location searches.
func (s *service) Search(ctx context.Context, page int, f models.Filter) Result {
	if page < 1 {
		page = 1
	}

	s.log.Debug("Searching properties", map[string]interface{}{
		"page":     page,
		"location": f.Location,
	})

	remotePage := s.api.Search(ctx, remote.SearchRequest{
		Offset:  pagination.Offset(page),
		Limit:   pagination.PageSize,
		Filters: RemoteFilters(f),
	})

	properties := remotePage.Properties
	total := remotePage.Total
	if f.Location != "" {
		properties = FilterByLocation(properties, f)
		total = len(properties)
	}

	totalPages := pagination.TotalPages(total)

	s.log.Info("Property search completed", map[string]interface{}{
		"page":        page,
		"total":       total,
		"total_pages": totalPages,
		"returned":    len(properties),
	})

	return Result{
		Properties: properties,
		Total:      total,
		Page:       page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
		PageWindow: pagination.Window(page, totalPages),
	}
}
