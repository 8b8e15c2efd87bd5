package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homez-ar/api/internal/locations"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/models"
)

// LocationHandler serves location autocomplete suggestions.
type LocationHandler struct {
	index *locations.Index
}

// NewLocationHandler creates a new LocationHandler instance.
func NewLocationHandler(index *locations.Index) *LocationHandler {
	return &LocationHandler{index: index}
}

// LocationsResponse is the autocomplete payload.
type LocationsResponse struct {
	Locations []models.LocationSuggestion `json:"locations"`
	Count     int                         `json:"count"`
}

// Suggest handles GET /api/v1/locations.
// Queries shorter than the minimum length return an empty list, never an
// error, so the typeahead can fire on every keystroke.
func (h *LocationHandler) Suggest(c *gin.Context) {
	log := middleware.GetLogger(c)
	query := c.Query("q")

	h.index.EnsureBuilt(c.Request.Context())
	suggestions := h.index.Search(query)

	if log != nil {
		log.Debug("Location suggestions served", map[string]interface{}{
			"query": query,
			"count": len(suggestions),
		})
	}

	c.JSON(http.StatusOK, LocationsResponse{
		Locations: suggestions,
		Count:     len(suggestions),
	})
}
