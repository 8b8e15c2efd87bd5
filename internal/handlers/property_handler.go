package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homez-ar/api/internal/errors"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/remote"
	"github.com/homez-ar/api/internal/search"
	"github.com/homez-ar/api/internal/weburl"
)

// PropertyHandler handles property search and detail HTTP requests.
type PropertyHandler struct {
	search search.Service
	api    remote.API
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(searchService search.Service, api remote.API) *PropertyHandler {
	return &PropertyHandler{
		search: searchService,
		api:    api,
	}
}

// SearchResponse wraps one assembled result page together with the filter
// that produced it, echoed back so the client can rehydrate its controls.
type SearchResponse struct {
	search.Result
	Filter gin.H `json:"filter,omitempty"`
}

// BrowseResponse is the search response for a pretty-URL listing page,
// carrying the human-readable page title derived from the slug.
type BrowseResponse struct {
	search.Result
	Title string `json:"title"`
}

// Search handles GET /api/v1/properties.
// Filters arrive as the same query parameters the frontend keeps in its
// address bar; unknown parameters are ignored.
func (h *PropertyHandler) Search(c *gin.Context) {
	log := middleware.GetLogger(c)

	query := c.Request.URL.Query()
	filter := weburl.DecodeFilter(query)
	page := parsePage(query.Get("pagina"))

	if log != nil {
		log.Info("Processing property search", map[string]interface{}{
			"page":     page,
			"location": filter.Location,
		})
	}

	result := h.search.Search(c.Request.Context(), page, filter)

	response := SearchResponse{Result: result}
	if !filter.IsZero() {
		echoed := gin.H{}
		for key, vals := range weburl.EncodeFilter(filter) {
			echoed[key] = vals[0]
		}
		response.Filter = echoed
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	log := middleware.GetLogger(c)
	id := c.Param("id")

	property, err := h.api.FetchProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, remote.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.UpstreamFailure(c, "Failed to fetch property", err)
		return
	}

	if log != nil {
		log.Debug("Fetched property detail", map[string]interface{}{
			"property_id": id,
		})
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// Browse handles GET /api/v1/browse/*slug.
// The slug is a pretty listing URL such as departamentos-en-venta-en-palermo;
// slugs outside the known grammar are a 404 so crawlers drop them.
func (h *PropertyHandler) Browse(c *gin.Context) {
	log := middleware.GetLogger(c)

	raw := strings.Trim(c.Param("slug"), "/")
	segments := strings.Split(raw, "/")

	parsed, ok := weburl.ParseSlug(segments)
	if !ok {
		apierrors.NotFound(c, "Page not found")
		return
	}

	page := parsePage(c.Query("pagina"))

	if log != nil {
		log.Info("Processing browse request", map[string]interface{}{
			"slug": raw,
			"page": page,
		})
	}

	result := h.search.Search(c.Request.Context(), page, parsed.Filter())

	c.JSON(http.StatusOK, BrowseResponse{
		Result: result,
		Title:  parsed.DisplayTitle,
	})
}

// parsePage reads the pagina parameter, defaulting to 1 on anything that is
// not a positive integer.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
