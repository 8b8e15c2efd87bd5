package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
)

// DefaultTimeout bounds every call to the external listing API. The remote
// contract specifies no timeout of its own, so a slow upstream must not be
// able to pin a request indefinitely.
const DefaultTimeout = 10 * time.Second

// ErrPropertyNotFound is returned by FetchProperty when the external API has
// no listing for the requested identifier.
var ErrPropertyNotFound = errors.New("property not found")

// SearchRequest is one page request against the external listing API.
// Offset is zero-based and a multiple of the page size.
type SearchRequest struct {
	Offset  int
	Limit   int
	Filters *FilterPayload
}

// SearchPage is the normalized result of one remote search call.
type SearchPage struct {
	Properties []models.Property
	Total      int
}

// API is the gateway to the external property-listing service.
//
// Search never returns an error: network failures, non-2xx statuses and
// logical failure envelopes all degrade to an empty page so callers render
// an empty state instead of crashing. Failures are logged for operability.
type API interface {
	Search(ctx context.Context, req SearchRequest) SearchPage
	FetchProperty(ctx context.Context, propertyID string) (*models.Property, error)
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a gateway client for the external listing API.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// searchBody is the wire shape of the remote search endpoint.
type searchBody struct {
	Offset  int            `json:"offset"`
	Limit   int            `json:"limit"`
	Filters *FilterPayload `json:"filters,omitempty"`
}

// Search issues one POST against the remote listing endpoint and normalizes
// the response envelope. Any failure degrades to an empty page.
func (c *Client) Search(ctx context.Context, req SearchRequest) SearchPage {
	body, err := json.Marshal(searchBody{
		Offset:  req.Offset,
		Limit:   req.Limit,
		Filters: req.Filters,
	})
	if err != nil {
		c.logFailure("Failed to encode search request", err, req)
		return SearchPage{}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/properties", bytes.NewReader(body))
	if err != nil {
		c.logFailure("Failed to build search request", err, req)
		return SearchPage{}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logFailure("Property search request failed", err, req)
		return SearchPage{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logFailure("Property search returned non-success status",
			fmt.Errorf("unexpected status %d", resp.StatusCode), req)
		return SearchPage{}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logFailure("Failed to read search response", err, req)
		return SearchPage{}
	}

	page, err := parseSearchEnvelope(raw)
	if err != nil {
		c.logFailure("Failed to parse search response", err, req)
		return SearchPage{}
	}
	return page
}

// FetchProperty retrieves a single listing by id from the per-resource
// endpoint. Returns ErrPropertyNotFound when the remote has no such listing.
func (c *Client) FetchProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/property/"+propertyID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build property request: %w", err)
	}
	httpReq.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("property request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPropertyNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("property request returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Property *models.Property `json:"property"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode property response: %w", err)
	}
	if envelope.Property == nil {
		return nil, ErrPropertyNotFound
	}

	return envelope.Property, nil
}

func (c *Client) logFailure(msg string, err error, req SearchRequest) {
	if c.log == nil {
		return
	}
	c.log.Warn(msg, map[string]interface{}{
		"error":  err.Error(),
		"offset": req.Offset,
		"limit":  req.Limit,
	})
}
