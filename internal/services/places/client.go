// Package places provides a client for the Google Places autocomplete and
// details web service.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/placesbridge/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the Google Maps web services.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	autocompletePath = "/maps/api/place/autocomplete/json"
	detailsPath      = "/maps/api/place/details/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client is a Google Places API client.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	region     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP timeout on the default client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the minimum interval between requests. Zero disables limiting.
func WithRateLimit(interval time.Duration) ClientOption {
	return func(c *Client) {
		if interval <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithLocale sets the language and region results are returned in.
func WithLocale(locale *models.Locale) ClientOption {
	return func(c *Client) {
		if locale == nil {
			return
		}
		if locale.Language != "" {
			c.language = locale.Language
		}
		if locale.Country != "" {
			c.region = locale.Country
		}
	}
}

// NewClient creates a new Places API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an error from the Places API, either an HTTP failure or
// a response whose status is not OK.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("places API error: %s: %s (endpoint: %s)", e.Status, e.Message, e.Endpoint)
	}
	return fmt.Sprintf("places API error: %s (status %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Description returns the upstream message, falling back to the status
func (e *APIError) Description() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}

// FindAutocompletePredictions runs one autocomplete search.
func (c *Client) FindAutocompletePredictions(ctx context.Context, req *models.AutocompleteRequest) ([]*models.AutocompletePrediction, error) {
	params := url.Values{}
	params.Set("input", req.Query)
	if req.SessionToken != "" {
		params.Set("sessiontoken", string(req.SessionToken))
	}
	if t := typeFilterParam(req.Filter.Type); t != "" {
		params.Set("types", t)
	}
	if components := componentsParam(req.Filter.Countries); components != "" {
		params.Set("components", components)
	}
	if req.Filter.Origin != nil {
		params.Set("origin", fmt.Sprintf("%f,%f", req.Filter.Origin.Lat, req.Filter.Origin.Lng))
	}
	c.setLocale(params)

	var apiResp AutocompleteResponse
	if err := c.get(ctx, autocompletePath, params, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Status != statusOK && apiResp.Status != statusZeroResults {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Status:     apiResp.Status,
			Message:    apiResp.ErrorMessage,
			Endpoint:   autocompletePath,
		}
	}

	predictions := make([]*models.AutocompletePrediction, 0, len(apiResp.Predictions))
	for _, p := range apiResp.Predictions {
		predictions = append(predictions, convertPrediction(p))
	}

	if c.logger != nil {
		c.logger.Debug().
			Int("results_count", len(predictions)).
			Str("status", apiResp.Status).
			Msg("Places autocomplete completed")
	}

	return predictions, nil
}

// FetchPlace retrieves the selected fields of one place.
func (c *Client) FetchPlace(ctx context.Context, req *models.FetchPlaceRequest) (*models.Place, error) {
	params := url.Values{}
	params.Set("place_id", req.PlaceID)
	params.Set("fields", fieldsParam(req.Fields))
	if req.SessionToken != "" {
		params.Set("sessiontoken", string(req.SessionToken))
	}
	c.setLocale(params)

	var apiResp DetailsResponse
	if err := c.get(ctx, detailsPath, params, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Status != statusOK {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Status:     apiResp.Status,
			Message:    apiResp.ErrorMessage,
			Endpoint:   detailsPath,
		}
	}

	result := apiResp.Result
	if result == nil {
		result = &PlaceResult{}
	}
	return convertPlace(result, apiResp.HTMLAttributions), nil
}

func (c *Client) setLocale(params url.Values) {
	if c.language != "" {
		params.Set("language", c.language)
	}
	if c.region != "" {
		params.Set("region", c.region)
	}
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait failed: %w", err)
	}

	// Redact API key in logs
	if c.logger != nil {
		c.logger.Debug().
			Str("url", fmt.Sprintf("%s%s?%s&key=***REDACTED***", c.baseURL, path, params.Encode())).
			Msg("Calling Google Places API")
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Google Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
