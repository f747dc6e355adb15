package usgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://epqs.nationalmap.gov/v1/docs
// Sample request: https://epqs.nationalmap.gov/v1/json?x=-107.65840&y=39.0639&units=Meters
const (
	baseElevationURL = "https://epqs.nationalmap.gov/v1/json"
	defaultTimeout   = 30 * time.Second
)

// noDataValue is returned by EPQS for points outside its coverage.
const noDataValue = -1000000

// ErrNoData is returned for coordinates the elevation service has no data for.
var ErrNoData = errors.New("no elevation data for location")

// Client queries the USGS Elevation Point Query Service. Coverage is limited
// to the United States.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithHTTPClient(&http.Client{Timeout: defaultTimeout}, logger)
}

// NewClientWithHTTPClient creates a client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseElevationURL,
		logger:     logger.With("component", "usgs-elevation"),
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// GetElevationPoint returns the raw EPQS response for a single coordinate in meters.
func (c *Client) GetElevationPoint(ctx context.Context, latitude, longitude float64) (*ElevationPointAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("y", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("x", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("units", "Meters")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	c.logger.Debug("usgs request completed", "url", u.String(), "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ElevationPointAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// GetElevation returns the terrain height in meters for a single coordinate.
func (c *Client) GetElevation(ctx context.Context, latitude, longitude float64) (float64, error) {
	resp, err := c.GetElevationPoint(ctx, latitude, longitude)
	if err != nil {
		return 0, err
	}
	if resp.Value <= noDataValue {
		return 0, ErrNoData
	}
	return resp.Value, nil
}
