package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=39.1178&longitude=-106.4452
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewElevationClient(logger *slog.Logger) *ElevationClient {
	return NewElevationClientWithHTTPClient(&http.Client{Timeout: defaultTimeout}, logger)
}

// NewElevationClientWithHTTPClient creates a client with a custom HTTP client
func NewElevationClientWithHTTPClient(httpClient *http.Client, logger *slog.Logger) *ElevationClient {
	return &ElevationClient{
		httpClient: httpClient,
		baseURL:    baseElevationURL,
		logger:     logger.With("component", "openmeteo-elevation"),
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *ElevationClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// GetElevation returns the terrain height in meters for a single coordinate.
func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	u.RawQuery = q.Encode()

	body, err := get(ctx, c.httpClient, c.logger, u.String())
	if err != nil {
		return 0, err
	}

	var apiResp ElevationAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Elevation) == 0 {
		return 0, fmt.Errorf("elevation response is empty")
	}

	return apiResp.Elevation[0], nil
}
