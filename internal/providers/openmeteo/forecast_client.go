package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"openmeteo-url/internal/forecast"
)

// ForecastClient retrieves forecast documents for URLs produced by the
// forecast package. The response is returned undecoded.
type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return NewForecastClientWithHTTPClient(&http.Client{Timeout: defaultTimeout}, logger)
}

// NewForecastClientWithHTTPClient creates a client with a custom HTTP client
func NewForecastClientWithHTTPClient(httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    forecast.BaseURL,
		logger:     logger.With("component", "openmeteo-forecast"),
	}
}

// SetBaseURL points the client at another forecast endpoint, e.g. a
// self-hosted open-meteo instance or a test server.
func (c *ForecastClient) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// Fetch retrieves the forecast for a URL built by forecast.ReadyRequest.Build.
func (c *ForecastClient) Fetch(ctx context.Context, forecastURL string) (json.RawMessage, error) {
	body, err := get(ctx, c.httpClient, c.logger, c.rebase(forecastURL))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON")
	}
	return json.RawMessage(body), nil
}

// rebase swaps the public endpoint for the configured one. URLs that do not
// start with the public endpoint are used unchanged.
func (c *ForecastClient) rebase(forecastURL string) string {
	if c.baseURL == forecast.BaseURL {
		return forecastURL
	}
	if rest, ok := strings.CutPrefix(forecastURL, forecast.BaseURL); ok {
		return c.baseURL + rest
	}
	return forecastURL
}
