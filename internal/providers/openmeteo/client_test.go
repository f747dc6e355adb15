package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"openmeteo-url/internal/forecast"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForecastClient_Fetch(t *testing.T) {
	var gotQuery, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":50.1,"longitude":50.1,"hourly":{"time":[]}}`))
	}))
	defer server.Close()

	client := NewForecastClient(testLogger())
	client.SetBaseURL(server.URL + "/v1/forecast/")

	url := forecast.New().
		Coord(50.1, 50.1).
		Settings(forecast.Timezone(forecast.ExplicitTimezone("Europe", "London"))).
		Hourly(forecast.HourlyRain, forecast.HourlyCape).
		PressureVars(forecast.PressureDewpoint(50)).
		Build()

	body, err := client.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotPath != "/v1/forecast" {
		t.Errorf("path = %q, want %q", gotPath, "/v1/forecast")
	}
	wantQuery := "latitude=50.1&longitude=50.1&timezone=Europe%2FLondon&hourly=,rain,cape&dewpoint_50hPa"
	if gotQuery != wantQuery {
		t.Errorf("query = %q, want %q", gotQuery, wantQuery)
	}
	if string(body) != `{"latitude":50.1,"longitude":50.1,"hourly":{"time":[]}}` {
		t.Errorf("body = %s", body)
	}
}

func TestForecastClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{
			name:       "bad request",
			status:     http.StatusBadRequest,
			body:       `{"error":true,"reason":"Cannot initialize WeatherVariable from invalid String value"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       "boom",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   "<html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewForecastClient(testLogger())
			client.SetBaseURL(server.URL)

			_, err := client.Fetch(context.Background(), forecast.New().Coord(1, 2).Build())
			if err == nil {
				t.Fatal("Fetch() error = nil, want error")
			}

			var apiErr *APIError
			if tt.wantStatus == 0 {
				if errors.As(err, &apiErr) {
					t.Errorf("Fetch() error = %v, did not expect *APIError", err)
				}
				return
			}
			if !errors.As(err, &apiErr) {
				t.Fatalf("Fetch() error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if apiErr.Message != tt.body {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.body)
			}
		})
	}
}

func TestForecastClient_Rebase(t *testing.T) {
	client := NewForecastClient(testLogger())
	url := forecast.BaseURL + "?latitude=1&longitude=2"

	if got := client.rebase(url); got != url {
		t.Errorf("rebase() with default base = %q, want %q", got, url)
	}

	client.SetBaseURL("http://localhost:8080/v1/forecast")
	if got, want := client.rebase(url), "http://localhost:8080/v1/forecast?latitude=1&longitude=2"; got != want {
		t.Errorf("rebase() = %q, want %q", got, want)
	}

	other := "https://example.com/v1/forecast?latitude=1"
	if got := client.rebase(other); got != other {
		t.Errorf("rebase() of foreign URL = %q, want unchanged", got)
	}
}

func TestForecastClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewForecastClient(testLogger())
	client.SetBaseURL(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, forecast.New().Coord(1, 2).Build())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestElevationClient_GetElevation(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"elevation":[2743.0]}`))
	}))
	defer server.Close()

	client := NewElevationClient(testLogger())
	client.SetBaseURL(server.URL)

	elevation, err := client.GetElevation(context.Background(), 39.11539, -107.6584)
	if err != nil {
		t.Fatalf("GetElevation() error = %v", err)
	}
	if elevation != 2743.0 {
		t.Errorf("elevation = %v, want 2743", elevation)
	}
	if want := "latitude=39.11539&longitude=-107.6584"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestElevationClient_GetElevationErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "empty list", status: http.StatusOK, body: `{"elevation":[]}`},
		{name: "malformed", status: http.StatusOK, body: `{"elevation":`},
		{name: "upstream error", status: http.StatusBadRequest, body: `{"error":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewElevationClient(testLogger())
			client.SetBaseURL(server.URL)

			if _, err := client.GetElevation(context.Background(), 1, 2); err == nil {
				t.Error("GetElevation() error = nil, want error")
			}
		})
	}
}

func TestElevationClient_UsesGivenHTTPClient(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"elevation":[1]}`))
	}))
	defer server.Close()
	defer close(release)

	client := NewElevationClientWithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}, testLogger())
	client.SetBaseURL(server.URL)

	if _, err := client.GetElevation(context.Background(), 1, 2); err == nil {
		t.Error("GetElevation() error = nil, want timeout error")
	}
}
