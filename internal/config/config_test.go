package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"openmeteo-url/internal/forecast"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithViper(viper.New())
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want release", cfg.Server.GinMode)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if cfg.Upstream.ForecastURL != forecast.BaseURL {
		t.Errorf("Upstream.ForecastURL = %q, want %q", cfg.Upstream.ForecastURL, forecast.BaseURL)
	}
	if cfg.Upstream.ElevationSource != ElevationSourceOpenMeteo {
		t.Errorf("Upstream.ElevationSource = %q, want openmeteo", cfg.Upstream.ElevationSource)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if cfg.GetServerAddr() != ":8080" {
		t.Errorf("GetServerAddr() = %q, want :8080", cfg.GetServerAddr())
	}

	settings, err := cfg.Request.Settings()
	if err != nil {
		t.Fatalf("Request.Settings() error = %v", err)
	}
	if len(settings) != 0 {
		t.Errorf("Request.Settings() = %v, want none by default", settings)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("OPENMETEO_URL_SERVER_PORT", "9090")
	t.Setenv("OPENMETEO_URL_REQUEST_TEMPERATUREUNIT", "fahrenheit")
	t.Setenv("OPENMETEO_URL_UPSTREAM_TIMEOUT", "5s")

	cfg, err := LoadWithViper(viper.New())
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Request.TemperatureUnit != "fahrenheit" {
		t.Errorf("Request.TemperatureUnit = %q, want fahrenheit", cfg.Request.TemperatureUnit)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
}

func TestLoad_InvalidRequestDefaults(t *testing.T) {
	t.Setenv("OPENMETEO_URL_REQUEST_WINDSPEEDUNIT", "knots")

	if _, err := LoadWithViper(viper.New()); err == nil {
		t.Fatal("LoadWithViper() error = nil, want error for unknown windspeed unit")
	}
}

func TestLoad_ElevationSource(t *testing.T) {
	t.Setenv("OPENMETEO_URL_UPSTREAM_ELEVATIONSOURCE", "usgs")

	cfg, err := LoadWithViper(viper.New())
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}
	if cfg.Upstream.ElevationSource != ElevationSourceUSGS {
		t.Errorf("Upstream.ElevationSource = %q, want usgs", cfg.Upstream.ElevationSource)
	}

	t.Setenv("OPENMETEO_URL_UPSTREAM_ELEVATIONSOURCE", "srtm")
	if _, err := LoadWithViper(viper.New()); err == nil {
		t.Error("LoadWithViper() error = nil, want error for unknown elevation source")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 3000
log:
  level: debug
  format: json
request:
  temperatureUnit: fahrenheit
  windspeedUnit: mph
  precipitationUnit: inch
  timeformat: unixtime
  timezone: local
  cellSelection: land
  forecastDays: 7
  resolveElevation: true
upstream:
  forecastURL: http://localhost:8080/v1/forecast
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Request.Timezone != "local" {
		t.Errorf("Request.Timezone = %q, want local", cfg.Request.Timezone)
	}
	if !cfg.Request.ResolveElevation {
		t.Error("Request.ResolveElevation = false, want true")
	}
	if cfg.Upstream.ForecastURL != "http://localhost:8080/v1/forecast" {
		t.Errorf("Upstream.ForecastURL = %q", cfg.Upstream.ForecastURL)
	}

	settings, err := cfg.Request.Settings()
	if err != nil {
		t.Fatalf("Request.Settings() error = %v", err)
	}
	var got []string
	for _, s := range settings {
		got = append(got, s.String())
	}
	want := "temperature_unit=fahrenheit,windspeed_unit=mph,precipitation_unit=inch,timeformat=unixtime,cell_selection=land,forecast_days=7"
	if strings.Join(got, ",") != want {
		t.Errorf("Request.Settings() = %v, want %v", strings.Join(got, ","), want)
	}
}

func TestRequestConfig_ForecastDaysOverflow(t *testing.T) {
	r := RequestConfig{ForecastDays: 300}
	if _, err := r.Settings(); err == nil {
		t.Error("Settings() error = nil, want error")
	}
}

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		logDebug   bool
		wantPrefix string
	}{
		{name: "json debug", level: "debug", format: "json", logDebug: true, wantPrefix: "{"},
		{name: "text info hides debug", level: "info", format: "text", logDebug: false, wantPrefix: "time="},
		{name: "unknown level falls back to info", level: "verbose", format: "text", logDebug: false, wantPrefix: "time="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			logger := cfg.NewLoggerTo(&buf)

			logger.Debug("debug message")
			if got := strings.Contains(buf.String(), "debug message"); got != tt.logDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.logDebug)
			}

			buf.Reset()
			logger.Info("info message")
			if !strings.HasPrefix(buf.String(), tt.wantPrefix) {
				t.Errorf("output %q does not start with %q", buf.String(), tt.wantPrefix)
			}
		})
	}
}
