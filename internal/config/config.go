package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"openmeteo-url/internal/forecast"

	"github.com/spf13/viper"
)

// Elevation lookup backends
const (
	ElevationSourceOpenMeteo = "openmeteo"
	ElevationSourceUSGS      = "usgs"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Request  RequestConfig
	Upstream UpstreamConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// RequestConfig holds the settings added to every forecast URL that does not
// set them itself. Empty values are not sent.
type RequestConfig struct {
	TemperatureUnit   string // celsius, fahrenheit
	WindspeedUnit     string // kmh, ms, mph, kn
	PrecipitationUnit string // mm, inch
	Timeformat        string // iso8601, unixtime
	Timezone          string // auto, local or an IANA name
	CellSelection     string // land, sea, nearest
	ForecastDays      int    // 0 leaves the upstream default
	ResolveElevation  bool   // look up the elevation when none is given
}

// UpstreamConfig holds the open-meteo endpoints used when fetching
type UpstreamConfig struct {
	ForecastURL     string
	ElevationURL    string
	ElevationSource string // openmeteo, usgs
	Timeout         time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return LoadWithViper(viper.New())
}

// LoadWithViper reads configuration into v, which may already carry bound
// command line flags.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	// Set config file name and paths unless an explicit file was given
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.openmeteo-url")
	}

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("request.temperatureUnit", "")
	v.SetDefault("request.windspeedUnit", "")
	v.SetDefault("request.precipitationUnit", "")
	v.SetDefault("request.timeformat", "")
	v.SetDefault("request.timezone", "")
	v.SetDefault("request.cellSelection", "")
	v.SetDefault("request.forecastDays", 0)
	v.SetDefault("request.resolveElevation", false)
	v.SetDefault("upstream.forecastURL", forecast.BaseURL)
	v.SetDefault("upstream.elevationURL", "https://api.open-meteo.com/v1/elevation")
	v.SetDefault("upstream.elevationSource", ElevationSourceOpenMeteo)
	v.SetDefault("upstream.timeout", 30*time.Second)

	// Read from environment variables, e.g. OPENMETEO_URL_SERVER_PORT
	v.SetEnvPrefix("OPENMETEO_URL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Upstream.ElevationSource {
	case ElevationSourceOpenMeteo, ElevationSourceUSGS:
	default:
		return nil, fmt.Errorf("unknown elevation source %q", cfg.Upstream.ElevationSource)
	}

	// Surface unknown unit names at startup rather than per request
	if _, err := cfg.Request.Settings(); err != nil {
		return nil, fmt.Errorf("invalid request defaults: %w", err)
	}

	return &cfg, nil
}

// Settings converts the configured defaults into forecast settings. The
// timezone is left out because "local" needs the request coordinates.
func (r RequestConfig) Settings() ([]forecast.Setting, error) {
	var settings []forecast.Setting

	if r.TemperatureUnit != "" {
		u, err := forecast.ParseTemperatureUnit(r.TemperatureUnit)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.Temperature(u))
	}
	if r.WindspeedUnit != "" {
		u, err := forecast.ParseSpeedUnit(r.WindspeedUnit)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.Windspeed(u))
	}
	if r.PrecipitationUnit != "" {
		u, err := forecast.ParsePrecipitationUnit(r.PrecipitationUnit)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.Precipitation(u))
	}
	if r.Timeformat != "" {
		f, err := forecast.ParseTimeFormat(r.Timeformat)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.Timeformat(f))
	}
	if r.CellSelection != "" {
		c, err := forecast.ParseCell(r.CellSelection)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.CellSelection(c))
	}
	if r.ForecastDays > 0 {
		if r.ForecastDays > 255 {
			return nil, fmt.Errorf("forecast days %d does not fit the setting", r.ForecastDays)
		}
		settings = append(settings, forecast.ForecastDays(uint8(r.ForecastDays)))
	}

	return settings, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger writing to stdout
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a new slog.Logger based on the configuration
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
