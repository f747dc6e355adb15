package query

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"openmeteo-url/internal/config"
	"openmeteo-url/internal/forecast"
	"openmeteo-url/internal/providers/openmeteo"
	"openmeteo-url/internal/providers/usgs"
	"openmeteo-url/internal/timezone"
)

// ErrInvalidInput wraps every error caused by an unparseable input value.
var ErrInvalidInput = errors.New("invalid input")

// timezoneLocal asks for the zone of the coordinates to be pinned in the URL.
const timezoneLocal = "local"

type ForecastProvider interface {
	// Fetch retrieves the raw forecast document for a built URL
	Fetch(ctx context.Context, forecastURL string) (json.RawMessage, error)
}

type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (float64, error)
}

type TimezoneResolver interface {
	Resolve(latitude, longitude float64) (forecast.TimezoneMode, error)
}

// Input is a forecast request as received from a caller that deals in
// strings. Nil pointers and empty strings mean "not given".
type Input struct {
	Latitude  *float64
	Longitude *float64

	// Variable names; entries may also be comma separated lists.
	Hourly   []string
	Daily    []string
	Pressure []string // e.g. "dewpoint_50hPa"

	Elevation         *float64
	ResolveElevation  bool
	CurrentWeather    *bool
	TemperatureUnit   string
	WindspeedUnit     string
	PrecipitationUnit string
	Timeformat        string
	Timezone          string // auto, local or an IANA name
	PastDays          *uint8
	ForecastDays      *uint8
	StartDate         string
	EndDate           string
	CellSelection     string
}

// Result is a fetched forecast together with the URL it came from.
type Result struct {
	URL  string
	Body json.RawMessage
}

type Service interface {
	// Params converts the input into forecast parameters without building a URL
	Params(ctx context.Context, in Input) (forecast.Params, error)
	// BuildURL returns the forecast URL for the input
	BuildURL(ctx context.Context, in Input) (string, error)
	// Fetch builds the URL and retrieves the forecast document
	Fetch(ctx context.Context, in Input) (*Result, error)
}

type queryService struct {
	forecastProvider  ForecastProvider
	elevationProvider ElevationProvider
	timezoneResolver  TimezoneResolver
	defaults          []forecast.Setting
	defaultTimezone   string
	resolveElevation  bool
	logger            *slog.Logger
}

// NewQueryService creates a query service backed by the open-meteo clients
// and the tzf timezone finder.
func NewQueryService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	forecastClient := openmeteo.NewForecastClientWithHTTPClient(httpClient, logger)
	if cfg.Upstream.ForecastURL != "" {
		forecastClient.SetBaseURL(cfg.Upstream.ForecastURL)
	}

	var elevationProvider ElevationProvider
	switch cfg.Upstream.ElevationSource {
	case config.ElevationSourceUSGS:
		elevationProvider = usgs.NewClientWithHTTPClient(httpClient, logger)
	default:
		elevationClient := openmeteo.NewElevationClientWithHTTPClient(httpClient, logger)
		if cfg.Upstream.ElevationURL != "" {
			elevationClient.SetBaseURL(cfg.Upstream.ElevationURL)
		}
		elevationProvider = elevationClient
	}

	return NewQueryServiceWithProviders(forecastClient, elevationProvider, tzSvc, cfg.Request, logger)
}

// NewQueryServiceWithProviders creates a query service with custom providers.
// This is useful for testing with mock providers.
func NewQueryServiceWithProviders(
	forecastProvider ForecastProvider,
	elevationProvider ElevationProvider,
	timezoneResolver TimezoneResolver,
	defaults config.RequestConfig,
	logger *slog.Logger,
) (Service, error) {
	settings, err := defaults.Settings()
	if err != nil {
		return nil, fmt.Errorf("invalid request defaults: %w", err)
	}

	return &queryService{
		forecastProvider:  forecastProvider,
		elevationProvider: elevationProvider,
		timezoneResolver:  timezoneResolver,
		defaults:          settings,
		defaultTimezone:   defaults.Timezone,
		resolveElevation:  defaults.ResolveElevation,
		logger:            logger.With("component", "query-service"),
	}, nil
}

func (s *queryService) BuildURL(ctx context.Context, in Input) (string, error) {
	params, err := s.Params(ctx, in)
	if err != nil {
		return "", err
	}

	u, err := params.URL()
	if err != nil {
		return "", err
	}

	s.logger.Debug("built forecast url", "url", u)
	return u, nil
}

func (s *queryService) Fetch(ctx context.Context, in Input) (*Result, error) {
	u, err := s.BuildURL(ctx, in)
	if err != nil {
		return nil, err
	}

	body, err := s.forecastProvider.Fetch(ctx, u)
	if err != nil {
		s.logger.Error("failed to fetch forecast", "url", u, "error", err)
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	return &Result{URL: u, Body: body}, nil
}

func (s *queryService) Params(ctx context.Context, in Input) (forecast.Params, error) {
	var params forecast.Params

	if in.Latitude != nil && in.Longitude != nil {
		params.Coordinates = &forecast.Coordinates{
			Latitude:  *in.Latitude,
			Longitude: *in.Longitude,
		}
	}

	settings, err := s.settings(ctx, in, params.Coordinates)
	if err != nil {
		return forecast.Params{}, err
	}
	params.Settings = settings

	// Configured defaults fill the keys the input left open
	for _, d := range s.defaults {
		if !params.HasSetting(d.Kind()) {
			params.Settings = append(params.Settings, d)
		}
	}
	slices.SortStableFunc(params.Settings, func(a, b forecast.Setting) int {
		return cmp.Compare(a.Kind(), b.Kind())
	})

	for _, name := range splitNames(in.Hourly) {
		h, err := forecast.ParseHourly(name)
		if err != nil {
			return forecast.Params{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		params.Hourly = append(params.Hourly, h)
	}

	for _, name := range splitNames(in.Daily) {
		d, err := forecast.ParseDaily(name)
		if err != nil {
			return forecast.Params{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		params.Daily = append(params.Daily, d)
	}

	for _, token := range splitNames(in.Pressure) {
		p, err := forecast.ParsePressureVariable(token)
		if err != nil {
			return forecast.Params{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		params.Pressure = append(params.Pressure, p)
	}

	return params, nil
}

// settings collects the settings given by the input. Timezone and elevation
// lookup also fall back to their configured defaults, since both depend on
// the request coordinates.
func (s *queryService) settings(ctx context.Context, in Input, coords *forecast.Coordinates) ([]forecast.Setting, error) {
	var settings []forecast.Setting

	switch {
	case in.Elevation != nil:
		settings = append(settings, forecast.Elevation(*in.Elevation))
	case (in.ResolveElevation || s.resolveElevation) && coords != nil:
		elevation, err := s.elevationProvider.GetElevation(ctx, coords.Latitude, coords.Longitude)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve elevation: %w", err)
		}
		settings = append(settings, forecast.Elevation(elevation))
	}

	if in.CurrentWeather != nil {
		settings = append(settings, forecast.CurrentWeather(*in.CurrentWeather))
	}

	if in.TemperatureUnit != "" {
		u, err := forecast.ParseTemperatureUnit(in.TemperatureUnit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		settings = append(settings, forecast.Temperature(u))
	}

	if in.WindspeedUnit != "" {
		u, err := forecast.ParseSpeedUnit(in.WindspeedUnit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		settings = append(settings, forecast.Windspeed(u))
	}

	if in.PrecipitationUnit != "" {
		u, err := forecast.ParsePrecipitationUnit(in.PrecipitationUnit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		settings = append(settings, forecast.Precipitation(u))
	}

	if in.Timeformat != "" {
		f, err := forecast.ParseTimeFormat(in.Timeformat)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		settings = append(settings, forecast.Timeformat(f))
	}

	if name := cmp.Or(in.Timezone, s.defaultTimezone); name != "" {
		tz, err := s.timezone(name, coords)
		if err != nil {
			return nil, err
		}
		settings = append(settings, forecast.Timezone(tz))
	}

	if in.PastDays != nil {
		settings = append(settings, forecast.PastDays(*in.PastDays))
	}
	if in.ForecastDays != nil {
		settings = append(settings, forecast.ForecastDays(*in.ForecastDays))
	}

	if in.StartDate != "" {
		settings = append(settings, forecast.StartDate(in.StartDate))
	}
	if in.EndDate != "" {
		settings = append(settings, forecast.EndDate(in.EndDate))
	}

	if in.CellSelection != "" {
		c, err := forecast.ParseCell(in.CellSelection)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		settings = append(settings, forecast.CellSelection(c))
	}

	return settings, nil
}

func (s *queryService) timezone(name string, coords *forecast.Coordinates) (forecast.TimezoneMode, error) {
	if name != timezoneLocal {
		return forecast.TimezoneFromName(name), nil
	}
	if coords == nil {
		return forecast.TimezoneMode{}, forecast.ErrMissingCoordinates
	}

	tz, err := s.timezoneResolver.Resolve(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to resolve local timezone, falling back to auto",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return forecast.TimezoneAuto(), nil
	}
	return tz, nil
}

// splitNames flattens comma separated entries and drops blanks, so
// "rain,cape", ",rain" and "rain" "cape" all give [rain cape].
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
