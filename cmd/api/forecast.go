package main

import (
	"errors"
	"net/http"

	"openmeteo-url/internal/forecast"
	"openmeteo-url/internal/providers/openmeteo"
	"openmeteo-url/internal/query"

	"github.com/gin-gonic/gin"
)

// ForecastQuery defines the query parameters shared by the forecast endpoints
type ForecastQuery struct {
	Latitude          *float64 `form:"latitude"`          // Latitude in decimal degrees
	Longitude         *float64 `form:"longitude"`         // Longitude in decimal degrees
	Hourly            []string `form:"hourly"`            // Hourly variable names
	Daily             []string `form:"daily"`             // Daily variable names
	Pressure          []string `form:"pressure"`          // Pressure-level tokens such as dewpoint_50hPa
	Elevation         *float64 `form:"elevation"`         // Elevation in meters
	ResolveElevation  bool     `form:"resolve_elevation"` // Look up the elevation when none is given
	CurrentWeather    *bool    `form:"current_weather"`
	TemperatureUnit   string   `form:"temperature_unit"`
	WindspeedUnit     string   `form:"windspeed_unit"`
	PrecipitationUnit string   `form:"precipitation_unit"`
	Timeformat        string   `form:"timeformat"`
	Timezone          string   `form:"timezone"` // auto, local or an IANA name
	PastDays          *uint8   `form:"past_days"`
	ForecastDays      *uint8   `form:"forecast_days"`
	StartDate         string   `form:"start_date"`
	EndDate           string   `form:"end_date"`
	CellSelection     string   `form:"cell_selection"`
}

func (q ForecastQuery) toInput() query.Input {
	return query.Input{
		Latitude:          q.Latitude,
		Longitude:         q.Longitude,
		Hourly:            q.Hourly,
		Daily:             q.Daily,
		Pressure:          q.Pressure,
		Elevation:         q.Elevation,
		ResolveElevation:  q.ResolveElevation,
		CurrentWeather:    q.CurrentWeather,
		TemperatureUnit:   q.TemperatureUnit,
		WindspeedUnit:     q.WindspeedUnit,
		PrecipitationUnit: q.PrecipitationUnit,
		Timeformat:        q.Timeformat,
		Timezone:          q.Timezone,
		PastDays:          q.PastDays,
		ForecastDays:      q.ForecastDays,
		StartDate:         q.StartDate,
		EndDate:           q.EndDate,
		CellSelection:     q.CellSelection,
	}
}

// ForecastURLResponse is the body of the forecast URL endpoint
type ForecastURLResponse struct {
	URL string `json:"url" example:"https://api.open-meteo.com/v1/forecast?latitude=50.1&longitude=50.1&hourly=,rain,cape"`
}

// CatalogResponse lists every identifier the forecast endpoints accept
type CatalogResponse struct {
	Hourly            []string `json:"hourly"`
	Daily             []string `json:"daily"`
	PressureMeasures  []string `json:"pressure_measures"`
	TemperatureUnits  []string `json:"temperature_units"`
	WindspeedUnits    []string `json:"windspeed_units"`
	PrecipitationUnit []string `json:"precipitation_units"`
	Timeformats       []string `json:"timeformats"`
	CellSelections    []string `json:"cell_selections"`
}

// handleGetForecastURL godoc
// @Summary Build a forecast URL
// @Description Build the open-meteo forecast URL for the given coordinates and options without calling open-meteo
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(50.1)
// @Param longitude query number true "Longitude in decimal degrees" example(50.1)
// @Param hourly query []string false "Hourly variables" collectionFormat(multi)
// @Param daily query []string false "Daily variables" collectionFormat(multi)
// @Param pressure query []string false "Pressure-level variables, e.g. dewpoint_50hPa" collectionFormat(multi)
// @Param timezone query string false "auto, local or an IANA timezone name"
// @Success 200 {object} ForecastURLResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast/url [get]
func (app *App) handleGetForecastURL(c *gin.Context) {
	var input ForecastQuery

	// Bind query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	u, err := app.queryService.BuildURL(c.Request.Context(), input.toInput())
	if err != nil {
		app.respondError(c, err, "failed to build forecast url")
		return
	}

	c.JSON(http.StatusOK, ForecastURLResponse{URL: u})
}

// handleGetForecast godoc
// @Summary Fetch a forecast
// @Description Build the open-meteo forecast URL and return the upstream JSON document unchanged. The URL is sent in the X-Forecast-URL header.
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(50.1)
// @Param longitude query number true "Longitude in decimal degrees" example(50.1)
// @Param hourly query []string false "Hourly variables" collectionFormat(multi)
// @Param daily query []string false "Daily variables" collectionFormat(multi)
// @Success 200 {object} object
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	var input ForecastQuery

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := app.queryService.Fetch(c.Request.Context(), input.toInput())
	if err != nil {
		app.respondError(c, err, "failed to fetch forecast")
		return
	}

	c.Header("X-Forecast-URL", result.URL)
	c.Data(http.StatusOK, "application/json", result.Body)
}

// handleGetCatalog godoc
// @Summary List accepted identifiers
// @Description List the variable names, pressure-level measures and units accepted by the forecast endpoints
// @Tags forecast
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func (app *App) handleGetCatalog(c *gin.Context) {
	resp := CatalogResponse{
		TemperatureUnits:  []string{forecast.Celsius.String(), forecast.Fahrenheit.String()},
		WindspeedUnits:    []string{forecast.Kmh.String(), forecast.Ms.String(), forecast.Mph.String(), forecast.Kn.String()},
		PrecipitationUnit: []string{forecast.Millimeters.String(), forecast.Inches.String()},
		Timeformats:       []string{forecast.ISO8601.String(), forecast.UnixTime.String()},
		CellSelections:    []string{forecast.Land.String(), forecast.Sea.String(), forecast.Nearest.String()},
	}
	for _, h := range forecast.AllHourly() {
		resp.Hourly = append(resp.Hourly, h.String())
	}
	for _, d := range forecast.AllDaily() {
		resp.Daily = append(resp.Daily, d.String())
	}
	for _, m := range forecast.AllPressureMeasures() {
		resp.PressureMeasures = append(resp.PressureMeasures, m.String())
	}

	c.JSON(http.StatusOK, resp)
}

// respondError maps service errors to HTTP status codes
func (app *App) respondError(c *gin.Context, err error, msg string) {
	// Validation errors from the business layer
	if errors.Is(err, query.ErrInvalidInput) || errors.Is(err, forecast.ErrMissingCoordinates) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Upstream rejected the request
	var apiErr *openmeteo.APIError
	if errors.As(err, &apiErr) {
		app.logger.Warn(msg,
			"upstream_status", apiErr.StatusCode,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
		return
	}

	// Other errors are internal server errors
	app.logger.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
