// Package forecast builds request URLs for the open-meteo forecast API.
//
// A request goes through two stages. New returns a Request without
// coordinates; Coord turns it into a ReadyRequest, and only a ReadyRequest has
// Build. A URL without latitude and longitude therefore cannot be produced:
//
//	url := forecast.New().
//		Coord(50.1, 50.1).
//		Settings(forecast.Elevation(1000.1), forecast.Timezone(forecast.ExplicitTimezone("Europe", "London"))).
//		Hourly(forecast.HourlyRain, forecast.HourlyCape).
//		Daily(forecast.DailySunrise, forecast.DailySunset).
//		PressureVars(forecast.PressureDewpoint(50), forecast.PressureWindspeed(30)).
//		Build()
//
// Settings, hourly, daily and pressure-level lists may be appended in either
// stage and in any number of calls; entries keep their insertion order and
// duplicates are kept. Builders are values: every call returns a new builder
// and never changes the one it was called on.
//
// Callers that collect options at runtime use Params, whose URL method
// returns ErrMissingCoordinates instead of a URL when no coordinates were set.
//
// Option identifiers (units, variable names, setting keys) are the upstream
// vocabulary verbatim. Values are not range checked.
package forecast
