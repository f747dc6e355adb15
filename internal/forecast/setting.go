package forecast

import (
	"fmt"
	"strconv"
)

// SettingKey names an optional query parameter of the forecast endpoint.
type SettingKey int

const (
	KeyElevation SettingKey = iota
	KeyCurrentWeather
	KeyTemperatureUnit
	KeyWindspeedUnit
	KeyPrecipitationUnit
	KeyTimeformat
	KeyTimezone
	KeyPastDays
	KeyForecastDays
	KeyStartDate
	KeyEndDate
	KeyCellSelection
)

var settingKeyNames = [...]string{
	KeyElevation:         "elevation",
	KeyCurrentWeather:    "current_weather",
	KeyTemperatureUnit:   "temperature_unit",
	KeyWindspeedUnit:     "windspeed_unit",
	KeyPrecipitationUnit: "precipitation_unit",
	KeyTimeformat:        "timeformat",
	KeyTimezone:          "timezone",
	KeyPastDays:          "past_days",
	KeyForecastDays:      "forecast_days",
	KeyStartDate:         "start_date",
	KeyEndDate:           "end_date",
	KeyCellSelection:     "cell_selection",
}

func (k SettingKey) String() string {
	if k >= 0 && int(k) < len(settingKeyNames) {
		return settingKeyNames[k]
	}
	return fmt.Sprintf("SettingKey(%d)", int(k))
}

// Setting is one optional query parameter with its value already rendered.
// Build values with the constructors below; the zero Setting is not useful.
type Setting struct {
	key   SettingKey
	value string
}

// Key returns the query parameter name.
func (s Setting) Key() string { return s.key.String() }

// Kind returns the parameter as a SettingKey.
func (s Setting) Kind() SettingKey { return s.key }

// Value returns the rendered query parameter value.
func (s Setting) Value() string { return s.value }

func (s Setting) String() string { return s.Key() + "=" + s.value }

// Elevation overrides the terrain height used for downscaling, in meters.
func Elevation(meters float64) Setting {
	return Setting{key: KeyElevation, value: formatFloat(meters)}
}

func CurrentWeather(enabled bool) Setting {
	return Setting{key: KeyCurrentWeather, value: strconv.FormatBool(enabled)}
}

func Temperature(unit TemperatureUnit) Setting {
	return Setting{key: KeyTemperatureUnit, value: unit.String()}
}

func Windspeed(unit SpeedUnit) Setting {
	return Setting{key: KeyWindspeedUnit, value: unit.String()}
}

func Precipitation(unit PrecipitationUnit) Setting {
	return Setting{key: KeyPrecipitationUnit, value: unit.String()}
}

func Timeformat(format TimeFormat) Setting {
	return Setting{key: KeyTimeformat, value: format.String()}
}

func Timezone(tz TimezoneMode) Setting {
	return Setting{key: KeyTimezone, value: tz.String()}
}

func PastDays(days uint8) Setting {
	return Setting{key: KeyPastDays, value: strconv.FormatUint(uint64(days), 10)}
}

func ForecastDays(days uint8) Setting {
	return Setting{key: KeyForecastDays, value: strconv.FormatUint(uint64(days), 10)}
}

// StartDate and EndDate take the date as given; yyyy-mm-dd is what upstream expects.
func StartDate(date string) Setting {
	return Setting{key: KeyStartDate, value: date}
}

func EndDate(date string) Setting {
	return Setting{key: KeyEndDate, value: date}
}

func CellSelection(cell Cell) Setting {
	return Setting{key: KeyCellSelection, value: cell.String()}
}

// formatFloat renders f with the fewest digits that round-trip and no exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
