package forecast

import "fmt"

// TemperatureUnit selects the unit of every temperature in the response.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

var temperatureUnitNames = map[TemperatureUnit]string{
	Celsius:    "celsius",
	Fahrenheit: "fahrenheit",
}

func (u TemperatureUnit) String() string {
	if name, ok := temperatureUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("TemperatureUnit(%d)", int(u))
}

// ParseTemperatureUnit returns the unit whose identifier is name.
func ParseTemperatureUnit(name string) (TemperatureUnit, error) {
	for u, n := range temperatureUnitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, &UnknownOptionError{Category: "temperature unit", Name: name}
}

// SpeedUnit selects the unit of wind speeds.
type SpeedUnit int

const (
	Kmh SpeedUnit = iota
	Ms
	Mph
	Kn
)

var speedUnitNames = map[SpeedUnit]string{
	Kmh: "kmh",
	Ms:  "ms",
	Mph: "mph",
	Kn:  "kn",
}

func (u SpeedUnit) String() string {
	if name, ok := speedUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("SpeedUnit(%d)", int(u))
}

// ParseSpeedUnit returns the unit whose identifier is name.
func ParseSpeedUnit(name string) (SpeedUnit, error) {
	for u, n := range speedUnitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, &UnknownOptionError{Category: "windspeed unit", Name: name}
}

// PrecipitationUnit selects the unit of precipitation amounts.
type PrecipitationUnit int

const (
	Millimeters PrecipitationUnit = iota
	Inches
)

var precipitationUnitNames = map[PrecipitationUnit]string{
	Millimeters: "mm",
	Inches:      "inch",
}

func (u PrecipitationUnit) String() string {
	if name, ok := precipitationUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("PrecipitationUnit(%d)", int(u))
}

// ParsePrecipitationUnit returns the unit whose identifier is name.
func ParsePrecipitationUnit(name string) (PrecipitationUnit, error) {
	for u, n := range precipitationUnitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, &UnknownOptionError{Category: "precipitation unit", Name: name}
}

// TimeFormat selects how timestamps are encoded in the response.
type TimeFormat int

const (
	ISO8601 TimeFormat = iota
	UnixTime
)

var timeFormatNames = map[TimeFormat]string{
	ISO8601:  "iso8601",
	UnixTime: "unixtime",
}

func (f TimeFormat) String() string {
	if name, ok := timeFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TimeFormat(%d)", int(f))
}

// ParseTimeFormat returns the format whose identifier is name.
func ParseTimeFormat(name string) (TimeFormat, error) {
	for f, n := range timeFormatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, &UnknownOptionError{Category: "time format", Name: name}
}

// Cell is the grid-cell selection strategy used to answer a coordinate.
type Cell int

const (
	Land Cell = iota
	Sea
	Nearest
)

var cellNames = map[Cell]string{
	Land:    "land",
	Sea:     "sea",
	Nearest: "nearest",
}

func (c Cell) String() string {
	if name, ok := cellNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}

// ParseCell returns the cell selection whose identifier is name.
func ParseCell(name string) (Cell, error) {
	for c, n := range cellNames {
		if n == name {
			return c, nil
		}
	}
	return 0, &UnknownOptionError{Category: "cell selection", Name: name}
}
