package forecast

import (
	"fmt"
	"strconv"
	"strings"
)

// PressureMeasure is a quantity that can be requested on a pressure level.
type PressureMeasure int

const (
	PressureMeasureTemperature PressureMeasure = iota
	PressureMeasureRelativeHumidity
	PressureMeasureDewpoint
	PressureMeasureCloudcover
	PressureMeasureWindspeed
	PressureMeasureWinddirection
	PressureMeasureGeopotentialHeight
)

var pressureMeasureNames = [...]string{
	PressureMeasureTemperature:        "temperature",
	PressureMeasureRelativeHumidity:   "relativehumidity",
	PressureMeasureDewpoint:           "dewpoint",
	PressureMeasureCloudcover:         "cloudcover",
	PressureMeasureWindspeed:          "windspeed",
	PressureMeasureWinddirection:      "winddirection",
	PressureMeasureGeopotentialHeight: "geopotential_height",
}

func (m PressureMeasure) String() string {
	if m >= 0 && int(m) < len(pressureMeasureNames) {
		return pressureMeasureNames[m]
	}
	return fmt.Sprintf("PressureMeasure(%d)", int(m))
}

// AllPressureMeasures returns every pressure-level measure in catalog order.
func AllPressureMeasures() []PressureMeasure {
	all := make([]PressureMeasure, len(pressureMeasureNames))
	for i := range pressureMeasureNames {
		all[i] = PressureMeasure(i)
	}
	return all
}

// PressureVariable is a measure requested at a pressure level in hPa. The
// level is not checked against the levels the upstream model provides.
type PressureVariable struct {
	Measure PressureMeasure
	Level   uint
}

func PressureTemperature(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureTemperature, Level: level}
}

func PressureRelativeHumidity(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureRelativeHumidity, Level: level}
}

func PressureDewpoint(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureDewpoint, Level: level}
}

func PressureCloudcover(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureCloudcover, Level: level}
}

func PressureWindspeed(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureWindspeed, Level: level}
}

func PressureWinddirection(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureWinddirection, Level: level}
}

func PressureGeopotentialHeight(level uint) PressureVariable {
	return PressureVariable{Measure: PressureMeasureGeopotentialHeight, Level: level}
}

// String renders the variable as the upstream token, e.g. "dewpoint_50hPa".
func (p PressureVariable) String() string {
	return p.Measure.String() + "_" + strconv.FormatUint(uint64(p.Level), 10) + "hPa"
}

// ParsePressureVariable parses a token of the form "<measure>_<level>hPa".
func ParsePressureVariable(token string) (PressureVariable, error) {
	unknown := &UnknownOptionError{Category: "pressure level", Name: token}

	body, ok := strings.CutSuffix(token, "hPa")
	if !ok {
		return PressureVariable{}, unknown
	}
	// geopotential_height contains an underscore itself, so split on the last one.
	i := strings.LastIndexByte(body, '_')
	if i <= 0 {
		return PressureVariable{}, unknown
	}
	level, err := strconv.ParseUint(body[i+1:], 10, 0)
	if err != nil {
		return PressureVariable{}, unknown
	}
	for m, name := range pressureMeasureNames {
		if name == body[:i] {
			return PressureVariable{Measure: PressureMeasure(m), Level: uint(level)}, nil
		}
	}
	return PressureVariable{}, unknown
}
