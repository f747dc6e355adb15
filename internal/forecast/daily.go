package forecast

import "fmt"

// Daily is a weather variable requested as a daily aggregate.
type Daily int

const (
	DailyTemperature2mMax Daily = iota
	DailyTemperature2mMin
	DailyApparentTemperatureMax
	DailyApparentTemperatureMin
	DailyPrecipitationSum
	DailyRainSum
	DailyShowersSum
	DailySnowfallSum
	DailyPrecipitationHours
	DailyPrecipitationProbabilityMax
	DailyPrecipitationProbabilityMin
	DailyPrecipitationProbabilityMean
	DailyWeathercode
	DailySunrise
	DailySunset
	DailyWindspeed10mMax
	DailyWindgusts10mMax
	DailyWinddirection10mDominant
	DailyShortwaveRadiationSum
	DailyET0FAOEvapotranspiration
	DailyUVIndexMax
	DailyUVIndexClearSkyMax
)

// dailyNames is indexed by Daily and must list every constant above.
var dailyNames = [...]string{
	DailyTemperature2mMax:             "temperature_2m_max",
	DailyTemperature2mMin:             "temperature_2m_min",
	DailyApparentTemperatureMax:       "apparent_temperature_max",
	DailyApparentTemperatureMin:       "apparent_temperature_min",
	DailyPrecipitationSum:             "precipitation_sum",
	DailyRainSum:                      "rain_sum",
	DailyShowersSum:                   "showers_sum",
	DailySnowfallSum:                  "snowfall_sum",
	DailyPrecipitationHours:           "precipitation_hours",
	DailyPrecipitationProbabilityMax:  "precipitation_probability_max",
	DailyPrecipitationProbabilityMin:  "precipitation_probability_min",
	DailyPrecipitationProbabilityMean: "precipitation_probability_mean",
	DailyWeathercode:                  "weathercode",
	DailySunrise:                      "sunrise",
	DailySunset:                       "sunset",
	DailyWindspeed10mMax:              "windspeed_10m_max",
	DailyWindgusts10mMax:              "windgusts_10m_max",
	DailyWinddirection10mDominant:     "winddirection_10m_dominant",
	DailyShortwaveRadiationSum:        "shortwave_radiation_sum",
	DailyET0FAOEvapotranspiration:     "et0_fao_evapotranspiration",
	DailyUVIndexMax:                   "uv_index_max",
	DailyUVIndexClearSkyMax:           "uv_index_clear_sky_max",
}

func (d Daily) String() string {
	if d >= 0 && int(d) < len(dailyNames) {
		return dailyNames[d]
	}
	return fmt.Sprintf("Daily(%d)", int(d))
}

// AllDaily returns every daily variable in catalog order.
func AllDaily() []Daily {
	all := make([]Daily, len(dailyNames))
	for i := range dailyNames {
		all[i] = Daily(i)
	}
	return all
}

// ParseDaily returns the daily variable whose identifier is name.
func ParseDaily(name string) (Daily, error) {
	for i, n := range dailyNames {
		if n == name {
			return Daily(i), nil
		}
	}
	return 0, &UnknownOptionError{Category: "daily", Name: name}
}
