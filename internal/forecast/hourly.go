package forecast

import "fmt"

// Hourly is a weather variable requested as an hourly time series.
type Hourly int

const (
	HourlyTemperature2m Hourly = iota
	HourlyRelativeHumidity2m
	HourlyDewpoint2m
	HourlyApparentTemperature
	HourlyPressureMSL
	HourlySurfacePressure
	HourlyCloudcover
	HourlyCloudcoverLow
	HourlyCloudcoverMid
	HourlyCloudcoverHigh
	HourlyWindspeed10m
	HourlyWindspeed80m
	HourlyWindspeed120m
	HourlyWindspeed180m
	HourlyWinddirection10m
	HourlyWinddirection80m
	HourlyWinddirection120m
	HourlyWinddirection180m
	HourlyWindgusts10m
	HourlyShortwaveRadiation
	HourlyDirectRadiation
	HourlyDirectNormalIrradiance
	HourlyDiffuseRadiation
	HourlyVaporPressureDeficit
	HourlyCape
	HourlyEvapotranspiration
	HourlyET0FAOEvapotranspiration
	HourlyPrecipitation
	HourlySnowfall
	HourlyPrecipitationProbability
	HourlyRain
	HourlyShowers
	HourlyWeathercode
	HourlySnowDepth
	HourlyFreezinglevelHeight
	HourlyVisibility
	HourlySoilTemperature0cm
	HourlySoilTemperature6cm
	HourlySoilTemperature18cm
	HourlySoilTemperature54cm
	HourlySoilMoisture0To1cm
	HourlySoilMoisture1To3cm
	HourlySoilMoisture3To9cm
	HourlySoilMoisture9To27cm
	HourlySoilMoisture27To81cm
	HourlyIsDay
)

// hourlyNames is indexed by Hourly and must list every constant above.
var hourlyNames = [...]string{
	HourlyTemperature2m:            "temperature_2m",
	HourlyRelativeHumidity2m:       "relative_humidity_2m",
	HourlyDewpoint2m:               "dewpoint_2m",
	HourlyApparentTemperature:      "apparent_temperature",
	HourlyPressureMSL:              "pressure_msl",
	HourlySurfacePressure:          "surface_pressure",
	HourlyCloudcover:               "cloudcover",
	HourlyCloudcoverLow:            "cloudcover_low",
	HourlyCloudcoverMid:            "cloudcover_mid",
	HourlyCloudcoverHigh:           "cloudcover_high",
	HourlyWindspeed10m:             "windspeed_10m",
	HourlyWindspeed80m:             "windspeed_80m",
	HourlyWindspeed120m:            "windspeed_120m",
	HourlyWindspeed180m:            "windspeed_180m",
	HourlyWinddirection10m:         "winddirection_10m",
	HourlyWinddirection80m:         "winddirection_80m",
	HourlyWinddirection120m:        "winddirection_120m",
	HourlyWinddirection180m:        "winddirection_180m",
	HourlyWindgusts10m:             "windgusts_10m",
	HourlyShortwaveRadiation:       "shortwave_radiation",
	HourlyDirectRadiation:          "direct_radiation",
	HourlyDirectNormalIrradiance:   "direct_normal_irradiance",
	HourlyDiffuseRadiation:         "diffuse_radiation",
	HourlyVaporPressureDeficit:     "vapor_pressure_deficit",
	HourlyCape:                     "cape",
	HourlyEvapotranspiration:       "evapotranspiration",
	HourlyET0FAOEvapotranspiration: "et0_fao_evapotranspiration",
	HourlyPrecipitation:            "precipitation",
	HourlySnowfall:                 "snowfall",
	HourlyPrecipitationProbability: "precipitation_probability",
	HourlyRain:                     "rain",
	HourlyShowers:                  "showers",
	HourlyWeathercode:              "weathercode",
	HourlySnowDepth:                "snow_depth",
	HourlyFreezinglevelHeight:      "freezinglevel_height",
	HourlyVisibility:               "visibility",
	HourlySoilTemperature0cm:       "soil_temperature_0cm",
	HourlySoilTemperature6cm:       "soil_temperature_6cm",
	HourlySoilTemperature18cm:      "soil_temperature_18cm",
	HourlySoilTemperature54cm:      "soil_temperature_54cm",
	HourlySoilMoisture0To1cm:       "soil_moisture_0_1cm",
	HourlySoilMoisture1To3cm:       "soil_moisture_1_3cm",
	HourlySoilMoisture3To9cm:       "soil_moisture_3_9cm",
	HourlySoilMoisture9To27cm:      "soil_moisture_9_27cm",
	HourlySoilMoisture27To81cm:     "soil_moisture_27_81cm",
	HourlyIsDay:                    "is_day",
}

func (h Hourly) String() string {
	if h >= 0 && int(h) < len(hourlyNames) {
		return hourlyNames[h]
	}
	return fmt.Sprintf("Hourly(%d)", int(h))
}

// AllHourly returns every hourly variable in catalog order.
func AllHourly() []Hourly {
	all := make([]Hourly, len(hourlyNames))
	for i := range hourlyNames {
		all[i] = Hourly(i)
	}
	return all
}

// ParseHourly returns the hourly variable whose identifier is name.
func ParseHourly(name string) (Hourly, error) {
	for i, n := range hourlyNames {
		if n == name {
			return Hourly(i), nil
		}
	}
	return 0, &UnknownOptionError{Category: "hourly", Name: name}
}
