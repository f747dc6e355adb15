package main

import (
	"fmt"
	"io"
	"log/slog"

	"openmeteo-url/internal/config"
	"openmeteo-url/internal/forecast"
	"openmeteo-url/internal/query"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the writers and service constructor shared by all commands
type cli struct {
	out        io.Writer
	errOut     io.Writer
	newService func(cfg *config.Config, logger *slog.Logger) (query.Service, error)
}

func newRootCmd(c *cli) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "forecast-url",
		Short: "Build an open-meteo forecast URL",
		Long: `Build an open-meteo forecast URL from coordinates and options.

Variables can be repeated or given as comma separated lists:

  forecast-url --latitude 50.1 --longitude 50.1 --hourly rain,cape --pressure dewpoint_50hPa

With --fetch the forecast is retrieved and the JSON document is printed instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runURL(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default ./config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("upstream", "", "forecast endpoint used with --fetch")
	cobra.CheckErr(v.BindPFlag("log.level", pf.Lookup("log-level")))
	cobra.CheckErr(v.BindPFlag("upstream.forecastURL", pf.Lookup("upstream")))

	f := rootCmd.Flags()
	f.Float64("latitude", 0, "latitude in decimal degrees")
	f.Float64("longitude", 0, "longitude in decimal degrees")
	f.StringSlice("hourly", nil, "hourly variables")
	f.StringSlice("daily", nil, "daily variables")
	f.StringSlice("pressure", nil, "pressure-level variables, e.g. dewpoint_50hPa")
	f.Float64("elevation", 0, "elevation in meters")
	f.Bool("resolve-elevation", false, "look up the elevation of the coordinates")
	f.Bool("current-weather", false, "include the current weather")
	f.String("temperature-unit", "", "celsius or fahrenheit")
	f.String("windspeed-unit", "", "kmh, ms, mph or kn")
	f.String("precipitation-unit", "", "mm or inch")
	f.String("timeformat", "", "iso8601 or unixtime")
	f.String("timezone", "", "auto, local or an IANA timezone name")
	f.Uint8("past-days", 0, "number of past days to include")
	f.Uint8("forecast-days", 0, "number of forecast days")
	f.String("start-date", "", "first day, yyyy-mm-dd")
	f.String("end-date", "", "last day, yyyy-mm-dd")
	f.String("cell-selection", "", "land, sea or nearest")
	f.Bool("fetch", false, "fetch the forecast and print the JSON document")

	rootCmd.AddCommand(newCatalogCmd(c))

	return rootCmd
}

func (c *cli) runURL(cmd *cobra.Command, v *viper.Viper) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := cfg.NewLoggerTo(c.errOut)

	in, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}

	svc, err := c.newService(cfg, logger)
	if err != nil {
		return err
	}

	fetch, err := cmd.Flags().GetBool("fetch")
	if err != nil {
		return err
	}

	if !fetch {
		u, err := svc.BuildURL(cmd.Context(), in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, u)
		return err
	}

	result, err := svc.Fetch(cmd.Context(), in)
	if err != nil {
		return err
	}
	logger.Info("fetched forecast", "url", result.URL)
	_, err = fmt.Fprintln(c.out, string(result.Body))
	return err
}

// inputFromFlags maps the flags onto a query input. Flags that were not set
// stay empty so configured defaults apply.
func inputFromFlags(cmd *cobra.Command) (query.Input, error) {
	f := cmd.Flags()
	var in query.Input
	var err error

	if f.Changed("latitude") != f.Changed("longitude") {
		return in, fmt.Errorf("--latitude and --longitude must be given together")
	}
	if f.Changed("latitude") {
		lat, err := f.GetFloat64("latitude")
		if err != nil {
			return in, err
		}
		lon, err := f.GetFloat64("longitude")
		if err != nil {
			return in, err
		}
		in.Latitude, in.Longitude = &lat, &lon
	}

	if in.Hourly, err = f.GetStringSlice("hourly"); err != nil {
		return in, err
	}
	if in.Daily, err = f.GetStringSlice("daily"); err != nil {
		return in, err
	}
	if in.Pressure, err = f.GetStringSlice("pressure"); err != nil {
		return in, err
	}

	if f.Changed("elevation") {
		elevation, err := f.GetFloat64("elevation")
		if err != nil {
			return in, err
		}
		in.Elevation = &elevation
	}
	if in.ResolveElevation, err = f.GetBool("resolve-elevation"); err != nil {
		return in, err
	}
	if f.Changed("current-weather") {
		current, err := f.GetBool("current-weather")
		if err != nil {
			return in, err
		}
		in.CurrentWeather = &current
	}
	if f.Changed("past-days") {
		days, err := f.GetUint8("past-days")
		if err != nil {
			return in, err
		}
		in.PastDays = &days
	}
	if f.Changed("forecast-days") {
		days, err := f.GetUint8("forecast-days")
		if err != nil {
			return in, err
		}
		in.ForecastDays = &days
	}

	strs := map[string]*string{
		"temperature-unit":   &in.TemperatureUnit,
		"windspeed-unit":     &in.WindspeedUnit,
		"precipitation-unit": &in.PrecipitationUnit,
		"timeformat":         &in.Timeformat,
		"timezone":           &in.Timezone,
		"start-date":         &in.StartDate,
		"end-date":           &in.EndDate,
		"cell-selection":     &in.CellSelection,
	}
	for name, dst := range strs {
		if *dst, err = f.GetString(name); err != nil {
			return in, err
		}
	}

	return in, nil
}

func newCatalogCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [hourly|daily|pressure]",
		Short:     "List the accepted variable names",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"hourly", "daily", "pressure"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			switch args[0] {
			case "hourly":
				for _, h := range forecast.AllHourly() {
					names = append(names, h.String())
				}
			case "daily":
				for _, d := range forecast.AllDaily() {
					names = append(names, d.String())
				}
			case "pressure":
				for _, m := range forecast.AllPressureMeasures() {
					names = append(names, m.String()+"_<level>hPa")
				}
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(c.out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
