package forecast

import "strings"

// API Docs: https://open-meteo.com/en/docs
const BaseURL = "https://api.open-meteo.com/v1/forecast"

// Build renders the request as a forecast URL.
//
// The order of the fragments is fixed: coordinates, settings, hourly, daily,
// pressure levels. The hourly and daily lists are written as ",name" per entry,
// so the list value starts with a comma (hourly=,rain,cape). Pressure-level
// variables are bare "&dewpoint_50hPa" tokens without "=".
func (r ReadyRequest) Build() string {
	var b strings.Builder
	b.WriteString(BaseURL)
	b.WriteString("?latitude=")
	b.WriteString(formatFloat(r.coords.Latitude))
	b.WriteString("&longitude=")
	b.WriteString(formatFloat(r.coords.Longitude))

	for _, s := range r.opts.settings {
		b.WriteByte('&')
		b.WriteString(s.Key())
		b.WriteByte('=')
		b.WriteString(s.Value())
	}

	if len(r.opts.hourly) > 0 {
		b.WriteString("&hourly=")
		for _, h := range r.opts.hourly {
			b.WriteByte(',')
			b.WriteString(h.String())
		}
	}

	if len(r.opts.daily) > 0 {
		b.WriteString("&daily=")
		for _, d := range r.opts.daily {
			b.WriteByte(',')
			b.WriteString(d.String())
		}
	}

	for _, p := range r.opts.pressure {
		b.WriteByte('&')
		b.WriteString(p.String())
	}

	return b.String()
}

// String implements fmt.Stringer and returns the same URL as Build.
func (r ReadyRequest) String() string {
	return r.Build()
}
