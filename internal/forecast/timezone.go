package forecast

import "strings"

type timezoneKind uint8

const (
	timezoneAuto timezoneKind = iota
	timezoneExplicit
	timezoneNamed
)

// TimezoneMode is the value of the timezone setting: either "auto", which lets
// the upstream API pick the zone of the coordinates, or an explicit zone.
// The zero value is auto.
type TimezoneMode struct {
	kind      timezoneKind
	continent string
	country   string
}

// TimezoneAuto resolves the timezone from the requested coordinates.
func TimezoneAuto() TimezoneMode {
	return TimezoneMode{kind: timezoneAuto}
}

// ExplicitTimezone pins the response to continent/country, e.g. Europe/London.
// It always renders as continent%2Fcountry, even when a part is empty.
func ExplicitTimezone(continent, country string) TimezoneMode {
	return TimezoneMode{kind: timezoneExplicit, continent: continent, country: country}
}

// TimezoneFromName converts an IANA name such as "America/Argentina/Salta" or
// "auto". Names without a slash, like "UTC", are kept whole.
func TimezoneFromName(name string) TimezoneMode {
	if name == "auto" || name == "" {
		return TimezoneAuto()
	}
	continent, country, found := strings.Cut(name, "/")
	if !found {
		return TimezoneMode{kind: timezoneNamed, continent: name}
	}
	return ExplicitTimezone(continent, country)
}

// IsAuto reports whether the mode defers to the upstream API.
func (tz TimezoneMode) IsAuto() bool {
	return tz.kind == timezoneAuto
}

// Name returns the unescaped zone name ("auto" for TimezoneAuto).
func (tz TimezoneMode) Name() string {
	switch tz.kind {
	case timezoneExplicit:
		return tz.continent + "/" + tz.country
	case timezoneNamed:
		return tz.continent
	default:
		return "auto"
	}
}

// String returns the query value; the separating slash is sent as %2F.
func (tz TimezoneMode) String() string {
	return strings.ReplaceAll(tz.Name(), "/", "%2F")
}
