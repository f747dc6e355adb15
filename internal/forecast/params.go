package forecast

// Params is the untyped-stage form of a request, for callers that gather the
// options at runtime (HTTP handlers, CLI flags, config files) and only learn
// late whether coordinates were supplied.
type Params struct {
	Coordinates *Coordinates
	Settings    []Setting
	Hourly      []Hourly
	Daily       []Daily
	Pressure    []PressureVariable
}

// Ready converts p into a ReadyRequest, preserving list order. It returns
// ErrMissingCoordinates when p has no coordinates.
func (p Params) Ready() (ReadyRequest, error) {
	if p.Coordinates == nil {
		return ReadyRequest{}, ErrMissingCoordinates
	}
	return New().
		Settings(p.Settings...).
		Hourly(p.Hourly...).
		Daily(p.Daily...).
		PressureVars(p.Pressure...).
		Coord(p.Coordinates.Latitude, p.Coordinates.Longitude), nil
}

// URL is Ready followed by Build.
func (p Params) URL() (string, error) {
	r, err := p.Ready()
	if err != nil {
		return "", err
	}
	return r.Build(), nil
}

// HasSetting reports whether a setting with the given key is already present.
func (p Params) HasSetting(key SettingKey) bool {
	for _, s := range p.Settings {
		if s.key == key {
			return true
		}
	}
	return false
}
