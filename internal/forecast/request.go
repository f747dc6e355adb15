package forecast

import "slices"

// Coordinates is the mandatory location of a forecast request. The values are
// sent as given, without range checks.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// options is the list state shared by both builder stages.
type options struct {
	settings []Setting
	hourly   []Hourly
	daily    []Daily
	pressure []PressureVariable
}

// appendCopy appends items without writing into list's spare capacity, so
// builders derived from the same parent never see each other's entries.
func appendCopy[T any](list []T, items []T) []T {
	if len(items) == 0 {
		return list
	}
	return append(slices.Clip(list), items...)
}

// Request is a forecast request that has no coordinates yet. It cannot be
// serialized; call Coord to obtain a ReadyRequest.
type Request struct {
	opts options
}

// New returns an empty Request.
func New() Request {
	return Request{}
}

// Coord sets the location and moves the request into the ready stage.
func (r Request) Coord(latitude, longitude float64) ReadyRequest {
	return ReadyRequest{
		coords: Coordinates{Latitude: latitude, Longitude: longitude},
		opts:   r.opts,
	}
}

// Settings appends settings in argument order.
func (r Request) Settings(items ...Setting) Request {
	r.opts.settings = appendCopy(r.opts.settings, items)
	return r
}

// Hourly appends hourly variables in argument order.
func (r Request) Hourly(items ...Hourly) Request {
	r.opts.hourly = appendCopy(r.opts.hourly, items)
	return r
}

// Daily appends daily variables in argument order.
func (r Request) Daily(items ...Daily) Request {
	r.opts.daily = appendCopy(r.opts.daily, items)
	return r
}

// PressureVars appends pressure-level variables in argument order.
func (r Request) PressureVars(items ...PressureVariable) Request {
	r.opts.pressure = appendCopy(r.opts.pressure, items)
	return r
}

// ReadyRequest is a forecast request with coordinates. Only this stage can be
// turned into a URL, and it has no way back to the coordinate-less stage.
type ReadyRequest struct {
	coords Coordinates
	opts   options
}

func (r ReadyRequest) Settings(items ...Setting) ReadyRequest {
	r.opts.settings = appendCopy(r.opts.settings, items)
	return r
}

func (r ReadyRequest) Hourly(items ...Hourly) ReadyRequest {
	r.opts.hourly = appendCopy(r.opts.hourly, items)
	return r
}

func (r ReadyRequest) Daily(items ...Daily) ReadyRequest {
	r.opts.daily = appendCopy(r.opts.daily, items)
	return r
}

func (r ReadyRequest) PressureVars(items ...PressureVariable) ReadyRequest {
	r.opts.pressure = appendCopy(r.opts.pressure, items)
	return r
}
