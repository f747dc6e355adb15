package openmeteo

// ElevationAPIResponse is the body of the elevation endpoint. One entry is
// returned per requested coordinate.
type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
