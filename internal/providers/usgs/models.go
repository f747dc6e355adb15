package usgs

type ElevationPointAPIResponse struct {
	Location struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"location"`
	Value      float64 `json:"value"`
	Resolution float64 `json:"resolution"`
}
