package openmeteo

import "fmt"

// APIError is returned when open-meteo answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("open-meteo returned status %d: %s", e.StatusCode, e.Message)
}
