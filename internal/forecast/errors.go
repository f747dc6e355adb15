package forecast

import (
	"errors"
	"fmt"
)

// ErrMissingCoordinates is returned when a URL is requested from Params that
// never received a latitude/longitude pair.
var ErrMissingCoordinates = errors.New("missing coordinates")

// UnknownOptionError is returned by the Parse functions when a name is not part
// of the catalog.
type UnknownOptionError struct {
	Category string
	Name     string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown %s option '%s'", e.Category, e.Name)
}
