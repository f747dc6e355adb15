package timezone

import (
	"fmt"
	"sync"

	"openmeteo-url/internal/forecast"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local timezone of a coordinate
type Service interface {
	// GetTimezone returns the IANA name, e.g. "Europe/London"
	GetTimezone(latitude, longitude float64) (string, error)
	// Resolve returns the zone as an explicit forecast timezone setting value
	Resolve(latitude, longitude float64) (forecast.TimezoneMode, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the shared timezone service.
// The finder keeps its polygon data in memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// tzf takes longitude first
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return name, nil
}

func (s *service) Resolve(latitude, longitude float64) (forecast.TimezoneMode, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return forecast.TimezoneMode{}, err
	}
	return forecast.TimezoneFromName(name), nil
}
