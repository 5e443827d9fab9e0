package domain

import (
	"context"
	"time"
)

// Lookup is one persisted city search
type Lookup struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	AirQuality  int       `json:"air_quality"`
	IsMock      bool      `json:"is_mock"`
	Timestamp   time.Time `json:"timestamp"`
}

// LookupFromWeather builds the history row for a fetched weather result
func LookupFromWeather(w WeatherData) Lookup {
	return Lookup{
		City:        w.City,
		Country:     w.Country,
		Temperature: w.Temperature,
		Description: w.Description,
		AirQuality:  w.AirQuality,
		IsMock:      w.IsMock,
		Timestamp:   w.Timestamp,
	}
}

// LookupRepository defines the interface for search history persistence
type LookupRepository interface {
	// SaveLookup persists a city lookup
	SaveLookup(ctx context.Context, l Lookup) error

	// RecentLookups retrieves lookups between from and to, newest first
	RecentLookups(ctx context.Context, from, to time.Time) ([]Lookup, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error
}
