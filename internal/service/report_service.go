package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cityweather/backend/internal/domain"
)

// ReportService combines current weather, forecast and lookup history
type ReportService struct {
	weatherSvc *WeatherService
	repo       LookupRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewReportService creates a new report service
func NewReportService(weatherSvc *WeatherService, repo LookupRepository) *ReportService {
	return &ReportService{
		weatherSvc: weatherSvc,
		repo:       repo,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *ReportService) WaitBackground() {
	s.wgBg.Wait()
}

// GetReport fetches current weather and forecast concurrently.
// A forecast failure is logged and leaves the forecast empty.
func (s *ReportService) GetReport(ctx context.Context, city string) (domain.Report, error) {
	var (
		weather     domain.WeatherData
		forecast    []domain.ForecastDay
		weatherErr  error
		forecastErr error
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		weather, weatherErr = s.weatherSvc.GetWeatherData(ctx, city)
	}()
	go func() {
		defer wg.Done()
		forecast, forecastErr = s.weatherSvc.GetForecast(ctx, city)
	}()
	wg.Wait()

	if weatherErr != nil {
		return domain.Report{}, weatherErr
	}
	if forecastErr != nil {
		log.Printf("Forecast fetch error for %q: %v", city, forecastErr)
		forecast = nil
	}

	s.saveLookup(weather)

	return domain.Report{
		Weather:   weather,
		Details:   BuildDetails(weather),
		Forecast:  forecast,
		Cards:     BuildForecastCards(forecast),
		Timestamp: time.Now(),
	}, nil
}

// GetWeather returns current weather for a city and records the lookup
func (s *ReportService) GetWeather(ctx context.Context, city string) (domain.WeatherData, error) {
	weather, err := s.weatherSvc.GetWeatherData(ctx, city)
	if err != nil {
		return domain.WeatherData{}, err
	}
	s.saveLookup(weather)
	return weather, nil
}

// GetForecast returns the daily forecast for a city
func (s *ReportService) GetForecast(ctx context.Context, city string) ([]domain.ForecastDay, error) {
	return s.weatherSvc.GetForecast(ctx, city)
}

// History returns lookups from the last hours
func (s *ReportService) History(ctx context.Context, hours int) ([]domain.Lookup, error) {
	if s.repo == nil {
		return nil, nil
	}
	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)
	return s.repo.RecentLookups(ctx, from, to)
}

// Health checks the lookup repository
func (s *ReportService) Health(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Health(ctx)
}

// saveLookup persists asynchronously (tracked for graceful shutdown)
func (s *ReportService) saveLookup(weather domain.WeatherData) {
	if s.repo == nil || weather.City == "" {
		return
	}
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveLookup(bgCtx, domain.LookupFromWeather(weather)); err != nil {
			log.Printf("Failed to save lookup: %v", err)
		}
	}()
}
