package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/internal/repository/postgres"
)

func TestReportService_GetReport(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"weather":       jsonBody(http.StatusOK, londonWeather),
		"air_pollution": jsonBody(http.StatusOK, londonAir),
		"forecast":      jsonBody(http.StatusOK, londonForecast),
	})
	repo := postgres.NewMockRepository()
	svc := NewReportService(newTestService(api.URL, 5), repo)

	report, err := svc.GetReport(context.Background(), "London")
	if err != nil {
		t.Fatalf("GetReport() unexpected error: %v", err)
	}
	svc.WaitBackground()

	if report.Weather.City != "London" {
		t.Errorf("City = %q, want London", report.Weather.City)
	}
	if len(report.Details) != 10 {
		t.Errorf("got %d details, want 10", len(report.Details))
	}
	if len(report.Forecast) != 3 || len(report.Cards) != 3 {
		t.Errorf("got %d forecast days / %d cards, want 3/3", len(report.Forecast), len(report.Cards))
	}

	history, err := repo.RecentLookups(context.Background(),
		time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RecentLookups() error: %v", err)
	}
	if len(history) != 1 || history[0].City != "London" || history[0].AirQuality != 2 {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestReportService_ForecastFailureKeepsCurrent(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"weather":       jsonBody(http.StatusOK, londonWeather),
		"air_pollution": jsonBody(http.StatusOK, londonAir),
		"forecast":      jsonBody(http.StatusInternalServerError, `{"message": "boom"}`),
	})
	svc := NewReportService(newTestService(api.URL, 5), postgres.NewMockRepository())

	report, err := svc.GetReport(context.Background(), "London")
	if err != nil {
		t.Fatalf("GetReport() unexpected error: %v", err)
	}
	svc.WaitBackground()

	if report.Weather.City != "London" {
		t.Errorf("City = %q, want London", report.Weather.City)
	}
	if len(report.Forecast) != 0 || len(report.Cards) != 0 {
		t.Errorf("expected empty forecast, got %+v", report.Forecast)
	}
}

func TestReportService_CurrentFailureFails(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"weather":  jsonBody(http.StatusNotFound, `{"message": "city not found"}`),
		"forecast": jsonBody(http.StatusNotFound, `{"message": "city not found"}`),
	})
	repo := postgres.NewMockRepository()
	svc := NewReportService(newTestService(api.URL, 5), repo)

	_, err := svc.GetReport(context.Background(), "Atlantis")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
	svc.WaitBackground()

	history, _ := svc.History(context.Background(), 24*365*100)
	if len(history) != 0 {
		t.Errorf("failed lookup was recorded: %+v", history)
	}
}

func TestReportService_NilRepository(t *testing.T) {
	api := newFakeAPI(t, nil)
	svc := NewReportService(NewWeatherService(WeatherOptions{BaseURL: api.URL}), nil)

	if _, err := svc.GetWeather(context.Background(), "Quito"); err != nil {
		t.Fatalf("GetWeather() unexpected error: %v", err)
	}
	svc.WaitBackground()
	if err := svc.Health(context.Background()); err != nil {
		t.Errorf("Health() = %v", err)
	}
	if h, err := svc.History(context.Background(), 24); err != nil || h != nil {
		t.Errorf("History() = %v, %v", h, err)
	}
}
