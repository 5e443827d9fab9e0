package service

import (
	"fmt"

	"github.com/cityweather/backend/internal/domain"
)

const clockLayout = "15:04"

// FormatTemperature renders a Celsius value with one decimal
func FormatTemperature(t float64) string {
	return fmt.Sprintf("%.1f°C", t)
}

// BuildDetails lays out the detail boxes shown under the current conditions
func BuildDetails(w domain.WeatherData) []domain.Detail {
	return []domain.Detail{
		{Title: "Feels Like", Value: FormatTemperature(w.FeelsLike), IconKey: "feels-like"},
		{Title: "Humidity", Value: fmt.Sprintf("%d%%", w.Humidity), IconKey: "humidity"},
		{Title: "Wind", Value: fmt.Sprintf("%.1f m/s", w.WindSpeed), IconKey: "wind"},
		{Title: "Wind Direction", Value: w.WindDirection, IconKey: "wind-direction"},
		{Title: "Pressure", Value: fmt.Sprintf("%d hPa", w.Pressure), IconKey: "pressure"},
		{Title: "Visibility", Value: FormatVisibility(w.Visibility), IconKey: "visibility"},
		{Title: "Precipitation", Value: fmt.Sprintf("%.1f mm", w.Precipitation), IconKey: "precipitation"},
		{Title: "Air Quality", Value: AirQualityLabel(w.AirQuality), IconKey: "air-quality"},
		{Title: "Sunrise", Value: w.Sunrise.Format(clockLayout), IconKey: "sunrise"},
		{Title: "Sunset", Value: w.Sunset.Format(clockLayout), IconKey: "sunset"},
	}
}

// BuildForecastCards converts forecast days into display cards
func BuildForecastCards(days []domain.ForecastDay) []domain.ForecastCard {
	cards := make([]domain.ForecastCard, 0, len(days))
	for _, d := range days {
		cards = append(cards, domain.ForecastCard{
			Date:        d.Label,
			IconKey:     ConditionKey(d.Description),
			Temperature: FormatTemperature(d.Temperature),
			Description: CapitalizeFirst(d.Description),
		})
	}
	return cards
}
