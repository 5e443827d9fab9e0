package service

import (
	"time"

	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/pkg/utils"
)

type season struct {
	temp        float64
	description string
	icon        string
	humidity    int
	aqi         int
}

func seasonFor(month time.Month) season {
	switch {
	case month >= 12 || month <= 2: // Winter
		return season{temp: -3.0, description: "light snow", icon: "13d", humidity: 80, aqi: 3}
	case month >= 3 && month <= 5: // Spring
		return season{temp: 12.0, description: "scattered clouds", icon: "03d", humidity: 65, aqi: 2}
	case month >= 6 && month <= 8: // Summer
		return season{temp: 26.0, description: "clear sky", icon: "01d", humidity: 45, aqi: 1}
	default: // Autumn
		return season{temp: 9.0, description: "light rain", icon: "10d", humidity: 75, aqi: 2}
	}
}

// getMockWeather returns simulated weather for demo mode
func (s *WeatherService) getMockWeather(city string) domain.WeatherData {
	now := s.now()
	sn := seasonFor(now.Month())
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var precip float64
	if sn.icon == "10d" || sn.icon == "13d" {
		precip = 0.4
	}

	return domain.WeatherData{
		City:          CapitalizeFirst(city),
		Temperature:   sn.temp,
		FeelsLike:     utils.RoundTo(sn.temp-1.7, 1),
		Description:   sn.description,
		Icon:          sn.icon,
		Humidity:      sn.humidity,
		WindSpeed:     3.5,
		WindDegrees:   225,
		WindDirection: WindDirection(225),
		Pressure:      1015,
		Visibility:    8000,
		Sunrise:       day.Add(6*time.Hour + 45*time.Minute),
		Sunset:        day.Add(18*time.Hour + 10*time.Minute),
		Precipitation: precip,
		AirQuality:    sn.aqi,
		Timestamp:     now,
		IsMock:        true,
	}
}

// getMockForecast returns simulated daily forecasts starting tomorrow
func (s *WeatherService) getMockForecast() []domain.ForecastDay {
	now := s.now()
	sn := seasonFor(now.Month())

	entries := make([]forecastEntry, 0, s.forecastDays)
	for i := 1; i <= s.forecastDays; i++ {
		d := now.AddDate(0, 0, i)
		noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
		entries = append(entries, forecastEntry{
			DtTxt:       noon.Format(dtTxtLayout),
			Temperature: utils.RoundTo(sn.temp+float64(i%3)-1, 1),
			Description: sn.description,
			Icon:        sn.icon,
		})
	}
	return pickDaily(entries, s.forecastDays)
}
