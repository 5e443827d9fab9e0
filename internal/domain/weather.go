package domain

import "time"

// WeatherData is the normalized current weather for a city
type WeatherData struct {
	City           string    `json:"city"`
	Country        string    `json:"country"`
	Temperature    float64   `json:"temperature"`
	FeelsLike      float64   `json:"feels_like"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	Humidity       int       `json:"humidity"`
	WindSpeed      float64   `json:"wind_speed"`
	WindDegrees    float64   `json:"wind_degrees"`
	WindDirection  string    `json:"wind_direction"`
	Pressure       int       `json:"pressure"`
	Visibility     int       `json:"visibility"`
	Sunrise        time.Time `json:"sunrise"`
	Sunset         time.Time `json:"sunset"`
	Precipitation  float64   `json:"precipitation"`
	AirQuality     int       `json:"air_quality"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lon"`
	TimezoneOffset int       `json:"timezone_offset"`
	Timestamp      time.Time `json:"timestamp"`
	IsMock         bool      `json:"is_mock"`
}

// ForecastDay is the representative forecast entry for one calendar day
type ForecastDay struct {
	Date        string  `json:"date"`  // YYYY-MM-DD
	Label       string  `json:"label"` // e.g. "Mar 07"
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Detail is one labeled box in the weather details panel
type Detail struct {
	Title   string `json:"title"`
	Value   string `json:"value"`
	IconKey string `json:"icon_key"`
}

// ForecastCard is the display form of a ForecastDay
type ForecastCard struct {
	Date        string `json:"date"`
	IconKey     string `json:"icon_key"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// Report aggregates everything a client needs to render a city
type Report struct {
	Weather   WeatherData    `json:"weather"`
	Details   []Detail       `json:"details"`
	Forecast  []ForecastDay  `json:"forecast"`
	Cards     []ForecastCard `json:"cards"`
	Timestamp time.Time      `json:"timestamp"`
}

// WeatherResponse wraps weather data with metadata
type WeatherResponse struct {
	Data    WeatherData `json:"data"`
	Details []Detail    `json:"details"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// ForecastResponse wraps forecast data with metadata
type ForecastResponse struct {
	Data    []ForecastDay  `json:"data"`
	Cards   []ForecastCard `json:"cards"`
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
}
