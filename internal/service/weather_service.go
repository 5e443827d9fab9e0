package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/cityweather/backend/internal/domain"
)

const (
	defaultDescription = "No description available"
	defaultIcon        = "01d"
	defaultCity        = "Unknown"
	maxBodyBytes       = 1 << 20
)

// WeatherOptions configures a WeatherService
type WeatherOptions struct {
	APIKey       string
	BaseURL      string
	Units        string
	ForecastDays int
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// WeatherService handles OpenWeatherMap fetching and normalization
type WeatherService struct {
	apiKey       string
	baseURL      string
	units        string
	forecastDays int
	httpClient   *http.Client
	now          func() time.Time
}

// NewWeatherService creates a new weather service
func NewWeatherService(opts WeatherOptions) *WeatherService {
	s := &WeatherService{
		apiKey:       opts.APIKey,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		units:        opts.Units,
		forecastDays: opts.ForecastDays,
		httpClient:   opts.HTTPClient,
		now:          time.Now,
	}
	if s.baseURL == "" {
		s.baseURL = "https://api.openweathermap.org/data/2.5"
	}
	if s.units == "" {
		s.units = "metric"
	}
	if s.forecastDays <= 0 {
		s.forecastDays = 5
	}
	if s.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		s.httpClient = &http.Client{Timeout: timeout}
	}
	return s
}

// IsMock reports whether the service serves demo data instead of calling the API
func (s *WeatherService) IsMock() bool {
	return s.apiKey == ""
}

// GetWeatherData fetches current conditions and air quality for a city
func (s *WeatherService) GetWeatherData(ctx context.Context, city string) (domain.WeatherData, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.WeatherData{}, domain.ErrEmptyCity
	}
	if s.IsMock() {
		return s.getMockWeather(city), nil
	}

	current, err := s.fetchJSON(ctx, "weather", url.Values{
		"q":     {city},
		"units": {s.units},
	})
	if err != nil {
		return domain.WeatherData{}, err
	}

	if !current.Get("coord.lat").Exists() || !current.Get("coord.lon").Exists() {
		return domain.WeatherData{}, errors.New("weather: invalid weather response: missing coord")
	}
	lat := current.Get("coord.lat").Float()
	lon := current.Get("coord.lon").Float()
	air, err := s.fetchJSON(ctx, "air_pollution", url.Values{
		"lat": {formatCoord(lat)},
		"lon": {formatCoord(lon)},
	})
	if err != nil {
		return domain.WeatherData{}, err
	}

	offset := int(current.Get("timezone").Int())
	loc := time.FixedZone("", offset)

	weather := domain.WeatherData{
		City:           stringOr(current.Get("name"), defaultCity),
		Country:        current.Get("sys.country").String(),
		Temperature:    current.Get("main.temp").Float(),
		FeelsLike:      current.Get("main.feels_like").Float(),
		Description:    stringOr(current.Get("weather.0.description"), defaultDescription),
		Icon:           stringOr(current.Get("weather.0.icon"), defaultIcon),
		Humidity:       int(current.Get("main.humidity").Int()),
		WindSpeed:      current.Get("wind.speed").Float(),
		WindDegrees:    current.Get("wind.deg").Float(),
		Pressure:       int(current.Get("main.pressure").Int()),
		Visibility:     int(current.Get("visibility").Int()),
		Sunrise:        time.Unix(current.Get("sys.sunrise").Int(), 0).In(loc),
		Sunset:         time.Unix(current.Get("sys.sunset").Int(), 0).In(loc),
		Precipitation:  precipitation(current),
		AirQuality:     intOr(air.Get("list.0.main.aqi"), 1),
		Latitude:       lat,
		Longitude:      lon,
		TimezoneOffset: offset,
		Timestamp:      s.now(),
	}
	weather.WindDirection = WindDirection(weather.WindDegrees)

	return weather, nil
}

// GetForecast fetches the 3-hourly forecast and reduces it to one entry per day
func (s *WeatherService) GetForecast(ctx context.Context, city string) ([]domain.ForecastDay, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrEmptyCity
	}
	if s.IsMock() {
		return s.getMockForecast(), nil
	}

	root, err := s.fetchJSON(ctx, "forecast", url.Values{
		"q":     {city},
		"units": {s.units},
	})
	if err != nil {
		return nil, err
	}

	list := root.Get("list")
	if !list.IsArray() {
		return nil, errors.New("weather: invalid forecast response format")
	}

	var entries []forecastEntry
	for i, item := range list.Array() {
		dtTxt := item.Get("dt_txt").String()
		if dtTxt == "" {
			log.Printf("Skipping forecast item %d: missing dt_txt", i)
			continue
		}
		entries = append(entries, forecastEntry{
			DtTxt:       dtTxt,
			Temperature: item.Get("main.temp").Float(),
			Description: stringOr(item.Get("weather.0.description"), defaultDescription),
			Icon:        stringOr(item.Get("weather.0.icon"), defaultIcon),
		})
	}

	return pickDaily(entries, s.forecastDays), nil
}

// fetchJSON GETs {baseURL}/{endpoint} and parses the body.
// Non-2xx answers become *domain.APIError carrying the upstream message.
func (s *WeatherService) fetchJSON(ctx context.Context, endpoint string, params url.Values) (gjson.Result, error) {
	params.Set("appid", s.apiKey)
	u := fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("weather: failed to create request: %w", s.redactErr(err))
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("Fetching %s", redact(u, s.apiKey))
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("weather: request to %s failed: %w", endpoint, s.redactErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("weather: failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Unknown error"
		if gjson.ValidBytes(body) {
			msg = stringOr(gjson.GetBytes(body, "message"), msg)
		}
		return gjson.Result{}, &domain.APIError{Code: resp.StatusCode, Message: msg}
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("weather: invalid JSON from %s", endpoint)
	}
	return gjson.ParseBytes(body), nil
}

// precipitation reads rain.1h, falling back to snow.1h
func precipitation(r gjson.Result) float64 {
	if rain := r.Get("rain"); rain.Exists() {
		return rain.Get("1h").Float()
	}
	if snow := r.Get("snow"); snow.Exists() {
		return snow.Get("1h").Float()
	}
	return 0
}

func stringOr(r gjson.Result, def string) string {
	if !r.Exists() || r.Type == gjson.Null || r.String() == "" {
		return def
	}
	return r.String()
}

func intOr(r gjson.Result, def int) int {
	if !r.Exists() || r.Type != gjson.Number {
		return def
	}
	return int(r.Int())
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// redactErr strips the API key from the URL carried by a *url.Error
func (s *WeatherService) redactErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redact(urlErr.URL, s.apiKey)
	}
	return err
}

func redact(u, secret string) string {
	if secret == "" {
		return u
	}
	return strings.ReplaceAll(u, url.QueryEscape(secret), "***")
}
