package service

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/pkg/utils"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection maps a bearing in degrees to a 16-point compass label
func WindDirection(degrees float64) string {
	idx := int(math.Round(utils.NormalizeDegrees(degrees)/22.5)) % 16
	return compassPoints[idx]
}

// AirQualityLabel describes an OpenWeather AQI value (1..5)
func AirQualityLabel(aqi int) string {
	switch aqi {
	case 1:
		return "Good"
	case 2:
		return "Fair"
	case 3:
		return "Moderate"
	case 4:
		return "Poor"
	case 5:
		return "Very Poor"
	default:
		return "Unknown"
	}
}

// FormatVisibility renders meters, switching to km from 1000 m up
func FormatVisibility(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000.0)
	}
	return fmt.Sprintf("%d m", meters)
}

// CapitalizeFirst upper-cases the first rune of s
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ConditionKey buckets a free-text description into an icon key
func ConditionKey(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "clear"):
		return "clear"
	case strings.Contains(d, "cloud"):
		return "clouds"
	case strings.Contains(d, "rain"):
		return "rain"
	case strings.Contains(d, "snow"):
		return "snow"
	case strings.Contains(d, "thunder"):
		return "thunderstorm"
	case strings.Contains(d, "drizzle"):
		return "drizzle"
	case strings.Contains(d, "mist"), strings.Contains(d, "fog"):
		return "mist"
	default:
		return "clouds"
	}
}

const dtTxtLayout = "2006-01-02 15:04:05"

// forecastEntry is one 3-hour slot of the /forecast list
type forecastEntry struct {
	DtTxt       string
	Temperature float64
	Description string
	Icon        string
}

// pickDaily keeps one entry per calendar day, the one nearest to noon.
// Days stay in first-seen order and at most days are returned.
func pickDaily(entries []forecastEntry, days int) []domain.ForecastDay {
	type pick struct {
		at    time.Time
		entry forecastEntry
		dist  time.Duration
	}

	var order []string
	best := make(map[string]pick)

	for _, e := range entries {
		at, err := time.Parse(dtTxtLayout, e.DtTxt)
		if err != nil {
			log.Printf("Skipping forecast entry with bad dt_txt %q: %v", e.DtTxt, err)
			continue
		}
		date := at.Format("2006-01-02")
		noon := time.Date(at.Year(), at.Month(), at.Day(), 12, 0, 0, 0, time.UTC)
		dist := at.Sub(noon)
		if dist < 0 {
			dist = -dist
		}

		cur, seen := best[date]
		if !seen {
			order = append(order, date)
		}
		if !seen || dist < cur.dist {
			best[date] = pick{at: at, entry: e, dist: dist}
		}
	}

	if days > 0 && len(order) > days {
		order = order[:days]
	}

	out := make([]domain.ForecastDay, 0, len(order))
	for _, date := range order {
		p := best[date]
		out = append(out, domain.ForecastDay{
			Date:        date,
			Label:       p.at.Format("Jan 02"),
			Temperature: p.entry.Temperature,
			Description: p.entry.Description,
			Icon:        p.entry.Icon,
		})
	}
	return out
}
