package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/internal/service"
)

var icons = map[string]string{
	"humidity":       "💧",
	"wind":           "🌪",
	"pressure":       "⭕",
	"visibility":     "👁",
	"sunrise":        "🌅",
	"sunset":         "🌇",
	"precipitation":  "🌧",
	"air-quality":    "🌬",
	"feels-like":     "🌡",
	"wind-direction": "🧭",
	"clear":          "☀️",
	"clouds":         "☁️",
	"rain":           "🌧",
	"snow":           "❄️",
	"thunderstorm":   "⛈",
	"drizzle":        "🌦",
	"mist":           "🌫",
}

// RenderReport writes the header, detail boxes and forecast cards as text
func RenderReport(w io.Writer, r domain.Report) error {
	var b strings.Builder

	name := r.Weather.City
	if r.Weather.Country != "" {
		name += ", " + r.Weather.Country
	}
	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "%s  %s\n", service.FormatTemperature(r.Weather.Temperature), service.CapitalizeFirst(r.Weather.Description))
	if r.Weather.IsMock {
		b.WriteString("(demo data)\n")
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, d := range r.Details {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", icons[d.IconKey], d.Title, d.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Cards) > 0 {
		b.WriteString("\nForecast\n")
		tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, c := range r.Cards {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Date, icons[c.IconKey], c.Temperature, c.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
