package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cityweather/backend/internal/config"
	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/internal/service"
)

type result struct {
	report domain.Report
	err    error
}

// NewRootCmd builds the `weather <city>` command
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var (
		days    int
		asJSON  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:           "weather <city>",
		Short:         "Show current weather and a short forecast for a city",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			city := strings.TrimSpace(strings.Join(args, " "))
			if city == "" {
				return domain.ErrEmptyCity
			}

			weatherSvc := service.NewWeatherService(service.WeatherOptions{
				APIKey:       cfg.OpenWeatherAPIKey,
				BaseURL:      cfg.OpenWeatherBaseURL,
				Units:        cfg.Units,
				ForecastDays: days,
				Timeout:      cfg.HTTPTimeout,
			})
			reportSvc := service.NewReportService(weatherSvc, nil)

			if timeout <= 0 {
				timeout = 2 * cfg.HTTPTimeout
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			// fetch off the main goroutine and hand the result back
			done := make(chan result, 1)
			go func() {
				r, err := reportSvc.GetReport(ctx, city)
				done <- result{report: r, err: err}
			}()

			if !asJSON {
				fmt.Fprintln(cmd.ErrOrStderr(), "Loading...")
			}

			res := <-done
			if res.err != nil {
				return res.err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.report)
			}
			return RenderReport(cmd.OutOrStdout(), res.report)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", cfg.ForecastDays, "number of forecast days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*cfg.HTTPTimeout, "overall request timeout")

	return cmd
}
