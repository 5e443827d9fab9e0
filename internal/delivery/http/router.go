package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityweather/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, reportSvc *service.ReportService) {
	handler := NewHandler(reportSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/weather", handler.GetWeather)
		api.Get("/forecast", handler.GetForecast)
		api.Get("/report", handler.GetReport)
		api.Get("/history", handler.GetHistory)
	}
}
