package http

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cityweather/backend/internal/domain"
	"github.com/cityweather/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	reportSvc *service.ReportService
}

// NewHandler creates a new handler
func NewHandler(reportSvc *service.ReportService) *Handler {
	return &Handler{reportSvc: reportSvc}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	storage := "ok"
	if err := h.reportSvc.Health(ctx); err != nil {
		log.Printf("Health check: %v", err)
		storage = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"storage": storage,
		"service": "cityweather-backend",
		"version": "1.0.0",
	})
}

// GetWeather returns current weather plus its detail boxes
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	weather, err := h.reportSvc.GetWeather(c.Context(), city)
	if err != nil {
		return upstreamError("weather", err)
	}

	return c.JSON(domain.WeatherResponse{
		Data:    weather,
		Details: service.BuildDetails(weather),
		Success: true,
	})
}

// GetForecast returns one forecast entry per day
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	forecast, err := h.reportSvc.GetForecast(c.Context(), city)
	if err != nil {
		return upstreamError("forecast", err)
	}

	return c.JSON(domain.ForecastResponse{
		Data:    forecast,
		Cards:   service.BuildForecastCards(forecast),
		Success: true,
	})
}

// GetReport returns current weather, details and forecast in one call
func (h *Handler) GetReport(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	report, err := h.reportSvc.GetReport(c.Context(), city)
	if err != nil {
		return upstreamError("report", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// GetHistory returns recent lookups within a time range
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	data, err := h.reportSvc.History(c.Context(), hours)
	if err != nil {
		log.Printf("History query failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lookup history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

func cityParam(c *fiber.Ctx) (string, error) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Please enter a city name")
	}
	return city, nil
}

// upstreamError maps service failures onto HTTP errors
func upstreamError(what string, err error) error {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrEmptyCity):
		return fiber.NewError(fiber.StatusBadRequest, "Please enter a city name")
	case errors.As(err, &apiErr):
		code := fiber.StatusBadGateway
		if apiErr.Code == fiber.StatusNotFound {
			code = fiber.StatusNotFound
		}
		return fiber.NewError(code, apiErr.Error())
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return fiber.NewError(fiber.StatusGatewayTimeout, "Weather provider timed out")
	default:
		log.Printf("Failed to fetch %s: %v", what, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch "+what+" data")
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// ErrorHandler renders errors as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
