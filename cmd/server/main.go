package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cityweather/backend/internal/config"
	"github.com/cityweather/backend/internal/delivery/http"
	"github.com/cityweather/backend/internal/repository/postgres"
	"github.com/cityweather/backend/internal/service"
)

func main() {
	cfg := config.Load()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lookupRepo service.LookupRepository = postgres.NewMockRepository()
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, keeping lookup history in memory")
	} else if pool, err := pgxpool.New(ctx, cfg.DatabaseURL); err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Keeping lookup history in memory")
	} else {
		defer pool.Close()
		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("Warning: %v", err)
		}
		lookupRepo = repo
		log.Println("Connected to PostgreSQL")
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(service.WeatherOptions{
		APIKey:       cfg.OpenWeatherAPIKey,
		BaseURL:      cfg.OpenWeatherBaseURL,
		Units:        cfg.Units,
		ForecastDays: cfg.ForecastDays,
		Timeout:      cfg.HTTPTimeout,
	})
	if weatherSvc.IsMock() {
		log.Println("OPENWEATHER_API_KEY not set, serving demo data")
	}
	reportSvc := service.NewReportService(weatherSvc, lookupRepo)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CityWeather API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2*cfg.HTTPTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, reportSvc)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	reportSvc.WaitBackground()
	log.Println("Server exited gracefully")
}
