// Package main is the entry point for the rainbot server
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rainbot/internal/bot"
	"rainbot/internal/cities"
	"rainbot/internal/config"
	"rainbot/internal/database"
	"rainbot/internal/logging"
	"rainbot/internal/scheduler"
	"rainbot/internal/server"
	"rainbot/internal/telemetry"
	"rainbot/internal/version"
	"rainbot/internal/weather"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, especially in production
		if os.Getenv("DEBUG") == "true" {
			logging.Debug("No .env file found or error loading it: %v", err)
		}
	}

	// Handle version flag first, before loading configuration
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-version" || os.Args[1] == "version") {
		versionInfo := version.Get()
		fmt.Printf("rainbot version %s\n", versionInfo.Version)
		fmt.Printf("  commit: %s\n", versionInfo.Commit)
		fmt.Printf("  built: %s\n", versionInfo.BuildDate)
		fmt.Printf("  go: %s\n", versionInfo.GoVersion)
		fmt.Printf("  platform: %s\n", versionInfo.Platform)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize file logging ONLY in development mode
	isDevelopment := os.Getenv("RAINBOT_ENV") == "development" || os.Getenv("DEBUG") == "true"

	if isDevelopment {
		logDir := "./logs" // Always use local directory in development
		if err := logging.Initialize(logDir); err != nil {
			logging.Warning("Failed to initialize file logging: %v", err)
			// Continue with standard logging to stdout
		} else {
			defer logging.Close()
			logging.Info("Development logging initialized to %s", logDir)
		}
	} else {
		// In production, just use stdout (captured by the container runtime)
		logging.Info("Running in production mode - logging to stdout only")
	}

	logging.Info("Configuration: %s", cfg)

	// Initialize telemetry
	ctx := context.Background()
	shutdownTelemetry, err := telemetry.InitializeFromEnv(ctx)
	if err != nil {
		logging.Warning("Failed to initialize telemetry: %v", err)
		// Continue without telemetry
	} else {
		defer func() {
			if err := shutdownTelemetry(ctx); err != nil {
				logging.Error("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Initialize database
	if err := database.Initialize(cfg.DatabasePath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logging.Error("Failed to close database: %v", err)
		}
	}()

	// Load the city roster
	roster, err := cities.Load(cfg.CitiesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cities: %v\n", err)
		os.Exit(1)
	}
	logging.Info("City roster loaded with %d cities", roster.Len())

	// Create the tweet runner
	runner, err := bot.New(cfg, roster, weather.NewClient(cfg.WeatherAPIKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create runner: %v\n", err)
		os.Exit(1)
	}
	defer runner.Close()

	if runner.Live() {
		logging.Info("Posting is ENABLED - tweets will be published")
	} else {
		logging.Info("Posting is DISABLED - tweets will be simulated")
	}

	// Start the internal scheduler when configured
	if cfg.CronSchedule != "" {
		sched, err := scheduler.New(cfg.CronSchedule, func(ctx context.Context) error {
			_, err := runner.Run(ctx)
			return err
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create scheduler: %v\n", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Create and start server
	srv := server.New(cfg, runner, version.Get())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for a shutdown signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info("Received signal %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}
