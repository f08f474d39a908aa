package main

import (
	"os"
	"os/signal"
	"syscall"

	"inventory/internal/config"
	"inventory/internal/logger"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", true)
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())

	// --- Application ---
	app, err := NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	if err := app.StartEventConsumer(); err != nil {
		log.Error().Err(err).Msg("failed to start product event consumer")
	}

	// --- Start HTTP Server ---
	log.Info().
		Str("port", cfg.Port).
		Str("driver", cfg.DatabaseDriver).
		Bool("events", cfg.RabbitMQURL != "").
		Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Close(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
