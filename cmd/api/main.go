package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emreo/learnhub/internal/pkg/logger"
	"github.com/emreo/learnhub/internal/server"
)

// @title LearnHub API
// @version 1.0
// @description API for the LearnHub e-learning platform

// @host localhost:8080
// @BasePath /api

func main() {
	// Optional .env file; environment and config defaults cover the rest
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg(".env file not found, relying on environment and defaults")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
