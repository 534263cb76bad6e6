package main

import (
	"os"

	"github.com/yigit/enrollhub/internal/pkg/logger"
	"github.com/yigit/enrollhub/internal/server"
)

// @title EnrollHub API
// @version 1.0
// @description Back-office API for managing faculties, users, courses and enrollments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@enrollhub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
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
