package main

import (
	"os"

	"github.com/nandan/studenthub/internal/pkg/logger"
	"github.com/nandan/studenthub/internal/server"
)

// @title Smart Student Hub API
// @version 1.0
// @description REST API for the Smart Student Hub platform: student records, certificate review, marks tracking, and group messaging for higher-education institutions

// @contact.name API Support
// @contact.email support@studenthub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
