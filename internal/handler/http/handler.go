package http

import (
	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/service"
)

type Handler struct {
	services *service.Services

	// corsOrigins is the allow-list applied by the CORS middleware.
	// A single "*" entry allows any origin.
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: cfg.CORSOrigins,
		logger:      logger,
	}
}
