package service

import (
	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
)

// Services aggregates every application service consumed by the transport
// layer. The interfaces are embedded so callers reach operations directly
// (services.Login, services.ListVideos) without naming the sub-service.
type Services struct {
	AuthService
	VideoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		VideoService: NewVideoService(storages.VideoRepository, logger),
	}
}
