package service

import (
	"context"

	"github.com/kuppisite/video-catalog/models"
)

// AuthService handles credential issuance and verification: registration,
// login, token lifecycle, and the "who am I" lookup.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VideoService handles validation and persistence of catalog entries.
// Authorization is not its concern; the transport middleware has already
// gated the request by the time a VideoService method runs.
type VideoService interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	GetVideo(ctx context.Context, videoID int64) (models.Video, error)
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error)
	DeleteVideo(ctx context.Context, videoID int64) error
}
