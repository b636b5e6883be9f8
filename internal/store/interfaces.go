package store

import (
	"context"

	"github.com/kuppisite/video-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email. The PasswordHash
	// field is populated only when withPassword is true; every other read
	// path leaves it empty.
	FindUserByEmail(ctx context.Context, email string, withPassword bool) (models.User, error)

	// GetUserByID looks an account up by its identifier, without the
	// password hash.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUserRole sets the role of an existing account. This is the
	// out-of-band promotion/demotion path; it is not reachable over HTTP.
	UpdateUserRole(ctx context.Context, userID int64, role string) error
}

// VideoRepository is the persistence contract for catalog entries.
type VideoRepository interface {
	GetAllVideos(ctx context.Context) ([]models.Video, error)
	GetVideoByID(ctx context.Context, videoID int64) (models.Video, error)
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)

	// UpdateVideo applies a partial update and returns the resulting row.
	// An update targeting a missing entry yields [ErrVideoNotFound].
	UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error)

	DeleteVideo(ctx context.Context, videoID int64) error
}
