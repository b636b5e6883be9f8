// SPDX-License-Identifier: Apache-2.0

// Package adapter provides an HTTP client for the video-catalog API.
//
// The primary abstraction is [CatalogClient], which decouples callers (the
// catalogctl command, tests, batch scripts) from the wire details: JSON
// serialisation, bearer-token header management, and mapping of HTTP status
// codes to the sentinel errors defined in errors.go, so callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/kuppisite/video-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

// CatalogClient defines client-side access to the video-catalog server.
type CatalogClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the issued token via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with email and password and stores the issued token
	// via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Me returns the account the stored token belongs to, as the server
	// currently sees it.
	Me(ctx context.Context) (models.User, error)

	// Logout tells the server the session is over and clears the stored
	// token. The token itself is not revoked server-side.
	Logout(ctx context.Context) error

	// ListVideos fetches the full catalog.
	ListVideos(ctx context.Context) ([]models.Video, error)

	// GetVideo fetches a single catalog entry by id.
	GetVideo(ctx context.Context, videoID int64) (models.Video, error)

	// CreateVideo adds a catalog entry. Requires an admin token.
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)

	// UpdateVideo applies a partial update to a catalog entry. Requires an
	// admin token.
	UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error)

	// DeleteVideo removes a catalog entry. Requires an admin token.
	DeleteVideo(ctx context.Context, videoID int64) error
}
