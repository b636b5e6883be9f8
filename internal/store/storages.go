package store

import (
	"context"

	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection pool.
type Storages struct {
	UserRepository  UserRepository
	VideoRepository VideoRepository

	db *DB
}

// NewStorages connects to the database, applies pending migrations, and
// constructs all repositories over the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		VideoRepository: NewVideoRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
