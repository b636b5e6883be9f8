package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/sethvargo/go-retry"

	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/migrations"
)

// retryBaseDelay is the first wait of the exponential backoff used while
// establishing the initial database connection.
const retryBaseDelay = time.Second

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection pool and verifies it with
// a ping. The ping is retried with exponential backoff (1s, 2s, 4s, ...) up
// to cfg.ConnectRetries times, the whole attempt bounded by
// cfg.ConnectTimeout. Reconnection after startup is the pool's own concern;
// requests observe only [ErrStoreUnavailable] through the classifier.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(retryBaseDelay))
	err = retry.Do(pingCtx, backoff, func(ctx context.Context) error {
		if pingErr := conn.PingContext(ctx); pingErr != nil {
			log.Warn().Err(pingErr).Str("func", "NewConnectPostgres").Msg("database ping failed, retrying")
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// Migrate applies all pending schema migrations embedded in the binary.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classify wraps a driver-level error into the sentinel the rest of the
// application understands: retryable/connection-class failures become
// [ErrStoreUnavailable], everything else [ErrExecutingQuery].
func (db *DB) classify(err error) error {
	if isUnavailable(err, db.errorClassificator) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// isUnavailable reports whether err indicates that the database cannot be
// reached at all, as opposed to rejecting a particular statement.
func isUnavailable(err error, classificator ErrorClassificator) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	return classificator.Classify(err) == Retryable
}

// postgresError extracts the PostgreSQL error code from err, or returns an
// empty string if err did not originate from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
