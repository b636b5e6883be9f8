package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt). The
// password hash is written but never read back.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Connection-class failures → [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Role)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.Role, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")
		return models.User{}, r.db.classify(err)
	}

	return created, nil
}

// FindUserByEmail retrieves an account by its email address.
//
// The password hash column is read only when withPassword is true; the
// default column list excludes it so no ordinary read path ever touches the
// credential material.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Connection-class failures → [ErrStoreUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string, withPassword bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query := findUserByEmail
	if withPassword {
		query = findUserByEmailWithPassword
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, email)

	var err error
	if withPassword {
		err = row.Scan(&found.UserID, &found.Name, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt)
	} else {
		err = row.Scan(&found.UserID, &found.Name, &found.Email, &found.Role, &found.CreatedAt)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, r.db.classify(err)
	}

	return found, nil
}

// GetUserByID retrieves an account by its identifier, without the password
// hash. Used by the authentication middleware to re-read the current role on
// every protected request.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Scan(&found.UserID, &found.Name, &found.Email, &found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: user lookup failed")
		return models.User{}, r.db.classify(err)
	}

	return found, nil
}

// UpdateUserRole sets the role of an existing account. Targeting a missing
// account yields [ErrNoUserWasFound].
func (r *userRepository) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserRole, userID, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserRole").Msg("error: role update failed")
		return r.db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.classify(err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
