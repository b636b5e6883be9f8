package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/internal/utils"
	"github.com/kuppisite/video-catalog/models"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

// emailRegexp is the grammar an email must match at registration time.
// The stored value is matched case-sensitively on login.
var emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor. Zero means the library default.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the request (name non-empty and at most 50 characters, email
// matching the grammar, password at least 6 characters), hashes the password
// with bcrypt, and persists the account with role "user" — the client has no
// say in the role, regardless of what the request carried.
//
// The duplicate-email check is the database's unique index, not a
// read-before-write: under concurrent registrations for the same email
// exactly one INSERT succeeds and the others surface
// [store.ErrEmailAlreadyExists].
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The lookup explicitly requests the stored password hash (excluded from
// every other read path) and verifies the supplied password against it.
// An unknown email and a wrong password both collapse to
// [ErrInvalidCredentials]; only a store-unavailable condition is allowed to
// surface differently, so an outage is not mistaken for bad credentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("login request with missing email or password")
		return models.User{}, ErrCredentialsRequired
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email, true)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Str("email", req.Email).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	// The hash has served its purpose; never hand it further up.
	foundUser.PasswordHash = ""

	return foundUser, nil
}

// GetUserByID returns the account for the given identifier, without the
// password hash. Used by the "who am I" endpoint and by the authentication
// middleware's store re-check.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim plus the user's role, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure is normalised to
// [ErrTokenIsExpiredOrInvalid] so that no caller can distinguish "expired"
// from "tampered" — the log entry keeps the distinction for operators.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Msg("token rejected: expired")
		} else {
			log.Debug().Msg("token rejected: invalid")
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// validateRegistration checks the registration constraints in declaration
// order and returns the sentinel of the first violated one.
func validateRegistration(req models.RegisterRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		return ErrNameTooLong
	}
	if !emailRegexp.MatchString(req.Email) {
		return ErrEmailInvalid
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
