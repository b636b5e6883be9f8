package service

import "errors"

// Registration and login validation errors. Each sentinel corresponds to the
// first violated constraint; the transport layer owns the user-facing text.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is longer than 50 characters")
	ErrEmailInvalid     = errors.New("email does not match the expected grammar")
	ErrPasswordTooShort = errors.New("password is shorter than 6 characters")

	// ErrCredentialsRequired is returned by Login when either field is
	// missing. Deliberately not field-specific.
	ErrCredentialsRequired = errors.New("email and password are required")

	// ErrInvalidCredentials covers both "no such email" and "wrong password".
	// A single sentinel guarantees the two cases are indistinguishable in
	// any response built from it.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token lifecycle errors.
var (
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single outcome of every token
	// verification failure: malformed string, bad signature, wrong issuer,
	// or expiry. Callers must not surface which one it was.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Catalog entry validation errors.
var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrYouTubeIDRequired   = errors.New("youtube video id is required")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
)
