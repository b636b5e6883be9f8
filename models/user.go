package models

import "time"

// Roles a user account can hold. Every account is created with RoleUser;
// promotion to RoleAdmin is an out-of-band operation and is never accepted
// from a registration request.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned by the database.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Non-empty, at most 50 characters.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is excluded from JSON serialization and is populated on reads only
	// when explicitly requested (the login path).
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account: RoleUser or RoleAdmin.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
