// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/kuppisite/video-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the authenticated user in the request context.
//
// The stored value is the full [models.User] as re-read from the credential
// store during that request, so the Role field reflects the current stored
// role, not the role embedded in the presented token.
var CurrentUserCtxKey = contextKey("currentUser")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}

// SetUserToContext returns a child context carrying user under
// [CurrentUserCtxKey].
func SetUserToContext(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}
