package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/utils"
)

// requireRole builds a middleware that only admits users whose stored role is
// one of roles. It must run after the auth middleware: the user it checks is
// the one auth loaded from the store, not a claim from the token.
func (h *Handler) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				log.Warn().Msg("role check reached without an authenticated user in context")
				writeUnauthorized(w)
				return
			}

			if !slices.Contains(roles, user.Role) {
				log.Debug().
					Str("role", user.Role).
					Int64("user_id", user.UserID).
					Msg("request rejected: insufficient role")
				writeFailure(w,
					fmt.Sprintf("User role %s is not authorized to access this route", user.Role),
					http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
