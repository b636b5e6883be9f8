// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/internal/utils"
)

const bearerPrefix = "Bearer "

// auth is the bearer-token gate for protected routes.
//
// It parses the presented token and then re-reads the user from the store,
// so a deleted account or a changed role takes effect on the very next
// request regardless of what the token claims. Every rejection path writes
// the same 401 body; the real cause is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r)
		if err != nil {
			log.Debug().Err(err).Msg("request rejected: no usable bearer token")
			writeUnauthorized(w)
			return
		}

		token, err := h.services.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("request rejected: token did not verify")
			writeUnauthorized(w)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Warn().Err(err).Msg("verified token carries malformed subject")
			writeUnauthorized(w)
			return
		}

		user, err := h.services.GetUserByID(r.Context(), userID)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrStoreUnavailable):
			log.Error().Err(err).Int64("user_id", userID).Msg("auth lookup failed: store unavailable")
			writeError(w, err)
			return
		default:
			// covers ErrNoUserWasFound and anything unexpected: fail closed
			log.Debug().Err(err).Int64("user_id", userID).Msg("request rejected: token subject not resolvable")
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetUserToContext(r.Context(), user)))
	})
}

// getTokenFromAuthHeader extracts the raw token string from the
// "Authorization: Bearer <token>" header. The scheme prefix must match
// exactly, including case.
func getTokenFromAuthHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
