// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/utils"
	"github.com/kuppisite/video-catalog/models"
)

// register handles POST /api/auth/register: it creates an account and
// immediately issues a token for it.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("registration payload is not valid JSON")
		writeFailure(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.RegisterUser(r.Context(), req)
	if err != nil {
		log.Debug().Err(err).Msg("registration failed")
		writeError(w, err)
		return
	}

	token, err := h.services.CreateToken(r.Context(), user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.UserID).Msg("token issuance failed after registration")
		writeError(w, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, models.TokenResponse{ //nolint:errcheck
		Success: true,
		Token:   token.SignedString,
		User:    user,
	}, http.StatusCreated)
}

// login handles POST /api/auth/login.
//
// All credential failures surface as the same 401 body, so responses do not
// reveal whether the email exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("login payload is not valid JSON")
		writeFailure(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.Login(r.Context(), req)
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.CreateToken(r.Context(), user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.UserID).Msg("token issuance failed after login")
		writeError(w, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.TokenResponse{ //nolint:errcheck
		Success: true,
		Token:   token.SignedString,
		User:    user,
	}, http.StatusOK)
}

// me handles GET /api/auth/me. The auth middleware has already loaded the
// current user into the context; no further store round-trip is needed.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Warn().Msg("me handler reached without an authenticated user in context")
		writeUnauthorized(w)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, Data: user}, http.StatusOK) //nolint:errcheck
}

// logout handles GET /api/auth/logout.
//
// Tokens are stateless and cannot be revoked server-side, so this endpoint
// only acknowledges; clients are expected to discard the token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Response{ //nolint:errcheck
		Success: true,
		Message: "User logged out successfully",
	}, http.StatusOK)
}
