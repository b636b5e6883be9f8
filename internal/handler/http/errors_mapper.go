package http

import (
	"errors"
	"net/http"

	"github.com/kuppisite/video-catalog/internal/service"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/internal/utils"
	"github.com/kuppisite/video-catalog/models"
)

// External messages. Anything not covered by errorMessageMap falls back to
// msgServerError so raw driver or internal errors never reach a client.
const (
	msgServerError    = "Server error"
	msgNotAuthorized  = "Not authorized to access this route"
	msgInvalidJSON    = "Invalid JSON was passed"
	msgNotAllowedCORS = "Not allowed by CORS"
)

var errorStatusMap = map[error]int{
	service.ErrNameRequired:        http.StatusBadRequest,
	service.ErrNameTooLong:         http.StatusBadRequest,
	service.ErrEmailInvalid:        http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrCredentialsRequired: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrTitleRequired:       http.StatusBadRequest,
	service.ErrDescriptionRequired: http.StatusBadRequest,
	service.ErrYouTubeIDRequired:   http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:    http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrVideoNotFound:      http.StatusNotFound,
	store.ErrStoreUnavailable:   http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap is the single mapping from internal error kind to external
// message. Per-handler string literals are deliberately avoided: routing every
// failure through one table keeps indistinguishability guarantees (e.g.
// unknown email vs. wrong password both read "Invalid credentials") intact as
// the codebase grows.
var errorMessageMap = map[error]string{
	service.ErrNameRequired:        "Please provide a name",
	service.ErrNameTooLong:         "Name cannot be more than 50 characters",
	service.ErrEmailInvalid:        "Please provide a valid email",
	service.ErrPasswordTooShort:    "Password must be at least 6 characters",
	service.ErrCredentialsRequired: "Please provide an email and password",

	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: msgNotAuthorized,

	service.ErrTitleRequired:       "Title is required",
	service.ErrDescriptionRequired: "Description is required",
	service.ErrYouTubeIDRequired:   "YouTube Video ID is required",
	service.ErrNoFieldsToUpdate:    "No fields to update",

	store.ErrEmailAlreadyExists: "Email already registered",
	store.ErrNoUserWasFound:     "User not found",
	store.ErrVideoNotFound:      "Video not found",
	store.ErrStoreUnavailable:   "Database connection error",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgServerError
}

// writeError maps err through the status and message tables and writes the
// uniform failure envelope.
func writeError(w http.ResponseWriter, err error) {
	writeFailure(w, messageFromError(err), statusFromError(err))
}

// writeFailure writes a `{success:false, message}` body with the given status.
func writeFailure(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, statusCode) //nolint:errcheck // nothing left to do on write failure
}

// writeUnauthorized is the single rejection path of the authentication
// middleware: every failure mode produces the same 401 body.
func writeUnauthorized(w http.ResponseWriter) {
	writeFailure(w, msgNotAuthorized, http.StatusUnauthorized)
}
