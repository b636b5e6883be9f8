package http

import (
	"net/http"
	"slices"
)

// withCORS applies the configured origin allow-list.
//
// Requests without an Origin header (curl, server-to-server) pass through
// untouched. Allowed origins get the usual response headers and preflight
// handling; disallowed origins are rejected outright rather than silently
// served without CORS headers, so misconfigured frontends fail loudly.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.originAllowed(origin) {
			writeFailure(w, msgNotAllowedCORS, http.StatusForbidden)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	return slices.Contains(h.corsOrigins, "*") || slices.Contains(h.corsOrigins, origin)
}
