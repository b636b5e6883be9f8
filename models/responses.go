package models

// Response is the uniform failure/acknowledgement envelope returned by the
// API. Every error response carries Success=false and a short message that
// never leaks internal details (driver errors, stack traces, or whether a
// given email is registered).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// TokenResponse is returned by successful registration and login calls.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// UserResponse is returned by the "who am I" endpoint.
type UserResponse struct {
	Success bool `json:"success"`
	Data    User `json:"data"`
}

// VideoResponse wraps a single catalog entry.
type VideoResponse struct {
	Success bool  `json:"success"`
	Data    Video `json:"data"`
}

// VideoListResponse wraps the full catalog listing. Count duplicates
// len(Data) so clients can validate the payload without iterating it.
type VideoListResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Data    []Video `json:"data"`
}

// DeleteResponse acknowledges a successful deletion. Data is always an
// empty object, mirroring the shape of the other success envelopes.
type DeleteResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}
