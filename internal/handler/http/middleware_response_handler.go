package http

import "net/http"

// responseWriter decorates http.ResponseWriter to capture the status code and
// body size for the logging middleware.
type responseWriter struct {
	http.ResponseWriter

	status int
	size   int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	// handlers that never call WriteHeader implicitly respond 200
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}
