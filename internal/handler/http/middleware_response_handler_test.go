package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	n, err := rw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	// implicit WriteHeader on first Write
	_, _ = rw.Write([]byte("ok"))

	assert.Equal(t, http.StatusOK, rw.status)
}

func TestResponseWriter_AccumulatesSizeAcrossWrites(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	_, _ = rw.Write([]byte("hello "))
	_, _ = rw.Write([]byte("world"))

	assert.Equal(t, 11, rw.size)
}
