package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppisite/video-catalog/models"
)

func newTestClient(t *testing.T, handler http.Handler) (CatalogClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPCatalogClient(HTTPClientConfig{BaseURL: srv.URL}), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestRegister_StoresIssuedToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.Email)

		writeJSON(t, w, http.StatusCreated, models.TokenResponse{
			Success: true,
			Token:   "issued-token",
			User:    models.User{UserID: 1, Name: req.Name, Email: req.Email, Role: models.RoleUser},
		})
	}))

	user, err := client.Register(context.Background(), models.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "issued-token", client.Token())
}

func TestLogin_ErrorCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.Response{Success: false, Message: "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, client.Token(), "no token may be stored on a failed login")
}

func TestAuthedRequests_AttachBearerToken(t *testing.T) {
	var seenAuthHeader string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuthHeader = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, models.VideoListResponse{Success: true, Count: 0, Data: []models.Video{}})
	}))

	client.SetToken("my-token")
	_, err := client.ListVideos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer my-token", seenAuthHeader)
}

func TestListVideos_DecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/videos", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VideoListResponse{
			Success: true,
			Count:   2,
			Data: []models.Video{
				{VideoID: 2, Title: "Newest"},
				{VideoID: 1, Title: "Oldest"},
			},
		})
	}))

	videos, err := client.ListVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Newest", videos[0].Title)
}

func TestGetVideo_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/videos/404", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.Response{Success: false, Message: "Video not found"})
	}))

	_, err := client.GetVideo(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVideo_ForbiddenForNonAdmins(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.Response{
			Success: false,
			Message: "User role user is not authorized to access this route",
		})
	}))

	_, err := client.CreateVideo(context.Background(), models.Video{Title: "Intro"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateVideo_SendsOnlyChangedFields(t *testing.T) {
	title := "Renamed"

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/videos/5", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "Renamed"}, body)

		writeJSON(t, w, http.StatusOK, models.VideoResponse{
			Success: true,
			Data:    models.Video{VideoID: 5, Title: title},
		})
	}))

	updated, err := client.UpdateVideo(context.Background(), models.VideoUpdate{VideoID: 5, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestLogout_ClearsStoredToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Response{Success: true, Message: "User logged out successfully"})
	}))

	client.SetToken("my-token")
	require.NoError(t, client.Logout(context.Background()))

	assert.Empty(t, client.Token())
}

func TestMapHTTPError_ServiceUnavailable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.Response{Success: false, Message: "Database connection error"})
	}))

	_, err := client.ListVideos(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
