package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/service"
	"github.com/kuppisite/video-catalog/models"
)

// ---- function-stub service mocks ----

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserByIDFn  func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockVideoService struct {
	listVideosFn  func(ctx context.Context) ([]models.Video, error)
	getVideoFn    func(ctx context.Context, videoID int64) (models.Video, error)
	createVideoFn func(ctx context.Context, video models.Video) (models.Video, error)
	updateVideoFn func(ctx context.Context, update models.VideoUpdate) (models.Video, error)
	deleteVideoFn func(ctx context.Context, videoID int64) error
}

func (m *mockVideoService) ListVideos(ctx context.Context) ([]models.Video, error) {
	return m.listVideosFn(ctx)
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID int64) (models.Video, error) {
	return m.getVideoFn(ctx, videoID)
}

func (m *mockVideoService) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	return m.createVideoFn(ctx, video)
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error) {
	return m.updateVideoFn(ctx, update)
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID int64) error {
	return m.deleteVideoFn(ctx, videoID)
}

// ---- helpers ----

func testServerConfig() config.Server {
	return config.Server{CORSOrigins: []string{"*"}}
}

func newTestHandler(auth service.AuthService, video service.VideoService) *Handler {
	return NewHandler(&service.Services{
		AuthService:  auth,
		VideoService: video,
	}, testServerConfig(), logger.Nop())
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-id middleware that does it in the full chain.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// ---- NewHandler ----

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, testServerConfig(), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, testServerConfig(), logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresCORSOrigins(t *testing.T) {
	cfg := config.Server{CORSOrigins: []string{"http://localhost:3000"}}
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, cfg.CORSOrigins, h.corsOrigins)
}

// ---- Init: route registration ----

func newTestRouterHandler(t *testing.T) *Handler {
	t.Helper()

	// the auth middleware rejects every request, which is enough to prove
	// the protected routes are registered
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrNameRequired
		},
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrCredentialsRequired
		},
	}

	return newTestHandler(auth, &mockVideoService{})
}

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	// behind the bearer-token gate (auth middleware answers 401, not 404/405)
	{http.MethodGet, "/api/auth/me"},
	{http.MethodGet, "/api/auth/logout"},
	{http.MethodGet, "/api/videos"},
	{http.MethodGet, "/api/videos/1"},
	{http.MethodPost, "/api/videos"},
	{http.MethodPut, "/api/videos/1"},
	{http.MethodDelete, "/api/videos/1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouterHandler(t).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Protected routes return 401 — that
			// still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouterHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := newTestRouterHandler(t).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
