package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kuppisite/video-catalog/models"
)

// HTTPClientConfig configures the REST catalog client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpCatalogClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPCatalogClient builds a [CatalogClient] speaking the server's REST
// API. Zero-valued config fields fall back to sensible defaults.
func NewHTTPCatalogClient(cfg HTTPClientConfig) CatalogClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpCatalogClient{client: cli}
}

func (h *httpCatalogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCatalogClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.storeTokenResponse(resp)
}

func (h *httpCatalogClient) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.storeTokenResponse(resp)
}

func (h *httpCatalogClient) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var ur models.UserResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}
	return ur.Data, nil
}

func (h *httpCatalogClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpCatalogClient) ListVideos(ctx context.Context) ([]models.Video, error) {
	resp, err := h.authedRequest(ctx).Get("/api/videos")
	if err != nil {
		return nil, fmt.Errorf("list videos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.VideoListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode video list response: %w", err)
	}
	return lr.Data, nil
}

func (h *httpCatalogClient) GetVideo(ctx context.Context, videoID int64) (models.Video, error) {
	resp, err := h.authedRequest(ctx).Get(videoPath(videoID))
	if err != nil {
		return models.Video{}, fmt.Errorf("get video request: %w", err)
	}

	return decodeVideoResponse(resp)
}

func (h *httpCatalogClient) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(video).
		Post("/api/videos")
	if err != nil {
		return models.Video{}, fmt.Errorf("create video request: %w", err)
	}

	return decodeVideoResponse(resp)
}

func (h *httpCatalogClient) UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(videoPath(update.VideoID))
	if err != nil {
		return models.Video{}, fmt.Errorf("update video request: %w", err)
	}

	return decodeVideoResponse(resp)
}

func (h *httpCatalogClient) DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := h.authedRequest(ctx).Delete(videoPath(videoID))
	if err != nil {
		return fmt.Errorf("delete video request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCatalogClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// storeTokenResponse decodes a `{success, token, user}` body and remembers the
// token for subsequent authenticated calls.
func (h *httpCatalogClient) storeTokenResponse(resp *resty.Response) (models.User, error) {
	var tr models.TokenResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.User{}, fmt.Errorf("decode token response: %w", err)
	}

	h.SetToken(tr.Token)
	return tr.User, nil
}

func decodeVideoResponse(resp *resty.Response) (models.Video, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Video{}, err
	}

	var vr models.VideoResponse
	if err := json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.Video{}, fmt.Errorf("decode video response: %w", err)
	}
	return vr.Data, nil
}

func videoPath(videoID int64) string {
	return "/api/videos/" + strconv.FormatInt(videoID, 10)
}
