package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/utils"
	"github.com/klaus-0-0/vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// applies adapterCfg.RequestTimeout to every request.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signup", req)
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts credentials to path and stores the returned token. The
// token is read from the response body, or from the Authorization header
// when the body carries none.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if authResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
		}
		authResp.Token = token
	}

	h.SetToken(authResp.Token)
	h.logger.Debug().Str("path", path).Int64("user_id", authResp.User.UserID).Msg("authenticated")

	return authResp, nil
}

// ListItems implements [ServerAdapter]. GET /api/vault/items.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.StoredItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.StoredItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return items, nil
}

// CreateItem implements [ServerAdapter]. POST /api/vault/items.
func (h *httpServerAdapter) CreateItem(ctx context.Context, blob models.EncryptedBlob) (models.StoredItem, error) {
	var created models.StoredItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateItemRequest{EncryptedData: blob}).
		SetResult(&created).
		Post("/api/vault/items")
	if err != nil {
		return models.StoredItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredItem{}, err
	}

	return created, nil
}

// DeleteItem implements [ServerAdapter]. DELETE /api/vault/items/{id}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/vault/items/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
