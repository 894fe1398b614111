package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/common"
	"github.com/prismai/prism-cli/internal/logging"
)

// healthCheckTimeout bounds the liveness probe only. Generation calls run
// without a deadline: the user waits, and a failed call surfaces immediately.
const healthCheckTimeout = 4 * time.Second

// HTTPClient talks JSON over HTTP to the Prism backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *HTTPClient) ClearTokens() {
	c.SetTokens("", "")
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tp models.TokenPair
	if err := c.postForm(ctx, "/auth/login", form, &tp); err != nil {
		return nil, err
	}
	return &tp, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.TokenPair, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var tp models.TokenPair
	if err := c.postJSON(ctx, "/auth/register", body, &tp, false); err != nil {
		return nil, err
	}
	return &tp, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/auth/me", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GenerateBlog(ctx context.Context, req models.BlogRequest) (*models.BlogResult, error) {
	var res models.BlogResult
	if err := c.postJSON(ctx, "/generate-blog", req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GenerateVideoScript(ctx context.Context, req models.VideoScriptRequest) (*models.VideoScriptResult, error) {
	var res models.VideoScriptResult
	if err := c.postJSON(ctx, "/generate-video-script", req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GenerateImages(ctx context.Context, req models.ImageRequest) (*models.ImageResult, error) {
	var res models.ImageResult
	if err := c.postJSON(ctx, "/generate-image", req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.ErrUnreachable
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return common.ErrUnreachable
	}
	return nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var s models.AdminStats
	if err := c.getJSON(ctx, "/admin/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.getJSON(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AdminUpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/admin/users/"+id, upd, nil, true)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, true)
}

func (c *HTTPClient) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// Authentication endpoint: never attach a (possibly stale) bearer token.
	return c.do(req, out, false)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out any, authenticated bool) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, authenticated)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, authenticated)
}

// do sends the request and classifies the response:
//
//   - 2xx            decode JSON into out (if out is non-nil)
//   - 401 (auth'd)   common.ErrSessionExpired (fail closed, no refresh)
//   - other non-2xx  *RequestError with the backend "detail" message
//   - no response    common.ErrUnreachable
func (c *HTTPClient) do(req *http.Request, out any, authenticated bool) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if authenticated {
		if token := c.bearer(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug(req.Context(), "request", "method", req.Method, "path", req.URL.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "path", req.URL.Path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	c.log.Debug(req.Context(), "response", "path", req.URL.Path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		return common.ErrSessionExpired
	}

	return &RequestError{Status: resp.StatusCode, Message: errorDetail(resp)}
}

// errorDetail extracts the backend's structured error message, falling back
// to the HTTP status text when the body is absent or unparsable.
func errorDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return http.StatusText(resp.StatusCode)
}
