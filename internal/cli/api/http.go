package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"Teller/internal/cli/repo"
)

// SessionEndedHandler is invoked when the session cannot be recovered:
// returnPath is the path of the request that hit the dead end, expired is
// true when the cause is an expired/invalid refresh token. The CLI uses it
// to tell the user to log in again; a UI would redirect to the login view.
type SessionEndedHandler func(returnPath string, expired bool)

// Client — авторизованный HTTP-клиент: единственная дорога к backend API.
// Прозрачно подставляет bearer-токен и восстанавливает сессию после 401,
// координируя единственный refresh на любое число одновременных запросов.
type Client struct {
	baseURL string
	http    *http.Client
	creds   repo.CredentialStore
	logger  *zap.SugaredLogger

	onSessionEnded SessionEndedHandler

	// refresh coordination state, guarded by mu.
	mu         sync.Mutex
	refreshing bool
	waiters    []chan string
}

// Option настраивает Client при создании.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger enables debug logging of the pipeline.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.logger = l }
}

// WithSessionEndedHandler sets the session-end callback.
func WithSessionEndedHandler(h SessionEndedHandler) Option {
	return func(c *Client) { c.onSessionEnded = h }
}

// New создаёт клиент поверх базового URL сервера и хранилища учётных данных.
func New(baseURL string, creds repo.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		creds:   creds,
		logger:  zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// isAuthEndpoint: запросы к login/register/refresh идут без bearer-токена и
// никогда не попадают в ветку восстановления после 401 — иначе 401 от самого
// refresh зациклил бы пайплайн.
func isAuthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/auth/login") ||
		strings.HasPrefix(path, "/auth/register") ||
		strings.HasPrefix(path, "/auth/refresh")
}

// do выполняет запрос с подстановкой токена и обработкой 401.
// Возвращает статус и тело; транспортные ошибки — как есть.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if isAuthEndpoint(path) {
		return c.send(ctx, method, path, body, "")
	}

	token := ""
	if creds, err := c.creds.Load(); err == nil {
		token = creds.AccessToken
	}

	status, data, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return 0, nil, err
	}
	if status == http.StatusUnauthorized {
		c.logger.Debugw("401 received, entering refresh flow", "method", method, "path", path)
		return c.handleUnauthorized(ctx, method, path, body)
	}
	return status, data, nil
}

// send собирает и отправляет один HTTP-запрос. Тело сериализуется в JSON
// при каждом вызове, поэтому повтор запроса после refresh безопасен.
func (c *Client) send(ctx context.Context, method, path string, body any, token string) (int, []byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

// GetJSON выполняет GET и декодирует ответ в out (out может быть nil).
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.roundTrip(ctx, http.MethodGet, path, nil, out)
}

// PostJSON выполняет POST с JSON-телом (in может быть nil) и декодирует ответ в out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.roundTrip(ctx, http.MethodPost, path, in, out)
}

// PutJSON выполняет PUT с JSON-телом и декодирует ответ в out.
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.roundTrip(ctx, http.MethodPut, path, in, out)
}

// DeleteJSON выполняет DELETE.
func (c *Client) DeleteJSON(ctx context.Context, path string) error {
	return c.roundTrip(ctx, http.MethodDelete, path, nil, nil)
}

// GetBlob выполняет GET и возвращает сырое тело ответа (PDF-выписка).
func (c *Client) GetBlob(ctx context.Context, path string) ([]byte, error) {
	status, data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, newStatusError(status, data)
	}
	return data, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	status, data, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return newStatusError(status, data)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}
