package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"Teller/internal/cli/model"
)

// handleUnauthorized восстанавливает запрос после 401.
//
// Флаг refreshing переключается под мьютексом ДО сетевого вызова refresh,
// поэтому из N запросов, одновременно получивших 401, ровно один выполняет
// обновление токена; остальные встают в очередь waiters и повторяют свой
// запрос с токеном, который им раздаст завершившийся refresh. Повтор —
// строго один: если и он вернул 401, ошибка уходит вызывающему.
func (c *Client) handleUnauthorized(ctx context.Context, method, path string, body any) (int, []byte, error) {
	c.mu.Lock()
	if c.refreshing {
		// Кто-то уже обновляет токен: ждём его результата.
		ch := make(chan string, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()
		c.logger.Debugw("waiting for in-flight token refresh", "path", path)
		select {
		case token, ok := <-ch:
			if !ok {
				return 0, nil, ErrSessionExpired
			}
			return c.send(ctx, method, path, body, token)
		case <-ctx.Done():
			// Инициатор запроса отменился; broadcast в буферизованный канал
			// не заблокирует refresher.
			return 0, nil, ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	token, err := c.refresh(ctx)

	c.mu.Lock()
	c.refreshing = false
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()

	if err != nil {
		for _, ch := range waiters {
			close(ch)
		}
		c.endSession(path)
		return 0, nil, err
	}

	for _, ch := range waiters {
		ch <- token
	}
	c.logger.Debugw("token refreshed, replaying request", "path", path, "waiters", len(waiters))
	return c.send(ctx, method, path, body, token)
}

// refresh обменивает refresh-токен на новую пару и сохраняет её.
// Ответ без refresh-токена ротацию не выполняет: действующий refresh-токен
// остаётся в хранилище нетронутым. Ответ без access-токена — отказ.
func (c *Client) refresh(ctx context.Context) (string, error) {
	creds, err := c.creds.Load()
	if err != nil {
		return "", fmt.Errorf("loading credentials: %w", err)
	}
	if creds.RefreshToken == "" {
		return "", fmt.Errorf("%w: no refresh token stored", ErrSessionExpired)
	}

	path := "/auth/refresh?refreshToken=" + url.QueryEscape(creds.RefreshToken)
	status, data, err := c.send(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return "", fmt.Errorf("%w: refresh call failed: %v", ErrSessionExpired, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %v", ErrSessionExpired, newStatusError(status, data))
	}

	var ar model.AuthResponse
	if err := json.Unmarshal(data, &ar); err != nil {
		return "", fmt.Errorf("%w: decoding refresh response: %v", ErrSessionExpired, err)
	}
	if ar.AccessToken == "" {
		return "", fmt.Errorf("%w: refresh response carries no access token", ErrSessionExpired)
	}

	creds.AccessToken = ar.AccessToken
	if ar.RefreshToken != "" {
		creds.RefreshToken = ar.RefreshToken
	}
	if err := c.creds.Save(creds); err != nil {
		return "", fmt.Errorf("persisting refreshed credentials: %w", err)
	}
	return ar.AccessToken, nil
}

// endSession очищает учётные данные и уведомляет о завершении сессии,
// передавая путь исходного запроса как точку возврата после повторного входа.
func (c *Client) endSession(returnPath string) {
	if err := c.creds.Clear(); err != nil {
		c.logger.Errorw("clearing credentials", "error", err)
	}
	c.logger.Debugw("session ended", "returnPath", returnPath)
	if c.onSessionEnded != nil {
		c.onSessionEnded(returnPath, true)
	}
}
