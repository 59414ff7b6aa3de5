package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrSessionExpired сигнализирует о завершении сессии: refresh-токен
// отсутствует, истёк или сервер отказал в обновлении. Учётные данные к этому
// моменту уже очищены.
var ErrSessionExpired = errors.New("session expired")

// StatusError — не-2xx ответ сервера с извлечённым сообщением.
type StatusError struct {
	Code    int
	Message string
	Errors  []string
}

func (e *StatusError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("server returned %d: %s", e.Code, strings.Join(e.Errors, "; "))
	}
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// newStatusError извлекает message либо список errors из тела ответа.
func newStatusError(code int, body []byte) *StatusError {
	se := &StatusError{Code: code}
	var payload struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		se.Message = payload.Message
		se.Errors = payload.Errors
	}
	if se.Message == "" && len(se.Errors) == 0 {
		se.Message = strings.TrimSpace(string(body))
	}
	return se
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
