package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"Teller/internal/service"
)

// page — конверт постраничных списков, форма повторяет Spring Page.
type page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

func newPage[T any](content []T, total int64, number, size int) page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        number,
		Size:          size,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError маппит доменные ошибки на HTTP-статусы и JSON-конверты
// {"message": ...} / {"errors": [...]}.
func writeError(w http.ResponseWriter, err error) {
	if ve, ok := service.IsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": ve.Errors})
		return
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeMessage(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrRefreshInvalid):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrAccountNotEmpty),
		errors.Is(err, service.ErrAccountInactive),
		errors.Is(err, service.ErrSameAccount):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
