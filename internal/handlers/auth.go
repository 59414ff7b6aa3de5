package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"Teller/internal/model"
	"Teller/internal/service"
)

// AuthHandler обслуживает /auth/*.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.SugaredLogger
}

// NewAuthHandler конструктор.
func NewAuthHandler(auth *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse — форма ответа login/register/refresh.
type authResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	ClientID     *int64 `json:"clientId,omitempty"`
}

func newAuthResponse(user *model.User, tokens service.Tokens) authResponse {
	return authResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		ClientID:     user.ClientID,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []string{"username, email and password are required"},
		})
		return
	}
	user, tokens, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAuthResponse(user, tokens))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user, tokens, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAuthResponse(user, tokens))
}

// Refresh принимает токен query-параметром: POST /auth/refresh?refreshToken=...
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("refreshToken")
	if token == "" {
		writeMessage(w, http.StatusBadRequest, "refreshToken query parameter is required")
		return
	}
	user, tokens, err := h.auth.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAuthResponse(user, tokens))
}
