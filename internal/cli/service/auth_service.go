package service

import (
	"context"
	"fmt"

	"Teller/internal/cli/api"
	"Teller/internal/cli/auth"
	"Teller/internal/cli/model"
	"Teller/internal/cli/repo"
	"Teller/internal/cli/store"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login выполняет вход и сохраняет полученную пару токенов.
	Login(ctx context.Context, username, password string) (model.AuthResponse, error)

	// Register регистрирует пользователя и сохраняет пару токенов из ответа.
	Register(ctx context.Context, username, email, password string) (model.AuthResponse, error)

	// Logout очищает локальные учётные данные и сбрасывает store.
	Logout() error

	// CurrentUser возвращает сохранённый профиль, если пользователь вошёл.
	CurrentUser() (auth.Credentials, error)

	// IsAuthenticated — есть ли действующий (не истёкший) access-токен.
	IsAuthenticated() bool
}

type authService struct {
	api      *api.Client
	creds    repo.CredentialStore
	appStore *store.AppStore
}

// NewAuthService конструктор сервиса аутентификации.
func NewAuthService(client *api.Client, creds repo.CredentialStore, appStore *store.AppStore) AuthService {
	return &authService{api: client, creds: creds, appStore: appStore}
}

func (s *authService) Login(ctx context.Context, username, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := s.api.PostJSON(ctx, "/auth/login", model.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := s.persist(resp); err != nil {
		return model.AuthResponse{}, fmt.Errorf("saving credentials: %w", err)
	}
	return resp, nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := s.api.PostJSON(ctx, "/auth/register",
		model.RegisterRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := s.persist(resp); err != nil {
		return model.AuthResponse{}, fmt.Errorf("saving credentials: %w", err)
	}
	return resp, nil
}

// persist сохраняет пару токенов вместе с профилем одним действием.
func (s *authService) persist(resp model.AuthResponse) error {
	if resp.AccessToken == "" {
		return fmt.Errorf("auth response carries no access token")
	}
	return s.creds.Save(auth.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Username:     resp.Username,
		Email:        resp.Email,
		Role:         resp.Role,
		ClientID:     resp.ClientID,
	})
}

func (s *authService) Logout() error {
	// порядок важен: сначала токены, затем кэш данных
	if err := s.creds.Clear(); err != nil {
		return err
	}
	if s.appStore != nil {
		s.appStore.Reset()
	}
	return nil
}

func (s *authService) CurrentUser() (auth.Credentials, error) {
	creds, err := s.creds.Load()
	if err != nil {
		return auth.Credentials{}, err
	}
	if creds.Empty() {
		return auth.Credentials{}, fmt.Errorf("not logged in")
	}
	return creds, nil
}

func (s *authService) IsAuthenticated() bool {
	creds, err := s.creds.Load()
	if err != nil {
		return false
	}
	return !auth.TokenExpired(creds.AccessToken)
}
