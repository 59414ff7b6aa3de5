package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Teller/internal/model"
	"Teller/internal/repo"
)

var (
	// ErrUsernameTaken — username или email уже заняты.
	ErrUsernameTaken = errors.New("username or email already taken")
	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrRefreshInvalid — refresh-токен не найден, отозван или истёк.
	ErrRefreshInvalid = errors.New("refresh token is invalid or expired")
)

// Tokens — выданная пара токенов.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // секунды жизни access-токена
}

// AuthService — регистрация, вход и ротация refresh-токенов.
type AuthService struct {
	users      repo.UserRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService конструктор.
func NewAuthService(users repo.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Register создаёт пользователя и сразу выдаёт пару токенов.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, Tokens, error) {
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, Tokens{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Tokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Tokens{}, fmt.Errorf("hashing password: %w", err)
	}
	user, err := s.users.CreateUser(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "USER",
	})
	if err != nil {
		// гонка на уникальном индексе тоже считается конфликтом
		return nil, Tokens{}, ErrUsernameTaken
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, Tokens{}, err
	}
	return user, tokens, nil
}

// Login проверяет пароль и выдаёт пару токенов.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, Tokens, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Tokens{}, ErrInvalidCredentials
		}
		return nil, Tokens{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, Tokens{}, ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, Tokens{}, err
	}
	return user, tokens, nil
}

// Refresh валидирует refresh-токен и ротирует пару: старый токен отзывается,
// в ответе — новый access и новый refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.User, Tokens, error) {
	stored, err := s.users.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Tokens{}, ErrRefreshInvalid
		}
		return nil, Tokens{}, err
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, Tokens{}, ErrRefreshInvalid
	}
	user, err := s.users.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, Tokens{}, ErrRefreshInvalid
	}
	if err := s.users.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, Tokens{}, err
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, Tokens{}, err
	}
	return user, tokens, nil
}

// issueTokens подписывает access JWT и сохраняет новый refresh-токен.
func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (Tokens, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"uid":  user.ID,
		"role": user.Role,
		"exp":  now.Add(s.accessTTL).Unix(),
		"iat":  now.Unix(),
	}
	if user.ClientID != nil {
		claims["clientId"] = *user.ClientID
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return Tokens{}, fmt.Errorf("signing access token: %w", err)
	}

	refresh := uuid.NewString()
	err = s.users.SaveRefreshToken(ctx, &model.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.refreshTTL),
	})
	if err != nil {
		return Tokens{}, fmt.Errorf("saving refresh token: %w", err)
	}

	return Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}
