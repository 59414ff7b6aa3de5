package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Teller/internal/model"
)

// UserRepository — доступ к пользователям и их refresh-токенам.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// SaveRefreshToken сохраняет выданный refresh-токен.
	SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error
	// GetRefreshToken возвращает токен по значению.
	GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error)
	// RevokeRefreshToken помечает токен отозванным.
	RevokeRefreshToken(ctx context.Context, token string) error
	// PurgeExpiredTokens удаляет токены с истёкшим сроком.
	PurgeExpiredTokens(ctx context.Context, now time.Time) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *userRepo) GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	var t model.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *userRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

func (r *userRepo) PurgeExpiredTokens(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.RefreshToken{}).Error
}
