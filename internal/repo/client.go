package repo

import (
	"context"

	"gorm.io/gorm"

	"Teller/internal/model"
)

// ClientRepository — доступ к клиентам банка.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	// GetWithAccounts возвращает клиента вместе с его счетами.
	GetWithAccounts(ctx context.Context, id int64) (*model.Client, error)
	// List возвращает страницу клиентов (свежие первыми) и общее число.
	List(ctx context.Context, offset, limit int) ([]model.Client, int64, error)
	// Search ищет по подстроке в имени/фамилии без учёта регистра.
	Search(ctx context.Context, q string, offset, limit int) ([]model.Client, int64, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type clientRepo struct {
	db *gorm.DB
}

// NewClientRepository создаёт реализацию репозитория клиентов.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) GetWithAccounts(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).Preload("Accounts").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context, offset, limit int) ([]model.Client, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepo) Search(ctx context.Context, q string, offset, limit int) ([]model.Client, int64, error) {
	pattern := "%" + q + "%"
	base := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("LOWER(last_name) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?)", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var clients []model.Client
	err := base.Order("created_at DESC").Offset(offset).Limit(limit).Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Count(&total).Error
	return total, err
}
