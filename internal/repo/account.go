package repo

import (
	"context"

	"gorm.io/gorm"

	"Teller/internal/model"
)

// AccountRepository — доступ к счетам.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByNumber(ctx context.Context, number string) (*model.Account, error)
	// List возвращает страницу счетов с клиентами и общее число.
	List(ctx context.Context, offset, limit int) ([]model.Account, int64, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Account, error)
	// UpdateBalance записывает новый баланс счёта.
	UpdateBalance(ctx context.Context, id int64, balance float64) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total, active int64, err error)
	TotalBalance(ctx context.Context) (float64, error)
}

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository создаёт реализацию репозитория счетов.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Preload("Client").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) GetByNumber(ctx context.Context, number string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Preload("Client").Where("number = ?", number).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) List(ctx context.Context, offset, limit int) ([]model.Account, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *accountRepo) ListByClient(ctx context.Context, clientID int64) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepo) UpdateBalance(ctx context.Context, id int64, balance float64) error {
	return r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}

func (r *accountRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("active", active).Error
}

func (r *accountRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Account{}, id).Error
}

func (r *accountRepo) Count(ctx context.Context) (total, active int64, err error) {
	if err = r.db.WithContext(ctx).Model(&model.Account{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&model.Account{}).Where("active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *accountRepo) TotalBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	return total, err
}
