package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Teller/internal/model"
)

// TransactionRepository — доступ к транзакциям.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) (*model.Transaction, error)
	// ListAll возвращает все транзакции, свежие первыми.
	ListAll(ctx context.Context, limit int) ([]model.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Transaction, error)
	// ListByAccountBetween возвращает транзакции счёта в интервале [from, to).
	ListByAccountBetween(ctx context.Context, accountID int64, from, to time.Time) ([]model.Transaction, error)
	Count(ctx context.Context) (int64, error)
}

type transactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepository создаёт реализацию репозитория транзакций.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *transactionRepo) ListAll(ctx context.Context, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	q := r.db.WithContext(ctx).Preload("Account").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepo) ListByAccount(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepo) ListByAccountBetween(ctx context.Context, accountID int64, from, to time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND created_at >= ? AND created_at < ?", accountID, from, to).
		Order("created_at ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&total).Error
	return total, err
}
