package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"Teller/internal/model"
	"Teller/internal/repo"
)

var (
	// ErrAccountNotEmpty — счёт с ненулевым балансом удалить нельзя.
	ErrAccountNotEmpty = errors.New("account balance must be zero before deletion")
	// ErrAccountInactive — операция над деактивированным счётом.
	ErrAccountInactive = errors.New("account is not active")
)

// Код банка в номерах счетов: страна TG, банк EGA, отделение 00001.
const (
	countryCode = "TG"
	bankCode    = "EGA"
	branchCode  = "00001"
)

// AccountService — открытие, деактивация и удаление счетов.
type AccountService struct {
	accounts repo.AccountRepository
	clients  repo.ClientRepository
}

// NewAccountService конструктор.
func NewAccountService(accounts repo.AccountRepository, clients repo.ClientRepository) *AccountService {
	return &AccountService{accounts: accounts, clients: clients}
}

// Open открывает счёт указанного типа для клиента; номер генерируется.
func (s *AccountService) Open(ctx context.Context, clientID int64, accType string) (*model.Account, error) {
	if accType != model.AccountTypeSavings && accType != model.AccountTypeCurrent {
		return nil, &ValidationError{Errors: []string{"typeCompte must be EPARGNE or COURANT"}}
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	number, err := generateAccountNumber()
	if err != nil {
		return nil, err
	}
	account := &model.Account{
		Number:   number,
		Type:     accType,
		Balance:  0,
		Active:   true,
		ClientID: client.ID,
	}
	return s.accounts.Create(ctx, account)
}

// Get возвращает счёт по ID.
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// GetByNumber возвращает счёт по номеру.
func (s *AccountService) GetByNumber(ctx context.Context, number string) (*model.Account, error) {
	return s.accounts.GetByNumber(ctx, number)
}

// List возвращает страницу счетов.
func (s *AccountService) List(ctx context.Context, page, size int) ([]model.Account, int64, error) {
	page, size = normalizePage(page, size)
	return s.accounts.List(ctx, page*size, size)
}

// ListByClient возвращает счета клиента.
func (s *AccountService) ListByClient(ctx context.Context, clientID int64) ([]model.Account, error) {
	return s.accounts.ListByClient(ctx, clientID)
}

// Deactivate закрывает счёт для новых операций; история сохраняется.
func (s *AccountService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return err
	}
	return s.accounts.SetActive(ctx, id, false)
}

// Delete удаляет счёт; допускается только при нулевом балансе.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.Balance != 0 {
		return ErrAccountNotEmpty
	}
	return s.accounts.Delete(ctx, id)
}

// generateAccountNumber собирает номер в формате
// TG<кк><EGA><00001><11 цифр>, где кк — контрольные цифры по модулю 97.
func generateAccountNumber() (string, error) {
	max := big.NewInt(0)
	max.SetString("100000000000", 10) // 11 цифр
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generating account number: %w", err)
	}
	serial := fmt.Sprintf("%011d", n)

	check := new(big.Int)
	check.SetString(branchCode+serial, 10)
	kk := 98 - int(check.Mod(check, big.NewInt(97)).Int64())

	return fmt.Sprintf("%s%02d%s%s%s", countryCode, kk, bankCode, branchCode, serial), nil
}
