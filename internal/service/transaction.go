package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Teller/internal/model"
	"Teller/internal/repo"
)

var (
	// ErrInsufficientBalance — на счёте не хватает средств.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameAccount — перевод самому себе запрещён.
	ErrSameAccount = errors.New("source and destination accounts must differ")
)

// TransactionService — денежные операции: депозит, снятие, перевод, история.
type TransactionService struct {
	accounts     repo.AccountRepository
	transactions repo.TransactionRepository
}

// NewTransactionService конструктор.
func NewTransactionService(accounts repo.AccountRepository, transactions repo.TransactionRepository) *TransactionService {
	return &TransactionService{accounts: accounts, transactions: transactions}
}

// Deposit вносит средства на счёт.
func (s *TransactionService) Deposit(ctx context.Context, number string, amount float64, description string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, &ValidationError{Errors: []string{"montant must be positive"}}
	}
	account, err := s.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, ErrAccountInactive
	}
	return s.record(ctx, account, model.TransactionDeposit, amount, account.Balance+amount, "", description)
}

// Withdraw снимает средства со счёта.
func (s *TransactionService) Withdraw(ctx context.Context, number string, amount float64, description string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, &ValidationError{Errors: []string{"montant must be positive"}}
	}
	account, err := s.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, ErrAccountInactive
	}
	if account.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	return s.record(ctx, account, model.TransactionWithdrawal, amount, account.Balance-amount, "", description)
}

// Transfer переводит средства между двумя активными счетами. Возвращает
// транзакцию источника; зеркальная VIREMENT_ENTRANT пишется получателю.
func (s *TransactionService) Transfer(ctx context.Context, sourceNumber, destNumber string, amount float64, description string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, &ValidationError{Errors: []string{"montant must be positive"}}
	}
	if sourceNumber == destNumber {
		return nil, ErrSameAccount
	}
	source, err := s.accounts.GetByNumber(ctx, sourceNumber)
	if err != nil {
		return nil, err
	}
	dest, err := s.accounts.GetByNumber(ctx, destNumber)
	if err != nil {
		return nil, err
	}
	if !source.Active || !dest.Active {
		return nil, ErrAccountInactive
	}
	if source.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	out, err := s.record(ctx, source, model.TransactionTransferOut, amount, source.Balance-amount, destNumber, description)
	if err != nil {
		return nil, err
	}
	if _, err := s.record(ctx, dest, model.TransactionTransferIn, amount, dest.Balance+amount, sourceNumber, description); err != nil {
		return nil, fmt.Errorf("crediting destination: %w", err)
	}
	return out, nil
}

// ListAll возвращает последние транзакции по всем счетам.
func (s *TransactionService) ListAll(ctx context.Context) ([]model.Transaction, error) {
	txs, err := s.transactions.ListAll(ctx, 200)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		if txs[i].Account != nil {
			txs[i].AccountNumber = txs[i].Account.Number
		}
	}
	return txs, nil
}

// ListByAccount возвращает транзакции одного счёта.
func (s *TransactionService) ListByAccount(ctx context.Context, number string) ([]model.Transaction, error) {
	account, err := s.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	stampNumber(txs, account.Number)
	return txs, nil
}

// History возвращает транзакции счёта за период [debut, fin] включительно;
// даты в формате YYYY-MM-DD.
func (s *TransactionService) History(ctx context.Context, number, debut, fin string) ([]model.Transaction, error) {
	from, err := time.Parse("2006-01-02", debut)
	if err != nil {
		return nil, &ValidationError{Errors: []string{"debut must be a valid YYYY-MM-DD date"}}
	}
	to, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return nil, &ValidationError{Errors: []string{"fin must be a valid YYYY-MM-DD date"}}
	}
	account, err := s.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByAccountBetween(ctx, account.ID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	stampNumber(txs, account.Number)
	return txs, nil
}

// record пишет транзакцию и новый баланс счёта.
func (s *TransactionService) record(ctx context.Context, account *model.Account, txType string, amount, newBalance float64, destNumber, description string) (*model.Transaction, error) {
	tx := &model.Transaction{
		Reference:          uuid.NewString(),
		Type:               txType,
		Amount:             amount,
		BalanceBefore:      account.Balance,
		BalanceAfter:       newBalance,
		AccountID:          account.ID,
		DestinationAccount: destNumber,
		Description:        description,
		AccountNumber:      account.Number,
	}
	if _, err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		return nil, err
	}
	return tx, nil
}

func stampNumber(txs []model.Transaction, number string) {
	for i := range txs {
		txs[i].AccountNumber = number
	}
}
