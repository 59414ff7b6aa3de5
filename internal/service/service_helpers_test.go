package service

import (
	"context"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"Teller/internal/model"
	"Teller/internal/repo"
)

// testRepos собирает сервисный слой поверх in-memory SQLite.
type testRepos struct {
	users        repo.UserRepository
	clients      repo.ClientRepository
	accounts     repo.AccountRepository
	transactions repo.TransactionRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.RefreshToken{},
		&model.Client{}, &model.Account{}, &model.Transaction{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return testRepos{
		users:        repo.NewUserRepository(db),
		clients:      repo.NewClientRepository(db),
		accounts:     repo.NewAccountRepository(db),
		transactions: repo.NewTransactionRepository(db),
	}
}

// seedAccount создаёт клиента и активный счёт с заданным балансом.
func seedAccount(t *testing.T, r testRepos, number string, balance float64) *model.Account {
	t.Helper()
	ctx := context.Background()
	c, err := r.clients.Create(ctx, &model.Client{
		LastName: "Mensah", FirstName: "Afi", BirthDate: "1990-04-01", Sex: "FEMININ",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	a, err := r.accounts.Create(ctx, &model.Account{
		Number: number, Type: model.AccountTypeCurrent, Balance: balance, Active: true, ClientID: c.ID,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a
}
