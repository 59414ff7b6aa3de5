package service

import (
	"context"

	"Teller/internal/repo"
)

// DashboardStats — агрегаты для дашборда back-office.
type DashboardStats struct {
	TotalClients      int64   `json:"totalClients"`
	TotalAccounts     int64   `json:"totalAccounts"`
	ActiveAccounts    int64   `json:"activeAccounts"`
	TotalBalance      float64 `json:"totalBalance"`
	TotalTransactions int64   `json:"totalTransactions"`
}

// DashboardService собирает сводную статистику по репозиториям.
type DashboardService struct {
	clients      repo.ClientRepository
	accounts     repo.AccountRepository
	transactions repo.TransactionRepository
}

// NewDashboardService конструктор.
func NewDashboardService(clients repo.ClientRepository, accounts repo.AccountRepository, transactions repo.TransactionRepository) *DashboardService {
	return &DashboardService{clients: clients, accounts: accounts, transactions: transactions}
}

// Stats считает агрегаты на момент вызова.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalAccounts, activeAccounts, err := s.accounts.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalBalance, err := s.accounts.TotalBalance(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalTx, err := s.transactions.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return DashboardStats{
		TotalClients:      totalClients,
		TotalAccounts:     totalAccounts,
		ActiveAccounts:    activeAccounts,
		TotalBalance:      totalBalance,
		TotalTransactions: totalTx,
	}, nil
}
