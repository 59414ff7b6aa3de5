package commands

import (
	"context"
	"fmt"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type dashboardCmd struct{}

func (dashboardCmd) Name() string        { return "dashboard" }
func (dashboardCmd) Description() string { return "Показать сводную статистику банка" }
func (dashboardCmd) Usage() string       { return "dashboard" }

func (dashboardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	stats, err := svcs.Bank.LoadDashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Клиентов:        %d\n", stats.TotalClients)
	fmt.Fprintf(Out, "Счетов:          %d (активных: %d)\n", stats.TotalAccounts, stats.ActiveAccounts)
	fmt.Fprintf(Out, "Суммарный баланс: %.2f\n", stats.TotalBalance)
	fmt.Fprintf(Out, "Транзакций:      %d\n", stats.TotalTransactions)
	return nil
}

func init() { RegisterCmd(dashboardCmd{}) }
