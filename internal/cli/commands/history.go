package commands

import (
	"context"
	"time"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type historyCmd struct{}

func (historyCmd) Name() string        { return "history" }
func (historyCmd) Description() string { return "Транзакции счёта за период" }
func (historyCmd) Usage() string       { return "history <account-number> <from:YYYY-MM-DD> <to:YYYY-MM-DD>" }

func (historyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	if _, err := time.Parse("2006-01-02", args[1]); err != nil {
		return ErrUsage
	}
	if _, err := time.Parse("2006-01-02", args[2]); err != nil {
		return ErrUsage
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	txs, err := svcs.Bank.History(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	printTransactions(txs)
	return nil
}

func init() { RegisterCmd(historyCmd{}) }
