package commands

import (
	"context"
	"fmt"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/cli/model"
	"Teller/internal/config"
)

type transactionsCmd struct{}

func (transactionsCmd) Name() string        { return "transactions" }
func (transactionsCmd) Description() string { return "Показать транзакции (все или по счёту)" }
func (transactionsCmd) Usage() string       { return "transactions [account-number]" }

func (transactionsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	var txs []model.TransactionRecord
	if len(args) == 1 {
		txs, err = svcs.Bank.AccountTransactions(ctx, args[0])
	} else {
		txs, err = svcs.Bank.Transactions(ctx)
	}
	if err != nil {
		return err
	}
	printTransactions(txs)
	return nil
}

func printTransactions(txs []model.TransactionRecord) {
	if len(txs) == 0 {
		fmt.Fprintln(Out, "Нет транзакций")
		return
	}
	for _, tx := range txs {
		line := fmt.Sprintf("- %s  %-17s %10.2f", tx.Date, tx.Type, tx.Amount)
		if tx.DestinationAccount != "" {
			line += "  → " + tx.DestinationAccount
		}
		if tx.Description != "" {
			line += "  " + tx.Description
		}
		fmt.Fprintln(Out, line)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(txs))
}

func init() { RegisterCmd(transactionsCmd{}) }
