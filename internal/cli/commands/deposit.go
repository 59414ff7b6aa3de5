package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type depositCmd struct{}

func (depositCmd) Name() string        { return "deposit" }
func (depositCmd) Description() string { return "Внести средства на счёт" }
func (depositCmd) Usage() string       { return "deposit <account-number> <amount> [description]" }

func (depositCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return ErrUsage
	}
	description := strings.Join(args[2:], " ")

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	tx, err := svcs.Bank.Deposit(ctx, args[0], amount, description)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Депозит %.2f на %s, новый баланс: %.2f\n", tx.Amount, args[0], tx.BalanceAfter)
	return nil
}

func init() { RegisterCmd(depositCmd{}) }
