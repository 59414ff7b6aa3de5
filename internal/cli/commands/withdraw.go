package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"Teller/internal/cli/api"
	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type withdrawCmd struct{}

func (withdrawCmd) Name() string        { return "withdraw" }
func (withdrawCmd) Description() string { return "Снять средства со счёта" }
func (withdrawCmd) Usage() string       { return "withdraw <account-number> <amount> [description]" }

func (withdrawCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	tx, err := svcs.Bank.Withdraw(ctx, args[0], amount, description)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return errors.New("insufficient balance")
		}
		return err
	}
	fmt.Fprintf(Out, "✓ Снятие %.2f с %s, новый баланс: %.2f\n", tx.Amount, args[0], tx.BalanceAfter)
	return nil
}

func init() { RegisterCmd(withdrawCmd{}) }
