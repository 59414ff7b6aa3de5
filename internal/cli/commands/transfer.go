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
	"Teller/internal/cli/model"
	"Teller/internal/config"
)

type transferCmd struct{}

func (transferCmd) Name() string        { return "transfer" }
func (transferCmd) Description() string { return "Перевести средства между счетами" }
func (transferCmd) Usage() string {
	return "transfer <from-account> <to-account> <amount> [description]"
}

func (transferCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil || amount <= 0 {
		return ErrUsage
	}
	if args[0] == args[1] {
		return errors.New("source and destination accounts must differ")
	}
	description := strings.Join(args[3:], " ")

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	tx, err := svcs.Bank.Transfer(ctx, model.TransferRequest{
		SourceAccount:      args[0],
		DestinationAccount: args[1],
		Amount:             amount,
		Description:        description,
	})
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return errors.New("insufficient balance on the source account")
		}
		return err
	}
	fmt.Fprintf(Out, "✓ Перевод %.2f: %s → %s, баланс источника: %.2f\n",
		tx.Amount, args[0], args[1], tx.BalanceAfter)
	return nil
}

func init() { RegisterCmd(transferCmd{}) }
