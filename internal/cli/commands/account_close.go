package commands

import (
	"context"
	"fmt"
	"strconv"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type accountCloseCmd struct{}

func (accountCloseCmd) Name() string        { return "account-close" }
func (accountCloseCmd) Description() string { return "Деактивировать счёт по ID" }
func (accountCloseCmd) Usage() string       { return "account-close <id>" }

func (accountCloseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	if err := svcs.Bank.DeactivateAccount(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Счёт #%d деактивирован\n", id)
	return nil
}

func init() { RegisterCmd(accountCloseCmd{}) }
