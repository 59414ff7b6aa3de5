package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/cli/model"
	"Teller/internal/config"
)

type accountOpenCmd struct{}

func (accountOpenCmd) Name() string        { return "account-open" }
func (accountOpenCmd) Description() string { return "Открыть счёт для клиента" }
func (accountOpenCmd) Usage() string       { return "account-open <client-id> <EPARGNE|COURANT>" }

func (accountOpenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	accType := strings.ToUpper(args[1])
	if accType != model.AccountTypeSavings && accType != model.AccountTypeCurrent {
		return ErrUsage
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	a, err := svcs.Bank.OpenAccount(ctx, model.AccountRequest{Type: accType, ClientID: clientID})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Счёт открыт: %s (%s)\n", a.Number, a.Type)
	return nil
}

func init() { RegisterCmd(accountOpenCmd{}) }
