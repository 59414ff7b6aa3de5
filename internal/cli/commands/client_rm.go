package commands

import (
	"context"
	"fmt"
	"strconv"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type clientRmCmd struct{}

func (clientRmCmd) Name() string        { return "client-rm" }
func (clientRmCmd) Description() string { return "Удалить клиента по ID" }
func (clientRmCmd) Usage() string       { return "client-rm <id>" }

func (clientRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := svcs.Bank.DeleteClient(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Клиент #%d удалён\n", id)
	return nil
}

func init() { RegisterCmd(clientRmCmd{}) }
