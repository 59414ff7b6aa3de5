package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/cli/model"
	"Teller/internal/config"
)

type accountsCmd struct{}

func (accountsCmd) Name() string { return "accounts" }
func (accountsCmd) Description() string {
	return "Показать список счетов"
}
func (accountsCmd) Usage() string {
	return "accounts [--page N] [--size N] [--client <id>] [--offline]"
}

func (accountsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("accounts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 0, "номер страницы (с нуля)")
	size := fs.Int("size", 20, "размер страницы")
	clientID := fs.Int64("client", 0, "показать только счета клиента")
	offline := fs.Bool("offline", false, "показать последний локальный снапшот без сети")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	if *offline {
		accounts, fetchedAt, err := svcs.Bank.OfflineAccounts()
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Offline snapshot from %s\n", fetchedAt.Format("2006-01-02 15:04:05"))
		printAccounts(accounts)
		return nil
	}

	if *clientID != 0 {
		accounts, err := svcs.Bank.AccountsByClient(ctx, *clientID)
		if err != nil {
			return err
		}
		printAccounts(accounts)
		return nil
	}

	p, err := svcs.Bank.LoadAccounts(ctx, *page, *size)
	if err != nil {
		return err
	}
	printAccounts(p.Content)
	fmt.Fprintf(Out, "Страница %d из %d, всего счетов: %d\n", p.Number+1, p.TotalPages, p.TotalElements)
	return nil
}

func printAccounts(accounts []model.AccountRecord) {
	if len(accounts) == 0 {
		fmt.Fprintln(Out, "Нет счетов")
		return
	}
	for _, a := range accounts {
		state := "active"
		if !a.Active {
			state = "closed"
		}
		fmt.Fprintf(Out, "- %s  %s  %.2f  %s  %s\n", a.Number, a.Type, a.Balance, state, a.ClientFullName)
	}
}

func init() { RegisterCmd(accountsCmd{}) }
