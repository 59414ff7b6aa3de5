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

type clientsCmd struct{}

func (clientsCmd) Name() string { return "clients" }
func (clientsCmd) Description() string {
	return "Показать список клиентов"
}
func (clientsCmd) Usage() string {
	return "clients [--page N] [--size N] [--search <q>] [--offline]"
}

func (clientsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 0, "номер страницы (с нуля)")
	size := fs.Int("size", 20, "размер страницы")
	search := fs.String("search", "", "поиск по имени/фамилии")
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
		clients, fetchedAt, err := svcs.Bank.OfflineClients()
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Offline snapshot from %s\n", fetchedAt.Format("2006-01-02 15:04:05"))
		printClients(clients)
		return nil
	}

	var p model.Page[model.ClientRecord]
	if *search != "" {
		p, err = svcs.Bank.SearchClients(ctx, *search, *page, *size)
	} else {
		p, err = svcs.Bank.LoadClients(ctx, *page, *size)
	}
	if err != nil {
		return err
	}
	printClients(p.Content)
	fmt.Fprintf(Out, "Страница %d из %d, всего клиентов: %d\n", p.Number+1, p.TotalPages, p.TotalElements)
	return nil
}

func printClients(clients []model.ClientRecord) {
	if len(clients) == 0 {
		fmt.Fprintln(Out, "Нет клиентов")
		return
	}
	for _, c := range clients {
		fmt.Fprintf(Out, "- #%d  %s %s  tel=%s  счетов=%d\n",
			c.ID, c.LastName, c.FirstName, c.Phone, c.AccountCount)
	}
}

func init() { RegisterCmd(clientsCmd{}) }
