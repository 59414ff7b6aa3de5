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

type clientAddCmd struct{}

func (clientAddCmd) Name() string        { return "client-add" }
func (clientAddCmd) Description() string { return "Создать клиента" }
func (clientAddCmd) Usage() string {
	return "client-add --nom <last> --prenom <first> --naissance <YYYY-MM-DD> --sexe <MASCULIN|FEMININ> [--tel ...] [--email ...] [--adresse ...]"
}

func (clientAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("client-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	nom := fs.String("nom", "", "фамилия")
	prenom := fs.String("prenom", "", "имя")
	naissance := fs.String("naissance", "", "дата рождения YYYY-MM-DD")
	sexe := fs.String("sexe", "", "пол: MASCULIN|FEMININ")
	tel := fs.String("tel", "", "телефон")
	email := fs.String("email", "", "email")
	adresse := fs.String("adresse", "", "адрес")
	nationalite := fs.String("nationalite", "", "гражданство")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *nom == "" || *prenom == "" || *naissance == "" || *sexe == "" {
		return ErrUsage
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	c, err := svcs.Bank.CreateClient(ctx, model.ClientRequest{
		LastName:    *nom,
		FirstName:   *prenom,
		BirthDate:   *naissance,
		Sex:         *sexe,
		Phone:       *tel,
		Email:       *email,
		Address:     *adresse,
		Nationality: *nationalite,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Клиент создан: #%d %s %s\n", c.ID, c.LastName, c.FirstName)
	return nil
}

func init() { RegisterCmd(clientAddCmd{}) }
