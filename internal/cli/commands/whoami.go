package commands

import (
	"context"
	"fmt"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Показать текущего пользователя" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	u, err := svcs.Auth.CurrentUser()
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "User:  %s\n", u.Username)
	if u.Email != "" {
		fmt.Fprintf(Out, "Email: %s\n", u.Email)
	}
	if u.Role != "" {
		fmt.Fprintf(Out, "Role:  %s\n", u.Role)
	}
	if !svcs.Auth.IsAuthenticated() {
		fmt.Fprintln(Out, "Access token expired; it will be refreshed on the next request.")
	}
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
