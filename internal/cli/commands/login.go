package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Teller/internal/cli/api"
	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the token pair" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	resp, err := svcs.Auth.Login(ctx, args[0], args[1])
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
			return errors.New("invalid username or password")
		}
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", resp.Username, resp.Role)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
