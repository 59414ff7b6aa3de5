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

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and login" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	resp, err := svcs.Auth.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return errors.New("username or email already taken")
		}
		return err
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", resp.Username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
