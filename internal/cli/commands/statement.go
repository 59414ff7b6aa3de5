package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"Teller/internal/cli/bootstrap"
	"Teller/internal/config"
)

type statementCmd struct{}

func (statementCmd) Name() string        { return "statement" }
func (statementCmd) Description() string { return "Скачать PDF-выписку по счёту за период" }
func (statementCmd) Usage() string {
	return "statement <account-number> <from:YYYY-MM-DD> <to:YYYY-MM-DD> [--out <file.pdf>]"
}

func (statementCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	number, debut, fin := args[0], args[1], args[2]
	if _, err := time.Parse("2006-01-02", debut); err != nil {
		return ErrUsage
	}
	if _, err := time.Parse("2006-01-02", fin); err != nil {
		return ErrUsage
	}

	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("out", "", "файл для сохранения (по умолчанию <номер>_<from>_<to>.pdf)")
	if err := fs.Parse(args[3:]); err != nil {
		return ErrUsage
	}
	path := *out
	if path == "" {
		path = fmt.Sprintf("%s_%s_%s.pdf", number, debut, fin)
	}

	svcs, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	pdf, err := svcs.Bank.DownloadStatement(ctx, number, debut, fin)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	fmt.Fprintf(Out, "✓ Выписка сохранена: %s (%d bytes)\n", path, len(pdf))
	return nil
}

func init() { RegisterCmd(statementCmd{}) }
