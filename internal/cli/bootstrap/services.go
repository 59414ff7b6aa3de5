package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"Teller/internal/cli/api"
	"Teller/internal/cli/auth"
	"Teller/internal/cli/repo"
	"Teller/internal/cli/repo/sqlite"
	"Teller/internal/cli/service"
	"Teller/internal/cli/store"
	"Teller/internal/config"
)

// Services — собранный клиентский стек: API-клиент, сервисы и кэш данных.
type Services struct {
	Auth  service.AuthService
	Bank  *service.BankService
	Store *store.AppStore
}

// Open собирает сервисы из конфигурации и возвращает (services, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть офлайн-кэш.
func Open(cfg *config.Config) (*Services, func() error, error) {
	logger := zap.NewNop().Sugar()
	if cfg.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
		logger = l.Sugar()
	}

	creds := &auth.FileStore{Path: cfg.CredentialsFile}
	appStore := store.New()

	client := api.New(cfg.ServerURL, creds,
		api.WithLogger(logger),
		api.WithSessionEndedHandler(func(returnPath string, expired bool) {
			appStore.Reset()
			logger.Infow("session ended", "return_path", returnPath, "expired", expired)
		}),
	)

	// Офлайн-кэш не обязателен: если база не открылась, работаем без него.
	var snapshots repo.SnapshotStore
	if s, err := sqlite.Open(cfg.ClientDBPath); err != nil {
		logger.Warnw("offline cache unavailable", "path", cfg.ClientDBPath, "error", err)
	} else {
		snapshots = s
	}

	svcs := &Services{
		Auth:  service.NewAuthService(client, creds, appStore),
		Bank:  service.NewBankService(client, appStore, snapshots, logger),
		Store: appStore,
	}
	cleanup := func() error {
		if snapshots != nil {
			return snapshots.Close()
		}
		return nil
	}
	return svcs, cleanup, nil
}
