package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"Teller/internal/config"
	"Teller/internal/handlers"
	"Teller/internal/middleware"
	"Teller/internal/repo"
	"Teller/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	clientRepo := repo.NewClientRepository(gormDB)
	accountRepo := repo.NewAccountRepository(gormDB)
	transactionRepo := repo.NewTransactionRepository(gormDB)

	authService := service.NewAuthService(
		userRepo,
		cfg.AuthSecret,
		time.Duration(cfg.AccessTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTTLHours)*time.Hour,
	)
	clientService := service.NewClientService(clientRepo)
	accountService := service.NewAccountService(accountRepo, clientRepo)
	transactionService := service.NewTransactionService(accountRepo, transactionRepo)
	dashboardService := service.NewDashboardService(clientRepo, accountRepo, transactionRepo)
	statementService := service.NewStatementService(accountRepo, transactionService)

	h := handlers.NewHandler(
		authService,
		clientService,
		accountService,
		transactionService,
		dashboardService,
		statementService,
		sugar,
		cfg,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
