package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Teller/internal/config"
	"Teller/internal/middleware"
	"Teller/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	clientService *service.ClientService,
	accountService *service.AccountService,
	transactionService *service.TransactionService,
	dashboardService *service.DashboardService,
	statementService *service.StatementService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(authService, logger)
	clientHandler := NewClientHandler(clientService, logger)
	accountHandler := NewAccountHandler(accountService, logger)
	transactionHandler := NewTransactionHandler(transactionService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	statementHandler := NewStatementHandler(statementService, logger)

	// Auth routes (bypass auth middleware by path prefix)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.Refresh)

	// Clients
	r.Get("/clients", clientHandler.List)
	r.Get("/clients/search", clientHandler.Search)
	r.Post("/clients", clientHandler.Create)
	r.Get("/clients/{id}", clientHandler.Get)
	r.Get("/clients/{id}/details", clientHandler.GetDetails)
	r.Put("/clients/{id}", clientHandler.Update)
	r.Delete("/clients/{id}", clientHandler.Delete)

	// Accounts
	r.Get("/accounts", accountHandler.List)
	r.Post("/accounts", accountHandler.Open)
	r.Get("/accounts/client/{clientID}", accountHandler.ListByClient)
	r.Get("/accounts/{number}", accountHandler.GetByNumber)
	r.Put("/accounts/{id}/deactivate", accountHandler.Deactivate)
	r.Delete("/accounts/{id}", accountHandler.Delete)

	// Transactions
	r.Get("/transactions", transactionHandler.List)
	r.Post("/transactions/transfer", transactionHandler.Transfer)
	r.Get("/transactions/{number}", transactionHandler.ListByAccount)
	r.Get("/transactions/{number}/history", transactionHandler.History)
	r.Post("/transactions/{number}/deposit", transactionHandler.Deposit)
	r.Post("/transactions/{number}/withdraw", transactionHandler.Withdraw)

	// Dashboard / statements
	r.Get("/dashboard/stats", dashboardHandler.Stats)
	r.Get("/statements/{number}", statementHandler.Download)

	return &Handler{Router: r}
}
