package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Teller/internal/model"
	"Teller/internal/service"
)

// TransactionHandler обслуживает /transactions.
type TransactionHandler struct {
	transactions *service.TransactionService
	logger       *zap.SugaredLogger
}

// NewTransactionHandler конструктор.
func NewTransactionHandler(transactions *service.TransactionService, logger *zap.SugaredLogger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

type operationRequest struct {
	Amount      float64 `json:"montant"`
	Description string  `json:"description"`
}

type transferRequest struct {
	SourceAccount      string  `json:"compteSource"`
	DestinationAccount string  `json:"compteDestination"`
	Amount             float64 `json:"montant"`
	Description        string  `json:"description"`
}

func writeTxList(w http.ResponseWriter, txs []model.Transaction) {
	if txs == nil {
		txs = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactions.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeTxList(w, txs)
}

func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactions.ListByAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeTxList(w, txs)
}

func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactions.History(r.Context(),
		chi.URLParam(r, "number"),
		r.URL.Query().Get("debut"),
		r.URL.Query().Get("fin"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeTxList(w, txs)
}

func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	tx, err := h.transactions.Deposit(r.Context(), chi.URLParam(r, "number"), req.Amount, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	tx, err := h.transactions.Withdraw(r.Context(), chi.URLParam(r, "number"), req.Amount, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	tx, err := h.transactions.Transfer(r.Context(),
		req.SourceAccount, req.DestinationAccount, req.Amount, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
