package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Teller/internal/model"
	"Teller/internal/service"
)

// AccountHandler обслуживает /accounts.
type AccountHandler struct {
	accounts *service.AccountService
	logger   *zap.SugaredLogger
}

// NewAccountHandler конструктор.
func NewAccountHandler(accounts *service.AccountService, logger *zap.SugaredLogger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// stampOwner заполняет clientNomComplet из предзагруженного клиента.
func stampOwner(accounts []model.Account) []model.Account {
	for i := range accounts {
		if accounts[i].Client != nil {
			accounts[i].ClientFullName = accounts[i].Client.FullName()
		}
	}
	return accounts
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNum, size := pageParams(r)
	accounts, total, err := h.accounts.List(r.Context(), pageNum, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(stampOwner(accounts), total, pageNum, size))
}

func (h *AccountHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, err)
		return
	}
	if account.Client != nil {
		account.ClientFullName = account.Client.FullName()
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := idParam(r, "clientID")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid client id")
		return
	}
	accounts, err := h.accounts.ListByClient(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

type openAccountRequest struct {
	Type     string `json:"typeCompte"`
	ClientID int64  `json:"clientId"`
}

func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	account, err := h.accounts.Open(r.Context(), req.ClientID, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if err := h.accounts.Deactivate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "account deactivated")
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if err := h.accounts.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "account deleted")
}
