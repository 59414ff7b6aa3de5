package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"Teller/internal/cli/api"
	"Teller/internal/cli/auth"
	"Teller/internal/cli/model"
	"Teller/internal/cli/store"
)

// --- Мок офлайн-кэша ---
type mockSnapshots struct{ mock.Mock }

func (m *mockSnapshots) SaveClients(clients []model.ClientRecord, fetchedAt time.Time) error {
	args := m.Called(clients, fetchedAt)
	return args.Error(0)
}
func (m *mockSnapshots) LoadClients() ([]model.ClientRecord, time.Time, error) {
	args := m.Called()
	if v, ok := args.Get(0).([]model.ClientRecord); ok {
		return v, args.Get(1).(time.Time), args.Error(2)
	}
	return nil, time.Time{}, args.Error(2)
}
func (m *mockSnapshots) SaveAccounts(accounts []model.AccountRecord, fetchedAt time.Time) error {
	args := m.Called(accounts, fetchedAt)
	return args.Error(0)
}
func (m *mockSnapshots) LoadAccounts() ([]model.AccountRecord, time.Time, error) {
	args := m.Called()
	if v, ok := args.Get(0).([]model.AccountRecord); ok {
		return v, args.Get(1).(time.Time), args.Error(2)
	}
	return nil, time.Time{}, args.Error(2)
}
func (m *mockSnapshots) Close() error { return nil }

func newBankService(t *testing.T, handler http.Handler) (*BankService, *store.AppStore, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	creds := &auth.MemStore{}
	_ = creds.Save(auth.Credentials{AccessToken: "tok", RefreshToken: "ref"})
	appStore := store.New()
	return NewBankService(api.New(ts.URL, creds), appStore, nil, nil), appStore, ts
}

func TestBankService_LoadAccountsFillsStore(t *testing.T) {
	svc, appStore, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		_ = json.NewEncoder(w).Encode(model.Page[model.AccountRecord]{
			Content: []model.AccountRecord{
				{ID: 1, Number: "ACC-1", Balance: 100, Active: true},
				{ID: 2, Number: "ACC-2", Balance: 50, Active: false},
			},
			TotalElements: 7,
		})
	}))

	p, err := svc.LoadAccounts(context.Background(), 0, 10)
	assert.NoError(t, err)
	assert.Len(t, p.Content, 2)
	assert.Len(t, appStore.Accounts(), 2)
	assert.Equal(t, int64(7), appStore.AccountsTotal())
	assert.Equal(t, 1, appStore.ActiveAccountsCount())
}

func TestBankService_DepositPatchesBalance(t *testing.T) {
	svc, appStore, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/ACC-1/deposit", r.URL.Path)
		var req model.OperationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, 150.0, req.Amount)
		_ = json.NewEncoder(w).Encode(model.TransactionRecord{
			Type: model.TransactionDeposit, Amount: 150, BalanceAfter: 1150, AccountNumber: "ACC-1",
		})
	}))

	appStore.SetAccounts([]model.AccountRecord{{ID: 1, Number: "ACC-1", Balance: 1000, Active: true}}, 1)
	appStore.SetDashboardStats(model.DashboardStats{TotalTransactions: 3})

	var events []store.DataChangeEvent
	appStore.Subscribe(func(ev store.DataChangeEvent) { events = append(events, ev) })

	tx, err := svc.Deposit(context.Background(), "ACC-1", 150, "salary")
	assert.NoError(t, err)
	assert.Equal(t, 1150.0, tx.BalanceAfter)

	acc, _ := appStore.AccountByNumber("ACC-1")
	assert.Equal(t, 1150.0, acc.Balance)
	stats, _ := appStore.DashboardStats()
	assert.Equal(t, int64(4), stats.TotalTransactions)
	if assert.Len(t, events, 1) {
		assert.Equal(t, store.ActionBalanceUpdate, events[0].Action)
	}
}

func TestBankService_TransferPatchesBothAndTriggersRefresh(t *testing.T) {
	svc, appStore, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/transfer", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.TransactionRecord{
			Type: model.TransactionTransferOut, Amount: 150, BalanceAfter: 850, AccountNumber: "ACC-1",
		})
	}))

	appStore.SetAccounts([]model.AccountRecord{
		{ID: 1, Number: "ACC-1", Balance: 1000, Active: true},
		{ID: 2, Number: "ACC-2", Balance: 200, Active: true},
	}, 2)

	var actions []store.EventAction
	appStore.Subscribe(func(ev store.DataChangeEvent) { actions = append(actions, ev.Action) })

	_, err := svc.Transfer(context.Background(), model.TransferRequest{
		SourceAccount: "ACC-1", DestinationAccount: "ACC-2", Amount: 150,
	})
	assert.NoError(t, err)

	a1, _ := appStore.AccountByNumber("ACC-1")
	a2, _ := appStore.AccountByNumber("ACC-2")
	assert.Equal(t, 850.0, a1.Balance)
	assert.Equal(t, 350.0, a2.Balance)
	assert.Equal(t, 1200.0, appStore.TotalBalance(), "transfer conserves the total")
	assert.Equal(t, []store.EventAction{
		store.ActionBalanceUpdate, store.ActionBalanceUpdate, store.ActionRefresh,
	}, actions)
}

func TestBankService_CreateClientAddsToStore(t *testing.T) {
	svc, appStore, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.ClientRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(model.ClientRecord{ID: 5, LastName: req.LastName, FirstName: req.FirstName})
	}))

	appStore.SetClients([]model.ClientRecord{{ID: 1}}, 1)

	c, err := svc.CreateClient(context.Background(), model.ClientRequest{LastName: "Mensah", FirstName: "Yao"})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)

	clients := appStore.Clients()
	if assert.Len(t, clients, 2) {
		assert.Equal(t, int64(5), clients[0].ID, "new client is prepended")
	}
	assert.Equal(t, int64(2), appStore.ClientsTotal())
}

func TestBankService_ValidationErrorDoesNotTouchStore(t *testing.T) {
	svc, appStore, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["nom is required"]}`))
	}))

	var events int
	appStore.Subscribe(func(store.DataChangeEvent) { events++ })

	_, err := svc.CreateClient(context.Background(), model.ClientRequest{})
	var se *api.StatusError
	assert.ErrorAs(t, err, &se)
	assert.Zero(t, events, "failed mutation must not mutate the store")
	assert.Empty(t, appStore.Clients())
}

func TestBankService_LoadClientsWritesSnapshot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Page[model.ClientRecord]{
			Content:       []model.ClientRecord{{ID: 1, LastName: "Mensah"}},
			TotalElements: 1,
		})
	}))
	defer ts.Close()

	creds := &auth.MemStore{}
	_ = creds.Save(auth.Credentials{AccessToken: "tok"})
	snaps := &mockSnapshots{}
	snaps.On("SaveClients", mock.Anything, mock.Anything).Return(nil)

	svc := NewBankService(api.New(ts.URL, creds), store.New(), snaps, nil)
	_, err := svc.LoadClients(context.Background(), 0, 10)
	assert.NoError(t, err)
	snaps.AssertCalled(t, "SaveClients", mock.Anything, mock.Anything)
}

func TestBankService_OfflineAccountsWithoutCache(t *testing.T) {
	svc, _, _ := newBankService(t, http.NewServeMux())
	_, _, err := svc.OfflineAccounts()
	assert.Error(t, err)
}

func TestBankService_DownloadStatement(t *testing.T) {
	svc, _, _ := newBankService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statements/ACC-1", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("debut"))
		assert.Equal(t, "2026-02-01", r.URL.Query().Get("fin"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))

	pdf, err := svc.DownloadStatement(context.Background(), "ACC-1", "2026-01-01", "2026-02-01")
	assert.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
}
