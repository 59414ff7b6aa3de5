package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"Teller/internal/cli/api"
	"Teller/internal/cli/model"
	"Teller/internal/cli/repo"
	"Teller/internal/cli/store"
)

// BankService — типизированные обёртки над banking API. Каждая успешная
// мутация отражается в AppStore теми же действиями, что и во view исходного
// приложения: точечный патч баланса после депозита/снятия, полный refresh
// после составных операций.
type BankService struct {
	api       *api.Client
	appStore  *store.AppStore
	snapshots repo.SnapshotStore // может быть nil: офлайн-кэш опционален
	logger    *zap.SugaredLogger
}

// NewBankService конструктор. snapshots может быть nil.
func NewBankService(client *api.Client, appStore *store.AppStore, snapshots repo.SnapshotStore, logger *zap.SugaredLogger) *BankService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &BankService{api: client, appStore: appStore, snapshots: snapshots, logger: logger}
}

// ===== Clients =====

// LoadClients загружает страницу клиентов, обновляет кэш и офлайн-снапшот.
func (s *BankService) LoadClients(ctx context.Context, page, size int) (model.Page[model.ClientRecord], error) {
	var p model.Page[model.ClientRecord]
	path := fmt.Sprintf("/clients?page=%d&size=%d", page, size)
	if err := s.api.GetJSON(ctx, path, &p); err != nil {
		return model.Page[model.ClientRecord]{}, err
	}
	s.appStore.SetClients(p.Content, p.TotalElements)
	s.snapshotClients(p.Content)
	return p, nil
}

// SearchClients ищет клиентов по строке запроса.
func (s *BankService) SearchClients(ctx context.Context, q string, page, size int) (model.Page[model.ClientRecord], error) {
	var p model.Page[model.ClientRecord]
	path := fmt.Sprintf("/clients/search?q=%s&page=%d&size=%d", url.QueryEscape(q), page, size)
	if err := s.api.GetJSON(ctx, path, &p); err != nil {
		return model.Page[model.ClientRecord]{}, err
	}
	s.appStore.SetClients(p.Content, p.TotalElements)
	return p, nil
}

// GetClient возвращает клиента по ID.
func (s *BankService) GetClient(ctx context.Context, id int64) (model.ClientRecord, error) {
	var c model.ClientRecord
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/clients/%d", id), &c); err != nil {
		return model.ClientRecord{}, err
	}
	return c, nil
}

// GetClientWithAccounts возвращает клиента вместе с его счетами.
func (s *BankService) GetClientWithAccounts(ctx context.Context, id int64) (model.ClientRecord, error) {
	var c model.ClientRecord
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/clients/%d/details", id), &c); err != nil {
		return model.ClientRecord{}, err
	}
	return c, nil
}

// CreateClient создаёт клиента и добавляет его в кэш (событие create).
func (s *BankService) CreateClient(ctx context.Context, req model.ClientRequest) (model.ClientRecord, error) {
	var c model.ClientRecord
	if err := s.api.PostJSON(ctx, "/clients", req, &c); err != nil {
		return model.ClientRecord{}, err
	}
	s.appStore.AddClient(c)
	return c, nil
}

// UpdateClient обновляет клиента и патчит кэш (событие update).
func (s *BankService) UpdateClient(ctx context.Context, id int64, req model.ClientRequest) (model.ClientRecord, error) {
	var c model.ClientRecord
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/clients/%d", id), req, &c); err != nil {
		return model.ClientRecord{}, err
	}
	s.appStore.UpdateClient(c)
	return c, nil
}

// DeleteClient удаляет клиента (событие delete).
func (s *BankService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.api.DeleteJSON(ctx, fmt.Sprintf("/clients/%d", id)); err != nil {
		return err
	}
	s.appStore.RemoveClient(id)
	return nil
}

// ===== Accounts =====

// LoadAccounts загружает страницу счетов, обновляет кэш и офлайн-снапшот.
func (s *BankService) LoadAccounts(ctx context.Context, page, size int) (model.Page[model.AccountRecord], error) {
	var p model.Page[model.AccountRecord]
	path := fmt.Sprintf("/accounts?page=%d&size=%d", page, size)
	if err := s.api.GetJSON(ctx, path, &p); err != nil {
		return model.Page[model.AccountRecord]{}, err
	}
	s.appStore.SetAccounts(p.Content, p.TotalElements)
	s.snapshotAccounts(p.Content)
	return p, nil
}

// GetAccount возвращает счёт по номеру.
func (s *BankService) GetAccount(ctx context.Context, number string) (model.AccountRecord, error) {
	var a model.AccountRecord
	if err := s.api.GetJSON(ctx, "/accounts/"+url.PathEscape(number), &a); err != nil {
		return model.AccountRecord{}, err
	}
	return a, nil
}

// AccountsByClient возвращает счета клиента.
func (s *BankService) AccountsByClient(ctx context.Context, clientID int64) ([]model.AccountRecord, error) {
	var accounts []model.AccountRecord
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/accounts/client/%d", clientID), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// OpenAccount открывает счёт. Составная операция: помимо события create
// эмитится refresh — у клиента меняется и счётчик счетов.
func (s *BankService) OpenAccount(ctx context.Context, req model.AccountRequest) (model.AccountRecord, error) {
	var a model.AccountRecord
	if err := s.api.PostJSON(ctx, "/accounts", req, &a); err != nil {
		return model.AccountRecord{}, err
	}
	s.appStore.AddAccount(a)
	s.appStore.TriggerFullRefresh()
	return a, nil
}

// DeactivateAccount деактивирует счёт; точного патча нет — подписчикам
// даётся сигнал перезагрузиться.
func (s *BankService) DeactivateAccount(ctx context.Context, id int64) error {
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/accounts/%d/deactivate", id), struct{}{}, nil); err != nil {
		return err
	}
	s.appStore.TriggerFullRefresh()
	return nil
}

// DeleteAccount удаляет счёт (событие delete).
func (s *BankService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.api.DeleteJSON(ctx, fmt.Sprintf("/accounts/%d", id)); err != nil {
		return err
	}
	s.appStore.RemoveAccount(id)
	return nil
}

// ===== Transactions =====

// Deposit вносит средства и точечно патчит баланс счёта новым значением из
// ответа сервера.
func (s *BankService) Deposit(ctx context.Context, number string, amount float64, description string) (model.TransactionRecord, error) {
	var tx model.TransactionRecord
	path := "/transactions/" + url.PathEscape(number) + "/deposit"
	if err := s.api.PostJSON(ctx, path, model.OperationRequest{Amount: amount, Description: description}, &tx); err != nil {
		return model.TransactionRecord{}, err
	}
	s.appStore.UpdateAccountBalance(number, tx.BalanceAfter)
	s.appStore.IncrementTransactionCount()
	return tx, nil
}

// Withdraw снимает средства, патч баланса — как у Deposit.
func (s *BankService) Withdraw(ctx context.Context, number string, amount float64, description string) (model.TransactionRecord, error) {
	var tx model.TransactionRecord
	path := "/transactions/" + url.PathEscape(number) + "/withdraw"
	if err := s.api.PostJSON(ctx, path, model.OperationRequest{Amount: amount, Description: description}, &tx); err != nil {
		return model.TransactionRecord{}, err
	}
	s.appStore.UpdateAccountBalance(number, tx.BalanceAfter)
	s.appStore.IncrementTransactionCount()
	return tx, nil
}

// Transfer переводит средства между счетами. Сервер возвращает транзакцию
// источника; баланс получателя патчится из кэша, если счёт известен, и в
// любом случае эмитится refresh — операция затрагивает две сущности.
func (s *BankService) Transfer(ctx context.Context, req model.TransferRequest) (model.TransactionRecord, error) {
	var tx model.TransactionRecord
	if err := s.api.PostJSON(ctx, "/transactions/transfer", req, &tx); err != nil {
		return model.TransactionRecord{}, err
	}
	s.appStore.UpdateAccountBalance(req.SourceAccount, tx.BalanceAfter)
	if dest, ok := s.appStore.AccountByNumber(req.DestinationAccount); ok {
		s.appStore.UpdateAccountBalance(req.DestinationAccount, dest.Balance+req.Amount)
	}
	s.appStore.IncrementTransactionCount()
	s.appStore.TriggerFullRefresh()
	return tx, nil
}

// Transactions возвращает все транзакции.
func (s *BankService) Transactions(ctx context.Context) ([]model.TransactionRecord, error) {
	var txs []model.TransactionRecord
	if err := s.api.GetJSON(ctx, "/transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// AccountTransactions возвращает транзакции одного счёта.
func (s *BankService) AccountTransactions(ctx context.Context, number string) ([]model.TransactionRecord, error) {
	var txs []model.TransactionRecord
	if err := s.api.GetJSON(ctx, "/transactions/"+url.PathEscape(number), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// History возвращает транзакции счёта за период (даты в формате YYYY-MM-DD).
func (s *BankService) History(ctx context.Context, number, debut, fin string) ([]model.TransactionRecord, error) {
	var txs []model.TransactionRecord
	path := fmt.Sprintf("/transactions/%s/history?debut=%s&fin=%s",
		url.PathEscape(number), url.QueryEscape(debut), url.QueryEscape(fin))
	if err := s.api.GetJSON(ctx, path, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ===== Dashboard / statements =====

// LoadDashboard загружает агрегаты и кладёт их в кэш.
func (s *BankService) LoadDashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.api.GetJSON(ctx, "/dashboard/stats", &stats); err != nil {
		return model.DashboardStats{}, err
	}
	s.appStore.SetDashboardStats(stats)
	return stats, nil
}

// DownloadStatement скачивает PDF-выписку по счёту за период.
func (s *BankService) DownloadStatement(ctx context.Context, number, debut, fin string) ([]byte, error) {
	path := fmt.Sprintf("/statements/%s?debut=%s&fin=%s",
		url.PathEscape(number), url.QueryEscape(debut), url.QueryEscape(fin))
	return s.api.GetBlob(ctx, path)
}

// ===== Offline snapshots =====

// OfflineClients возвращает последний локальный снапшот клиентов.
func (s *BankService) OfflineClients() ([]model.ClientRecord, time.Time, error) {
	if s.snapshots == nil {
		return nil, time.Time{}, fmt.Errorf("offline cache is not configured")
	}
	return s.snapshots.LoadClients()
}

// OfflineAccounts возвращает последний локальный снапшот счетов.
func (s *BankService) OfflineAccounts() ([]model.AccountRecord, time.Time, error) {
	if s.snapshots == nil {
		return nil, time.Time{}, fmt.Errorf("offline cache is not configured")
	}
	return s.snapshots.LoadAccounts()
}

// snapshotClients пишет офлайн-снапшот; ошибки только логируются.
func (s *BankService) snapshotClients(clients []model.ClientRecord) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveClients(clients, time.Now()); err != nil {
		s.logger.Warnw("saving clients snapshot", "error", err)
	}
}

// snapshotAccounts пишет офлайн-снапшот; ошибки только логируются.
func (s *BankService) snapshotAccounts(accounts []model.AccountRecord) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveAccounts(accounts, time.Now()); err != nil {
		s.logger.Warnw("saving accounts snapshot", "error", err)
	}
}
