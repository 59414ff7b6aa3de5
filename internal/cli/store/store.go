package store

import (
	"sync"

	"Teller/internal/cli/model"
)

// EventType — сущность, к которой относится изменение.
type EventType string

// EventAction — вид изменения.
type EventAction string

const (
	EventClient      EventType = "client"
	EventAccount     EventType = "account"
	EventTransaction EventType = "transaction"
	EventSystem      EventType = "system"

	ActionCreate        EventAction = "create"
	ActionUpdate        EventAction = "update"
	ActionDelete        EventAction = "delete"
	ActionBalanceUpdate EventAction = "balance_update"
	ActionRefresh       EventAction = "refresh"
)

// DataChangeEvent — уведомление об изменении кэша, доставляется подписчикам
// синхронно, в порядке подписки, до возврата из мутатора.
type DataChangeEvent struct {
	Type   EventType
	Action EventAction
	Data   any
}

// BalanceUpdate — payload события balance_update.
type BalanceUpdate struct {
	AccountNumber string
	NewBalance    float64
}

type subscriber struct {
	id int
	fn func(DataChangeEvent)
}

// AppStore — единый in-memory срез последних известных данных backend'а:
// списки клиентов и счетов, «недавние» проекции для дашборда и агрегаты.
// Кэш best-effort: сервер остаётся источником истины, полная перезагрузка
// всегда важнее накопленных точечных правок.
//
// Все методы потокобезопасны. Чтения возвращают копии: мутировать их
// бесполезно и безопасно.
type AppStore struct {
	mu sync.Mutex

	clients        []model.ClientRecord
	accounts       []model.AccountRecord
	recentClients  []model.ClientRecord
	recentAccounts []model.AccountRecord

	clientsTotal  int64
	accountsTotal int64

	dashboard *model.DashboardStats

	nextSubID   int
	subscribers []subscriber
}

// New создаёт пустой store.
func New() *AppStore {
	return &AppStore{}
}

// Subscribe регистрирует подписчика на события изменений. Возвращённая
// функция снимает подписку; её вызов безопасен в любой момент, в том числе
// из самого обработчика. Событий «из прошлого» подписчик не получает.
func (s *AppStore) Subscribe(fn func(DataChangeEvent)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// notifyChange рассылает событие текущим подписчикам. Вызывается мутаторами
// уже после снятия основного лока: обработчики могут читать store без
// самоблокировки.
func (s *AppStore) notifyChange(ev DataChangeEvent) {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// ===== Clients =====

// SetClients целиком заменяет кэш клиентов после полной загрузки списка.
// События не эмитит: полная загрузка — собственное действие view, а не
// побочный эффект, на который должны реагировать остальные.
func (s *AppStore) SetClients(clients []model.ClientRecord, total ...int64) {
	s.mu.Lock()
	s.clients = append([]model.ClientRecord(nil), clients...)
	if len(total) > 0 {
		s.clientsTotal = total[0]
	}
	s.mu.Unlock()
}

// AddClient добавляет клиента в начало списка и эмитит событие create.
func (s *AppStore) AddClient(client model.ClientRecord) {
	s.mu.Lock()
	s.clients = append([]model.ClientRecord{client}, s.clients...)
	s.clientsTotal++
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventClient, Action: ActionCreate, Data: client})
}

// UpdateClient заменяет клиента с совпадающим ID на месте (порядок списка
// сохраняется) и эмитит событие update. Отсутствующий ID — тихий no-op.
func (s *AppStore) UpdateClient(client model.ClientRecord) {
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == client.ID {
			s.clients[i] = client
			break
		}
	}
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventClient, Action: ActionUpdate, Data: client})
}

// RemoveClient удаляет клиента по ID и эмитит событие delete.
func (s *AppStore) RemoveClient(id int64) {
	s.mu.Lock()
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept
	if s.clientsTotal > 0 {
		s.clientsTotal--
	}
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventClient, Action: ActionDelete, Data: id})
}

// ===== Accounts =====

// SetAccounts целиком заменяет кэш счетов. Событие не эмитится (см. SetClients).
func (s *AppStore) SetAccounts(accounts []model.AccountRecord, total ...int64) {
	s.mu.Lock()
	s.accounts = append([]model.AccountRecord(nil), accounts...)
	if len(total) > 0 {
		s.accountsTotal = total[0]
	}
	s.mu.Unlock()
}

// AddAccount добавляет счёт в начало списка и эмитит событие create.
func (s *AppStore) AddAccount(account model.AccountRecord) {
	s.mu.Lock()
	s.accounts = append([]model.AccountRecord{account}, s.accounts...)
	s.accountsTotal++
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventAccount, Action: ActionCreate, Data: account})
}

// UpdateAccount заменяет счёт с совпадающим ID на месте и эмитит update.
func (s *AppStore) UpdateAccount(account model.AccountRecord) {
	s.mu.Lock()
	for i := range s.accounts {
		if s.accounts[i].ID == account.ID {
			s.accounts[i] = account
			break
		}
	}
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventAccount, Action: ActionUpdate, Data: account})
}

// RemoveAccount удаляет счёт по ID и эмитит событие delete.
func (s *AppStore) RemoveAccount(id int64) {
	s.mu.Lock()
	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
	if s.accountsTotal > 0 {
		s.accountsTotal--
	}
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{Type: EventAccount, Action: ActionDelete, Data: id})
}

// UpdateAccountBalance точечно правит баланс счёта в основном кэше и в
// «недавних» счетах дашборда, не трогая остальные поля, и эмитит
// balance_update. Backend после операции возвращает только новый баланс
// затронутого счёта, поэтому зависимые view патчатся без перезагрузки списка.
func (s *AppStore) UpdateAccountBalance(accountNumber string, newBalance float64) {
	s.mu.Lock()
	for i := range s.accounts {
		if s.accounts[i].Number == accountNumber {
			s.accounts[i].Balance = newBalance
		}
	}
	for i := range s.recentAccounts {
		if s.recentAccounts[i].Number == accountNumber {
			s.recentAccounts[i].Balance = newBalance
		}
	}
	s.mu.Unlock()
	s.notifyChange(DataChangeEvent{
		Type:   EventTransaction,
		Action: ActionBalanceUpdate,
		Data:   BalanceUpdate{AccountNumber: accountNumber, NewBalance: newBalance},
	})
}

// ===== Recent projections / dashboard =====

// SetRecentClients задаёт «недавних» клиентов для дашборда (без события).
func (s *AppStore) SetRecentClients(clients []model.ClientRecord) {
	s.mu.Lock()
	s.recentClients = append([]model.ClientRecord(nil), clients...)
	s.mu.Unlock()
}

// SetRecentAccounts задаёт «недавние» счета для дашборда (без события).
func (s *AppStore) SetRecentAccounts(accounts []model.AccountRecord) {
	s.mu.Lock()
	s.recentAccounts = append([]model.AccountRecord(nil), accounts...)
	s.mu.Unlock()
}

// SetDashboardStats сохраняет агрегаты дашборда (без события).
func (s *AppStore) SetDashboardStats(stats model.DashboardStats) {
	s.mu.Lock()
	s.dashboard = &stats
	s.mu.Unlock()
}

// IncrementTransactionCount локально увеличивает счётчик транзакций в
// закэшированных агрегатах — косметический оптимизм до следующей загрузки
// статистики. События не эмитит.
func (s *AppStore) IncrementTransactionCount() {
	s.mu.Lock()
	if s.dashboard != nil {
		s.dashboard.TotalTransactions++
	}
	s.mu.Unlock()
}

// TriggerFullRefresh эмитит событие refresh без payload: кэш заведомо
// устарел, подписчикам пора перезагрузиться с сервера. Используется после
// составных операций (перевод, открытие счёта), где точечный патч не покрывает
// все затронутые сущности.
func (s *AppStore) TriggerFullRefresh() {
	s.notifyChange(DataChangeEvent{Type: EventSystem, Action: ActionRefresh, Data: nil})
}

// Reset очищает все коллекции и счётчики. Вызывается на logout; события не
// эмитит — подписчики к этому моменту свёрнуты вместе со своими view.
func (s *AppStore) Reset() {
	s.mu.Lock()
	s.clients = nil
	s.accounts = nil
	s.recentClients = nil
	s.recentAccounts = nil
	s.clientsTotal = 0
	s.accountsTotal = 0
	s.dashboard = nil
	s.mu.Unlock()
}

// ===== Reads (snapshots and derived aggregates) =====

// Clients возвращает копию кэша клиентов.
func (s *AppStore) Clients() []model.ClientRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ClientRecord(nil), s.clients...)
}

// Accounts возвращает копию кэша счетов.
func (s *AppStore) Accounts() []model.AccountRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AccountRecord(nil), s.accounts...)
}

// RecentClients возвращает копию «недавних» клиентов.
func (s *AppStore) RecentClients() []model.ClientRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ClientRecord(nil), s.recentClients...)
}

// RecentAccounts возвращает копию «недавних» счетов.
func (s *AppStore) RecentAccounts() []model.AccountRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AccountRecord(nil), s.recentAccounts...)
}

// DashboardStats возвращает закэшированные агрегаты и признак их наличия.
func (s *AppStore) DashboardStats() (model.DashboardStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dashboard == nil {
		return model.DashboardStats{}, false
	}
	return *s.dashboard, true
}

// ClientsTotal — закэшированное общее число клиентов.
func (s *AppStore) ClientsTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clientsTotal
}

// AccountsTotal — закэшированное общее число счетов.
func (s *AppStore) AccountsTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountsTotal
}

// AccountByNumber находит счёт по номеру.
func (s *AppStore) AccountByNumber(number string) (model.AccountRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Number == number {
			return a, true
		}
	}
	return model.AccountRecord{}, false
}

// ClientByID находит клиента по ID.
func (s *AppStore) ClientByID(id int64) (model.ClientRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.ClientRecord{}, false
}

// ActiveAccountsCount — число активных счетов; пересчитывается при каждом
// обращении, не кэшируется.
func (s *AppStore) ActiveAccountsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.accounts {
		if a.Active {
			n++
		}
	}
	return n
}

// TotalBalance — сумма балансов всех закэшированных счетов.
func (s *AppStore) TotalBalance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, a := range s.accounts {
		total += a.Balance
	}
	return total
}

// HasClients — есть ли хоть один клиент в кэше.
func (s *AppStore) HasClients() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients) > 0
}

// HasAccounts — есть ли хоть один счёт в кэше.
func (s *AppStore) HasAccounts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts) > 0
}
