package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Teller/internal/cli/model"
)

func seedAccounts(s *AppStore) {
	s.SetAccounts([]model.AccountRecord{
		{ID: 1, Number: "ACC-1", Type: model.AccountTypeCurrent, Balance: 1000, Active: true, ClientFullName: "Ama Kodjo"},
		{ID: 2, Number: "ACC-2", Type: model.AccountTypeSavings, Balance: 200, Active: true, ClientFullName: "Yao Mensah"},
		{ID: 3, Number: "ACC-3", Type: model.AccountTypeSavings, Balance: 50, Active: false},
	}, 3)
}

// collect подписывает накопитель событий и возвращает срез и отписку.
func collect(s *AppStore) (*[]DataChangeEvent, func()) {
	events := &[]DataChangeEvent{}
	unsub := s.Subscribe(func(ev DataChangeEvent) {
		*events = append(*events, ev)
	})
	return events, unsub
}

// Полная замена списка события не эмитит; каждый инкрементальный мутатор —
// ровно одно событие соответствующего действия.
func TestStore_ReplaceVsEmit(t *testing.T) {
	s := New()
	events, unsub := collect(s)
	defer unsub()

	s.SetAccounts([]model.AccountRecord{{ID: 1, Number: "ACC-1"}}, 1)
	assert.Empty(t, *events, "SetAccounts must not emit")

	s.AddAccount(model.AccountRecord{ID: 2, Number: "ACC-2"})
	s.UpdateAccount(model.AccountRecord{ID: 2, Number: "ACC-2", Balance: 10})
	s.RemoveAccount(2)
	s.UpdateAccountBalance("ACC-1", 500)

	if assert.Len(t, *events, 4) {
		assert.Equal(t, ActionCreate, (*events)[0].Action)
		assert.Equal(t, ActionUpdate, (*events)[1].Action)
		assert.Equal(t, ActionDelete, (*events)[2].Action)
		assert.Equal(t, ActionBalanceUpdate, (*events)[3].Action)
	}
}

func TestStore_AddPrependsAndCounts(t *testing.T) {
	s := New()
	s.SetClients([]model.ClientRecord{{ID: 1, LastName: "Mensah"}}, 1)

	s.AddClient(model.ClientRecord{ID: 2, LastName: "Kodjo"})

	clients := s.Clients()
	if assert.Len(t, clients, 2) {
		assert.Equal(t, int64(2), clients[0].ID, "new client must be prepended")
	}
	assert.Equal(t, int64(2), s.ClientsTotal())

	s.RemoveClient(2)
	s.RemoveClient(2) // отсутствующий id — no-op, счётчик не уходит ниже
	assert.Equal(t, int64(1), s.ClientsTotal())

	s.RemoveClient(1)
	s.RemoveClient(99)
	assert.Equal(t, int64(0), s.ClientsTotal(), "total is floored at zero")
}

// Точечный патч баланса меняет только поле Balance совпавшей записи — в
// основном кэше и в «недавних» счетах; остальные поля и записи нетронуты.
func TestStore_BalancePatchIsolation(t *testing.T) {
	s := New()
	seedAccounts(s)
	s.SetRecentAccounts([]model.AccountRecord{
		{ID: 1, Number: "ACC-1", Type: model.AccountTypeCurrent, Balance: 1000, Active: true},
	})

	s.UpdateAccountBalance("ACC-1", 500)

	acc, ok := s.AccountByNumber("ACC-1")
	assert.True(t, ok)
	assert.Equal(t, 500.0, acc.Balance)
	assert.Equal(t, model.AccountTypeCurrent, acc.Type)
	assert.True(t, acc.Active)
	assert.Equal(t, "Ama Kodjo", acc.ClientFullName)

	recent := s.RecentAccounts()
	if assert.Len(t, recent, 1) {
		assert.Equal(t, 500.0, recent[0].Balance)
		assert.True(t, recent[0].Active)
	}

	other, _ := s.AccountByNumber("ACC-2")
	assert.Equal(t, 200.0, other.Balance, "non-matching records untouched")
}

func TestStore_DerivedAggregates(t *testing.T) {
	s := New()
	assert.False(t, s.HasAccounts())
	assert.False(t, s.HasClients())

	seedAccounts(s)
	s.SetClients([]model.ClientRecord{{ID: 1}}, 1)

	assert.True(t, s.HasAccounts())
	assert.True(t, s.HasClients())
	assert.Equal(t, 2, s.ActiveAccountsCount())
	assert.Equal(t, 1250.0, s.TotalBalance())

	// агрегаты пересчитываются, а не кэшируются
	s.UpdateAccountBalance("ACC-3", 150)
	assert.Equal(t, 1350.0, s.TotalBalance())
}

// После Reset все коллекции пусты, счётчики нулевые, событий нет.
func TestStore_ResetClearsEverything(t *testing.T) {
	s := New()
	seedAccounts(s)
	s.SetClients([]model.ClientRecord{{ID: 1}}, 1)
	s.SetRecentAccounts(s.Accounts())
	s.SetDashboardStats(model.DashboardStats{TotalTransactions: 7})

	events, unsub := collect(s)
	defer unsub()

	s.Reset()

	assert.Empty(t, *events, "Reset must not emit")
	assert.Empty(t, s.Clients())
	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.RecentAccounts())
	assert.Equal(t, int64(0), s.ClientsTotal())
	assert.Equal(t, int64(0), s.AccountsTotal())
	_, ok := s.DashboardStats()
	assert.False(t, ok)
	assert.Equal(t, 0.0, s.TotalBalance())
}

func TestStore_IncrementTransactionCount(t *testing.T) {
	s := New()
	s.IncrementTransactionCount() // без статистики — no-op

	s.SetDashboardStats(model.DashboardStats{TotalTransactions: 41})
	events, unsub := collect(s)
	defer unsub()

	s.IncrementTransactionCount()

	assert.Empty(t, *events, "IncrementTransactionCount must not emit")
	stats, ok := s.DashboardStats()
	assert.True(t, ok)
	assert.Equal(t, int64(42), stats.TotalTransactions)
}

// Сквозной сценарий перевода: два патча баланса, два события balance_update
// в порядке вызова, сумма балансов сохраняется (перевод, не депозит).
func TestStore_TransferScenario(t *testing.T) {
	s := New()
	s.SetAccounts([]model.AccountRecord{
		{ID: 1, Number: "ACC-1", Balance: 1000, Active: true},
		{ID: 2, Number: "ACC-2", Balance: 200, Active: true},
	}, 2)

	assert.Equal(t, 1200.0, s.TotalBalance())

	events, unsub := collect(s)
	defer unsub()

	s.UpdateAccountBalance("ACC-1", 850)
	s.UpdateAccountBalance("ACC-2", 350)

	a1, _ := s.AccountByNumber("ACC-1")
	a2, _ := s.AccountByNumber("ACC-2")
	assert.Equal(t, 850.0, a1.Balance)
	assert.Equal(t, 350.0, a2.Balance)

	if assert.Len(t, *events, 2) {
		assert.Equal(t, ActionBalanceUpdate, (*events)[0].Action)
		assert.Equal(t, BalanceUpdate{AccountNumber: "ACC-1", NewBalance: 850}, (*events)[0].Data)
		assert.Equal(t, BalanceUpdate{AccountNumber: "ACC-2", NewBalance: 350}, (*events)[1].Data)
	}
	assert.Equal(t, 1200.0, s.TotalBalance(), "conservation: transfer keeps the total")
}

// Подписчики получают события синхронно и в порядке подписки; подписавшийся
// после эмиссии её не видит; отписка прекращает доставку.
func TestStore_SubscriptionContract(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func(DataChangeEvent) { order = append(order, "first") })
	unsub := s.Subscribe(func(DataChangeEvent) { order = append(order, "second") })

	s.TriggerFullRefresh()
	assert.Equal(t, []string{"first", "second"}, order)

	late := 0
	s.Subscribe(func(DataChangeEvent) { late++ })
	assert.Zero(t, late, "no replay for late subscribers")

	unsub()
	order = nil
	s.TriggerFullRefresh()
	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, late)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := New()
	seedAccounts(s)

	snapshot := s.Accounts()
	snapshot[0].Balance = -1

	acc, _ := s.AccountByNumber(snapshot[0].Number)
	assert.Equal(t, 1000.0, acc.Balance, "mutating a snapshot must not touch the cache")
}

func TestStore_UpdateMissingIDIsNoop(t *testing.T) {
	s := New()
	seedAccounts(s)

	s.UpdateAccount(model.AccountRecord{ID: 99, Number: "ACC-99", Balance: 1})
	s.UpdateAccountBalance("ACC-99", 1)

	assert.Len(t, s.Accounts(), 3)
	assert.Equal(t, 1250.0, s.TotalBalance())
}
