package repo

import (
	"time"

	"Teller/internal/cli/model"
)

// SnapshotStore — локальный кэш последних успешно загруженных списков для
// офлайн-просмотра. Best-effort: ошибки записи не фатальны, полная загрузка
// с сервера всегда важнее содержимого кэша.
type SnapshotStore interface {
	SaveClients(clients []model.ClientRecord, fetchedAt time.Time) error
	LoadClients() ([]model.ClientRecord, time.Time, error)

	SaveAccounts(accounts []model.AccountRecord, fetchedAt time.Time) error
	LoadAccounts() ([]model.AccountRecord, time.Time, error)

	Close() error
}
