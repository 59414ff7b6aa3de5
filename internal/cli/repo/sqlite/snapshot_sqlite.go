package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"Teller/internal/cli/model"
)

const (
	entityClients  = "clients"
	entityAccounts = "accounts"
)

// SnapshotStore хранит последние загруженные списки в SQLite-файле клиента.
type SnapshotStore struct {
	db *sql.DB
}

// Open открывает (создавая при необходимости) БД снапшотов по указанному пути.
func Open(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, errors.New("empty snapshot DB path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SnapshotStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close закрывает БД.
func (s *SnapshotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrate создаёт единственную нужную таблицу.
func (s *SnapshotStore) migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS snapshots (
  entity TEXT PRIMARY KEY,
  payload BLOB NOT NULL,
  fetched_at INTEGER NOT NULL
);
`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SnapshotStore) save(entity string, v any, fetchedAt time.Time) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots(entity, payload, fetched_at) VALUES(?, ?, ?)
		 ON CONFLICT(entity) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		entity, payload, fetchedAt.Unix(),
	)
	return err
}

func (s *SnapshotStore) load(entity string, v any) (time.Time, error) {
	var payload []byte
	var fetchedAt int64
	err := s.db.QueryRow(`SELECT payload, fetched_at FROM snapshots WHERE entity = ?`, entity).
		Scan(&payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, fmt.Errorf("no %s snapshot stored yet", entity)
		}
		return time.Time{}, err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return time.Time{}, err
	}
	return time.Unix(fetchedAt, 0), nil
}

// SaveClients сохраняет снапшот списка клиентов.
func (s *SnapshotStore) SaveClients(clients []model.ClientRecord, fetchedAt time.Time) error {
	return s.save(entityClients, clients, fetchedAt)
}

// LoadClients возвращает последний снапшот клиентов и время его загрузки.
func (s *SnapshotStore) LoadClients() ([]model.ClientRecord, time.Time, error) {
	var clients []model.ClientRecord
	at, err := s.load(entityClients, &clients)
	if err != nil {
		return nil, time.Time{}, err
	}
	return clients, at, nil
}

// SaveAccounts сохраняет снапшот списка счетов.
func (s *SnapshotStore) SaveAccounts(accounts []model.AccountRecord, fetchedAt time.Time) error {
	return s.save(entityAccounts, accounts, fetchedAt)
}

// LoadAccounts возвращает последний снапшот счетов и время его загрузки.
func (s *SnapshotStore) LoadAccounts() ([]model.AccountRecord, time.Time, error) {
	var accounts []model.AccountRecord
	at, err := s.load(entityAccounts, &accounts)
	if err != nil {
		return nil, time.Time{}, err
	}
	return accounts, at, nil
}
