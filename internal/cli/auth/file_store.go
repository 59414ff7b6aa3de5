package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileStore — файловое хранилище учётных данных для CLI.
// Один JSON-файл в конфиг-каталоге пользователя, права 0600.
type FileStore struct {
	// Path overrides the default location when non-empty.
	Path string
}

func (s FileStore) path() (string, error) {
	if s.Path != "" {
		if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
			return "", err
		}
		return s.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "Teller")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(p, "credentials.json"), nil
}

// Save записывает учётные данные в файл целиком, через временный файл,
// чтобы при падении не остаться с наполовину записанной парой токенов.
func (s FileStore) Save(creds Credentials) error {
	p, err := s.path()
	if err != nil {
		return err
	}
	b, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Load читает учётные данные из файла. Отсутствие файла — не ошибка:
// возвращается пустая пара (пользователь не авторизован).
func (s FileStore) Load() (Credentials, error) {
	p, err := s.path()
	if err != nil {
		return Credentials{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, nil
		}
		return Credentials{}, err
	}
	var creds Credentials
	if err := json.Unmarshal(b, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Clear удаляет файл учётных данных (logout / завершение сессии).
func (s FileStore) Clear() error {
	p, err := s.path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
