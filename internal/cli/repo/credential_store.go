package repo

import "Teller/internal/cli/auth"

// CredentialStore описывает абстракцию хранилища учётных данных на клиенте.
// Пайплайн запросов — единственный владелец жизненного цикла записи:
// Save на login/register/refresh, Clear на logout и при завершении сессии.
type CredentialStore interface {
	Save(creds auth.Credentials) error
	Load() (auth.Credentials, error)
	Clear() error
}
