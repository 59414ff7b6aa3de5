package auth

import "sync"

// MemStore — потокобезопасное хранилище учётных данных в памяти.
// Используется в тестах и в режиме --no-persist.
type MemStore struct {
	mu    sync.Mutex
	creds Credentials
}

func (s *MemStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

func (s *MemStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}
