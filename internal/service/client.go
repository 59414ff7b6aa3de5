package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Teller/internal/model"
	"Teller/internal/repo"
)

// ValidationError — список нарушений, отдаётся клиенту как {"errors":[...]}.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// ClientService — операции над клиентами банка.
type ClientService struct {
	clients repo.ClientRepository
}

// NewClientService конструктор.
func NewClientService(clients repo.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func validateClient(c *model.Client) error {
	var errs []string
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, "nom is required")
	}
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, "prenom is required")
	}
	if _, err := time.Parse("2006-01-02", c.BirthDate); err != nil {
		errs = append(errs, "dateNaissance must be a valid YYYY-MM-DD date")
	}
	if c.Sex != "MASCULIN" && c.Sex != "FEMININ" {
		errs = append(errs, "sexe must be MASCULIN or FEMININ")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Create валидирует и сохраняет клиента.
func (s *ClientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	return s.clients.Create(ctx, c)
}

// Get возвращает клиента по ID.
func (s *ClientService) Get(ctx context.Context, id int64) (*model.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// GetWithAccounts возвращает клиента вместе со счетами.
func (s *ClientService) GetWithAccounts(ctx context.Context, id int64) (*model.Client, error) {
	return s.clients.GetWithAccounts(ctx, id)
}

// List возвращает страницу клиентов.
func (s *ClientService) List(ctx context.Context, page, size int) ([]model.Client, int64, error) {
	page, size = normalizePage(page, size)
	return s.clients.List(ctx, page*size, size)
}

// Search ищет клиентов по подстроке имени/фамилии.
func (s *ClientService) Search(ctx context.Context, q string, page, size int) ([]model.Client, int64, error) {
	page, size = normalizePage(page, size)
	return s.clients.Search(ctx, q, page*size, size)
}

// Update валидирует и сохраняет изменения клиента.
func (s *ClientService) Update(ctx context.Context, id int64, updated *model.Client) (*model.Client, error) {
	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := validateClient(updated); err != nil {
		return nil, err
	}
	if err := s.clients.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete удаляет клиента вместе со счетами.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

// normalizePage прижимает параметры пагинации к безопасным значениям.
func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}

// IsValidation сообщает, является ли ошибка ошибкой валидации.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
