package transaction

import (
	"context"
	"strings"
	"time"

	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Append registra uma entrada no livro-razão. Entradas nunca são alteradas
// nem removidas depois de gravadas. Parcelas de planos degenerados podem
// valer zero, então só valores negativos são rejeitados.
func (s *Service) Append(ctx context.Context, tx *Transaction) error {
	if tx.Amount < 0 {
		return appErrors.NewValidationError("amount", "não pode ser negativo")
	}

	if pkg.IsEmptyULID(tx.Id) {
		tx.Id = pkg.GenerateULIDObject()
	}
	if tx.Type == "" {
		tx.Type = TypeDebit
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	tx.Description = strings.TrimSpace(tx.Description)
	tx.CreatedAt = time.Now()

	return s.Repository.Create(ctx, tx)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.Repository.List(ctx)
}

func (s *Service) ListPaged(ctx context.Context, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	return s.Repository.ListPaged(ctx, pagination)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repository.Count(ctx)
}

// Streak calcula a sequência atual de dias consecutivos com poupança.
func (s *Service) Streak(ctx context.Context) (int, error) {
	transactions, err := s.Repository.List(ctx)
	if err != nil {
		return 0, err
	}
	return CalculateStreak(transactions, time.Now()), nil
}
