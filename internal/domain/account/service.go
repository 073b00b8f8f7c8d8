package account

import (
	"context"
	"strings"
	"time"

	"Piggyvault/internal/domain/shared"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Meta       shared.MetaRepository
}

func NewService(repo Repository, meta shared.MetaRepository) *Service {
	return &Service{Repository: repo, Meta: meta}
}

// CreateAccount cadastra um destino de pagamento. A primeira conta criada
// vira a conta padrão automaticamente.
func (s *Service) CreateAccount(ctx context.Context, upiId, name string, isDefault bool) (*Account, error) {
	upiId = strings.TrimSpace(upiId)
	if upiId == "" {
		return nil, appErrors.NewValidationError("upi_id", "é obrigatório")
	}
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	total, err := s.Repository.Count(ctx)
	if err != nil {
		return nil, err
	}

	entity := &Account{
		Id:        pkg.GenerateULIDObject(),
		UpiId:     upiId,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	if isDefault || total == 0 {
		if err := s.Meta.Set(ctx, shared.MetaDefaultAccountId, entity.Id.String()); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

func (s *Service) DeleteAccount(ctx context.Context, id ulid.ULID) error {
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	defaultId, err := s.DefaultAccountId(ctx)
	if err != nil {
		return err
	}
	if defaultId != nil && *defaultId == id {
		return s.Meta.Delete(ctx, shared.MetaDefaultAccountId)
	}
	return nil
}

func (s *Service) SetDefaultAccount(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}
	return s.Meta.Set(ctx, shared.MetaDefaultAccountId, id.String())
}

func (s *Service) DefaultAccountId(ctx context.Context) (*ulid.ULID, error) {
	var raw string
	found, err := s.Meta.Get(ctx, shared.MetaDefaultAccountId, &raw)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}

	id, err := pkg.ParseULID(raw)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &id, nil
}

func (s *Service) GetAccountById(ctx context.Context, id ulid.ULID) (*Account, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context) ([]*Account, error) {
	return s.Repository.List(ctx)
}
