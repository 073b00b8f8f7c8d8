package account_test

import (
	"context"
	"encoding/json"
	"testing"

	"Piggyvault/internal/domain/account"
	appErrors "Piggyvault/internal/errors"

	"github.com/oklog/ulid/v2"
)

type memAccountRepository struct {
	accounts []*account.Account
}

func (m *memAccountRepository) Create(ctx context.Context, a *account.Account) error {
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *memAccountRepository) Delete(ctx context.Context, id ulid.ULID) error {
	for i, existing := range m.accounts {
		if existing.Id == id {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return nil
		}
	}
	return appErrors.ErrAccountNotFound
}

func (m *memAccountRepository) GetById(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	for _, existing := range m.accounts {
		if existing.Id == id {
			return existing, nil
		}
	}
	return nil, appErrors.ErrAccountNotFound
}

func (m *memAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	return m.accounts, nil
}

func (m *memAccountRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.accounts)), nil
}

type memMetaRepository struct {
	values map[string]string
}

func (m *memMetaRepository) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(raw), out)
}

func (m *memMetaRepository) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(raw)
	return nil
}

func (m *memMetaRepository) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestService() (*account.Service, *memAccountRepository) {
	repo := &memAccountRepository{}
	return account.NewService(repo, &memMetaRepository{values: make(map[string]string)}), repo
}

func TestFirstAccountBecomesDefault(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateAccount(ctx, "maria@upi", "Conta principal", false)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	defaultId, err := svc.DefaultAccountId(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if defaultId == nil || *defaultId != first.Id {
		t.Error("primeira conta deveria virar a padrão")
	}

	// A segunda conta sem a flag não rouba o padrão.
	if _, err := svc.CreateAccount(ctx, "maria2@upi", "Conta reserva", false); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	defaultId, _ = svc.DefaultAccountId(ctx)
	if defaultId == nil || *defaultId != first.Id {
		t.Error("conta padrão não deveria mudar sem pedido explícito")
	}
}

func TestCreateAccountWithDefaultFlag(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateAccount(ctx, "a@upi", "A", false); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := svc.CreateAccount(ctx, "b@upi", "B", true)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	defaultId, _ := svc.DefaultAccountId(ctx)
	if defaultId == nil || *defaultId != second.Id {
		t.Error("flag is_default deveria mover o padrão para a nova conta")
	}
}

func TestCreateAccountValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateAccount(ctx, "  ", "Sem chave", false); err == nil {
		t.Error("chave vazia deveria falhar")
	}
	if _, err := svc.CreateAccount(ctx, "x@upi", "", false); err == nil {
		t.Error("nome vazio deveria falhar")
	}
}

func TestDeleteDefaultAccountClearsPointer(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, "maria@upi", "Conta principal", false)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := svc.DeleteAccount(ctx, created.Id); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	defaultId, err := svc.DefaultAccountId(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if defaultId != nil {
		t.Error("remover a conta padrão deveria limpar o ponteiro")
	}
}
