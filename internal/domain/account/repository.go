package account

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Count(ctx context.Context) (int64, error)
}
