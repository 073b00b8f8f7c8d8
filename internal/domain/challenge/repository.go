package challenge

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, challenge *Challenge) error
	Update(ctx context.Context, challenge *Challenge) error
	GetById(ctx context.Context, id ulid.ULID) (*Challenge, error)
	List(ctx context.Context) ([]*Challenge, error)
	ListByStatus(ctx context.Context, status Status) ([]*Challenge, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
