package transaction

import (
	"context"

	"Piggyvault/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	List(ctx context.Context) ([]*Transaction, error)
	ListPaged(ctx context.Context, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	Count(ctx context.Context) (int64, error)
}
