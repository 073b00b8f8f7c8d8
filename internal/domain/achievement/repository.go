package achievement

import (
	"context"
	"time"
)

// Unlock é o registro persistido de uma conquista desbloqueada.
// Existe no máximo um registro por id.
type Unlock struct {
	Id         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

type Repository interface {
	Create(ctx context.Context, unlock *Unlock) error
	List(ctx context.Context) ([]*Unlock, error)
}
