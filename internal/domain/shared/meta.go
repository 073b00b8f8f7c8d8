package shared

import (
	"context"
)

// Chaves da tabela de metadados de chave única.
const (
	MetaActiveGoalId        = "activeGoalId"
	MetaDefaultAccountId    = "defaultAccountId"
	MetaTriggeredMilestones = "triggeredMilestones"
)

// MetaRepository guarda valores avulsos codificados em JSON.
type MetaRepository interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
