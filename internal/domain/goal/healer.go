package goal

import (
	"context"

	"Piggyvault/internal/logger"
	"Piggyvault/internal/pkg"
)

// HealPlans varre todas as metas na inicialização e regenera o id de
// parcelas duplicadas dentro do mesmo plano. A primeira ocorrência mantém o
// id original; as seguintes recebem ids novos, preservando valor, status e
// vencimento. Executar duas vezes seguidas não altera nada na segunda.
func (s *Service) HealPlans(ctx context.Context) (int, error) {
	goals, err := s.Repository.List(ctx)
	if err != nil {
		return 0, err
	}

	healed := 0
	for _, entity := range goals {
		seen := make(map[string]bool, len(entity.SavingsPlan))
		modified := false

		for i := range entity.SavingsPlan {
			bit := &entity.SavingsPlan[i]
			if bit.Id == "" || seen[bit.Id] {
				bit.Id = pkg.GenerateULID()
				modified = true
			}
			seen[bit.Id] = true
		}

		if !modified {
			continue
		}
		if err := s.Repository.Update(ctx, entity); err != nil {
			return healed, err
		}
		healed++
		logger.Warn().
			Str("goal_id", entity.Id.String()).
			Msg("Plano com parcelas duplicadas corrigido")
	}

	if healed > 0 {
		logger.Info().Int("goals_healed", healed).Msg("Verificação de integridade dos planos concluída")
	}
	return healed, nil
}
