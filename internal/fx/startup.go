package fx

import (
	"context"
	"time"

	"Piggyvault/config"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/logger"

	"go.uber.org/fx"
)

// StartupModule roda as rotinas de inicialização: carga das conquistas,
// verificação de integridade dos planos e a varredura periódica de desafios
// vencidos.
var StartupModule = fx.Module("startup",
	fx.Invoke(
		loadAchievements,
		healPlans,
		startChallengeSweeper,
	),
)

func loadAchievements(lc fx.Lifecycle, achievementSvc *achievement.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return achievementSvc.Load(ctx)
		},
	})
}

func healPlans(lc fx.Lifecycle, goalSvc *goal.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := goalSvc.HealPlans(ctx)
			return err
		},
	})
}

func startChallengeSweeper(lc fx.Lifecycle, cfg *config.Config, challengeSvc *challenge.Service) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := challengeSvc.ExpireOverdue(ctx, time.Now()); err != nil {
				return err
			}

			go func() {
				ticker := time.NewTicker(cfg.Challenge.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case now := <-ticker.C:
						if _, err := challengeSvc.ExpireOverdue(context.Background(), now); err != nil {
							logger.Error().Err(err).Msg("Falha na varredura de desafios vencidos")
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
