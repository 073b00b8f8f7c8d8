package challenge

import (
	"context"
	"time"

	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/shared"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/logger"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository         Repository
	AchievementService *achievement.Service
	Events             *shared.Emitter
}

func NewService(repo Repository, achievementSvc *achievement.Service, events *shared.Emitter) *Service {
	return &Service{
		Repository:         repo,
		AchievementService: achievementSvc,
		Events:             events,
	}
}

// StartChallenge instancia um desafio a partir de um modelo do catálogo.
func (s *Service) StartChallenge(ctx context.Context, templateId string) (*Challenge, error) {
	template, ok := TemplateById(templateId)
	if !ok {
		return nil, appErrors.ErrTemplateNotFound.WithDetails(map[string]interface{}{
			"templateId": templateId,
		})
	}

	now := time.Now()
	entity := &Challenge{
		Id:           pkg.GenerateULIDObject(),
		TemplateId:   template.Id,
		Type:         template.Type,
		Title:        template.Title,
		Description:  template.Description,
		TargetAmount: template.TargetAmount,
		TargetCount:  template.TargetCount,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, template.DurationDays),
		Status:       StatusActive,
		Reward:       template.Reward,
		Badge:        template.Badge,
		CreatedAt:    now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().
		Str("challenge_id", entity.Id.String()).
		Str("template", template.Id).
		Msg("Desafio iniciado")

	return entity, nil
}

func (s *Service) List(ctx context.Context) ([]*Challenge, error) {
	return s.Repository.List(ctx)
}

func (s *Service) GetChallengeById(ctx context.Context, id ulid.ULID) (*Challenge, error) {
	return s.Repository.GetById(ctx, id)
}

// RecordSaving avança o progresso de todos os desafios ativos cuja janela
// contém o instante do pagamento. Desafios que atingem o alvo transitam para
// COMPLETED, desbloqueiam a recompensa e, na 1ª e 5ª conclusão, as conquistas
// de marco.
func (s *Service) RecordSaving(ctx context.Context, amount float64, at time.Time) error {
	active, err := s.Repository.ListByStatus(ctx, StatusActive)
	if err != nil {
		return err
	}

	for _, entity := range active {
		if !entity.InWindow(at) {
			continue
		}

		entity.CurrentAmount += amount
		entity.CurrentCount++

		if entity.TargetReached() {
			now := time.Now()
			entity.Status = StatusCompleted
			entity.CompletedAt = &now

			if err := s.Repository.Update(ctx, entity); err != nil {
				return err
			}

			completed, err := s.Repository.CountByStatus(ctx, StatusCompleted)
			if err != nil {
				return err
			}

			logger.Info().
				Str("challenge_id", entity.Id.String()).
				Int64("lifetime_completions", completed).
				Msg("Desafio concluído")

			s.Events.Emit(shared.ChallengeCompleted{
				Id:    entity.Id.String(),
				Title: entity.Title,
				Badge: entity.Badge,
			})

			if _, err := s.AchievementService.HandleChallengeCompleted(ctx, entity.Reward, int(completed)); err != nil {
				return err
			}
			continue
		}

		if err := s.Repository.Update(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}

// ExpireOverdue marca como FAILED os desafios ativos cujo prazo venceu.
// Roda na inicialização e a cada tick do varredor; vale a última escrita.
func (s *Service) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	active, err := s.Repository.ListByStatus(ctx, StatusActive)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, entity := range active {
		if !now.After(entity.EndDate) {
			continue
		}

		entity.Status = StatusFailed
		if err := s.Repository.Update(ctx, entity); err != nil {
			return expired, err
		}
		expired++

		logger.Info().
			Str("challenge_id", entity.Id.String()).
			Time("end_date", entity.EndDate).
			Msg("Desafio expirado")

		s.Events.Emit(shared.ChallengeFailed{Id: entity.Id.String(), Title: entity.Title})
	}

	return expired, nil
}
