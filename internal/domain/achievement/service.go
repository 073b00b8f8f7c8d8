package achievement

import (
	"context"
	"sync"
	"time"

	"Piggyvault/internal/domain/shared"
	"Piggyvault/internal/logger"
)

// PaymentContext carrega o estado já recalculado pelo processador de
// pagamentos, com a parcela em curso incluída nas contagens.
type PaymentContext struct {
	Amount         float64
	TxCount        int64
	Streak         int
	Progress       float64
	GoalCompleted  bool
	CompletedGoals int
}

type Service struct {
	Repository Repository
	Events     *shared.Emitter

	mu       sync.Mutex
	unlocked map[string]bool
}

func NewService(repo Repository, events *shared.Emitter) *Service {
	return &Service{
		Repository: repo,
		Events:     events,
		unlocked:   make(map[string]bool),
	}
}

// Load carrega o conjunto de conquistas já desbloqueadas. Deve rodar uma vez
// na inicialização, antes de qualquer verificação.
func (s *Service) Load(ctx context.Context) error {
	unlocks, err := s.Repository.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = make(map[string]bool, len(unlocks))
	for _, unlock := range unlocks {
		s.unlocked[unlock.Id] = true
	}
	return nil
}

// Unlock é idempotente: um id já desbloqueado não gera novo registro nem
// nova notificação. Retorna true apenas no primeiro desbloqueio.
func (s *Service) Unlock(ctx context.Context, id string) (bool, error) {
	def, ok := FindDefinition(id)
	if !ok {
		logger.Warn().Str("achievement_id", id).Msg("Conquista desconhecida ignorada")
		return false, nil
	}

	s.mu.Lock()
	if s.unlocked[id] {
		s.mu.Unlock()
		return false, nil
	}
	s.unlocked[id] = true
	s.mu.Unlock()

	record := &Unlock{Id: id, UnlockedAt: time.Now()}
	if err := s.Repository.Create(ctx, record); err != nil {
		s.mu.Lock()
		delete(s.unlocked, id)
		s.mu.Unlock()
		return false, err
	}

	logger.Info().Str("achievement_id", id).Msg("Conquista desbloqueada")
	s.Events.Emit(shared.AchievementUnlocked{Id: id, Title: def.Title})
	return true, nil
}

func (s *Service) IsUnlocked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked[id]
}

func (s *Service) UnlockedIds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.unlocked))
	for id := range s.unlocked {
		ids = append(ids, id)
	}
	return ids
}

func (s *Service) ListUnlocks(ctx context.Context) ([]*Unlock, error) {
	return s.Repository.List(ctx)
}

// HandleGoalCreated avalia os gatilhos do evento GOAL_CREATED.
func (s *Service) HandleGoalCreated(ctx context.Context) ([]string, error) {
	var newly []string
	return s.tryUnlock(ctx, newly, BeginnersLuck)
}

// HandlePayment avalia a tabela de gatilhos do evento PAYMENT_MADE.
func (s *Service) HandlePayment(ctx context.Context, payment PaymentContext) ([]string, error) {
	var newly []string
	var err error

	if newly, err = s.tryUnlock(ctx, newly, FirstDrop); err != nil {
		return newly, err
	}

	if payment.TxCount >= 5 {
		if newly, err = s.tryUnlock(ctx, newly, HighFive); err != nil {
			return newly, err
		}
	}
	if payment.TxCount >= 10 {
		if newly, err = s.tryUnlock(ctx, newly, OnARoll); err != nil {
			return newly, err
		}
	}
	if payment.Amount > 1000 {
		if newly, err = s.tryUnlock(ctx, newly, BigSpender); err != nil {
			return newly, err
		}
	}

	if payment.Streak >= 7 {
		if newly, err = s.tryUnlock(ctx, newly, WeekLong); err != nil {
			return newly, err
		}
	}
	if payment.Streak >= 30 {
		if newly, err = s.tryUnlock(ctx, newly, MonthStrong); err != nil {
			return newly, err
		}
	}
	if payment.Streak >= 100 {
		if newly, err = s.tryUnlock(ctx, newly, CenturyClub); err != nil {
			return newly, err
		}
	}

	if payment.Progress >= 50 {
		if newly, err = s.tryUnlock(ctx, newly, HalfwayHero); err != nil {
			return newly, err
		}
	}
	if payment.Progress >= 100 {
		if newly, err = s.tryUnlock(ctx, newly, GoalCrusher); err != nil {
			return newly, err
		}
		if payment.CompletedGoals >= 3 {
			if newly, err = s.tryUnlock(ctx, newly, PiggyMaster); err != nil {
				return newly, err
			}
		}
	}

	return newly, nil
}

// HandleChallengeCompleted desbloqueia a recompensa configurada do desafio e
// as conquistas de marco na 1ª e na 5ª conclusão.
func (s *Service) HandleChallengeCompleted(ctx context.Context, reward string, lifetimeCompletions int) ([]string, error) {
	var newly []string
	var err error

	if reward != "" {
		if newly, err = s.tryUnlock(ctx, newly, reward); err != nil {
			return newly, err
		}
	}
	if lifetimeCompletions >= 1 {
		if newly, err = s.tryUnlock(ctx, newly, ChallengeRookie); err != nil {
			return newly, err
		}
	}
	if lifetimeCompletions >= 5 {
		if newly, err = s.tryUnlock(ctx, newly, ChallengeMaster); err != nil {
			return newly, err
		}
	}

	return newly, nil
}

func (s *Service) tryUnlock(ctx context.Context, newly []string, id string) ([]string, error) {
	fresh, err := s.Unlock(ctx, id)
	if err != nil {
		return newly, err
	}
	if fresh {
		newly = append(newly, id)
	}
	return newly, nil
}
