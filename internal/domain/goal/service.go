package goal

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/shared"
	"Piggyvault/internal/domain/transaction"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/logger"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Marcos de progresso celebrados uma única vez por meta.
var milestoneThresholds = []int{25, 50, 75, 100}

type Service struct {
	Repository         Repository
	Meta               shared.MetaRepository
	TransactionService *transaction.Service
	AchievementService *achievement.Service
	ChallengeService   *challenge.Service
	Events             *shared.Emitter
}

func NewService(
	repo Repository,
	meta shared.MetaRepository,
	transactionSvc *transaction.Service,
	achievementSvc *achievement.Service,
	challengeSvc *challenge.Service,
	events *shared.Emitter,
) *Service {
	return &Service{
		Repository:         repo,
		Meta:               meta,
		TransactionService: transactionSvc,
		AchievementService: achievementSvc,
		ChallengeService:   challengeSvc,
		Events:             events,
	}
}

type CreateGoalRequest struct {
	Name          string
	Amount        float64
	Slots         int
	Frequency     Frequency
	DurationValue int
	DurationUnit  string
	Category      string
}

type UpdateGoalRequest struct {
	Name          string
	Amount        float64
	Slots         int
	Frequency     Frequency
	DurationValue int
	DurationUnit  string
}

func validateGoalInput(amount float64, slots int, frequency Frequency) error {
	if amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if amount != math.Trunc(amount) {
		return appErrors.NewValidationError("amount", "deve ser um valor inteiro")
	}
	if slots <= 0 {
		return appErrors.NewValidationError("slots", "deve ser maior que zero")
	}
	if !frequency.Valid() {
		return appErrors.NewValidationError("frequency", "deve ser daily, weekly, monthly ou yearly")
	}
	return nil
}

func (s *Service) CreateGoal(ctx context.Context, request *CreateGoalRequest) (*Goal, error) {
	if err := validateGoalInput(request.Amount, request.Slots, request.Frequency); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		existing, err := s.Repository.List(ctx)
		if err != nil {
			return nil, err
		}
		name = fmt.Sprintf("Meta %d", len(existing)+1)
	}

	category := request.Category
	if category == "" {
		category = "other"
	}

	now := time.Now()
	entity := &Goal{
		Id:            pkg.GenerateULIDObject(),
		Name:          name,
		TargetAmount:  request.Amount,
		TotalSlots:    request.Slots,
		Frequency:     request.Frequency,
		DurationValue: request.DurationValue,
		DurationUnit:  request.DurationUnit,
		Category:      category,
		Status:        Active,
		SavingsPlan:   GeneratePlan(request.Amount, request.Slots, request.Frequency, now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	if err := s.Meta.Set(ctx, shared.MetaActiveGoalId, entity.Id.String()); err != nil {
		return nil, err
	}

	if _, err := s.AchievementService.HandleGoalCreated(ctx); err != nil {
		return nil, err
	}

	logger.Info().
		Str("goal_id", entity.Id.String()).
		Float64("target_amount", entity.TargetAmount).
		Int("slots", entity.TotalSlots).
		Msg("Meta criada")

	return entity, nil
}

// UpdateGoal altera uma meta. Mudança de valor, quantidade de parcelas ou
// frequência regenera o plano inteiro e descarta o progresso das parcelas
// substituídas; comportamento documentado, não é um defeito.
func (s *Service) UpdateGoal(ctx context.Context, id ulid.ULID, request *UpdateGoalRequest) (*Goal, error) {
	if err := validateGoalInput(request.Amount, request.Slots, request.Frequency); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	regenerate := request.Amount != entity.TargetAmount ||
		request.Slots != entity.TotalSlots ||
		request.Frequency != entity.Frequency

	if name := strings.TrimSpace(request.Name); name != "" {
		entity.Name = name
	}
	entity.TargetAmount = request.Amount
	entity.TotalSlots = request.Slots
	entity.Frequency = request.Frequency
	entity.DurationValue = request.DurationValue
	entity.DurationUnit = request.DurationUnit
	entity.UpdatedAt = time.Now()

	if regenerate {
		entity.SavingsPlan = GeneratePlan(request.Amount, request.Slots, request.Frequency, time.Now())
		entity.Status = Active
		logger.Info().Str("goal_id", id.String()).Msg("Plano regenerado; progresso anterior descartado")
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// DeleteGoal remove a meta e seus marcos registrados. As transações do
// livro-razão são preservadas.
func (s *Service) DeleteGoal(ctx context.Context, id ulid.ULID) error {
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	triggered, err := s.loadTriggeredMilestones(ctx)
	if err != nil {
		return err
	}
	if _, ok := triggered[id.String()]; ok {
		delete(triggered, id.String())
		if err := s.Meta.Set(ctx, shared.MetaTriggeredMilestones, triggered); err != nil {
			return err
		}
	}

	activeId, err := s.activeGoalId(ctx)
	if err != nil {
		return err
	}
	if activeId == nil || *activeId != id {
		return nil
	}

	remaining, err := s.Repository.List(ctx)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return s.Meta.Set(ctx, shared.MetaActiveGoalId, remaining[0].Id.String())
	}
	return s.Meta.Delete(ctx, shared.MetaActiveGoalId)
}

func (s *Service) SwitchGoal(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}
	return s.Meta.Set(ctx, shared.MetaActiveGoalId, id.String())
}

func (s *Service) GetGoalById(ctx context.Context, id ulid.ULID) (*Goal, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListGoals(ctx context.Context) ([]*Goal, error) {
	return s.Repository.List(ctx)
}

// ActiveGoal resolve o ponteiro de meta ativa; sem ponteiro válido, cai na
// primeira meta cadastrada.
func (s *Service) ActiveGoal(ctx context.Context) (*Goal, error) {
	entity, err := s.activeGoal(ctx)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, appErrors.ErrNoActiveGoal
	}
	return entity, nil
}

func (s *Service) activeGoalId(ctx context.Context) (*ulid.ULID, error) {
	var raw string
	found, err := s.Meta.Get(ctx, shared.MetaActiveGoalId, &raw)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &id, nil
}

func (s *Service) activeGoal(ctx context.Context) (*Goal, error) {
	activeId, err := s.activeGoalId(ctx)
	if err != nil {
		return nil, err
	}
	if activeId != nil {
		entity, err := s.Repository.GetById(ctx, *activeId)
		if err == nil {
			return entity, nil
		}
		// Ponteiro órfão (meta removida por fora) cai no fallback abaixo.
		if !isNotFound(err) {
			return nil, err
		}
	}

	all, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func isNotFound(err error) bool {
	appErr, ok := appErrors.AsAppError(err)
	return ok && appErr.StatusCode == 404
}

// PaymentResult agrega o resultado de um pagamento para a camada de cima.
// Mood é transitório e não persiste.
type PaymentResult struct {
	Transaction  *transaction.Transaction `json:"transaction"`
	TotalSaved   float64                  `json:"totalSaved"`
	Progress     float64                  `json:"progress"`
	Milestone    *int                     `json:"milestone,omitempty"`
	Achievements []string                 `json:"achievements,omitempty"`
	Mood         string                   `json:"mood"`
}

// MakePayment registra o pagamento confirmado de uma parcela da meta ativa.
// Parcela inexistente ou já paga não gera efeito observável.
func (s *Service) MakePayment(ctx context.Context, bitId string, accountId ulid.ULID) (*PaymentResult, error) {
	entity, err := s.activeGoal(ctx)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		logger.Debug().Str("bit_id", bitId).Msg("Pagamento ignorado: nenhuma meta ativa")
		return nil, nil
	}

	idx := entity.FindBit(bitId)
	if idx < 0 || entity.SavingsPlan[idx].Status != BitPending {
		logger.Debug().
			Str("bit_id", bitId).
			Str("goal_id", entity.Id.String()).
			Msg("Pagamento ignorado: parcela inexistente ou já paga")
		return nil, nil
	}

	now := time.Now()
	bit := &entity.SavingsPlan[idx]
	bit.Status = BitPaid
	bit.PaidAt = &now
	bit.PaidBy = &accountId

	totalSaved := entity.TotalSaved()
	progress := entity.Progress()
	if totalSaved >= entity.TargetAmount {
		entity.Status = Completed
	}
	entity.UpdatedAt = now

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}

	entry := &transaction.Transaction{
		GoalId:      entity.Id,
		AccountId:   accountId,
		Type:        transaction.TypeDebit,
		Amount:      bit.Amount,
		Description: fmt.Sprintf("Poupança de %.0f para a meta %s", bit.Amount, entity.Name),
		Date:        now,
	}
	if err := s.TransactionService.Append(ctx, entry); err != nil {
		return nil, err
	}

	result := &PaymentResult{
		Transaction: entry,
		TotalSaved:  totalSaved,
		Progress:    progress,
		Mood:        "happy",
	}

	milestone, err := s.checkMilestone(ctx, entity, totalSaved, progress)
	if err != nil {
		return nil, err
	}
	if milestone != nil {
		result.Milestone = milestone
		result.Mood = "excited"
	}

	unlocked, err := s.checkPaymentAchievements(ctx, bit.Amount, progress)
	if err != nil {
		return nil, err
	}
	result.Achievements = unlocked

	if err := s.ChallengeService.RecordSaving(ctx, bit.Amount, now); err != nil {
		return nil, err
	}

	logger.Info().
		Str("goal_id", entity.Id.String()).
		Str("bit_id", bitId).
		Float64("amount", bit.Amount).
		Float64("progress", progress).
		Msg("Pagamento registrado")

	return result, nil
}

// checkMilestone dispara no máximo um marco por pagamento: o menor limiar
// recém-cruzado, em ordem crescente. Limiares já celebrados nunca repetem,
// mesmo entre recargas.
func (s *Service) checkMilestone(ctx context.Context, entity *Goal, totalSaved, progress float64) (*int, error) {
	triggered, err := s.loadTriggeredMilestones(ctx)
	if err != nil {
		return nil, err
	}

	goalKey := entity.Id.String()
	already := triggered[goalKey]

	for _, threshold := range milestoneThresholds {
		if progress < float64(threshold) || containsInt(already, threshold) {
			continue
		}

		triggered[goalKey] = append(already, threshold)
		if err := s.Meta.Set(ctx, shared.MetaTriggeredMilestones, triggered); err != nil {
			return nil, err
		}

		s.Events.Emit(shared.MilestoneReached{
			GoalId:        goalKey,
			GoalName:      entity.Name,
			Percent:       threshold,
			CurrentAmount: totalSaved,
			TargetAmount:  entity.TargetAmount,
		})

		milestone := threshold
		return &milestone, nil
	}

	return nil, nil
}

func (s *Service) loadTriggeredMilestones(ctx context.Context) (map[string][]int, error) {
	triggered := make(map[string][]int)
	if _, err := s.Meta.Get(ctx, shared.MetaTriggeredMilestones, &triggered); err != nil {
		return nil, err
	}
	if triggered == nil {
		triggered = make(map[string][]int)
	}
	return triggered, nil
}

func (s *Service) checkPaymentAchievements(ctx context.Context, amount, progress float64) ([]string, error) {
	txCount, err := s.TransactionService.Count(ctx)
	if err != nil {
		return nil, err
	}

	streak, err := s.TransactionService.Streak(ctx)
	if err != nil {
		return nil, err
	}

	completedGoals := 0
	if progress >= 100 {
		all, err := s.Repository.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range all {
			if g.TotalSaved() >= g.TargetAmount {
				completedGoals++
			}
		}
	}

	return s.AchievementService.HandlePayment(ctx, achievement.PaymentContext{
		Amount:         amount,
		TxCount:        txCount,
		Streak:         streak,
		Progress:       progress,
		GoalCompleted:  progress >= 100,
		CompletedGoals: completedGoals,
	})
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// TriggeredMilestones expõe o mapa de marcos já celebrados por meta.
func (s *Service) TriggeredMilestones(ctx context.Context) (map[string][]int, error) {
	return s.loadTriggeredMilestones(ctx)
}
