package report_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"Piggyvault/internal/domain/account"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/domain/report"
	"Piggyvault/internal/domain/shared"
	"Piggyvault/internal/domain/transaction"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Repositórios em memória: o suficiente para montar os serviços reais por
// trás do relatório.

type memGoalRepository struct {
	goals []*goal.Goal
}

func (m *memGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	m.goals = append(m.goals, g)
	return nil
}

func (m *memGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	return nil
}

func (m *memGoalRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (m *memGoalRepository) GetById(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	for _, existing := range m.goals {
		if existing.Id == id {
			return existing, nil
		}
	}
	return nil, appErrors.ErrGoalNotFound
}

func (m *memGoalRepository) List(ctx context.Context) ([]*goal.Goal, error) {
	out := make([]*goal.Goal, len(m.goals))
	copy(out, m.goals)
	return out, nil
}

type memAccountRepository struct {
	accounts []*account.Account
}

func (m *memAccountRepository) Create(ctx context.Context, a *account.Account) error {
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *memAccountRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (m *memAccountRepository) GetById(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	for _, existing := range m.accounts {
		if existing.Id == id {
			return existing, nil
		}
	}
	return nil, appErrors.ErrAccountNotFound
}

func (m *memAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	return m.accounts, nil
}

func (m *memAccountRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.accounts)), nil
}

type memTransactionRepository struct {
	transactions []*transaction.Transaction
}

func (m *memTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *memTransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	out := make([]*transaction.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

func (m *memTransactionRepository) ListPaged(ctx context.Context, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	list, err := m.List(ctx)
	return list, int64(len(m.transactions)), err
}

func (m *memTransactionRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.transactions)), nil
}

type memAchievementRepository struct {
	unlocks []*achievement.Unlock
}

func (m *memAchievementRepository) Create(ctx context.Context, u *achievement.Unlock) error {
	m.unlocks = append(m.unlocks, u)
	return nil
}

func (m *memAchievementRepository) List(ctx context.Context) ([]*achievement.Unlock, error) {
	return m.unlocks, nil
}

type memChallengeRepository struct {
	challenges []*challenge.Challenge
}

func (m *memChallengeRepository) Create(ctx context.Context, c *challenge.Challenge) error {
	m.challenges = append(m.challenges, c)
	return nil
}

func (m *memChallengeRepository) Update(ctx context.Context, c *challenge.Challenge) error {
	return nil
}

func (m *memChallengeRepository) GetById(ctx context.Context, id ulid.ULID) (*challenge.Challenge, error) {
	return nil, appErrors.ErrChallengeNotFound
}

func (m *memChallengeRepository) List(ctx context.Context) ([]*challenge.Challenge, error) {
	return m.challenges, nil
}

func (m *memChallengeRepository) ListByStatus(ctx context.Context, status challenge.Status) ([]*challenge.Challenge, error) {
	var out []*challenge.Challenge
	for _, c := range m.challenges {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memChallengeRepository) CountByStatus(ctx context.Context, status challenge.Status) (int64, error) {
	list, _ := m.ListByStatus(ctx, status)
	return int64(len(list)), nil
}

type memMetaRepository struct {
	values map[string]string
}

func newMemMetaRepository() *memMetaRepository {
	return &memMetaRepository{values: make(map[string]string)}
}

func (m *memMetaRepository) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memMetaRepository) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(raw)
	return nil
}

func (m *memMetaRepository) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type harness struct {
	svc            *report.Service
	goalRepo       *memGoalRepository
	accountRepo    *memAccountRepository
	txRepo         *memTransactionRepository
	challengeRepo  *memChallengeRepository
	achievementSvc *achievement.Service
	meta           *memMetaRepository
}

func newHarness() *harness {
	goalRepo := &memGoalRepository{}
	accountRepo := &memAccountRepository{}
	txRepo := &memTransactionRepository{}
	challengeRepo := &memChallengeRepository{}
	meta := newMemMetaRepository()
	events := shared.NewEmitter()

	txSvc := transaction.NewService(txRepo)
	achievementSvc := achievement.NewService(&memAchievementRepository{}, events)
	challengeSvc := challenge.NewService(challengeRepo, achievementSvc, events)
	accountSvc := account.NewService(accountRepo, meta)
	goalSvc := goal.NewService(goalRepo, meta, txSvc, achievementSvc, challengeSvc, events)

	return &harness{
		svc:            report.NewService(goalSvc, accountSvc, txSvc, achievementSvc, challengeSvc),
		goalRepo:       goalRepo,
		accountRepo:    accountRepo,
		txRepo:         txRepo,
		challengeRepo:  challengeRepo,
		achievementSvc: achievementSvc,
		meta:           meta,
	}
}

// seedGoal monta uma meta com plano determinístico, pagando as primeiras
// `paid` parcelas.
func seedGoal(name string, target float64, bitAmounts []float64, paid int) *goal.Goal {
	now := time.Now()
	plan := make([]goal.SavingsBit, 0, len(bitAmounts))
	for i, amount := range bitAmounts {
		bit := goal.SavingsBit{
			Id:      pkg.GenerateULID(),
			Index:   i + 1,
			Amount:  amount,
			Status:  goal.BitPending,
			DueDate: now.AddDate(0, 0, i),
		}
		if i < paid {
			bit.Status = goal.BitPaid
			bit.PaidAt = &now
		}
		plan = append(plan, bit)
	}

	return &goal.Goal{
		Id:           ulid.Make(),
		Name:         name,
		TargetAmount: target,
		TotalSlots:   len(bitAmounts),
		Frequency:    goal.Daily,
		Status:       goal.Active,
		SavingsPlan:  plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func seedTransaction(goalId ulid.ULID, amount float64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Id:        ulid.Make(),
		GoalId:    goalId,
		AccountId: ulid.Make(),
		Type:      transaction.TypeDebit,
		Amount:    amount,
		Date:      date,
		CreatedAt: date,
	}
}

func TestSummarizeAggregates(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	now := time.Now()

	completed := seedGoal("Fone novo", 100, []float64{50, 50}, 2)
	ongoing := seedGoal("Viagem", 200, []float64{100, 100}, 1)
	h.goalRepo.goals = append(h.goalRepo.goals, completed, ongoing)

	h.txRepo.transactions = append(h.txRepo.transactions,
		seedTransaction(completed.Id, 50, now.Add(-2*time.Hour)),
		seedTransaction(completed.Id, 50, now.Add(-time.Hour)),
		seedTransaction(ongoing.Id, 100, now),
	)

	h.challengeRepo.challenges = append(h.challengeRepo.challenges,
		&challenge.Challenge{Id: ulid.Make(), Status: challenge.StatusActive},
		&challenge.Challenge{Id: ulid.Make(), Status: challenge.StatusCompleted},
	)

	if _, err := h.achievementSvc.Unlock(ctx, achievement.FirstDrop); err != nil {
		t.Fatalf("falha ao desbloquear conquista: %v", err)
	}

	summary, err := h.svc.Summarize(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.TotalSaved != 200 {
		t.Errorf("TotalSaved = %f, esperava 200", summary.TotalSaved)
	}
	if summary.TotalTarget != 300 {
		t.Errorf("TotalTarget = %f, esperava 300", summary.TotalTarget)
	}
	if math.Abs(summary.OverallProgress-200.0/300.0*100) > 0.001 {
		t.Errorf("OverallProgress = %f, esperava ~66.67", summary.OverallProgress)
	}
	if summary.GoalCount != 2 {
		t.Errorf("GoalCount = %d, esperava 2", summary.GoalCount)
	}
	if summary.CompletedGoals != 1 {
		t.Errorf("CompletedGoals = %d, esperava 1", summary.CompletedGoals)
	}
	if summary.ActiveGoals != 1 {
		t.Errorf("ActiveGoals = %d, esperava 1", summary.ActiveGoals)
	}
	if summary.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, esperava 3", summary.TotalTransactions)
	}
	if summary.AvgTransaction != 67 {
		t.Errorf("AvgTransaction = %f, esperava 67", summary.AvgTransaction)
	}
	if summary.SavingsStreak != 1 {
		t.Errorf("SavingsStreak = %d, esperava 1", summary.SavingsStreak)
	}
	if summary.UnlockedCount != 1 {
		t.Errorf("UnlockedCount = %d, esperava 1", summary.UnlockedCount)
	}
	if summary.ActiveChallenges != 1 {
		t.Errorf("ActiveChallenges = %d, esperava 1", summary.ActiveChallenges)
	}

	if len(summary.Goals) != 2 {
		t.Fatalf("esperava 2 metas no resumo, obteve %d", len(summary.Goals))
	}
	first := summary.Goals[0]
	if first.PaidBits != 2 || first.PendingBits != 0 {
		t.Errorf("meta concluída: paid=%d pending=%d, esperava 2/0", first.PaidBits, first.PendingBits)
	}
	second := summary.Goals[1]
	if second.PaidBits != 1 || second.PendingBits != 1 {
		t.Errorf("meta em andamento: paid=%d pending=%d, esperava 1/1", second.PaidBits, second.PendingBits)
	}

	if len(summary.RecentTransactions) != 3 {
		t.Fatalf("esperava 3 transações recentes, obteve %d", len(summary.RecentTransactions))
	}
	if summary.RecentTransactions[0].Amount != 100 {
		t.Error("transações recentes deveriam vir da mais nova para a mais antiga")
	}
}

func TestSummarizeEmptyVault(t *testing.T) {
	h := newHarness()

	summary, err := h.svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.TotalSaved != 0 || summary.TotalTarget != 0 {
		t.Error("cofre vazio deveria somar zero")
	}
	if summary.OverallProgress != 0 {
		t.Errorf("OverallProgress = %f, esperava 0", summary.OverallProgress)
	}
	if summary.TotalTransactions != 0 || summary.AvgTransaction != 0 {
		t.Error("cofre vazio não deveria ter transações nem média")
	}
	if summary.ActiveGoals != 0 {
		t.Errorf("ActiveGoals = %d, esperava 0", summary.ActiveGoals)
	}
	if len(summary.RecentTransactions) != 0 {
		t.Errorf("esperava lista de recentes vazia, obteve %d", len(summary.RecentTransactions))
	}
}

func TestSummarizeLimitsRecentTransactions(t *testing.T) {
	h := newHarness()
	now := time.Now()

	goalId := ulid.Make()
	for i := 0; i < 12; i++ {
		h.txRepo.transactions = append(h.txRepo.transactions,
			seedTransaction(goalId, float64(i+1), now.Add(-time.Duration(i)*time.Minute)))
	}

	summary, err := h.svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.TotalTransactions != 12 {
		t.Errorf("TotalTransactions = %d, esperava 12", summary.TotalTransactions)
	}
	if len(summary.RecentTransactions) != 10 {
		t.Fatalf("esperava 10 transações recentes, obteve %d", len(summary.RecentTransactions))
	}
	if summary.RecentTransactions[0].Amount != 1 {
		t.Error("a transação mais recente deveria abrir a lista")
	}
}

func TestExportSnapshot(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	now := time.Now()

	entity := seedGoal("Viagem", 200, []float64{100, 100}, 1)
	h.goalRepo.goals = append(h.goalRepo.goals, entity)
	h.accountRepo.accounts = append(h.accountRepo.accounts, &account.Account{
		Id:    ulid.Make(),
		UpiId: "maria@upi",
		Name:  "Conta principal",
	})
	h.txRepo.transactions = append(h.txRepo.transactions,
		seedTransaction(entity.Id, 100, now))
	h.challengeRepo.challenges = append(h.challengeRepo.challenges,
		&challenge.Challenge{Id: ulid.Make(), Status: challenge.StatusActive})

	milestones := map[string][]int{entity.Id.String(): {25, 50}}
	if err := h.meta.Set(ctx, shared.MetaTriggeredMilestones, milestones); err != nil {
		t.Fatalf("falha ao gravar marcos: %v", err)
	}
	if _, err := h.achievementSvc.Unlock(ctx, achievement.FirstDrop); err != nil {
		t.Fatalf("falha ao desbloquear conquista: %v", err)
	}

	snapshot, err := h.svc.Export(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if snapshot.Version != report.SnapshotVersion {
		t.Errorf("versão = %s, esperava %s", snapshot.Version, report.SnapshotVersion)
	}
	if snapshot.ExportDate.IsZero() {
		t.Error("ExportDate deveria estar preenchida")
	}
	if len(snapshot.Goals) != 1 || len(snapshot.Accounts) != 1 {
		t.Error("snapshot deveria conter a meta e a conta")
	}
	if len(snapshot.Transactions) != 1 || len(snapshot.Challenges) != 1 {
		t.Error("snapshot deveria conter a transação e o desafio")
	}
	if len(snapshot.Achievements) != 1 {
		t.Errorf("esperava 1 conquista, obteve %d", len(snapshot.Achievements))
	}
	if snapshot.SavingsStreak != 1 {
		t.Errorf("streak = %d, esperava 1", snapshot.SavingsStreak)
	}

	got := snapshot.TriggeredMilestones[entity.Id.String()]
	if len(got) != 2 || got[0] != 25 || got[1] != 50 {
		t.Errorf("marcos exportados = %v, esperava [25 50]", got)
	}
}
