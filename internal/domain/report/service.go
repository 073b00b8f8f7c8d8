package report

import (
	"context"
	"math"
	"sort"
	"time"

	"Piggyvault/internal/domain/account"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/domain/transaction"
)

const recentTransactionLimit = 10

type Service struct {
	GoalService        *goal.Service
	AccountService     *account.Service
	TransactionService *transaction.Service
	AchievementService *achievement.Service
	ChallengeService   *challenge.Service
}

func NewService(
	goalSvc *goal.Service,
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	achievementSvc *achievement.Service,
	challengeSvc *challenge.Service,
) *Service {
	return &Service{
		GoalService:        goalSvc,
		AccountService:     accountSvc,
		TransactionService: transactionSvc,
		AchievementService: achievementSvc,
		ChallengeService:   challengeSvc,
	}
}

// Export monta a fotografia completa do cofre em uma única leitura.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	goals, err := s.GoalService.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.AccountService.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.TransactionService.List(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.AchievementService.ListUnlocks(ctx)
	if err != nil {
		return nil, err
	}
	challenges, err := s.ChallengeService.List(ctx)
	if err != nil {
		return nil, err
	}
	milestones, err := s.GoalService.TriggeredMilestones(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.TransactionService.Streak(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Version:             SnapshotVersion,
		ExportDate:          time.Now(),
		Goals:               goals,
		Accounts:            accounts,
		Transactions:        transactions,
		Achievements:        achievements,
		TriggeredMilestones: milestones,
		SavingsStreak:       streak,
		Challenges:          challenges,
	}, nil
}

// Summarize calcula os agregados do painel principal.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	goals, err := s.GoalService.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.TransactionService.List(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.TransactionService.Streak(ctx)
	if err != nil {
		return nil, err
	}
	challenges, err := s.ChallengeService.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		SavingsStreak: streak,
		GoalCount:     len(goals),
		UnlockedCount: len(s.AchievementService.UnlockedIds()),
		Goals:         make([]GoalSummary, 0, len(goals)),
	}

	for _, g := range goals {
		saved := g.TotalSaved()
		paid := 0
		for i := range g.SavingsPlan {
			if g.SavingsPlan[i].Status == goal.BitPaid {
				paid++
			}
		}

		summary.TotalSaved += saved
		summary.TotalTarget += g.TargetAmount
		if saved >= g.TargetAmount {
			summary.CompletedGoals++
		}
		summary.Goals = append(summary.Goals, GoalSummary{
			Id:           g.Id.String(),
			Name:         g.Name,
			TargetAmount: g.TargetAmount,
			TotalSaved:   saved,
			Progress:     g.Progress(),
			Status:       string(g.Status),
			PendingBits:  len(g.SavingsPlan) - paid,
			PaidBits:     paid,
		})
	}

	summary.ActiveGoals = summary.GoalCount - summary.CompletedGoals
	if summary.TotalTarget > 0 {
		summary.OverallProgress = summary.TotalSaved / summary.TotalTarget * 100
	}

	summary.TotalTransactions = len(transactions)
	if len(transactions) > 0 {
		summary.AvgTransaction = math.Round(summary.TotalSaved / float64(len(transactions)))
	}

	for _, c := range challenges {
		if c.Status == challenge.StatusActive {
			summary.ActiveChallenges++
		}
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	if len(transactions) > recentTransactionLimit {
		transactions = transactions[:recentTransactionLimit]
	}
	summary.RecentTransactions = transactions

	return summary, nil
}
