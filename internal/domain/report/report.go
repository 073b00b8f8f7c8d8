package report

import (
	"time"

	"Piggyvault/internal/domain/account"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/domain/transaction"
)

// SnapshotVersion identifica o formato do arquivo exportado.
const SnapshotVersion = "1.0"

// Snapshot é a fotografia completa do cofre, própria para backup e
// restauração externa.
type Snapshot struct {
	Version             string                     `json:"version"`
	ExportDate          time.Time                  `json:"exportDate"`
	Goals               []*goal.Goal               `json:"goals"`
	Accounts            []*account.Account         `json:"accounts"`
	Transactions        []*transaction.Transaction `json:"transactions"`
	Achievements        []*achievement.Unlock      `json:"achievements"`
	TriggeredMilestones map[string][]int           `json:"triggeredMilestones"`
	SavingsStreak       int                        `json:"savingsStreak"`
	Challenges          []*challenge.Challenge     `json:"challenges"`
}

// GoalSummary resume o andamento de uma meta para o painel.
type GoalSummary struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	TotalSaved   float64 `json:"totalSaved"`
	Progress     float64 `json:"progress"`
	Status       string  `json:"status"`
	PendingBits  int     `json:"pendingBits"`
	PaidBits     int     `json:"paidBits"`
}

// Summary agrega os números do painel principal.
type Summary struct {
	TotalSaved         float64                    `json:"totalSaved"`
	TotalTarget        float64                    `json:"totalTarget"`
	OverallProgress    float64                    `json:"overallProgress"`
	SavingsStreak      int                        `json:"savingsStreak"`
	GoalCount          int                        `json:"goalCount"`
	CompletedGoals     int                        `json:"completedGoals"`
	ActiveGoals        int                        `json:"activeGoals"`
	TotalTransactions  int                        `json:"totalTransactions"`
	AvgTransaction     float64                    `json:"avgTransaction"`
	UnlockedCount      int                        `json:"unlockedCount"`
	ActiveChallenges   int64                      `json:"activeChallenges"`
	Goals              []GoalSummary              `json:"goals"`
	RecentTransactions []*transaction.Transaction `json:"recentTransactions"`
}
