package fx

import (
	"Piggyvault/internal/domain/account"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/domain/report"
	"Piggyvault/internal/domain/shared"
	"Piggyvault/internal/domain/transaction"
	"Piggyvault/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newEmitter,

		newTransactionService,
		newAccountService,
		newAchievementService,
		newChallengeService,
		newGoalService,
		newReportService,
	),
)

func newEmitter() *shared.Emitter {
	return shared.NewEmitter()
}

func newTransactionService(repo *infrastructure.TransactionRepository) *transaction.Service {
	return transaction.NewService(repo)
}

func newAccountService(
	repo *infrastructure.AccountRepository,
	meta *infrastructure.MetaRepository,
) *account.Service {
	return account.NewService(repo, meta)
}

func newAchievementService(
	repo *infrastructure.AchievementRepository,
	events *shared.Emitter,
) *achievement.Service {
	return achievement.NewService(repo, events)
}

func newChallengeService(
	repo *infrastructure.ChallengeRepository,
	achievementSvc *achievement.Service,
	events *shared.Emitter,
) *challenge.Service {
	return challenge.NewService(repo, achievementSvc, events)
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	meta *infrastructure.MetaRepository,
	transactionSvc *transaction.Service,
	achievementSvc *achievement.Service,
	challengeSvc *challenge.Service,
	events *shared.Emitter,
) *goal.Service {
	return goal.NewService(repo, meta, transactionSvc, achievementSvc, challengeSvc, events)
}

func newReportService(
	goalSvc *goal.Service,
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	achievementSvc *achievement.Service,
	challengeSvc *challenge.Service,
) *report.Service {
	return report.NewService(goalSvc, accountSvc, transactionSvc, achievementSvc, challengeSvc)
}
