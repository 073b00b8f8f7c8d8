package fx

import (
	"Piggyvault/config"
	"Piggyvault/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newGoalRepository,
		newTransactionRepository,
		newAccountRepository,
		newAchievementRepository,
		newChallengeRepository,
		newMetaRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newAccountRepository(db *gorm.DB) *infrastructure.AccountRepository {
	return &infrastructure.AccountRepository{DB: db}
}

func newAchievementRepository(db *gorm.DB) *infrastructure.AchievementRepository {
	return &infrastructure.AchievementRepository{DB: db}
}

func newChallengeRepository(db *gorm.DB) *infrastructure.ChallengeRepository {
	return &infrastructure.ChallengeRepository{DB: db}
}

func newMetaRepository(db *gorm.DB) *infrastructure.MetaRepository {
	return &infrastructure.MetaRepository{DB: db}
}
