package fx

import (
	"time"

	"Piggyvault/internal/domain/account"
	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/challenge"
	"Piggyvault/internal/domain/goal"
	"Piggyvault/internal/domain/report"
	"Piggyvault/internal/domain/transaction"
	"Piggyvault/internal/middleware"
	"Piggyvault/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	goalSvc *goal.Service,
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	achievementSvc *achievement.Service,
	challengeSvc *challenge.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		GoalService:        goalSvc,
		AccountService:     accountSvc,
		TransactionService: transactionSvc,
		AchievementService: achievementSvc,
		ChallengeService:   challengeSvc,
		ReportService:      reportSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
