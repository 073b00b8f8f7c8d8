package fx

import (
	"context"

	"Piggyvault/config"
	"Piggyvault/internal/logger"
	"Piggyvault/internal/middleware"
	"Piggyvault/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		goals := api.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/active", handler.GetActiveGoal)
			goals.POST("/pay", handler.MakePayment)
			goals.GET("/:id", handler.GetGoal)
			goals.GET("/:id/plan", handler.GetGoalPlan)
			goals.PATCH("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
			goals.POST("/:id/activate", handler.ActivateGoal)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/streak", handler.GetStreak)
		}

		accounts := api.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.DELETE("/:id", handler.DeleteAccount)
			accounts.PUT("/default", handler.SetDefaultAccount)
		}

		api.GET("/achievements", handler.ListAchievements)

		challenges := api.Group("/challenges")
		{
			challenges.GET("/templates", handler.ListChallengeTemplates)
			challenges.POST("", handler.StartChallenge)
			challenges.GET("", handler.ListChallenges)
			challenges.GET("/:id", handler.GetChallenge)
		}

		api.GET("/export", handler.ExportVault)
		api.GET("/reports/summary", handler.GetSummary)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
