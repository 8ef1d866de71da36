package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/handlers"
	"github.com/ArowuTest/bridgetunes-lottery/internal/metrics"
	"github.com/ArowuTest/bridgetunes-lottery/internal/middleware"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	PlayerHandler   *handlers.PlayerHandler
	DrawHandler     *handlers.DrawHandler
	SettingsHandler *handlers.SystemSettingsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}

		players := public.Group("/players")
		{
			players.GET("", deps.PlayerHandler.ListPlayers)
			players.POST("", deps.PlayerHandler.RegisterPlayer)
			players.GET("/:name", deps.PlayerHandler.GetPlayer)
			players.GET("/:name/tickets", deps.PlayerHandler.GetTickets)
			players.POST("/:name/tickets", deps.PlayerHandler.BuyTickets)
		}

		lottery := public.Group("/lottery")
		{
			lottery.GET("/config", deps.SettingsHandler.GetConfig)
			lottery.GET("/summary", deps.DrawHandler.GetSummary)
			lottery.GET("/result", deps.DrawHandler.GetResult)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1/lottery")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/simulate", deps.DrawHandler.SimulateCPUPlayers)
		protected.POST("/draw", deps.DrawHandler.Draw)
	}

	return router
}
