package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/bridgetunes-lottery/api/routes"
	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/handlers"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories/memory"
	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/logger"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup("lottery-api", cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	random := newSource(cfg.Game)
	lottery, err := services.NewLottery(cfg.Lottery, random,
		services.WithTicketGenerator(services.NewTicketGenerator(random, cfg.Lottery)),
		services.WithTicketPool(memory.NewTicketPool()),
	)
	if err != nil {
		slog.Error("Failed to create lottery", "error", err)
		os.Exit(1)
	}

	gameService := services.NewGameService(lottery, memory.NewPlayerRepository(), random)
	authService := services.NewAuthService(cfg)
	if cfg.JWT.Secret == "" || cfg.Admin.PasswordHash == "" {
		slog.Warn("Admin authentication is not configured; draw endpoints are disabled")
	}

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		PlayerHandler:   handlers.NewPlayerHandler(gameService),
		DrawHandler:     handlers.NewDrawHandler(gameService),
		SettingsHandler: handlers.NewSystemSettingsHandler(gameService),
	}
	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exiting")
}

func newSource(cfg config.GameConfig) rng.Source {
	switch {
	case cfg.SecureRandom:
		return rng.CryptoSource{}
	case cfg.Seed != 0:
		return rng.NewMathSource(cfg.Seed)
	default:
		return rng.NewSource()
	}
}
