package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories/memory"
	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/logger"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

func main() {
	var (
		configDir  = pflag.String("config", ".", "directory holding config.yaml")
		rosterPath = pflag.String("roster", "", "CSV roster of players to enter instead of CPU players")
		seed       = pflag.Int64("seed", 0, "seed for a reproducible game (0 uses the configured source)")
		logLevel   = pflag.String("log-level", "warn", "log level written to stderr")
	)
	pflag.Parse()

	logger.SetupWithWriter(os.Stderr, "lottery-console", *logLevel)

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
		cfg.Game.SecureRandom = false
	}

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newConsole(game, os.Stdin, os.Stdout, *rosterPath).run(ctx); err != nil {
		if !errors.Is(err, errAborted) {
			slog.Error("Game failed", "error", err)
		}
		os.Exit(1)
	}
}

// newGame wires a single in-memory game from configuration
func newGame(cfg *config.Config) (services.GameService, error) {
	var random rng.Source
	switch {
	case cfg.Game.SecureRandom:
		random = rng.CryptoSource{}
	case cfg.Game.Seed != 0:
		random = rng.NewMathSource(cfg.Game.Seed)
	default:
		random = rng.NewSource()
	}

	lottery, err := services.NewLottery(cfg.Lottery, random,
		services.WithTicketGenerator(services.NewTicketGenerator(random, cfg.Lottery)),
		services.WithTicketPool(memory.NewTicketPool()),
	)
	if err != nil {
		return nil, err
	}
	return services.NewGameService(lottery, memory.NewPlayerRepository(), random), nil
}
