package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/bridgetunes-lottery/internal/metrics"
	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

// Compile-time check to ensure GameServiceImpl implements GameService
var _ GameService = (*GameServiceImpl)(nil)

// GameServiceImpl runs one lottery game: it registers players, sells
// tickets, simulates computer players and triggers the draw.
type GameServiceImpl struct {
	lottery *Lottery
	players repositories.PlayerRepository
	random  rng.Source
	cfg     models.LotteryConfig

	mu     sync.RWMutex
	result *models.DrawResult
}

// NewGameService creates a new GameServiceImpl
func NewGameService(lottery *Lottery, players repositories.PlayerRepository, random rng.Source) *GameServiceImpl {
	return &GameServiceImpl{
		lottery: lottery,
		players: players,
		random:  random,
		cfg:     lottery.Config(),
	}
}

// RegisterPlayer adds a player with the given balance, or the default balance when zero
func (s *GameServiceImpl) RegisterPlayer(ctx context.Context, name string, balance decimal.Decimal) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidArgument)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", ErrInvalidArgument)
	}
	if balance.IsZero() {
		balance = s.cfg.DefaultPlayerBalance
	}

	player := models.NewPlayer(name, balance)
	if err := s.players.Create(ctx, player); err != nil {
		slog.Warn("Failed to register player", "player", name, "error", err)
		return nil, err
	}
	slog.Info("Player registered", "player", name, "balance", balance.StringFixed(2))
	return player, nil
}

// GetPlayer retrieves a registered player by name
func (s *GameServiceImpl) GetPlayer(ctx context.Context, name string) (*models.Player, error) {
	return s.players.FindByName(ctx, name)
}

// ListPlayers returns all players in registration order
func (s *GameServiceImpl) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	return s.players.FindAll(ctx)
}

// BuyTickets buys count tickets for the named player at the configured ticket cost
func (s *GameServiceImpl) BuyTickets(ctx context.Context, name string, count int) (*models.Player, error) {
	player, err := s.players.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.buy(player, count); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *GameServiceImpl) buy(player *models.Player, count int) error {
	ok, err := s.lottery.BuyTickets(player, s.cfg.DefaultTicketCost, count)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, ErrLotteryClosed) {
			reason = "closed"
		}
		metrics.RecordRejectedPurchase(reason)
		slog.Warn("Ticket purchase rejected", "player", player.Name, "count", count, "error", err)
		return err
	}
	if !ok {
		metrics.RecordRejectedPurchase("insufficient_funds")
		slog.Info("Ticket purchase declined", "player", player.Name, "count", count, "balance", player.Balance().StringFixed(2))
		return fmt.Errorf("%w: %s cannot afford %d tickets", ErrInsufficientFunds, player.Name, count)
	}

	metrics.RecordPurchase(count, s.lottery.TotalRevenue())
	slog.Debug("Tickets purchased", "player", player.Name, "count", count, "balance", player.Balance().StringFixed(2))
	return nil
}

// GetTickets returns the tickets the named player still holds
func (s *GameServiceImpl) GetTickets(ctx context.Context, name string) ([]models.Ticket, error) {
	player, err := s.players.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	tickets, ok := s.lottery.GetTicketsForPlayer(player)
	if !ok {
		return []models.Ticket{}, nil
	}
	return tickets, nil
}

// SimulateCPUPlayers picks a total player count in [MinPlayers, MaxPlayers]
// and fills the slots from startIndex upwards with computer players named
// PlayerN, each buying a random affordable number of tickets. Purchases run
// concurrently.
func (s *GameServiceImpl) SimulateCPUPlayers(ctx context.Context, startIndex int) ([]*models.Player, error) {
	if startIndex < 1 {
		return nil, fmt.Errorf("%w: start index must be at least 1", ErrInvalidArgument)
	}
	if status := s.lottery.Status(); status != models.DrawStatusOpen {
		return nil, ErrLotteryClosed
	}

	total := s.random.Next(s.cfg.MinPlayers, s.cfg.MaxPlayers+1)
	type order struct {
		player *models.Player
		count  int
	}
	var orders []order
	for i := startIndex; i <= total; i++ {
		player, err := s.RegisterPlayer(ctx, fmt.Sprintf("Player%d", i), s.cfg.DefaultPlayerBalance)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerExists) {
				continue
			}
			return nil, err
		}
		affordable := int(player.Balance().Div(s.cfg.DefaultTicketCost).IntPart())
		if affordable > s.cfg.MaxTicketsPerPlayer {
			affordable = s.cfg.MaxTicketsPerPlayer
		}
		if affordable < 1 {
			orders = append(orders, order{player: player})
			continue
		}
		orders = append(orders, order{player: player, count: s.random.Next(1, affordable+1)})
	}

	var wg sync.WaitGroup
	errs := make([]error, len(orders))
	for i, o := range orders {
		if o.count == 0 {
			continue
		}
		wg.Add(1)
		go func(i int, o order) {
			defer wg.Done()
			errs[i] = s.buy(o.player, o.count)
		}(i, o)
	}
	wg.Wait()

	players := make([]*models.Player, len(orders))
	for i, o := range orders {
		players[i] = o.player
	}
	if err := errors.Join(errs...); err != nil {
		return players, err
	}
	slog.Info("CPU players simulated", "players", len(players), "revenue", s.lottery.TotalRevenue().StringFixed(2))
	return players, nil
}

// Summary reports the current state of the game
func (s *GameServiceImpl) Summary(ctx context.Context) Summary {
	count, err := s.players.Count(ctx)
	if err != nil {
		slog.Error("Failed to count players", "error", err)
	}
	return Summary{
		Status:        s.lottery.Status(),
		Players:       count,
		TicketsInPool: s.lottery.TicketCount(),
		TotalRevenue:  s.lottery.TotalRevenue(),
		HouseProfit:   s.lottery.HouseProfit(),
		TicketCost:    s.cfg.DefaultTicketCost,
	}
}

// Draw runs the single draw and keeps its result
func (s *GameServiceImpl) Draw(ctx context.Context) (*models.DrawResult, error) {
	start := time.Now()
	result, err := s.lottery.DrawPrizeWinners()
	if err != nil {
		outcome := "failed"
		switch {
		case errors.Is(err, ErrNoTickets):
			outcome = "no_tickets"
		case errors.Is(err, ErrDrawInProgress):
			outcome = "in_progress"
		case errors.Is(err, ErrDrawCompleted):
			outcome = "already_drawn"
		}
		metrics.RecordDrawFailure(outcome)
		slog.Warn("Draw could not run", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.result = result
	s.mu.Unlock()

	tierWinners := make(map[string]int)
	for _, w := range result.Winners {
		tierWinners[w.Tier]++
		slog.Debug("Winner selected", "tier", w.Tier, "player", utils.MaskName(w.PlayerName), "ticket", w.TicketNumber, "prize", w.PrizeAmount.StringFixed(2))
	}
	metrics.RecordDraw(tierWinners, result.TotalPrizesAwarded, time.Since(start))
	slog.Info("Draw completed",
		"drawId", result.DrawID,
		"winners", len(result.Winners),
		"revenue", result.TotalRevenue.StringFixed(2),
		"prizes", result.TotalPrizesAwarded.StringFixed(2),
		"houseProfit", result.HouseProfit.StringFixed(2),
		"roundingProfit", result.HouseProfitFromRounding.StringFixed(2),
	)
	return result, nil
}

// Result returns the completed draw result
func (s *GameServiceImpl) Result(ctx context.Context) (*models.DrawResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil, ErrNoResult
	}
	return s.result, nil
}

// Config returns the lottery configuration in use
func (s *GameServiceImpl) Config() models.LotteryConfig {
	return s.cfg
}
