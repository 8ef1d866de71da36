package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories/memory"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

// Lottery owns the ticket pool for one draw. It accepts purchases while
// open, runs a single draw and then stays closed.
type Lottery struct {
	cfg       models.LotteryConfig
	random    rng.Source
	pool      repositories.TicketPool
	generator TicketGenerator
	grand     PrizeStrategy
	tiered    PrizeStrategy

	// mu guards status. Purchases hold the read lock for their whole
	// duration so none can land once a draw has begun.
	mu     sync.RWMutex
	status models.DrawStatus

	revenue     atomic.Pointer[decimal.Decimal]
	houseProfit atomic.Pointer[decimal.Decimal]
}

// LotteryOption customises a Lottery
type LotteryOption func(*Lottery)

// WithTicketGenerator sets the generator used for purchases
func WithTicketGenerator(g TicketGenerator) LotteryOption {
	return func(l *Lottery) { l.generator = g }
}

// WithTicketPool replaces the in-memory ticket pool
func WithTicketPool(p repositories.TicketPool) LotteryOption {
	return func(l *Lottery) { l.pool = p }
}

// WithPrizeStrategies replaces the grand and percentage tier strategies
func WithPrizeStrategies(grand, tiered PrizeStrategy) LotteryOption {
	return func(l *Lottery) {
		l.grand = grand
		l.tiered = tiered
	}
}

// NewLottery creates an open lottery
func NewLottery(cfg models.LotteryConfig, random rng.Source, opts ...LotteryOption) (*Lottery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidArgument)
	}
	l := &Lottery{
		cfg:    cfg,
		random: random,
		pool:   memory.NewTicketPool(),
		grand:  GrandPrizeStrategy{},
		tiered: PercentagePrizeStrategy{},
		status: models.DrawStatusOpen,
	}
	for _, opt := range opts {
		opt(l)
	}
	zero := decimal.Zero
	l.revenue.Store(&zero)
	l.houseProfit.Store(&zero)
	return l, nil
}

// BuyTickets debits ticketCost*count from the player and adds count tickets
// to the pool. It returns false without side effects when the player cannot
// afford the tickets.
func (l *Lottery) BuyTickets(player *models.Player, ticketCost decimal.Decimal, count int) (bool, error) {
	if player == nil {
		return false, fmt.Errorf("%w: player is required", ErrInvalidArgument)
	}
	if count <= 0 {
		return false, fmt.Errorf("%w: ticket count must be positive, got %d", ErrInvalidArgument, count)
	}
	if ticketCost.IsNegative() {
		return false, fmt.Errorf("%w: ticket cost cannot be negative", ErrInvalidArgument)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.status != models.DrawStatusOpen {
		return false, ErrLotteryClosed
	}

	total := ticketCost.Mul(decimal.NewFromInt(int64(count)))
	if !player.TryDebit(total) {
		return false, nil
	}
	tickets, err := l.generateTickets(count)
	if err != nil {
		player.Credit(total)
		return false, err
	}
	l.pool.Purchase(player, tickets)
	addAtomic(&l.revenue, total)
	return true, nil
}

func (l *Lottery) generateTickets(count int) ([]models.Ticket, error) {
	if l.generator != nil {
		return l.generator.GenerateTickets(count)
	}
	tickets := make([]models.Ticket, count)
	for i := range tickets {
		n := l.random.Next(l.cfg.MinTicketNumber, l.cfg.MaxTicketNumber+1)
		tickets[i] = models.Ticket{Number: strconv.Itoa(n)}
	}
	return tickets, nil
}

func addAtomic(p *atomic.Pointer[decimal.Decimal], amount decimal.Decimal) {
	for {
		old := p.Load()
		next := old.Add(amount)
		if p.CompareAndSwap(old, &next) {
			return
		}
	}
}

// GetTicketsForPlayer returns the tickets the player still holds in the pool
func (l *Lottery) GetTicketsForPlayer(player *models.Player) ([]models.Ticket, bool) {
	if player == nil {
		return nil, false
	}
	return l.pool.Tickets(player)
}

// TotalRevenue returns the sum of all ticket sales
func (l *Lottery) TotalRevenue() decimal.Decimal {
	return *l.revenue.Load()
}

// HouseProfit returns revenue minus prizes paid; zero until the draw completes
func (l *Lottery) HouseProfit() decimal.Decimal {
	return *l.houseProfit.Load()
}

// Status returns the current lifecycle state
func (l *Lottery) Status() models.DrawStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Config returns the configuration the lottery was built with
func (l *Lottery) Config() models.LotteryConfig {
	return l.cfg
}

// TicketCount returns the number of tickets currently in the pool
func (l *Lottery) TicketCount() int {
	return l.pool.Len()
}

// DrawPrizeWinners runs the grand, second and third tiers in order, each
// over a fresh snapshot of what earlier tiers left in the pool.
func (l *Lottery) DrawPrizeWinners() (*models.DrawResult, error) {
	if err := l.beginDraw(); err != nil {
		return nil, err
	}

	revenue := l.TotalRevenue()
	steps := []struct {
		strategy PrizeStrategy
		tier     models.PrizeTier
	}{
		{l.grand, l.cfg.GrandPrize},
		{l.tiered, l.cfg.SecondTier},
		{l.tiered, l.cfg.ThirdTier},
	}

	var winners []models.WinningTicket
	for _, step := range steps {
		candidates := l.pool.Snapshot()
		if len(candidates) == 0 {
			continue
		}
		winners = append(winners, step.strategy.DrawWinners(candidates, revenue, step.tier, l.random, l.pool)...)
	}

	totalPrizes := decimal.Zero
	for _, w := range winners {
		totalPrizes = totalPrizes.Add(w.PrizeAmount)
	}
	houseProfit := revenue.Sub(totalPrizes)
	l.houseProfit.Store(&houseProfit)

	result := &models.DrawResult{
		DrawID:                  uuid.NewString(),
		DrawnAt:                 time.Now().UTC(),
		Winners:                 winners,
		TotalRevenue:            revenue,
		TotalPrizesAwarded:      totalPrizes,
		HouseProfit:             houseProfit,
		HouseProfitFromRounding: houseProfit.Sub(revenue.Mul(l.cfg.HousePercentage)),
	}

	l.mu.Lock()
	l.status = models.DrawStatusClosed
	l.mu.Unlock()
	return result, nil
}

// beginDraw moves the lottery from open to drawing
func (l *Lottery) beginDraw() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.status {
	case models.DrawStatusDrawing:
		return ErrDrawInProgress
	case models.DrawStatusClosed:
		return ErrDrawCompleted
	}
	if l.pool.Len() == 0 {
		return ErrNoTickets
	}
	l.status = models.DrawStatusDrawing
	return nil
}

// IsDrawError reports whether err comes from an attempt to draw at the wrong time
func IsDrawError(err error) bool {
	return errors.Is(err, ErrNoTickets) || errors.Is(err, ErrDrawInProgress) || errors.Is(err, ErrDrawCompleted)
}
