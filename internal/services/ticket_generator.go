package services

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

// maxGenerateAttempts bounds the retries for one ticket before the seen set is reset
const maxGenerateAttempts = 1000

// TicketGenerator produces ticket numbers for a purchase
type TicketGenerator interface {
	GenerateTickets(count int) ([]models.Ticket, error)
}

// DedupTicketGenerator avoids handing out the same number twice until the
// number space is exhausted, at which point it starts over.
type DedupTicketGenerator struct {
	mu     sync.Mutex
	random rng.Source
	min    int
	max    int
	seen   map[string]struct{}
}

// NewTicketGenerator creates a DedupTicketGenerator for the configured number range
func NewTicketGenerator(random rng.Source, cfg models.LotteryConfig) *DedupTicketGenerator {
	return &DedupTicketGenerator{
		random: random,
		min:    cfg.MinTicketNumber,
		max:    cfg.MaxTicketNumber,
		seen:   make(map[string]struct{}),
	}
}

// GenerateTickets returns count freshly numbered tickets
func (g *DedupTicketGenerator) GenerateTickets(count int) ([]models.Ticket, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTicketCount, count)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	tickets := make([]models.Ticket, 0, count)
	for i := 0; i < count; i++ {
		tickets = append(tickets, models.Ticket{Number: g.next()})
	}
	return tickets, nil
}

func (g *DedupTicketGenerator) next() string {
	attempts := 0
	for {
		number := strconv.Itoa(g.random.Next(g.min, g.max+1))
		if _, dup := g.seen[number]; !dup {
			g.seen[number] = struct{}{}
			return number
		}
		attempts++
		if attempts > maxGenerateAttempts {
			g.seen = make(map[string]struct{})
			attempts = 0
		}
	}
}

// IsValidTicketNumber reports whether number is numeric and inside the configured range
func IsValidTicketNumber(number string, cfg models.LotteryConfig) bool {
	n, err := strconv.Atoi(number)
	if err != nil {
		return false
	}
	return n >= cfg.MinTicketNumber && n <= cfg.MaxTicketNumber
}
