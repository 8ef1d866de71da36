package services

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

// sequentialGenerator hands out 100, 101, 102, ... so tests know every number.
type sequentialGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *sequentialGenerator) GenerateTickets(count int) ([]models.Ticket, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tickets := make([]models.Ticket, count)
	for i := range tickets {
		tickets[i] = models.Ticket{Number: fmt.Sprintf("%d", 100+g.next)}
		g.next++
	}
	return tickets, nil
}

type removal struct {
	player string
	number string
}

type recordingRemover struct {
	removed []removal
}

func (r *recordingRemover) Remove(player *models.Player, number string) {
	r.removed = append(r.removed, removal{player: player.Name, number: number})
}

func dollars(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entries(player *models.Player, numbers ...string) []models.TicketEntry {
	out := make([]models.TicketEntry, len(numbers))
	for i, n := range numbers {
		out[i] = models.TicketEntry{Player: player, Ticket: models.Ticket{Number: n}}
	}
	return out
}
