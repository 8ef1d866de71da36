package memory

import (
	"sync"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
)

// Compile-time check to ensure TicketPool implements the interface
var _ repositories.TicketPool = (*TicketPool)(nil)

// poolEntry holds one player's tickets. Once deleted is set the entry is
// dead and must be replaced rather than appended to.
type poolEntry struct {
	mu      sync.Mutex
	tickets []models.Ticket
	deleted bool
}

// TicketPool is an in-memory ticket pool. The pool lock guards the entry map
// and player order; each entry lock guards that player's tickets. Locks are
// always taken pool first, then entry.
type TicketPool struct {
	mu      sync.RWMutex
	entries map[*models.Player]*poolEntry
	order   []*models.Player
}

// NewTicketPool creates an empty TicketPool
func NewTicketPool() *TicketPool {
	return &TicketPool{
		entries: make(map[*models.Player]*poolEntry),
	}
}

// Purchase appends tickets to the player's holdings, creating the entry if absent
func (p *TicketPool) Purchase(player *models.Player, tickets []models.Ticket) {
	if player == nil || len(tickets) == 0 {
		return
	}
	var stale *poolEntry
	for {
		e := p.entryFor(player, stale)
		e.mu.Lock()
		if !e.deleted {
			e.tickets = append(e.tickets, tickets...)
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()
		// A concurrent Remove emptied the entry; swap in a fresh one.
		stale = e
	}
}

// entryFor returns the live entry for player, creating one when the map has
// none or still holds stale.
func (p *TicketPool) entryFor(player *models.Player, stale *poolEntry) *poolEntry {
	p.mu.RLock()
	e, ok := p.entries[player]
	p.mu.RUnlock()
	if ok && e != stale {
		return e
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok = p.entries[player]
	if ok && e != stale {
		return e
	}
	fresh := &poolEntry{}
	p.entries[player] = fresh
	if !ok {
		p.order = append(p.order, player)
	}
	return fresh
}

// Remove deletes the first ticket matching ticketNumber from the player's
// holdings and drops the player once empty. Absent players or tickets are ignored.
func (p *TicketPool) Remove(player *models.Player, ticketNumber string) {
	p.mu.RLock()
	e, ok := p.entries[player]
	p.mu.RUnlock()
	if !ok {
		return
	}

	e.mu.Lock()
	if e.deleted {
		e.mu.Unlock()
		return
	}
	idx := -1
	for i, t := range e.tickets {
		if t.Number == ticketNumber {
			idx = i
			break
		}
	}
	if idx == -1 {
		e.mu.Unlock()
		return
	}
	e.tickets = append(e.tickets[:idx], e.tickets[idx+1:]...)
	empty := len(e.tickets) == 0
	if empty {
		e.deleted = true
	}
	e.mu.Unlock()

	if empty {
		p.drop(player, e)
	}
}

// drop removes the player's entry if the map still holds e
func (p *TicketPool) drop(player *models.Player, e *poolEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.entries[player] != e {
		return
	}
	delete(p.entries, player)
	for i, pl := range p.order {
		if pl == player {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Snapshot returns every (player, ticket) pair, players in first-purchase
// order and tickets in purchase order.
func (p *TicketPool) Snapshot() []models.TicketEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var snapshot []models.TicketEntry
	for _, player := range p.order {
		e := p.entries[player]
		e.mu.Lock()
		if !e.deleted {
			for _, t := range e.tickets {
				snapshot = append(snapshot, models.TicketEntry{Player: player, Ticket: t})
			}
		}
		e.mu.Unlock()
	}
	return snapshot
}

// Tickets returns a copy of the player's tickets and whether the player has an entry
func (p *TicketPool) Tickets(player *models.Player) ([]models.Ticket, bool) {
	p.mu.RLock()
	e, ok := p.entries[player]
	p.mu.RUnlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, false
	}
	tickets := make([]models.Ticket, len(e.tickets))
	copy(tickets, e.tickets)
	return tickets, true
}

// Len returns the number of tickets in the pool
func (p *TicketPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, e := range p.entries {
		e.mu.Lock()
		if !e.deleted {
			n += len(e.tickets)
		}
		e.mu.Unlock()
	}
	return n
}
