package repositories

import (
	"context"
	"errors"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

var (
	// ErrPlayerNotFound is returned when no player is registered under a name
	ErrPlayerNotFound = errors.New("player not found")
	// ErrPlayerExists is returned when a name is already registered
	ErrPlayerExists = errors.New("player already exists")
)

// TicketRemover deletes a drawn ticket from its owner's holdings
type TicketRemover interface {
	Remove(player *models.Player, ticketNumber string)
}

// TicketPool holds every ticket currently in play, grouped by owner.
// A player has an entry only while it owns at least one ticket.
type TicketPool interface {
	TicketRemover
	Purchase(player *models.Player, tickets []models.Ticket)
	Snapshot() []models.TicketEntry
	Tickets(player *models.Player) ([]models.Ticket, bool)
	Len() int
}

// PlayerRepository defines the interface for player registry operations
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	FindByName(ctx context.Context, name string) (*models.Player, error)
	FindAll(ctx context.Context) ([]*models.Player, error)
	Count(ctx context.Context) (int, error)
}
