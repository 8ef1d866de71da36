package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
)

// Compile-time check to ensure PlayerRepository implements the interface
var _ repositories.PlayerRepository = (*PlayerRepository)(nil)

// PlayerRepository keeps registered players in memory, in registration order
type PlayerRepository struct {
	mu      sync.RWMutex
	byName  map[string]*models.Player
	players []*models.Player
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		byName: make(map[string]*models.Player),
	}
}

// Create registers a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[player.Name]; exists {
		return fmt.Errorf("%w: %s", repositories.ErrPlayerExists, player.Name)
	}
	r.byName[player.Name] = player
	r.players = append(r.players, player)
	return nil
}

// FindByName finds a player by name
func (r *PlayerRepository) FindByName(ctx context.Context, name string) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	player, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrPlayerNotFound, name)
	}
	return player, nil
}

// FindAll returns all players in registration order
func (r *PlayerRepository) FindAll(ctx context.Context) ([]*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]*models.Player, len(r.players))
	copy(players, r.players)
	return players, nil
}

// Count returns the number of registered players
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players), nil
}
