package models

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
)

// Player represents a lottery participant. Players are created by the caller;
// the draw engine only reads and debits the balance.
type Player struct {
	Name string

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewPlayer creates a player with the given opening balance
func NewPlayer(name string, balance decimal.Decimal) *Player {
	return &Player{Name: name, balance: balance}
}

// Balance returns the player's current balance
func (p *Player) Balance() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}

// TryDebit debits amount if the balance covers it and reports whether it did.
func (p *Player) TryDebit(amount decimal.Decimal) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount.GreaterThan(p.balance) {
		return false
	}
	p.balance = p.balance.Sub(amount)
	return true
}

// Credit adds amount to the balance
func (p *Player) Credit(amount decimal.Decimal) {
	p.mu.Lock()
	p.balance = p.balance.Add(amount)
	p.mu.Unlock()
}

// MarshalJSON renders the player with its current balance
func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
	}{
		Name:    p.Name,
		Balance: p.Balance(),
	})
}
