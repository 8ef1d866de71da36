package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

var (
	// ErrInvalidArgument is returned for a missing player, a non-positive ticket count or a negative cost
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLotteryClosed is returned when buying tickets after the draw has started
	ErrLotteryClosed = errors.New("lottery is not accepting purchases")
	// ErrNoTickets is returned when drawing from an empty pool
	ErrNoTickets = errors.New("no tickets have been purchased")
	// ErrDrawInProgress is returned when a draw is already running
	ErrDrawInProgress = errors.New("draw already in progress")
	// ErrDrawCompleted is returned when the single draw has already happened
	ErrDrawCompleted = errors.New("draw already completed")
	// ErrInsufficientFunds is returned when a player cannot pay for the requested tickets
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoResult is returned when no draw has completed yet
	ErrNoResult = errors.New("no draw result available")
	// ErrInvalidTicketCount is returned when asking a generator for a non-positive number of tickets
	ErrInvalidTicketCount = errors.New("number of tickets must be greater than 0")
)

// Summary describes the current state of the game
type Summary struct {
	Status        models.DrawStatus `json:"status"`
	Players       int               `json:"players"`
	TicketsInPool int               `json:"ticketsInPool"`
	TotalRevenue  decimal.Decimal   `json:"totalRevenue"`
	HouseProfit   decimal.Decimal   `json:"houseProfit"`
	TicketCost    decimal.Decimal   `json:"ticketCost"`
}

// GameService defines the interface for running a single lottery game
type GameService interface {
	// RegisterPlayer adds a player; a zero balance means the configured default
	RegisterPlayer(ctx context.Context, name string, balance decimal.Decimal) (*models.Player, error)

	// GetPlayer retrieves a registered player by name
	GetPlayer(ctx context.Context, name string) (*models.Player, error)

	// ListPlayers returns every registered player in registration order
	ListPlayers(ctx context.Context) ([]*models.Player, error)

	// BuyTickets buys count tickets at the configured ticket cost
	BuyTickets(ctx context.Context, name string, count int) (*models.Player, error)

	// GetTickets returns the tickets a player still holds in the pool
	GetTickets(ctx context.Context, name string) ([]models.Ticket, error)

	// SimulateCPUPlayers registers computer players and buys random ticket counts for them
	SimulateCPUPlayers(ctx context.Context, startIndex int) ([]*models.Player, error)

	// Summary reports status, players, pool size and revenue
	Summary(ctx context.Context) Summary

	// Draw runs the single draw
	Draw(ctx context.Context) (*models.DrawResult, error)

	// Result returns the completed draw result
	Result(ctx context.Context) (*models.DrawResult, error)

	// Config returns the lottery configuration in use
	Config() models.LotteryConfig
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(tokenString string) (map[string]interface{}, error)
}
