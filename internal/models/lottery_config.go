package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidConfig is returned when a lottery configuration fails validation
var ErrInvalidConfig = errors.New("invalid lottery configuration")

// LotteryConfig holds the immutable parameters of a single draw
type LotteryConfig struct {
	GrandPrize PrizeTier `json:"grandPrize"`
	SecondTier PrizeTier `json:"secondTier"`
	ThirdTier  PrizeTier `json:"thirdTier"`

	HousePercentage decimal.Decimal `json:"housePercentage"`

	MinTicketNumber int `json:"minTicketNumber"`
	MaxTicketNumber int `json:"maxTicketNumber"`

	DefaultPlayerBalance decimal.Decimal `json:"defaultPlayerBalance"`
	DefaultTicketCost    decimal.Decimal `json:"defaultTicketCost"`

	MinPlayers          int `json:"minPlayers"`
	MaxPlayers          int `json:"maxPlayers"`
	MaxTicketsPerPlayer int `json:"maxTicketsPerPlayer"`
}

// DefaultLotteryConfig returns the standard three-tier configuration
func DefaultLotteryConfig() LotteryConfig {
	return LotteryConfig{
		GrandPrize: PrizeTier{
			Name:             "Grand Prize",
			PrizePercentage:  decimal.RequireFromString("0.5"),
			FixedWinnerCount: 1,
		},
		SecondTier: PrizeTier{
			Name:             "Second Tier",
			PrizePercentage:  decimal.RequireFromString("0.3"),
			WinnerPercentage: decimal.RequireFromString("0.1"),
		},
		ThirdTier: PrizeTier{
			Name:             "Third Tier",
			PrizePercentage:  decimal.RequireFromString("0.1"),
			WinnerPercentage: decimal.RequireFromString("0.2"),
		},
		HousePercentage:      decimal.RequireFromString("0.1"),
		MinTicketNumber:      111,
		MaxTicketNumber:      999,
		DefaultPlayerBalance: decimal.NewFromInt(10),
		DefaultTicketCost:    decimal.NewFromInt(1),
		MinPlayers:           10,
		MaxPlayers:           15,
		MaxTicketsPerPlayer:  10,
	}
}

// Tiers returns the prize tiers in draw order
func (c LotteryConfig) Tiers() []PrizeTier {
	return []PrizeTier{c.GrandPrize, c.SecondTier, c.ThirdTier}
}

// Validate checks the configuration for internal consistency
func (c LotteryConfig) Validate() error {
	total := decimal.Zero
	for _, tier := range c.Tiers() {
		if err := tier.Validate(); err != nil {
			return err
		}
		total = total.Add(tier.PrizePercentage)
	}
	if total.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tier prize percentages add up to %s", ErrInvalidConfig, total)
	}
	if !isFraction(c.HousePercentage) {
		return fmt.Errorf("%w: house percentage must be between 0 and 1", ErrInvalidConfig)
	}
	if c.MinTicketNumber < 0 || c.MinTicketNumber > c.MaxTicketNumber {
		return fmt.Errorf("%w: ticket number range [%d, %d] is invalid", ErrInvalidConfig, c.MinTicketNumber, c.MaxTicketNumber)
	}
	if !c.DefaultTicketCost.IsPositive() {
		return fmt.Errorf("%w: default ticket cost must be positive", ErrInvalidConfig)
	}
	if c.DefaultPlayerBalance.IsNegative() {
		return fmt.Errorf("%w: default player balance cannot be negative", ErrInvalidConfig)
	}
	if c.MinPlayers < 1 || c.MinPlayers > c.MaxPlayers {
		return fmt.Errorf("%w: player range [%d, %d] is invalid", ErrInvalidConfig, c.MinPlayers, c.MaxPlayers)
	}
	if c.MaxTicketsPerPlayer < 1 {
		return fmt.Errorf("%w: max tickets per player must be at least 1", ErrInvalidConfig)
	}
	return nil
}
