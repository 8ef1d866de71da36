package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PrizeTier defines how one tier of the draw pays out.
// WinnerPercentage and FixedWinnerCount are mutually exclusive; the zero value means unset.
type PrizeTier struct {
	Name             string          `json:"name"`
	PrizePercentage  decimal.Decimal `json:"prizePercentage"`            // share of total revenue
	WinnerPercentage decimal.Decimal `json:"winnerPercentage,omitempty"` // share of the remaining pool that wins
	FixedWinnerCount int             `json:"fixedWinnerCount,omitempty"`
}

// HasFixedWinnerCount reports whether the tier uses a fixed number of winners
func (t PrizeTier) HasFixedWinnerCount() bool {
	return t.FixedWinnerCount > 0
}

// Validate checks the tier's percentages and winner-count settings
func (t PrizeTier) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: prize tier name is required", ErrInvalidConfig)
	}
	if !isFraction(t.PrizePercentage) {
		return fmt.Errorf("%w: tier %q prize percentage must be between 0 and 1", ErrInvalidConfig, t.Name)
	}
	if !isFraction(t.WinnerPercentage) {
		return fmt.Errorf("%w: tier %q winner percentage must be between 0 and 1", ErrInvalidConfig, t.Name)
	}
	if t.FixedWinnerCount < 0 {
		return fmt.Errorf("%w: tier %q fixed winner count cannot be negative", ErrInvalidConfig, t.Name)
	}
	if t.HasFixedWinnerCount() && t.WinnerPercentage.IsPositive() {
		return fmt.Errorf("%w: tier %q sets both a winner percentage and a fixed winner count", ErrInvalidConfig, t.Name)
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
