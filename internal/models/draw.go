package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DrawStatus represents the lifecycle state of a lottery
type DrawStatus string

const (
	DrawStatusOpen    DrawStatus = "OPEN"
	DrawStatusDrawing DrawStatus = "DRAWING"
	DrawStatusClosed  DrawStatus = "CLOSED"
)

// DrawResult is the outcome of a lottery draw. Winners are in draw order.
type DrawResult struct {
	DrawID                  string          `json:"drawId"`
	DrawnAt                 time.Time       `json:"drawnAt"`
	Winners                 []WinningTicket `json:"winners"`
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	TotalPrizesAwarded      decimal.Decimal `json:"totalPrizesAwarded"`
	HouseProfit             decimal.Decimal `json:"houseProfit"`
	HouseProfitFromRounding decimal.Decimal `json:"houseProfitFromRounding"`
}

// WinnersForTier returns the winners drawn in the named tier, in draw order
func (r *DrawResult) WinnersForTier(tier string) []WinningTicket {
	var winners []WinningTicket
	for _, w := range r.Winners {
		if w.Tier == tier {
			winners = append(winners, w)
		}
	}
	return winners
}
