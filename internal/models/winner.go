package models

import "github.com/shopspring/decimal"

// WinningTicket records one winning ticket and its payout
type WinningTicket struct {
	PlayerName   string          `json:"playerName"`
	TicketNumber string          `json:"ticketNumber"`
	PrizeAmount  decimal.Decimal `json:"prizeAmount"`
	Tier         string          `json:"tier"`
}
