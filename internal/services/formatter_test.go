package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

func TestResultFormatter(t *testing.T) {
	result := &models.DrawResult{
		Winners: []models.WinningTicket{
			{PlayerName: "Player3", TicketNumber: "123", PrizeAmount: dollars("50"), Tier: "Grand Prize"},
			{PlayerName: "Player4", TicketNumber: "200", PrizeAmount: dollars("4.5"), Tier: "Second Tier"},
			{PlayerName: "Player12", TicketNumber: "201", PrizeAmount: dollars("4.5"), Tier: "Second Tier"},
			{PlayerName: "Player4", TicketNumber: "202", PrizeAmount: dollars("4.5"), Tier: "Second Tier"},
			{PlayerName: "Player1", TicketNumber: "300", PrizeAmount: dollars("0.6"), Tier: "Third Tier"},
			{PlayerName: "Alice", TicketNumber: "301", PrizeAmount: dollars("0.6"), Tier: "Third Tier"},
		},
		HouseProfit: dollars("10.4"),
	}

	var b strings.Builder
	require.NoError(t, NewResultFormatter(models.DefaultLotteryConfig()).Format(&b, result))

	want := "Ticket Draw Result:\n\n" +
		"* Grand Prize: Player3(1) wins $50.00!\n" +
		"* Second Tier: Players 4(2), 12(1) win $4.50 per winning ticket!\n" +
		"* Third Tier: Players Alice(1), 1(1) win $0.60 per winning ticket!\n" +
		"\nCongratulations to the winners!\n" +
		"House Profit: $10.40\n"
	assert.Equal(t, want, b.String())
}

func TestResultFormatterOmitsEmptyTiers(t *testing.T) {
	result := &models.DrawResult{
		Winners: []models.WinningTicket{
			{PlayerName: "Player1", TicketNumber: "111", PrizeAmount: dollars("1"), Tier: "Grand Prize"},
		},
		HouseProfit: dollars("1"),
	}

	var b strings.Builder
	require.NoError(t, NewResultFormatter(models.DefaultLotteryConfig()).Format(&b, result))
	assert.NotContains(t, b.String(), "Second Tier")
	assert.NotContains(t, b.String(), "Third Tier")
	assert.Contains(t, b.String(), "House Profit: $1.00")
}
