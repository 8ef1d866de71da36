package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

func TestTicketGeneratorProducesUniqueNumbers(t *testing.T) {
	cfg := models.DefaultLotteryConfig()
	g := NewTicketGenerator(rng.NewMathSource(5), cfg)

	tickets, err := g.GenerateTickets(200)
	require.NoError(t, err)
	require.Len(t, tickets, 200)

	seen := make(map[string]bool)
	for _, tk := range tickets {
		assert.True(t, IsValidTicketNumber(tk.Number, cfg), tk.Number)
		assert.False(t, seen[tk.Number], "duplicate %s", tk.Number)
		seen[tk.Number] = true
	}
}

func TestTicketGeneratorSkipsDuplicates(t *testing.T) {
	cfg := models.DefaultLotteryConfig()
	g := NewTicketGenerator(rng.NewScriptedSource(500, 500, 500, 612), cfg)

	tickets, err := g.GenerateTickets(2)
	require.NoError(t, err)
	assert.Equal(t, []models.Ticket{{Number: "500"}, {Number: "612"}}, tickets)
}

func TestTicketGeneratorResetsWhenNumberSpaceIsExhausted(t *testing.T) {
	cfg := models.DefaultLotteryConfig()
	cfg.MinTicketNumber = 7
	cfg.MaxTicketNumber = 7
	g := NewTicketGenerator(rng.NewMathSource(1), cfg)

	tickets, err := g.GenerateTickets(3)
	require.NoError(t, err)
	for _, tk := range tickets {
		assert.Equal(t, "7", tk.Number)
	}
}

func TestTicketGeneratorRejectsNonPositiveCount(t *testing.T) {
	g := NewTicketGenerator(rng.NewMathSource(1), models.DefaultLotteryConfig())
	_, err := g.GenerateTickets(0)
	assert.ErrorIs(t, err, ErrInvalidTicketCount)
}

func TestIsValidTicketNumber(t *testing.T) {
	cfg := models.DefaultLotteryConfig()
	assert.True(t, IsValidTicketNumber("111", cfg))
	assert.True(t, IsValidTicketNumber("999", cfg))
	assert.False(t, IsValidTicketNumber("110", cfg))
	assert.False(t, IsValidTicketNumber("1000", cfg))
	assert.False(t, IsValidTicketNumber("", cfg))
	assert.False(t, IsValidTicketNumber("abc", cfg))
}
