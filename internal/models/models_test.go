package models

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLotteryConfigIsValid(t *testing.T) {
	cfg := DefaultLotteryConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Grand Prize", cfg.Tiers()[0].Name)
	assert.Equal(t, "Second Tier", cfg.Tiers()[1].Name)
	assert.Equal(t, "Third Tier", cfg.Tiers()[2].Name)
}

func TestLotteryConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *LotteryConfig)
	}{
		{"both winner settings", func(c *LotteryConfig) { c.SecondTier.FixedWinnerCount = 2 }},
		{"tier over one", func(c *LotteryConfig) { c.GrandPrize.PrizePercentage = decimal.RequireFromString("1.5") }},
		{"tiers over revenue", func(c *LotteryConfig) { c.ThirdTier.PrizePercentage = decimal.RequireFromString("0.4") }},
		{"negative house", func(c *LotteryConfig) { c.HousePercentage = decimal.NewFromInt(-1) }},
		{"inverted ticket range", func(c *LotteryConfig) { c.MinTicketNumber = 1000 }},
		{"free tickets", func(c *LotteryConfig) { c.DefaultTicketCost = decimal.Zero }},
		{"inverted player range", func(c *LotteryConfig) { c.MinPlayers = 20 }},
		{"no tickets per player", func(c *LotteryConfig) { c.MaxTicketsPerPlayer = 0 }},
		{"unnamed tier", func(c *LotteryConfig) { c.ThirdTier.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLotteryConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPlayerTryDebit(t *testing.T) {
	p := NewPlayer("Player1", decimal.NewFromInt(10))

	assert.False(t, p.TryDebit(decimal.NewFromInt(12)))
	assert.True(t, p.Balance().Equal(decimal.NewFromInt(10)))

	assert.True(t, p.TryDebit(decimal.NewFromInt(10)))
	assert.True(t, p.Balance().IsZero())

	p.Credit(decimal.RequireFromString("2.50"))
	assert.True(t, p.Balance().Equal(decimal.RequireFromString("2.5")))
}

func TestPlayerConcurrentDebitNeverOverdraws(t *testing.T) {
	p := NewPlayer("Player1", decimal.NewFromInt(50))
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.TryDebit(decimal.NewFromInt(1)) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, succeeded)
	assert.True(t, p.Balance().IsZero())
}

func TestDrawResultWinnersForTier(t *testing.T) {
	r := &DrawResult{Winners: []WinningTicket{
		{PlayerName: "Player1", Tier: "Grand Prize"},
		{PlayerName: "Player2", Tier: "Second Tier"},
		{PlayerName: "Player3", Tier: "Second Tier"},
	}}
	assert.Len(t, r.WinnersForTier("Second Tier"), 2)
	assert.Empty(t, r.WinnersForTier("Third Tier"))
}
