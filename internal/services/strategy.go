package services

import (
	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

// PrizeStrategy selects the winners of one prize tier from a pool snapshot.
// Each winning ticket is passed to remover so later tiers cannot draw it.
type PrizeStrategy interface {
	DrawWinners(candidates []models.TicketEntry, totalRevenue decimal.Decimal, tier models.PrizeTier, random rng.Source, remover repositories.TicketRemover) []models.WinningTicket
}

// GrandPrizeStrategy pays the whole tier amount to each winner
type GrandPrizeStrategy struct{}

func (GrandPrizeStrategy) DrawWinners(candidates []models.TicketEntry, totalRevenue decimal.Decimal, tier models.PrizeTier, random rng.Source, remover repositories.TicketRemover) []models.WinningTicket {
	count := 1
	if tier.HasFixedWinnerCount() {
		count = tier.FixedWinnerCount
	}
	prize := totalRevenue.Mul(tier.PrizePercentage)
	return pickWinners(candidates, count, prize, tier.Name, random, remover)
}

// PercentagePrizeStrategy splits the tier amount evenly between its winners,
// truncated to whole cents.
type PercentagePrizeStrategy struct{}

func (PercentagePrizeStrategy) DrawWinners(candidates []models.TicketEntry, totalRevenue decimal.Decimal, tier models.PrizeTier, random rng.Source, remover repositories.TicketRemover) []models.WinningTicket {
	if len(candidates) == 0 {
		return nil
	}
	count := WinnerCount(tier, len(candidates))
	prize := SplitPrize(totalRevenue.Mul(tier.PrizePercentage), count)
	return pickWinners(candidates, count, prize, tier.Name, random, remover)
}

// WinnerCount returns the number of winners a percentage tier draws from a pool of poolSize tickets
func WinnerCount(tier models.PrizeTier, poolSize int) int {
	if tier.HasFixedWinnerCount() {
		return tier.FixedWinnerCount
	}
	count := int(decimal.NewFromInt(int64(poolSize)).Mul(tier.WinnerPercentage).IntPart())
	if count < 1 {
		count = 1
	}
	return count
}

// SplitPrize divides pool between count winners, rounding each share down to the cent
func SplitPrize(pool decimal.Decimal, count int) decimal.Decimal {
	cents, _ := pool.Shift(2).QuoRem(decimal.NewFromInt(int64(count)), 0)
	return cents.Shift(-2)
}

func pickWinners(candidates []models.TicketEntry, count int, prize decimal.Decimal, tierName string, random rng.Source, remover repositories.TicketRemover) []models.WinningTicket {
	remaining := make([]models.TicketEntry, len(candidates))
	copy(remaining, candidates)

	var winners []models.WinningTicket
	for len(winners) < count && len(remaining) > 0 {
		idx := random.Next(0, len(remaining))
		entry := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		remover.Remove(entry.Player, entry.Ticket.Number)
		winners = append(winners, models.WinningTicket{
			PlayerName:   entry.Player.Name,
			TicketNumber: entry.Ticket.Number,
			PrizeAmount:  prize,
			Tier:         tierName,
		})
	}
	return winners
}
