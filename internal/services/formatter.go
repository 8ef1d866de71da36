package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
)

// ResultFormatter renders a draw result for the console and the text API
type ResultFormatter struct {
	cfg models.LotteryConfig
}

// NewResultFormatter creates a formatter for the given tiers
func NewResultFormatter(cfg models.LotteryConfig) *ResultFormatter {
	return &ResultFormatter{cfg: cfg}
}

type playerWins struct {
	name  string
	count int
}

// Format writes the winners grouped by tier, followed by the house profit
func (f *ResultFormatter) Format(w io.Writer, result *models.DrawResult) error {
	var b strings.Builder
	b.WriteString("Ticket Draw Result:\n\n")

	for i, tier := range f.cfg.Tiers() {
		winners := result.WinnersForTier(tier.Name)
		if len(winners) == 0 {
			continue
		}
		if i == 0 && len(winners) == 1 {
			fmt.Fprintf(&b, "* %s: %s(1) wins %s!\n", tier.Name, winners[0].PlayerName, utils.FormatCurrency(winners[0].PrizeAmount))
			continue
		}
		for _, group := range groupByAmount(winners) {
			fmt.Fprintf(&b, "* %s: Players %s win %s per winning ticket!\n",
				tier.Name, formatWins(countWins(group)), utils.FormatCurrency(group[0].PrizeAmount))
		}
	}

	b.WriteString("\nCongratulations to the winners!\n")
	fmt.Fprintf(&b, "House Profit: %s\n", utils.FormatCurrency(result.HouseProfit))

	_, err := io.WriteString(w, b.String())
	return err
}

// countWins tallies winning tickets per player, ordered by player number then name
func countWins(winners []models.WinningTicket) []playerWins {
	idx := make(map[string]int)
	var wins []playerWins
	for _, w := range winners {
		if i, ok := idx[w.PlayerName]; ok {
			wins[i].count++
			continue
		}
		idx[w.PlayerName] = len(wins)
		wins = append(wins, playerWins{name: w.PlayerName, count: 1})
	}
	sort.SliceStable(wins, func(i, j int) bool {
		ni, nj := utils.ExtractPlayerNumber(wins[i].name), utils.ExtractPlayerNumber(wins[j].name)
		if ni != nj {
			return ni < nj
		}
		return wins[i].name < wins[j].name
	})
	return wins
}

// groupByAmount splits a tier's winners by prize amount, largest first
func groupByAmount(winners []models.WinningTicket) [][]models.WinningTicket {
	var amounts []decimal.Decimal
	groups := make(map[string][]models.WinningTicket)
	for _, w := range winners {
		key := w.PrizeAmount.String()
		if _, ok := groups[key]; !ok {
			amounts = append(amounts, w.PrizeAmount)
		}
		groups[key] = append(groups[key], w)
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i].GreaterThan(amounts[j]) })

	out := make([][]models.WinningTicket, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, groups[a.String()])
	}
	return out
}

func formatWins(wins []playerWins) string {
	parts := make([]string, len(wins))
	for i, pw := range wins {
		label := pw.name
		if n := utils.ExtractPlayerNumber(pw.name); n > 0 {
			label = fmt.Sprintf("%d", n)
		}
		parts[i] = fmt.Sprintf("%s(%d)", label, pw.count)
	}
	return strings.Join(parts, ", ")
}
