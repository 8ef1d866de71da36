package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
)

const humanPlayer = "Player1"

// errAborted ends the game after the human player gave unusable input
var errAborted = errors.New("game aborted")

// console drives one interactive game over a GameService
type console struct {
	game       services.GameService
	formatter  *services.ResultFormatter
	in         *bufio.Scanner
	out        io.Writer
	rosterPath string
}

func newConsole(game services.GameService, in io.Reader, out io.Writer, rosterPath string) *console {
	return &console{
		game:       game,
		formatter:  services.NewResultFormatter(game.Config()),
		in:         bufio.NewScanner(in),
		out:        out,
		rosterPath: rosterPath,
	}
}

// run plays the full game: human purchase, other players, draw and results
func (c *console) run(ctx context.Context) error {
	cfg := c.game.Config()
	c.welcome(cfg)

	if err := c.humanPurchase(ctx, cfg); err != nil {
		return err
	}

	var others int
	var err error
	if c.rosterPath != "" {
		others, err = c.importRoster(ctx)
	} else {
		var players []*models.Player
		players, err = c.game.SimulateCPUPlayers(ctx, 2)
		others = len(players)
	}
	if err != nil {
		return err
	}

	summary := c.game.Summary(ctx)
	fmt.Fprintf(c.out, "%d other CPU players also have purchased tickets.\n\n", others)
	fmt.Fprintf(c.out, "Total Revenue: %s\n", utils.FormatCurrency(summary.TotalRevenue))
	fmt.Fprint(c.out, "Drawing winners...\n\n")

	result, err := c.game.Draw(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error during lottery draw: %v\n", err)
		return err
	}
	return c.formatter.Format(c.out, result)
}

func (c *console) welcome(cfg models.LotteryConfig) {
	fmt.Fprint(c.out, "Welcome to the Bridgetunes Lottery, Player 1!\n\n")
	fmt.Fprintf(c.out, "* Your digital balance: %s\n", utils.FormatCurrency(cfg.DefaultPlayerBalance))
	fmt.Fprintf(c.out, "* Ticket price: %s each\n\n", utils.FormatCurrency(cfg.DefaultTicketCost))
}

func (c *console) humanPurchase(ctx context.Context, cfg models.LotteryConfig) error {
	player, err := c.game.RegisterPlayer(ctx, humanPlayer, cfg.DefaultPlayerBalance)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "How many tickets do you want to buy, %s? ", humanPlayer)
	var line string
	if c.in.Scan() {
		line = strings.TrimSpace(c.in.Text())
	}
	count, err := strconv.Atoi(line)
	if err != nil || count < 1 || count > affordable(player.Balance(), cfg) {
		fmt.Fprintln(c.out, "Invalid input. Exiting...")
		return errAborted
	}

	player, err = c.game.BuyTickets(ctx, humanPlayer, count)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) {
			fmt.Fprintln(c.out, "Insufficient funds!")
			return errAborted
		}
		return err
	}
	fmt.Fprintf(c.out, "%s purchased %d tickets. Remaining balance: %s\n\n",
		humanPlayer, count, utils.FormatCurrency(player.Balance()))
	return nil
}

// importRoster registers every roster player and buys their tickets
func (c *console) importRoster(ctx context.Context) (int, error) {
	f, err := os.Open(c.rosterPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	entries, problems, err := utils.ImportRoster(f)
	if err != nil {
		return 0, err
	}
	for _, p := range problems {
		slog.Warn("Skipped roster row", "problem", p)
	}

	imported := 0
	for _, entry := range entries {
		if _, err := c.game.RegisterPlayer(ctx, entry.Name, entry.Balance); err != nil {
			slog.Warn("Skipped roster player", "player", entry.Name, "error", err)
			continue
		}
		imported++
		if entry.Tickets == 0 {
			continue
		}
		if _, err := c.game.BuyTickets(ctx, entry.Name, entry.Tickets); err != nil {
			slog.Warn("Roster purchase failed", "player", entry.Name, "tickets", entry.Tickets, "error", err)
		}
	}
	return imported, nil
}

func affordable(balance decimal.Decimal, cfg models.LotteryConfig) int {
	if cfg.DefaultTicketCost.IsZero() {
		return cfg.MaxTicketsPerPlayer
	}
	return int(balance.Div(cfg.DefaultTicketCost).IntPart())
}
