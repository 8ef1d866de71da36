package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
)

// Checks a roster CSV against the lottery configuration before it is used
// with `lottery --roster`.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	entries, problems, err := utils.ImportRoster(file)
	if err != nil {
		log.Fatalf("Failed to parse roster: %v", err)
	}
	problems = append(problems, checkRoster(entries, cfg.Lottery)...)

	for _, p := range problems {
		log.Printf("Warning: %s", p)
	}
	log.Printf("Roster checked: %d players, %d problems", len(entries), len(problems))
	if len(problems) > 0 {
		os.Exit(1)
	}
}

// checkRoster reports players whose purchase the lottery would refuse
func checkRoster(entries []utils.RosterEntry, cfg models.LotteryConfig) []string {
	var problems []string
	// Player1 is always the console player
	if len(entries)+1 > cfg.MaxPlayers {
		problems = append(problems, fmt.Sprintf("roster has %d players, at most %d fit alongside Player1", len(entries), cfg.MaxPlayers-1))
	}
	for _, e := range entries {
		if e.Name == "Player1" {
			problems = append(problems, "Player1 is reserved for the console player")
		}
		if e.Tickets > cfg.MaxTicketsPerPlayer {
			problems = append(problems, fmt.Sprintf("%s wants %d tickets, the limit is %d", e.Name, e.Tickets, cfg.MaxTicketsPerPlayer))
		}
		balance := e.Balance
		if balance.IsZero() {
			balance = cfg.DefaultPlayerBalance
		}
		cost := cfg.DefaultTicketCost.Mul(decimal.NewFromInt(int64(e.Tickets)))
		if cost.GreaterThan(balance) {
			problems = append(problems, fmt.Sprintf("%s cannot afford %d tickets with %s", e.Name, e.Tickets, utils.FormatCurrency(balance)))
		}
	}
	return problems
}
