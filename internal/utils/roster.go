package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RosterEntry is one player row from a roster file. A zero Balance means the
// configured default; zero Tickets registers the player without buying.
type RosterEntry struct {
	Name    string
	Balance decimal.Decimal
	Tickets int
}

// ImportRoster reads players from CSV. Rows that cannot be parsed are skipped
// and described in the returned problem list.
func ImportRoster(r io.Reader) ([]RosterEntry, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("roster is empty")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	nameIdx := findColumnIndex(header, []string{"Name", "Player", "Player Name"})
	balanceIdx := findColumnIndex(header, []string{"Balance", "Funds", "Wallet"})
	ticketsIdx := findColumnIndex(header, []string{"Tickets", "Ticket Count", "Count"})
	if nameIdx == -1 {
		return nil, nil, errors.New("name column not found in roster")
	}

	var entries []RosterEntry
	var problems []string
	seen := make(map[string]bool)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			problems = append(problems, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}

		name := cleanName(column(record, nameIdx))
		if name == "" {
			problems = append(problems, fmt.Sprintf("Row %d: no player name", row))
			continue
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf("Row %d: duplicate player %s", row, name))
			continue
		}

		entry := RosterEntry{Name: name}
		if raw := column(record, balanceIdx); raw != "" {
			balance, err := decimal.NewFromString(strings.TrimPrefix(raw, "$"))
			if err != nil || balance.IsNegative() {
				problems = append(problems, fmt.Sprintf("Row %d: invalid balance: %s", row, raw))
				continue
			}
			entry.Balance = balance
		}
		if raw := column(record, ticketsIdx); raw != "" {
			tickets, err := strconv.Atoi(raw)
			if err != nil || tickets < 0 {
				problems = append(problems, fmt.Sprintf("Row %d: invalid ticket count: %s", row, raw))
				continue
			}
			entry.Tickets = tickets
		}

		seen[name] = true
		entries = append(entries, entry)
	}
	return entries, problems, nil
}

// findColumnIndex finds the index of a column by possible names
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}

func column(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// cleanName collapses internal whitespace in a player name
func cleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
