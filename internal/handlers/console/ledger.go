package console

import (
	"fmt"
	"strconv"
	"strings"
)

const missedRound = "-"

// formatLedger writes a ledger as comma separated rounds
func formatLedger(ledger []*int) string {
	cells := make([]string, len(ledger))
	for i, score := range ledger {
		if score == nil {
			cells[i] = missedRound
			continue
		}
		cells[i] = strconv.Itoa(*score)
	}
	return strings.Join(cells, ", ")
}

// parseLedger reads rounds written by formatLedger. Blank cells and "-" are
// missed rounds.
func parseLedger(text string) ([]*int, error) {
	cells := strings.Split(text, ",")
	ledger := make([]*int, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" || cell == missedRound {
			continue
		}
		value, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("round %d: %q is not a number", i+1, cell)
		}
		ledger[i] = &value
	}
	return ledger, nil
}
