package scorepad

// Rows returns the ledger table in row order, one row per ledger position.
// Cells are nil where a player has no entry. Positions where nobody has an
// entry, such as the initial empty round, are skipped.
func (b *Scoreboard) Rows() [][]*int {
	rows := make([][]*int, 0, b.MaxLedgerLength)
	for r := 0; r < b.MaxLedgerLength; r++ {
		row := make([]*int, len(b.Ledgers))
		filled := false
		for p, ledger := range b.Ledgers {
			if r < len(ledger) && ledger[r] != nil {
				row[p] = ledger[r]
				filled = true
			}
		}
		if filled {
			rows = append(rows, row)
		}
	}
	return rows
}
