package models

// Player is a named participant on a score sheet
type Player struct {
	// Name identifies the player within a sheet
	Name string

	// Ledger holds one slot per round; nil means the round has not been played
	Ledger []*int

	// JoinedRound is the ledger length minus one at the time the player joined.
	// Players present before any score was recorded have JoinedRound 0.
	JoinedRound int
}

// CurrentScore returns the sum of all recorded rounds
func (p *Player) CurrentScore() int {
	total := 0
	for _, score := range p.Ledger {
		if score != nil {
			total += *score
		}
	}
	return total
}

// HasScored reports whether the player has at least one recorded round
func (p *Player) HasScored() bool {
	for _, score := range p.Ledger {
		if score != nil {
			return true
		}
	}
	return false
}

// Move records a single score addition so it can be undone
type Move struct {
	// PlayerIndex is the position of the player on the sheet
	PlayerIndex int

	// Points is the value that was appended
	Points int
}

// Standing is a player's name paired with a total
type Standing struct {
	Name  string
	Score int
}

// Score returns a pointer to v, for building ledgers
func Score(v int) *int {
	return &v
}
