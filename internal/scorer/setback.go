package scorer

import "github.com/KirkDiggler/scorepad/internal/models"

// Setback ends at a round boundary once someone reaches the target, unless the
// leaders are tied. Highest total wins.
type Setback struct{}

var _ Variant = Setback{}

// Name returns the display name
func (Setback) Name() string {
	return "Setback"
}

// IsGameOver requires a non-tied leader at or above the target
func (Setback) IsGameOver(m *Model) bool {
	totals := m.contenderTotals()
	return NonNull(m.Ledgers()) &&
		m.AtRoundBoundary() &&
		GteThresh(totals, m.GameOverScore()) &&
		!TieMax(totals)
}

// LowWins is false, highest total wins
func (Setback) LowWins() bool {
	return false
}

// Winner returns the highest total, first in join order on ties
func (v Setback) Winner(m *Model) (models.Standing, bool) {
	if !v.IsGameOver(m) {
		return models.Standing{}, false
	}
	return pickStanding(m, func(candidate, best int) bool { return candidate > best })
}

// RecordScore appends points, which may be negative when a bid is set
func (Setback) RecordScore(m *Model, playerIndex, points int) error {
	return m.appendScore(playerIndex, points)
}
