package scorer

import "github.com/KirkDiggler/scorepad/internal/models"

// Skyjo ends at the first round boundary where someone reaches the target.
// Lowest total wins.
type Skyjo struct{}

var _ Variant = Skyjo{}

// Name returns the display name
func (Skyjo) Name() string {
	return "Skyjo"
}

// IsGameOver has no anti-tie clause
func (Skyjo) IsGameOver(m *Model) bool {
	return NonNull(m.Ledgers()) &&
		m.AtRoundBoundary() &&
		GteThresh(m.contenderTotals(), m.GameOverScore())
}

// LowWins is true
func (Skyjo) LowWins() bool {
	return true
}

// Winner returns the lowest total, first in join order on ties
func (v Skyjo) Winner(m *Model) (models.Standing, bool) {
	if !v.IsGameOver(m) {
		return models.Standing{}, false
	}
	return pickStanding(m, func(candidate, best int) bool { return candidate < best })
}

// RecordScore appends points
func (Skyjo) RecordScore(m *Model, playerIndex, points int) error {
	return m.appendScore(playerIndex, points)
}
