package scorer

import "github.com/KirkDiggler/scorepad/internal/models"

// Variant is the rule set a Model delegates its game-specific behaviour to.
// Implementations hold no state; everything lives on the Model's sheet.
type Variant interface {
	// Name is the display name of the game
	Name() string

	// IsGameOver evaluates the end condition
	IsGameOver(m *Model) bool

	// LowWins reports whether the lowest total wins
	LowWins() bool

	// Winner returns the winning standing once the game is over
	Winner(m *Model) (models.Standing, bool)

	// RecordScore applies one score addition for the player at playerIndex
	RecordScore(m *Model, playerIndex, points int) error
}

// pickStanding returns the first contender in join order whose total wins
// according to better.
func pickStanding(m *Model, better func(candidate, best int) bool) (models.Standing, bool) {
	players := m.contenders()
	if len(players) == 0 {
		return models.Standing{}, false
	}
	best := models.Standing{Name: players[0].Name, Score: players[0].CurrentScore()}
	for _, p := range players[1:] {
		if score := p.CurrentScore(); better(score, best.Score) {
			best = models.Standing{Name: p.Name, Score: score}
		}
	}
	return best, true
}
