package scorer

import (
	"sort"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Model owns a score sheet and applies the rules of its variant to it.
// It is not safe for concurrent use.
type Model struct {
	variant Variant
	sheet   *models.ScoreSheet
}

func newModel(gameType string, variant Variant, gameOverScore int) (*Model, error) {
	if gameOverScore <= 0 {
		return nil, ErrInvalidGameOverScore
	}
	return &Model{
		variant: variant,
		sheet: &models.ScoreSheet{
			GameType:      gameType,
			GameOverScore: gameOverScore,
			Status:        models.SheetStatusWaiting,
			Players:       []*models.Player{},
			MoveHistory:   []models.Move{},
		},
	}, nil
}

// Name returns the display name of the game
func (m *Model) Name() string {
	return m.variant.Name()
}

// Sheet returns the underlying sheet for persistence
func (m *Model) Sheet() *models.ScoreSheet {
	return m.sheet
}

// LowWins reports whether the lowest total wins
func (m *Model) LowWins() bool {
	return m.variant.LowWins()
}

// GameType returns the registry key of the rule set
func (m *Model) GameType() string {
	return m.sheet.GameType
}

// GameOverScore returns the target threshold
func (m *Model) GameOverScore() int {
	return m.sheet.GameOverScore
}

// HasGameStarted reports whether the driver has started play
func (m *Model) HasGameStarted() bool {
	return m.sheet.HasGameStarted
}

// Start marks the game as started
func (m *Model) Start() {
	m.sheet.HasGameStarted = true
}

// Players returns the players in join order
func (m *Model) Players() []*models.Player {
	return m.sheet.Players
}

// MoveHistory returns a copy of the undo log
func (m *Model) MoveHistory() []models.Move {
	return append([]models.Move(nil), m.sheet.MoveHistory...)
}

// CurrentScores returns each player's total in join order
func (m *Model) CurrentScores() []int {
	totals := make([]int, len(m.sheet.Players))
	for i, p := range m.sheet.Players {
		totals[i] = p.CurrentScore()
	}
	return totals
}

// Ledgers returns a copy of each player's ledger in join order
func (m *Model) Ledgers() [][]*int {
	ledgers := make([][]*int, len(m.sheet.Players))
	for i, p := range m.sheet.Players {
		ledgers[i] = append([]*int(nil), p.Ledger...)
	}
	return ledgers
}

// MaxLedgerLength returns the longest ledger, or 0 with no players
func (m *Model) MaxLedgerLength() int {
	longest := 0
	for _, p := range m.sheet.Players {
		if len(p.Ledger) > longest {
			longest = len(p.Ledger)
		}
	}
	return longest
}

// PlayerCurrentScores maps player names to totals
func (m *Model) PlayerCurrentScores() map[string]int {
	scores := make(map[string]int, len(m.sheet.Players))
	for _, p := range m.sheet.Players {
		scores[p.Name] = p.CurrentScore()
	}
	return scores
}

// PlayerLedgers maps player names to a copy of their ledgers
func (m *Model) PlayerLedgers() map[string][]*int {
	ledgers := make(map[string][]*int, len(m.sheet.Players))
	for _, p := range m.sheet.Players {
		ledgers[p.Name] = append([]*int(nil), p.Ledger...)
	}
	return ledgers
}

// PlayerNames returns names in join order
func (m *Model) PlayerNames() []string {
	names := make([]string, len(m.sheet.Players))
	for i, p := range m.sheet.Players {
		names[i] = p.Name
	}
	return names
}

// PlayerIndex returns the position of the named player
func (m *Model) PlayerIndex(name string) (int, error) {
	for i, p := range m.sheet.Players {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, ErrPlayerNotFound
}

// AddPlayer appends a new player whose ledger is padded with empty rounds so
// that round indices line up with everyone else.
func (m *Model) AddPlayer(name string) error {
	if _, err := m.PlayerIndex(name); err == nil {
		return ErrDuplicateName
	}
	rounds := m.MaxLedgerLength()
	if rounds < 1 {
		rounds = 1
	}
	m.sheet.Players = append(m.sheet.Players, &models.Player{
		Name:        name,
		Ledger:      make([]*int, rounds),
		JoinedRound: rounds - 1,
	})
	return nil
}

// RemovePlayer drops a player. Removal is refused once any move has been
// recorded, since the undo log refers to players by position.
func (m *Model) RemovePlayer(name string) error {
	if len(m.sheet.Players) == 1 {
		return ErrLastPlayer
	}
	idx, err := m.PlayerIndex(name)
	if err != nil {
		return err
	}
	if len(m.sheet.MoveHistory) > 0 {
		return ErrScoringStarted
	}
	m.sheet.Players = append(m.sheet.Players[:idx], m.sheet.Players[idx+1:]...)
	return nil
}

// AddScore records points for the player at playerIndex
func (m *Model) AddScore(playerIndex, points int) error {
	return m.variant.RecordScore(m, playerIndex, points)
}

func (m *Model) appendScore(playerIndex, points int) error {
	if playerIndex < 0 || playerIndex >= len(m.sheet.Players) {
		return ErrInvalidIndex
	}
	p := m.sheet.Players[playerIndex]
	p.Ledger = append(p.Ledger, models.Score(points))
	m.sheet.MoveHistory = append(m.sheet.MoveHistory, models.Move{
		PlayerIndex: playerIndex,
		Points:      points,
	})
	return nil
}

// RollbackMove undoes the most recent score addition. It returns false when
// there is nothing to undo.
func (m *Model) RollbackMove() (models.Move, bool) {
	n := len(m.sheet.MoveHistory)
	if n == 0 {
		return models.Move{}, false
	}
	last := m.sheet.MoveHistory[n-1]
	m.sheet.MoveHistory = m.sheet.MoveHistory[:n-1]
	p := m.sheet.Players[last.PlayerIndex]
	p.Ledger = p.Ledger[:len(p.Ledger)-1]
	m.trimLateJoiners()
	return last, true
}

// trimLateJoiners shrinks the padding of players who joined mid-game and have
// not scored, so they never look late for rounds that were undone.
func (m *Model) trimLateJoiners() {
	rounds := 1
	for _, p := range m.sheet.Players {
		if p.HasScored() && len(p.Ledger) > rounds {
			rounds = len(p.Ledger)
		}
	}
	for _, p := range m.sheet.Players {
		if p.JoinedRound > 0 && !p.HasScored() && len(p.Ledger) > rounds {
			p.Ledger = p.Ledger[:rounds]
			p.JoinedRound = rounds - 1
		}
	}
}

// ReplaceLedgers overwrites every ledger from an externally edited table.
// Named players that are missing are added, players not named are removed,
// and the undo log is cleared because it no longer describes the ledgers.
func (m *Model) ReplaceLedgers(ledgers map[string][]*int) error {
	if len(ledgers) == 0 {
		return ErrLastPlayer
	}

	kept := make([]*models.Player, 0, len(ledgers))
	for _, p := range m.sheet.Players {
		if _, ok := ledgers[p.Name]; ok {
			kept = append(kept, p)
		}
	}

	var added []string
	for name := range ledgers {
		if _, err := m.PlayerIndex(name); err != nil {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	for _, name := range added {
		kept = append(kept, &models.Player{Name: name})
	}

	for _, p := range kept {
		ledger := append([]*int(nil), ledgers[p.Name]...)
		if len(ledger) == 0 {
			ledger = []*int{nil}
		}
		p.Ledger = ledger
		p.JoinedRound = 0
	}

	m.sheet.Players = kept
	m.sheet.MoveHistory = []models.Move{}
	return nil
}

// contenders returns the players the end condition is judged on. A player who
// joined after scoring began is left out until they score or until anyone
// plays past the round they joined in; from then on they hold up the boundary
// like everyone else.
func (m *Model) contenders() []*models.Player {
	longest := m.MaxLedgerLength()
	players := make([]*models.Player, 0, len(m.sheet.Players))
	for _, p := range m.sheet.Players {
		if p.JoinedRound > 0 && !p.HasScored() && longest <= p.JoinedRound+1 {
			continue
		}
		players = append(players, p)
	}
	return players
}

// contenderTotals returns the totals of the contenders in join order
func (m *Model) contenderTotals() []int {
	players := m.contenders()
	totals := make([]int, len(players))
	for i, p := range players {
		totals[i] = p.CurrentScore()
	}
	return totals
}

// AtRoundBoundary reports whether every contender has played the same number
// of rounds.
func (m *Model) AtRoundBoundary() bool {
	players := m.contenders()
	ledgers := make([][]*int, len(players))
	for i, p := range players {
		ledgers[i] = p.Ledger
	}
	return EvenScoreCount(ledgers)
}

// IsGameOver evaluates the variant's end condition
func (m *Model) IsGameOver() bool {
	return m.variant.IsGameOver(m)
}

// WinnerNameAndScore returns the winner once the game is over
func (m *Model) WinnerNameAndScore() (models.Standing, bool) {
	return m.variant.Winner(m)
}

// Standings returns every player's total in join order
func (m *Model) Standings() []models.Standing {
	standings := make([]models.Standing, len(m.sheet.Players))
	for i, p := range m.sheet.Players {
		standings[i] = models.Standing{Name: p.Name, Score: p.CurrentScore()}
	}
	return standings
}

// Progress returns each player's total as a fraction of the target, clamped to [0, 1]
func (m *Model) Progress() []float64 {
	progress := make([]float64, len(m.sheet.Players))
	for i, p := range m.sheet.Players {
		fraction := float64(p.CurrentScore()) / float64(m.sheet.GameOverScore)
		switch {
		case fraction < 0:
			fraction = 0
		case fraction > 1:
			fraction = 1
		}
		progress[i] = fraction
	}
	return progress
}
