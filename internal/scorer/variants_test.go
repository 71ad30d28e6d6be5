package scorer

import (
	"testing"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/stretchr/testify/suite"
)

type VariantsTestSuite struct {
	suite.Suite
}

func TestVariantsTestSuite(t *testing.T) {
	suite.Run(t, new(VariantsTestSuite))
}

// build creates a model whose ledgers are exactly the given rounds
func (s *VariantsTestSuite) build(gameType string, threshold int, ledgers map[string][]*int, order ...string) *Model {
	m, err := New(gameType, threshold)
	s.Require().NoError(err)
	for _, name := range order {
		s.Require().NoError(m.AddPlayer(name))
	}
	s.Require().NoError(m.ReplaceLedgers(ledgers))
	return m
}

func (s *VariantsTestSuite) TestSetbackTieAtThresholdContinues() {
	m := s.build(SetbackKey, 10, map[string][]*int{
		"A": {models.Score(10)},
		"B": {models.Score(10)},
	}, "A", "B")

	s.True(GteThresh(m.CurrentScores(), 10))
	s.True(TieMax(m.CurrentScores()))
	s.False(m.IsGameOver())

	_, ok := m.WinnerNameAndScore()
	s.False(ok)
}

func (s *VariantsTestSuite) TestSetbackClearLeaderWins() {
	m := s.build(SetbackKey, 10, map[string][]*int{
		"A": {models.Score(12)},
		"B": {models.Score(5)},
	}, "A", "B")

	s.True(m.IsGameOver())
	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "A", Score: 12}, winner)
}

func (s *VariantsTestSuite) TestSetbackWaitsForRoundBoundary() {
	m, err := NewSetback(10)
	s.Require().NoError(err)
	s.Require().NoError(m.AddPlayer("A"))
	s.Require().NoError(m.AddPlayer("B"))

	s.Require().NoError(m.AddScore(0, 11))
	s.False(m.IsGameOver(), "B has not played the round yet")

	s.Require().NoError(m.AddScore(1, -2))
	s.True(m.IsGameOver())

	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "A", Score: 11}, winner)

	m.RollbackMove()
	s.False(m.IsGameOver())
}

func (s *VariantsTestSuite) TestSetbackTieBelowLeaderDoesNotMatter() {
	m := s.build(SetbackKey, 10, map[string][]*int{
		"A": {models.Score(4)},
		"B": {models.Score(15)},
		"C": {models.Score(4)},
	}, "A", "B", "C")

	s.True(m.IsGameOver())
	winner, _ := m.WinnerNameAndScore()
	s.Equal("B", winner.Name)
}

func (s *VariantsTestSuite) TestSetbackUnstartedGameIsNotOver() {
	m, err := NewSetback(1)
	s.Require().NoError(err)
	s.Require().NoError(m.AddPlayer("A"))

	s.False(m.IsGameOver())
}

func (s *VariantsTestSuite) TestSkyjoTieAtThresholdEnds() {
	m := s.build(SkyjoKey, 10, map[string][]*int{
		"A": {models.Score(15)},
		"B": {models.Score(15)},
	}, "A", "B")

	s.True(m.IsGameOver())
	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "A", Score: 15}, winner, "ties go to the first player in join order")
}

func (s *VariantsTestSuite) TestSkyjoLowestTotalWins() {
	m := s.build(SkyjoKey, 100, map[string][]*int{
		"A": {models.Score(40), models.Score(62)},
		"B": {models.Score(12), models.Score(20)},
		"C": {models.Score(30), models.Score(-5)},
	}, "A", "B", "C")

	s.True(m.IsGameOver())
	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "C", Score: 25}, winner)
}

func (s *VariantsTestSuite) TestSkyjoBelowThresholdContinues() {
	m := s.build(SkyjoKey, 100, map[string][]*int{
		"A": {models.Score(40)},
		"B": {models.Score(99)},
	}, "A", "B")

	s.False(m.IsGameOver())
}

func (s *VariantsTestSuite) TestScoresRecordedThroughVariant() {
	for _, key := range Names() {
		m, err := New(key, 50)
		s.Require().NoError(err)
		s.Require().NoError(m.AddPlayer("A"))

		s.Require().NoError(m.AddScore(0, -7))
		s.Equal([]int{-7}, m.CurrentScores(), key)
		s.ErrorIs(m.AddScore(3, 1), ErrInvalidIndex, key)
	}
}

func (s *VariantsTestSuite) TestSkyjoLateJoinerMustPlayBeforeGameEnds() {
	m, err := NewSkyjo(10)
	s.Require().NoError(err)
	s.Require().NoError(m.AddPlayer("A"))
	s.Require().NoError(m.AddPlayer("B"))
	s.Require().NoError(m.AddScore(0, 5))
	s.Require().NoError(m.AddScore(1, 4))

	s.Require().NoError(m.AddPlayer("C"))
	s.False(m.IsGameOver())

	s.Require().NoError(m.AddScore(0, 8))
	s.Require().NoError(m.AddScore(1, 7))
	s.Equal([]int{13, 11, 0}, m.CurrentScores())
	s.False(m.IsGameOver(), "C has not played the round")

	_, ok := m.WinnerNameAndScore()
	s.False(ok)

	s.Require().NoError(m.AddScore(2, 6))
	s.True(m.IsGameOver())

	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "C", Score: 6}, winner)
}

func (s *VariantsTestSuite) TestSkyjoLateJoinerDoesNotWinWithoutPlaying() {
	m, err := NewSkyjo(10)
	s.Require().NoError(err)
	s.Require().NoError(m.AddPlayer("A"))
	s.Require().NoError(m.AddPlayer("B"))
	s.Require().NoError(m.AddScore(0, 12))
	s.Require().NoError(m.AddScore(1, 9))
	s.Require().True(m.IsGameOver())

	s.Require().NoError(m.AddPlayer("C"))
	s.True(m.IsGameOver(), "joining at a boundary does not reopen the game")

	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "B", Score: 9}, winner)
}

func (s *VariantsTestSuite) TestSetbackUndoingEveryScoreBeforeJoinKeepsJoinerInPlay() {
	m, err := NewSetback(3)
	s.Require().NoError(err)
	s.Require().NoError(m.AddPlayer("A"))
	s.Require().NoError(m.AddScore(0, 1))

	s.Require().NoError(m.AddPlayer("B"))
	m.RollbackMove()

	s.Require().NoError(m.AddScore(0, 5))
	s.Equal([][]*int{{nil, models.Score(5)}, {nil}}, m.Ledgers())
	s.False(m.IsGameOver(), "B has not played the round")

	s.Require().NoError(m.AddScore(1, 2))
	s.True(m.IsGameOver())

	winner, ok := m.WinnerNameAndScore()
	s.Require().True(ok)
	s.Equal(models.Standing{Name: "A", Score: 5}, winner)
}
