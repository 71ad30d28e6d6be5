package result

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) result(id, sheetID, winner string, at time.Time) *models.GameResult {
	return &models.GameResult{
		ID:        id,
		SheetID:   sheetID,
		ChannelID: "test-channel-id",
		GameType:  "skyjo",
		Winner:    models.Standing{Name: winner, Score: 40},
		FinalStandings: []models.Standing{
			{Name: winner, Score: 40},
			{Name: "Loser", Score: 104},
		},
		Rounds:    6,
		Timestamp: at,
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndGetResults() {
	second := s.result("result-2", "sheet-2", "Bob", s.testNow.Add(time.Hour))
	first := s.result("result-1", "sheet-1", "Ann", s.testNow)

	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: second}))
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: first}))

	output, err := s.repo.GetResultsForChannel(s.ctx, &GetResultsForChannelInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 2)

	s.Equal("result-1", output.Results[0].ID)
	s.Equal("sheet-1", output.Results[0].SheetID)
	s.Equal(models.Standing{Name: "Ann", Score: 40}, output.Results[0].Winner)
	s.Equal(first.FinalStandings, output.Results[0].FinalStandings)
	s.Equal(6, output.Results[0].Rounds)
	s.Equal("result-2", output.Results[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetResultsForEmptyChannel() {
	output, err := s.repo.GetResultsForChannel(s.ctx, &GetResultsForChannelInput{ChannelID: "quiet-channel"})
	s.Require().NoError(err)
	s.Empty(output.Results)
}

func (s *RedisRepositoryTestSuite) TestAddResultValidation() {
	s.Error(s.repo.AddResult(s.ctx, nil))
	s.Error(s.repo.AddResult(s.ctx, &AddResultInput{Result: &models.GameResult{SheetID: "sheet"}}))
	s.Error(s.repo.AddResult(s.ctx, &AddResultInput{Result: &models.GameResult{ID: "id"}}))
}

func (s *RedisRepositoryTestSuite) TestWinCounts() {
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: s.result("r1", "s1", "Ann", s.testNow)}))
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: s.result("r2", "s2", "Bob", s.testNow)}))
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: s.result("r3", "s3", "Ann", s.testNow)}))

	output, err := s.repo.GetWinCounts(s.ctx, &GetWinCountsInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Equal(map[string]int{"Ann": 2, "Bob": 1}, output.Wins)
}

func (s *RedisRepositoryTestSuite) TestDeleteResultForSheet() {
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: s.result("r1", "s1", "Ann", s.testNow)}))
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: s.result("r2", "s2", "Bob", s.testNow.Add(time.Minute))}))

	err := s.repo.DeleteResultForSheet(s.ctx, &DeleteResultForSheetInput{SheetID: "s2"})
	s.Require().NoError(err)

	results, err := s.repo.GetResultsForChannel(s.ctx, &GetResultsForChannelInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Require().Len(results.Results, 1)
	s.Equal("r1", results.Results[0].ID)

	wins, err := s.repo.GetWinCounts(s.ctx, &GetWinCountsInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Equal(map[string]int{"Ann": 1}, wins.Wins)

	err = s.repo.DeleteResultForSheet(s.ctx, &DeleteResultForSheetInput{SheetID: "s2"})
	s.ErrorIs(err, ErrResultNotFound)
}
