package scorepad

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/scorepad/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/scorepad/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scorepad/internal/models"
	resultRepo "github.com/KirkDiggler/scorepad/internal/repositories/result"
	resultMocks "github.com/KirkDiggler/scorepad/internal/repositories/result/mocks"
	sheetRepo "github.com/KirkDiggler/scorepad/internal/repositories/scoresheet"
	sheetMocks "github.com/KirkDiggler/scorepad/internal/repositories/scoresheet/mocks"
	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScorepadServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockSheetRepo  *sheetMocks.MockRepository
	mockResultRepo *resultMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	service        Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testGameID    string
	testChannelID string
	testCreatorID string
	testResultID  string
}

func (s *ScorepadServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSheetRepo = sheetMocks.NewMockRepository(s.mockCtrl)
	s.mockResultRepo = resultMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testResultID = "test-result-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		MaxPlayers:    4,
		SheetRepo:     s.mockSheetRepo,
		ResultRepo:    s.mockResultRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ScorepadServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScorepadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScorepadServiceTestSuite))
}

// newSheet builds a fresh sheet for each test since the service mutates it
func (s *ScorepadServiceTestSuite) newSheet(gameType string, target int, status models.SheetStatus, players ...*models.Player) *models.ScoreSheet {
	if players == nil {
		players = []*models.Player{}
	}
	return &models.ScoreSheet{
		ID:             s.testGameID,
		ChannelID:      s.testChannelID,
		CreatorID:      s.testCreatorID,
		GameType:       gameType,
		GameOverScore:  target,
		HasGameStarted: status != models.SheetStatusWaiting,
		Status:         status,
		Players:        players,
		MoveHistory:    []models.Move{},
		CreatedAt:      s.testTime,
		UpdatedAt:      s.testTime,
	}
}

func (s *ScorepadServiceTestSuite) expectGetSheet(sheet *models.ScoreSheet) {
	s.mockSheetRepo.EXPECT().
		GetSheet(gomock.Any(), &sheetRepo.GetSheetInput{SheetID: s.testGameID}).
		Return(sheet, nil)
}

// expectSave captures the saved sheet
func (s *ScorepadServiceTestSuite) expectSave() *models.ScoreSheet {
	saved := &models.ScoreSheet{}
	s.mockSheetRepo.EXPECT().
		SaveSheet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sheetRepo.SaveSheetInput) error {
			*saved = *input.Sheet
			return nil
		})
	return saved
}

func (s *ScorepadServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSheetRepo)

	_, err = New(&Config{SheetRepo: s.mockSheetRepo})
	s.ErrorIs(err, ErrNilResultRepo)

	_, err = New(&Config{SheetRepo: s.mockSheetRepo, ResultRepo: s.mockResultRepo})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{SheetRepo: s.mockSheetRepo, ResultRepo: s.mockResultRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *ScorepadServiceTestSuite) TestCreateGame() {
	s.mockSheetRepo.EXPECT().
		GetSheetByChannel(gomock.Any(), &sheetRepo.GetSheetByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, sheetRepo.ErrSheetNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	saved := s.expectSave()

	output, err := s.service.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:     s.testChannelID,
		CreatorID:     s.testCreatorID,
		GameType:      "Setback",
		GameOverScore: 21,
	})
	s.Require().NoError(err)

	s.Equal(s.testGameID, output.GameID)
	s.Equal("Setback", output.Scoreboard.GameName)
	s.Equal(21, output.Scoreboard.GameOverScore)
	s.Empty(output.Scoreboard.PlayerNames)
	s.False(output.Scoreboard.GameOver)

	s.Equal(s.testGameID, saved.ID)
	s.Equal(s.testChannelID, saved.ChannelID)
	s.Equal(s.testCreatorID, saved.CreatorID)
	s.Equal(scorer.SetbackKey, saved.GameType)
	s.Equal(models.SheetStatusWaiting, saved.Status)
	s.Equal(s.testTime, saved.CreatedAt)
}

func (s *ScorepadServiceTestSuite) TestCreateGameWithOpenGameInChannel() {
	s.mockSheetRepo.EXPECT().
		GetSheetByChannel(gomock.Any(), gomock.Any()).
		Return(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusActive), nil)

	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:     s.testChannelID,
		GameType:      scorer.SkyjoKey,
		GameOverScore: 100,
	})
	s.ErrorIs(err, ErrGameAlreadyExists)
}

func (s *ScorepadServiceTestSuite) TestCreateGameAfterCompletedGame() {
	s.mockSheetRepo.EXPECT().
		GetSheetByChannel(gomock.Any(), gomock.Any()).
		Return(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusCompleted), nil)
	s.mockUUID.EXPECT().NewUUID().Return("next-game-id")
	s.expectSave()

	output, err := s.service.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:     s.testChannelID,
		GameType:      scorer.SkyjoKey,
		GameOverScore: 100,
	})
	s.Require().NoError(err)
	s.Equal("next-game-id", output.GameID)
}

func (s *ScorepadServiceTestSuite) TestCreateGameRejectsUnknownType() {
	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{
		GameType:      "canasta",
		GameOverScore: 5000,
	})
	s.ErrorIs(err, scorer.ErrUnknownGame)

	_, err = s.service.CreateGame(s.ctx, &CreateGameInput{
		GameType:      scorer.SetbackKey,
		GameOverScore: -1,
	})
	s.ErrorIs(err, scorer.ErrInvalidGameOverScore)
}

func (s *ScorepadServiceTestSuite) TestCreateGameRepositoryError() {
	s.mockSheetRepo.EXPECT().
		GetSheetByChannel(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:     s.testChannelID,
		GameType:      scorer.SetbackKey,
		GameOverScore: 21,
	})
	s.EqualError(err, "connection refused")
}

func (s *ScorepadServiceTestSuite) TestGetGameNotFound() {
	s.mockSheetRepo.EXPECT().
		GetSheet(gomock.Any(), gomock.Any()).
		Return(nil, sheetRepo.ErrSheetNotFound)

	_, err := s.service.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *ScorepadServiceTestSuite) TestGetGameByChannel() {
	s.mockSheetRepo.EXPECT().
		GetSheetByChannel(gomock.Any(), &sheetRepo.GetSheetByChannelInput{ChannelID: s.testChannelID}).
		Return(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting), nil)

	output, err := s.service.GetGameByChannel(s.ctx, &GetGameByChannelInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Sheet.ID)
	s.Equal("Skyjo", output.Scoreboard.GameName)
}

func (s *ScorepadServiceTestSuite) TestListActiveGames() {
	setback := s.newSheet(scorer.SetbackKey, 21, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(5)}},
	)
	setback.MessageID = "test-message-id"

	unknown := s.newSheet("euchre", 10, models.SheetStatusWaiting)
	unknown.ID = "unknown-game-id"

	skyjo := s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting)
	skyjo.ID = "skyjo-game-id"

	s.mockSheetRepo.EXPECT().
		GetActiveSheets(gomock.Any(), &sheetRepo.GetActiveSheetsInput{}).
		Return(&sheetRepo.GetActiveSheetsOutput{
			Sheets: []*models.ScoreSheet{setback, unknown, skyjo},
		}, nil)

	output, err := s.service.ListActiveGames(s.ctx, &ListActiveGamesInput{})
	s.Require().NoError(err)

	s.Require().Len(output.Games, 2)
	s.Equal(s.testGameID, output.Games[0].Sheet.ID)
	s.Equal("test-message-id", output.Games[0].Sheet.MessageID)
	s.Equal([]int{5}, output.Games[0].Scoreboard.Totals)
	s.Equal("skyjo-game-id", output.Games[1].Sheet.ID)
	s.True(output.Games[1].Scoreboard.LowWins)
}

func (s *ScorepadServiceTestSuite) TestListActiveGamesRepositoryError() {
	s.mockSheetRepo.EXPECT().
		GetActiveSheets(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.ListActiveGames(s.ctx, &ListActiveGamesInput{})
	s.EqualError(err, "redis down")

	_, err = s.service.ListActiveGames(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ScorepadServiceTestSuite) TestAddPlayer() {
	s.expectGetSheet(s.newSheet(scorer.SetbackKey, 21, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
	))
	saved := s.expectSave()

	output, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		GameID:     s.testGameID,
		PlayerName: "  Bob ",
	})
	s.Require().NoError(err)

	s.Equal(1, output.PlayerIndex)
	s.Equal([]string{"Ann", "Bob"}, output.Scoreboard.PlayerNames)
	s.Require().Len(saved.Players, 2)
	s.Equal("Bob", saved.Players[1].Name)
	s.Equal([]*int{nil}, saved.Players[1].Ledger)
}

func (s *ScorepadServiceTestSuite) TestAddPlayerDuplicate() {
	s.expectGetSheet(s.newSheet(scorer.SetbackKey, 21, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
	))

	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		GameID:     s.testGameID,
		PlayerName: "Ann",
	})
	s.ErrorIs(err, scorer.ErrDuplicateName)
}

func (s *ScorepadServiceTestSuite) TestAddPlayerEmptyName() {
	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		GameID:     s.testGameID,
		PlayerName: "   ",
	})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ScorepadServiceTestSuite) TestAddPlayerGameFull() {
	s.expectGetSheet(s.newSheet(scorer.SetbackKey, 21, models.SheetStatusWaiting,
		&models.Player{Name: "A", Ledger: []*int{nil}},
		&models.Player{Name: "B", Ledger: []*int{nil}},
		&models.Player{Name: "C", Ledger: []*int{nil}},
		&models.Player{Name: "D", Ledger: []*int{nil}},
	))

	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		GameID:     s.testGameID,
		PlayerName: "E",
	})
	s.ErrorIs(err, ErrGameFull)
}

func (s *ScorepadServiceTestSuite) TestRemovePlayerAfterScoring() {
	sheet := s.newSheet(scorer.SetbackKey, 21, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(3)}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	)
	sheet.MoveHistory = []models.Move{{PlayerIndex: 0, Points: 3}}
	s.expectGetSheet(sheet)

	_, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{
		GameID:     s.testGameID,
		PlayerName: "Bob",
	})
	s.ErrorIs(err, scorer.ErrScoringStarted)
}

func (s *ScorepadServiceTestSuite) TestRemovePlayer() {
	s.expectGetSheet(s.newSheet(scorer.SetbackKey, 21, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	))
	s.expectSave()

	output, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{
		GameID:     s.testGameID,
		PlayerName: "Ann",
	})
	s.Require().NoError(err)
	s.Equal([]string{"Bob"}, output.Scoreboard.PlayerNames)
}

func (s *ScorepadServiceTestSuite) TestStartGame() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
	))
	saved := s.expectSave()

	output, err := s.service.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.Scoreboard.HasGameStarted)
	s.True(saved.HasGameStarted)
	s.Equal(models.SheetStatusActive, saved.Status)
}

func (s *ScorepadServiceTestSuite) TestStartGameWithoutPlayers() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting))

	_, err := s.service.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrNoPlayers)
}

func (s *ScorepadServiceTestSuite) TestAddScore() {
	s.expectGetSheet(s.newSheet(scorer.SetbackKey, 21, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	))
	saved := s.expectSave()

	output, err := s.service.AddScore(s.ctx, &AddScoreInput{
		GameID:      s.testGameID,
		PlayerIndex: 1,
		Points:      -4,
	})
	s.Require().NoError(err)

	s.False(output.GameEnded)
	s.Equal([]int{0, -4}, output.Scoreboard.Totals)
	s.True(output.Scoreboard.CanUndo)
	s.Nil(output.Scoreboard.Winner)
	s.Equal(models.SheetStatusActive, saved.Status)
	s.True(saved.HasGameStarted)
	s.Equal([]models.Move{{PlayerIndex: 1, Points: -4}}, saved.MoveHistory)
}

func (s *ScorepadServiceTestSuite) TestAddScoreEndsGame() {
	sheet := s.newSheet(scorer.SetbackKey, 10, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(12)}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	)
	sheet.MoveHistory = []models.Move{{PlayerIndex: 0, Points: 12}}
	s.expectGetSheet(sheet)
	saved := s.expectSave()
	s.mockUUID.EXPECT().NewUUID().Return(s.testResultID)
	s.mockResultRepo.EXPECT().
		AddResult(gomock.Any(), &resultRepo.AddResultInput{
			Result: &models.GameResult{
				ID:        s.testResultID,
				SheetID:   s.testGameID,
				ChannelID: s.testChannelID,
				GameType:  scorer.SetbackKey,
				Winner:    models.Standing{Name: "Ann", Score: 12},
				FinalStandings: []models.Standing{
					{Name: "Ann", Score: 12},
					{Name: "Bob", Score: 5},
				},
				Rounds:    2,
				Timestamp: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.service.AddScore(s.ctx, &AddScoreInput{
		GameID:      s.testGameID,
		PlayerIndex: 1,
		Points:      5,
	})
	s.Require().NoError(err)

	s.True(output.GameEnded)
	s.True(output.Scoreboard.GameOver)
	s.Require().NotNil(output.Scoreboard.Winner)
	s.Equal("Ann", output.Scoreboard.Winner.Name)
	s.Equal(models.SheetStatusCompleted, saved.Status)
}

func (s *ScorepadServiceTestSuite) TestAddScoreTiedLeadersContinue() {
	sheet := s.newSheet(scorer.SetbackKey, 10, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(10)}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	)
	sheet.MoveHistory = []models.Move{{PlayerIndex: 0, Points: 10}}
	s.expectGetSheet(sheet)
	saved := s.expectSave()

	output, err := s.service.AddScore(s.ctx, &AddScoreInput{
		GameID:      s.testGameID,
		PlayerIndex: 1,
		Points:      10,
	})
	s.Require().NoError(err)
	s.False(output.GameEnded)
	s.Equal(models.SheetStatusActive, saved.Status)
}

func (s *ScorepadServiceTestSuite) TestAddScoreAfterGameOver() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusCompleted,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(120)}},
	))

	_, err := s.service.AddScore(s.ctx, &AddScoreInput{
		GameID:      s.testGameID,
		PlayerIndex: 0,
		Points:      1,
	})
	s.ErrorIs(err, ErrGameOver)
}

func (s *ScorepadServiceTestSuite) TestAddScoreInvalidIndex() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
	))

	_, err := s.service.AddScore(s.ctx, &AddScoreInput{
		GameID:      s.testGameID,
		PlayerIndex: 3,
		Points:      1,
	})
	s.ErrorIs(err, scorer.ErrInvalidIndex)
}

func (s *ScorepadServiceTestSuite) TestRollbackMoveNothingToUndo() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
	))

	output, err := s.service.RollbackMove(s.ctx, &RollbackMoveInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(output.Undone)
	s.False(output.Scoreboard.CanUndo)
}

func (s *ScorepadServiceTestSuite) TestRollbackMoveReopensFinishedGame() {
	sheet := s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusCompleted,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(60), models.Score(45)}},
		&models.Player{Name: "Bob", Ledger: []*int{nil, models.Score(20), models.Score(30)}},
	)
	sheet.MoveHistory = []models.Move{
		{PlayerIndex: 0, Points: 60},
		{PlayerIndex: 1, Points: 20},
		{PlayerIndex: 0, Points: 45},
		{PlayerIndex: 1, Points: 30},
	}
	s.expectGetSheet(sheet)
	saved := s.expectSave()
	s.mockResultRepo.EXPECT().
		DeleteResultForSheet(gomock.Any(), &resultRepo.DeleteResultForSheetInput{SheetID: s.testGameID}).
		Return(nil)

	output, err := s.service.RollbackMove(s.ctx, &RollbackMoveInput{GameID: s.testGameID})
	s.Require().NoError(err)

	s.True(output.Undone)
	s.True(output.Reopened)
	s.Equal(models.Move{PlayerIndex: 1, Points: 30}, output.Move)
	s.False(output.Scoreboard.GameOver)
	s.Equal([]int{105, 20}, output.Scoreboard.Totals)
	s.Equal(models.SheetStatusActive, saved.Status)
}

func (s *ScorepadServiceTestSuite) TestRollbackMoveMidGame() {
	sheet := s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil, models.Score(7)}},
	)
	sheet.MoveHistory = []models.Move{{PlayerIndex: 0, Points: 7}}
	s.expectGetSheet(sheet)
	saved := s.expectSave()

	output, err := s.service.RollbackMove(s.ctx, &RollbackMoveInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.Undone)
	s.False(output.Reopened)
	s.Equal([]*int{nil}, saved.Players[0].Ledger)
	s.Empty(saved.MoveHistory)
}

func (s *ScorepadServiceTestSuite) TestReplaceLedgersEndsGame() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusActive,
		&models.Player{Name: "Ann", Ledger: []*int{nil}},
		&models.Player{Name: "Bob", Ledger: []*int{nil}},
	))
	saved := s.expectSave()
	s.mockUUID.EXPECT().NewUUID().Return(s.testResultID)
	s.mockResultRepo.EXPECT().AddResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *resultRepo.AddResultInput) error {
			s.Equal(models.Standing{Name: "Bob", Score: 50}, input.Result.Winner)
			return nil
		})

	output, err := s.service.ReplaceLedgers(s.ctx, &ReplaceLedgersInput{
		GameID: s.testGameID,
		Ledgers: map[string][]*int{
			"Ann": {models.Score(70), models.Score(40)},
			"Bob": {models.Score(20), models.Score(30)},
		},
	})
	s.Require().NoError(err)
	s.True(output.GameEnded)
	s.Equal(models.SheetStatusCompleted, saved.Status)
	s.Empty(saved.MoveHistory)
}

func (s *ScorepadServiceTestSuite) TestReplaceLedgersEmptyName() {
	_, err := s.service.ReplaceLedgers(s.ctx, &ReplaceLedgersInput{
		GameID:  s.testGameID,
		Ledgers: map[string][]*int{"": {models.Score(1)}},
	})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ScorepadServiceTestSuite) TestGetChannelLeaderboard() {
	s.mockResultRepo.EXPECT().
		GetWinCounts(gomock.Any(), &resultRepo.GetWinCountsInput{ChannelID: s.testChannelID}).
		Return(&resultRepo.GetWinCountsOutput{Wins: map[string]int{"Cat": 1, "Ann": 3, "Bob": 1}}, nil)
	s.mockResultRepo.EXPECT().
		GetResultsForChannel(gomock.Any(), &resultRepo.GetResultsForChannelInput{ChannelID: s.testChannelID}).
		Return(&resultRepo.GetResultsForChannelOutput{Results: make([]*models.GameResult, 5)}, nil)

	output, err := s.service.GetChannelLeaderboard(s.ctx, &GetChannelLeaderboardInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	s.Equal(5, output.GamesPlayed)
	s.Equal([]LeaderboardEntry{
		{PlayerName: "Ann", Wins: 3},
		{PlayerName: "Bob", Wins: 1},
		{PlayerName: "Cat", Wins: 1},
	}, output.Entries)
}

func (s *ScorepadServiceTestSuite) TestUpdateGameMessage() {
	s.expectGetSheet(s.newSheet(scorer.SkyjoKey, 100, models.SheetStatusWaiting))
	saved := s.expectSave()

	output, err := s.service.UpdateGameMessage(s.ctx, &UpdateGameMessageInput{
		GameID:    s.testGameID,
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("test-message-id", saved.MessageID)
}

func (s *ScorepadServiceTestSuite) TestAbandonGame() {
	s.mockSheetRepo.EXPECT().
		DeleteSheet(gomock.Any(), &sheetRepo.DeleteSheetInput{SheetID: s.testGameID}).
		Return(nil)

	output, err := s.service.AbandonGame(s.ctx, &AbandonGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.Success)
}

func (s *ScorepadServiceTestSuite) TestAbandonMissingGame() {
	s.mockSheetRepo.EXPECT().
		DeleteSheet(gomock.Any(), gomock.Any()).
		Return(sheetRepo.ErrSheetNotFound)

	_, err := s.service.AbandonGame(s.ctx, &AbandonGameInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotFound)
}
