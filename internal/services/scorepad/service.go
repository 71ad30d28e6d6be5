package scorepad

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	resultRepo "github.com/KirkDiggler/scorepad/internal/repositories/result"
	sheetRepo "github.com/KirkDiggler/scorepad/internal/repositories/scoresheet"
	"github.com/KirkDiggler/scorepad/internal/scorer"
)

const defaultMaxPlayers = 10

// service implements the Service interface
type service struct {
	maxPlayers    int
	sheetRepo     sheetRepo.Repository
	resultRepo    resultRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new score pad service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SheetRepo == nil {
		return nil, ErrNilSheetRepo
	}

	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		maxPlayers:    maxPlayers,
		sheetRepo:     cfg.SheetRepo,
		resultRepo:    cfg.ResultRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// CreateGame creates a new score sheet
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	// Only one open game per channel
	if input.ChannelID != "" {
		existing, err := s.sheetRepo.GetSheetByChannel(ctx, &sheetRepo.GetSheetByChannelInput{
			ChannelID: input.ChannelID,
		})
		if err != nil && !errors.Is(err, sheetRepo.ErrSheetNotFound) {
			return nil, err
		}
		if err == nil && existing.Status.IsOpen() {
			return nil, ErrGameAlreadyExists
		}
	}

	model, err := scorer.New(input.GameType, input.GameOverScore)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	sheet := model.Sheet()
	sheet.ID = s.uuidGenerator.NewUUID()
	sheet.ChannelID = input.ChannelID
	sheet.CreatorID = input.CreatorID
	sheet.CreatedAt = now
	sheet.UpdatedAt = now

	err = s.sheetRepo.SaveSheet(ctx, &sheetRepo.SaveSheetInput{
		Sheet: sheet,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		GameID:     sheet.ID,
		Scoreboard: buildScoreboard(model),
	}, nil
}

// GetGame retrieves a score sheet by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Sheet:      model.Sheet(),
		Scoreboard: buildScoreboard(model),
	}, nil
}

// ListActiveGames returns every game that is waiting or in progress
func (s *service) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	activeOutput, err := s.sheetRepo.GetActiveSheets(ctx, &sheetRepo.GetActiveSheetsInput{})
	if err != nil {
		return nil, err
	}

	games := make([]*GetGameOutput, 0, len(activeOutput.Sheets))
	for _, sheet := range activeOutput.Sheets {
		model, err := scorer.Load(sheet)
		if err != nil {
			s.logger.Warn("skipping unreadable game", "game_id", sheet.ID, "error", err)
			continue
		}
		games = append(games, &GetGameOutput{
			Sheet:      sheet,
			Scoreboard: buildScoreboard(model),
		})
	}

	return &ListActiveGamesOutput{
		Games: games,
	}, nil
}

// GetGameByChannel retrieves the latest score sheet for a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	sheet, err := s.sheetRepo.GetSheetByChannel(ctx, &sheetRepo.GetSheetByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrSheetNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	model, err := scorer.Load(sheet)
	if err != nil {
		return nil, err
	}

	return &GetGameByChannelOutput{
		Sheet:      sheet,
		Scoreboard: buildScoreboard(model),
	}, nil
}

// AddPlayer adds a player to a game
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.PlayerName)
	if name == "" {
		return nil, fmt.Errorf("%w: player name cannot be empty", ErrInvalidInput)
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if model.Sheet().Status == models.SheetStatusCompleted {
		return nil, ErrGameOver
	}

	if len(model.Players()) >= s.maxPlayers {
		return nil, ErrGameFull
	}

	if err := model.AddPlayer(name); err != nil {
		return nil, err
	}

	if err := s.saveModel(ctx, model); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{
		PlayerIndex: len(model.Players()) - 1,
		Scoreboard:  buildScoreboard(model),
	}, nil
}

// RemovePlayer removes a player from a game
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := model.RemovePlayer(input.PlayerName); err != nil {
		return nil, err
	}

	if err := s.saveModel(ctx, model); err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{
		Scoreboard: buildScoreboard(model),
	}, nil
}

// StartGame marks a game as started
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sheet := model.Sheet()
	if sheet.Status == models.SheetStatusCompleted {
		return nil, ErrGameOver
	}

	if len(model.Players()) == 0 {
		return nil, ErrNoPlayers
	}

	model.Start()
	sheet.Status = models.SheetStatusActive

	if err := s.saveModel(ctx, model); err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Scoreboard: buildScoreboard(model),
	}, nil
}

// AddScore records points for a player
func (s *service) AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if model.Sheet().Status == models.SheetStatusCompleted {
		return nil, ErrGameOver
	}

	if err := model.AddScore(input.PlayerIndex, input.Points); err != nil {
		return nil, err
	}

	// Recording a score starts a waiting game
	model.Start()

	outcome, err := s.settle(ctx, model)
	if err != nil {
		return nil, err
	}

	return &AddScoreOutput{
		Scoreboard: buildScoreboard(model),
		GameEnded:  outcome.ended,
	}, nil
}

// RollbackMove undoes the most recent score
func (s *service) RollbackMove(ctx context.Context, input *RollbackMoveInput) (*RollbackMoveOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	move, ok := model.RollbackMove()
	if !ok {
		return &RollbackMoveOutput{
			Scoreboard: buildScoreboard(model),
		}, nil
	}

	outcome, err := s.settle(ctx, model)
	if err != nil {
		return nil, err
	}

	return &RollbackMoveOutput{
		Scoreboard: buildScoreboard(model),
		Undone:     true,
		Move:       move,
		Reopened:   outcome.reopened,
	}, nil
}

// ReplaceLedgers overwrites every ledger from an edited table
func (s *service) ReplaceLedgers(ctx context.Context, input *ReplaceLedgersInput) (*ReplaceLedgersOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	for name := range input.Ledgers {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: player name cannot be empty", ErrInvalidInput)
		}
	}

	if len(input.Ledgers) > s.maxPlayers {
		return nil, ErrGameFull
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := model.ReplaceLedgers(input.Ledgers); err != nil {
		return nil, err
	}

	outcome, err := s.settle(ctx, model)
	if err != nil {
		return nil, err
	}

	return &ReplaceLedgersOutput{
		Scoreboard: buildScoreboard(model),
		GameEnded:  outcome.ended,
		Reopened:   outcome.reopened,
	}, nil
}

// GetScoreboard returns the current projection of a game
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetScoreboardOutput{
		Scoreboard: buildScoreboard(model),
	}, nil
}

// GetChannelLeaderboard returns win counts for finished games in a channel
func (s *service) GetChannelLeaderboard(ctx context.Context, input *GetChannelLeaderboardInput) (*GetChannelLeaderboardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	wins, err := s.resultRepo.GetWinCounts(ctx, &resultRepo.GetWinCountsInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.GetResultsForChannel(ctx, &resultRepo.GetResultsForChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(wins.Wins))
	for name, count := range wins.Wins {
		entries = append(entries, LeaderboardEntry{
			PlayerName: name,
			Wins:       count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	return &GetChannelLeaderboardOutput{
		ChannelID:   input.ChannelID,
		GamesPlayed: len(results.Results),
		Entries:     entries,
	}, nil
}

// UpdateGameMessage associates a chat message with a game
func (s *service) UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	model, err := s.loadModel(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	model.Sheet().MessageID = input.MessageID

	if err := s.saveModel(ctx, model); err != nil {
		return nil, err
	}

	return &UpdateGameMessageOutput{
		Success: true,
	}, nil
}

// AbandonGame deletes a game
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	err := s.sheetRepo.DeleteSheet(ctx, &sheetRepo.DeleteSheetInput{
		SheetID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrSheetNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &AbandonGameOutput{
		Success: true,
	}, nil
}

func (s *service) loadModel(ctx context.Context, gameID string) (*scorer.Model, error) {
	if gameID == "" {
		return nil, ErrInvalidInput
	}

	sheet, err := s.sheetRepo.GetSheet(ctx, &sheetRepo.GetSheetInput{
		SheetID: gameID,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrSheetNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return scorer.Load(sheet)
}

func (s *service) saveModel(ctx context.Context, model *scorer.Model) error {
	sheet := model.Sheet()
	sheet.UpdatedAt = s.clock.Now()

	return s.sheetRepo.SaveSheet(ctx, &sheetRepo.SaveSheetInput{
		Sheet: sheet,
	})
}

type settleOutcome struct {
	ended    bool
	reopened bool
}

// settle re-evaluates the end condition after the ledgers changed, saves the
// sheet and keeps the recorded result in step with it.
func (s *service) settle(ctx context.Context, model *scorer.Model) (settleOutcome, error) {
	sheet := model.Sheet()
	wasCompleted := sheet.Status == models.SheetStatusCompleted
	over := model.IsGameOver()

	switch {
	case over:
		sheet.Status = models.SheetStatusCompleted
	case sheet.HasGameStarted:
		sheet.Status = models.SheetStatusActive
	default:
		sheet.Status = models.SheetStatusWaiting
	}

	if err := s.saveModel(ctx, model); err != nil {
		return settleOutcome{}, err
	}

	if wasCompleted {
		err := s.resultRepo.DeleteResultForSheet(ctx, &resultRepo.DeleteResultForSheetInput{
			SheetID: sheet.ID,
		})
		if err != nil && !errors.Is(err, resultRepo.ErrResultNotFound) {
			return settleOutcome{}, fmt.Errorf("failed to clear result: %w", err)
		}
	}

	if over {
		if err := s.recordResult(ctx, model); err != nil {
			return settleOutcome{}, err
		}
	}

	outcome := settleOutcome{
		ended:    over && !wasCompleted,
		reopened: wasCompleted && !over,
	}

	if outcome.reopened {
		s.logger.Info("game reopened", "game_id", sheet.ID)
	}

	return outcome, nil
}

func (s *service) recordResult(ctx context.Context, model *scorer.Model) error {
	sheet := model.Sheet()
	winner, ok := model.WinnerNameAndScore()
	if !ok {
		return nil
	}

	err := s.resultRepo.AddResult(ctx, &resultRepo.AddResultInput{
		Result: &models.GameResult{
			ID:             s.uuidGenerator.NewUUID(),
			SheetID:        sheet.ID,
			ChannelID:      sheet.ChannelID,
			GameType:       sheet.GameType,
			Winner:         winner,
			FinalStandings: model.Standings(),
			Rounds:         model.MaxLedgerLength(),
			Timestamp:      s.clock.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	s.logger.Info("game over",
		"game_id", sheet.ID,
		"game_type", sheet.GameType,
		"winner", winner.Name,
		"score", winner.Score,
	)

	return nil
}

// buildScoreboard projects a model into a Scoreboard
func buildScoreboard(model *scorer.Model) *Scoreboard {
	sheet := model.Sheet()
	board := &Scoreboard{
		GameID:          sheet.ID,
		GameName:        model.Name(),
		GameType:        sheet.GameType,
		GameOverScore:   sheet.GameOverScore,
		Status:          sheet.Status,
		HasGameStarted:  sheet.HasGameStarted,
		PlayerNames:     model.PlayerNames(),
		Ledgers:         model.Ledgers(),
		Totals:          model.CurrentScores(),
		Progress:        model.Progress(),
		MaxLedgerLength: model.MaxLedgerLength(),
		GameOver:        model.IsGameOver(),
		LowWins:         model.LowWins(),
		CanUndo:         len(sheet.MoveHistory) > 0,
	}

	if winner, ok := model.WinnerNameAndScore(); ok {
		board.Winner = &winner
	}

	return board
}
