package scorepad

import (
	"log/slog"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	resultRepo "github.com/KirkDiggler/scorepad/internal/repositories/result"
	sheetRepo "github.com/KirkDiggler/scorepad/internal/repositories/scoresheet"
)

// Config holds configuration for the score pad service
type Config struct {
	// Maximum number of players per game, defaults to 10
	MaxPlayers int

	// Repository dependencies
	SheetRepo  sheetRepo.Repository
	ResultRepo resultRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Scoreboard is a read-only projection of a game for drivers to render
type Scoreboard struct {
	GameID          string
	GameName        string
	GameType        string
	GameOverScore   int
	Status          models.SheetStatus
	HasGameStarted  bool
	PlayerNames     []string
	Ledgers         [][]*int
	Totals          []int
	Progress        []float64
	MaxLedgerLength int
	GameOver        bool
	LowWins         bool
	Winner          *models.Standing
	CanUndo         bool
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	// ChannelID is the chat channel the game is played in, optional
	ChannelID string

	// CreatorID is the user creating the game
	CreatorID string

	// GameType is a registry key such as "setback" or "skyjo"
	GameType string

	// GameOverScore is the target threshold
	GameOverScore int
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	GameID     string
	Scoreboard *Scoreboard
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the retrieved game
type GetGameOutput struct {
	Sheet      *models.ScoreSheet
	Scoreboard *Scoreboard
}

// ListActiveGamesInput defines the input for listing open games
type ListActiveGamesInput struct {
}

// ListActiveGamesOutput contains the open games, oldest first
type ListActiveGamesOutput struct {
	Games []*GetGameOutput
}

// GetGameByChannelInput defines the input for retrieving a game by channel ID
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByChannelOutput contains the retrieved game
type GetGameByChannelOutput struct {
	Sheet      *models.ScoreSheet
	Scoreboard *Scoreboard
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	GameID     string
	PlayerName string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	// PlayerIndex is the new player's position on the sheet
	PlayerIndex int
	Scoreboard  *Scoreboard
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	GameID     string
	PlayerName string
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	Scoreboard *Scoreboard
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Scoreboard *Scoreboard
}

// AddScoreInput contains parameters for recording a score
type AddScoreInput struct {
	GameID      string
	PlayerIndex int
	Points      int
}

// AddScoreOutput contains the result of recording a score
type AddScoreOutput struct {
	Scoreboard *Scoreboard

	// GameEnded indicates this score reached the end condition
	GameEnded bool
}

// RollbackMoveInput contains parameters for undoing a score
type RollbackMoveInput struct {
	GameID string
}

// RollbackMoveOutput contains the result of undoing a score
type RollbackMoveOutput struct {
	Scoreboard *Scoreboard

	// Undone is false when there was nothing to undo
	Undone bool

	// Move is the score that was removed
	Move models.Move

	// Reopened indicates a finished game is back in play
	Reopened bool
}

// ReplaceLedgersInput contains parameters for overwriting ledgers
type ReplaceLedgersInput struct {
	GameID  string
	Ledgers map[string][]*int
}

// ReplaceLedgersOutput contains the result of overwriting ledgers
type ReplaceLedgersOutput struct {
	Scoreboard *Scoreboard
	GameEnded  bool
	Reopened   bool
}

// GetScoreboardInput defines the input for retrieving a scoreboard
type GetScoreboardInput struct {
	GameID string
}

// GetScoreboardOutput contains the scoreboard
type GetScoreboardOutput struct {
	Scoreboard *Scoreboard
}

// GetChannelLeaderboardInput defines the input for retrieving a channel leaderboard
type GetChannelLeaderboardInput struct {
	ChannelID string
}

// LeaderboardEntry represents a single entry in the channel leaderboard
type LeaderboardEntry struct {
	PlayerName string
	Wins       int
}

// GetChannelLeaderboardOutput contains the channel leaderboard
type GetChannelLeaderboardOutput struct {
	ChannelID   string
	GamesPlayed int
	Entries     []LeaderboardEntry
}

// UpdateGameMessageInput contains parameters for updating a game's message ID
type UpdateGameMessageInput struct {
	GameID    string
	MessageID string
}

// UpdateGameMessageOutput contains the result of updating a game's message ID
type UpdateGameMessageOutput struct {
	Success bool
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	GameID string
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
	Success bool
}
