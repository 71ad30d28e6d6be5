package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeGameNotFound   = "game_not_found"
	ErrorTypeGameExists     = "game_exists"
	ErrorTypeGameOver       = "game_over"
	ErrorTypeGameFull       = "game_full"
	ErrorTypeDuplicateName  = "duplicate_name"
	ErrorTypeScoringStarted = "scoring_started"
	ErrorTypeNotInGame      = "not_in_game"
)

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// GameStatus is the current status of the game
	GameStatus models.SheetStatus

	// AlreadyJoined indicates if the player was already in the game
	AlreadyJoined bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinGameMessageOutput contains the result of getting a join game message
type GetJoinGameMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameStatusMessageInput is the input for GetGameStatusMessage
type GetGameStatusMessageInput struct {
	GameStatus  models.SheetStatus
	GameName    string
	PlayerCount int
}

// GetGameStatusMessageOutput is the output for GetGameStatusMessage
type GetGameStatusMessageOutput struct {
	Message string
}

// GetScoreMessageInput contains the input for GetScoreMessage
type GetScoreMessageInput struct {
	PlayerName string
	Points     int

	// LowWins is true for games where the lowest total wins
	LowWins bool

	PreferredTone MessageTone
}

// GetScoreMessageOutput contains the output for GetScoreMessage
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	GameName    string
	WinnerName  string
	WinnerScore int
}

// GetGameOverMessageOutput contains the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetUndoMessageInput contains the input for GetUndoMessage
type GetUndoMessageInput struct {
	PlayerName string
	Points     int

	// Reopened indicates the undo brought a finished game back into play
	Reopened bool
}

// GetUndoMessageOutput contains the output for GetUndoMessage
type GetUndoMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PlayerName is used to personalise the message (optional)
	PlayerName string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand overrides the random source, mostly for tests
	Rand *rand.Rand
}
