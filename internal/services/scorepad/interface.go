package scorepad

import "context"

// Service defines the interface for score pad operations
type Service interface {
	// CreateGame creates a new score sheet for a game type and target score
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a score sheet by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListActiveGames returns every game that is waiting or in progress
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)

	// GetGameByChannel retrieves the latest score sheet for a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// AddPlayer adds a player to a game
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player from a game before scoring starts
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// StartGame marks a game as started
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AddScore records points for a player
	AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error)

	// RollbackMove undoes the most recent score
	RollbackMove(ctx context.Context, input *RollbackMoveInput) (*RollbackMoveOutput, error)

	// ReplaceLedgers overwrites every ledger from an edited table
	ReplaceLedgers(ctx context.Context, input *ReplaceLedgersInput) (*ReplaceLedgersOutput, error)

	// GetScoreboard returns the current projection of a game
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// GetChannelLeaderboard returns win counts for finished games in a channel
	GetChannelLeaderboard(ctx context.Context, input *GetChannelLeaderboardInput) (*GetChannelLeaderboardOutput, error)

	// UpdateGameMessage associates a chat message with a game
	UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error)

	// AbandonGame deletes a game
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)
}
