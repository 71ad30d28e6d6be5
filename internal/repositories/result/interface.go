package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorepad/internal/repositories/result Repository

import (
	"context"
)

// Repository defines the interface for finished-game records
type Repository interface {
	// AddResult records a finished game
	AddResult(ctx context.Context, input *AddResultInput) error

	// GetResultsForChannel retrieves all results for a channel, oldest first
	GetResultsForChannel(ctx context.Context, input *GetResultsForChannelInput) (*GetResultsForChannelOutput, error)

	// GetWinCounts retrieves the number of wins per player name in a channel
	GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error)

	// DeleteResultForSheet removes the result recorded for a sheet
	DeleteResultForSheet(ctx context.Context, input *DeleteResultForSheetInput) error
}
