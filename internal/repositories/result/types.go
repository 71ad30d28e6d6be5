package result

import "github.com/KirkDiggler/scorepad/internal/models"

// AddResultInput contains parameters for recording a result
type AddResultInput struct {
	Result *models.GameResult
}

// GetResultsForChannelInput contains parameters for retrieving results for a channel
type GetResultsForChannelInput struct {
	ChannelID string
}

// GetResultsForChannelOutput contains the results for a channel
type GetResultsForChannelOutput struct {
	Results []*models.GameResult
}

// GetWinCountsInput contains parameters for retrieving win counts
type GetWinCountsInput struct {
	ChannelID string
}

// GetWinCountsOutput maps player names to wins
type GetWinCountsOutput struct {
	Wins map[string]int
}

// DeleteResultForSheetInput contains parameters for removing a sheet's result
type DeleteResultForSheetInput struct {
	SheetID string
}
