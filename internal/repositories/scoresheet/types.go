package scoresheet

import "github.com/KirkDiggler/scorepad/internal/models"

type SaveSheetInput struct {
	Sheet *models.ScoreSheet
}

type GetSheetInput struct {
	SheetID string
}

type GetSheetByChannelInput struct {
	ChannelID string
}

type DeleteSheetInput struct {
	SheetID string
}

type GetActiveSheetsInput struct {
}

type GetActiveSheetsOutput struct {
	Sheets []*models.ScoreSheet
}
