package scoresheet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorepad/internal/repositories/scoresheet Repository

import (
	"context"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Repository defines the interface for score sheet persistence
type Repository interface {
	// SaveSheet persists a sheet
	SaveSheet(ctx context.Context, input *SaveSheetInput) error

	// GetSheet retrieves a sheet by ID
	GetSheet(ctx context.Context, input *GetSheetInput) (*models.ScoreSheet, error)

	// GetSheetByChannel retrieves the latest sheet for a channel
	GetSheetByChannel(ctx context.Context, input *GetSheetByChannelInput) (*models.ScoreSheet, error)

	// DeleteSheet removes a sheet
	DeleteSheet(ctx context.Context, input *DeleteSheetInput) error

	// GetActiveSheets retrieves all sheets still in play
	GetActiveSheets(ctx context.Context, input *GetActiveSheetsInput) (*GetActiveSheetsOutput, error)
}
