package models

import (
	"time"
)

// SheetStatus represents the current state of a score sheet
type SheetStatus string

const (
	// SheetStatusWaiting indicates players are still joining
	SheetStatusWaiting SheetStatus = "waiting"

	// SheetStatusActive indicates scores are being recorded
	SheetStatusActive SheetStatus = "active"

	// SheetStatusCompleted indicates the end condition holds
	SheetStatusCompleted SheetStatus = "completed"
)

// IsOpen reports whether the sheet still accepts gameplay
func (s SheetStatus) IsOpen() bool {
	return s == SheetStatusWaiting || s == SheetStatusActive
}

// ScoreSheet is the persisted state of one game session
type ScoreSheet struct {
	// ID is the unique identifier for the sheet
	ID string

	// ChannelID is the chat channel the game is played in, if any
	ChannelID string

	// CreatorID is the user who created the sheet
	CreatorID string

	// GameType is the registry key of the rule set
	GameType string

	// GameOverScore is the target threshold, fixed at creation
	GameOverScore int

	// HasGameStarted is set by the driver once play begins
	HasGameStarted bool

	// Status is the current state of the sheet
	Status SheetStatus

	// Players in join order
	Players []*Player

	// MoveHistory is the undo log of score additions
	MoveHistory []Move

	// CreatedAt is when the sheet was created
	CreatedAt time.Time

	// UpdatedAt is when the sheet was last updated
	UpdatedAt time.Time

	// MessageID is the ID of the scoreboard message in the chat channel
	MessageID string
}
