package models

import "time"

// GameResult records the outcome of a finished score sheet
type GameResult struct {
	// ID is the unique identifier for the result
	ID string

	// SheetID is the score sheet this result came from
	SheetID string

	// ChannelID is where the game was played
	ChannelID string

	// GameType is the registry key of the rule set
	GameType string

	// Winner is the winning player's name and total
	Winner Standing

	// FinalStandings holds every player's total in join order
	FinalStandings []Standing

	// Rounds is the longest ledger length at the end of the game
	Rounds int

	// Timestamp is when the game finished
	Timestamp time.Time
}
