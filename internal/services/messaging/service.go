package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetJoinGameMessage returns a message for when a player joins a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case input.AlreadyJoined && input.GameStatus == models.SheetStatusCompleted:
		messages = []string{
			fmt.Sprintf("It's over, %s. Start a new game if you want a rematch.", input.PlayerName),
			"That game is finished. The pencil has been put down.",
		}
	case input.AlreadyJoined:
		messages = []string{
			fmt.Sprintf("You're already on the sheet, %s!", input.PlayerName),
			fmt.Sprintf("%s, your column is right there. No need to join twice.", input.PlayerName),
			"Double-dipping? You're already in this game.",
		}
	case tone == ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s joined the game.", input.PlayerName),
		}
	case input.GameStatus == models.SheetStatusActive:
		messages = []string{
			fmt.Sprintf("%s pulls up a chair mid-game. Your column starts blank.", input.PlayerName),
			fmt.Sprintf("Late to the table, %s? We saved you a seat.", input.PlayerName),
			fmt.Sprintf("%s joins in progress. Catch up quick!", input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("Welcome to the table, %s!", input.PlayerName),
			fmt.Sprintf("A new challenger appears: %s!", input.PlayerName),
			fmt.Sprintf("%s has joined. Sharpen your pencils.", input.PlayerName),
			fmt.Sprintf("Fresh column for %s. Try to keep it tidy.", input.PlayerName),
		}
	}

	return &GetJoinGameMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameStatusMessage returns a dynamic message based on the game status
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.GameStatus {
	case models.SheetStatusWaiting:
		messages = []string{
			fmt.Sprintf("A game of %s is forming. Join before the first hand!", input.GameName),
			fmt.Sprintf("%s table open with %d at the table so far.", input.GameName, input.PlayerCount),
			"Shuffle up. Waiting for players to join.",
		}
	case models.SheetStatusActive:
		messages = []string{
			fmt.Sprintf("%s in progress. Keep those scores coming.", input.GameName),
			"The game is afoot! Record each round as it's played.",
			fmt.Sprintf("%d players, one winner. Play on.", input.PlayerCount),
		}
	case models.SheetStatusCompleted:
		messages = []string{
			"Game over! The sheet is final.",
			"The cards have spoken.",
			"Another one for the books.",
		}
	default:
		return &GetGameStatusMessageOutput{
			Message: "Score pad ready.",
		}, nil
	}

	return &GetGameStatusMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetScoreMessage returns a comment for a recorded score
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	if tone == ToneNeutral {
		return &GetScoreMessageOutput{
			Message: fmt.Sprintf("%s: %+d", input.PlayerName, input.Points),
			Tone:    tone,
		}, nil
	}

	// In low-wins games a small hand is the good news
	good := input.Points > 0
	if input.LowWins {
		good = input.Points <= 0
	}

	var messages []string
	switch {
	case input.Points == 0:
		messages = []string{
			fmt.Sprintf("A big fat zero for %s.", input.PlayerName),
			fmt.Sprintf("%s holds steady at %+d.", input.PlayerName, input.Points),
		}
	case good:
		messages = []string{
			fmt.Sprintf("Nice hand, %s! %+d on the sheet.", input.PlayerName, input.Points),
			fmt.Sprintf("%s is cooking: %+d.", input.PlayerName, input.Points),
			fmt.Sprintf("%+d for %s. The others are sweating.", input.Points, input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("Ouch. %+d for %s.", input.Points, input.PlayerName),
			fmt.Sprintf("%s takes %+d. It happens to the best of us.", input.PlayerName, input.Points),
			fmt.Sprintf("%+d? %s will want that one back.", input.Points, input.PlayerName),
		}
		if tone == ToneEncouraging {
			messages = []string{
				fmt.Sprintf("%+d for %s. Plenty of game left!", input.Points, input.PlayerName),
				fmt.Sprintf("Shake it off, %s. Next hand is yours.", input.PlayerName),
			}
		}
	}

	return &GetScoreMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a message announcing the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"Game Over!",
		"We Have a Winner!",
		"That's Game!",
	}

	messages := []string{
		fmt.Sprintf("%s wins %s with %d!", input.WinnerName, input.GameName, input.WinnerScore),
		fmt.Sprintf("All hail %s, champion of %s (%d).", input.WinnerName, input.GameName, input.WinnerScore),
		fmt.Sprintf("%s takes it with %d. Rematch?", input.WinnerName, input.WinnerScore),
	}

	return &GetGameOverMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetUndoMessage returns a message for an undone score
func (s *service) GetUndoMessage(ctx context.Context, input *GetUndoMessageInput) (*GetUndoMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Reopened {
		return &GetUndoMessageOutput{
			Message: fmt.Sprintf("Removed %+d from %s. The game is back on!", input.Points, input.PlayerName),
		}, nil
	}

	messages := []string{
		fmt.Sprintf("Removed %+d from %s.", input.Points, input.PlayerName),
		fmt.Sprintf("Eraser out: %s loses the %+d.", input.PlayerName, input.Points),
		fmt.Sprintf("Let's pretend %s never scored %+d.", input.PlayerName, input.Points),
	}

	return &GetUndoMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeGameNotFound:
		messages = []string{
			"There's no game in this channel. Start one with /score new.",
			"No score sheet here yet. Try /score new.",
		}
	case ErrorTypeGameExists:
		messages = []string{
			"A game is already running in this channel. Finish or abandon it first.",
			"One sheet at a time! There's already a game here.",
		}
	case ErrorTypeGameOver:
		messages = []string{
			"This game is already over. Undo the last score or start a new game.",
			"The sheet is final. Undo to reopen it.",
		}
	case ErrorTypeGameFull:
		messages = []string{
			"The table is full.",
			"No more seats at this table.",
		}
	case ErrorTypeDuplicateName:
		messages = []string{
			fmt.Sprintf("%s is already on the sheet.", input.PlayerName),
		}
	case ErrorTypeScoringStarted:
		messages = []string{
			"Players can't leave once scoring has started.",
			fmt.Sprintf("Too late to back out now, %s. Scores are on the sheet.", input.PlayerName),
		}
	case ErrorTypeNotInGame:
		messages = []string{
			fmt.Sprintf("%s isn't in this game.", input.PlayerName),
		}
	default:
		messages = []string{
			"Something went wrong. Please try again.",
			"The pencil broke. Try that again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
