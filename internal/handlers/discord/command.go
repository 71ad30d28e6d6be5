package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/scorepad"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, fields []*discordgo.MessageEmbedField) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorActive,
		Fields:      fields,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// RespondWithScoreboard posts the scoreboard with its buttons
func RespondWithScoreboard(s *discordgo.Session, i *discordgo.InteractionCreate, content string, board *scorepad.Scoreboard) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{renderScoreboardEmbed(board)},
			Components: renderScoreboardComponents(board),
		},
	})
}

// RespondWithError sends an error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage,
		Color:       0xff0000, // Red color
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUser returns the user ID and display name of whoever triggered the interaction
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// errorType maps service and rule errors to a messaging error type
func errorType(err error) string {
	switch {
	case errors.Is(err, scorepad.ErrGameNotFound):
		return messaging.ErrorTypeGameNotFound
	case errors.Is(err, scorepad.ErrGameAlreadyExists):
		return messaging.ErrorTypeGameExists
	case errors.Is(err, scorepad.ErrGameOver):
		return messaging.ErrorTypeGameOver
	case errors.Is(err, scorepad.ErrGameFull):
		return messaging.ErrorTypeGameFull
	case errors.Is(err, scorer.ErrDuplicateName):
		return messaging.ErrorTypeDuplicateName
	case errors.Is(err, scorer.ErrScoringStarted):
		return messaging.ErrorTypeScoringStarted
	case errors.Is(err, scorer.ErrPlayerNotFound):
		return messaging.ErrorTypeNotInGame
	default:
		return ""
	}
}

// respondWithServiceError explains a failed operation to the user
func respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, msgService messaging.Service, err error, playerName string) error {
	kind := errorType(err)
	if kind == "" {
		log.Printf("Error handling interaction: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Error: %v", err))
	}

	output, msgErr := msgService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType:  kind,
		PlayerName: playerName,
	})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithError(s, i, output.Message)
}
