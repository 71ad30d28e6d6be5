package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/scorepad"
	"github.com/bwmarrin/discordgo"
)

// ScoreCommand handles the /score command
type ScoreCommand struct {
	BaseCommand
	scorepadService  scorepad.Service
	messagingService messaging.Service
	defaultTargets   map[string]int
}

// NewScoreCommand creates a new score command handler
func NewScoreCommand(scorepadService scorepad.Service, messagingService messaging.Service, defaultTargets map[string]int) *ScoreCommand {
	gameChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(scorer.Library))
	for _, key := range scorer.Names() {
		gameChoices = append(gameChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  scorer.DisplayName(key),
			Value: key,
		})
	}

	minTarget := 1.0

	return &ScoreCommand{
		BaseCommand: BaseCommand{
			Name:        "score",
			Description: "Keep score for card games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Start a new score sheet in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Which game to score",
							Required:    true,
							Choices:     gameChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Score that ends the game",
							MinValue:    &minTarget,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "play",
							Description: "Add yourself as a player (default true)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Add a player to the game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player name (defaults to you)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Remove a player before scoring starts",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player name (defaults to you)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start the game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Record a player's points for a hand",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "points",
							Description: "Points scored, negative if set",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Undo the last recorded score",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show the scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "wins",
					Description: "Show wins for this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the current game",
				},
			},
		},
		scorepadService:  scorepadService,
		messagingService: messagingService,
		defaultTargets:   defaultTargets,
	}
}

// Handle processes a Discord interaction for the score command
func (c *ScoreCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)
	channelID := i.ChannelID

	switch sub.Name {
	case "new":
		return c.handleNew(s, i, channelID, options)
	case "join":
		return c.handleJoin(s, i, channelID, options)
	case "leave":
		return c.handleLeave(s, i, channelID, options)
	case "start":
		return c.handleStart(s, i, channelID)
	case "add":
		return c.handleAdd(s, i, channelID, options)
	case "undo":
		return c.handleUndo(s, i, channelID)
	case "board":
		return c.handleBoard(s, i, channelID)
	case "wins":
		return c.handleWins(s, i, channelID)
	case "abandon":
		return c.handleAbandon(s, i, channelID)
	default:
		return errors.New("unknown subcommand")
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// nameOption returns the named string option, or the caller's display name
func nameOption(i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption, key string) string {
	if opt, ok := options[key]; ok {
		if name := strings.TrimSpace(opt.StringValue()); name != "" {
			return name
		}
	}
	_, username := interactionUser(i)
	return username
}

// handleNew handles the new subcommand
func (c *ScoreCommand) handleNew(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	gameType := options["game"].StringValue()
	target := c.defaultTargets[gameType]
	if opt, ok := options["target"]; ok {
		target = int(opt.IntValue())
	}

	createOutput, err := c.scorepadService.CreateGame(ctx, &scorepad.CreateGameInput{
		ChannelID:     channelID,
		CreatorID:     userID,
		GameType:      gameType,
		GameOverScore: target,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	board := createOutput.Scoreboard

	play := true
	if opt, ok := options["play"]; ok {
		play = opt.BoolValue()
	}

	if play {
		joinOutput, err := c.scorepadService.AddPlayer(ctx, &scorepad.AddPlayerInput{
			GameID:     createOutput.GameID,
			PlayerName: username,
		})
		if err != nil {
			log.Printf("Error joining game: %v", err)
			// Not critical, the creator can still join later
		} else {
			board = joinOutput.Scoreboard
		}
	}

	statusOutput, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		GameStatus:  board.Status,
		GameName:    board.GameName,
		PlayerCount: len(board.PlayerNames),
	})
	content := ""
	if err != nil {
		log.Printf("Error getting status message: %v", err)
	} else {
		content = statusOutput.Message
	}

	if err := RespondWithScoreboard(s, i, content, board); err != nil {
		log.Printf("Error sending scoreboard: %v", err)
		return err
	}

	c.trackResponse(s, i, createOutput.GameID)
	return nil
}

// trackResponse stores the interaction's response message as the game's scoreboard
func (c *ScoreCommand) trackResponse(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) {
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Error getting interaction response: %v", err)
		return
	}

	_, err = c.scorepadService.UpdateGameMessage(context.Background(), &scorepad.UpdateGameMessageInput{
		GameID:    gameID,
		MessageID: msg.ID,
	})
	if err != nil {
		log.Printf("Error updating game message ID: %v", err)
	}
}

// currentGame returns the game in the channel
func (c *ScoreCommand) currentGame(ctx context.Context, channelID string) (*scorepad.GetGameByChannelOutput, error) {
	return c.scorepadService.GetGameByChannel(ctx, &scorepad.GetGameByChannelInput{
		ChannelID: channelID,
	})
}

// handleJoin handles the join subcommand
func (c *ScoreCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	name := nameOption(i, options, "name")

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	joinOutput, err := c.scorepadService.AddPlayer(ctx, &scorepad.AddPlayerInput{
		GameID:     existingGame.Sheet.ID,
		PlayerName: name,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	updateGameMessage(s, c.scorepadService, existingGame.Sheet.ID)

	msgOutput, err := c.messagingService.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName: name,
		GameStatus: joinOutput.Scoreboard.Status,
	})
	if err != nil {
		log.Printf("Error getting join message: %v", err)
		return RespondWithMessage(s, i, fmt.Sprintf("%s joined the game.", name))
	}

	return RespondWithMessage(s, i, msgOutput.Message)
}

// handleLeave handles the leave subcommand
func (c *ScoreCommand) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	name := nameOption(i, options, "name")

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	_, err = c.scorepadService.RemovePlayer(ctx, &scorepad.RemovePlayerInput{
		GameID:     existingGame.Sheet.ID,
		PlayerName: name,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	updateGameMessage(s, c.scorepadService, existingGame.Sheet.ID)

	return RespondWithMessage(s, i, fmt.Sprintf("%s left the game.", name))
}

// handleStart handles the start subcommand
func (c *ScoreCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	startOutput, err := c.scorepadService.StartGame(ctx, &scorepad.StartGameInput{
		GameID: existingGame.Sheet.ID,
	})
	if err != nil {
		if errors.Is(err, scorepad.ErrNoPlayers) {
			return RespondWithEphemeralMessage(s, i, "Add at least one player with `/score join` first.")
		}
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	updateGameMessage(s, c.scorepadService, existingGame.Sheet.ID)

	board := startOutput.Scoreboard
	msgOutput, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		GameStatus:  board.Status,
		GameName:    board.GameName,
		PlayerCount: len(board.PlayerNames),
	})
	if err != nil {
		log.Printf("Error getting status message: %v", err)
		return RespondWithMessage(s, i, "Game started!")
	}

	return RespondWithMessage(s, i, msgOutput.Message)
}

// findPlayer returns the index of name, preferring an exact match over a
// case-insensitive one, or -1.
func findPlayer(names []string, name string) int {
	for idx, playerName := range names {
		if playerName == name {
			return idx
		}
	}
	for idx, playerName := range names {
		if strings.EqualFold(playerName, name) {
			return idx
		}
	}
	return -1
}

// handleAdd handles the add subcommand
func (c *ScoreCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	name := strings.TrimSpace(options["player"].StringValue())
	points := int(options["points"].IntValue())

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	playerIndex := findPlayer(existingGame.Scoreboard.PlayerNames, name)
	if playerIndex < 0 {
		return respondWithServiceError(s, i, c.messagingService, scorer.ErrPlayerNotFound, name)
	}
	name = existingGame.Scoreboard.PlayerNames[playerIndex]

	addOutput, err := c.scorepadService.AddScore(ctx, &scorepad.AddScoreInput{
		GameID:      existingGame.Sheet.ID,
		PlayerIndex: playerIndex,
		Points:      points,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, name)
	}

	updateGameMessage(s, c.scorepadService, existingGame.Sheet.ID)

	board := addOutput.Scoreboard
	if addOutput.GameEnded && board.Winner != nil {
		return c.respondGameOver(s, i, board)
	}

	msgOutput, err := c.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName: name,
		Points:     points,
		LowWins:    board.LowWins,
	})
	if err != nil {
		log.Printf("Error getting score message: %v", err)
		return RespondWithMessage(s, i, fmt.Sprintf("%s: %+d", name, points))
	}

	return RespondWithMessage(s, i, msgOutput.Message)
}

// respondGameOver announces the winner with the final scoreboard
func (c *ScoreCommand) respondGameOver(s *discordgo.Session, i *discordgo.InteractionCreate, board *scorepad.Scoreboard) error {
	msgOutput, err := c.messagingService.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
		GameName:    board.GameName,
		WinnerName:  board.Winner.Name,
		WinnerScore: board.Winner.Score,
	})
	if err != nil {
		log.Printf("Error getting game over message: %v", err)
		return RespondWithScoreboard(s, i, "Game over!", board)
	}

	return RespondWithScoreboard(s, i, fmt.Sprintf("**%s** %s", msgOutput.Title, msgOutput.Message), board)
}

// handleUndo handles the undo subcommand
func (c *ScoreCommand) handleUndo(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	content, err := undoLastScore(ctx, c.scorepadService, c.messagingService, existingGame.Sheet.ID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	updateGameMessage(s, c.scorepadService, existingGame.Sheet.ID)

	return RespondWithMessage(s, i, content)
}

// undoLastScore rolls back the last score and describes what happened
func undoLastScore(ctx context.Context, scorepadService scorepad.Service, messagingService messaging.Service, gameID string) (string, error) {
	rollbackOutput, err := scorepadService.RollbackMove(ctx, &scorepad.RollbackMoveInput{
		GameID: gameID,
	})
	if err != nil {
		return "", err
	}

	if !rollbackOutput.Undone {
		return "Nothing to undo.", nil
	}

	board := rollbackOutput.Scoreboard
	playerName := ""
	if idx := rollbackOutput.Move.PlayerIndex; idx < len(board.PlayerNames) {
		playerName = board.PlayerNames[idx]
	}

	msgOutput, err := messagingService.GetUndoMessage(ctx, &messaging.GetUndoMessageInput{
		PlayerName: playerName,
		Points:     rollbackOutput.Move.Points,
		Reopened:   rollbackOutput.Reopened,
	})
	if err != nil {
		log.Printf("Error getting undo message: %v", err)
		return fmt.Sprintf("Removed %+d from %s.", rollbackOutput.Move.Points, playerName), nil
	}

	return msgOutput.Message, nil
}

// handleBoard posts a fresh scoreboard and makes it the tracked message
func (c *ScoreCommand) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	// Strip the buttons from the previous scoreboard so only one is live
	retireGameMessage(s, existingGame.Sheet.ChannelID, existingGame.Sheet.MessageID)

	if err := RespondWithScoreboard(s, i, "", existingGame.Scoreboard); err != nil {
		log.Printf("Error sending scoreboard: %v", err)
		return err
	}

	c.trackResponse(s, i, existingGame.Sheet.ID)
	return nil
}

// handleWins handles the wins subcommand
func (c *ScoreCommand) handleWins(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	leaderboard, err := c.scorepadService.GetChannelLeaderboard(ctx, &scorepad.GetChannelLeaderboardInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Printf("Error getting channel leaderboard: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get leaderboard: %v", err))
	}

	return RespondWithEmbed(s, i, "🏆 Channel Wins 🏆", renderLeaderboard(leaderboard), nil)
}

// handleAbandon handles the abandon subcommand
func (c *ScoreCommand) handleAbandon(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	existingGame, err := c.currentGame(ctx, channelID)
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, username)
	}

	_, err = c.scorepadService.AbandonGame(ctx, &scorepad.AbandonGameInput{
		GameID: existingGame.Sheet.ID,
	})
	if err != nil {
		log.Printf("Error abandoning game: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to abandon game: %v", err))
	}

	retireGameMessage(s, existingGame.Sheet.ChannelID, existingGame.Sheet.MessageID)

	return RespondWithMessage(s, i, "Game abandoned. Start a new one with `/score new`.")
}
