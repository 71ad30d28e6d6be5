package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/scorepad"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	scorepadService  scorepad.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Score pad service
	ScorepadService scorepad.Service

	// Messaging service for flavour text
	MessagingService messaging.Service

	// DefaultTargets maps game keys to the target used when /score new omits one
	DefaultTargets map[string]int
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ScorepadService == nil {
		return nil, errors.New("scorepad service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		scorepadService:  cfg.ScorepadService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	scoreCmd := NewScoreCommand(b.scorepadService, b.messagingService, b.config.DefaultTargets)
	if err := b.RegisterCommand(scoreCmd); err != nil {
		return fmt.Errorf("failed to register score command: %w", err)
	}

	b.refreshActiveGames()

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// refreshActiveGames redraws the scoreboard of every open game so messages
// posted before a restart show current buttons
func (b *Bot) refreshActiveGames() {
	activeOutput, err := b.scorepadService.ListActiveGames(context.Background(), &scorepad.ListActiveGamesInput{})
	if err != nil {
		log.Printf("Error listing active games: %v", err)
		return
	}

	refreshed := 0
	for _, game := range activeOutput.Games {
		if game.Sheet.MessageID == "" {
			continue
		}
		_, err := b.session.ChannelMessageEditComplex(renderGameMessage(game.Sheet, game.Scoreboard))
		if err != nil {
			log.Printf("Error refreshing game %s: %v", game.Sheet.ID, err)
			continue
		}
		refreshed++
	}

	log.Printf("Refreshed %d of %d active games", refreshed, len(activeOutput.Games))
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// Button IDs
const (
	ButtonJoinGame  = "score_join"
	ButtonStartGame = "score_start"
	ButtonUndo      = "score_undo"
	ButtonRematch   = "score_rematch"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	_, username := interactionUser(i)

	ctx := context.Background()
	existingGame, err := b.scorepadService.GetGameByChannel(ctx, &scorepad.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, username)
	}

	switch customID {
	case ButtonJoinGame:
		return b.handleJoinButton(s, i, existingGame, username)
	case ButtonStartGame:
		return b.handleStartButton(s, i, existingGame, username)
	case ButtonUndo:
		return b.handleUndoButton(s, i, existingGame, username)
	case ButtonRematch:
		return b.handleRematchButton(s, i, existingGame, username)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// respondUpdateScoreboard redraws the clicked scoreboard in place
func respondUpdateScoreboard(s *discordgo.Session, i *discordgo.InteractionCreate, content string, board *scorepad.Scoreboard) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{renderScoreboardEmbed(board)},
			Components: renderScoreboardComponents(board),
		},
	})
}

// handleJoinButton adds the clicking user to the game
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, existingGame *scorepad.GetGameByChannelOutput, username string) error {
	ctx := context.Background()

	joinOutput, err := b.scorepadService.AddPlayer(ctx, &scorepad.AddPlayerInput{
		GameID:     existingGame.Sheet.ID,
		PlayerName: username,
	})
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, username)
	}

	content := ""
	msgOutput, err := b.messagingService.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName: username,
		GameStatus: joinOutput.Scoreboard.Status,
	})
	if err != nil {
		log.Printf("Error getting join message: %v", err)
	} else {
		content = msgOutput.Message
	}

	return respondUpdateScoreboard(s, i, content, joinOutput.Scoreboard)
}

// handleStartButton starts the game
func (b *Bot) handleStartButton(s *discordgo.Session, i *discordgo.InteractionCreate, existingGame *scorepad.GetGameByChannelOutput, username string) error {
	startOutput, err := b.scorepadService.StartGame(context.Background(), &scorepad.StartGameInput{
		GameID: existingGame.Sheet.ID,
	})
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, username)
	}

	return respondUpdateScoreboard(s, i, fmt.Sprintf("%s started the game.", username), startOutput.Scoreboard)
}

// handleUndoButton rolls back the last score
func (b *Bot) handleUndoButton(s *discordgo.Session, i *discordgo.InteractionCreate, existingGame *scorepad.GetGameByChannelOutput, username string) error {
	ctx := context.Background()

	content, err := undoLastScore(ctx, b.scorepadService, b.messagingService, existingGame.Sheet.ID)
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, username)
	}

	boardOutput, err := b.scorepadService.GetScoreboard(ctx, &scorepad.GetScoreboardInput{
		GameID: existingGame.Sheet.ID,
	})
	if err != nil {
		log.Printf("Error getting scoreboard: %v", err)
		return RespondWithEphemeralMessage(s, i, content)
	}

	return respondUpdateScoreboard(s, i, content, boardOutput.Scoreboard)
}

// handleRematchButton starts a new game with the same rules and players
func (b *Bot) handleRematchButton(s *discordgo.Session, i *discordgo.InteractionCreate, existingGame *scorepad.GetGameByChannelOutput, username string) error {
	ctx := context.Background()
	previous := existingGame.Scoreboard

	if existingGame.Sheet.Status != models.SheetStatusCompleted {
		return RespondWithEphemeralMessage(s, i, "Finish the current game before starting a rematch.")
	}

	userID, _ := interactionUser(i)
	createOutput, err := b.scorepadService.CreateGame(ctx, &scorepad.CreateGameInput{
		ChannelID:     i.ChannelID,
		CreatorID:     userID,
		GameType:      previous.GameType,
		GameOverScore: previous.GameOverScore,
	})
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, username)
	}

	board := createOutput.Scoreboard
	for _, name := range previous.PlayerNames {
		joinOutput, err := b.scorepadService.AddPlayer(ctx, &scorepad.AddPlayerInput{
			GameID:     createOutput.GameID,
			PlayerName: name,
		})
		if err != nil {
			log.Printf("Error adding %s to rematch: %v", name, err)
			continue
		}
		board = joinOutput.Scoreboard
	}

	// Keep the finished scoreboard as it was, just without buttons
	retireGameMessage(s, existingGame.Sheet.ChannelID, existingGame.Sheet.MessageID)

	if err := RespondWithScoreboard(s, i, "Rematch!", board); err != nil {
		log.Printf("Error sending scoreboard: %v", err)
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Error getting interaction response: %v", err)
		return nil
	}

	_, err = b.scorepadService.UpdateGameMessage(ctx, &scorepad.UpdateGameMessageInput{
		GameID:    createOutput.GameID,
		MessageID: msg.ID,
	})
	if err != nil {
		log.Printf("Error updating game message ID: %v", err)
	}

	return nil
}

// updateGameMessage redraws the game's tracked scoreboard message in the channel
func updateGameMessage(s *discordgo.Session, scorepadService scorepad.Service, gameID string) {
	gameOutput, err := scorepadService.GetGame(context.Background(), &scorepad.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		log.Printf("Error getting game for message update: %v", err)
		return
	}

	if gameOutput.Sheet.MessageID == "" {
		log.Printf("Game has no message ID, cannot update")
		return
	}

	_, err = s.ChannelMessageEditComplex(renderGameMessage(gameOutput.Sheet, gameOutput.Scoreboard))
	if err != nil {
		log.Printf("Error updating game message: %v", err)
	}
}

// retireGameMessage removes the buttons from an old scoreboard message
func retireGameMessage(s *discordgo.Session, channelID, messageID string) {
	if messageID == "" {
		return
	}

	components := []discordgo.MessageComponent{}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: &components,
	})
	if err != nil {
		log.Printf("Error retiring game message: %v", err)
	}
}
