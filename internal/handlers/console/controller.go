package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/pterm/pterm"
)

// Menu entries shown next to the player names
const (
	OptionUndo       = "x  undo last score"
	OptionEditLedger = "e  edit ledger"
	OptionAddPlayer  = "+  add player"
	OptionQuit       = "q  quit"
)

var menuOptions = []string{OptionUndo, OptionEditLedger, OptionAddPlayer, OptionQuit}

var errQuit = errors.New("quit")

// Config holds configuration for the console controller
type Config struct {
	// Prompter reads input, required
	Prompter Prompter

	// DefaultTargets maps game keys to the suggested target
	DefaultTargets map[string]int

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Controller runs a score sheet at the terminal
type Controller struct {
	prompter       Prompter
	defaultTargets map[string]int
	logger         *slog.Logger
}

// New creates a console controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Prompter == nil {
		return nil, errors.New("prompter cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		prompter:       cfg.Prompter,
		defaultTargets: cfg.DefaultTargets,
		logger:         logger,
	}, nil
}

// Run sets up a game and plays it to the end. It returns the finished model,
// or the model so far if the user quits.
func (c *Controller) Run(ctx context.Context) (*scorer.Model, error) {
	model, err := c.setup()
	if err != nil {
		return nil, err
	}

	err = c.Play(ctx, model)
	if errors.Is(err, errQuit) {
		return model, nil
	}
	return model, err
}

// setup asks for the game, the target and the players
func (c *Controller) setup() (*scorer.Model, error) {
	keys := scorer.Names()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = scorer.DisplayName(key)
	}

	choice, err := c.prompter.Select("Which game?", names)
	if err != nil {
		return nil, err
	}

	gameType := strings.ToLower(choice)
	var model *scorer.Model
	for model == nil {
		target, err := c.readInt("Play to", strconv.Itoa(c.defaultTargets[gameType]))
		if err != nil {
			return nil, err
		}

		model, err = scorer.New(gameType, target)
		if errors.Is(err, scorer.ErrInvalidGameOverScore) {
			pterm.Error.Println("The target must be above zero")
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	for {
		name, err := c.prompter.Input("Player name (leave empty when done)", "")
		if err != nil {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			if len(model.Players()) == 0 {
				pterm.Warning.Println("Add at least one player")
				continue
			}
			break
		}

		c.addPlayer(model, name)
	}

	model.Start()
	c.logger.Info("game started", "game", model.Name(), "target", model.GameOverScore(), "players", len(model.Players()))
	return model, nil
}

// Play runs the prompt loop until the game is over or the user quits
func (c *Controller) Play(ctx context.Context, model *scorer.Model) error {
	for !model.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := renderBoard(model); err != nil {
			return err
		}

		if err := c.turn(model); err != nil {
			return err
		}
	}

	if err := renderBoard(model); err != nil {
		return err
	}
	renderWinner(model)

	winner, _ := model.WinnerNameAndScore()
	c.logger.Info("game over", "game", model.Name(), "winner", winner.Name, "score", winner.Score)
	return nil
}

// turn handles a single menu selection
func (c *Controller) turn(model *scorer.Model) error {
	options := append(model.PlayerNames(), menuOptions...)

	choice, err := c.prompter.Select("Score for", options)
	if err != nil {
		return err
	}

	switch choice {
	case OptionQuit:
		return errQuit
	case OptionUndo:
		move, ok := model.RollbackMove()
		if !ok {
			pterm.Warning.Println("Nothing to undo")
			return nil
		}
		pterm.Info.Printfln("Removed %+d from %s", move.Points, model.PlayerNames()[move.PlayerIndex])
		return nil
	case OptionEditLedger:
		return c.editLedger(model)
	case OptionAddPlayer:
		name, err := c.prompter.Input("Player name", "")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		c.addPlayer(model, name)
		return nil
	}

	idx, err := model.PlayerIndex(choice)
	if err != nil {
		return err
	}

	points, err := c.readInt(fmt.Sprintf("Points for %s", choice), "")
	if err != nil {
		return err
	}

	return model.AddScore(idx, points)
}

// addPlayer adds name to the model, reporting names it refuses
func (c *Controller) addPlayer(model *scorer.Model, name string) {
	if slices.Contains(menuOptions, name) {
		pterm.Error.Printfln("%q is a menu entry, pick another name", name)
		return
	}
	if err := model.AddPlayer(name); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// editLedger rewrites one player's rounds. Editing clears the undo log.
func (c *Controller) editLedger(model *scorer.Model) error {
	name, err := c.prompter.Select("Edit ledger for", model.PlayerNames())
	if err != nil {
		return err
	}

	ledgers := model.PlayerLedgers()
	current, ok := ledgers[name]
	if !ok {
		return scorer.ErrPlayerNotFound
	}

	for {
		answer, err := c.prompter.Input(fmt.Sprintf("Rounds for %s (comma separated, - for a missed round)", name), formatLedger(current))
		if err != nil {
			return err
		}

		ledger, err := parseLedger(answer)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		ledgers[name] = ledger
		if err := model.ReplaceLedgers(ledgers); err != nil {
			return err
		}
		pterm.Info.Printfln("Updated %s, undo history cleared", name)
		return nil
	}
}

// readInt prompts until the answer parses as an integer
func (c *Controller) readInt(label, defaultValue string) (int, error) {
	for {
		answer, err := c.prompter.Input(label, defaultValue)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return value, nil
		}
		pterm.Error.Printfln("%q is not a number", answer)
	}
}
