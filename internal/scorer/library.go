package scorer

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Constructor builds a player-less model with the given target
type Constructor func(gameOverScore int) (*Model, error)

const (
	SetbackKey = "setback"
	SkyjoKey   = "skyjo"
)

var variants = map[string]Variant{
	SetbackKey: Setback{},
	SkyjoKey:   Skyjo{},
}

// Library maps game keys to their constructors
var Library = map[string]Constructor{
	SetbackKey: NewSetback,
	SkyjoKey:   NewSkyjo,
}

// NewSetback creates a Setback model
func NewSetback(gameOverScore int) (*Model, error) {
	return newModel(SetbackKey, Setback{}, gameOverScore)
}

// NewSkyjo creates a Skyjo model
func NewSkyjo(gameOverScore int) (*Model, error) {
	return newModel(SkyjoKey, Skyjo{}, gameOverScore)
}

// New creates a model for the named game. Keys are case-insensitive.
func New(gameType string, gameOverScore int) (*Model, error) {
	ctor, ok := Library[strings.ToLower(gameType)]
	if !ok {
		return nil, ErrUnknownGame
	}
	return ctor(gameOverScore)
}

// Load wraps a previously persisted sheet in a model
func Load(sheet *models.ScoreSheet) (*Model, error) {
	if sheet == nil {
		return nil, ErrNilSheet
	}
	variant, ok := variants[strings.ToLower(sheet.GameType)]
	if !ok {
		return nil, ErrUnknownGame
	}
	if sheet.GameOverScore <= 0 {
		return nil, ErrInvalidGameOverScore
	}
	return &Model{variant: variant, sheet: sheet}, nil
}

// DisplayName returns the display name of a game key, or the key itself if unknown
func DisplayName(gameType string) string {
	if v, ok := variants[strings.ToLower(gameType)]; ok {
		return v.Name()
	}
	return gameType
}

// Names returns the registered game keys in sorted order
func Names() []string {
	names := make([]string, 0, len(Library))
	for name := range Library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
