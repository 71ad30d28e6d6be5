package console

import (
	"github.com/pterm/pterm"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_prompter.go github.com/KirkDiggler/scorepad/internal/handlers/console Prompter

// Prompter asks the person at the keyboard for input
type Prompter interface {
	// Select returns one of options
	Select(label string, options []string) (string, error)

	// Input returns a line of free text, or defaultValue when left empty
	Input(label, defaultValue string) (string, error)
}

// PtermPrompter prompts with pterm's interactive printers
type PtermPrompter struct{}

// NewPtermPrompter creates a terminal prompter
func NewPtermPrompter() *PtermPrompter {
	return &PtermPrompter{}
}

// Select shows an interactive select menu
func (p *PtermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
}

// Input shows an interactive text input
func (p *PtermPrompter) Input(label, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(label).
		WithDefaultValue(defaultValue).
		Show()
}
