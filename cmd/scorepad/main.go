package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/scorepad/internal/config"
	"github.com/KirkDiggler/scorepad/internal/handlers/console"
	"github.com/pterm/pterm"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller, err := console.New(&console.Config{
		Prompter:       console.NewPtermPrompter(),
		DefaultTargets: cfg.DefaultTargets,
		Logger:         logger,
	})
	if err != nil {
		pterm.Error.Printfln("Failed to create controller: %v", err)
		os.Exit(1)
	}

	pterm.DefaultHeader.WithFullWidth().Println("Score Pad")

	if _, err := controller.Run(ctx); err != nil {
		pterm.Error.Printfln("Game ended: %v", err)
		os.Exit(1)
	}

	pterm.Println("Thanks for playing...")
}
