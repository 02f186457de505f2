package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/internal/logging"
	"github.com/iamasit07/hotseat-connect4/internal/tui"
)

type PlayCmd struct {
	LogFile string `help:"Write logs to this file (the terminal is busy drawing the board)" default:"connect4.log"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.gameConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(logFile, cfg.LogLevel, cfg.LogFormat)
	controller := domain.NewGameController(cfg.Game.Options()...)
	logger.Info("Starting terminal game",
		"player_one", cfg.Game.PlayerOneName,
		"player_two", cfg.Game.PlayerTwoName,
		"next_round_starter", cfg.Game.NextRoundStarter)

	if _, err := tea.NewProgram(tui.New(controller, logger)).Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}
