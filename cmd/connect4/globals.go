package main

import (
	"fmt"

	"github.com/iamasit07/hotseat-connect4/internal/config"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

type Globals struct {
	Config           string `help:"HCL config file" type:"existingfile"`
	PlayerOne        string `help:"Name of the first player"`
	PlayerTwo        string `help:"Name of the second player"`
	NextRoundStarter string `help:"Who opens the game after a win (winner or loser)"`
	LogLevel         string `help:"Log level"`
}

// gameConfig resolves the game settings: environment, then config file, then flags.
func (g *Globals) gameConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if g.Config != "" {
		if err := cfg.ApplyFile(g.Config); err != nil {
			return nil, err
		}
	}

	if g.PlayerOne != "" {
		cfg.Game.PlayerOneName = g.PlayerOne
	}
	if g.PlayerTwo != "" {
		cfg.Game.PlayerTwoName = g.PlayerTwo
	}
	if g.NextRoundStarter != "" {
		policy, err := domain.ParseStartPolicy(g.NextRoundStarter)
		if err != nil {
			return nil, fmt.Errorf("--next-round-starter: %w", err)
		}
		cfg.Game.NextRoundStarter = policy
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, nil
}
