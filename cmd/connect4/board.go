package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

type BoardCmd struct {
	Moves []int `arg:"" optional:"" help:"Columns to play in order, 1-7"`

	out io.Writer
}

func (c *BoardCmd) Run(g *Globals) error {
	cfg, err := g.gameConfig()
	if err != nil {
		return err
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return replay(out, domain.NewGameController(cfg.Game.Options()...), c.Moves)
}

// replay plays 1-based columns in order and prints each round, then the board.
func replay(w io.Writer, g *domain.GameController, moves []int) error {
	for _, move := range moves {
		active := g.ActivePlayer()
		result, err := g.PlayRound(move - 1)
		if err != nil {
			fmt.Fprintf(w, "%s -> column %d rejected: %v\n", active.Name, move, err)
			continue
		}
		fmt.Fprintf(w, "%s -> column %d, row %d\n", active.Name, move, result.Row+1)
		if result.Won {
			fmt.Fprintf(w, "%s wins!\n%s", result.Player.Name, result.Board)
		}
	}

	fmt.Fprintf(w, "%s%s to move\n", g.Board(), g.ActivePlayer().Name)
	return nil
}
