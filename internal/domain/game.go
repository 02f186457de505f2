package domain

import (
	"fmt"
	"strings"
)

// StartPolicy decides who opens the next game after a win.
type StartPolicy int

const (
	// WinnerStarts keeps the winner as the active player.
	WinnerStarts StartPolicy = iota
	// LoserStarts hands the first move of the next game to the other player.
	LoserStarts
)

func (p StartPolicy) String() string {
	if p == LoserStarts {
		return "loser"
	}
	return "winner"
}

func ParseStartPolicy(s string) (StartPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "winner":
		return WinnerStarts, nil
	case "loser":
		return LoserStarts, nil
	}
	return WinnerStarts, fmt.Errorf("%w: %q", ErrUnknownStartPolicy, s)
}

// RoundResult describes one completed round. Board is the grid right after
// the drop, before a winning board gets cleared.
type RoundResult struct {
	Player Player
	Column int
	Row    int
	Won    bool
	Board  Grid
}

// GameController sequences rounds between two players on one board.
// It is not safe for concurrent use.
type GameController struct {
	board       *Board
	players     [2]Player
	active      int
	startPolicy StartPolicy
	rounds      int
	gamesWon    int
}

type Option func(*GameController)

func WithPlayerNames(one, two string) Option {
	return func(g *GameController) {
		if one != "" {
			g.players[0].Name = one
		}
		if two != "" {
			g.players[1].Name = two
		}
	}
}

func WithNextRoundStarter(policy StartPolicy) Option {
	return func(g *GameController) {
		g.startPolicy = policy
	}
}

func NewGameController(opts ...Option) *GameController {
	g := &GameController{
		board: NewBoard(),
		players: [2]Player{
			{Name: DefaultPlayerOneName, Token: PlayerOne},
			{Name: DefaultPlayerTwoName, Token: PlayerTwo},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlayRound drops the active player's token into column. A rejected drop
// leaves the board and the turn untouched.
func (g *GameController) PlayRound(column int) (RoundResult, error) {
	player := g.players[g.active]

	row, err := g.board.DropToken(column, player.Token)
	if err != nil {
		return RoundResult{}, fmt.Errorf("column %d: %w", column, err)
	}
	g.rounds++

	result := RoundResult{
		Player: player,
		Column: column,
		Row:    row,
		Won:    g.board.IsWinningMove(row, column, player.Token),
		Board:  g.board.Grid(),
	}

	if result.Won {
		g.gamesWon++
		g.board.Clear()
		if g.startPolicy == LoserStarts {
			g.switchPlayerTurn()
		}
		return result, nil
	}

	g.switchPlayerTurn()
	return result, nil
}

func (g *GameController) switchPlayerTurn() {
	g.active = 1 - g.active
}

func (g *GameController) ActivePlayer() Player {
	return g.players[g.active]
}

func (g *GameController) Players() [2]Player {
	return g.players
}

func (g *GameController) Board() Grid {
	return g.board.Grid()
}

func (g *GameController) ValidColumns() []int {
	return g.board.ValidColumns()
}

func (g *GameController) StartPolicy() StartPolicy {
	return g.startPolicy
}

// Rounds counts accepted drops since the controller was created.
func (g *GameController) Rounds() int {
	return g.rounds
}

// GamesWon counts finished games since the controller was created.
func (g *GameController) GamesWon() int {
	return g.gamesWon
}
