package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

// Model is the terminal renderer for a hot-seat game.
type Model struct {
	game   *domain.GameController
	cursor int
	status string
	isErr  bool
	// winning board, shown until the next drop
	frozen   *domain.Grid
	quitting bool
	logger   *log.Logger
}

func New(game *domain.GameController, logger *log.Logger) *Model {
	return &Model{
		game:   game,
		cursor: domain.Columns / 2,
		logger: logger.WithPrefix("tui"),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < domain.Columns-1 {
			m.cursor++
		}
	case "enter", " ", "down", "j":
		m.drop(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7":
		m.cursor = int(key.String()[0] - '1')
		m.drop(m.cursor)
	}
	return m, nil
}

func (m *Model) drop(column int) {
	m.frozen = nil
	result, err := m.game.PlayRound(column)
	if err != nil {
		m.isErr = true
		switch {
		case errors.Is(err, domain.ErrColumnFull):
			m.status = fmt.Sprintf("Column %d is full, pick another one", column+1)
		default:
			m.status = err.Error()
		}
		m.logger.Debug("Move rejected", "column", column, "err", err)
		return
	}

	m.isErr = false
	if result.Won {
		m.frozen = &result.Board
		m.status = fmt.Sprintf("%s wins! The board is cleared for the next game.", result.Player.Name)
		m.logger.Info("Game won", "winner", result.Player.Name, "row", result.Row, "column", result.Column)
		return
	}
	m.status = ""
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.game.View()
	board := view.Board
	if m.frozen != nil {
		board = *m.frozen
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Connect Four"))
	sb.WriteString("\n\n")

	var grid strings.Builder
	for c := 0; c < domain.Columns; c++ {
		if c == m.cursor {
			grid.WriteString(CursorStyle.Render("▼"))
		} else {
			grid.WriteString(" ")
		}
		if c < domain.Columns-1 {
			grid.WriteString(" ")
		}
	}
	grid.WriteString("\n")
	for r := range board {
		for c, token := range board[r] {
			grid.WriteString(TokenStyle(token).Render(tokenGlyph(token)))
			if c < domain.Columns-1 {
				grid.WriteString(" ")
			}
		}
		grid.WriteString("\n")
	}
	grid.WriteString(InfoStyle.Render("1 2 3 4 5 6 7"))
	sb.WriteString(BoardStyle.Render(grid.String()))
	sb.WriteString("\n\n")

	active := view.ActivePlayer
	sb.WriteString(fmt.Sprintf("%s %s's turn\n", TokenStyle(active.Token).Render(tokenGlyph(active.Token)), active.Name))

	if m.status != "" {
		if m.isErr {
			sb.WriteString(ErrorStyle.Render(m.status))
		} else {
			sb.WriteString(SuccessStyle.Render(m.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(InfoStyle.Render("←/→ move · enter drop · 1-7 drop in column · q quit"))
	sb.WriteString("\n")
	return sb.String()
}
