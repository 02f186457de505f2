package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	BoardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C6FD8")).
			Padding(0, 1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PlayerOneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	PlayerTwoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// TokenStyle maps a cell value to its style: 0 empty, 1 player one, 2 player two.
func TokenStyle(token domain.Token) lipgloss.Style {
	switch token {
	case domain.PlayerOne:
		return PlayerOneStyle
	case domain.PlayerTwo:
		return PlayerTwoStyle
	}
	return EmptyStyle
}

func tokenGlyph(token domain.Token) string {
	if token == domain.Empty {
		return "·"
	}
	return "●"
}
