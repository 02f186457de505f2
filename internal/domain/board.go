package domain

import "strings"

// Grid is a snapshot of token values, row 0 at the top.
type Grid [Rows][Columns]Token

type Board struct {
	cells [Rows][Columns]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Grid returns a copy of the board, so callers can't bypass DropToken.
func (b *Board) Grid() Grid {
	var g Grid
	for r := range b.cells {
		for c := range b.cells[r] {
			g[r][c] = b.cells[r][c].Value()
		}
	}
	return g
}

func (b *Board) Cell(row, column int) (Token, error) {
	if !inBounds(row, column) {
		return Empty, ErrOutOfRange
	}
	return b.cells[row][column].Value(), nil
}

// DropToken lets token fall down column and returns the row it landed on.
func (b *Board) DropToken(column int, token Token) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}

	// here row 0 is the top, so the first empty cell from the bottom is the landing row
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column].Value() == Empty {
			b.cells[row][column].SetValue(token)
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsColumnFull(column int) bool {
	if column < 0 || column >= Columns {
		return true
	}
	return b.cells[0][column].Value() != Empty
}

// ValidColumns lists the columns that still accept a token.
func (b *Board) ValidColumns() []int {
	columns := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if !b.IsColumnFull(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// Clear empties every cell in place.
func (b *Board) Clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c].SetValue(Empty)
		}
	}
}

func (b *Board) String() string {
	return b.Grid().String()
}

func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		for c, token := range g[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch token {
			case PlayerOne:
				sb.WriteByte('1')
			case PlayerTwo:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows converts the grid into plain ints for encoders that expect slices.
func (g Grid) Rows() [][]int {
	out := make([][]int, Rows)
	for r := range g {
		out[r] = make([]int, Columns)
		for c, token := range g[r] {
			out[r][c] = int(token)
		}
	}
	return out
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}
