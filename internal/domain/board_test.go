package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSetValue(t *testing.T) {
	var c Cell
	assert.Equal(t, Empty, c.Value())

	c.SetValue(PlayerTwo)
	assert.Equal(t, PlayerTwo, c.Value())
	assert.Equal(t, PlayerTwo, c.Value(), "reads must not change the cell")
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			token, err := b.Cell(r, c)
			require.NoError(t, err)
			assert.Equal(t, Empty, token)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidColumns())
}

func TestDropTokenLandsOnLowestEmptyRow(t *testing.T) {
	b := NewBoard()
	for c := 0; c < Columns; c++ {
		for want := Rows - 1; want >= 0; want-- {
			row, err := b.DropToken(c, PlayerOne)
			require.NoError(t, err)
			assert.Equal(t, want, row, "column %d", c)
		}
	}
}

func TestDropTokenInvalidColumn(t *testing.T) {
	b := NewBoard()
	before := b.Grid()

	for _, column := range []int{-1, Columns, 100} {
		row, err := b.DropToken(column, PlayerOne)
		assert.ErrorIs(t, err, ErrInvalidColumn)
		assert.Equal(t, -1, row)
	}
	assert.Equal(t, before, b.Grid())
}

// fill a column, the 7th drop is rejected and the grid stays as it was
func TestDropTokenColumnFull(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		token := PlayerOne
		if i%2 == 1 {
			token = PlayerTwo
		}
		_, err := b.DropToken(3, token)
		require.NoError(t, err)
	}
	before := b.Grid()

	row, err := b.DropToken(3, PlayerOne)
	require.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, -1, row)
	assert.Equal(t, before, b.Grid())
	assert.True(t, b.IsColumnFull(3))
	assert.NotContains(t, b.ValidColumns(), 3)
}

func TestGridIsASnapshot(t *testing.T) {
	b := NewBoard()
	g := b.Grid()
	g[5][0] = PlayerTwo

	token, err := b.Cell(5, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, token)
	assert.Equal(t, b.Grid(), b.Grid())
}

func TestCellOutOfRange(t *testing.T) {
	b := NewBoard()
	_, err := b.Cell(Rows, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.Cell(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestVerticalWinAtRowTwo(t *testing.T) {
	b := NewBoard()
	var row int
	var err error
	for i := 0; i < 3; i++ {
		row, err = b.DropToken(0, PlayerOne)
		require.NoError(t, err)
		assert.False(t, b.IsWinningMove(row, 0, PlayerOne))
	}

	row, err = b.DropToken(0, PlayerOne)
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.True(t, b.IsWinningMove(row, 0, PlayerOne))
	assert.False(t, b.IsWinningMove(row, 0, PlayerTwo))
}

func TestIsWinningMove(t *testing.T) {
	tests := []struct {
		name   string
		cells  [][3]int // row, column, token
		row    int
		column int
		token  Token
		want   bool
	}{
		{
			name:   "horizontal",
			cells:  [][3]int{{5, 2, 1}, {5, 3, 1}, {5, 4, 1}, {5, 5, 1}},
			row:    5,
			column: 5,
			token:  PlayerOne,
			want:   true,
		},
		{
			name:   "vertical in the top rows",
			cells:  [][3]int{{0, 6, 2}, {1, 6, 2}, {2, 6, 2}, {3, 6, 2}},
			row:    0,
			column: 6,
			token:  PlayerTwo,
			want:   true,
		},
		{
			name:   "rising diagonal into the top right corner",
			cells:  [][3]int{{3, 3, 1}, {2, 4, 1}, {1, 5, 1}, {0, 6, 1}},
			row:    0,
			column: 6,
			token:  PlayerOne,
			want:   true,
		},
		{
			name:   "horizontal three",
			cells:  [][3]int{{5, 2, 1}, {5, 3, 1}, {5, 4, 1}},
			row:    5,
			column: 4,
			token:  PlayerOne,
			want:   false,
		},
		{
			name:   "horizontal broken",
			cells:  [][3]int{{5, 0, 1}, {5, 1, 1}, {5, 2, 2}, {5, 3, 1}, {5, 4, 1}},
			row:    5,
			column: 4,
			token:  PlayerOne,
			want:   false,
		},
		{
			name:   "five in a row still wins",
			cells:  [][3]int{{0, 1, 2}, {0, 2, 2}, {0, 3, 2}, {0, 4, 2}, {0, 5, 2}},
			row:    0,
			column: 3,
			token:  PlayerTwo,
			want:   true,
		},
		{
			name:   "rising diagonal",
			cells:  [][3]int{{5, 0, 1}, {4, 1, 1}, {3, 2, 1}, {2, 3, 1}},
			row:    2,
			column: 3,
			token:  PlayerOne,
			want:   true,
		},
		{
			name:   "rising diagonal from the middle",
			cells:  [][3]int{{5, 0, 1}, {4, 1, 1}, {3, 2, 1}, {2, 3, 1}},
			row:    4,
			column: 1,
			token:  PlayerOne,
			want:   true,
		},
		{
			name:   "falling diagonal",
			cells:  [][3]int{{1, 2, 2}, {2, 3, 2}, {3, 4, 2}, {4, 5, 2}},
			row:    1,
			column: 2,
			token:  PlayerTwo,
			want:   true,
		},
		{
			name:   "falling diagonal at the right edge",
			cells:  [][3]int{{2, 3, 1}, {3, 4, 1}, {4, 5, 1}, {5, 6, 1}},
			row:    5,
			column: 6,
			token:  PlayerOne,
			want:   true,
		},
		{
			name:   "diagonal of the other token",
			cells:  [][3]int{{5, 0, 1}, {4, 1, 1}, {3, 2, 1}, {2, 3, 1}},
			row:    2,
			column: 3,
			token:  PlayerTwo,
			want:   false,
		},
		{
			name:   "empty token never wins",
			cells:  nil,
			row:    5,
			column: 0,
			token:  Empty,
			want:   false,
		},
		{
			name:   "out of range",
			cells:  [][3]int{{5, 0, 1}, {5, 1, 1}, {5, 2, 1}, {5, 3, 1}},
			row:    Rows,
			column: 0,
			token:  PlayerOne,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for _, cell := range tt.cells {
				b.cells[cell[0]][cell[1]].SetValue(Token(cell[2]))
			}
			before := b.Grid()

			assert.Equal(t, tt.want, b.IsWinningMove(tt.row, tt.column, tt.token))
			assert.Equal(t, before, b.Grid(), "win check must not mutate the board")
		})
	}
}

func TestClearResetsEveryCell(t *testing.T) {
	b := NewBoard()
	for c := 0; c < 4; c++ {
		_, err := b.DropToken(c, PlayerOne)
		require.NoError(t, err)
	}
	require.True(t, b.IsWinningMove(5, 3, PlayerOne))

	b.Clear()

	assert.Equal(t, Grid{}, b.Grid())
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			assert.False(t, b.IsWinningMove(r, c, PlayerOne))
			assert.False(t, b.IsWinningMove(r, c, PlayerTwo))
		}
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	_, _ = b.DropToken(0, PlayerOne)
	_, _ = b.DropToken(6, PlayerTwo)

	want := ". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		"1 . . . . . 2\n"
	assert.Equal(t, want, b.String())
}

func TestGridRows(t *testing.T) {
	b := NewBoard()
	_, _ = b.DropToken(2, PlayerTwo)

	rows := b.Grid().Rows()
	require.Len(t, rows, Rows)
	require.Len(t, rows[0], Columns)
	assert.Equal(t, 2, rows[5][2])
	assert.Equal(t, 0, rows[4][2])
}
