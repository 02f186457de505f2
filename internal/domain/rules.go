package domain

// directions are the four line orientations a win can lie on, each given as
// a single step of (deltaRow, deltaCol).
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

// IsWinningMove reports whether token has four in a row on any line
// passing through (row, column). The board is not modified.
func (b *Board) IsWinningMove(row, column int, token Token) bool {
	if token == Empty || !inBounds(row, column) {
		return false
	}

	for _, d := range directions {
		// back up to the edge so the whole line through (row, column) is scanned
		r, c := row, column
		for inBounds(r-d[0], c-d[1]) {
			r -= d[0]
			c -= d[1]
		}
		if b.runAlong(r, c, d[0], d[1], token) {
			return true
		}
	}
	return false
}

// runAlong walks from (row, column) in steps of (deltaRow, deltaCol) until it
// leaves the board, counting consecutive cells holding token.
func (b *Board) runAlong(row, column, deltaRow, deltaCol int, token Token) bool {
	count := 0
	for inBounds(row, column) {
		if b.cells[row][column].Value() == token {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		row += deltaRow
		column += deltaCol
	}
	return false
}
