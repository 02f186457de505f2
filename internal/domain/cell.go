package domain

// Cell is a single slot of the board.
type Cell struct {
	value Token
}

// SetValue places token in the cell. The token is trusted as-is.
func (c *Cell) SetValue(token Token) {
	c.value = token
}

func (c *Cell) Value() Token {
	return c.value
}
