package domain

// View is everything a renderer needs to paint one frame.
type View struct {
	Board        Grid
	ActivePlayer Player
	Players      [2]Player
	ValidColumns []int
}

func (g *GameController) View() View {
	return View{
		Board:        g.Board(),
		ActivePlayer: g.ActivePlayer(),
		Players:      g.Players(),
		ValidColumns: g.ValidColumns(),
	}
}
