package wzq

import (
	"fmt"

	"github.com/gorgonia/gomoku/game"
)

// Grid is a read-only copy of a board, row-major.
type Grid struct {
	N     int
	Cells []game.Colour
}

func (g Grid) Dimension() int { return g.N }

func (g Grid) At(c game.Coord) game.Colour { return g.Cells[c.Y*g.N+c.X] }

// Occupied lists the occupied intersections with their owners, in row-major order.
func (g Grid) Occupied() []game.PlayerMove {
	var retVal []game.PlayerMove
	for i, c := range g.Cells {
		if c != game.None {
			retVal = append(retVal, game.PlayerMove{
				Player: game.Player(c),
				Coord:  game.Coord{X: i % g.N, Y: i / g.N},
			})
		}
	}
	return retVal
}

func (g Grid) Eq(other Grid) bool {
	if g.N != other.N || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) Format(s fmt.State, c rune) {
	it := game.MakeIterator(g.Cells, g.N)
	formatRows(s, it)
	game.ReturnIterator(g.N, it)
}
