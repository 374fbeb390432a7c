package heuristic

import (
	"github.com/gorgonia/gomoku/game"
)

// Best scans every empty intersection, x outer and y inner, and returns the one with
// the highest Score for p. Equal scores are settled by tb.
func Best(pos Position, p game.Player, tb TieBreaker) (best game.Coord, score int, err error) {
	if !p.Valid() {
		return best, 0, game.ErrInvalidPlayer
	}
	n := pos.Dimension()
	var found bool
	var ties int
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := game.Coord{X: x, Y: y}
			if pos.At(c) != game.None {
				continue
			}
			s := Score(pos, c, p)
			switch {
			case !found || s > score:
				best, score, found, ties = c, s, true, 1
			case s == score:
				ties++
				if tb.Replace(ties) {
					best = c
				}
			}
		}
	}
	if !found {
		return best, 0, game.ErrBoardFull
	}
	return best, score, nil
}
