package heuristic

import (
	"github.com/gorgonia/gomoku/game"
	"github.com/gorgonia/gomoku/game/wzq"
)

// Evaluator picks moves for one player.
//
// An Evaluator made by New keeps a private copy of the board, which the driver
// keeps up to date with RecordRivalMove. One made by Shared reads the board the
// driver plays on.
type Evaluator struct {
	self game.Player
	tb   TieBreaker

	view *wzq.Board // private view, nil when shared
	pos  Position
}

// New creates an Evaluator playing p with its own n×n view of the board.
func New(n int, p game.Player, tb TieBreaker) *Evaluator {
	view := wzq.New(n)
	return &Evaluator{
		self: p,
		tb:   tb,
		view: view,
		pos:  view,
	}
}

// Shared creates an Evaluator playing p that reads pos directly.
func Shared(pos Position, p game.Player, tb TieBreaker) *Evaluator {
	return &Evaluator{
		self: p,
		tb:   tb,
		pos:  pos,
	}
}

// Self is the player the evaluator moves for.
func (e *Evaluator) Self() game.Player { return e.self }

// Rival is the player the evaluator moves against.
func (e *Evaluator) Rival() game.Player { return e.self.Opponent() }

// IsShared reports whether the evaluator reads the driver's board.
func (e *Evaluator) IsShared() bool { return e.view == nil }

// RecordRivalMove tells the evaluator the rival played at c.
//
// A private view marks c as the rival's. A shared one checks the board already holds
// the rival's stone at c.
func (e *Evaluator) RecordRivalMove(c game.Coord) error {
	if e.view != nil {
		_, err := e.view.Place(e.Rival(), c)
		return err
	}
	if !c.In(e.pos.Dimension()) {
		return game.CoordinateError{Coord: c, Dimension: e.pos.Dimension()}
	}
	if e.pos.At(c) != game.Colour(e.Rival()) {
		return game.MoveError(game.PlayerMove{Player: e.Rival(), Coord: c}, game.ErrDesync)
	}
	return nil
}

// ChooseMove returns the best intersection for the evaluator's player. A private view
// marks the intersection as its own straight away.
func (e *Evaluator) ChooseMove() (game.Coord, error) {
	c, _, err := Best(e.pos, e.self, e.tb)
	if err != nil {
		return c, err
	}
	if e.view != nil {
		if _, err = e.view.Place(e.self, c); err != nil {
			return c, err
		}
	}
	return c, nil
}

// View returns what the evaluator currently believes the board to be.
func (e *Evaluator) View() wzq.Grid {
	if e.view != nil {
		return e.view.Snapshot()
	}
	n := e.pos.Dimension()
	g := wzq.Grid{N: n, Cells: make([]game.Colour, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Cells[y*n+x] = e.pos.At(game.Coord{X: x, Y: y})
		}
	}
	return g
}

// Reset empties a private view. Shared evaluators follow their board.
func (e *Evaluator) Reset() {
	if e.view != nil {
		e.view.Reset()
	}
}
