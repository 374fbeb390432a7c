package wzq

import (
	"fmt"

	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

const (
	// Size is the board dimension of a standard game.
	Size = 15
	// K is the number of stones in a row that wins.
	K = 5
)

var _ game.State = &Board{}
var _ game.CoordConverter = &Board{}

// Board is the authoritative grid of a Gomoku game played on a NxN board.
//
// A Board is owned by a single goroutine.
type Board struct {
	data *tensor.Dense
	it   [][]game.Colour // it[y][x]
	n    int

	nextToMove game.Player
	history    []game.PlayerMove
	outcome    game.Outcome
}

// New creates an empty n×n board with Black to move.
func New(n int) *Board {
	if n < 1 {
		panic(fmt.Sprintf("Cannot make a %dx%d board", n, n))
	}
	backing := make([]game.Colour, n*n)
	data := tensor.New(tensor.WithShape(n, n), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	return &Board{
		data:       data,
		it:         iter.([][]game.Colour),
		n:          n,
		nextToMove: game.BlackP,
		history:    make([]game.PlayerMove, 0, n*n),
	}
}

func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		formatRows(s, b.it)
	}
}

func formatRows(s fmt.State, rows [][]game.Colour) {
	for _, row := range rows {
		fmt.Fprint(s, "⎢ ")
		for _, col := range row {
			fmt.Fprintf(s, "%s ", col)
		}
		fmt.Fprint(s, "⎥\n")
	}
}

// Dimension is the side length of the board.
func (b *Board) Dimension() int { return b.n }

// At returns the colour at c. c must be on the board.
func (b *Board) At(c game.Coord) game.Colour { return b.it[c.Y][c.X] }

// IsLegal reports whether a stone may be placed at c: c is on the board and empty.
func (b *Board) IsLegal(c game.Coord) bool {
	return c.In(b.n) && b.it[c.Y][c.X] == game.None
}

// Place puts p's stone at c and reports whether the placement won the game.
//
// Placing outside the board, on an occupied intersection or as an invalid player
// fails without changing the board.
func (b *Board) Place(p game.Player, c game.Coord) (game.Outcome, error) {
	m := game.PlayerMove{Player: p, Coord: c}
	if !p.Valid() {
		return game.Ongoing, game.MoveError(m, game.ErrInvalidPlayer)
	}
	if !c.In(b.n) {
		return game.Ongoing, game.CoordinateError{Coord: c, Dimension: b.n}
	}
	if b.it[c.Y][c.X] != game.None {
		return game.Ongoing, game.MoveError(m, game.ErrOccupied)
	}

	b.it[c.Y][c.X] = game.Colour(p)
	b.history = append(b.history, m)
	b.nextToMove = p.Opponent()

	outcome := game.Ongoing
	switch {
	case b.wins(c, game.Colour(p)):
		outcome = game.Won(p)
	case len(b.history) == b.n*b.n:
		outcome = game.Outcome{Result: game.Draw}
	}
	if !b.outcome.Decided() {
		b.outcome = outcome
	}
	return outcome, nil
}

// wins checks the lines through c for K or more stones of colour.
func (b *Board) wins(c game.Coord, colour game.Colour) bool {
	for _, d := range game.Axes {
		count := 1 + b.run(c, d, colour) + b.run(c, d.Reverse(), colour)
		if count >= K {
			return true
		}
	}
	return false
}

// run counts the stones of colour following c in direction d, up to K-1 of them.
func (b *Board) run(c game.Coord, d game.Direction, colour game.Colour) (count int) {
	for i := 1; i < K; i++ {
		next := c.Step(d, i)
		if !next.In(b.n) || b.it[next.Y][next.X] != colour {
			break
		}
		count++
	}
	return count
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Grid {
	cells := make([]game.Colour, b.n*b.n)
	copy(cells, b.data.Data().([]game.Colour))
	return Grid{N: b.n, Cells: cells}
}

// Outcome is the first decisive outcome of the game, or Continue.
func (b *Board) Outcome() game.Outcome { return b.outcome }

func (b *Board) BoardSize() (int, int) { return b.n, b.n }
func (b *Board) Board() []game.Colour  { return b.data.Data().([]game.Colour) }

func (b *Board) ToMove() game.Player { return b.nextToMove }

func (b *Board) MoveNumber() int { return len(b.history) }

// History returns the moves made so far, oldest first.
func (b *Board) History() []game.PlayerMove { return b.history }

func (b *Board) LastMove() game.PlayerMove {
	if len(b.history) > 0 {
		return b.history[len(b.history)-1]
	}
	return game.PlayerMove{Player: game.Player(game.None), Coord: game.Coord{X: -1, Y: -1}}
}

func (b *Board) Ended() (ended bool, winner game.Player) {
	switch b.outcome.Result {
	case game.Win:
		return true, b.outcome.Winner
	case game.Draw:
		return true, game.Player(game.None)
	}
	return false, game.Player(game.None)
}

func (b *Board) Reset() {
	raw := b.data.Data().([]game.Colour)
	for i := range raw {
		raw[i] = game.None
	}
	b.history = b.history[:0]
	b.nextToMove = game.BlackP
	b.outcome = game.Ongoing
}

func (b *Board) Eq(other game.State) bool {
	ot, ok := other.(*Board)
	if !ok {
		return false
	}
	if b.n != ot.n || b.nextToMove != ot.nextToMove {
		return false
	}
	return b.Snapshot().Eq(ot.Snapshot())
}

func (b *Board) Clone() game.State {
	retVal := New(b.n)
	copy(retVal.data.Data().([]game.Colour), b.data.Data().([]game.Colour))
	retVal.history = append(retVal.history, b.history...)
	retVal.nextToMove = b.nextToMove
	retVal.outcome = b.outcome
	return retVal
}

func (b *Board) Ltoi(c game.Coord) int { return c.Y*b.n + c.X }

func (b *Board) Itol(i int) game.Coord { return game.Coord{X: i % b.n, Y: i / b.n} }

// Load replays moves onto an empty board. It stops at the first illegal move.
func Load(n int, moves []game.PlayerMove) (*Board, error) {
	b := New(n)
	for i, m := range moves {
		if _, err := b.Place(m.Player, m.Coord); err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("move %d", i))
		}
	}
	return b, nil
}
