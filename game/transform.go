package game

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	iterMu   sync.Mutex
	iterPool = make(map[int]*sync.Pool)
)

func borrowIterator(n int) [][]Colour {
	iterMu.Lock()
	p, ok := iterPool[n]
	if !ok {
		p = &sync.Pool{New: func() interface{} { return make([][]Colour, n) }}
		iterPool[n] = p
	}
	iterMu.Unlock()
	return p.Get().([][]Colour)
}

// ReturnIterator gives an iterator made by MakeIterator back to the pool.
func ReturnIterator(n int, it [][]Colour) {
	for i := range it {
		it[i] = nil
	}
	iterMu.Lock()
	p, ok := iterPool[n]
	iterMu.Unlock()
	if ok {
		p.Put(it)
	}
}

// MakeIterator makes a row view of a row-major n×n board. The rows share
// the board's backing storage.
func MakeIterator(board []Colour, n int) [][]Colour {
	it := borrowIterator(n)
	for i := range it {
		start := i * n
		it[i] = board[start : start+n : start+n]
	}
	return it
}

// RotateCoord maps c on an n×n board to its place after a 90° clockwise turn.
func RotateCoord(c Coord, n int) Coord { return Coord{X: n - 1 - c.Y, Y: c.X} }

// Rotate returns a copy of the row-major n×n board turned 90° clockwise.
func Rotate(board []Colour, n int) ([]Colour, error) {
	if len(board) != n*n {
		return nil, errors.Errorf("Cannot rotate a board of %d intersections as %dx%d", len(board), n, n)
	}
	rotated := make([]Colour, len(board))
	src := MakeIterator(board, n)
	dst := MakeIterator(rotated, n)
	for y := range src {
		for x, c := range src[y] {
			r := RotateCoord(Coord{x, y}, n)
			dst[r.Y][r.X] = c
		}
	}
	ReturnIterator(n, src)
	ReturnIterator(n, dst)
	return rotated, nil
}
