package gtp

import (
	"strconv"
	"strings"

	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
)

// columns are the GTP column letters. There is no I.
const columns = "abcdefghjklmnopqrstuvwxyz"

// MaxSize is the largest board a vertex can address.
const MaxSize = len(columns)

// ParseVertex parses a vertex such as "h8" on an n×n board. Rows are counted from the
// bottom, so "a1" is the bottom left intersection.
func ParseVertex(a string, n int) (game.Coord, error) {
	a = strings.ToLower(a)
	if a == "pass" {
		return game.Coord{}, errors.New("Cannot pass in gomoku")
	}
	if len(a) < 2 {
		return game.Coord{}, errors.Errorf("Invalid vertex %q", a)
	}
	x := strings.IndexByte(columns, a[0])
	if x < 0 {
		return game.Coord{}, errors.Errorf("Invalid column in vertex %q", a)
	}
	row, err := strconv.Atoi(a[1:])
	if err != nil {
		return game.Coord{}, errors.Wrapf(err, "Invalid row in vertex %q", a)
	}
	c := game.Coord{X: x, Y: n - row}
	if !c.In(n) {
		return c, game.CoordinateError{Coord: c, Dimension: n}
	}
	return c, nil
}

// FormatVertex is the inverse of ParseVertex. Vertices are upper case.
func FormatVertex(c game.Coord, n int) string {
	if c.X < 0 || c.X >= MaxSize {
		return "?"
	}
	return strings.ToUpper(columns[c.X:c.X+1]) + strconv.Itoa(n-c.Y)
}
