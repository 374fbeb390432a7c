package wzq

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	X = game.BlackP
	O = game.WhiteP
)

func line(start game.Coord, d game.Direction, k int) []game.Coord {
	retVal := make([]game.Coord, k)
	for i := range retVal {
		retVal[i] = start.Step(d, i)
	}
	return retVal
}

func TestBoard_IsLegal(t *testing.T) {
	b := New(Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := game.Coord{X: x, Y: y}
			require.True(t, b.IsLegal(c), "%v should be legal on an empty board", c)
			p := X
			if (x+y)%2 == 1 {
				p = O
			}
			_, err := b.Place(p, c)
			require.NoError(t, err)
			require.False(t, b.IsLegal(c), "%v should not be legal once taken", c)
		}
	}
	assert.False(t, b.IsLegal(game.Coord{X: -1, Y: 0}))
	assert.False(t, b.IsLegal(game.Coord{X: 0, Y: Size}))
}

var winTests = []struct {
	name  string
	start game.Coord
	dir   game.Direction
}{
	{"horizontal", game.Coord{X: 3, Y: 7}, game.Horizontal},
	{"vertical", game.Coord{X: 0, Y: 0}, game.Vertical},
	{"main diagonal", game.Coord{X: 10, Y: 10}, game.MainDiagonal},
	{"anti diagonal", game.Coord{X: 2, Y: 12}, game.AntiDiagonal},
	{"horizontal at the edge", game.Coord{X: 10, Y: 14}, game.Horizontal},
}

func TestBoard_Place_Win(t *testing.T) {
	for _, wt := range winTests {
		for _, p := range []game.Player{X, O} {
			b := New(Size)
			stones := line(wt.start, wt.dir, K)
			for i, c := range stones[:K-1] {
				outcome, err := b.Place(p, c)
				require.NoError(t, err, "%s: stone %d", wt.name, i)
				assert.Equal(t, game.Ongoing, outcome, "%s: %d stones should not win", wt.name, i+1)
			}
			outcome, err := b.Place(p, stones[K-1])
			require.NoError(t, err)
			assert.Equal(t, game.Won(p), outcome, "%s: five stones should win", wt.name)

			ended, winner := b.Ended()
			assert.True(t, ended)
			assert.Equal(t, p, winner)
		}
	}
}

func TestBoard_Place_MiddleStoneWins(t *testing.T) {
	b := New(Size)
	for _, x := range []int{4, 5, 7, 8} {
		outcome, err := b.Place(X, game.Coord{X: x, Y: 4})
		require.NoError(t, err)
		require.Equal(t, game.Ongoing, outcome)
	}
	outcome, err := b.Place(X, game.Coord{X: 6, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, game.Won(X), outcome)
}

func TestBoard_Place_Overline(t *testing.T) {
	b := New(Size)
	for _, x := range []int{0, 1, 2, 4, 5} {
		outcome, err := b.Place(O, game.Coord{X: x, Y: 0})
		require.NoError(t, err)
		assert.Equal(t, game.Ongoing, outcome, "a gap breaks the line")
	}
	outcome, err := b.Place(O, game.Coord{X: 3, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, game.Won(O), outcome, "six in a row still wins")
}

func TestBoard_Place_MixedLine(t *testing.T) {
	b := New(Size)
	moves := []game.PlayerMove{
		{Player: X, Coord: game.Coord{X: 0, Y: 0}},
		{Player: X, Coord: game.Coord{X: 1, Y: 0}},
		{Player: O, Coord: game.Coord{X: 2, Y: 0}},
		{Player: X, Coord: game.Coord{X: 3, Y: 0}},
		{Player: X, Coord: game.Coord{X: 4, Y: 0}},
	}
	for _, m := range moves {
		outcome, err := b.Place(m.Player, m.Coord)
		require.NoError(t, err)
		assert.Equal(t, game.Ongoing, outcome)
	}
}

func TestBoard_Place_Errors(t *testing.T) {
	b := New(Size)
	_, err := b.Place(X, game.Coord{X: 7, Y: 7})
	require.NoError(t, err)

	_, err = b.Place(O, game.Coord{X: 7, Y: 7})
	assert.True(t, errors.Is(err, game.ErrOccupied), "got %v", err)
	assert.Equal(t, game.Black, b.At(game.Coord{X: 7, Y: 7}), "occupied intersections are never overwritten")

	_, err = b.Place(O, game.Coord{X: Size, Y: 0})
	assert.True(t, errors.Is(err, game.ErrInvalidCoordinate), "got %v", err)
	var ce game.CoordinateError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, Size, ce.Dimension)

	_, err = b.Place(game.Player(game.None), game.Coord{X: 1, Y: 1})
	assert.True(t, errors.Is(err, game.ErrInvalidPlayer), "got %v", err)
	assert.Equal(t, 1, b.MoveNumber())
}

func TestBoard_Draw(t *testing.T) {
	// ⎢ X X O ⎥
	// ⎢ O O X ⎥
	// ⎢ X O X ⎥
	b := New(3)
	moves := []game.PlayerMove{
		{Player: X, Coord: game.Coord{X: 0, Y: 0}}, {Player: O, Coord: game.Coord{X: 2, Y: 0}},
		{Player: X, Coord: game.Coord{X: 1, Y: 0}}, {Player: O, Coord: game.Coord{X: 0, Y: 1}},
		{Player: X, Coord: game.Coord{X: 2, Y: 1}}, {Player: O, Coord: game.Coord{X: 1, Y: 1}},
		{Player: X, Coord: game.Coord{X: 0, Y: 2}}, {Player: O, Coord: game.Coord{X: 1, Y: 2}},
	}
	for _, m := range moves {
		outcome, err := b.Place(m.Player, m.Coord)
		require.NoError(t, err)
		require.Equal(t, game.Ongoing, outcome)
	}
	outcome, err := b.Place(X, game.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, game.Draw, outcome.Result)
	ended, winner := b.Ended()
	assert.True(t, ended)
	assert.Equal(t, game.Player(game.None), winner)
}

func TestBoard_Snapshot(t *testing.T) {
	b := New(Size)
	b.Place(X, game.Coord{X: 2, Y: 3})
	b.Place(O, game.Coord{X: 4, Y: 5})

	s1 := b.Snapshot()
	s2 := b.Snapshot()
	if diff := cmp.Diff(s1, s2); diff != "" {
		t.Errorf("snapshots differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, game.Black, s1.At(game.Coord{X: 2, Y: 3}))
	assert.Equal(t, game.White, s1.At(game.Coord{X: 4, Y: 5}))
	assert.Equal(t, []game.PlayerMove{
		{Player: X, Coord: game.Coord{X: 2, Y: 3}},
		{Player: O, Coord: game.Coord{X: 4, Y: 5}},
	}, s1.Occupied())

	// snapshots are copies
	b.Place(X, game.Coord{X: 0, Y: 0})
	assert.Equal(t, game.None, s1.At(game.Coord{X: 0, Y: 0}))
	assert.False(t, s1.Eq(b.Snapshot()))
}

func TestBoard_ResetAndClone(t *testing.T) {
	b := New(5)
	b.Place(X, game.Coord{X: 1, Y: 1})
	c := b.Clone().(*Board)
	assert.True(t, b.Eq(c))

	b.Reset()
	assert.Equal(t, 0, b.MoveNumber())
	assert.Equal(t, X, b.ToMove())
	assert.True(t, b.IsLegal(game.Coord{X: 1, Y: 1}))
	assert.False(t, b.Eq(c))
	assert.Equal(t, game.Black, c.At(game.Coord{X: 1, Y: 1}), "clones do not share storage")
}

func TestBoard_Format(t *testing.T) {
	b := New(3)
	b.Place(X, game.Coord{X: 0, Y: 0})
	b.Place(O, game.Coord{X: 2, Y: 1})
	expected := "⎢ X · · ⎥\n⎢ · · O ⎥\n⎢ · · · ⎥\n"
	assert.Equal(t, expected, fmt.Sprintf("%s", b))
	assert.Equal(t, expected, fmt.Sprintf("%s", b.Snapshot()))
}

func TestLoad(t *testing.T) {
	moves := []game.PlayerMove{
		{Player: X, Coord: game.Coord{X: 0, Y: 0}},
		{Player: O, Coord: game.Coord{X: 1, Y: 0}},
	}
	b, err := Load(Size, moves)
	require.NoError(t, err)
	assert.Equal(t, moves[1], b.LastMove())
	assert.Equal(t, 1, b.Ltoi(game.Coord{X: 1, Y: 0}))
	assert.Equal(t, game.Coord{X: 1, Y: 1}, b.Itol(Size+1))

	_, err = Load(Size, append(moves, game.PlayerMove{Player: X, Coord: game.Coord{X: 1, Y: 0}}))
	assert.True(t, errors.Is(err, game.ErrOccupied))
}

func TestBoard_AsState(t *testing.T) {
	var s game.State = New(5)
	for x := 0; x < K; x++ {
		_, err := s.(*Board).Place(O, game.Coord{X: x, Y: 2})
		require.NoError(t, err)
	}
	rows, cols := s.BoardSize()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
	assert.Len(t, s.Board(), 25)
	assert.Equal(t, K, s.MoveNumber())
	assert.Equal(t, game.PlayerMove{Player: O, Coord: game.Coord{X: 4, Y: 2}}, s.LastMove())
	ended, winner := s.Ended()
	assert.True(t, ended)
	assert.Equal(t, O, winner)

	clone := s.Clone()
	assert.True(t, s.Eq(clone))
	s.Reset()
	ended, _ = s.Ended()
	assert.False(t, ended)
	assert.Equal(t, game.PlayerMove{Player: game.Player(game.None), Coord: game.Coord{X: -1, Y: -1}}, s.LastMove())
	ended, _ = clone.Ended()
	assert.True(t, ended, "resetting does not touch clones")
}

func TestBoard_Storage(t *testing.T) {
	b := New(4)
	assert.Equal(t, []int{4, 4}, []int(b.data.Shape()))
	_, err := b.Place(X, game.Coord{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, game.Black, b.Board()[1*4+3], "rows share the tensor's backing storage")
	assert.Equal(t, b.Ltoi(game.Coord{X: 3, Y: 1}), 7)
}
