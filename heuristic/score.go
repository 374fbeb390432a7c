package heuristic

import (
	"github.com/gorgonia/gomoku/game"
)

// Position is a read-only view of a square board.
type Position interface {
	Dimension() int
	At(c game.Coord) game.Colour
}

const (
	lookahead = 2 // intersections probed to tell which side owns a direction
	reach     = 5 // intersections walked along an owned direction
)

// owner is who a direction, or a stone, belongs to from the mover's point of view.
type owner byte

const (
	nobody owner = iota
	self
	rival
)

func whose(c, mine game.Colour) owner {
	switch c {
	case game.None:
		return nobody
	case mine:
		return self
	}
	return rival
}

// probe looks up to two intersections ahead of c and reports the owner of the first stone found.
func probe(pos Position, c game.Coord, d game.Direction, mine game.Colour) owner {
	n := pos.Dimension()
	for i := 1; i <= lookahead; i++ {
		next := c.Step(d, i)
		if !next.In(n) {
			return nobody
		}
		if o := whose(pos.At(next), mine); o != nobody {
			return o
		}
	}
	return nobody
}

// arm is one half of a line through a candidate.
type arm struct {
	who     owner
	count   int  // stones of who
	blocked bool // ended by a stone of the other side or by the edge
	spaced  bool // an empty intersection sits between stones of who
}

func walk(pos Position, c game.Coord, d game.Direction, mine game.Colour) (a arm) {
	if a.who = probe(pos, c, d, mine); a.who == nobody {
		return a
	}
	n := pos.Dimension()
	var gap bool
	for i := 1; i <= reach; i++ {
		next := c.Step(d, i)
		if !next.In(n) {
			a.blocked = true
			return a
		}
		switch whose(pos.At(next), mine) {
		case a.who:
			a.count++
			if gap {
				a.spaced = true
			}
		case nobody:
			if gap {
				return a
			}
			gap = true
		default:
			a.blocked = true
			return a
		}
	}
	return a
}

// Line is the tally of both arms along one axis through a candidate.
type Line struct {
	CountSelf, CountOpposite int
	BlockSelf, BlockOpposite int // 0, 1 or 2 blocked ends
	SpaceSelf, SpaceOpposite bool
}

func (l *Line) add(a arm) {
	var block int
	if a.blocked {
		block = 1
	}
	switch a.who {
	case self:
		l.CountSelf += a.count
		l.BlockSelf += block
		l.SpaceSelf = l.SpaceSelf || a.spaced
	case rival:
		l.CountOpposite += a.count
		l.BlockOpposite += block
		l.SpaceOpposite = l.SpaceOpposite || a.spaced
	}
}

// Measure tallies the line through c along axis d for the player who owns mine.
func Measure(pos Position, c game.Coord, d game.Direction, mine game.Colour) (l Line) {
	l.add(walk(pos, c, d, mine))
	l.add(walk(pos, c, d.Reverse(), mine))
	return l
}

// Score maps a line to its priority. Rules are tried top to bottom.
func (l Line) Score() int {
	var score int
	switch {
	case l.CountSelf == 4:
		score = 10000
	case l.CountOpposite == 4:
		score = 8000
	case l.CountSelf == 3:
		switch l.BlockSelf {
		case 0:
			score = 1000
		case 1:
			score = 100
		}
	case l.CountOpposite == 3:
		switch l.BlockOpposite {
		case 0:
			score = 800
		case 1:
			score = 80
		}
	case l.CountSelf == 2:
		score = 80
		if l.BlockSelf == 0 {
			score = 100
		}
	case l.CountOpposite == 2:
		score = 8
		if l.BlockOpposite == 0 {
			score = 10
		}
	case l.CountSelf == 1:
		score = 10
	case l.CountOpposite == 1:
		score = 8
	}
	if l.SpaceSelf || l.SpaceOpposite {
		score /= 2
	}
	return score
}

// AxisScore is the priority of placing self's stone at c, judged along axis d only.
func AxisScore(pos Position, c game.Coord, d game.Direction, p game.Player) int {
	return Measure(pos, c, d, game.Colour(p)).Score()
}

// Score is the priority of placing p's stone at the empty intersection c: the sum of its four axis scores.
func Score(pos Position, c game.Coord, p game.Player) (score int) {
	for _, d := range game.Axes {
		score += AxisScore(pos, c, d, p)
	}
	return score
}
