package game

import (
	"fmt"
	"strings"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	case 'd':
		fmt.Fprintf(s, "%d", int32(cl))
	}
}

// Player represents a player. It's also a colour. Only Black and White are valid players.
type Player Colour

const (
	BlackP = Player(Black)
	WhiteP = Player(White)
)

// Name is the display name of the player.
func (p Player) Name() string {
	switch Colour(p) {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Stamp is the occupancy marker the player leaves on the board.
func (p Player) Stamp() int { return int(p) }

// Valid reports whether p is Black or White.
func (p Player) Valid() bool { return p == BlackP || p == WhiteP }

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case BlackP:
		return WhiteP
	case WhiteP:
		return BlackP
	}
	return Player(None)
}

func (p Player) String() string { return p.Name() }

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		Colour(p).Format(s, c)
	default:
		fmt.Fprint(s, p.Name())
	}
}

// ParsePlayer parses "black", "b", "white" or "w" (any case).
func ParsePlayer(a string) (Player, bool) {
	switch strings.ToLower(a) {
	case "b", "black", "x":
		return BlackP, true
	case "w", "white", "o":
		return WhiteP, true
	}
	return Player(None), false
}

// Coord is a (x, y) intersection on the board.
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (14, 14) represents the bottom right of a 15x15 board
type Coord struct {
	X, Y int
}

// Step returns the coordinate k steps away in direction d.
func (c Coord) Step(d Direction, k int) Coord { return Coord{c.X + k*d.DX, c.Y + k*d.DY} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// In reports whether the coordinate lies on an n×n board.
func (c Coord) In(n int) bool { return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n }

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Direction is one of the axis vectors a line is scanned along.
type Direction struct {
	DX, DY int
}

// Reverse returns the 180° rotated direction.
func (d Direction) Reverse() Direction { return Direction{-d.DX, -d.DY} }

var (
	Horizontal   = Direction{1, 0}
	Vertical     = Direction{0, 1}
	MainDiagonal = Direction{1, 1}
	AntiDiagonal = Direction{1, -1}
)

// Axes lists the four line orientations in the order they are checked.
// The reversed vectors are covered by scanning both ways.
var Axes = [4]Direction{Horizontal, Vertical, MainDiagonal, AntiDiagonal}

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Coord
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Coord.Eq(other.Coord)
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", p.Player, p.Coord) }

// Result is the kind of Outcome a placement produced.
type Result byte

const (
	Continue Result = iota
	Win
	Draw
)

// Outcome is what a placement led to. Winner is only meaningful for Win.
type Outcome struct {
	Result Result
	Winner Player
}

// Ongoing is the outcome of a placement that decides nothing.
var Ongoing = Outcome{Result: Continue}

// Won returns a winning outcome for p.
func Won(p Player) Outcome { return Outcome{Result: Win, Winner: p} }

// Decided reports whether the outcome ends the game.
func (o Outcome) Decided() bool { return o.Result != Continue }

func (o Outcome) Format(s fmt.State, c rune) {
	switch o.Result {
	case Continue:
		fmt.Fprint(s, "Continue")
	case Win:
		fmt.Fprintf(s, "Win(%v)", o.Winner)
	case Draw:
		fmt.Fprint(s, "Draw")
	}
}

// State is any game that implements these and are able to report back
type State interface {
	// These methods represent the game state
	BoardSize() (int, int) // returns the board size
	Board() []Colour       // returns the board state
	ToMove() Player        // returns the next player to move
	MoveNumber() int       // returns count of moves so far that led to this point.
	LastMove() PlayerMove  // returns the last move that was made

	// Meta-game stuff
	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?

	Reset() // reset state

	// generics
	Eq(other State) bool
	Clone() State
}

// MetaState is a game as seen from outside: which game it is, and its state.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	State() State
}

// CoordConverter converts between coordinates and their row-major index.
type CoordConverter interface {
	Ltoi(Coord) int
	Itol(int) Coord
}

func (o Outcome) String() string { return fmt.Sprint(o) }
