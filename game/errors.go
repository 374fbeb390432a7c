package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOccupied          = errors.New("intersection is already occupied")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrBoardFull         = errors.New("no empty intersection left")
	ErrDesync            = errors.New("evaluator view disagrees with the board")
	ErrGameEnded         = errors.New("game has ended")
	ErrNotYourTurn       = errors.New("not this player's turn")
)

// CoordinateError is returned when a coordinate falls outside the board.
type CoordinateError struct {
	Coord
	Dimension int
}

func (err CoordinateError) Error() string {
	return fmt.Sprintf("coordinate %v is outside the %dx%d board", err.Coord, err.Dimension, err.Dimension)
}

// Is makes errors.Is(err, ErrInvalidCoordinate) hold.
func (err CoordinateError) Is(target error) bool { return target == ErrInvalidCoordinate }

type moveError struct {
	PlayerMove
	cause error
}

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v: %v", err.PlayerMove, err.cause)
}

func (err moveError) Unwrap() error { return err.cause }

// MoveError annotates cause with the move that failed.
func MoveError(m PlayerMove, cause error) error { return moveError{m, cause} }
