package gomoku

import (
	"github.com/gorgonia/gomoku/game"
)

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Mode is who sits at the board.
type Mode byte

const (
	HumanVsComputer Mode = iota
	HumanVsHuman
)

func (m Mode) String() string {
	switch m {
	case HumanVsComputer:
		return "hvc"
	case HumanVsHuman:
		return "hvh"
	}
	return "unknown"
}
