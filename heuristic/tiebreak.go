package heuristic

import (
	"math/rand"

	"github.com/pkg/errors"
)

// TieBreaker decides whether a candidate scoring the same as the held best replaces it.
// ties counts the candidates sharing the best score so far, the new one included.
type TieBreaker interface {
	Replace(ties int) bool
}

// CoinFlip flips a fair coin for every tied candidate. Later candidates in the scan
// are favoured: the last of k tied candidates is kept half of the time.
type CoinFlip struct{ r *rand.Rand }

// NewCoinFlip creates a CoinFlip drawing from r.
func NewCoinFlip(r *rand.Rand) CoinFlip { return CoinFlip{r} }

// Replace is heads or tails, whatever the number of ties.
func (t CoinFlip) Replace(ties int) bool { return t.r.Intn(2) == 0 }

// Uniform keeps each of the tied candidates with equal probability (reservoir sampling).
type Uniform struct{ r *rand.Rand }

// NewUniform creates a Uniform drawing from r.
func NewUniform(r *rand.Rand) Uniform { return Uniform{r} }

// Replace keeps the newest of ties candidates with probability 1/ties.
func (t Uniform) Replace(ties int) bool { return t.r.Intn(ties) == 0 }

// FirstFound never replaces: the first candidate in scan order wins ties.
type FirstFound struct{}

func (FirstFound) Replace(int) bool { return false }

// TieBreakers lists the known tie breaking policies by name.
var TieBreakers = []string{"coinflip", "uniform", "first"}

// NewTieBreaker creates the named tie breaker.
func NewTieBreaker(name string, r *rand.Rand) (TieBreaker, error) {
	switch name {
	case "coinflip", "":
		return NewCoinFlip(r), nil
	case "uniform":
		return NewUniform(r), nil
	case "first":
		return FirstFound{}, nil
	}
	return nil, errors.Errorf("Unknown tie breaker %q. Known: %v", name, TieBreakers)
}
