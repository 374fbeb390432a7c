package gomoku

import (
	"github.com/gorgonia/gomoku/game"
	"github.com/gorgonia/gomoku/heuristic"
)

// An Agent is a computer player in an Arena. It sees the board only through its
// evaluator's private view, fed with the other agent's moves.
type Agent struct {
	Eval   *heuristic.Evaluator
	Player game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32

	name string
	tb   heuristic.TieBreaker
}

// NewAgent creates an agent that settles ties with tb.
func NewAgent(name string, tb heuristic.TieBreaker) *Agent {
	return &Agent{
		name: name,
		tb:   tb,
	}
}

func (a *Agent) Name() string { return a.name }

// sit prepares the agent for a new game on an n×n board as p.
func (a *Agent) sit(n int, p game.Player) {
	a.Player = p
	a.Eval = heuristic.New(n, p, a.tb)
}

// Observe records the opponent's move at c.
func (a *Agent) Observe(c game.Coord) error { return a.Eval.RecordRivalMove(c) }

// Move chooses the agent's next move.
func (a *Agent) Move() (game.Coord, error) { return a.Eval.ChooseMove() }

func (a *Agent) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}
