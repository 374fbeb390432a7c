package gomoku

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/gorgonia/gomoku/game"
	"github.com/gorgonia/gomoku/game/wzq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ game.MetaState = &Arena{}

// Arena plays the computer against itself. Each agent keeps its own view of the
// board, and the arena forwards every move to the other agent.
type Arena struct {
	r     *rand.Rand
	board *wzq.Board
	A, B  *Agent

	// state
	currentPlayer *Agent
	id            uuid.UUID
	name          string
	gameNumber    int
	logger        *zap.Logger
}

// NewArena makes an arena for two agents on an n×n board. A nil logger discards logs.
func NewArena(n int, a, b *Agent, r *rand.Rand, name string, logger *zap.Logger) *Arena {
	if name == "" {
		name = "Gomoku"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arena{
		r:      r,
		board:  wzq.New(n),
		A:      a,
		B:      b,
		name:   name,
		logger: logger,
	}
}

// Play plays one game and returns the winner. If it is a draw, the returned player is None.
// Colours are drawn at random; Black moves first.
func (a *Arena) Play(enc OutputEncoder) (winner game.Player, err error) {
	n := a.board.Dimension()
	if a.r.Intn(2) == 0 {
		a.A.sit(n, game.BlackP)
		a.B.sit(n, game.WhiteP)
		a.currentPlayer = a.A
	} else {
		a.A.sit(n, game.WhiteP)
		a.B.sit(n, game.BlackP)
		a.currentPlayer = a.B
	}
	a.board.Reset()
	a.id = uuid.New()
	a.gameNumber++
	logger := a.logger.With(zap.String("game", a.id.String()), zap.Int("number", a.gameNumber))
	logger.Info("playing",
		zap.String("black", a.currentPlayer.Name()),
		zap.String("white", a.other().Name()))
	if err = a.encode(enc); err != nil {
		return game.Player(game.None), err
	}

	outcome := game.Ongoing
	for !outcome.Decided() {
		var c game.Coord
		if c, err = a.currentPlayer.Move(); err != nil {
			return game.Player(game.None), errors.WithMessage(err, a.currentPlayer.Name())
		}
		if outcome, err = a.board.Place(a.currentPlayer.Player, c); err != nil {
			return game.Player(game.None), errors.WithMessage(err, a.currentPlayer.Name())
		}
		logger.Debug("move", zap.String("agent", a.currentPlayer.Name()), zap.Stringer("at", c))
		if err = a.other().Observe(c); err != nil {
			return game.Player(game.None), errors.WithMessage(err, a.other().Name())
		}
		a.switchPlayer()
		if err = a.encode(enc); err != nil {
			return game.Player(game.None), err
		}
	}

	winner = outcome.Winner
	var winningAgent *Agent
	switch {
	case outcome.Result == game.Draw:
		winner = game.Player(game.None)
		a.A.Draw++
		a.B.Draw++
	case winner == a.A.Player:
		a.A.Wins++
		a.B.Loss++
		winningAgent = a.A
	case winner == a.B.Player:
		a.B.Wins++
		a.A.Loss++
		winningAgent = a.B
	}
	name := "nobody"
	if winningAgent != nil {
		name = winningAgent.Name()
	}
	logger.Info("done playing",
		zap.Stringer("outcome", outcome),
		zap.String("winner", name),
		zap.Int("moves", a.board.MoveNumber()))
	return winner, nil
}

// Run plays games games and returns both agents' statistics.
func (a *Arena) Run(games int, enc OutputEncoder) (Statistics, error) {
	stats := makeStatistics()
	a.A.resetStats()
	a.B.resetStats()
	for i := 0; i < games; i++ {
		if _, err := a.Play(enc); err != nil {
			return stats, errors.WithMessage(err, fmt.Sprintf("game %d", i+1))
		}
		stats.update(a.A)
		stats.update(a.B)
	}
	return stats, nil
}

func (a *Arena) encode(enc OutputEncoder) error {
	if enc == nil {
		return nil
	}
	return enc.Encode(a)
}

func (a *Arena) GameNumber() int   { return a.gameNumber }
func (a *Arena) Name() string      { return a.name }
func (a *Arena) State() game.State { return a.board }

func (a *Arena) other() *Agent {
	if a.currentPlayer == a.A {
		return a.B
	}
	return a.A
}

func (a *Arena) switchPlayer() { a.currentPlayer = a.other() }
