package gomoku

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorgonia/gomoku/game"
	"github.com/gorgonia/gomoku/game/wzq"
	"github.com/gorgonia/gomoku/heuristic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ game.MetaState = &Session{}

// NewGame creates an empty n×n board and a White computer opponent keeping its own view
// of it. The caller forwards every Black move to the evaluator with RecordRivalMove.
func NewGame(n int) (*wzq.Board, *heuristic.Evaluator) {
	r := DefaultConfig().rand()
	return wzq.New(n), heuristic.New(n, game.WhiteP, heuristic.NewCoinFlip(r))
}

// Session drives games between a human and the computer, or between two humans.
// Black always moves first. Wins are tallied across games.
//
// A Session is not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	conf     Config
	board    *wzq.Board
	eval     *heuristic.Evaluator
	tb       heuristic.TieBreaker
	mode     Mode
	computer game.Player

	wins   map[game.Player]int
	played int

	enc    OutputEncoder
	logger *zap.Logger
}

// NewSession starts the first game described by conf. A nil logger discards logs.
func NewSession(conf Config, logger *zap.Logger) (*Session, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(conf.Mode)
	tb, _ := heuristic.NewTieBreaker(conf.TieBreak, conf.rand())
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		conf:     conf,
		board:    wzq.New(conf.Dimension),
		tb:       tb,
		mode:     mode,
		computer: conf.computer(),
		wins:     make(map[game.Player]int),
		logger:   logger,
	}
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetEncoder makes the session encode every position it reaches with enc.
func (s *Session) SetEncoder(enc OutputEncoder) { s.enc = enc }

// NewGame abandons the current game and starts a fresh one. If the computer plays
// Black it opens straight away.
func (s *Session) NewGame() error {
	s.id = uuid.New()
	s.board.Reset()
	if s.conf.View == "private" {
		s.eval = heuristic.New(s.conf.Dimension, s.computer, s.tb)
	} else {
		s.eval = heuristic.Shared(s.board, s.computer, s.tb)
	}
	s.logger.Info("new game",
		zap.String("game", s.id.String()),
		zap.Stringer("mode", s.mode),
		zap.Int("dimension", s.conf.Dimension))
	s.encode()

	if s.mode == HumanVsComputer && s.computer == s.board.ToMove() {
		c, err := s.eval.ChooseMove()
		if err != nil {
			return errors.WithMessage(err, "Computer failed to open")
		}
		if _, err = s.place(s.computer, c); err != nil {
			return err
		}
	}
	return nil
}

// SwitchMode starts a new game in mode m. The tally is kept.
func (s *Session) SwitchMode(m Mode) error {
	s.mode = m
	return s.NewGame()
}

// Resize starts a new game on an n×n board. The tally is kept.
func (s *Session) Resize(n int) error {
	if n < 1 {
		return errors.Errorf("Invalid dimension %d", n)
	}
	s.conf.Dimension = n
	s.board = wzq.New(n)
	return s.NewGame()
}

// Play places a stone for the side to move at c. Against the computer, the computer
// replies at once unless the game is over. All moves made are returned.
func (s *Session) Play(c game.Coord) ([]game.PlayerMove, game.Outcome, error) {
	return s.PlayAs(s.board.ToMove(), c)
}

// PlayAs is Play on behalf of p, which must be the side to move and, against the
// computer, not the computer.
func (s *Session) PlayAs(p game.Player, c game.Coord) (moves []game.PlayerMove, outcome game.Outcome, err error) {
	if ended, _ := s.board.Ended(); ended {
		return nil, s.board.Outcome(), game.ErrGameEnded
	}
	if p != s.board.ToMove() || (s.mode == HumanVsComputer && p == s.computer) {
		return nil, game.Ongoing, game.MoveError(game.PlayerMove{Player: p, Coord: c}, game.ErrNotYourTurn)
	}
	if outcome, err = s.place(p, c); err != nil {
		return nil, outcome, err
	}
	moves = append(moves, game.PlayerMove{Player: p, Coord: c})
	if outcome.Decided() || s.mode != HumanVsComputer {
		return moves, outcome, nil
	}

	reply, outcome, err := s.reply(c)
	if err != nil {
		return moves, outcome, err
	}
	return append(moves, reply), outcome, nil
}

// reply forwards the human's move at last to the evaluator and plays its answer.
func (s *Session) reply(last game.Coord) (game.PlayerMove, game.Outcome, error) {
	m := game.PlayerMove{Player: s.computer}
	if err := s.eval.RecordRivalMove(last); err != nil {
		return m, game.Ongoing, errors.WithMessage(err, "Computer lost track of the board")
	}
	c, err := s.eval.ChooseMove()
	if err != nil {
		return m, game.Ongoing, err
	}
	m.Coord = c
	outcome, err := s.place(s.computer, c)
	return m, outcome, err
}

// Genmove lets the computer choose and play the move for p, the side to move.
// Outside of the computer's own turns the choice is made on the board as it stands.
func (s *Session) Genmove(p game.Player) (game.PlayerMove, game.Outcome, error) {
	m := game.PlayerMove{Player: p}
	if ended, _ := s.board.Ended(); ended {
		return m, s.board.Outcome(), game.ErrGameEnded
	}
	if p != s.board.ToMove() {
		return m, game.Ongoing, game.MoveError(m, game.ErrNotYourTurn)
	}

	eval := s.eval
	switch {
	case s.mode != HumanVsComputer:
		eval = heuristic.Shared(s.board, p, s.tb)
	case p != s.computer:
		return m, game.Ongoing, game.MoveError(m, game.ErrNotYourTurn)
	case s.board.LastMove().Player == p.Opponent():
		return s.reply(s.board.LastMove().Coord)
	}
	c, err := eval.ChooseMove()
	if err != nil {
		return m, game.Ongoing, err
	}
	m.Coord = c
	outcome, err := s.place(p, c)
	return m, outcome, err
}

// place commits a move to the board and settles the tally when the game is decided.
func (s *Session) place(p game.Player, c game.Coord) (game.Outcome, error) {
	outcome, err := s.board.Place(p, c)
	if err != nil {
		return outcome, err
	}
	s.logger.Debug("placed",
		zap.String("game", s.id.String()),
		zap.Stringer("player", p),
		zap.Stringer("at", c),
		zap.Stringer("outcome", outcome))
	s.encode()

	if outcome.Decided() {
		s.played++
		if outcome.Result == game.Win {
			s.wins[outcome.Winner]++
		}
		s.logger.Info("game over",
			zap.String("game", s.id.String()),
			zap.Stringer("outcome", outcome),
			zap.Int("moves", s.board.MoveNumber()),
			zap.Int("black wins", s.wins[game.BlackP]),
			zap.Int("white wins", s.wins[game.WhiteP]))
	}
	return outcome, nil
}

func (s *Session) encode() {
	if s.enc == nil {
		return
	}
	if err := s.enc.Encode(s); err != nil {
		s.logger.Warn("encoding failed", zap.String("game", s.id.String()), zap.Error(err))
	}
}

// IsLegal reports whether a stone may be placed at c.
func (s *Session) IsLegal(c game.Coord) bool { return s.board.IsLegal(c) }

// Snapshot returns a copy of the board for rendering.
func (s *Session) Snapshot() wzq.Grid { return s.board.Snapshot() }

// History is the moves of the current game, oldest first.
func (s *Session) History() []game.PlayerMove { return s.board.History() }

// Outcome is the outcome of the current game so far.
func (s *Session) Outcome() game.Outcome { return s.board.Outcome() }

// ToMove is the player whose turn it is.
func (s *Session) ToMove() game.Player { return s.board.ToMove() }

func (s *Session) Mode() Mode            { return s.mode }
func (s *Session) Computer() game.Player { return s.computer }
func (s *Session) Dimension() int        { return s.conf.Dimension }
func (s *Session) ID() uuid.UUID         { return s.id }

// Evaluator is the computer's evaluator for the current game.
func (s *Session) Evaluator() *heuristic.Evaluator { return s.eval }

// Tally returns how many games each colour has won.
func (s *Session) Tally() (black, white int) { return s.wins[game.BlackP], s.wins[game.WhiteP] }

// Played is the number of games decided so far.
func (s *Session) Played() int { return s.played }

func (s *Session) Name() string      { return fmt.Sprintf("Gomoku %v (%v)", s.id, s.mode) }
func (s *Session) State() game.State { return s.board }

func (s *Session) GameNumber() int {
	if ended, _ := s.board.Ended(); ended {
		return s.played
	}
	return s.played + 1
}
