package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gorgonia/gomoku"
	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var script = []game.Coord{
	{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 7, Y: 6}, {X: 8, Y: 8},
	{X: 6, Y: 6}, {X: 9, Y: 9}, {X: 5, Y: 5},
}

// A scripted Black plays against the computer, printing the board after every exchange.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	outcome, err := play(os.Stdout, script, logger)
	if err != nil {
		logger.Fatal("game aborted", zap.Error(err))
	}
	fmt.Println(outcome)
}

func play(w io.Writer, moves []game.Coord, logger *zap.Logger) (game.Outcome, error) {
	board, computer := gomoku.NewGame(15)
	for _, c := range moves {
		if !board.IsLegal(c) {
			logger.Info("intersection taken, skipping", zap.Stringer("at", c))
			continue
		}
		outcome, err := board.Place(game.BlackP, c)
		if err != nil {
			return outcome, err
		}
		if outcome.Decided() {
			fmt.Fprintf(w, "%v\n", board)
			return outcome, nil
		}
		if err = computer.RecordRivalMove(c); err != nil {
			return outcome, errors.WithMessage(err, "Computer lost track of the board")
		}
		reply, err := computer.ChooseMove()
		if err != nil {
			return outcome, err
		}
		if outcome, err = board.Place(game.WhiteP, reply); err != nil {
			return outcome, err
		}
		logger.Debug("exchange", zap.Stringer("black", c), zap.Stringer("white", reply))
		fmt.Fprintf(w, "Black %v, White %v\n%v\n", c, reply, board)
		if outcome.Decided() {
			return outcome, nil
		}
	}
	return board.Outcome(), nil
}
