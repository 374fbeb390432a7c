package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/gorgonia/gomoku"
	"github.com/gorgonia/gomoku/encoding/gif"
	"github.com/gorgonia/gomoku/gtp"
	"github.com/gorgonia/gomoku/heuristic"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	flags := pflag.NewFlagSet("gomoku", pflag.ExitOnError)
	def := gomoku.DefaultConfig()
	path := flags.String("config", "", "config file")
	flags.Int("dimension", def.Dimension, "board side length")
	flags.String("mode", def.Mode, "hvc (human vs computer) or hvh (human vs human)")
	flags.String("computer", def.Computer, "colour the computer plays in hvc mode")
	flags.String("tiebreak", def.TieBreak, "how equally scored moves are picked: coinflip, uniform or first")
	flags.String("view", def.View, "whether the computer reads the board (shared) or keeps its own copy (private)")
	flags.Int64("seed", def.Seed, "random seed, 0 seeds from the clock")
	flags.Int("games", def.Games, "play this many computer vs computer games and print statistics")
	flags.String("gif", def.GIF, "write a replay of every position to this file")
	flags.Bool("debug", def.Debug, "log every move")
	flags.Parse(os.Args[1:])

	conf, err := gomoku.LoadConfig(*path, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(2)
	}

	var logger *zap.Logger
	if conf.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err = run(conf, logger); err != nil {
		logger.Error("gomoku failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(conf gomoku.Config, logger *zap.Logger) (err error) {
	var enc *gif.Encoder
	if conf.GIF != "" {
		var f *os.File
		if f, err = os.Create(conf.GIF); err != nil {
			return errors.Wrap(err, "Unable to create replay file")
		}
		defer f.Close()
		enc = gif.NewEncoder(f, 800, 800)
		defer func() {
			if ferr := enc.Flush(); ferr != nil && err == nil {
				err = ferr
			}
		}()
	}

	if conf.Games > 0 {
		return arena(conf, enc, logger)
	}

	s, err := gomoku.NewSession(conf, logger)
	if err != nil {
		return err
	}
	if enc != nil {
		s.SetEncoder(enc)
		// the opening position was reached before the encoder was set
		if err = enc.Encode(s); err != nil {
			return err
		}
	}
	e := gtp.New(s, "gomoku", version, nil, logger)
	return e.Run(os.Stdin, os.Stdout)
}

func arena(conf gomoku.Config, enc *gif.Encoder, logger *zap.Logger) error {
	seed := conf.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	r := rand.New(rand.NewSource(seed))
	agent := func(name string) (*gomoku.Agent, error) {
		tb, err := heuristic.NewTieBreaker(conf.TieBreak, rand.New(rand.NewSource(r.Int63())))
		if err != nil {
			return nil, err
		}
		return gomoku.NewAgent(name, tb), nil
	}
	a, err := agent("A")
	if err != nil {
		return err
	}
	b, err := agent("B")
	if err != nil {
		return err
	}

	ar := gomoku.NewArena(conf.Dimension, a, b, r, "", logger)
	var out gomoku.OutputEncoder
	if enc != nil {
		out = enc
	}
	stats, err := ar.Run(conf.Games, out)
	if err != nil {
		return err
	}
	return stats.Dump(os.Stdout)
}
