package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/gomoku"
	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
)

// Command is a GTP command the engine knows.
type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string      { e.quit = true; return "" }
func showboard(e *Engine) string { return fmt.Sprintf("\n%v", e.s.Snapshot()) }

func tally(e *Engine) string {
	black, white := e.s.Tally()
	return fmt.Sprintf("black %d white %d", black, white)
}

func clearBoard(e *Engine, args []string) (string, error) {
	return "", e.s.NewGame()
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	newsize, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if newsize < 1 || newsize > MaxSize {
		return "", errors.New("unacceptable size")
	}
	return "", e.s.Resize(newsize)
}

func playerArg(cmd string, args []string) (game.Player, error) {
	if len(args) == 0 {
		return game.Player(game.None), errors.Errorf("Not enough arguments for %q", cmd)
	}
	p, ok := game.ParsePlayer(args[0])
	if !ok {
		return p, errors.Errorf("Invalid color %q", args[0])
	}
	return p, nil
}

// play places a stone. Against the computer the reply is played at once and its
// vertex returned.
func play(e *Engine, args []string) (string, error) {
	p, err := playerArg("play", args)
	if err != nil {
		return "", err
	}
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	n := e.s.Dimension()
	c, err := ParseVertex(args[1], n)
	if err != nil {
		return "", err
	}
	moves, _, err := e.s.PlayAs(p, c)
	if err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	if len(moves) > 1 {
		return FormatVertex(moves[len(moves)-1].Coord, n), nil
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	p, err := playerArg("genmove", args)
	if err != nil {
		return "", err
	}
	m, _, err := e.s.Genmove(p)
	if err != nil {
		return "", err
	}
	return FormatVertex(m.Coord, e.s.Dimension()), nil
}

func mode(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return e.s.Mode().String(), nil
	}
	m, err := gomoku.ParseMode(args[0])
	if err != nil {
		return "", err
	}
	return "", e.s.SwitchMode(m)
}

func finalScore(e *Engine, args []string) (string, error) {
	outcome := e.s.Outcome()
	switch outcome.Result {
	case game.Win:
		if outcome.Winner == game.BlackP {
			return "B+", nil
		}
		return "W+", nil
	case game.Draw:
		return "0", nil
	}
	return "", errors.New("Game is not over")
}

// history lists the moves of the current game, one per line.
func history(e *Engine, args []string) (string, error) {
	var buf bytes.Buffer
	n := e.s.Dimension()
	for i, m := range e.s.History() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%v %v", m.Player, FormatVertex(m.Coord, n))
	}
	return buf.String(), nil
}

// StandardLib is the command set of a gomoku engine.
func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"showboard":        stdlib(showboard),
		"tally":            stdlib(tally),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"clear_board":   stdlib2(clearBoard),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"mode":          stdlib2(mode),
		"final_score":   stdlib2(finalScore),
		"history":       stdlib2(history),
	}
}
