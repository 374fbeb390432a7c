package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorgonia/gomoku"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine answers GTP commands on behalf of a gomoku session.
//
// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
type Engine struct {
	s *gomoku.Session

	known map[string]Command

	ch  chan string
	ret chan string

	name, version string
	quit          bool
	logger        *zap.Logger
}

// New creates an engine for s. A nil known uses StandardLib and a nil logger discards logs.
func New(s *gomoku.Session, name, version string, known map[string]Command, logger *zap.Logger) *Engine {
	if known == nil {
		known = StandardLib()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		s:       s,
		known:   known,
		name:    name,
		version: version,
		logger:  logger,
	}
}

// Start runs the engine in its own goroutine. Every command sent on input gets exactly
// one response on output, except empty lines and comments. Output is closed after
// "quit" is answered or input is closed. Commands sent after quit are discarded until
// input is closed.
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		resp, ok := e.Exec(cmd)
		if !ok {
			continue
		}
		e.ret <- resp
		if e.quit {
			go drain(e.ch)
			return
		}
	}
}

func drain(ch <-chan string) {
	for range ch {
	}
}

// Run reads commands from r line by line and writes the responses to w until quit or EOF.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		resp, ok := e.Exec(scanner.Text())
		if !ok {
			continue
		}
		if _, err := bw.WriteString(resp); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
		if e.quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec executes a single command line. ok is false for lines that need no response.
func (e *Engine) Exec(cmd string) (resp string, ok bool) {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return "", false
	}
	if err != nil {
		return handleErr(id, err), true
	}
	id, result, err := x.Do(id, args, e)
	if err != nil {
		e.logger.Debug("command failed", zap.String("cmd", cmd), zap.Error(err))
	}
	return handleResult(id, result, err), true
}

// Session is the session the engine drives.
func (e *Engine) Session() *gomoku.Session { return e.s }

// Quitting reports whether quit has been answered.
func (e *Engine) Quitting() bool { return e.quit }

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	id = -1
	if len(tokens) == 0 {
		return id, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo does nothing when only an ID is sent
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess drops comments and control characters and lower cases the line.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	a = strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < ' ' || r == 127:
			return -1
		}
		return r
	}, a)
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
