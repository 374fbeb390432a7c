package gomoku

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/chewxy/math32"
)

// Statistics keeps each agent's running totals, one entry per game played.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 2),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(A *Agent) {
	aname := A.Name()

	if _, ok := s.Wins[aname]; !ok {
		s.Creation = append(s.Creation, aname)
	}

	s.Wins[aname] = append(s.Wins[aname], A.Wins)
	s.Losses[aname] = append(s.Losses[aname], A.Loss)
	s.Draws[aname] = append(s.Draws[aname], A.Draw)
}

// WinRate is the share of games the named agent won after its i-th game.
// Unknown agents and games have a win rate of 0.
func (s *Statistics) WinRate(name string, i int) float32 {
	wins := s.Wins[name]
	if i < 0 || i >= len(wins) {
		return 0
	}
	rate := wins[i] / (wins[i] + s.Losses[name][i] + s.Draws[name][i])
	if math32.IsNaN(rate) || math32.IsInf(rate, 0) {
		return 0
	}
	return rate
}

// Games is the number of games recorded for the named agent.
func (s *Statistics) Games(name string) int { return len(s.Wins[name]) }

// Dump writes the win rate of every agent after every game as CSV, one game per row.
func (s *Statistics) Dump(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"game"}, s.Creation...)
	if err := cw.Write(header); err != nil {
		return err
	}
	var games int
	for _, agent := range s.Creation {
		if n := s.Games(agent); n > games {
			games = n
		}
	}
	records := make([][]string, 0, games)
	for j := 0; j < games; j++ {
		record := make([]string, len(header))
		record[0] = strconv.Itoa(j + 1)
		for i, agent := range s.Creation {
			record[i+1] = strconv.FormatFloat(float64(s.WinRate(agent, j)), 'f', 3, 32)
		}
		records = append(records, record)
	}
	return cw.WriteAll(records)
}
