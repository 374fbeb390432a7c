package gomoku

import (
	"math/rand"
	"strings"
	"time"

	"github.com/gorgonia/gomoku/game"
	"github.com/gorgonia/gomoku/game/wzq"
	"github.com/gorgonia/gomoku/heuristic"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config configures a session or an arena.
type Config struct {
	Dimension int    `mapstructure:"dimension"` // board side length
	Mode      string `mapstructure:"mode"`      // hvc or hvh
	Computer  string `mapstructure:"computer"`  // colour the computer plays in hvc
	TieBreak  string `mapstructure:"tiebreak"`  // coinflip, uniform or first
	View      string `mapstructure:"view"`      // shared or private evaluator view
	Seed      int64  `mapstructure:"seed"`      // 0 seeds from the clock

	Games int    `mapstructure:"games"` // arena games; 0 plays interactively
	GIF   string `mapstructure:"gif"`   // replay output file
	Debug bool   `mapstructure:"debug"`
}

// DefaultConfig is a 15x15 human vs computer game, the computer playing White.
func DefaultConfig() Config {
	return Config{
		Dimension: wzq.Size,
		Mode:      HumanVsComputer.String(),
		Computer:  "white",
		TieBreak:  "coinflip",
		View:      "shared",
	}
}

// LoadConfig reads the configuration from, in increasing precedence, the defaults,
// the config file at path (if any), GOMOKU_* environment variables and flags.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("dimension", def.Dimension)
	v.SetDefault("mode", def.Mode)
	v.SetDefault("computer", def.Computer)
	v.SetDefault("tiebreak", def.TieBreak)
	v.SetDefault("view", def.View)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("games", def.Games)
	v.SetDefault("gif", def.GIF)
	v.SetDefault("debug", def.Debug)

	v.SetEnvPrefix("gomoku")
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, errors.WithMessage(err, "Unable to bind flags")
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "Unable to read config %q", path)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errors.WithMessage(err, "Unable to decode config")
	}
	return conf, conf.Validate()
}

// Validate checks the config describes a playable game.
func (conf Config) Validate() error {
	if conf.Dimension < 1 {
		return errors.Errorf("Invalid dimension %d", conf.Dimension)
	}
	if _, err := ParseMode(conf.Mode); err != nil {
		return err
	}
	if _, ok := game.ParsePlayer(conf.Computer); !ok {
		return errors.Errorf("Invalid computer colour %q", conf.Computer)
	}
	if _, err := heuristic.NewTieBreaker(conf.TieBreak, nil); err != nil {
		return err
	}
	switch conf.View {
	case "shared", "private":
	default:
		return errors.Errorf("Invalid evaluator view %q. Use shared or private", conf.View)
	}
	if conf.Games < 0 {
		return errors.Errorf("Invalid number of games %d", conf.Games)
	}
	return nil
}

// ParseMode parses "hvc" or "hvh".
func ParseMode(a string) (Mode, error) {
	switch strings.ToLower(a) {
	case "hvc", "pve", "computer":
		return HumanVsComputer, nil
	case "hvh", "pvp", "human":
		return HumanVsHuman, nil
	}
	return 0, errors.Errorf("Unknown mode %q", a)
}

func (conf Config) rand() *rand.Rand {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (conf Config) computer() game.Player {
	p, _ := game.ParsePlayer(conf.Computer)
	return p
}
