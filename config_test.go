package gomoku

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	conf, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomoku.yaml")
	yaml := "dimension: 9\nmode: hvh\ntiebreak: uniform\nseed: 12\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("GOMOKU_TIEBREAK", "first")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("dimension", 15, "")
	flags.String("view", "shared", "")
	require.NoError(t, flags.Parse([]string{"--view", "private"}))

	conf, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 9, conf.Dimension, "unset flags do not override the file")
	assert.Equal(t, "hvh", conf.Mode)
	assert.Equal(t, "first", conf.TieBreak, "the environment overrides the file")
	assert.Equal(t, "private", conf.View)
	assert.Equal(t, int64(12), conf.Seed)
	assert.Equal(t, "white", conf.Computer)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	bad := []struct {
		name string
		edit func(*Config)
	}{
		{"dimension", func(c *Config) { c.Dimension = 0 }},
		{"mode", func(c *Config) { c.Mode = "cvc" }},
		{"computer", func(c *Config) { c.Computer = "red" }},
		{"tiebreak", func(c *Config) { c.TieBreak = "dice" }},
		{"view", func(c *Config) { c.View = "" }},
		{"games", func(c *Config) { c.Games = -1 }},
	}
	for _, tc := range bad {
		conf := DefaultConfig()
		tc.edit(&conf)
		assert.Error(t, conf.Validate(), tc.name)
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestParseMode(t *testing.T) {
	for _, a := range []string{"hvc", "HvC", "pve", "computer"} {
		m, err := ParseMode(a)
		assert.NoError(t, err)
		assert.Equal(t, HumanVsComputer, m)
	}
	m, err := ParseMode("hvh")
	assert.NoError(t, err)
	assert.Equal(t, HumanVsHuman, m)
	_, err = ParseMode("cvc")
	assert.Error(t, err)
}
