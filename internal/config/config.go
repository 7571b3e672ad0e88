package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	ModePlayerVsPlayer = 1
	ModePlayerVsAI     = 2
	ModeAIVsAI         = 3
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"TTT_LOG_FORMAT" env-default:"text"`
	Mode      int     `yaml:"mode" env:"TTT_MODE" env-default:"0"`
	Depth     int     `yaml:"depth" env:"TTT_DEPTH" env-default:"9"`
	Seed      int64   `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	Players   Players `yaml:"players"`
	Stats     Stats   `yaml:"stats"`
}

type Players struct {
	First  string `yaml:"first" env:"TTT_PLAYER_FIRST" env-default:"Player 1"`
	Second string `yaml:"second" env:"TTT_PLAYER_SECOND" env-default:"Player 2"`
	Bot    string `yaml:"bot" env:"TTT_PLAYER_BOT" env-default:"BOT"`
}

type Stats struct {
	Games     int   `yaml:"games" env:"TTT_STATS_GAMES" env-default:"100"`
	Threads   int   `yaml:"threads" env:"TTT_STATS_THREADS" env-default:"4"`
	Alternate bool  `yaml:"alternate" env:"TTT_STATS_ALTERNATE" env-default:"false"`
	Depths    []int `yaml:"depths" env:"TTT_STATS_DEPTHS" env-default:"1,2,3,4,5,6,7,8"`
}

// MustLoad - load the configuration, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yaml file at path with environment overrides. A missing file
// is not an error, the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		err := cleanenv.ReadConfig(path, config)
		if err == nil {
			return config, config.Validate()
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, err
	}

	return config, config.Validate()
}

func (that *Config) Validate() error {
	if that.Mode < 0 || that.Mode > ModeAIVsAI {
		return fmt.Errorf("mode %d not in [0, %d]", that.Mode, ModeAIVsAI)
	}

	if err := validDepth(that.Depth); err != nil {
		return err
	}
	for _, depth := range that.Stats.Depths {
		if err := validDepth(depth); err != nil {
			return fmt.Errorf("stats: %w", err)
		}
	}

	if that.Stats.Games < 1 || that.Stats.Threads < 1 {
		return fmt.Errorf("stats need at least 1 game and 1 thread, got %d and %d", that.Stats.Games, that.Stats.Threads)
	}

	return nil
}

// The search player needs at least one ply to look ahead
func validDepth(depth int) error {
	if depth < 1 || depth > minimax.MaxDepth {
		return fmt.Errorf("%w: depth %d not in [1, %d]", minimax.ErrInvalidSearchConfiguration, depth, minimax.MaxDepth)
	}
	return nil
}
