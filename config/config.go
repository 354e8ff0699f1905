package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"quoridor/game"
	"quoridor/meta"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// Config holds the runner settings. Values are layered: defaults, then the
// YAML file, then the environment, then command-line flags in main.
type Config struct {
	BoardSize      int      `yaml:"board_size" env:"QUORIDOR_BOARD_SIZE"`
	WallsPerPlayer int      `yaml:"walls_per_player" env:"QUORIDOR_WALLS"`
	Diagonal       string   `yaml:"diagonal" env:"QUORIDOR_DIAGONAL"`
	Agents         []string `yaml:"agents" env:"QUORIDOR_AGENTS" envSeparator:";"`
	Games          int      `yaml:"games" env:"QUORIDOR_GAMES"`
	MaxTurns       int      `yaml:"max_turns" env:"QUORIDOR_MAX_TURNS"`
	MaxAttempts    int      `yaml:"max_attempts" env:"QUORIDOR_MAX_ATTEMPTS"`
	Experiment     string   `yaml:"experiment" env:"QUORIDOR_EXPERIMENT"`
	OutDir         string   `yaml:"out_dir" env:"QUORIDOR_OUT_DIR"`
	PrintSnapshot  bool     `yaml:"print_snapshot" env:"PRINT_SNAPSHOT"`
	LogLevel       string   `yaml:"log_level" env:"QUORIDOR_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		BoardSize:      meta.BOARD_SIZE,
		WallsPerPlayer: meta.WALLS_PER_PLAYER,
		Diagonal:       game.DiagonalWhenBlocked.String(),
		Agents:         []string{"greedy", fmt.Sprintf("mcts:%d,%d,%d", meta.GO_ROUTINES, meta.EPISODES, meta.WITH_CUTOFF)},
		Games:          1,
		MaxTurns:       meta.MAX_TURNS,
		MaxAttempts:    meta.MAX_ATTEMPTS,
		Experiment:     "match",
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment
// over the defaults. A .env file in the working directory is loaded first
// if present; it never overrides variables already set. The result is not
// validated, so flags can still override it; call Validate once done.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// GameConfig converts the board settings for the rules engine.
func (c Config) GameConfig() (game.Config, error) {
	diagonal, err := game.ParseDiagonalRule(c.Diagonal)
	if err != nil {
		return game.Config{}, err
	}
	gc := game.Config{
		BoardSize:      c.BoardSize,
		WallsPerPlayer: c.WallsPerPlayer,
		Players:        meta.PLAYERS,
		Diagonal:       diagonal,
	}
	return gc, gc.Validate()
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

func (c Config) Validate() error {
	if _, err := c.GameConfig(); err != nil {
		return err
	}
	if len(c.Agents) != meta.PLAYERS {
		return fmt.Errorf("expected %d agents, got %d", meta.PLAYERS, len(c.Agents))
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.Experiment {
	case "match", "cutoff", "parallel":
	default:
		return fmt.Errorf("unknown experiment %q", c.Experiment)
	}
	return nil
}
