package game

import (
	"fmt"
	"strings"

	"quoridor/meta"
)

// DiagonalRule selects when a pawn may jump diagonally around an adjacent pawn.
type DiagonalRule int

const (
	// DiagonalWhenBlocked allows diagonal jumps whenever the straight jump is
	// unavailable: blocked by a wall, by the board edge, or by another pawn.
	DiagonalWhenBlocked DiagonalRule = iota
	// DiagonalWallOnly allows diagonal jumps only when a wall blocks the
	// straight jump.
	DiagonalWallOnly
	// DiagonalNever disables diagonal jumps.
	DiagonalNever
)

func (d DiagonalRule) String() string {
	switch d {
	case DiagonalWhenBlocked:
		return "blocked"
	case DiagonalWallOnly:
		return "wall-only"
	case DiagonalNever:
		return "never"
	default:
		return fmt.Sprintf("diagonal(%d)", int(d))
	}
}

func ParseDiagonalRule(s string) (DiagonalRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blocked":
		return DiagonalWhenBlocked, nil
	case "wall-only", "wall":
		return DiagonalWallOnly, nil
	case "never", "none":
		return DiagonalNever, nil
	default:
		return 0, fmt.Errorf("unknown diagonal rule %q", s)
	}
}

// Config holds the parameters fixed at game creation.
type Config struct {
	BoardSize      int
	WallsPerPlayer int
	Players        int
	Diagonal       DiagonalRule
}

// DefaultConfig returns the classical 9x9 two-player game with 10 walls each.
func DefaultConfig() Config {
	return Config{
		BoardSize:      meta.BOARD_SIZE,
		WallsPerPlayer: meta.WALLS_PER_PLAYER,
		Players:        meta.PLAYERS,
		Diagonal:       DiagonalWhenBlocked,
	}
}

// Validate returns a *ConfigError describing the first invalid parameter.
func (c Config) Validate() error {
	if c.BoardSize < 3 {
		return &ConfigError{Field: "BoardSize", Value: c.BoardSize, Reason: "must be at least 3"}
	}
	if c.WallsPerPlayer < 0 {
		return &ConfigError{Field: "WallsPerPlayer", Value: c.WallsPerPlayer, Reason: "must not be negative"}
	}
	if c.Players != 2 {
		return &ConfigError{Field: "Players", Value: c.Players, Reason: "only two-player games are supported"}
	}
	if c.Diagonal < DiagonalWhenBlocked || c.Diagonal > DiagonalNever {
		return &ConfigError{Field: "Diagonal", Value: int(c.Diagonal), Reason: "unknown diagonal rule"}
	}
	return nil
}
