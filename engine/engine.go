package engine

import (
	"errors"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
)

// ErrStalled is returned when the player to move has no legal action at all.
var ErrStalled = errors.New("player to move has no legal actions")

// SearchReporter is implemented by agents that collect search metrics.
type SearchReporter interface {
	LastMetric() metrics.SearchMetric
}

type Option func(e *Engine)

// WithMaxTurns caps the accepted actions before the game is abandoned.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithMaxAttempts sets how many times an agent may propose before the
// engine plays the first legal action for it.
func WithMaxAttempts(attempts int) Option {
	return func(e *Engine) {
		if attempts > 0 {
			e.maxAttempts = attempts
		}
	}
}

// WithSnapshotHook calls fn with the snapshot before every turn and once
// more with the final snapshot.
func WithSnapshotHook(fn func(game.Snapshot)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onTurn = fn
		}
	}
}

func defaults() *Engine {
	return &Engine{
		maxTurns:    meta.MAX_TURNS,
		maxAttempts: meta.MAX_ATTEMPTS,
		onTurn:      func(game.Snapshot) {},
	}
}
