package engine

import (
	"context"
	"fmt"
	"time"

	"quoridor/agent"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/session"

	"github.com/rs/zerolog/log"
)

// Engine drives one session with an agent per player.
type Engine struct {
	Session *session.Session
	Agents  []agent.Agent

	maxTurns    int
	maxAttempts int
	onTurn      func(game.Snapshot)
}

func LocalEngine(s *session.Session, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != len(s.Snapshot().Pawns) {
		panic("number of players does not match number of agents")
	}

	e := defaults()
	e.Session = s
	e.Agents = agents
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until there's a winner or the turn limit is reached. The
// winner is game.NoPlayer when the limit was hit. A cancelled context or a
// stalled position ends the game early with an error.
func (e *Engine) Run(ctx context.Context) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	snap := e.Session.Snapshot()
	gameMetric := metrics.GameMetric{
		ID:             e.Session.ID(),
		StartingPlayer: snap.CurrentPlayer,
		Winner:         game.NoPlayer,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d (%s) is starting", snap.CurrentPlayer, e.Agents[snap.CurrentPlayer].Name())

	finish := func(err error) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
		e.onTurn(e.Session.Snapshot())
		gameMetric.Winner = e.Session.Winner()
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		return gameMetric.Winner, gameMetric, moveMetrics, err
	}

	// Loop until there's a winner
	for turn := 1; e.Session.Status() == session.InProgress && turn <= e.maxTurns; turn++ {
		snap = e.Session.Snapshot()
		e.onTurn(snap)

		moveMetric, err := e.playTurn(ctx, turn, snap)
		if err != nil {
			return finish(err)
		}
		if moveMetric.Fallback {
			gameMetric.Fallbacks++
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	if winner := e.Session.Winner(); winner != game.NoPlayer {
		log.Info().Msgf("game %s ended with winner: player %d", e.Session.ID(), winner)
	} else {
		log.Info().Msgf("game %s stopped after %d turns with no winner", e.Session.ID(), e.maxTurns)
	}
	return finish(nil)
}

// playTurn asks the current agent for up to maxAttempts actions and falls
// back to the first legal action if none is accepted.
func (e *Engine) playTurn(ctx context.Context, turn int, snap game.Snapshot) (metrics.MoveMetric, error) {
	player := snap.CurrentPlayer
	current := e.Agents[player]
	moveMetric := metrics.MoveMetric{Step: turn, Player: player}

	if len(snap.Legal) == 0 {
		return moveMetric, fmt.Errorf("turn %d: %w", turn, ErrStalled)
	}

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		moveMetric.Attempts = attempt

		action, err := current.Decide(ctx, snap)
		if reporter, ok := current.(SearchReporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return moveMetric, fmt.Errorf("turn %d: %w", turn, ctxErr)
		}
		if err != nil {
			log.Warn().Err(err).Msgf("player %d (%s) failed to decide, attempt %d of %d", player, current.Name(), attempt, e.maxAttempts)
			continue
		}

		if _, err := e.Session.Propose(action); err != nil {
			log.Warn().Err(err).Msgf("player %d (%s) proposed an illegal action, attempt %d of %d", player, current.Name(), attempt, e.maxAttempts)
			continue
		}
		moveMetric.Action = action.String()
		return moveMetric, nil
	}

	fallback := snap.Legal[0]
	log.Warn().Msgf("player %d (%s) out of attempts, playing %s", player, current.Name(), fallback)
	if _, err := e.Session.Propose(fallback); err != nil {
		return moveMetric, fmt.Errorf("turn %d: fallback rejected: %w", turn, err)
	}
	moveMetric.Action = fallback.String()
	moveMetric.Fallback = true
	return moveMetric, nil
}
