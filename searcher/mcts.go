package searcher

import (
	"context"
	"sync"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ReuseDepth is how many plies below the previous root the searcher looks
// for the new root before discarding the tree.
const ReuseDepth = 2

type Option func(mcts *MCTS)

// MCTS is a tree-parallel Monte Carlo tree search with virtual loss. An
// MCTS keeps its tree between searches, so each instance serves one player.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
	calls      uint64
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithSeed makes rollouts reproducible for a fixed number of goroutines.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		seed:       uint64(time.Now().UnixNano()),
		evaluate:   game.EvaluateDistance,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.goroutines <= 0 {
		panic("Must use at least one goroutine")
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state and returns the root's visit counts per
// action with the search metrics. It stops early when ctx is done.
func (m *MCTS) Simulate(ctx context.Context, state game.State) (Policy, metrics.SearchMetric) {
	m.findRoot(state)
	m.calls++

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(ctx, state)
	} else {
		m.countdown(ctx, state)
	}
	metric := m.metrics.Complete()

	// Output move policy and move finding metrics
	return m.root.Policy(), metric
}

func (m *MCTS) iterate(ctx context.Context, state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := m.rng(i)
		go func() {
			defer wg.Done()

			for range task {
				if ctx.Err() != nil {
					return
				}
				m.simulate(state, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(ctx context.Context, state game.State) {
	ctx, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := m.rng(i)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
					m.simulate(state, rng)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	wg.Wait()
}

// rng returns the rollout source for worker i of the current search.
func (m *MCTS) rng(i int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + m.calls*uint64(m.goroutines+1) + uint64(i)))
}

func (m *MCTS) findRoot(state game.State) {
	var root *decision
	if m.root != nil {
		root = m.root.find(state.Hash(), ReuseDepth)
	}

	if root == nil {
		m.root = newDecision(nil, game.NoPlayer, state)
		m.metrics.SetTreeReset(true)
		return
	}

	log.Debug().Msgf("reusing search tree with %.0f visits", root.Visits())
	root.parent = nil
	m.root = root
	m.metrics.SetTreeReset(false)
}

func (m *MCTS) simulate(state game.State, rng *rand.Rand) {
	newNode, newState := selectThenExpand(m.root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, rng, m.metrics)
	backup(newNode, player, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics metrics.Collector) (int, float64) {
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for state.Winner() == game.NoPlayer && depth < cutoff {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		depth++
	}

	if winner := state.Winner(); winner != game.NoPlayer { // Game over before cutoff
		metrics.AddFullPlayout()
		return winner, Win
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode *decision, player int, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(player, score)
		node = parent
	}
}
