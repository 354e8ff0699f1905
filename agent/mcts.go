package agent

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"golang.org/x/exp/rand"
)

// MCTS picks actions with a tree search. In evaluation mode it plays the
// most visited action; in training mode it samples from the
// temperature-adjusted visit distribution.
type MCTS struct {
	name        string
	mcts        *searcher.MCTS
	training    bool
	temperature float64
	rng         *rand.Rand
	last        metrics.SearchMetric
}

// NewEvaluationAgent returns an agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) *MCTS {
	return &MCTS{name: "mcts", mcts: mcts}
}

// NewTrainingAgent returns an agent for self-play during training.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) *MCTS {
	if temperature <= 0 {
		temperature = 1
	}
	return &MCTS{
		name:        "mcts-train",
		mcts:        mcts,
		training:    true,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// mcts:goroutines,episodes[,cutoff[,evaluation]]
// mcts-train:goroutines,episodes[,temperature[,seed]]
func newMCTSFromArgs(training bool) builder {
	return func(args []string) (Agent, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("expected at least goroutines and episodes")
		}
		ints, err := parseInts(args[:2])
		if err != nil {
			return nil, err
		}
		if ints[0] <= 0 || ints[1] <= 0 {
			return nil, fmt.Errorf("goroutines and episodes must be positive")
		}
		options := []searcher.Option{searcher.WithEpisodes(ints[1]), searcher.WithMetrics()}

		if !training {
			if len(args) > 2 {
				cutoff, err := strconv.Atoi(args[2])
				if err != nil {
					return nil, fmt.Errorf("invalid cutoff %q: %w", args[2], err)
				}
				options = append(options, searcher.WithCutoff(cutoff))
			}
			if len(args) > 3 {
				evaluate, err := evaluationFn(args[3])
				if err != nil {
					return nil, err
				}
				options = append(options, searcher.WithEvaluationFn(evaluate))
			}
			return NewEvaluationAgent(searcher.NewMCTS(ints[0], options...)), nil
		}

		temperature := 1.0
		if len(args) > 2 {
			temperature, err = strconv.ParseFloat(args[2], 64)
			if err != nil || temperature <= 0 {
				return nil, fmt.Errorf("invalid temperature %q", args[2])
			}
		}
		seed := uint64(time.Now().UnixNano())
		if len(args) > 3 {
			seed, err = strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid seed %q: %w", args[3], err)
			}
			options = append(options, searcher.WithSeed(seed))
		}
		return NewTrainingAgent(searcher.NewMCTS(ints[0], options...), temperature, seed), nil
	}
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		ints[i] = n
	}
	return ints, nil
}

func evaluationFn(name string) (game.Evaluate, error) {
	switch name {
	case "distance":
		return game.EvaluateDistance, nil
	case "walls":
		return game.EvaluateDistanceWalls, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}

func (a *MCTS) Name() string {
	return a.name
}

// LastMetric returns the search metrics of the latest decision.
func (a *MCTS) LastMetric() metrics.SearchMetric {
	return a.last
}

func (a *MCTS) Decide(ctx context.Context, snap game.Snapshot) (game.Action, error) {
	state := snap.State()
	if state == nil || len(snap.Legal) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	policy, metric := a.mcts.Simulate(ctx, state)
	a.last = metric
	if len(policy) == 0 {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}
		return game.Action{}, fmt.Errorf("search explored no actions")
	}

	if a.training {
		return sample(adjustTemperature(policy, a.temperature), snap.Legal, a.rng), nil
	}
	best, _ := policy.Best(snap.Legal)
	return best, nil
}

func adjustTemperature(policy searcher.Policy, temperature float64) searcher.Policy {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(searcher.Policy, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample draws from policy, walking actions in order so a fixed seed gives a fixed choice.
func sample(policy searcher.Policy, order []game.Action, rng *rand.Rand) game.Action {
	sampled := rng.Float64()
	cumulative := 0.0
	var lastMove game.Action
	for _, move := range order {
		prob, ok := policy[move]
		if !ok {
			continue
		}
		lastMove = move
		cumulative += prob
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
