package agent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quoridor/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal action.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// random[:seed]
func newRandomFromArgs(args []string) (Agent, error) {
	seed := uint64(time.Now().UnixNano())
	if len(args) > 0 {
		parsed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", args[0], err)
		}
		seed = parsed
	}
	return NewRandom(seed), nil
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) Decide(ctx context.Context, snap game.Snapshot) (game.Action, error) {
	if len(snap.Legal) == 0 {
		return game.Action{}, ErrNoLegalActions
	}
	return snap.Legal[r.rng.Intn(len(snap.Legal))], nil
}
