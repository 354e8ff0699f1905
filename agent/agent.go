package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quoridor/game"

	"golang.org/x/exp/slices"
)

// ErrNoLegalActions is returned when asked to decide in a position with no legal action.
var ErrNoLegalActions = errors.New("no legal actions")

// Agent decides an action for the current player of a snapshot.
type Agent interface {
	Name() string
	Decide(ctx context.Context, snap game.Snapshot) (game.Action, error)
}

type builder func(args []string) (Agent, error)

var registry = map[string]builder{}

// Register makes an agent type available to New. It panics on a duplicate name.
func Register(name string, build func(args []string) (Agent, error)) {
	name = strings.ToLower(name)
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("agent type %q already registered", name))
	}
	registry[name] = build
}

// Types lists the registered agent types.
func Types() []string {
	types := make([]string, 0, len(registry))
	for name := range registry {
		types = append(types, name)
	}
	slices.Sort(types)
	return types
}

// New builds an agent from a spec of the form "type" or "type:arg1,arg2",
// e.g. "random:42" or "mcts:8,200".
func New(spec string) (Agent, error) {
	kind, rawArgs, _ := strings.Cut(strings.TrimSpace(spec), ":")
	kind = strings.ToLower(kind)

	build, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown agent type %q, available: %s", kind, strings.Join(Types(), ", "))
	}

	var args []string
	if rawArgs != "" {
		for _, arg := range strings.Split(rawArgs, ",") {
			args = append(args, strings.TrimSpace(arg))
		}
	}

	a, err := build(args)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %q with args %v: %w", kind, args, err)
	}
	return a, nil
}

func init() {
	Register("random", newRandomFromArgs)
	Register("greedy", newGreedyFromArgs)
	Register("mcts", newMCTSFromArgs(false))
	Register("mcts-train", newMCTSFromArgs(true))
	Register("human", newHumanFromArgs)
}
