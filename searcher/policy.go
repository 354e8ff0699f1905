package searcher

import (
	"math"

	"quoridor/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a won playout
const Loss = -Win // Reward for a lost playout, also used as the virtual loss

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// selectChild returns the index of the child with the highest UCT value.
// Children hold rewards from the perspective of the player choosing among them.
func selectChild(children []*decision) int {
	if len(children) == 0 {
		panic("node has no children")
	}

	stats := make([][2]float64, len(children))
	total := 0.0
	for i, child := range children {
		stats[i][0], stats[i][1] = child.stats()
		total += stats[i][1]
	}

	policy := newUCT(CSquared, total)
	best := 0
	bestScore := math.Inf(-1)
	for i, s := range stats {
		if score := policy.evaluate(s[0], s[1]); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// Policy maps each explored action at the root to its visit count.
type Policy map[game.Action]float64

// Best returns the most visited action. Ties go to the action listed first in order.
func (p Policy) Best(order []game.Action) (game.Action, bool) {
	var best game.Action
	found := false
	maxVisits := -1.0
	for _, a := range order {
		visits, ok := p[a]
		if !ok {
			continue
		}
		if visits > maxVisits {
			maxVisits = visits
			best = a
			found = true
		}
	}
	return best, found
}
