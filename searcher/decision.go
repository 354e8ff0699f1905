package searcher

import (
	"sync"

	"quoridor/game"
)

type decision struct {
	sync.RWMutex
	parent     *decision
	mover      int // Player whose action led here, NoPlayer at the root
	player     int // Player to move
	hash       game.StateHash
	unexplored []game.Action
	explored   []game.Action
	children   []*decision
	rewards    float64 // From the mover's perspective
	visits     float64
}

func newDecision(parent *decision, mover int, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:     parent,
		mover:      mover,
		player:     state.Player(),
		hash:       state.Hash(),
		unexplored: moves,
		explored:   make([]game.Action, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level from d. It expands the next unexplored
// action if any, otherwise selects the UCT-best child. The returned child
// carries a virtual loss. A terminal node returns itself.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[0]
		d.unexplored = d.unexplored[1:]
		next := state.Play(move)
		child := newDecision(d, d.player, next)
		child.applyLoss()
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		return child, next, false
	}

	// Fully expanded node
	ith := selectChild(d.children)
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Backup records a playout scored from player's perspective and returns the parent.
func (d *decision) Backup(player int, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.mover, player, score)
	d.visits++

	return d.parent
}

func (d *decision) stats() (rewards, visits float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

func (d *decision) Visits() float64 {
	_, visits := d.stats()
	return visits
}

// Policy returns the visit counts of the explored actions.
func (d *decision) Policy() Policy {
	d.RLock()
	defer d.RUnlock()

	policy := make(Policy, len(d.explored))
	for i, move := range d.explored {
		policy[move] = d.children[i].Visits()
	}
	return policy
}

// find returns the descendant within depth plies whose state hash matches.
func (d *decision) find(hash game.StateHash, depth int) *decision {
	if d.hash == hash {
		return d
	}
	if depth == 0 {
		return nil
	}
	for _, child := range d.children {
		if found := child.find(hash, depth-1); found != nil {
			return found
		}
	}
	return nil
}
