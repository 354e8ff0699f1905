package agent

import (
	"context"
	"fmt"

	"quoridor/game"
)

// Greedy walks its shortest path. When the opponent is strictly closer to
// their goal it first tries the wall that gains the most distance on them.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func newGreedyFromArgs(args []string) (Agent, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("greedy takes no arguments")
	}
	return NewGreedy(), nil
}

func (g *Greedy) Name() string {
	return "greedy"
}

func (g *Greedy) Decide(ctx context.Context, snap game.Snapshot) (game.Action, error) {
	if len(snap.Legal) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	board := snap.Board()
	me := snap.Pawns[snap.CurrentPlayer]
	opponent := snap.Pawns[(snap.CurrentPlayer+1)%len(snap.Pawns)]
	myDistance := game.Distance(board, me.Cell, me.Goal)
	theirDistance := game.Distance(board, opponent.Cell, opponent.Goal)

	if theirDistance < myDistance && snap.WallsLeft[snap.CurrentPlayer] > 0 {
		if wall, ok := bestWall(snap, myDistance, theirDistance); ok {
			return wall, nil
		}
	}

	var best game.Action
	bestDistance := -1
	for _, a := range snap.Legal {
		if a.Type != game.MovePawn {
			continue
		}
		d := game.Distance(board, a.To, me.Goal)
		if d >= 0 && (bestDistance < 0 || d < bestDistance) {
			best = a
			bestDistance = d
		}
	}
	if bestDistance < 0 {
		return snap.Legal[0], nil
	}
	return best, nil
}

// bestWall returns the legal wall that most widens the distance gap in our favour.
func bestWall(snap game.Snapshot, myDistance, theirDistance int) (game.Action, bool) {
	board := snap.Board()
	me := snap.Pawns[snap.CurrentPlayer]
	opponent := snap.Pawns[(snap.CurrentPlayer+1)%len(snap.Pawns)]

	var best game.Action
	bestGain := 0
	for _, a := range snap.Legal {
		if a.Type != game.PlaceWall {
			continue
		}
		walled := board.WithWall(a.Wall)
		gain := (game.Distance(walled, opponent.Cell, opponent.Goal) - theirDistance) -
			(game.Distance(walled, me.Cell, me.Goal) - myDistance)
		if gain > bestGain {
			best = a
			bestGain = gain
		}
	}
	return best, bestGain > 0
}
