package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDistance(t *testing.T) {
	t.Run("symmetric opening", func(t *testing.T) {
		gs := newTestState(t, 9, 10)
		require.Equal(t, 0.0, EvaluateDistance(gs))
	})

	t.Run("opponent ahead", func(t *testing.T) {
		gs := newTestState(t, 9, 10)
		next := gs.Play(NewMove(0, Cell{1, 4}))

		// Player 1 to move, 8 steps away against player 0's 7
		require.InDelta(t, -1.0/15, EvaluateDistance(next), 1e-9)
	})

	t.Run("terminal", func(t *testing.T) {
		gs := newTestState(t, 3, 0)
		placePawns(gs, Cell{1, 0}, Cell{2, 2})
		won := gs.Play(NewMove(0, Cell{2, 0})).(*GameState)

		require.Equal(t, 1.0, EvaluateDistance(won), "Winner is still the current player")
		won.CurrentPlayer = 1
		require.Equal(t, -1.0, EvaluateDistance(won))
	})
}

func TestEvaluateDistanceWalls(t *testing.T) {
	gs := newTestState(t, 9, 10)
	require.Equal(t, 0.0, EvaluateDistanceWalls(gs))

	gs.WallsLeft[1] = 0
	// Equal distances, all the walls: (2*0 + 1) / 3
	require.InDelta(t, 1.0/3, EvaluateDistanceWalls(gs), 1e-9)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, 0.0, normalize(0, 0))
	require.Equal(t, 1.0, normalize(3, 0))
	require.Equal(t, -0.5, normalize(1, 3))
}
