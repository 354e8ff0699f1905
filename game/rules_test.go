package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, size, walls int) *GameState {
	t.Helper()
	gs, err := NewGameState(Config{BoardSize: size, WallsPerPlayer: walls, Players: 2})
	require.NoError(t, err)
	return gs
}

// placePawns moves both pawns without going through the rules.
func placePawns(gs *GameState, p0, p1 Cell) {
	gs.Pawns[0].Cell = p0
	gs.Pawns[1].Cell = p1
}

func TestNewGameState(t *testing.T) {
	t.Run("initial layout", func(t *testing.T) {
		gs := newTestState(t, 9, 10)

		require.Equal(t, Cell{0, 4}, gs.Pawns[0].Cell)
		require.Equal(t, Cell{8, 4}, gs.Pawns[1].Cell)
		require.Equal(t, Goal{Axis: RowAxis, Index: 8}, gs.Pawns[0].Goal)
		require.Equal(t, Goal{Axis: RowAxis, Index: 0}, gs.Pawns[1].Goal)
		require.Equal(t, []int{10, 10}, gs.WallsLeft)
		require.Equal(t, 0, gs.CurrentPlayer)
		require.Equal(t, NoPlayer, gs.Winner())
		require.False(t, gs.IsTerminal())
	})

	t.Run("invalid configs", func(t *testing.T) {
		tests := []struct {
			name  string
			cfg   Config
			field string
		}{
			{"board too small", Config{BoardSize: 2, WallsPerPlayer: 1, Players: 2}, "BoardSize"},
			{"negative walls", Config{BoardSize: 5, WallsPerPlayer: -1, Players: 2}, "WallsPerPlayer"},
			{"four players", Config{BoardSize: 9, WallsPerPlayer: 5, Players: 4}, "Players"},
			{"one player", Config{BoardSize: 9, WallsPerPlayer: 5, Players: 1}, "Players"},
			{"unknown diagonal rule", Config{BoardSize: 9, WallsPerPlayer: 5, Players: 2, Diagonal: 7}, "Diagonal"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gs, err := NewGameState(tt.cfg)
				require.Nil(t, gs)

				var cfgErr *ConfigError
				require.True(t, errors.As(err, &cfgErr), "Should return a ConfigError")
				require.Equal(t, tt.field, cfgErr.Field)
			})
		}
	})

	t.Run("zero walls is allowed", func(t *testing.T) {
		gs := newTestState(t, 3, 0)
		require.Empty(t, gs.Rules.WallPlacements(gs, 0))
	})
}

func TestMoveTargets(t *testing.T) {
	t.Run("opening moves", func(t *testing.T) {
		gs := newTestState(t, 9, 10)

		require.Equal(t, []Cell{{0, 3}, {0, 5}, {1, 4}}, gs.Rules.MoveTargets(gs, 0))
	})

	t.Run("walls block steps", func(t *testing.T) {
		gs := newTestState(t, 9, 10)
		gs.Board = gs.Board.WithWall(hWall(0, 3))

		require.Equal(t, []Cell{{0, 3}, {0, 5}}, gs.Rules.MoveTargets(gs, 0))
	})

	t.Run("straight jump over adjacent pawn", func(t *testing.T) {
		gs := newTestState(t, 3, 2)
		placePawns(gs, Cell{1, 0}, Cell{1, 1})

		targets := gs.Rules.MoveTargets(gs, 0)
		require.Contains(t, targets, Cell{1, 2}, "Should jump straight over the opponent")
		require.NotContains(t, targets, Cell{1, 1}, "Occupied cell is not a target")
		require.Equal(t, []Cell{{0, 0}, {1, 2}, {2, 0}}, targets)
	})

	t.Run("diagonal fallback when a wall blocks the straight jump", func(t *testing.T) {
		gs := newTestState(t, 3, 2)
		placePawns(gs, Cell{1, 0}, Cell{1, 1})
		gs.Board = gs.Board.WithWall(vWall(0, 1))

		targets := gs.Rules.MoveTargets(gs, 0)
		require.NotContains(t, targets, Cell{1, 2}, "Straight jump is blocked by the wall")
		require.Contains(t, targets, Cell{0, 1})
		require.Contains(t, targets, Cell{2, 1})
		require.Equal(t, []Cell{{0, 0}, {0, 1}, {2, 0}, {2, 1}}, targets)
	})

	t.Run("no diagonals while the straight jump is open", func(t *testing.T) {
		gs := newTestState(t, 5, 2)
		placePawns(gs, Cell{2, 1}, Cell{2, 2})

		targets := gs.Rules.MoveTargets(gs, 0)
		require.Contains(t, targets, Cell{2, 3})
		require.NotContains(t, targets, Cell{1, 2})
		require.NotContains(t, targets, Cell{3, 2})
	})

	t.Run("diagonal blocked by a wall beside the jumped pawn", func(t *testing.T) {
		gs := newTestState(t, 3, 2)
		placePawns(gs, Cell{1, 0}, Cell{1, 1})
		gs.Board = gs.Board.WithWall(vWall(0, 1)).WithWall(hWall(1, 1))

		require.Equal(t, []Cell{{0, 0}, {0, 1}, {2, 0}}, gs.Rules.MoveTargets(gs, 0))
	})

	t.Run("wall between the pawns prevents any jump", func(t *testing.T) {
		gs := newTestState(t, 3, 2)
		placePawns(gs, Cell{1, 0}, Cell{1, 1})
		gs.Board = gs.Board.WithWall(vWall(0, 0))

		require.Equal(t, []Cell{{0, 0}, {2, 0}}, gs.Rules.MoveTargets(gs, 0))
	})
}

func TestDiagonalRuleVariants(t *testing.T) {
	// Straight jump off the board edge: A at (1,1), B at (1,2) on a 3x3 board.
	edge := func(t *testing.T, rule DiagonalRule) []Cell {
		gs := newTestState(t, 3, 2)
		gs.Rules = NewStandardRules(rule)
		placePawns(gs, Cell{1, 1}, Cell{1, 2})
		return gs.Rules.MoveTargets(gs, 0)
	}
	// Straight jump blocked by a wall: A at (1,0), B at (1,1), wall behind B.
	wall := func(t *testing.T, rule DiagonalRule) []Cell {
		gs := newTestState(t, 3, 2)
		gs.Rules = NewStandardRules(rule)
		placePawns(gs, Cell{1, 0}, Cell{1, 1})
		gs.Board = gs.Board.WithWall(vWall(0, 1))
		return gs.Rules.MoveTargets(gs, 0)
	}

	t.Run("blocked: edge and wall both allow diagonals", func(t *testing.T) {
		require.Equal(t, []Cell{{0, 1}, {0, 2}, {1, 0}, {2, 1}, {2, 2}}, edge(t, DiagonalWhenBlocked))
		require.Equal(t, []Cell{{0, 0}, {0, 1}, {2, 0}, {2, 1}}, wall(t, DiagonalWhenBlocked))
	})

	t.Run("wall-only: edge gives no diagonals", func(t *testing.T) {
		require.Equal(t, []Cell{{0, 1}, {1, 0}, {2, 1}}, edge(t, DiagonalWallOnly))
		require.Equal(t, []Cell{{0, 0}, {0, 1}, {2, 0}, {2, 1}}, wall(t, DiagonalWallOnly))
	})

	t.Run("never", func(t *testing.T) {
		require.Equal(t, []Cell{{0, 1}, {1, 0}, {2, 1}}, edge(t, DiagonalNever))
		require.Equal(t, []Cell{{0, 0}, {2, 0}}, wall(t, DiagonalNever))
	})

	t.Run("parse", func(t *testing.T) {
		rule, err := ParseDiagonalRule("wall-only")
		require.NoError(t, err)
		require.Equal(t, DiagonalWallOnly, rule)

		rule, err = ParseDiagonalRule("")
		require.NoError(t, err)
		require.Equal(t, DiagonalWhenBlocked, rule)

		_, err = ParseDiagonalRule("sideways")
		require.Error(t, err)
	})
}

func TestWallPlacements(t *testing.T) {
	t.Run("every anchor is open on an empty board", func(t *testing.T) {
		gs := newTestState(t, 9, 10)
		require.Len(t, gs.Rules.WallPlacements(gs, 0), 2*8*8)
	})

	t.Run("exhausted inventory", func(t *testing.T) {
		gs := newTestState(t, 9, 10)
		gs.WallsLeft[1] = 0
		require.Empty(t, gs.Rules.WallPlacements(gs, 1))
		require.NotEmpty(t, gs.Rules.WallPlacements(gs, 0))
	})

	t.Run("excludes overlapping and sealing walls", func(t *testing.T) {
		gs := sealableState(t)
		walls := gs.Rules.WallPlacements(gs, 0)

		require.NotContains(t, walls, hWall(1, 0), "Placed wall")
		require.NotContains(t, walls, hWall(1, 1), "Overlapping wall")
		require.NotContains(t, walls, vWall(1, 0), "Crossing wall")
		require.NotContains(t, walls, vWall(1, 1), "Wall sealing player 1")
		require.NotContains(t, walls, vWall(0, 1), "Wall sealing player 0")
		require.Contains(t, walls, hWall(0, 1))
	})

	t.Run("protects the placing player too", func(t *testing.T) {
		gs := sealableState(t)
		// Swap roles: player 0 is now the one in the pocket and player 1 places.
		placePawns(gs, Cell{2, 0}, Cell{0, 1})
		gs.Pawns[0].Goal = Goal{Axis: RowAxis, Index: 0}
		gs.Pawns[1].Goal = Goal{Axis: RowAxis, Index: 2}

		require.NotContains(t, gs.Rules.WallPlacements(gs, 0), vWall(1, 1),
			"A player may not seal themself in")
	})
}

// sealableState returns a 3x3 game where vertical wall (1,1) would seal
// player 1 at (2,0) behind horizontal wall (1,0).
func sealableState(t *testing.T) *GameState {
	gs := newTestState(t, 3, 3)
	placePawns(gs, Cell{0, 1}, Cell{2, 0})
	gs.Board = gs.Board.WithWall(hWall(1, 0))
	return gs
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(gs *GameState)
		action Action
		want   error
	}{
		{
			name:   "move off the board",
			action: NewMove(0, Cell{-1, 1}),
			want:   ErrOutOfBounds,
		},
		{
			name:   "move onto the opponent",
			setup:  func(gs *GameState) { placePawns(gs, Cell{1, 0}, Cell{1, 1}) },
			action: NewMove(0, Cell{1, 1}),
			want:   ErrCellOccupied,
		},
		{
			name:   "move onto own cell",
			action: NewMove(0, Cell{0, 1}),
			want:   ErrCellOccupied,
		},
		{
			name:   "move diagonally without a pawn to jump",
			action: NewMove(0, Cell{1, 0}),
			want:   ErrNotAdjacentOrValidJump,
		},
		{
			name:   "move through a wall",
			setup:  func(gs *GameState) { gs.Board = gs.Board.WithWall(hWall(0, 0)) },
			action: NewMove(0, Cell{1, 1}),
			want:   ErrNotAdjacentOrValidJump,
		},
		{
			name:   "out of turn",
			action: NewMove(1, Cell{1, 1}),
			want:   ErrNotCurrentPlayer,
		},
		{
			name:   "no walls left",
			setup:  func(gs *GameState) { gs.WallsLeft[0] = 0 },
			action: NewWallPlacement(0, hWall(0, 0)),
			want:   ErrWallInventoryExhausted,
		},
		{
			name:   "wall off the board",
			action: NewWallPlacement(0, vWall(2, 0)),
			want:   ErrOutOfBounds,
		},
		{
			name:   "overlapping wall",
			setup:  func(gs *GameState) { gs.Board = gs.Board.WithWall(hWall(1, 0)) },
			action: NewWallPlacement(0, hWall(1, 1)),
			want:   ErrWallOverlap,
		},
		{
			name: "sealing wall",
			setup: func(gs *GameState) {
				placePawns(gs, Cell{0, 1}, Cell{2, 0})
				gs.Board = gs.Board.WithWall(hWall(1, 0))
			},
			action: NewWallPlacement(0, vWall(1, 1)),
			want:   ErrWallWouldBlockPath,
		},
		{
			name:   "game over",
			setup:  func(gs *GameState) { gs.Won = 1 },
			action: NewMove(0, Cell{1, 1}),
			want:   ErrGameAlreadyTerminal,
		},
		{
			name:   "unknown action type",
			action: Action{Type: ActionType(9), Player: 0},
			want:   ErrUnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t, 3, 3)
			if tt.setup != nil {
				tt.setup(gs)
			}
			err := gs.Rules.Check(gs, tt.action)
			require.ErrorIs(t, err, tt.want)

			var v *RuleViolation
			require.True(t, errors.As(err, &v))
			require.NotEmpty(t, v.Message)
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("pawn move advances the turn", func(t *testing.T) {
		gs := newTestState(t, 5, 2)

		next, err := gs.Rules.Apply(gs, NewMove(0, Cell{1, 2}))
		require.NoError(t, err)
		require.Equal(t, Cell{1, 2}, next.Pawns[0].Cell)
		require.Equal(t, 1, next.CurrentPlayer)
		require.Equal(t, 1, next.Turn)
		require.Equal(t, Cell{0, 2}, gs.Pawns[0].Cell, "Original state should not change")
		require.Equal(t, 0, gs.CurrentPlayer, "Original state should not change")
	})

	t.Run("wall placement spends a wall", func(t *testing.T) {
		gs := newTestState(t, 5, 2)

		next, err := gs.Rules.Apply(gs, NewWallPlacement(0, hWall(2, 2)))
		require.NoError(t, err)
		require.True(t, next.Board.HasWall(hWall(2, 2)))
		require.Equal(t, []int{1, 2}, next.WallsLeft)
		require.False(t, gs.Board.HasWall(hWall(2, 2)), "Original board should not change")
		require.Equal(t, []int{2, 2}, gs.WallsLeft, "Original inventory should not change")
	})

	t.Run("reaching the goal ends the game", func(t *testing.T) {
		gs := newTestState(t, 3, 0)
		placePawns(gs, Cell{1, 1}, Cell{2, 0})

		next, err := gs.Rules.Apply(gs, NewMove(0, Cell{2, 1}))
		require.NoError(t, err)
		require.True(t, next.IsTerminal())
		require.Equal(t, 0, next.Winner())
		require.Equal(t, 0, next.CurrentPlayer, "Mover should not advance after a win")
		require.Empty(t, next.LegalMoves())

		_, err = next.Rules.Apply(next, NewMove(1, Cell{1, 0}))
		require.ErrorIs(t, err, ErrGameAlreadyTerminal)
	})

	t.Run("failure returns no state", func(t *testing.T) {
		gs := newTestState(t, 3, 0)
		next, err := gs.Rules.Apply(gs, NewWallPlacement(0, hWall(0, 0)))
		require.Nil(t, next)
		require.ErrorIs(t, err, ErrWallInventoryExhausted)
	})
}

func TestLegalActions(t *testing.T) {
	gs := newTestState(t, 3, 1)

	actions := gs.LegalActions(0)
	require.Equal(t, NewMove(0, Cell{0, 0}), actions[0], "Pawn moves should come first")
	require.Len(t, actions, 3+8, "3 steps and every wall on an empty 3x3 board")
	require.Empty(t, gs.LegalActions(1), "Player 1 is not to move")

	for _, a := range actions {
		require.NoError(t, gs.Rules.Check(gs, a), "%s should be legal", a)
	}
}
