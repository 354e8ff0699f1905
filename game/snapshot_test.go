package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotJSON(t *testing.T) {
	gs := newTestState(t, 3, 1)
	gs = gs.Play(NewWallPlacement(0, vWall(0, 0))).(*GameState)
	gs.WallsLeft[1] = 0

	data, err := json.Marshal(gs.Snapshot())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	require.Equal(t, "quoridor.v1", out["schema"])
	require.EqualValues(t, 1, out["turn"])
	require.Equal(t, map[string]any{"id": float64(1)}, out["current_player"])
	require.Nil(t, out["winner"], "Winner should be null while in progress")
	require.Equal(t, []any{float64(0), float64(0)}, out["walls_remaining"])

	board := out["board"].(map[string]any)
	require.EqualValues(t, 3, board["size"])
	require.Equal(t, []any{
		map[string]any{"row": float64(0), "col": float64(0), "orientation": "V"},
	}, board["walls"])

	require.Equal(t, []any{
		map[string]any{"id": float64(0), "row": float64(0), "col": float64(1)},
		map[string]any{"id": float64(1), "row": float64(2), "col": float64(1)},
	}, out["players"])

	require.Equal(t, []any{
		map[string]any{"id": float64(0), "row": float64(2)},
		map[string]any{"id": float64(1), "row": float64(0)},
	}, out["goals"])

	legal := out["legal_moves"].([]any)
	require.Len(t, legal, 3, "Player 1 has no walls left and three steps")
	require.Equal(t, map[string]any{
		"id":     "M0",
		"action": "move_pawn",
		"player": float64(1),
		"to":     map[string]any{"row": float64(1), "col": float64(1)},
	}, legal[0])
	require.Equal(t, "M2", legal[2].(map[string]any)["id"])
}

func TestSnapshotTerminalJSON(t *testing.T) {
	gs := newTestState(t, 3, 0)
	placePawns(gs, Cell{1, 0}, Cell{2, 2})
	gs = gs.Play(NewMove(0, Cell{2, 0})).(*GameState)

	data, err := json.Marshal(gs.Snapshot())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, map[string]any{"id": float64(0)}, out["winner"])
	require.Empty(t, out["legal_moves"])
}

func TestSnapshotIsIndependent(t *testing.T) {
	gs := newTestState(t, 5, 2)
	snap := gs.Snapshot()

	snap.Pawns[0].Cell = Cell{4, 4}
	snap.WallsLeft[0] = 0
	require.Equal(t, Cell{0, 2}, gs.Pawns[0].Cell, "Editing a snapshot should not change the game")
	require.Equal(t, 2, gs.WallsLeft[0])

	state := snap.State()
	state.Pawns[1].Cell = Cell{0, 0}
	require.Equal(t, Cell{4, 2}, snap.State().Pawns[1].Cell, "State should return a fresh copy each time")
}

func TestSnapshotLegalByID(t *testing.T) {
	snap := newTestState(t, 3, 1).Snapshot()

	a, ok := snap.LegalByID("M0")
	require.True(t, ok)
	require.Equal(t, snap.Legal[0], a)

	_, ok = snap.LegalByID("M99")
	require.False(t, ok)
	_, ok = snap.LegalByID("move")
	require.False(t, ok)
	_, ok = snap.LegalByID("M0xyz")
	require.False(t, ok, "Trailing input should not resolve")
	_, ok = snap.LegalByID("M-1")
	require.False(t, ok)
	_, ok = snap.LegalByID("M")
	require.False(t, ok)
}

func TestActionJSON(t *testing.T) {
	wall := NewWallPlacement(1, hWall(3, 5))
	data, err := json.Marshal(wall)
	require.NoError(t, err)
	require.JSONEq(t, `{"action":"place_wall","player":1,"anchor":{"row":3,"col":5},"orientation":"H"}`, string(data))

	var decoded Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, wall, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"action":"place_wall","player":0,"anchor":{"row":0,"col":0},"orientation":"X"}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"action":"move_pawn","player":0}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"action":"fly","player":0}`), &decoded))
}
