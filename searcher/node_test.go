package searcher

import "quoridor/game"

func mockMove(id int) game.Action {
	return game.NewMove(0, game.Cell{Row: 0, Col: id})
}

// mockState records the moves played on it. Children inherit the player
// and legal moves unless next is set.
type mockState struct {
	player int
	winner int
	moves  []game.Action
	played []game.Action
	hash   game.StateHash
	next   func(m mockState, move game.Action) mockState
}

func newMockState(moves ...game.Action) mockState {
	return mockState{winner: game.NoPlayer, moves: moves}
}

func (m mockState) Player() int {
	return m.player
}

func (m mockState) LegalMoves() []game.Action {
	return m.moves
}

func (m mockState) Play(move game.Action) game.State {
	played := append(append([]game.Action{}, m.played...), move)
	if m.next != nil {
		child := m.next(m, move)
		child.played = played
		child.next = m.next
		return child
	}
	return mockState{player: m.player, winner: game.NoPlayer, played: played}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() int {
	return m.winner
}
