package game

// NoPlayer marks the absence of a winner.
const NoPlayer = -1

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() int
	LegalMoves() []Action
	Play(Action) State
	Hash() StateHash
	Winner() int
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
