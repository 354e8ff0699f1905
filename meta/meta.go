// meta/meta.go
package meta

// BOARD_SIZE is the side length of the classical board.
const BOARD_SIZE = 9

// WALLS_PER_PLAYER is the classical two-player wall inventory.
const WALLS_PER_PLAYER = 10

// PLAYERS is the number of players in a game.
const PLAYERS = 2

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 40

// MAX_TURNS caps the number of accepted actions in a self-play game.
const MAX_TURNS = 300

// MAX_ATTEMPTS is how many times an agent may propose before the engine plays for it.
const MAX_ATTEMPTS = 3
