package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Pawn is a player's piece and the edge it races toward.
type Pawn struct {
	Player int
	Cell   Cell
	Goal   Goal
}

// GameState represents the dynamic state of the game at any point. A
// published GameState is treated as immutable: Rules.Apply and Play always
// return a new copy.
type GameState struct {
	Board         Board  // Placed walls
	Pawns         []Pawn // Indexed by player ID
	WallsLeft     []int  // Remaining wall inventory, indexed by player ID
	CurrentPlayer int    // The player to move
	Won           int    // The winning player, NoPlayer while in progress
	Turn          int    // Accepted actions so far
	Rules         Rules  // The set of game rules to apply
}

// NewGameState validates cfg and returns the initial state: pawns centred on
// opposite edges, full inventories, player 0 to move.
func NewGameState(cfg Config) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.BoardSize
	mid := n / 2
	pawns := []Pawn{
		{Player: 0, Cell: Cell{Row: 0, Col: mid}, Goal: Goal{Axis: RowAxis, Index: n - 1}},
		{Player: 1, Cell: Cell{Row: n - 1, Col: mid}, Goal: Goal{Axis: RowAxis, Index: 0}},
	}

	walls := make([]int, cfg.Players)
	for i := range walls {
		walls[i] = cfg.WallsPerPlayer
	}

	return &GameState{
		Board:         NewBoard(n),
		Pawns:         pawns,
		WallsLeft:     walls,
		CurrentPlayer: 0,
		Won:           NoPlayer,
		Rules:         NewStandardRules(cfg.Diagonal),
	}, nil
}

// Copy returns a deep copy of the state. The Board is shared since it is never mutated.
func (gs *GameState) Copy() *GameState {
	pawnsCopy := make([]Pawn, len(gs.Pawns))
	copy(pawnsCopy, gs.Pawns)

	wallsCopy := make([]int, len(gs.WallsLeft))
	copy(wallsCopy, gs.WallsLeft)

	return &GameState{
		Board:         gs.Board,
		Pawns:         pawnsCopy,
		WallsLeft:     wallsCopy,
		CurrentPlayer: gs.CurrentPlayer,
		Won:           gs.Won,
		Turn:          gs.Turn,
		Rules:         gs.Rules,
	}
}

func (gs *GameState) IsTerminal() bool {
	return gs.Won != NoPlayer
}

func (gs *GameState) NextPlayer() int {
	return (gs.CurrentPlayer + 1) % len(gs.Pawns)
}

// PawnAt returns the player whose pawn stands on c.
func (gs *GameState) PawnAt(c Cell) (int, bool) {
	for _, p := range gs.Pawns {
		if p.Cell == c {
			return p.Player, true
		}
	}
	return NoPlayer, false
}

func (gs *GameState) Occupied(c Cell) bool {
	_, ok := gs.PawnAt(c)
	return ok
}

// LegalActions returns player's pawn moves followed by wall placements. It is
// empty once the game is over or when it is not player's turn.
func (gs *GameState) LegalActions(player int) []Action {
	if gs.IsTerminal() || player != gs.CurrentPlayer {
		return nil
	}

	targets := gs.Rules.MoveTargets(gs, player)
	walls := gs.Rules.WallPlacements(gs, player)
	actions := make([]Action, 0, len(targets)+len(walls))
	for _, c := range targets {
		actions = append(actions, NewMove(player, c))
	}
	for _, w := range walls {
		actions = append(actions, NewWallPlacement(player, w))
	}
	return actions
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() int {
	return gs.CurrentPlayer
}

// LegalMoves returns all legal actions for the current player.
func (gs *GameState) LegalMoves() []Action {
	return gs.LegalActions(gs.CurrentPlayer)
}

// Play applies a legal action. It panics on an illegal one; callers outside
// search should go through Rules.Apply and handle the violation.
func (gs *GameState) Play(a Action) State {
	next, err := gs.Rules.Apply(gs, a)
	if err != nil {
		panic(err)
	}
	return next
}

// gets the winner of the game
func (gs *GameState) Winner() int {
	return gs.Won
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Board.Size()))
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Won))

	for _, p := range gs.Pawns {
		binary.Write(hasher, binary.LittleEndian, int64(p.Cell.Row))
		binary.Write(hasher, binary.LittleEndian, int64(p.Cell.Col))
	}

	for _, left := range gs.WallsLeft {
		binary.Write(hasher, binary.LittleEndian, int64(left))
	}

	for _, w := range gs.Board.Walls() {
		binary.Write(hasher, binary.LittleEndian, int64(w.Orientation))
		binary.Write(hasher, binary.LittleEndian, int64(w.Anchor.Row))
		binary.Write(hasher, binary.LittleEndian, int64(w.Anchor.Col))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	status := fmt.Sprintf("turn %d, player %d to move", gs.Turn, gs.CurrentPlayer)
	if gs.IsTerminal() {
		status = fmt.Sprintf("turn %d, player %d won", gs.Turn, gs.Won)
	}
	return render(gs.Board, gs.Pawns) + status + fmt.Sprintf(", walls left %v\n", gs.WallsLeft)
}
