package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SnapshotSchema identifies the JSON layout produced by Snapshot.MarshalJSON.
const SnapshotSchema = "quoridor.v1"

// Snapshot is a read-only view of a game state for renderers and agents.
// It holds its own copies; changing a Snapshot never affects the game.
type Snapshot struct {
	BoardSize     int
	Turn          int
	CurrentPlayer int
	Winner        int // NoPlayer while in progress
	Pawns         []Pawn
	Walls         []Wall
	WallsLeft     []int
	Legal         []Action // Legal actions for CurrentPlayer, empty once terminal

	state *GameState
}

// Snapshot captures gs together with the current player's legal actions.
func (gs *GameState) Snapshot() Snapshot {
	state := gs.Copy()
	pawns := make([]Pawn, len(gs.Pawns))
	copy(pawns, gs.Pawns)
	wallsLeft := make([]int, len(gs.WallsLeft))
	copy(wallsLeft, gs.WallsLeft)

	return Snapshot{
		BoardSize:     gs.Board.Size(),
		Turn:          gs.Turn,
		CurrentPlayer: gs.CurrentPlayer,
		Winner:        gs.Won,
		Pawns:         pawns,
		Walls:         gs.Board.Walls(),
		WallsLeft:     wallsLeft,
		Legal:         gs.LegalMoves(),
		state:         state,
	}
}

func (s Snapshot) Terminal() bool {
	return s.Winner != NoPlayer
}

// State returns a private copy of the captured state, for agents that search ahead.
func (s Snapshot) State() *GameState {
	if s.state == nil {
		return nil
	}
	return s.state.Copy()
}

// Board returns the captured board.
func (s Snapshot) Board() Board {
	if s.state == nil {
		return NewBoard(s.BoardSize)
	}
	return s.state.Board
}

func (s Snapshot) String() string {
	if s.state == nil {
		return fmt.Sprintf("empty snapshot of a %dx%d board\n", s.BoardSize, s.BoardSize)
	}
	return s.state.String()
}

type playerJSON struct {
	ID  int `json:"id"`
	Row int `json:"row"`
	Col int `json:"col"`
}

type goalJSON struct {
	ID  int  `json:"id"`
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`
}

type wallJSON struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
}

type idJSON struct {
	ID int `json:"id"`
}

type snapshotJSON struct {
	Schema         string       `json:"schema"`
	Turn           int          `json:"turn"`
	CurrentPlayer  idJSON       `json:"current_player"`
	Board          boardJSON    `json:"board"`
	Players        []playerJSON `json:"players"`
	WallsRemaining []int        `json:"walls_remaining"`
	Goals          []goalJSON   `json:"goals"`
	Winner         *idJSON      `json:"winner"`
	LegalMoves     []actionJSON `json:"legal_moves"`
}

type boardJSON struct {
	Size  int        `json:"size"`
	Walls []wallJSON `json:"walls"`
}

// MarshalJSON emits the quoridor.v1 turn snapshot. Legal moves carry stable
// IDs M0, M1, ... in the order of Legal.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{
		Schema:         SnapshotSchema,
		Turn:           s.Turn,
		CurrentPlayer:  idJSON{ID: s.CurrentPlayer},
		Board:          boardJSON{Size: s.BoardSize, Walls: make([]wallJSON, 0, len(s.Walls))},
		Players:        make([]playerJSON, 0, len(s.Pawns)),
		WallsRemaining: s.WallsLeft,
		Goals:          make([]goalJSON, 0, len(s.Pawns)),
		LegalMoves:     make([]actionJSON, 0, len(s.Legal)),
	}

	for _, w := range s.Walls {
		out.Board.Walls = append(out.Board.Walls, wallJSON{
			Row:         w.Anchor.Row,
			Col:         w.Anchor.Col,
			Orientation: w.Orientation.String(),
		})
	}

	for _, p := range s.Pawns {
		out.Players = append(out.Players, playerJSON{ID: p.Player, Row: p.Cell.Row, Col: p.Cell.Col})

		index := p.Goal.Index
		goal := goalJSON{ID: p.Player}
		if p.Goal.Axis == RowAxis {
			goal.Row = &index
		} else {
			goal.Col = &index
		}
		out.Goals = append(out.Goals, goal)
	}

	if s.Terminal() {
		out.Winner = &idJSON{ID: s.Winner}
	}

	for i, a := range s.Legal {
		move := newActionJSON(a)
		move.ID = fmt.Sprintf("M%d", i)
		out.LegalMoves = append(out.LegalMoves, move)
	}

	return json.Marshal(out)
}

// LegalByID resolves a move ID from the JSON snapshot, e.g. "M3".
func (s Snapshot) LegalByID(id string) (Action, bool) {
	digits, ok := strings.CutPrefix(id, "M")
	if !ok {
		return Action{}, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || i >= len(s.Legal) {
		return Action{}, false
	}
	return s.Legal[i], true
}
