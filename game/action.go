package game

import (
	"encoding/json"
	"fmt"
)

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	MovePawn ActionType = iota
	PlaceWall
)

func (t ActionType) String() string {
	switch t {
	case MovePawn:
		return "move_pawn"
	case PlaceWall:
		return "place_wall"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// Action is a move proposed by a player: either a pawn move to To, or a
// wall placement of Wall. The field not selected by Type is zero.
type Action struct {
	Type   ActionType
	Player int
	To     Cell
	Wall   Wall
}

func NewMove(player int, to Cell) Action {
	return Action{Type: MovePawn, Player: player, To: to}
}

func NewWallPlacement(player int, w Wall) Action {
	return Action{Type: PlaceWall, Player: player, Wall: w}
}

func (a Action) String() string {
	switch a.Type {
	case MovePawn:
		return fmt.Sprintf("player %d moves to %s", a.Player, a.To)
	case PlaceWall:
		return fmt.Sprintf("player %d places wall %s", a.Player, a.Wall)
	default:
		return fmt.Sprintf("player %d plays %s", a.Player, a.Type)
	}
}

type cellJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toCellJSON(c Cell) *cellJSON {
	return &cellJSON{Row: c.Row, Col: c.Col}
}

type actionJSON struct {
	ID          string    `json:"id,omitempty"`
	Action      string    `json:"action"`
	Player      int       `json:"player"`
	To          *cellJSON `json:"to,omitempty"`
	Anchor      *cellJSON `json:"anchor,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
}

func newActionJSON(a Action) actionJSON {
	out := actionJSON{Action: a.Type.String(), Player: a.Player}
	switch a.Type {
	case MovePawn:
		out.To = toCellJSON(a.To)
	case PlaceWall:
		out.Anchor = toCellJSON(a.Wall.Anchor)
		out.Orientation = a.Wall.Orientation.String()
	}
	return out
}

func (a actionJSON) decode() (Action, error) {
	switch a.Action {
	case "move_pawn":
		if a.To == nil {
			return Action{}, fmt.Errorf("move_pawn action is missing its target")
		}
		return NewMove(a.Player, Cell{Row: a.To.Row, Col: a.To.Col}), nil
	case "place_wall":
		if a.Anchor == nil {
			return Action{}, fmt.Errorf("place_wall action is missing its anchor")
		}
		var o Orientation
		switch a.Orientation {
		case "H":
			o = Horizontal
		case "V":
			o = Vertical
		default:
			return Action{}, fmt.Errorf("unknown wall orientation %q", a.Orientation)
		}
		anchor := Cell{Row: a.Anchor.Row, Col: a.Anchor.Col}
		return NewWallPlacement(a.Player, Wall{Orientation: o, Anchor: anchor}), nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", a.Action)
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(newActionJSON(a))
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var raw actionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := raw.decode()
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
