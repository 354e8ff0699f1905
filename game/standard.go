package game

import (
	"golang.org/x/exp/slices"
)

// StandardRules implements the two-player Quoridor rules with a configurable
// diagonal jump variant.
type StandardRules struct {
	Diagonal DiagonalRule
}

func NewStandardRules(diagonal DiagonalRule) *StandardRules {
	return &StandardRules{Diagonal: diagonal}
}

func (sr *StandardRules) MoveTargets(s *GameState, player int) []Cell {
	if player < 0 || player >= len(s.Pawns) {
		return nil
	}
	from := s.Pawns[player].Cell

	var targets []Cell
	add := func(c Cell) {
		if !slices.Contains(targets, c) {
			targets = append(targets, c)
		}
	}

	for _, d := range Directions {
		next, ok := s.Board.Step(from, d)
		if !ok {
			continue
		}
		if !s.Occupied(next) {
			add(next)
			continue
		}

		// A pawn is in the way: straight jump first
		if beyond, ok := s.Board.Step(next, d); ok && !s.Occupied(beyond) {
			add(beyond)
			continue
		}

		// Straight jump unavailable: diagonals beside the jumped pawn
		if !sr.allowsDiagonal(s, next, d) {
			continue
		}
		for _, side := range d.Perpendicular() {
			if diagonal, ok := s.Board.Step(next, side); ok && !s.Occupied(diagonal) {
				add(diagonal)
			}
		}
	}

	slices.SortFunc(targets, compareCells)
	return targets
}

// allowsDiagonal reports whether the failed straight jump over the pawn at
// jumped in direction d permits a diagonal fallback.
func (sr *StandardRules) allowsDiagonal(s *GameState, jumped Cell, d Direction) bool {
	switch sr.Diagonal {
	case DiagonalWhenBlocked:
		return true
	case DiagonalWallOnly:
		return s.Board.InBounds(jumped.Add(d)) && s.Board.Blocked(jumped, d)
	default:
		return false
	}
}

func compareCells(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func (sr *StandardRules) WallPlacements(s *GameState, player int) []Wall {
	if player < 0 || player >= len(s.WallsLeft) || s.WallsLeft[player] <= 0 {
		return nil
	}

	var walls []Wall
	for _, w := range s.Board.Anchors() {
		if !s.Board.IsWallFree(w) {
			continue
		}
		if pathsOpen(s.Board.WithWall(w), s.Pawns) {
			walls = append(walls, w)
		}
	}
	return walls
}

// pathsOpen reports whether every pawn can still reach its own goal on b.
func pathsOpen(b Board, pawns []Pawn) bool {
	for _, p := range pawns {
		if !HasPath(b, p.Cell, p.Goal) {
			return false
		}
	}
	return true
}

func (sr *StandardRules) Check(s *GameState, a Action) error {
	if s.IsTerminal() {
		return violation(CodeGameAlreadyTerminal, "player %d has already won", s.Won)
	}
	if a.Player != s.CurrentPlayer {
		return violation(CodeNotCurrentPlayer, "player %d to move, got player %d", s.CurrentPlayer, a.Player)
	}

	switch a.Type {
	case MovePawn:
		return sr.checkMove(s, a)
	case PlaceWall:
		return sr.checkWall(s, a)
	default:
		return violation(CodeUnknownAction, "unknown action type %d", int(a.Type))
	}
}

func (sr *StandardRules) checkMove(s *GameState, a Action) error {
	if !s.Board.InBounds(a.To) {
		return violation(CodeOutOfBounds, "cell %s is off the %dx%d board", a.To, s.Board.Size(), s.Board.Size())
	}
	if s.Occupied(a.To) {
		return violation(CodeCellOccupied, "cell %s is occupied", a.To)
	}
	if !slices.Contains(sr.MoveTargets(s, a.Player), a.To) {
		return violation(CodeNotAdjacentOrValidJump, "cell %s is not reachable from %s", a.To, s.Pawns[a.Player].Cell)
	}
	return nil
}

func (sr *StandardRules) checkWall(s *GameState, a Action) error {
	if s.WallsLeft[a.Player] <= 0 {
		return violation(CodeWallInventoryExhausted, "player %d has no walls left", a.Player)
	}
	if a.Wall.Orientation != Horizontal && a.Wall.Orientation != Vertical {
		return violation(CodeUnknownAction, "unknown wall orientation %d", int(a.Wall.Orientation))
	}
	if !s.Board.AnchorInBounds(a.Wall.Anchor) {
		return violation(CodeOutOfBounds, "wall %s does not fit on the %dx%d board", a.Wall, s.Board.Size(), s.Board.Size())
	}
	if !s.Board.IsWallFree(a.Wall) {
		return violation(CodeWallOverlap, "wall %s overlaps a placed wall", a.Wall)
	}
	if !pathsOpen(s.Board.WithWall(a.Wall), s.Pawns) {
		return violation(CodeWallWouldBlockPath, "wall %s would cut a pawn off from its goal", a.Wall)
	}
	return nil
}

func (sr *StandardRules) Apply(s *GameState, a Action) (*GameState, error) {
	if err := sr.Check(s, a); err != nil {
		return nil, err
	}

	next := s.Copy()
	switch a.Type {
	case MovePawn:
		next.Pawns[a.Player].Cell = a.To
	case PlaceWall:
		next.Board = next.Board.WithWall(a.Wall)
		next.WallsLeft[a.Player]--
	}
	next.Turn++

	if next.Pawns[a.Player].Goal.Contains(next.Pawns[a.Player].Cell) {
		next.Won = a.Player
	} else {
		next.CurrentPlayer = next.NextPlayer()
	}
	return next, nil
}
