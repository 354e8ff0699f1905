package game

// Rules decides legality and produces successor states. Implementations
// never modify the state they are given.
type Rules interface {
	// MoveTargets returns the cells player's pawn may move to, sorted by row then column.
	MoveTargets(s *GameState, player int) []Cell
	// WallPlacements returns every wall player may legally place.
	WallPlacements(s *GameState, player int) []Wall
	// Check returns a *RuleViolation if a may not be played in s.
	Check(s *GameState, a Action) error
	// Apply checks a and returns the resulting state.
	Apply(s *GameState, a Action) (*GameState, error)
}
