package game

// EvaluateDistance compares each player's shortest path to goal to produce a
// relative score between -1 and 1 from the current player's perspective
func EvaluateDistance(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.IsTerminal() {
		return gs.terminalScore()
	}
	return gs.calculateDistanceScore()
}

// EvaluateDistanceWalls weighs the remaining wall inventories, in addition to
// path lengths, to produce a score between -1 and 1 from the current player's perspective
func EvaluateDistanceWalls(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.IsTerminal() {
		return gs.terminalScore()
	}
	distanceScore := gs.calculateDistanceScore()
	wallScore := normalize(float64(gs.WallsLeft[gs.CurrentPlayer]), float64(gs.WallsLeft[gs.NextPlayer()]))

	return (2*distanceScore + wallScore) / 3
}

func (gs *GameState) terminalScore() float64 {
	if gs.Won == gs.CurrentPlayer {
		return 1
	}
	return -1
}

func (gs *GameState) calculateDistanceScore() float64 {
	current := gs.Pawns[gs.CurrentPlayer]
	opponent := gs.Pawns[gs.NextPlayer()]

	// Being farther from goal is worse, so the opponent's distance counts in our favor
	mine := float64(Distance(gs.Board, current.Cell, current.Goal))
	theirs := float64(Distance(gs.Board, opponent.Cell, opponent.Goal))
	return normalize(theirs, mine)
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
