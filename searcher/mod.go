package searcher

// MaxCutoff is the default rollout depth before falling back to evaluation.
const MaxCutoff = 200

// reward converts score, from player's perspective, to the perspective of mover.
func reward(mover, player int, score float64) float64 {
	if mover == player {
		return score
	}
	return -score
}
