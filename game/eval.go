package game

// Fixed linear weights of the evaluation function. They are part of the
// engine's observable contract: changing them changes move choice.
const (
	weightScoreDiff   = 0.5
	weightOwnDistance = 0.25
	weightOppDistance = 0.15
	weightMobility    = 0.1

	// Final margins are scaled past anything the weighted sum can reach,
	// so the search always prefers a strictly better final score.
	finalScale = 1000.0
)

// EvaluateWeighted scores s from pov's perspective as a weighted sum of
// score differential, both players' distance to the nearest remaining
// treasure, and mobility. A smaller own distance and a larger opponent
// distance both raise the score. Terminal and deadlocked states score by
// score differential alone.
func EvaluateWeighted(s *GameState, pov Player) float64 {
	opp := pov.Opponent()
	diff := float64(s.Score(pov) - s.Score(opp))

	if s.IsTerminal() || s.Deadlocked() {
		return diff * finalScale
	}

	score := weightScoreDiff * diff
	score -= weightOwnDistance * float64(s.NearestTreasureDistance(s.Pos(pov)))
	score += weightOppDistance * float64(s.NearestTreasureDistance(s.Pos(opp)))
	score += weightMobility * float64(len(s.LegalMovesFor(pov))-len(s.LegalMovesFor(opp)))
	return score
}

// EvaluateScoreDiff scores s by score differential alone. Useful for
// shallow searches and as a debugging baseline.
func EvaluateScoreDiff(s *GameState, pov Player) float64 {
	return float64(s.Score(pov) - s.Score(pov.Opponent()))
}

// NearestTreasureDistance returns the Manhattan distance from c to the
// closest remaining treasure, or 0 when none remain.
func (gs *GameState) NearestTreasureDistance(c Coord) int {
	if len(gs.Treasures) == 0 {
		return 0
	}
	best := -1
	for cell := range gs.Treasures {
		if d := manhattan(c, cell); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
