package searcher

import (
	"golang.org/x/exp/slices"

	"duel/game"
)

// orderMoves sorts moves so the likely-best come first, which tightens the
// alpha-beta window sooner. Collecting a treasure outranks everything,
// weighted by value; otherwise prefer moves ending closer to a treasure.
// Ordering only affects how early branches prune, never the chosen move;
// the root keeps generation order.
func orderMoves(state *game.GameState, moves []game.Move) []game.Move {
	pos := state.Pos(state.Turn)
	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(a, b game.Move) int {
		return movePriority(state, pos, b) - movePriority(state, pos, a)
	})
	return ordered
}

func movePriority(state *game.GameState, pos game.Coord, m game.Move) int {
	dr, dc := m.Delta()
	dest := game.Coord{Row: pos.Row + dr, Col: pos.Col + dc}

	priority := 0
	if value, ok := state.Treasures[dest]; ok {
		priority += value * 1000
	}
	return priority - state.NearestTreasureDistance(dest)
}
