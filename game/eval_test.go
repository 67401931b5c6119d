package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateWeighted(t *testing.T) {
	t.Run("balanced midgame position", func(t *testing.T) {
		state := &GameState{
			GridSize:  3,
			HumanPos:  Coord{0, 0},
			AIPos:     Coord{2, 2},
			Treasures: map[Coord]int{{1, 1}: 3},
			Visited:   map[Coord]bool{{0, 0}: true, {2, 2}: true},
			Turn:      Human,
		}

		// diff 0, own distance 2, opponent distance 2, mobility 2-2
		require.InDelta(t, -0.25*2+0.15*2, EvaluateWeighted(state, AI), 1e-9)
	})

	t.Run("score differential dominates at weight 0.5", func(t *testing.T) {
		state := &GameState{
			GridSize:   3,
			HumanPos:   Coord{0, 0},
			AIPos:      Coord{2, 2},
			HumanScore: 2,
			AIScore:    7,
			Treasures:  map[Coord]int{{1, 1}: 3},
			Visited:    map[Coord]bool{{0, 0}: true, {2, 2}: true},
			Turn:       Human,
		}

		require.InDelta(t, 0.5*5-0.25*2+0.15*2, EvaluateWeighted(state, AI), 1e-9)
		require.InDelta(t, 0.5*-5-0.25*2+0.15*2, EvaluateWeighted(state, Human), 1e-9)
	})

	t.Run("mobility advantage counts at weight 0.1", func(t *testing.T) {
		state := &GameState{
			GridSize:  3,
			HumanPos:  Coord{0, 1},
			AIPos:     Coord{2, 2},
			Treasures: map[Coord]int{{1, 1}: 3},
			Visited: map[Coord]bool{
				{0, 0}: true, {0, 1}: true, {0, 2}: true, {2, 2}: true,
			},
			Turn: Human,
		}

		// diff 0, AI distance 2, human distance 1, mobility 2-1
		require.InDelta(t, -0.25*2+0.15*1+0.1*1, EvaluateWeighted(state, AI), 1e-9)
	})

	t.Run("terminal states score by margin alone, monotonically", func(t *testing.T) {
		terminal := func(humanScore, aiScore int) *GameState {
			return &GameState{
				GridSize:   3,
				HumanPos:   Coord{0, 0},
				AIPos:      Coord{2, 2},
				HumanScore: humanScore,
				AIScore:    aiScore,
				Treasures:  map[Coord]int{},
				Visited:    map[Coord]bool{{0, 0}: true, {2, 2}: true},
				Turn:       Human,
			}
		}

		narrow := EvaluateWeighted(terminal(3, 5), AI)
		wide := EvaluateWeighted(terminal(1, 6), AI)
		lost := EvaluateWeighted(terminal(5, 3), AI)

		require.Greater(t, narrow, 0.0)
		require.Greater(t, wide, narrow, "A bigger winning margin must score higher")
		require.Less(t, lost, 0.0)
		require.InDelta(t, -narrow, lost, 1e-9, "Mirror margins evaluate symmetrically")
	})
}

func TestEvaluateScoreDiff(t *testing.T) {
	state := testState()
	state.HumanScore = 4
	state.AIScore = 9

	require.InDelta(t, 5, EvaluateScoreDiff(state, AI), 1e-9)
	require.InDelta(t, -5, EvaluateScoreDiff(state, Human), 1e-9)
}

func TestNearestTreasureDistance(t *testing.T) {
	state := testState()

	require.Equal(t, 2, state.NearestTreasureDistance(Coord{0, 0}),
		"(1,1) is the closest of the three treasures")
	require.Equal(t, 0, state.NearestTreasureDistance(Coord{1, 1}))

	state.Treasures = map[Coord]int{}
	require.Equal(t, 0, state.NearestTreasureDistance(Coord{0, 0}),
		"No treasures contributes zero distance")
}
