package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("corner start offers two directions in fixed order", func(t *testing.T) {
		state := testState()
		require.Equal(t, []Move{Down, Right}, state.LegalMoves(),
			"Up and Left leave the grid from (0,0)")
	})

	t.Run("visited cells are blocked", func(t *testing.T) {
		state := testState()
		state.HumanPos = Coord{0, 1}
		state.Visited[Coord{0, 1}] = true

		require.Equal(t, []Move{Down, Right}, state.LegalMoves(),
			"Left back to the visited start cell should be blocked")
	})

	t.Run("opponent's cell is blocked like any visited cell", func(t *testing.T) {
		state := &GameState{
			GridSize: 2,
			HumanPos: Coord{0, 1},
			AIPos:    Coord{1, 1},
			Visited:  map[Coord]bool{{0, 0}: true, {0, 1}: true, {1, 1}: true},
			Turn:     Human,
		}
		require.Empty(t, state.LegalMoves(),
			"Down onto the AI's cell and Left onto the start cell are both blocked")
	})

	t.Run("per-player move generation", func(t *testing.T) {
		state := testState()
		require.Equal(t, []Move{Down, Right}, state.LegalMovesFor(Human))
		require.Equal(t, []Move{Up, Left}, state.LegalMovesFor(AI))
	})
}

func TestApply(t *testing.T) {
	t.Run("plain move flips the turn and collects nothing", func(t *testing.T) {
		state := testState()

		next, err := state.Apply(Right)

		require.NoError(t, err)
		require.Equal(t, Coord{0, 1}, next.HumanPos)
		require.Zero(t, next.HumanScore, "No treasure on (0,1)")
		require.Zero(t, next.AIScore)
		require.Equal(t, AI, next.Turn)
		require.True(t, next.Visited[Coord{0, 1}])
		require.Len(t, next.Treasures, 3)

		// The original state is untouched
		require.Equal(t, Coord{0, 0}, state.HumanPos)
		require.Equal(t, Human, state.Turn)
		require.False(t, state.Visited[Coord{0, 1}])
	})

	t.Run("collects treasure on arrival", func(t *testing.T) {
		state := testState()
		state.HumanPos = Coord{0, 1}
		state.Visited[Coord{0, 1}] = true

		next, err := state.Apply(Right)

		require.NoError(t, err)
		require.Equal(t, Coord{0, 2}, next.HumanPos)
		require.Equal(t, 5, next.HumanScore)
		require.NotContains(t, next.Treasures, Coord{0, 2}, "Collected treasure should be removed")
		require.Contains(t, state.Treasures, Coord{0, 2}, "Original treasure map should be untouched")
	})

	t.Run("negative treasure lowers the score", func(t *testing.T) {
		state := testState()
		state.Turn = AI
		state.AIPos = Coord{2, 1}
		state.Visited[Coord{2, 1}] = true

		next, err := state.Apply(Left)

		require.NoError(t, err)
		require.Equal(t, Coord{2, 0}, next.AIPos)
		require.Equal(t, -2, next.AIScore)
	})

	t.Run("rejects moves off the grid", func(t *testing.T) {
		state := testState()

		_, err := state.Apply(Up)

		require.ErrorIs(t, err, ErrOutOfBounds)
		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, testState(), state, "A rejected move should not mutate the state")
	})

	t.Run("rejects moves onto visited cells", func(t *testing.T) {
		state := testState()
		state.HumanPos = Coord{0, 1}
		state.Visited[Coord{0, 1}] = true

		_, err := state.Apply(Left)

		require.ErrorIs(t, err, ErrCellVisited)
		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, Coord{0, 1}, state.HumanPos)
	})
}

func TestPass(t *testing.T) {
	state := testState()

	next := state.Pass()

	require.Equal(t, AI, next.Turn)
	require.Equal(t, state.HumanPos, next.HumanPos)
	require.Equal(t, state.AIPos, next.AIPos)
	require.Equal(t, state.Treasures, next.Treasures)
	require.Equal(t, state.Visited, next.Visited)
	require.Equal(t, Human, state.Turn, "Pass should not mutate the original state")
}

func TestDeadlocked(t *testing.T) {
	t.Run("open board is not deadlocked", func(t *testing.T) {
		require.False(t, testState().Deadlocked())
	})

	t.Run("both players walled in", func(t *testing.T) {
		state := &GameState{
			GridSize: 3,
			HumanPos: Coord{2, 0},
			AIPos:    Coord{2, 2},
			Treasures: map[Coord]int{
				{0, 2}: 5,
			},
			Visited: map[Coord]bool{
				{0, 0}: true, {0, 1}: true,
				{1, 0}: true, {1, 1}: true, {1, 2}: true,
				{2, 0}: true, {2, 1}: true, {2, 2}: true,
			},
			Turn: Human,
		}
		require.Empty(t, state.LegalMovesFor(Human))
		require.Empty(t, state.LegalMovesFor(AI))
		require.True(t, state.Deadlocked())
		require.False(t, state.IsTerminal(), "A treasure is still on the board")
	})
}

func TestWinner(t *testing.T) {
	state := testState()
	require.Equal(t, "Draw", state.Winner())

	state.HumanScore = 6
	state.AIScore = 3
	require.Equal(t, "Human", state.Winner())

	state.AIScore = 8
	require.Equal(t, "AI", state.Winner())
}

// TestRandomPlayout checks the reachable-state invariants over full games:
// positions stay on the grid, the visited set only grows, cells are never
// re-entered, and collected value equals the scores exactly.
func TestRandomPlayout(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		state, err := NewGame(Config{GridSize: 4, Treasures: 6, MinValue: -3, MaxValue: 10, Seed: seed})
		require.NoError(t, err)

		total := 0
		for _, value := range state.Treasures {
			total += value
		}

		rng := rand.New(rand.NewSource(seed))
		for !state.IsTerminal() && !state.Deadlocked() {
			moves := state.LegalMoves()
			if len(moves) == 0 {
				state = state.Pass()
				continue
			}

			before := len(state.Visited)
			next, err := state.Apply(moves[rng.Intn(len(moves))])
			require.NoError(t, err)

			require.True(t, next.InBounds(next.HumanPos))
			require.True(t, next.InBounds(next.AIPos))
			require.Equal(t, before+1, len(next.Visited), "Each move visits exactly one new cell")
			for cell := range state.Visited {
				require.True(t, next.Visited[cell], "Visited cells never disappear")
			}
			require.Equal(t, next.Turn, state.Turn.Opponent())

			state = next
		}

		remaining := 0
		for _, value := range state.Treasures {
			remaining += value
		}
		require.Equal(t, total, state.HumanScore+state.AIScore+remaining,
			"Collected value must equal the scores exactly")
	}
}
