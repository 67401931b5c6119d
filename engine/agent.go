package engine

import (
	"math/rand"
	"time"

	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
)

// SearchAgent plays the moves a minimax searcher picks.
type SearchAgent struct {
	searcher *searcher.Minimax
}

func NewSearchAgent(s *searcher.Minimax) *SearchAgent {
	return &SearchAgent{searcher: s}
}

func (a *SearchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.FindMove(state)
}

// RandomAgent plays a uniformly random legal move. Baseline opponent for
// experiments and tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed int64) *RandomAgent {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, game.ErrNoLegalMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
