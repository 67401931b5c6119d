package engine

import (
	"duel/experiments/metrics"
	"duel/game"
)

// MaxMoves caps runaway games; a board only has GridSize^2 enterable cells,
// so any real game finishes far below it.
const MaxMoves = 10000

type Engine interface {
	// Run starts a game till every treasure is collected, both players are
	// stuck, or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent picks a move for the active player of a state.
type Agent interface {
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
}
