package searcher

import (
	"math"

	"duel/experiments/metrics"
	"duel/game"
)

type Option func(m *Minimax)

// Minimax picks moves by depth-bounded minimax with alpha-beta pruning and
// a per-search transposition table. Values are always from the AI's
// perspective: the AI maximizes, the human minimizes.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	prune    bool
	ordering bool
	table    *table
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning searches the full tree with no alpha-beta cutoffs. The
// chosen move never changes, only the node count; exists so tests can
// check exactly that.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.prune = false
	}
}

// WithoutOrdering keeps children in move-generation order below the root.
func WithoutOrdering() Option {
	return func(m *Minimax) {
		m.ordering = false
	}
}

// WithoutTable disables the transposition table.
func WithoutTable() Option {
	return func(m *Minimax) {
		m.table = nil
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateWeighted,
		prune:    true,
		ordering: true,
		table:    newTable(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the player to act in state, or
// game.ErrNoLegalMove when that player is stuck. Root children are tried
// strictly in move-generation order, so ties break to the first maximal
// move and repeated calls on the same state pick the same move.
func (m *Minimax) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, game.ErrNoLegalMove
	}

	m.metrics.Start(m.depth)
	if m.table != nil {
		m.table.reset() // Entries must not leak across invocations
	}

	if len(moves) == 1 { // Forced move, skip the search
		return moves[0], m.metrics.Complete(), nil
	}

	// The mover maximizes when it is the AI and minimizes otherwise;
	// values are AI-favorable either way.
	maximizing := state.Turn == game.AI

	best := moves[0]
	bestValue := math.Inf(-1)
	if !maximizing {
		bestValue = math.Inf(1)
	}
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, move := range moves {
		child, err := state.Apply(move)
		if err != nil {
			return 0, metrics.SearchMetric{}, err
		}
		value := m.search(child, m.depth-1, alpha, beta)
		if maximizing {
			if value > bestValue {
				bestValue, best = value, move
			}
			alpha = math.Max(alpha, value)
		} else {
			if value < bestValue {
				bestValue, best = value, move
			}
			beta = math.Min(beta, value)
		}
	}

	return best, m.metrics.Complete(), nil
}

func (m *Minimax) search(state *game.GameState, depth int, alpha, beta float64) float64 {
	hash := state.Hash()
	if m.table != nil {
		if e, ok := m.table.lookup(hash, depth); ok {
			m.metrics.AddTableHit()
			return e.value
		}
	}

	m.metrics.AddNode()

	if depth == 0 || state.IsTerminal() {
		m.metrics.AddLeaf()
		value := m.evaluate(state, game.AI)
		m.store(hash, depth, value, 0)
		return value
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		if state.Deadlocked() { // Neither side can move: scores are final
			m.metrics.AddLeaf()
			value := m.evaluate(state, game.AI)
			m.store(hash, depth, value, 0)
			return value
		}
		// Forced pass: the opponent keeps playing
		return m.search(state.Pass(), depth-1, alpha, beta)
	}

	if m.ordering {
		moves = orderMoves(state, moves)
	}

	maximizing := state.Turn == game.AI
	bestMove := moves[0]
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}

	for _, move := range moves {
		child, err := state.Apply(move)
		if err != nil { // LegalMoves and Apply agree on legality
			panic(err)
		}
		value := m.search(child, depth-1, alpha, beta)
		if maximizing {
			if value > best {
				best, bestMove = value, move
			}
			alpha = math.Max(alpha, value)
		} else {
			if value < best {
				best, bestMove = value, move
			}
			beta = math.Min(beta, value)
		}
		if m.prune && alpha >= beta {
			m.metrics.AddPrune()
			break
		}
	}

	m.store(hash, depth, best, bestMove)
	return best
}

func (m *Minimax) store(hash game.StateHash, depth int, value float64, move game.Move) {
	if m.table != nil {
		m.table.store(hash, depth, value, move)
	}
}
