package searcher

import "duel/game"

// entry records the outcome of searching a state: the depth it was searched
// to, the resulting value (AI perspective) and the best move found there.
// Entries are advisory and only usable at depths they were searched deep
// enough for.
type entry struct {
	depth int
	value float64
	move  game.Move
}

// table is a transposition table scoped to a single FindMove invocation.
// Key collisions overwrite (last write wins); no eviction.
type table struct {
	entries map[game.StateHash]entry
}

func newTable() *table {
	return &table{entries: map[game.StateHash]entry{}}
}

func (t *table) reset() {
	clear(t.entries)
}

func (t *table) lookup(hash game.StateHash, depth int) (entry, bool) {
	e, ok := t.entries[hash]
	if !ok || e.depth < depth {
		return entry{}, false
	}
	return e, true
}

func (t *table) store(hash game.StateHash, depth int, value float64, move game.Move) {
	t.entries[hash] = entry{depth: depth, value: value, move: move}
}

func (t *table) size() int {
	return len(t.entries)
}
