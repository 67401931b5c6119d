package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duel/game"
)

func TestTable(t *testing.T) {
	hash := game.StateHash(0xfeed)

	t.Run("hit requires enough searched depth", func(t *testing.T) {
		tb := newTable()
		tb.store(hash, 3, 1.5, game.Left)

		e, ok := tb.lookup(hash, 2)
		require.True(t, ok, "An entry searched to depth 3 serves a depth-2 probe")
		require.Equal(t, 1.5, e.value)
		require.Equal(t, game.Left, e.move)

		_, ok = tb.lookup(hash, 3)
		require.True(t, ok)

		_, ok = tb.lookup(hash, 4)
		require.False(t, ok, "A shallow entry must not serve a deeper probe")
	})

	t.Run("unknown hash misses", func(t *testing.T) {
		tb := newTable()
		_, ok := tb.lookup(hash, 0)
		require.False(t, ok)
	})

	t.Run("last write wins on collision", func(t *testing.T) {
		tb := newTable()
		tb.store(hash, 2, 1.0, game.Up)
		tb.store(hash, 4, -2.0, game.Down)

		e, ok := tb.lookup(hash, 4)
		require.True(t, ok)
		require.Equal(t, -2.0, e.value)
		require.Equal(t, game.Down, e.move)
		require.Equal(t, 1, tb.size())
	})

	t.Run("reset empties the table", func(t *testing.T) {
		tb := newTable()
		tb.store(hash, 2, 1.0, game.Up)
		tb.reset()

		require.Zero(t, tb.size())
		_, ok := tb.lookup(hash, 0)
		require.False(t, ok)
	})
}
