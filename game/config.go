package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Config carries the boundary parameters of a new game. All values come
// from the presentation layer and are validated here, never trusted.
type Config struct {
	GridSize  int
	Treasures int
	MinValue  int
	MaxValue  int
	Seed      int64 // 0 seeds from the clock
}

func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalidConfiguration, c.GridSize)
	}
	if c.Treasures < 1 {
		return fmt.Errorf("%w: need at least 1 treasure", ErrInvalidConfiguration)
	}
	if max := c.GridSize*c.GridSize - 2; c.Treasures > max {
		return fmt.Errorf("%w: %d treasures exceed the %d non-start cells of a %dx%d grid",
			ErrInvalidConfiguration, c.Treasures, max, c.GridSize, c.GridSize)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: value range [%d, %d] is empty", ErrInvalidConfiguration, c.MinValue, c.MaxValue)
	}
	return nil
}

// NewGame builds the starting state: human in the top-left corner, AI in
// the bottom-right, both start cells already visited, and treasures placed
// on distinct other cells with values drawn uniformly from
// [MinValue, MaxValue]. The human moves first.
func NewGame(c Config) (*GameState, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	humanStart := Coord{0, 0}
	aiStart := Coord{c.GridSize - 1, c.GridSize - 1}

	cells := make([]Coord, 0, c.GridSize*c.GridSize-2)
	for row := 0; row < c.GridSize; row++ {
		for col := 0; col < c.GridSize; col++ {
			cell := Coord{row, col}
			if cell != humanStart && cell != aiStart {
				cells = append(cells, cell)
			}
		}
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	treasures := make(map[Coord]int, c.Treasures)
	for _, cell := range cells[:c.Treasures] {
		treasures[cell] = c.MinValue + rng.Intn(c.MaxValue-c.MinValue+1)
	}

	return &GameState{
		GridSize:  c.GridSize,
		HumanPos:  humanStart,
		AIPos:     aiStart,
		Treasures: treasures,
		Visited:   map[Coord]bool{humanStart: true, aiStart: true},
		Turn:      Human,
	}, nil
}
