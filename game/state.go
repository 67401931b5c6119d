package game

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Coord addresses a cell by row and column, both zero-based from the
// top-left corner.
type Coord struct {
	Row, Col int
}

// GameState represents the dynamic state of a duel at any point. Every
// applied move produces a fresh copy; a state is never mutated once built.
type GameState struct {
	GridSize   int
	HumanPos   Coord
	AIPos      Coord
	HumanScore int
	AIScore    int
	Treasures  map[Coord]int  // Remaining treasure values by cell; entries only disappear
	Visited    map[Coord]bool // Cells occupied at any point by either player
	Turn       Player
}

func (gs *GameState) Copy() *GameState {
	treasuresCopy := make(map[Coord]int, len(gs.Treasures))
	for cell, value := range gs.Treasures {
		treasuresCopy[cell] = value
	}

	visitedCopy := make(map[Coord]bool, len(gs.Visited))
	for cell := range gs.Visited {
		visitedCopy[cell] = true
	}

	return &GameState{
		GridSize:   gs.GridSize,
		HumanPos:   gs.HumanPos,
		AIPos:      gs.AIPos,
		HumanScore: gs.HumanScore,
		AIScore:    gs.AIScore,
		Treasures:  treasuresCopy,
		Visited:    visitedCopy,
		Turn:       gs.Turn,
	}
}

// Pos returns p's current cell.
func (gs *GameState) Pos(p Player) Coord {
	if p == Human {
		return gs.HumanPos
	}
	return gs.AIPos
}

// Score returns p's running total.
func (gs *GameState) Score(p Player) int {
	if p == Human {
		return gs.HumanScore
	}
	return gs.AIScore
}

// IsTerminal reports whether the game is over: every treasure collected.
func (gs *GameState) IsTerminal() bool {
	return len(gs.Treasures) == 0
}

// InBounds reports whether c lies on the grid.
func (gs *GameState) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < gs.GridSize && c.Col >= 0 && c.Col < gs.GridSize
}

// Hash returns a canonical fingerprint of the state for transposition
// lookups: two states with the same positions, scores, treasures, visited
// cells and turn hash identically.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.HumanPos.Row))
	binary.Write(hasher, binary.LittleEndian, int64(gs.HumanPos.Col))
	binary.Write(hasher, binary.LittleEndian, int64(gs.AIPos.Row))
	binary.Write(hasher, binary.LittleEndian, int64(gs.AIPos.Col))
	binary.Write(hasher, binary.LittleEndian, int64(gs.HumanScore))
	binary.Write(hasher, binary.LittleEndian, int64(gs.AIScore))

	// Map iteration order is randomized; sort cells for a canonical digest
	cells := make([]Coord, 0, len(gs.Treasures))
	for cell := range gs.Treasures {
		cells = append(cells, cell)
	}
	slices.SortFunc(cells, compareCoord)
	for _, cell := range cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell.Row))
		binary.Write(hasher, binary.LittleEndian, int64(cell.Col))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Treasures[cell]))
	}

	visited := make([]Coord, 0, len(gs.Visited))
	for cell := range gs.Visited {
		visited = append(visited, cell)
	}
	slices.SortFunc(visited, compareCoord)
	for _, cell := range visited {
		binary.Write(hasher, binary.LittleEndian, int64(cell.Row))
		binary.Write(hasher, binary.LittleEndian, int64(cell.Col))
	}

	return StateHash(hasher.Sum64())
}

func compareCoord(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
