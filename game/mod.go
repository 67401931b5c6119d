package game

// Player identifies one of the two sides of a duel.
type Player int

const (
	Human Player = iota
	AI
)

func (p Player) String() string {
	if p == Human {
		return "Human"
	}
	return "AI"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Human {
		return AI
	}
	return Human
}

type StateHash uint64

// Evaluate scores a state from pov's perspective: higher is better for pov.
type Evaluate func(s *GameState, pov Player) float64
