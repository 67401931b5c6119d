package game

// Move is a unit step for the active player.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists every direction in the fixed generation order used by
// LegalMoves and the searcher.
var Moves = [4]Move{Up, Down, Left, Right}

// Delta returns the row and column offsets of the move.
func (m Move) Delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}
