package game

import "fmt"

// LegalMoves yields the active player's legal moves in the fixed order Up,
// Down, Left, Right: the destination must be in bounds and not yet visited.
func (gs *GameState) LegalMoves() []Move {
	return gs.LegalMovesFor(gs.Turn)
}

func (gs *GameState) LegalMovesFor(p Player) []Move {
	pos := gs.Pos(p)
	var moves []Move
	for _, m := range Moves {
		dr, dc := m.Delta()
		dest := Coord{pos.Row + dr, pos.Col + dc}
		if gs.InBounds(dest) && !gs.Visited[dest] {
			moves = append(moves, m)
		}
	}
	return moves
}

// Apply plays m for the active player and returns the successor state. It
// is the single mutator of game state: it validates the destination, moves
// the player there, marks the cell visited, credits any treasure on it to
// the mover, and flips the turn. The receiver is never modified.
func (gs *GameState) Apply(m Move) (*GameState, error) {
	if gs.IsTerminal() {
		return nil, fmt.Errorf("%w: game is over", ErrInvalidMove)
	}

	pos := gs.Pos(gs.Turn)
	dr, dc := m.Delta()
	dest := Coord{pos.Row + dr, pos.Col + dc}

	if !gs.InBounds(dest) {
		return nil, fmt.Errorf("%w: %s from (%d,%d)", ErrOutOfBounds, m, pos.Row, pos.Col)
	}
	if gs.Visited[dest] {
		return nil, fmt.Errorf("%w: %s from (%d,%d)", ErrCellVisited, m, pos.Row, pos.Col)
	}

	next := gs.Copy()
	if gs.Turn == Human {
		next.HumanPos = dest
	} else {
		next.AIPos = dest
	}
	next.Visited[dest] = true
	if value, ok := next.Treasures[dest]; ok {
		if gs.Turn == Human {
			next.HumanScore += value
		} else {
			next.AIScore += value
		}
		delete(next.Treasures, dest)
	}
	next.Turn = gs.Turn.Opponent()
	return next, nil
}

// Pass flips the turn without moving: the stuck-player rule. A player with
// no legal moves forfeits the turn and the opponent keeps playing.
func (gs *GameState) Pass() *GameState {
	next := gs.Copy()
	next.Turn = gs.Turn.Opponent()
	return next
}

// Deadlocked reports whether neither player can move. With treasures still
// on the board this ends the game with the current scores as final.
func (gs *GameState) Deadlocked() bool {
	return len(gs.LegalMovesFor(Human)) == 0 && len(gs.LegalMovesFor(AI)) == 0
}

// Winner names the leader: "Human", "AI" or "Draw". Meaningful once the
// game is terminal or deadlocked.
func (gs *GameState) Winner() string {
	switch {
	case gs.HumanScore > gs.AIScore:
		return "Human"
	case gs.AIScore > gs.HumanScore:
		return "AI"
	default:
		return "Draw"
	}
}
