package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"duel/experiments/metrics"
	"duel/game"
)

// LocalEngine drives a full game between two agents on one goroutine.
type LocalEngine struct {
	ID     uuid.UUID
	State  *game.GameState
	Agents map[game.Player]Agent
}

func NewLocalEngine(state *game.GameState, human, ai Agent) *LocalEngine {
	if state == nil {
		panic("need an initial state")
	}
	if human == nil || ai == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		ID:    uuid.New(),
		State: state,
		Agents: map[game.Player]Agent{
			game.Human: human,
			game.AI:    ai,
		},
	}
}

// Run executes the game loop: ask the active player's agent for a move,
// apply it, repeat. A stuck player passes; the game ends when the board is
// cleared, both players are stuck, or MaxMoves is reached.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Stringer("game", e.ID).Stringer("turn", e.State.Turn).Msg("game started")

	step := 0
	for !e.State.IsTerminal() && step < MaxMoves {
		mover := e.State.Turn

		if len(e.State.LegalMoves()) == 0 {
			if e.State.Deadlocked() {
				log.Info().Stringer("game", e.ID).Msg("both players stuck, scores stand")
				break
			}
			log.Debug().Stringer("game", e.ID).Stringer("player", mover).Msg("no legal moves, passing")
			e.State = e.State.Pass()
			continue
		}

		move, searchMetric, err := e.Agents[mover].FindMove(e.State)
		if err != nil {
			if errors.Is(err, game.ErrNoLegalMove) {
				e.State = e.State.Pass()
				continue
			}
			log.Error().Err(err).Stringer("game", e.ID).Stringer("player", mover).Msg("agent failed to pick a move")
			break
		}

		next, err := e.State.Apply(move)
		if err != nil {
			// The agent picked an illegal move; fall back to the first legal one
			log.Warn().Err(err).Stringer("game", e.ID).Stringer("player", mover).Stringer("move", move).Msg("illegal move, falling back")
			next, err = e.State.Apply(e.State.LegalMoves()[0])
			if err != nil {
				panic(err)
			}
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: searchMetric,
		})
		e.State = next
	}

	winner := e.State.Winner()
	end := time.Now()
	log.Info().Stringer("game", e.ID).Str("winner", winner).
		Int("human_score", e.State.HumanScore).Int("ai_score", e.State.AIScore).
		Int("moves", step).Msg("game over")

	return winner, metrics.GameMetric{
		Winner:     winner,
		HumanScore: e.State.HumanScore,
		AIScore:    e.State.AIScore,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	}, moveMetrics
}
