package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"duel/engine"
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
)

// RunDepthExperiment pits a baseline-depth agent against each depth in the
// config's ladder and writes agent, game and move records as CSV.
func RunDepthExperiment(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	baseline := metrics.AgentConfig{ID: 0, Depth: cfg.Baseline, Label: "baseline"}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, depth := range cfg.Depths {
		config := metrics.AgentConfig{ID: i + 1, Depth: depth, Label: fmt.Sprintf("depth-%d", depth)}
		configs = append(configs, config)
		// The baseline takes the human seat, the candidate the AI seat
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	log.Info().Str("experiment", cfg.Name).Int("matchups", len(matchUps)).Msg("starting experiment")

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchUps {
		log.Info().Str("experiment", cfg.Name).
			Int("matchup", mi+1).
			Interface("agent1", matchup[0]).
			Interface("agent2", matchup[1]).
			Msg("starting matchup")

		for i := 0; i < cfg.Games; i++ {
			// Vary the board between games but keep seeded runs reproducible
			seed := cfg.Seed
			if seed != 0 {
				seed += int64(count)
			}
			state, err := game.NewGame(game.Config{
				GridSize:  cfg.GridSize,
				Treasures: cfg.Treasures,
				MinValue:  cfg.MinValue,
				MaxValue:  cfg.MaxValue,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			winner, gameMetric, moveMetrics := runGame(state, matchup[0], matchup[1])
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchup[0].ID,
				Agent2:     matchup[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Int("matchup", mi+1).Int("game", i+1).Str("winner", winner).Msg("completed game")
		}
	}

	log.Info().Str("experiment", cfg.Name).Msg("completed experiment")

	writer, err := metrics.NewWriter(cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("experiment", cfg.Name).Msg("stored experiment records")

	return nil
}

// runGame executes a single game between two search agents and returns the
// winner with its metrics.
func runGame(state *game.GameState, humanSeat, aiSeat metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	human := engine.NewSearchAgent(createMinimax(humanSeat))
	ai := engine.NewSearchAgent(createMinimax(aiSeat))
	e := engine.NewLocalEngine(state, human, ai)
	return e.Run()
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	return searcher.NewMinimax(config.Depth, searcher.WithMetrics())
}
