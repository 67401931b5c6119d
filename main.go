package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duel/engine"
	"duel/experiments"
	"duel/game"
	"duel/searcher"
)

func main() {
	mode := flag.String("mode", "play", "Game mode: play, selfplay or experiment")
	gridSize := flag.Int("grid-size", 4, "Size of the game grid")
	treasures := flag.Int("treasures", 5, "Number of treasures to place")
	depth := flag.Int("depth", 4, "AI search depth")
	minValue := flag.Int("min-value", -3, "Smallest treasure value")
	maxValue := flag.Int("max-value", 10, "Largest treasure value")
	seed := flag.Int64("seed", 0, "Board seed, 0 for random")
	configPath := flag.String("config", "", "Experiment config file (experiment mode)")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *mode == "experiment" {
		if *configPath == "" {
			fmt.Fprintln(os.Stderr, "experiment mode needs -config")
			os.Exit(1)
		}
		if err := experiments.RunDepthExperiment(*configPath); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "error: search depth must be at least 1")
		os.Exit(1)
	}

	state, err := game.NewGame(game.Config{
		GridSize:  *gridSize,
		Treasures: *treasures,
		MinValue:  *minValue,
		MaxValue:  *maxValue,
		Seed:      *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "play":
		runConsole(state, *depth)
	case "selfplay":
		runSelfPlay(state, *depth)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

// runSelfPlay has the searcher play both seats and prints the result.
func runSelfPlay(state *game.GameState, depth int) {
	human := engine.NewSearchAgent(searcher.NewMinimax(depth))
	ai := engine.NewSearchAgent(searcher.NewMinimax(depth))
	e := engine.NewLocalEngine(state, human, ai)

	winner, gameMetric, _ := e.Run()
	render(e.State)
	fmt.Printf("Winner: %s (human %d, AI %d) in %d moves\n",
		winner, gameMetric.HumanScore, gameMetric.AIScore, gameMetric.TotalMoves)
}

// runConsole plays an interactive game: human on stdin, AI via search.
func runConsole(state *game.GameState, depth int) {
	ai := searcher.NewMinimax(depth)
	reader := bufio.NewScanner(os.Stdin)

	fmt.Println("Treasure Duel. Collect more treasure value than the AI.")
	fmt.Println("Moves: w=up, s=down, a=left, d=right, q=quit.")

	for !state.IsTerminal() {
		if state.Deadlocked() {
			fmt.Println("Neither player can move. Scores stand.")
			break
		}

		render(state)

		if state.Turn == game.Human {
			if len(state.LegalMoves()) == 0 {
				fmt.Println("You have no legal moves and must pass.")
				state = state.Pass()
				continue
			}
			move, quit := promptMove(reader)
			if quit {
				fmt.Println("Goodbye!")
				return
			}
			next, err := state.Apply(move)
			if err != nil {
				switch {
				case errors.Is(err, game.ErrOutOfBounds):
					fmt.Println("That move leaves the grid. Try again.")
				case errors.Is(err, game.ErrCellVisited):
					fmt.Println("That cell was already visited. Try again.")
				default:
					fmt.Printf("Illegal move: %v\n", err)
				}
				continue
			}
			state = next
		} else {
			move, _, err := ai.FindMove(state)
			if errors.Is(err, game.ErrNoLegalMove) {
				fmt.Println("The AI has no legal moves and passes.")
				state = state.Pass()
				continue
			}
			if err != nil {
				log.Fatal().Err(err).Msg("search failed")
			}
			fmt.Printf("AI moves %s.\n", move)
			state, err = state.Apply(move)
			if err != nil {
				log.Fatal().Err(err).Msg("search returned an illegal move")
			}
		}
	}

	render(state)
	fmt.Printf("Game over. Winner: %s (you %d, AI %d)\n",
		state.Winner(), state.HumanScore, state.AIScore)
}

func promptMove(reader *bufio.Scanner) (game.Move, bool) {
	for {
		fmt.Print("Your move (w/a/s/d): ")
		if !reader.Scan() {
			return 0, true
		}
		switch strings.TrimSpace(strings.ToLower(reader.Text())) {
		case "w", "up":
			return game.Up, false
		case "s", "down":
			return game.Down, false
		case "a", "left":
			return game.Left, false
		case "d", "right":
			return game.Right, false
		case "q", "quit":
			return 0, true
		default:
			fmt.Println("Unknown input.")
		}
	}
}

func render(state *game.GameState) {
	fmt.Printf("\nYou: %d  AI: %d  Turn: %s\n", state.HumanScore, state.AIScore, state.Turn)
	for row := 0; row < state.GridSize; row++ {
		for col := 0; col < state.GridSize; col++ {
			cell := game.Coord{Row: row, Col: col}
			if cell == state.HumanPos {
				fmt.Print("   H")
			} else if cell == state.AIPos {
				fmt.Print("   A")
			} else if value, ok := state.Treasures[cell]; ok {
				fmt.Printf("%4d", value)
			} else if state.Visited[cell] {
				fmt.Print("   x")
			} else {
				fmt.Print("   .")
			}
		}
		fmt.Println()
	}
}
