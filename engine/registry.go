package engine

import (
	"fmt"
	"sort"

	"sudottt/experiments/metrics"
	"sudottt/game"
	"sudottt/searcher"
)

// Game name → constructor. New variants register here.
var games = map[string]func() game.Interactive{
	"tictactoe": func() game.Interactive { return game.NewTicTacToe() },
	"ultimate":  func() game.Interactive { return game.NewUltimate() },
}

// NewGame looks up a game by its registry name.
func NewGame(name string) (game.Interactive, error) {
	constructor, ok := games[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q (available: %v)", name, GameNames())
	}
	return constructor(), nil
}

func GameNames() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AlgorithmConfig describes a search algorithm by name plus its numeric
// parameter. Simulations applies to mcts, Depth to minimax (0 means search
// to terminal states). Seed fixes the mcts rollout source when non-zero.
type AlgorithmConfig struct {
	Name        string
	Simulations int
	Depth       int
	Seed        uint64
	Collector   metrics.Collector
}

// NewAlgorithm builds a search algorithm from a config. Parameter values
// are validated here so that bad user input surfaces as an error rather
// than a constructor panic.
func NewAlgorithm(cfg AlgorithmConfig) (searcher.SearchAlgorithm, error) {
	switch cfg.Name {
	case "mcts":
		if cfg.Simulations <= 0 {
			return nil, fmt.Errorf("mcts requires a positive simulation count, got %d", cfg.Simulations)
		}
		options := []searcher.Option{}
		if cfg.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		if cfg.Collector != nil {
			options = append(options, searcher.WithCollector(cfg.Collector))
		}
		return searcher.NewMCTS(cfg.Simulations, options...), nil
	case "minimax":
		if cfg.Depth < 0 {
			return nil, fmt.Errorf("minimax depth must not be negative, got %d", cfg.Depth)
		}
		options := []searcher.MinimaxOption{}
		if cfg.Depth > 0 {
			options = append(options, searcher.WithMaxDepth(cfg.Depth))
		}
		return searcher.NewMinimax(options...), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (available: mcts, minimax)", cfg.Name)
	}
}
