package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sudottt/cli"
	"sudottt/engine"
	"sudottt/experiments"
	"sudottt/game"
)

func main() {
	var (
		gameName   = flag.String("game", "ultimate", "game to play: "+strings.Join(engine.GameNames(), ", "))
		agentX     = flag.String("x", "human", "agent for X: human, mcts:<simulations> or minimax:<depth>")
		agentO     = flag.String("o", "mcts:400", "agent for O: human, mcts:<simulations> or minimax:<depth>")
		seed       = flag.Uint64("seed", 0, "seed for mcts rollouts (0 means time-based)")
		experiment = flag.String("experiment", "", "run the experiment config file instead of an interactive game")
		verbose    = flag.Bool("v", false, "log every engine turn")
	)
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *experiment != "" {
		cfg, err := experiments.LoadConfig(*experiment)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
		if err := experiments.Run(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	state, err := engine.NewGame(*gameName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	x, err := newAgent(*agentX, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agent for X")
	}
	o, err := newAgent(*agentO, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agent for O")
	}

	if err := play(state, x, o); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// newAgent parses an agent spec: "human", "mcts:<simulations>" or
// "minimax:<depth>" ("minimax" alone searches to terminal states).
func newAgent(spec string, seed uint64) (engine.Agent, error) {
	if spec == "human" {
		return cli.NewHuman(os.Stdin, os.Stdout), nil
	}

	name, param, hasParam := strings.Cut(spec, ":")
	cfg := engine.AlgorithmConfig{Name: name, Seed: seed}
	if hasParam {
		value, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("bad agent spec %q: %w", spec, err)
		}
		switch name {
		case "mcts":
			cfg.Simulations = value
		case "minimax":
			cfg.Depth = value
		}
	}
	return engine.NewAlgorithm(cfg)
}

// play runs an interactive game, rendering the board between turns.
func play(state game.Interactive, agentX, agentO engine.Agent) error {
	fmt.Printf("Welcome to %s!\n", state.Title())

	agents := map[int]engine.Agent{game.PlayerX: agentX, game.PlayerO: agentO}
	var current game.State = state

	for {
		fmt.Println("\nCurrent board:")
		fmt.Println(cli.Render(current))

		if current.GameOver() {
			fmt.Println("\n===== GAME OVER =====")
			switch current.Result() {
			case game.PlayerX:
				fmt.Println("Result: X wins")
			case game.PlayerO:
				fmt.Println("Result: O wins")
			default:
				fmt.Println("Result: draw")
			}
			return nil
		}

		player := current.Player()
		playerName := "X"
		if player == game.PlayerO {
			playerName = "O"
		}
		fmt.Printf("\nPlayer %s's turn.\n", playerName)

		action, err := agents[player].NextAction(current)
		if errors.Is(err, io.EOF) {
			fmt.Println("\nExiting game.")
			return nil
		}
		if err != nil {
			return err
		}

		next, err := current.Apply(action)
		if err != nil {
			return fmt.Errorf("applying %s: %w", action, err)
		}
		fmt.Printf("Player %s plays %s\n", playerName, action)
		current = next
	}
}
