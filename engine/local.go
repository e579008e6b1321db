package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sudottt/experiments/metrics"
	"sudottt/game"
)

// Agent produces the next action for a state. Both search algorithms and
// the CLI human agent satisfy this.
type Agent interface {
	NextAction(state game.State) (game.Action, error)
}

// MaxTurns guards against games that fail to terminate; far above the
// longest possible Ultimate game (81 moves).
const MaxTurns = 200

// Engine drives a local game between two agents. Each turn it asks the
// agent of the player to move for an action, re-validates it against the
// legal actions, and applies it.
type Engine struct {
	State  game.State
	agents map[int]Agent
}

func NewLocalEngine(initial game.State, agentX, agentO Agent) *Engine {
	if agentX == nil || agentO == nil {
		panic("both agents must be set")
	}
	return &Engine{
		State: initial,
		agents: map[int]Agent{
			game.PlayerX: agentX,
			game.PlayerO: agentO,
		},
	}
}

// Run plays until the game is over and returns the result from player X's
// perspective along with per-move metrics.
func (e *Engine) Run() (int, []metrics.MoveMetric, error) {
	log.Info().Msgf("player %d is starting", e.State.Player())

	var moves []metrics.MoveMetric
	for turn := 1; !e.State.GameOver(); turn++ {
		if turn > MaxTurns {
			return 0, moves, fmt.Errorf("game did not finish within %d turns", MaxTurns)
		}

		player := e.State.Player()
		start := time.Now()
		action, err := e.agents[player].NextAction(e.State)
		if err != nil {
			return 0, moves, fmt.Errorf("agent for player %d failed: %w", player, err)
		}
		if !legal(e.State, action) {
			return 0, moves, fmt.Errorf("agent for player %d returned %v: %w", player, action, game.ErrIllegalAction)
		}

		next, err := e.State.Apply(action)
		if err != nil {
			return 0, moves, fmt.Errorf("applying move for player %d: %w", player, err)
		}
		e.State = next

		log.Info().Msgf("turn %d: player %d plays %s", turn, player, action)
		moves = append(moves, metrics.MoveMetric{
			Step:       turn,
			Player:     player,
			DurationMs: time.Since(start).Milliseconds(),
		})
	}

	result := e.State.Result()
	log.Info().Msgf("game over after %d moves, result %d", len(moves), result)
	return result, moves, nil
}

func legal(state game.State, action game.Action) bool {
	for _, candidate := range state.LegalActions() {
		if candidate == action {
			return true
		}
	}
	return false
}
