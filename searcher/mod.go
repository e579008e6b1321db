package searcher

import (
	"errors"
	"fmt"
	"math"

	"sudottt/game"
)

var (
	// ErrTerminalState is returned when a search is started on a finished
	// game.
	ErrTerminalState = errors.New("cannot search a terminal state")
	// ErrNoActions is returned when the current player has no legal
	// actions.
	ErrNoActions = errors.New("no legal actions available")
)

// SearchAlgorithm finds the next action to play from a state. A driver can
// swap implementations without knowing their internals.
type SearchAlgorithm interface {
	NextAction(state game.State) (game.Action, error)
}

// explorationC is the UCB1 exploration constant c.
var explorationC = math.Sqrt2

// ucb1 scores a child from its parent's perspective. q must already be
// oriented towards the player to move at the parent; an unvisited child
// scores +Inf so every child is tried once before the comparison means
// anything.
func ucb1(q, visits, parentLogN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return q/visits + explorationC*math.Sqrt(2*parentLogN/visits)
}

// mustApply applies an action known to be legal. The game contract
// guarantees LegalActions and Apply agree, so a failure here is a bug in
// the game implementation, not a recoverable condition.
func mustApply(state game.State, action game.Action) game.State {
	next, err := state.Apply(action)
	if err != nil {
		panic(fmt.Sprintf("legal action rejected by Apply: %v", err))
	}
	return next
}
