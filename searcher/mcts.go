package searcher

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"sudottt/experiments/metrics"
	"sudottt/game"
)

// MCTS plays by Monte Carlo tree search with UCB1 selection, uniform-random
// rollouts and robust-child move selection. Each NextAction call builds its
// own tree and discards it; nothing is shared between calls. Not safe for
// concurrent use: the search is synchronous and single-threaded.
type MCTS struct {
	simulations int
	rng         *rand.Rand
	collector   metrics.Collector
}

type Option func(m *MCTS)

// WithRand sets the rollout random source. Seed it explicitly for
// reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed is shorthand for WithRand with a fixed seed.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCollector attaches a metrics collector to the search loop.
func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// NewMCTS panics if the simulation budget is not positive; configuration
// errors fail at construction time, not at search time.
func NewMCTS(simulations int, options ...Option) *MCTS {
	if simulations <= 0 {
		panic("simulations per move must be positive")
	}
	m := &MCTS{
		simulations: simulations,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// NextAction runs the full simulation budget from state and returns the
// action of the most-visited root child.
func (m *MCTS) NextAction(state game.State) (game.Action, error) {
	if state.GameOver() {
		return nil, ErrTerminalState
	}
	if len(state.LegalActions()) == 0 {
		return nil, ErrNoActions
	}

	root := newNode(state, nil, nil)
	for i := 0; i < m.simulations; i++ {
		leaf := m.treePolicy(root)
		outcome := m.rollout(leaf.state)
		backpropagate(leaf, outcome)
		m.collector.AddSimulation()
	}

	best := root.mostVisited()
	if best == nil {
		return nil, fmt.Errorf("no children after %d simulations", m.simulations)
	}
	return best.action, nil
}

// treePolicy descends from the root, expanding the first untried action it
// meets and otherwise following the UCB1-best child, until it expands a new
// node or reaches a terminal one.
func (m *MCTS) treePolicy(root *node) *node {
	current := root
	for !current.terminal() {
		if !current.fullyExpanded() {
			return current.expand()
		}
		current = current.bestChild()
	}
	return current
}

// rollout plays uniformly random actions to the end of the game and returns
// the result from player X's perspective.
func (m *MCTS) rollout(state game.State) int {
	moves := 0
	for !state.GameOver() {
		actions := state.LegalActions()
		if len(actions) == 0 {
			break // no continuation, scored as a draw
		}
		state = mustApply(state, actions[m.rng.Intn(len(actions))])
		moves++
	}
	m.collector.AddRolloutMoves(moves)
	return state.Result()
}
