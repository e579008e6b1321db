package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sudottt/experiments/metrics"
	"sudottt/game"
)

// winInOne is a standard board where X must play cell 2: it completes the
// top row, and cell 2 is also O's only winning threat.
func winInOne(t *testing.T) game.State {
	t.Helper()
	state := game.State(game.NewTicTacToe())
	for _, cell := range []game.Cell{0, 5, 1, 8} {
		next, err := state.Apply(cell)
		require.NoError(t, err)
		state = next
	}
	return state
}

func TestNewMCTS(t *testing.T) {
	t.Run("panics on a non-positive simulation budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS(0) }, "Zero simulations should fail at construction")
		require.Panics(t, func() { NewMCTS(-5) }, "Negative simulations should fail at construction")
	})
}

func TestMCTSNextAction(t *testing.T) {
	t.Run("rejects a terminal state", func(t *testing.T) {
		state := game.State(game.NewTicTacToe())
		for _, cell := range []game.Cell{0, 5, 1, 8, 2} { // X wins the top row
			next, err := state.Apply(cell)
			require.NoError(t, err)
			state = next
		}

		_, err := NewMCTS(10, WithSeed(1)).NextAction(state)
		require.ErrorIs(t, err, ErrTerminalState, "Searching a finished game should fail")
	})

	t.Run("rejects a state without legal actions", func(t *testing.T) {
		// A non-terminal state with no continuation only arises from a
		// broken game implementation, but the precondition still holds.
		_, err := NewMCTS(10, WithSeed(1)).NextAction(stuckState{})
		require.ErrorIs(t, err, ErrNoActions, "A state without actions should fail")
	})

	t.Run("returns a legal action", func(t *testing.T) {
		state := game.NewTicTacToe()

		action, err := NewMCTS(50, WithSeed(7)).NextAction(state)
		require.NoError(t, err)
		require.Contains(t, state.LegalActions(), action, "The chosen action must be legal")
	})

	t.Run("finds an immediate win", func(t *testing.T) {
		state := winInOne(t)

		action, err := NewMCTS(400, WithSeed(42)).NextAction(state)
		require.NoError(t, err)
		require.Equal(t, game.Cell(2), action, "X should complete the top row")
	})

	t.Run("is reproducible under a fixed seed", func(t *testing.T) {
		state := game.NewUltimate()

		first, err := NewMCTS(100, WithSeed(99)).NextAction(state)
		require.NoError(t, err)
		second, err := NewMCTS(100, WithSeed(99)).NextAction(state)
		require.NoError(t, err)
		require.Equal(t, first, second, "Same seed should reproduce the same search")
	})

	t.Run("reports simulations to the collector", func(t *testing.T) {
		collector := metrics.NewCollector()
		state := game.NewTicTacToe()

		_, err := NewMCTS(25, WithSeed(3), WithCollector(collector)).NextAction(state)
		require.NoError(t, err)

		snapshot := collector.Snapshot()
		require.Equal(t, 25, snapshot.Simulations, "Every simulation should be counted")
		require.Greater(t, snapshot.RolloutMoves, 0, "Rollouts should play moves")
	})
}

// stuckState is non-terminal but offers no actions.
type stuckState struct{}

func (stuckState) Player() int                           { return game.PlayerX }
func (stuckState) LegalActions() []game.Action           { return nil }
func (stuckState) Apply(game.Action) (game.State, error) { return nil, game.ErrIllegalAction }
func (stuckState) GameOver() bool                        { return false }
func (stuckState) Result() int                           { return 0 }
func (stuckState) Hash() game.StateHash                  { return 0 }
func (stuckState) String() string                        { return "stuck" }
