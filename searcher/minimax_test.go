package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sudottt/game"
)

func TestNewMinimax(t *testing.T) {
	t.Run("panics on a non-positive depth", func(t *testing.T) {
		require.Panics(t, func() { WithMaxDepth(0) }, "Zero depth should fail at construction")
		require.Panics(t, func() { WithMaxDepth(-3) }, "Negative depth should fail at construction")
	})
}

func TestMinimaxNextAction(t *testing.T) {
	t.Run("rejects a terminal state", func(t *testing.T) {
		state := game.State(game.NewTicTacToe())
		for _, cell := range []game.Cell{0, 5, 1, 8, 2} {
			next, err := state.Apply(cell)
			require.NoError(t, err)
			state = next
		}

		_, err := NewMinimax().NextAction(state)
		require.ErrorIs(t, err, ErrTerminalState, "Searching a finished game should fail")
	})

	t.Run("rejects a state without legal actions", func(t *testing.T) {
		_, err := NewMinimax().NextAction(stuckState{})
		require.ErrorIs(t, err, ErrNoActions, "A state without actions should fail")
	})

	t.Run("completes the top row", func(t *testing.T) {
		// X holds cells 0 and 1 with no block in between; cell 2 wins.
		state := winInOne(t)

		action, err := NewMinimax().NextAction(state)
		require.NoError(t, err)
		require.Equal(t, game.Cell(2), action, "X should complete the top row")

		next, err := state.Apply(action)
		require.NoError(t, err)
		require.True(t, next.GameOver(), "The winning move should end the game")
		require.Equal(t, game.PlayerX, next.Result(), "X should win after completing the row")
	})

	t.Run("blocks the opponent's threat", func(t *testing.T) {
		// X holds 0 and 1, O holds the center; only blocking at 2 avoids
		// the loss and holds the draw.
		state := game.State(game.NewTicTacToe())
		for _, cell := range []game.Cell{0, 4, 1} {
			next, err := state.Apply(cell)
			require.NoError(t, err)
			state = next
		}

		action, err := NewMinimax().NextAction(state)
		require.NoError(t, err)
		require.Equal(t, game.Cell(2), action, "O must block the top row")
	})

	t.Run("a shallow depth limit still finds an immediate win", func(t *testing.T) {
		state := winInOne(t)

		action, err := NewMinimax(WithMaxDepth(1)).NextAction(state)
		require.NoError(t, err)
		require.Equal(t, game.Cell(2), action, "Depth 1 sees the terminal child")
	})

	t.Run("returns a legal action on the Ultimate board", func(t *testing.T) {
		state := game.NewUltimate()

		action, err := NewMinimax(WithMaxDepth(2)).NextAction(state)
		require.NoError(t, err)
		require.Contains(t, state.LegalActions(), action, "The chosen action must be legal")
	})

	t.Run("perfect self-play draws the standard game", func(t *testing.T) {
		// Exhaustive search plays tic-tac-toe perfectly from the empty
		// board, so a self-play game must end drawn.
		algorithm := NewMinimax()
		state := game.State(game.NewTicTacToe())
		for !state.GameOver() {
			action, err := algorithm.NextAction(state)
			require.NoError(t, err)
			require.Contains(t, state.LegalActions(), action, "Every move must be legal")

			next, err := state.Apply(action)
			require.NoError(t, err)
			state = next
		}

		require.Equal(t, 0, state.Result(), "Perfect play from the empty board is a draw")
	})

	t.Run("the cache does not leak between searches", func(t *testing.T) {
		algorithm := NewMinimax()

		first, err := algorithm.NextAction(winInOne(t))
		require.NoError(t, err)
		second, err := algorithm.NextAction(winInOne(t))
		require.NoError(t, err)
		require.Equal(t, first, second, "Repeated searches of the same state agree")
	})
}
