package searcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"sudottt/game"
)

type mockAction struct {
	id int
}

func (a mockAction) String() string {
	return fmt.Sprintf("action %d", a.id)
}

// mockState is a minimal game.State: it terminates after movesLeft further
// moves and then reports result.
type mockState struct {
	player    int
	movesLeft int
	result    int
}

func (m mockState) Player() int { return m.player }

func (m mockState) LegalActions() []game.Action {
	if m.movesLeft <= 0 {
		return nil
	}
	actions := make([]game.Action, 0, m.movesLeft)
	for i := 0; i < m.movesLeft; i++ {
		actions = append(actions, mockAction{id: i})
	}
	return actions
}

func (m mockState) Apply(action game.Action) (game.State, error) {
	if m.movesLeft <= 0 {
		return nil, game.ErrIllegalAction
	}
	return mockState{player: -m.player, movesLeft: m.movesLeft - 1, result: m.result}, nil
}

func (m mockState) GameOver() bool { return m.movesLeft <= 0 }

func (m mockState) Result() int {
	if m.movesLeft <= 0 {
		return m.result
	}
	return 0
}

func (m mockState) Hash() game.StateHash {
	return game.StateHash(uint64(m.movesLeft)<<8 | uint64(m.player&0xff))
}

func (m mockState) String() string { return fmt.Sprintf("mock %d", m.movesLeft) }

func TestNodeExpand(t *testing.T) {
	t.Run("pops untried actions from the back", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 3}, nil, nil)

		child := root.expand()

		require.Equal(t, mockAction{id: 2}, child.action, "Expansion should pop the last untried action")
		require.Equal(t, root, child.parent, "Child should reference its parent")
		require.Len(t, root.untriedActions(), 2, "Expansion should consume one untried action")
		require.Len(t, root.children, 1, "Expansion should add one child")
		require.Equal(t, game.PlayerO, child.state.Player(), "Child state should belong to the opponent")
	})

	t.Run("becomes fully expanded after exhausting actions", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 2}, nil, nil)

		require.False(t, root.fullyExpanded())
		root.expand()
		root.expand()
		require.True(t, root.fullyExpanded(), "Node with no untried actions is fully expanded")
	})
}

func TestNodeBestChild(t *testing.T) {
	t.Run("prefers an unvisited child", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 2}, nil, nil)
		visited := root.expand()
		fresh := root.expand()
		visited.visits = 5
		visited.winsX = 5
		root.visits = 5

		require.Equal(t, fresh, root.bestChild(), "Unvisited children score +Inf and win the comparison")
	})

	t.Run("maximizes net wins for player X", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 2}, nil, nil)
		weak := root.expand()
		strong := root.expand()
		weak.visits, weak.winsX, weak.winsO = 10, 2, 8
		strong.visits, strong.winsX, strong.winsO = 10, 8, 2
		root.visits = 20

		require.Equal(t, strong, root.bestChild(), "X should prefer the child with more net wins")
	})

	t.Run("re-orients the statistic for player O", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerO, movesLeft: 2}, nil, nil)
		xFavored := root.expand()
		oFavored := root.expand()
		xFavored.visits, xFavored.winsX, xFavored.winsO = 10, 8, 2
		oFavored.visits, oFavored.winsX, oFavored.winsO = 10, 2, 8
		root.visits = 20

		require.Equal(t, oFavored, root.bestChild(), "O should prefer the child with more net losses for X")
	})
}

func TestBackpropagate(t *testing.T) {
	t.Run("records a win along the parent chain", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 3}, nil, nil)
		child := root.expand()
		grandchild := child.expand()

		backpropagate(grandchild, game.PlayerX)

		for _, n := range []*node{root, child, grandchild} {
			require.Equal(t, 1, n.visits, "Every node on the chain gets a visit")
			require.Equal(t, 1, n.winsX, "Every node on the chain records the win")
			require.Equal(t, 0, n.winsO, "The loss tally stays untouched")
		}
	})

	t.Run("draws count visits but no tally", func(t *testing.T) {
		root := newNode(mockState{player: game.PlayerX, movesLeft: 2}, nil, nil)
		child := root.expand()

		backpropagate(child, 0)

		require.Equal(t, 1, root.visits, "Draws still count as visits")
		require.Equal(t, 0, root.q(), "Draws leave net wins unchanged")
	})

	t.Run("q is net wins from X's perspective", func(t *testing.T) {
		n := newNode(mockState{player: game.PlayerX, movesLeft: 1}, nil, nil)
		backpropagate(n, game.PlayerX)
		backpropagate(n, game.PlayerX)
		backpropagate(n, game.PlayerO)

		require.Equal(t, 1, n.q(), "q should be wins minus losses")
		require.Equal(t, 3, n.visits)
	})
}
