package searcher

import (
	"math"

	"sudottt/game"
)

// node is one state in the MCTS search tree. Children are owned downward;
// the parent pointer exists only so backpropagation can walk up and must
// never be treated as ownership. The win tallies are always stored from
// player X's perspective; draws bump visits but neither tally.
type node struct {
	state    game.State
	parent   *node
	action   game.Action // the action that produced this node from parent
	children []*node
	visits   int
	winsX    int
	winsO    int
	untried  []game.Action // nil until first accessed
	expanded bool          // untried has been initialized
}

func newNode(state game.State, parent *node, action game.Action) *node {
	return &node{state: state, parent: parent, action: action}
}

// untriedActions lazily fetches the legal actions not yet expanded.
func (n *node) untriedActions() []game.Action {
	if !n.expanded {
		n.untried = n.state.LegalActions()
		n.expanded = true
	}
	return n.untried
}

func (n *node) fullyExpanded() bool {
	return len(n.untriedActions()) == 0
}

func (n *node) terminal() bool {
	return n.state.GameOver()
}

// q is net wins for player X: wins observed at or under this node minus
// losses.
func (n *node) q() int {
	return n.winsX - n.winsO
}

// expand pops the next untried action and adds the resulting child.
func (n *node) expand() *node {
	untried := n.untriedActions()
	action := untried[len(untried)-1]
	n.untried = untried[:len(untried)-1]

	child := newNode(mustApply(n.state, action), n, action)
	n.children = append(n.children, child)
	return child
}

// bestChild returns the child maximizing UCB1 from the perspective of the
// player to move at this node. The stored q is from X's perspective;
// multiplying by the current player re-orients it.
func (n *node) bestChild() *node {
	parentLogN := math.Log(float64(n.visits))
	perspective := float64(n.state.Player())

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(float64(child.q())*perspective, float64(child.visits), parentLogN)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// mostVisited is the robust-child criterion used for the final answer.
func (n *node) mostVisited() *node {
	var best *node
	maxVisits := -1
	for _, child := range n.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			best = child
		}
	}
	return best
}

// backpropagate records a rollout outcome on every node from n up to the
// root. An explicit loop, not recursion: the parent chain can be as deep as
// the game.
func backpropagate(n *node, outcome int) {
	for ; n != nil; n = n.parent {
		n.visits++
		switch outcome {
		case game.PlayerX:
			n.winsX++
		case game.PlayerO:
			n.winsO++
		}
	}
}
