package searcher

import (
	"math"

	"github.com/rs/zerolog/log"

	"sudottt/game"
)

// Minimax is depth-limited minimax with alpha-beta pruning and a per-call
// score cache. Without WithMaxDepth it searches to terminal states only.
//
// The cache maps state hashes to exact scores and is discarded before every
// top-level call: a score computed under one set of alpha-beta bounds is
// not generally valid under another, so the cache is a per-search
// memoization, not a persistent transposition table. Truncating at the
// depth limit scores a non-terminal state with Result(), which conflates
// "search cut off" with "drawn"; both are documented contract behavior.
// Not safe for concurrent use.
type Minimax struct {
	maxDepth int // 0 means unbounded
	cache    map[game.StateHash]float64
}

type MinimaxOption func(m *Minimax)

// WithMaxDepth bounds the recursion depth. Panics if depth is not positive.
func WithMaxDepth(depth int) MinimaxOption {
	if depth <= 0 {
		panic("max depth must be positive")
	}
	return func(m *Minimax) {
		m.maxDepth = depth
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{}
	for _, option := range options {
		option(m)
	}
	return m
}

// NextAction evaluates every root action one ply down and returns the best
// one for the player to move. Root actions are never pruned; the root-side
// bound only tightens pruning inside subsequently evaluated siblings.
func (m *Minimax) NextAction(state game.State) (game.Action, error) {
	if state.GameOver() {
		return nil, ErrTerminalState
	}
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, ErrNoActions
	}

	m.cache = make(map[game.StateHash]float64)
	alpha, beta := math.Inf(-1), math.Inf(1)

	var best game.Action
	bestScore := math.Inf(-1)
	if state.Player() == game.PlayerO {
		bestScore = math.Inf(1)
	}

	for _, action := range actions {
		score := m.minimax(mustApply(state, action), 0, alpha, beta)

		if state.Player() == game.PlayerX {
			if score > bestScore {
				bestScore = score
				best = action
			}
			alpha = math.Max(alpha, bestScore)
		} else {
			if score < bestScore {
				bestScore = score
				best = action
			}
			beta = math.Min(beta, bestScore)
		}
	}

	if best == nil {
		// Every score compared unfavorably with the sentinel, which should
		// not happen for a finite game.
		log.Warn().Msg("minimax found no improving action, returning the first legal action")
		return actions[0], nil
	}
	return best, nil
}

// minimax returns the score of state from player X's perspective.
func (m *Minimax) minimax(state game.State, depth int, alpha, beta float64) float64 {
	hash := state.Hash()
	if score, ok := m.cache[hash]; ok {
		return score
	}

	if state.GameOver() || (m.maxDepth > 0 && depth >= m.maxDepth) {
		score := float64(state.Result())
		m.cache[hash] = score
		return score
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		// Non-terminal state without continuation counts as a draw.
		m.cache[hash] = 0
		return 0
	}

	var score float64
	if state.Player() == game.PlayerX {
		score = math.Inf(-1)
		for _, action := range actions {
			score = math.Max(score, m.minimax(mustApply(state, action), depth+1, alpha, beta))
			alpha = math.Max(alpha, score)
			if alpha >= beta {
				break
			}
		}
	} else {
		score = math.Inf(1)
		for _, action := range actions {
			score = math.Min(score, m.minimax(mustApply(state, action), depth+1, alpha, beta))
			beta = math.Min(beta, score)
			if beta <= alpha {
				break
			}
		}
	}

	m.cache[hash] = score
	return score
}
