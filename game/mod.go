package game

import "errors"

// Player marks. Zero means an empty cell; Result uses the same values from
// PlayerX's perspective (0 covers both a draw and an unfinished game, so
// callers must check GameOver first).
const (
	PlayerX = 1
	PlayerO = -1
	Empty   = 0
)

var (
	// ErrIllegalAction covers occupied cells, out-of-range coordinates,
	// decided local boards and forced-board violations.
	ErrIllegalAction = errors.New("illegal action")
	// ErrBadActionInput is returned by ParseAction for malformed text input.
	ErrBadActionInput = errors.New("invalid action input")
)

// Action is an opaque, variant-specific move. Concrete types are comparable
// values, so == works for legality checks against LegalActions.
type Action interface {
	String() string
}

type StateHash uint64

// State is one point in a two-player zero-sum game. States are immutable:
// Apply always returns a new, fully independent state.
type State interface {
	// Player returns whose turn it is, PlayerX or PlayerO.
	Player() int
	// LegalActions returns every action the current player may take. Empty
	// only at a terminal state.
	LegalActions() []Action
	// Apply returns the successor state, or ErrIllegalAction.
	Apply(action Action) (State, error)
	GameOver() bool
	// Result returns +1 if X won, -1 if O won, 0 for a draw or an
	// unfinished game.
	Result() int
	// Hash is consistent with structural equality (up to 64-bit collisions)
	// and covers the full grid contents, statuses, current player and any
	// forcing constraint.
	Hash() StateHash
	String() string
}

// Interactive adds the human-input helpers a CLI driver needs. ParseAction
// only checks the input format; callers must still re-validate the parsed
// action against LegalActions before applying it.
type Interactive interface {
	State
	Title() string
	Prompt() string
	ParseAction(input string) (Action, error)
}

// winLines are the eight three-in-a-row index triplets of a 3x3 grid,
// shared by both variants (cells of a local board, and local boards of the
// Ultimate meta-board).
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// lineWinner returns the player with three in a row on a 3x3 grid, or Empty.
func lineWinner(cells *[9]int8) int {
	for _, line := range winLines {
		v := cells[line[0]]
		if v != Empty && v == cells[line[1]] && v == cells[line[2]] {
			return int(v)
		}
	}
	return Empty
}
