package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Cell is the action of the standard variant: a board index 0-8.
type Cell int

func (c Cell) String() string {
	return fmt.Sprintf("cell %d", int(c))
}

// TicTacToe is the standard 3x3 game. The zero value is not usable; create
// states with NewTicTacToe.
type TicTacToe struct {
	board  [9]int8
	player int8
}

// NewTicTacToe returns an empty board with X to move.
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{player: PlayerX}
}

func (s *TicTacToe) Player() int {
	return int(s.player)
}

func (s *TicTacToe) LegalActions() []Action {
	actions := make([]Action, 0, 9)
	for i, cell := range s.board {
		if cell == Empty {
			actions = append(actions, Cell(i))
		}
	}
	return actions
}

func (s *TicTacToe) Apply(action Action) (State, error) {
	cell, ok := action.(Cell)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a tic-tac-toe action", ErrIllegalAction, action)
	}
	if cell < 0 || cell > 8 {
		return nil, fmt.Errorf("%w: cell %d out of range", ErrIllegalAction, cell)
	}
	if s.board[cell] != Empty {
		return nil, fmt.Errorf("%w: cell %d already occupied", ErrIllegalAction, cell)
	}

	next := &TicTacToe{board: s.board, player: -s.player}
	next.board[cell] = s.player
	return next, nil
}

func (s *TicTacToe) winner() int {
	return lineWinner(&s.board)
}

func (s *TicTacToe) full() bool {
	for _, cell := range s.board {
		if cell == Empty {
			return false
		}
	}
	return true
}

func (s *TicTacToe) GameOver() bool {
	return s.winner() != Empty || s.full()
}

func (s *TicTacToe) Result() int {
	return s.winner()
}

func (s *TicTacToe) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.player))
	binary.Write(hasher, binary.LittleEndian, s.board[:])
	return StateHash(hasher.Sum64())
}

func (s *TicTacToe) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(markSymbol(s.board[3*row+col]))
		}
	}
	return b.String()
}

func markSymbol(mark int8) string {
	switch mark {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Interactive helpers.

func (s *TicTacToe) Title() string {
	return "Standard Tic-Tac-Toe"
}

func (s *TicTacToe) Prompt() string {
	return "Enter your move as a cell number (0-8):\n0 1 2\n3 4 5\n6 7 8"
}

func (s *TicTacToe) ParseAction(input string) (Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrBadActionInput, input)
	}
	if n < 0 || n > 8 {
		return nil, fmt.Errorf("%w: cell must be between 0 and 8", ErrBadActionInput)
	}
	return Cell(n), nil
}
