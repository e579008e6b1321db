package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Status of a local board.
const (
	boardOngoing int8 = 0
	boardDrawn   int8 = 2 // full without a winner
)

// NoForcedBoard means the current player may play in any undecided board.
const NoForcedBoard = -1

// BoardCell is the action of the Ultimate variant: a local board index and a
// cell index inside it, both 0-8.
type BoardCell struct {
	Board int
	Cell  int
}

func (a BoardCell) String() string {
	return fmt.Sprintf("board %d, cell %d", a.Board, a.Cell)
}

// Ultimate is the Ultimate ("Sudo") variant: a 3x3 grid of 3x3 local boards.
// Winning a local board claims its slot on the meta-board; three claimed
// slots in a row win the game. The cell index of each move forces the next
// player into the matching local board, unless that board is already
// decided.
type Ultimate struct {
	boards [9][9]int8
	status [9]int8
	player int8
	forced int8
}

// NewUltimate returns an empty board with X to move and no forcing
// constraint.
func NewUltimate() *Ultimate {
	return &Ultimate{player: PlayerX, forced: NoForcedBoard}
}

func (s *Ultimate) Player() int {
	return int(s.player)
}

// ForcedBoard returns the board the current player must play in, or
// NoForcedBoard.
func (s *Ultimate) ForcedBoard() int {
	return int(s.forced)
}

// BoardStatus returns the decided-status of a local board: PlayerX or
// PlayerO for a win, 0 while ongoing, 2 when drawn.
func (s *Ultimate) BoardStatus(board int) int {
	return int(s.status[board])
}

func (s *Ultimate) emptyCells(board int, actions []Action) []Action {
	for cell, mark := range s.boards[board] {
		if mark == Empty {
			actions = append(actions, BoardCell{Board: board, Cell: cell})
		}
	}
	return actions
}

func (s *Ultimate) LegalActions() []Action {
	if s.forced != NoForcedBoard && s.status[s.forced] == boardOngoing {
		return s.emptyCells(int(s.forced), make([]Action, 0, 9))
	}

	var actions []Action
	for board, status := range s.status {
		if status == boardOngoing {
			actions = s.emptyCells(board, actions)
		}
	}
	return actions
}

func (s *Ultimate) Apply(action Action) (State, error) {
	bc, ok := action.(BoardCell)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not an ultimate tic-tac-toe action", ErrIllegalAction, action)
	}
	if bc.Board < 0 || bc.Board > 8 || bc.Cell < 0 || bc.Cell > 8 {
		return nil, fmt.Errorf("%w: coordinates out of range: %v", ErrIllegalAction, bc)
	}
	if s.status[bc.Board] != boardOngoing {
		return nil, fmt.Errorf("%w: board %d already decided", ErrIllegalAction, bc.Board)
	}
	if s.forced != NoForcedBoard && int(s.forced) != bc.Board && s.status[s.forced] == boardOngoing {
		return nil, fmt.Errorf("%w: must play in board %d", ErrIllegalAction, s.forced)
	}
	if s.boards[bc.Board][bc.Cell] != Empty {
		return nil, fmt.Errorf("%w: board %d cell %d already occupied", ErrIllegalAction, bc.Board, bc.Cell)
	}

	// Arrays copy by value, so the successor owns its own grids.
	next := &Ultimate{
		boards: s.boards,
		status: s.status,
		player: -s.player,
	}
	next.boards[bc.Board][bc.Cell] = s.player

	if lineWinner(&next.boards[bc.Board]) == int(s.player) {
		next.status[bc.Board] = s.player
	} else if boardFull(&next.boards[bc.Board]) {
		next.status[bc.Board] = boardDrawn
	}

	next.forced = int8(bc.Cell)
	if next.status[bc.Cell] != boardOngoing {
		next.forced = NoForcedBoard
	}
	return next, nil
}

func boardFull(cells *[9]int8) bool {
	for _, cell := range cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// metaWinner treats drawn local boards as unclaimed slots on the meta-board.
func (s *Ultimate) metaWinner() int {
	var meta [9]int8
	for i, status := range s.status {
		if status == PlayerX || status == PlayerO {
			meta[i] = status
		}
	}
	return lineWinner(&meta)
}

func (s *Ultimate) allDecided() bool {
	for _, status := range s.status {
		if status == boardOngoing {
			return false
		}
	}
	return true
}

func (s *Ultimate) GameOver() bool {
	return s.metaWinner() != Empty || s.allDecided()
}

func (s *Ultimate) Result() int {
	return s.metaWinner()
}

func (s *Ultimate) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.player))
	binary.Write(hasher, binary.LittleEndian, int64(s.forced))
	binary.Write(hasher, binary.LittleEndian, s.status[:])
	for i := range s.boards {
		binary.Write(hasher, binary.LittleEndian, s.boards[i][:])
	}
	return StateHash(hasher.Sum64())
}

func (s *Ultimate) String() string {
	var b strings.Builder
	for bigRow := 0; bigRow < 3; bigRow++ {
		if bigRow > 0 {
			b.WriteString("\n------+-------+------")
		}
		for smallRow := 0; smallRow < 3; smallRow++ {
			b.WriteByte('\n')
			for bigCol := 0; bigCol < 3; bigCol++ {
				if bigCol > 0 {
					b.WriteString(" | ")
				}
				board := 3*bigRow + bigCol
				for i := 0; i < 3; i++ {
					if i > 0 {
						b.WriteByte(' ')
					}
					b.WriteString(markSymbol(s.boards[board][3*smallRow+i]))
				}
			}
		}
	}
	return strings.TrimPrefix(b.String(), "\n")
}

// Interactive helpers.

func (s *Ultimate) Title() string {
	return "Ultimate Tic-Tac-Toe"
}

func (s *Ultimate) Prompt() string {
	prompt := "Enter your move as <board> <cell> (numbers 0-8)."
	if s.forced != NoForcedBoard && s.status[s.forced] == boardOngoing {
		prompt += fmt.Sprintf(" You must play in board %d.", s.forced)
	}
	return prompt
}

func (s *Ultimate) ParseAction(input string) (Action, error) {
	tokens := strings.Fields(input)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("%w: expected two numbers, got %q", ErrBadActionInput, input)
	}
	board, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrBadActionInput, tokens[0])
	}
	cell, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrBadActionInput, tokens[1])
	}
	if board < 0 || board > 8 || cell < 0 || cell > 8 {
		return nil, fmt.Errorf("%w: board and cell must be between 0 and 8", ErrBadActionInput)
	}
	return BoardCell{Board: board, Cell: cell}, nil
}
