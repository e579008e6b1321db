package cli

import (
	"bufio"
	"fmt"
	"io"

	"sudottt/game"
)

// Human is an engine.Agent that asks a person for the next action. Parse
// and legality failures are recovered locally by re-prompting; only EOF on
// the input ends the game.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) NextAction(state game.State) (game.Action, error) {
	interactive, ok := state.(game.Interactive)
	if !ok {
		return nil, fmt.Errorf("game state does not support human input")
	}

	fmt.Fprintln(h.out, interactive.Prompt())
	for {
		fmt.Fprint(h.out, "Your move> ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return nil, fmt.Errorf("reading move: %w", err)
			}
			return nil, io.EOF
		}

		action, err := interactive.ParseAction(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "Invalid input: %v. Please try again.\n", err)
			continue
		}

		// Parsing only checks the format; the move must still be legal.
		if !contains(state.LegalActions(), action) {
			fmt.Fprintf(h.out, "Illegal move %s. Please try again.\n", action)
			continue
		}
		return action, nil
	}
}

func contains(actions []game.Action, action game.Action) bool {
	for _, candidate := range actions {
		if candidate == action {
			return true
		}
	}
	return false
}
