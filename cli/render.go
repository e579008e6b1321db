package cli

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"sudottt/game"
)

var profile = termenv.ColorProfile()

func styleMark(mark string, color termenv.ANSIColor) string {
	return termenv.String(mark).Foreground(profile.Convert(color)).Bold().String()
}

// Render returns the board with colored marks and, for the Ultimate
// variant, a forced-board hint.
func Render(state game.State) string {
	var b strings.Builder
	for _, r := range state.String() {
		switch r {
		case 'X':
			b.WriteString(styleMark("X", termenv.ANSIRed))
		case 'O':
			b.WriteString(styleMark("O", termenv.ANSIBlue))
		default:
			b.WriteRune(r)
		}
	}

	if ultimate, ok := state.(*game.Ultimate); ok && !ultimate.GameOver() {
		if forced := ultimate.ForcedBoard(); forced != game.NoForcedBoard {
			hint := fmt.Sprintf("next move must be in board %d", forced)
			b.WriteString("\n")
			b.WriteString(termenv.String(hint).Foreground(profile.Convert(termenv.ANSIYellow)).String())
		}
	}
	return b.String()
}
