package statusbar

import "github.com/riordanpawley/dragboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: cards  m: move  </>: shift column  ?: help  q: quit"
	case types.ModeMove:
		return "h/j/k/l: move card  </>: shift column  Enter/m: done"
	case types.ModeDrag:
		return "release: drop  Esc: cancel"
	default:
		return ""
	}
}
