package statusbar

import "github.com/jthornberg/stageboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: tasks  [/]: stage  n: new  t: toggle stage  ?: help  q: quit"
	case types.ModeGoto:
		return "1-7: stage  g: top  e: end  Esc: cancel"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: cancel"
	case types.ModeAction:
		// Action mode hints come from the open overlay
		return ""
	default:
		return ""
	}
}
