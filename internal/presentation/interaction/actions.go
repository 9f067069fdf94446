package interaction

// Action is what a key press asks the watch screen to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextYear
	ActionPrevYear
	ActionJumpYear
	ActionReload
	ActionToggleHelp
	ActionToggleLayout
	// ActionBack closes the help overlay, or quits when nothing is open.
	ActionBack
)

// Binding is a resolved key press. Index is the zero-based tab for
// ActionJumpYear.
type Binding struct {
	Action Action
	Index  int
}

// Resolve maps a key event to its binding.
func Resolve(event KeyEvent) Binding {
	switch event.Type {
	case KeyRight, KeyTab:
		return Binding{Action: ActionNextYear}
	case KeyLeft, KeyBackTab:
		return Binding{Action: ActionPrevYear}
	case KeyEscape:
		return Binding{Action: ActionBack}
	case KeyChar:
	default:
		return Binding{Action: ActionNone}
	}

	switch r := event.Key; {
	case r == 'q' || r == 'Q' || r == keyCtrlC:
		return Binding{Action: ActionQuit}
	case r == 'l' || r == 'L':
		return Binding{Action: ActionNextYear}
	case r == 'h' || r == 'H':
		return Binding{Action: ActionPrevYear}
	case r >= '1' && r <= '9':
		return Binding{Action: ActionJumpYear, Index: int(r - '1')}
	case r == 'r' || r == 'R':
		return Binding{Action: ActionReload}
	case r == '?':
		return Binding{Action: ActionToggleHelp}
	case r == 't' || r == 'T':
		return Binding{Action: ActionToggleLayout}
	}
	return Binding{Action: ActionNone}
}

// HelpLines describes the bindings for the help overlay.
var HelpLines = []string{
	"→ / l / Tab     - Next (older) year",
	"← / h / S-Tab   - Previous (newer) year",
	"1-9             - Jump to the n-th year tab",
	"r               - Reload project files",
	"t               - Switch layout (Grid → List)",
	"?               - Toggle this help",
	"Esc             - Close help (or quit if nothing is open)",
	"q / Ctrl+C      - Quit",
}
