package searchbox

import tea "github.com/charmbracelet/bubbletea"

// KeyEnter is the primary submit key
const KeyEnter = "Enter"

// Intent is what a key-down event means to the search box
type Intent int

const (
	// IntentEdit is any key the text area handles normally
	IntentEdit Intent = iota
	// IntentSubmit asks the parent to run the query
	IntentSubmit
	// IntentNewline inserts a literal newline into the query
	IntentNewline
)

func (i Intent) String() string {
	switch i {
	case IntentSubmit:
		return "submit"
	case IntentNewline:
		return "insert-newline"
	default:
		return "ordinary-edit"
	}
}

// ClassifyKey maps a key-down event onto an Intent
func ClassifyKey(key string, shiftPressed bool) Intent {
	if key != KeyEnter {
		return IntentEdit
	}
	if shiftPressed {
		return IntentNewline
	}
	return IntentSubmit
}

// KeyEvent translates a terminal key message into (key, shiftPressed).
// Legacy terminal input cannot report shift on Enter, so alt+enter and
// ctrl+j (a raw line feed) stand in for Shift+Enter.
func KeyEvent(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return KeyEnter, msg.Alt
	case tea.KeyCtrlJ:
		return KeyEnter, true
	default:
		return msg.String(), false
	}
}
