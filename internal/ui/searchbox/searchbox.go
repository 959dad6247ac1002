// Package searchbox implements the query input: a multi-line text area
// whose text is owned by its parent, that grows and shrinks with its
// content, and that submits on Enter while Shift+Enter inserts a newline.
package searchbox

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a search box
type Options struct {
	OnQueryChange  func(newText string)
	OnSubmit       func()
	Placeholder    string
	BaselineHeight int
	MaxHeight      int
	Width          int
}

// Model is the search box. It never stores the query itself: edits are
// reported through OnQueryChange and the parent hands the accepted text
// back with SetQuery.
type Model struct {
	input         textarea.Model
	onQueryChange func(string)
	onSubmit      func()
	baseline      int
	maxHeight     int
}

// New creates a search box
func New(opts Options) *Model {
	if opts.BaselineHeight < 1 {
		opts.BaselineHeight = 1
	}
	if opts.MaxHeight < opts.BaselineHeight {
		opts.MaxHeight = opts.BaselineHeight
	}
	if opts.Width <= 0 {
		opts.Width = 40
	}

	ta := textarea.New()
	ta.Placeholder = opts.Placeholder
	ta.Prompt = "┃ "
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	// Visible height is capped by the search box; the text itself is not.
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.SetWidth(opts.Width)
	ta.SetHeight(opts.BaselineHeight)

	m := &Model{
		input:         ta,
		onQueryChange: opts.OnQueryChange,
		onSubmit:      opts.OnSubmit,
		baseline:      opts.BaselineHeight,
		maxHeight:     opts.MaxHeight,
	}
	if m.onQueryChange == nil {
		m.onQueryChange = func(string) {}
	}
	if m.onSubmit == nil {
		m.onSubmit = func() {}
	}
	return m
}

// HandleContentChange reports the full content to the parent, then resizes
// the surface to fit it.
func (m *Model) HandleContentChange(raw string) {
	m.onQueryChange(raw)
	m.resize(raw)
}

// HandleKeyPress reacts to a key-down event and reports whether the text
// area's default handling must be suppressed.
func (m *Model) HandleKeyPress(key string, shiftPressed bool) bool {
	if ClassifyKey(key, shiftPressed) == IntentSubmit {
		m.onSubmit()
		return true
	}
	return false
}

// Update feeds a bubbletea message through the search box
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	k, shift := KeyEvent(keyMsg)
	if m.HandleKeyPress(k, shift) {
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if after := m.input.Value(); after != before {
		m.HandleContentChange(after)
	}
	return cmd
}

// SetQuery re-supplies the parent's text. The height is left alone; a
// parent that rewrites the query on its own should call Remeasure.
func (m *Model) SetQuery(query string) {
	if query != m.input.Value() {
		m.input.SetValue(query)
	}
}

// Remeasure resizes the surface to the displayed text
func (m *Model) Remeasure() {
	m.resize(m.input.Value())
}

// resize resets the surface to the baseline before measuring, otherwise a
// shrinking edit would be measured against the old, taller surface.
func (m *Model) resize(content string) {
	m.input.SetHeight(m.baseline)
	h := naturalHeight(content, m.input.Width(), m.input.Height())
	if h > m.maxHeight {
		h = m.maxHeight
	}
	m.input.SetHeight(h)
	m.syncScroll(content)
}

// scrollStep is how far one wheel event moves the text area's viewport
const scrollStep = 3

// syncScroll puts the viewport back at the top, or as close to it as the
// cursor allows. The text area scrolls while still at its old height, so a
// surface grown by wrapping would otherwise keep its first row hidden.
func (m *Model) syncScroll(content string) {
	if !m.input.Focused() {
		return
	}
	// rendering refreshes the line count the viewport scrolls against
	_ = m.input.View()

	wheelUp := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	rows := contentRows(content, m.input.Width()) + m.input.Height()
	for i := 0; i <= rows; i += scrollStep {
		m.input, _ = m.input.Update(wheelUp)
	}
}

// SetWidth sets the total width including the prompt
func (m *Model) SetWidth(w int) {
	m.input.SetWidth(w)
	m.Remeasure()
}

// SetMaxHeight caps how tall the search box may grow
func (m *Model) SetMaxHeight(h int) {
	if h < m.baseline {
		h = m.baseline
	}
	m.maxHeight = h
	m.Remeasure()
}

// Height is the current visible height in rows
func (m *Model) Height() int { return m.input.Height() }

// TextWidth is the wrap width of the text
func (m *Model) TextWidth() int { return m.input.Width() }

// Baseline is the height of an empty search box
func (m *Model) Baseline() int { return m.baseline }

// MaxHeight is the current height cap
func (m *Model) MaxHeight() int { return m.maxHeight }

// Focus focuses the search box
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// Blur blurs the search box
func (m *Model) Blur() { m.input.Blur() }

// Focused reports whether the search box has focus
func (m *Model) Focused() bool { return m.input.Focused() }

// View renders the search box
func (m *Model) View() string { return m.input.View() }

// Blink is the cursor blink command to start from Init
func Blink() tea.Msg { return textarea.Blink() }
