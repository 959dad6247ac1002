package ui

import "github.com/charmbracelet/bubbles/key"

// inputKeyMap applies while the search box has focus. Everything not
// listed here is handed to the search box.
type inputKeyMap struct {
	Submit       key.Binding
	Newline      key.Binding
	FocusResults key.Binding
	ClearQuery   key.Binding
	Quit         key.Binding
}

// resultsKeyMap applies while the results list has focus
type resultsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	CopyLink    key.Binding
	CycleSource key.Binding
	ToggleType  key.Binding
	FocusInput  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		// Submit and Newline are handled by the search box itself, listed for help
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", "new line"),
		),
		FocusResults: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("tab", "results"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func newResultsKeyMap() resultsKeyMap {
	return resultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		CycleSource: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "source"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "keyword/semantic"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("/", "i", "tab"),
			key.WithHelp("/", "edit query"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.FocusResults, k.ClearQuery, k.Quit}
}

// FullHelp implements help.KeyMap
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp implements help.KeyMap
func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Open, k.CopyLink, k.FocusInput, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.CopyLink},
		{k.CycleSource, k.ToggleType, k.FocusInput, k.Help, k.Quit},
	}
}
