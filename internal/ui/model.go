package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"searchgrip/internal/backend"
	"searchgrip/internal/config"
	"searchgrip/internal/eventbus"
	"searchgrip/internal/logging"
	"searchgrip/internal/ui/searchbox"
	"searchgrip/internal/ui/services/search"
	"searchgrip/internal/ui/views"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Rows used by everything except the search box and the results
const chromeRows = 6 // title, box border x2, status, blank, help

// Model represents the UI state. It owns the query text; the search box
// only reports edits and is handed the accepted text back.
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config

	query         string
	submitPending bool

	searchBox *searchbox.Model
	search    *search.Service
	renderer  *views.Renderer
	helpPage  *HelpRenderer
	pager     *Pager
	copyLink  func(string) error

	inputKeys   inputKeyMap
	resultsKeys resultsKeyMap
	help        help.Model

	focus         focusArea
	width         int
	height        int
	searching     bool
	statusMessage string
	statusIsError bool
	inPagerMode   bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, svc *search.Service) *Model {
	m := &Model{
		ctx:         ctx,
		bus:         bus,
		config:      cfg,
		search:      svc,
		renderer:    views.NewRenderer(),
		helpPage:    NewHelpRenderer(),
		pager:       NewPager(),
		copyLink:    clipboard.WriteAll,
		inputKeys:   newInputKeyMap(),
		resultsKeys: newResultsKeyMap(),
		help:        help.New(),
	}

	m.searchBox = searchbox.New(searchbox.Options{
		OnQueryChange:  m.onQueryChange,
		OnSubmit:       m.onSubmit,
		Placeholder:    cfg.UISettings.Placeholder,
		BaselineHeight: cfg.UISettings.BaselineHeight,
		MaxHeight:      cfg.UISettings.MaxHeight,
	})
	m.searchBox.Focus()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetClipboard replaces the function used to copy links
func (m *Model) SetClipboard(fn func(string) error) {
	m.copyLink = fn
}

// Query returns the current query text
func (m *Model) Query() string { return m.query }

func (m *Model) onQueryChange(newText string) {
	m.query = newText
	if m.bus != nil {
		m.bus.Publish(eventbus.QueryChangedEvent{Query: newText})
	}
}

// onSubmit runs inside the search box's key handling, so the search
// command is issued once control is back in Update
func (m *Model) onSubmit() {
	m.submitPending = true
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return searchbox.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		if m.focus == focusInput {
			return m, m.handleInputKey(msg)
		}
		return m, m.handleResultsKey(msg)

	case searchResultMsg:
		m.searching = false
		if msg.err != nil {
			logging.L().WithError(msg.err).WithField("query", msg.query).Warn("search failed")
			m.setError(describeSearchError(msg.err))
			return m, nil
		}
		m.search.Apply(msg.resp)
		if msg.query != m.query {
			m.setStatus(fmt.Sprintf("%d results for %q", len(msg.resp.Results), msg.query))
		} else {
			m.setStatus(fmt.Sprintf("%d results", len(msg.resp.Results)))
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			logging.L().WithError(msg.err).Warn("pager failed")
			m.setError(fmt.Sprintf("Pager error: %v", msg.err))
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.setStatus("Copied " + msg.link)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.setError(e.Message)
		}
		return m, nil
	}

	// cursor blink and other text area housekeeping
	return m, m.searchBox.Update(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.inputKeys.Quit):
		return tea.Quit
	case key.Matches(msg, m.inputKeys.FocusResults):
		m.focusOn(focusResults)
		return nil
	case key.Matches(msg, m.inputKeys.ClearQuery):
		m.onQueryChange("")
		m.searchBox.SetQuery(m.query)
		m.searchBox.Remeasure()
		m.layout()
		return nil
	}

	heightBefore := m.searchBox.Height()
	cmd := m.searchBox.Update(msg)
	m.searchBox.SetQuery(m.query)
	if m.searchBox.Height() != heightBefore {
		m.layout()
	}

	if !m.submitPending {
		return cmd
	}
	m.submitPending = false
	return tea.Batch(cmd, m.submit())
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.resultsKeys.Quit):
		return tea.Quit
	case key.Matches(msg, m.resultsKeys.FocusInput):
		return m.focusOn(focusInput)
	case key.Matches(msg, m.resultsKeys.Down):
		m.search.NavigateNext()
	case key.Matches(msg, m.resultsKeys.Up):
		m.search.NavigatePrevious()
	case key.Matches(msg, m.resultsKeys.Open):
		return m.openCurrent()
	case key.Matches(msg, m.resultsKeys.CopyLink):
		return m.copyCurrentLink()
	case key.Matches(msg, m.resultsKeys.CycleSource):
		m.search.CycleSource()
		m.setStatus("Filter: " + m.search.SourceLabel())
	case key.Matches(msg, m.resultsKeys.ToggleType):
		t := m.search.ToggleSearchType()
		m.setStatus(fmt.Sprintf("Using %s search", t))
	case key.Matches(msg, m.resultsKeys.Help):
		return m.showInPager(m.helpPage.Render())
	}
	return nil
}

// submit starts a backend search for the current query
func (m *Model) submit() tea.Cmd {
	req := m.search.BuildRequest(m.query)
	if strings.TrimSpace(req.Query) == "" {
		m.setError("Type a query first")
		return nil
	}

	m.searching = true
	m.setStatus(fmt.Sprintf("Searching %s...", m.search.SourceLabel()))

	ctx := m.ctx
	svc := m.search
	return func() tea.Msg {
		resp, err := svc.Run(ctx, req)
		return searchResultMsg{query: req.Query, resp: resp, err: err}
	}
}

func (m *Model) openCurrent() tea.Cmd {
	res, ok := m.search.Current()
	if !ok {
		return nil
	}
	return m.showInPager(m.renderer.RenderDocument(res))
}

func (m *Model) copyCurrentLink() tea.Cmd {
	res, ok := m.search.Current()
	if !ok {
		return nil
	}
	if res.Link == "" {
		m.setError("Result has no link")
		return nil
	}
	copyLink := m.copyLink
	return func() tea.Msg {
		return clipboardMsg{link: res.Link, err: copyLink(res.Link)}
	}
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	if m.program == nil {
		m.setError("Pager unavailable")
		return nil
	}
	program := m.program
	pager := m.pager
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model) focusOn(area focusArea) tea.Cmd {
	m.focus = area
	if area == focusInput {
		return m.searchBox.Focus()
	}
	m.searchBox.Blur()
	return nil
}

// layout fits the search box to the window
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.searchBox.SetWidth(m.width - 4) // border and padding

	limit := m.height / 3
	if cfgMax := m.config.UISettings.MaxHeight; limit > cfgMax {
		limit = cfgMax
	}
	m.searchBox.SetMaxHeight(limit)
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func describeSearchError(err error) string {
	var rejected *backend.RejectedError
	switch {
	case errors.Is(err, backend.ErrEmptyQuery):
		return "Type a query first"
	case errors.Is(err, context.DeadlineExceeded):
		return "Search timed out"
	case errors.As(err, &rejected) && rejected.Unauthorized():
		return "Search backend rejected the API key"
	case errors.As(err, &rejected):
		return fmt.Sprintf("Search backend rejected the request (%d)", rejected.StatusCode)
	case errors.Is(err, backend.ErrBackendUnavailable):
		return "Search backend unavailable"
	default:
		return fmt.Sprintf("Search failed: %v", err)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	styles := m.renderer.Styles()

	box := styles.InputBoxBlur
	if m.focus == focusInput {
		box = styles.InputBox
	}

	resultsHeight := m.height - m.searchBox.Height() - chromeRows
	if resultsHeight < 1 {
		resultsHeight = 1
	}

	var helpView string
	if m.focus == focusInput {
		helpView = m.help.View(m.inputKeys)
	} else {
		helpView = m.help.View(m.resultsKeys)
	}

	sections := []string{
		styles.Title.Render("searchgrip"),
		box.Render(m.searchBox.View()),
		m.renderer.RenderStatus(m.search.SearchType(), m.search.SourceLabel(), m.statusMessage, m.statusIsError, m.searching),
		"",
		m.renderer.RenderResults(views.ResultsState{
			Results:    m.search.Results(),
			Current:    m.search.GetCurrentMatchIndex(),
			Focused:    m.focus == focusResults,
			ShowBlurbs: m.config.UISettings.ShowBlurbs,
			Query:      m.search.GetQuery(),
			Width:      m.width - 2,
			Height:     resultsHeight,
		}),
		styles.Help.Render(helpView),
	}

	return styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
