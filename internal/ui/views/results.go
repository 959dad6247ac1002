package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"searchgrip/internal/domain"
)

// ResultsState is everything needed to draw the results pane
type ResultsState struct {
	Results    []domain.SearchResult
	Current    int
	Focused    bool
	ShowBlurbs bool
	Query      string // query the results answer
	Width      int
	Height     int
}

// Renderer handles view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// RenderResults draws as many results as fit, keeping the current one visible
func (r *Renderer) RenderResults(s ResultsState) string {
	if len(s.Results) == 0 {
		if s.Query == "" {
			return r.styles.Dim.Render("Type a query and press Enter. Alt+Enter adds a new line.")
		}
		return r.styles.Dim.Render(fmt.Sprintf("No results for %q", oneLine(s.Query)))
	}
	if s.Height < 1 {
		return ""
	}

	perItem := 1
	if s.ShowBlurbs {
		perItem = 2
	}
	visible := s.Height / perItem
	if visible < 1 {
		visible = 1
	}

	start := 0
	if s.Current >= visible {
		start = s.Current - visible + 1
	}
	end := start + visible
	if end > len(s.Results) {
		end = len(s.Results)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(r.renderResult(s.Results[i], i == s.Current && s.Focused, s.ShowBlurbs, s.Width))
	}
	return b.String()
}

func (r *Renderer) renderResult(res domain.SearchResult, selected, showBlurb bool, width int) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetSourceColor(res.SourceType))).
		Render("[" + res.SourceType.Label() + "]")

	marker := "  "
	if selected {
		marker = "> "
	}

	titleWidth := width - lipgloss.Width(badge) - len(marker) - 1
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := runewidth.Truncate(oneLine(res.Title()), titleWidth, "…")

	line := marker + r.styles.ResultTitle.Render(title) + " " + badge
	if selected {
		line = r.styles.Selected.Render(line)
	}
	if !showBlurb {
		return line
	}

	blurbWidth := width - 4
	if blurbWidth < 8 {
		blurbWidth = 8
	}
	blurb := runewidth.Truncate(oneLine(res.Blurb), blurbWidth, "…")
	return line + "\n    " + r.styles.Blurb.Render(blurb)
}

// RenderDocument builds the pager text for a single result
func (r *Renderer) RenderDocument(res domain.SearchResult) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(res.Title()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Source: %s\n", res.SourceType.Label()))
	if inputs := res.SourceType.Inputs(); len(inputs) > 0 {
		names := make([]string, len(inputs))
		for i, in := range inputs {
			names[i] = string(in)
		}
		b.WriteString("Sync:   " + strings.Join(names, ", ") + "\n")
	}
	if res.Link != "" {
		b.WriteString("Link:   " + r.styles.Link.Render(res.Link) + "\n")
	}
	b.WriteString(fmt.Sprintf("Document: %s (chunk %d)\n\n", res.DocumentID, res.ChunkID))

	body := res.Content
	if body == "" {
		body = res.Blurb
	}
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// RenderStatus draws the line under the search box
func (r *Renderer) RenderStatus(searchType domain.SearchType, sources, message string, isError, searching bool) string {
	left := r.styles.Status.Render(fmt.Sprintf("%s search · %s", searchType, sources))
	if message == "" {
		return left
	}
	style := r.styles.StatusSuccess
	switch {
	case isError:
		style = r.styles.StatusError
	case searching:
		style = r.styles.StatusLoading
	}
	return left + "  " + style.Render(message)
}

// oneLine collapses newlines so a multi-line query fits a single row
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
