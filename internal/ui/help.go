package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer builds the full help page shown in the pager
type HelpRenderer struct {
	input   inputKeyMap
	results resultsKeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		input:   newInputKeyMap(),
		results: newResultsKeyMap(),
	}
}

// Render generates help content with colors for the pager
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	var help strings.Builder

	help.WriteString(titleStyle.Render("searchgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	writeBindings(&help, r.input.Submit, r.input.Newline, r.input.ClearQuery, r.input.FocusResults, r.input.Quit)
	help.WriteString("  The box grows with the query. In terminals without Alt, Ctrl+J also adds a line.\n")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	writeBindings(&help, r.results.Down, r.results.Up, r.results.Open, r.results.CopyLink)
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filters"))
	help.WriteString("\n")
	writeBindings(&help, r.results.CycleSource, r.results.ToggleType)
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	writeBindings(&help, r.results.FocusInput, r.results.Help, r.results.Quit)

	return help.String()
}

func writeBindings(b *strings.Builder, bindings ...key.Binding) {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(22)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	for _, binding := range bindings {
		h := binding.Help()
		keys := strings.Join(binding.Keys(), ", ")
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(keys), descStyle.Render(h.Desc)))
	}
}
