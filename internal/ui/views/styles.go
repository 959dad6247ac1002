package views

import (
	"github.com/charmbracelet/lipgloss"

	"searchgrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	InputBox      lipgloss.Style
	InputBoxBlur  lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	ResultTitle   lipgloss.Style
	Blurb         lipgloss.Style
	Selected      lipgloss.Style
	Link          lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		InputBoxBlur: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(0, 1),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ResultTitle:   lipgloss.NewStyle().Bold(true),
		Blurb:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// GetSourceColor returns the badge color for a document source
func GetSourceColor(source domain.DocumentSource) string {
	switch source {
	case domain.SourceSlack:
		return "170" // purple
	case domain.SourceGithub:
		return "252" // light gray
	case domain.SourceConfluence, domain.SourceJira:
		return "33" // blue
	case domain.SourceGoogleDrive:
		return "78" // green
	case domain.SourceWeb:
		return "214" // yellow
	default:
		return "241"
	}
}
