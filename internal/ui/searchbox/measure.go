package searchbox

import "github.com/charmbracelet/lipgloss"

// contentRows counts the rows content occupies once soft-wrapped at width.
// The text area keeps the last cell of a row for the cursor, so a row wraps
// one cell early. A non-positive width disables wrapping.
func contentRows(content string, width int) int {
	if width <= 0 {
		return lipgloss.Height(content)
	}
	if width > 1 {
		width--
	}
	return lipgloss.Height(lipgloss.NewStyle().Width(width).Render(content))
}

// naturalHeight behaves like a scroll height: it reports the rows the
// content needs but never less than the surface's current height.
func naturalHeight(content string, width, current int) int {
	rows := contentRows(content, width)
	if rows < current {
		return current
	}
	return rows
}

// MeasureHeight returns the surface height for content, measured from a
// surface reset to baseline and capped at max.
func MeasureHeight(content string, width, baseline, max int) int {
	if baseline < 1 {
		baseline = 1
	}
	h := naturalHeight(content, width, baseline)
	if max >= baseline && h > max {
		h = max
	}
	return h
}
