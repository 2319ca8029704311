package tui

import "github.com/charmbracelet/lipgloss"

// MinFormWidth is the minimum character width for the form pane.
const MinFormWidth = 34

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	armedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths calculates the form and list pane widths from a total width.
// The form pane gets 2/5 (minimum MinFormWidth), the list pane the rest.
func PaneWidths(totalWidth int) (form, list int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	form = totalWidth * 2 / 5
	if form < MinFormWidth {
		form = MinFormWidth
	}
	list = totalWidth - form
	if list < 0 {
		list = 0
	}
	return form, list
}

// truncate shortens s to at most w display cells, appending an ellipsis when
// something was cut.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}

// cell renders s as a fixed-width table cell.
func cell(s string, w int) string {
	s = truncate(s, w)
	for len([]rune(s)) < w {
		s += " "
	}
	return s
}
