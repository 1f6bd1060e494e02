package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a short key hint, terser than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

var globalFooterHints = []footerHint{
	{"/", "Filter"},
	{"⇥", "Users"},
	{"r", "Refresh"},
	{"q", "Quit"},
}

var speciesFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Details"},
	{"a", "Add"},
	{"e", "Edit"},
	{"d", "Delete"},
	{"y", "Copy"},
}

var usersFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Details"},
	{"⇥", "Species"},
	{"r", "Refresh"},
	{"q", "Quit"},
}

func (m *App) renderFooter() string {
	if m.filtering {
		return m.filterInput.View()
	}
	var hints []footerHint
	if m.page == pageUsers {
		hints = usersFooterHints
	} else {
		hints = append(append(hints, speciesFooterHints...), globalFooterHints...)
	}

	right := styleStatsDim().Render(m.source)
	hints = trimHintsToFit(hints, m.width-lipgloss.Width(right)-2)
	left := renderHints(hints)

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", spacing) + right
}

func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

func renderHints(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, "  ")
}

// trimHintsToFit drops hints from the end until the rest fit.
func trimHintsToFit(hints []footerHint, width int) []footerHint {
	for len(hints) > 0 && lipgloss.Width(renderHints(hints)) > width {
		hints = hints[:len(hints)-1]
	}
	return hints
}
