package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const ellipsis = "…"

// truncateText cuts s to width cells, marking the cut with an ellipsis.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// wrapLines word-wraps s to width and keeps at most maxLines lines. The last
// kept line is marked when text was dropped.
func wrapLines(s string, width, maxLines int) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || width <= 0 || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(wordwrap.String(s, width), "\n")
	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if lipgloss.Width(last)+lipgloss.Width(ellipsis) > width {
		last = truncate.String(last, uint(width-lipgloss.Width(ellipsis)))
	}
	lines[maxLines-1] = last + ellipsis
	return lines
}
