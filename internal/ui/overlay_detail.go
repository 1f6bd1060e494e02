package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"biodex/internal/detail"
	"biodex/internal/domain"
)

const (
	detailOverlayWidth = 64
	detailLabelWidth   = 18
	detailMaxHeight    = 20
)

var closeDetailKey = key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "Close"))

// DetailOverlay is a read-only details view. It has no submission lifecycle.
type DetailOverlay struct {
	title    string
	rows     []detail.Row
	viewport viewport.Model
}

// NewSpeciesDetailOverlay shows a species.
func NewSpeciesDetailOverlay(s domain.Species, markdown func(string) string, height int) *DetailOverlay {
	return newDetailOverlay("Species Details", detail.Species(s), markdown, height)
}

// NewProfileDetailOverlay shows a user profile.
func NewProfileDetailOverlay(p domain.Profile, markdown func(string) string, height int) *DetailOverlay {
	return newDetailOverlay("User Details", detail.Profile(p), markdown, height)
}

func newDetailOverlay(title string, rows []detail.Row, markdown func(string) string, height int) *DetailOverlay {
	content := renderDetailRows(rows, markdown)
	h := min(lipgloss.Height(content), detailMaxHeight)
	if height > 0 {
		h = min(h, max(height-8, 3))
	}
	vp := viewport.New(detailOverlayWidth, max(h, 1))
	vp.SetContent(content)
	return &DetailOverlay{title: title, rows: rows, viewport: vp}
}

// Rows returns the projected rows.
func (o *DetailOverlay) Rows() []detail.Row { return o.rows }

// Update scrolls the body. It reports true when the overlay should close.
func (o *DetailOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, closeDetailKey) {
		return true, nil
	}
	var cmd tea.Cmd
	o.viewport, cmd = o.viewport.Update(msg)
	return false, cmd
}

// View renders the overlay box.
func (o *DetailOverlay) View() string {
	lines := []string{
		styleOverlayTitle().Render(o.title),
		"",
		o.viewport.View(),
		"",
		renderHints([]footerHint{{"↑↓", "Scroll"}, {closeDetailKey.Help().Key, "Close"}}),
	}
	return styleOverlay().Render(strings.Join(lines, "\n"))
}

func renderDetailRows(rows []detail.Row, markdown func(string) string) string {
	label := styleDetailLabel().Width(detailLabelWidth)
	valueWidth := detailOverlayWidth - detailLabelWidth
	var out []string
	for _, r := range rows {
		if r.Markdown && markdown != nil {
			out = append(out, label.Render(r.Label+":"), markdown(r.Value))
			continue
		}
		value := styleDetailValue(r.Italic).Width(valueWidth).Render(r.Value)
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(r.Label+":"), value))
	}
	return strings.Join(out, "\n")
}
