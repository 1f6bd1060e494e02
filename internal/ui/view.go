package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. The list is drawn first; dialogs and toasts are
// composed over it on a cell canvas.
func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	bodyHeight := max(m.height-headerHeight-footerHeight, 1)
	base := strings.Join([]string{
		m.renderHeader(),
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(m.renderBody(bodyHeight)),
		m.renderFooter(),
	}, "\n")

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, base)
	canvas.Compose(m.layers()...)
	return canvas.Render()
}

func (m *App) layers() []Layer {
	var layers []Layer
	switch {
	case m.active != nil:
		layers = append(layers, centeredLayer(m.active.View(m.spinner), headerHeight, footerHeight))
	case m.details != nil:
		layers = append(layers, centeredLayer(m.details.View(), headerHeight, footerHeight))
	}
	if t := m.toastLayer(); t != nil {
		layers = append(layers, t)
	}
	return layers
}

func (m *App) renderHeader() string {
	title := "BIODEX"
	if m.version != "" {
		title = fmt.Sprintf("BIODEX v%s", m.version)
	}
	tabs := styleTab(m.page == pageSpecies).Render(fmt.Sprintf("Species (%d)", len(m.species))) +
		styleTab(m.page == pageUsers).Render(fmt.Sprintf("Users (%d)", len(m.profiles)))
	left := styleAppHeader().Render(title) + " " + tabs

	if q := m.filterInput.Value(); q != "" && !m.filtering {
		left += " " + styleStatsDim().Render(fmt.Sprintf("Filter: %s (%d)", q, len(m.visible)))
	}
	if m.loading > 0 {
		left += " " + m.spinner.View()
	}

	if m.lastError == "" {
		return left
	}
	right := styleErrorIndicator().Render("⚠ " + truncateText(m.lastError, 40))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *App) cardWidth() int {
	return min(max(m.width-2, minCardWidth), maxCardWidth)
}

func (m *App) renderBody(height int) string {
	width := m.cardWidth()
	if m.page == pageUsers {
		if len(m.profiles) == 0 {
			return styleStatsDim().Render(" No users yet.")
		}
		cards := make([]string, len(m.profiles))
		for i, p := range m.profiles {
			cards[i] = userCard(p, width, i == m.userCur)
		}
		m.userTop = scrollTop(cardHeights(cards), m.userCur, m.userTop, height)
		return renderCardList(cards, m.userTop, height)
	}

	if len(m.visible) == 0 {
		if len(m.species) > 0 {
			return styleStatsDim().Render(" No species match the filter.")
		}
		return styleStatsDim().Render(" No species yet. Press a to add one.")
	}
	cards := make([]string, len(m.visible))
	for i, idx := range m.visible {
		cards[i] = speciesCard(m.species[idx], width, i == m.cursor)
	}
	m.top = scrollTop(cardHeights(cards), m.cursor, m.top, height)
	return renderCardList(cards, m.top, height)
}

func cardHeights(cards []string) []int {
	heights := make([]int, len(cards))
	for i, c := range cards {
		heights[i] = lipgloss.Height(c)
	}
	return heights
}
