package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"biodex/internal/domain"
)

const (
	cardDescriptionLines = 2
	cardBioLines         = 3
)

// speciesCard renders one species in the list. width is the outer width.
func speciesCard(s domain.Species, width int, selected bool) string {
	inner := max(width-4, 10)

	pill := styleKingdomPill().Render(string(s.Kingdom))
	name := truncateText(s.ScientificName, inner-lipgloss.Width(pill)-1)
	title := styleScientificName().Render(name)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(pill), 1)
	lines := []string{title + strings.Repeat(" ", gap) + pill}

	var sub []string
	if s.CommonName != nil && *s.CommonName != "" {
		sub = append(sub, styleCommonName().Render(*s.CommonName))
	}
	if s.TotalPopulation != nil {
		sub = append(sub, styleStatsDim().Render("pop. "+humanize.Comma(*s.TotalPopulation)))
	}
	if len(sub) > 0 {
		lines = append(lines, truncateText(strings.Join(sub, styleStatsDim().Render(" · ")), inner))
	}
	if s.Description != nil {
		for _, l := range wrapLines(*s.Description, inner, cardDescriptionLines) {
			lines = append(lines, styleStatsDim().Render(l))
		}
	}
	return styleCard(selected).Width(width - 2).Render(strings.Join(lines, "\n"))
}

// userCard renders one profile with an initials avatar and a biography
// preview.
func userCard(p domain.Profile, width int, selected bool) string {
	inner := max(width-4, 10)

	avatar := styleAvatar().Render(p.Initials())
	name := lipgloss.NewStyle().Bold(true).Render(truncateText(p.DisplayName, inner-lipgloss.Width(avatar)-1))
	email := styleStatsDim().Italic(true).Render(truncateText(p.Email, inner-lipgloss.Width(avatar)-1))
	header := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", lipgloss.JoinVertical(lipgloss.Left, name, email))

	lines := []string{header}
	if bio := p.BioPreview(domain.BioPreviewLength); bio != "" {
		lines = append(lines, wrapLines(bio, inner, cardBioLines)...)
	}
	return styleCard(selected).Width(width - 2).Render(strings.Join(lines, "\n"))
}

// scrollTop returns the first item to draw so that cursor is visible given
// each item's height and the available rows.
func scrollTop(heights []int, cursor, top, avail int) int {
	if len(heights) == 0 {
		return 0
	}
	cursor = min(max(cursor, 0), len(heights)-1)
	top = min(max(top, 0), cursor)
	for top < cursor {
		used := 0
		for i := top; i <= cursor; i++ {
			used += heights[i]
		}
		if used <= avail {
			break
		}
		top++
	}
	return top
}

// renderCardList stacks cards from top until the rows run out.
func renderCardList(cards []string, top, avail int) string {
	var out []string
	used := 0
	for i := top; i < len(cards); i++ {
		h := lipgloss.Height(cards[i])
		if used+h > avail && used > 0 {
			break
		}
		out = append(out, cards[i])
		used += h
	}
	return strings.Join(out, "\n")
}
