package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"biodex/internal/ui/theme"
)

// Styles are functions so a theme switch takes effect on the next frame.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleTab(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return s.Foreground(theme.Current().Primary()).Bold(true).Underline(true)
	}
	return s.Foreground(theme.Current().TextMuted())
}

func styleStatsDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleErrorIndicator() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true)
}

func styleCard(selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return s.BorderForeground(theme.Current().BorderFocused())
	}
	return s.BorderForeground(theme.Current().BorderNormal())
}

func styleScientificName() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true).Italic(true)
}

func styleCommonName() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleKingdomPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		Background(theme.Current().BackgroundDarker()).
		Padding(0, 1)
}

func styleAvatar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextEmphasized()).
		Background(theme.Current().BackgroundDarker()).
		Bold(true).
		Padding(0, 1)
}

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, 2)
}

func styleDestructiveOverlay() lipgloss.Style {
	return styleOverlay().BorderForeground(theme.Current().Error())
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleFieldLabel(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if focused {
		return s.Foreground(theme.Current().Primary())
	}
	return s.Foreground(theme.Current().Secondary())
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error())
}

func styleDetailLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary()).Bold(true)
}

func styleDetailValue(italic bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text()).Italic(italic)
}

func styleButton(destructive, active bool) lipgloss.Style {
	bg := theme.Current().Primary()
	if destructive {
		bg = theme.Current().Error()
	}
	s := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if !active {
		return s.Foreground(theme.Current().TextMuted()).Background(theme.Current().BackgroundDarker())
	}
	return s.Foreground(theme.Current().Background()).Background(bg)
}

func styleToast(destructive bool) lipgloss.Style {
	border := theme.Current().Success()
	if destructive {
		border = theme.Current().Error()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleToastTitle(destructive bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if destructive {
		return s.Foreground(theme.Current().Error())
	}
	return s.Foreground(theme.Current().Success())
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().Background()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

// buildMarkdownRenderer returns a renderer for long-form text. "plain" and
// renderer failures fall back to word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", "rich":
		style = "dark"
	case "plain":
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
