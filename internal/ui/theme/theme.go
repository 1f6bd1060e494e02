// Package theme provides the semantic color system for the biodex UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme names the colors the UI draws with. Every color adapts to light and
// dark terminals.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // header, focused borders
	Secondary() lipgloss.AdaptiveColor // field labels
	Accent() lipgloss.AdaptiveColor    // titles, scientific names

	Error() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor
	Info() lipgloss.AdaptiveColor

	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor
	TextEmphasized() lipgloss.AdaptiveColor

	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor // dialogs, selected cards
	BackgroundDarker() lipgloss.AdaptiveColor    // avatars, pills

	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}
