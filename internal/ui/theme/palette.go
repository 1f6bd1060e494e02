package theme

import "github.com/charmbracelet/lipgloss"

// palette is a Theme backed by fixed dark/light pairs.
type palette struct {
	primary             lipgloss.AdaptiveColor
	secondary           lipgloss.AdaptiveColor
	accent              lipgloss.AdaptiveColor
	errorC              lipgloss.AdaptiveColor
	warning             lipgloss.AdaptiveColor
	success             lipgloss.AdaptiveColor
	info                lipgloss.AdaptiveColor
	text                lipgloss.AdaptiveColor
	textMuted           lipgloss.AdaptiveColor
	textEmphasized      lipgloss.AdaptiveColor
	background          lipgloss.AdaptiveColor
	backgroundSecondary lipgloss.AdaptiveColor
	backgroundDarker    lipgloss.AdaptiveColor
	borderNormal        lipgloss.AdaptiveColor
	borderFocused       lipgloss.AdaptiveColor
	borderDim           lipgloss.AdaptiveColor
}

func (p palette) Primary() lipgloss.AdaptiveColor             { return p.primary }
func (p palette) Secondary() lipgloss.AdaptiveColor           { return p.secondary }
func (p palette) Accent() lipgloss.AdaptiveColor              { return p.accent }
func (p palette) Error() lipgloss.AdaptiveColor               { return p.errorC }
func (p palette) Warning() lipgloss.AdaptiveColor             { return p.warning }
func (p palette) Success() lipgloss.AdaptiveColor             { return p.success }
func (p palette) Info() lipgloss.AdaptiveColor                { return p.info }
func (p palette) Text() lipgloss.AdaptiveColor                { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor           { return p.textMuted }
func (p palette) TextEmphasized() lipgloss.AdaptiveColor      { return p.textEmphasized }
func (p palette) Background() lipgloss.AdaptiveColor          { return p.background }
func (p palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.backgroundSecondary }
func (p palette) BackgroundDarker() lipgloss.AdaptiveColor    { return p.backgroundDarker }
func (p palette) BorderNormal() lipgloss.AdaptiveColor        { return p.borderNormal }
func (p palette) BorderFocused() lipgloss.AdaptiveColor       { return p.borderFocused }
func (p palette) BorderDim() lipgloss.AdaptiveColor           { return p.borderDim }

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

var tokyoNight = palette{
	primary:             c("#82aaff", "#2e7de9"),
	secondary:           c("#c099ff", "#9854f1"),
	accent:              c("#ff966c", "#b15c00"),
	errorC:              c("#ff757f", "#f52a65"),
	warning:             c("#ff966c", "#b15c00"),
	success:             c("#c3e88d", "#587539"),
	info:                c("#7dcfff", "#0db9d7"),
	text:                c("#c8d3f5", "#3760bf"),
	textMuted:           c("#636da6", "#848cb5"),
	textEmphasized:      c("#ffc777", "#8c6c3e"),
	background:          c("#222436", "#e1e2e7"),
	backgroundSecondary: c("#2f334d", "#c8c9ce"),
	backgroundDarker:    c("#1e2030", "#d5d6db"),
	borderNormal:        c("#3b4261", "#a8aecb"),
	borderFocused:       c("#82aaff", "#2e7de9"),
	borderDim:           c("#292e42", "#c8c9ce"),
}

var catppuccin = palette{
	primary:             c("#89b4fa", "#1e66f5"),
	secondary:           c("#cba6f7", "#8839ef"),
	accent:              c("#fab387", "#fe640b"),
	errorC:              c("#f38ba8", "#d20f39"),
	warning:             c("#fab387", "#fe640b"),
	success:             c("#a6e3a1", "#40a02b"),
	info:                c("#89b4fa", "#1e66f5"),
	text:                c("#cdd6f4", "#4c4f69"),
	textMuted:           c("#6c7086", "#9ca0b0"),
	textEmphasized:      c("#f5e0dc", "#dc8a78"),
	background:          c("#1e1e2e", "#eff1f5"),
	backgroundSecondary: c("#313244", "#e6e9ef"),
	backgroundDarker:    c("#181825", "#dce0e8"),
	borderNormal:        c("#6c7086", "#9ca0b0"),
	borderFocused:       c("#89b4fa", "#1e66f5"),
	borderDim:           c("#45475a", "#ccd0da"),
}

var gruvbox = palette{
	primary:             c("#83a598", "#076678"),
	secondary:           c("#d3869b", "#8f3f71"),
	accent:              c("#fabd2f", "#b57614"),
	errorC:              c("#fb4934", "#9d0006"),
	warning:             c("#fe8019", "#af3a03"),
	success:             c("#b8bb26", "#79740e"),
	info:                c("#83a598", "#076678"),
	text:                c("#ebdbb2", "#3c3836"),
	textMuted:           c("#a89984", "#7c6f64"),
	textEmphasized:      c("#fabd2f", "#b57614"),
	background:          c("#282828", "#fbf1c7"),
	backgroundSecondary: c("#504945", "#ebdbb2"),
	backgroundDarker:    c("#1d2021", "#d5c4a1"),
	borderNormal:        c("#504945", "#bdae93"),
	borderFocused:       c("#83a598", "#076678"),
	borderDim:           c("#3c3836", "#d5c4a1"),
}

// Default is the theme used when none is configured.
const Default = "tokyonight"

func init() {
	RegisterTheme(Default, tokyoNight)
	RegisterTheme("catppuccin", catppuccin)
	RegisterTheme("gruvbox", gruvbox)
}
