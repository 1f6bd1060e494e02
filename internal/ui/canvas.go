package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// Canvas wraps a cellbuf screen so lipgloss-rendered blocks can be composed
// cell by cell before the frame is handed back to Bubble Tea as a string.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// NewCanvas returns a blank canvas. Non-positive sizes are clamped to 1.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes block with its top-left corner at x,y. Lines that run
// past the canvas are cropped.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	if c == nil || block == "" {
		return
	}
	x, y = max(x, 0), max(y, 0)
	for i, line := range splitLines(block) {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Compose draws each layer's block over the canvas in order.
func (c *Canvas) Compose(layers ...Layer) {
	for _, l := range layers {
		if l == nil {
			continue
		}
		block, x, y := l.Place(c.width, c.height)
		c.DrawStringAt(x, y, block)
	}
}

// Render flushes the canvas and returns the frame.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
