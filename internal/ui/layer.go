package ui

import "github.com/charmbracelet/lipgloss"

// Layer is a block positioned over the main frame: a dialog or a toast.
type Layer interface {
	Place(width, height int) (block string, x, y int)
}

// LayerFunc adapts a function to Layer.
type LayerFunc func(width, height int) (string, int, int)

// Place implements Layer.
func (f LayerFunc) Place(width, height int) (string, int, int) {
	return f(width, height)
}

// centeredLayer centers block within the area between the header and footer.
func centeredLayer(block string, topMargin, bottomMargin int) Layer {
	return LayerFunc(func(width, height int) (string, int, int) {
		w, h := blockDimensions(block)
		x, y := centeredOffsets(width, height, w, h, topMargin, bottomMargin)
		return block, x, y
	})
}

// bottomRightLayer anchors block to the bottom-right corner, keeping clear of
// the footer.
func bottomRightLayer(block string, padding, bottomMargin int) Layer {
	return LayerFunc(func(width, height int) (string, int, int) {
		w, h := blockDimensions(block)
		x := max(width-w-padding, 0)
		y := max(height-bottomMargin-h, 0)
		return block, x, y
	})
}

func blockDimensions(block string) (int, int) {
	return max(lipgloss.Width(block), 1), max(lipgloss.Height(block), 1)
}

func centeredOffsets(containerWidth, containerHeight, contentWidth, contentHeight, topMargin, bottomMargin int) (int, int) {
	topMargin, bottomMargin = max(topMargin, 0), max(bottomMargin, 0)

	usable := max(containerHeight-topMargin-bottomMargin, contentHeight)
	y := topMargin + (usable-contentHeight)/2
	y = min(y, containerHeight-bottomMargin-contentHeight)
	y = max(y, topMargin, 0)

	x := max((containerWidth-contentWidth)/2, 0)
	return x, y
}
