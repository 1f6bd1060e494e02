package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/dialog"
	"biodex/internal/domain"
)

const deleteOverlayWidth = 48

var confirmDeleteKey = key.NewBinding(key.WithKeys("enter", "d"), key.WithHelp("⏎/d", "Delete"))

// DeleteOverlay confirms deleting one species.
type DeleteOverlay struct {
	ctrl   *dialog.Controller
	source func() domain.Species
}

// NewDeleteOverlay returns the delete dialog for species id.
func NewDeleteOverlay(w dialog.Writer, id int64, source func() domain.Species) *DeleteOverlay {
	return &DeleteOverlay{ctrl: dialog.NewDelete(w, id), source: source}
}

// Controller implements dialogOverlay.
func (o *DeleteOverlay) Controller() *dialog.Controller { return o.ctrl }

// Reset implements dialogOverlay. There is no draft to discard.
func (o *DeleteOverlay) Reset() {}

// HandleKey implements dialogOverlay.
func (o *DeleteOverlay) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, cancelKey), msg.String() == "c":
		o.ctrl.Cancel()
	case key.Matches(msg, confirmDeleteKey):
		if dispatch, ok := o.ctrl.Submit(); ok {
			return runDispatch(dispatch)
		}
	}
	return nil
}

// View implements dialogOverlay.
func (o *DeleteOverlay) View(spin spinner.Model) string {
	kind := o.ctrl.Kind()
	s := o.source()
	lines := []string{
		styleErrorIndicator().Render(kind.Title()),
		"",
		styleCommonName().Width(deleteOverlayWidth).Render(kind.Description()),
		"",
		"  " + styleScientificName().Render(truncateText(s.ScientificName, deleteOverlayWidth-4)),
		"",
		submitRow(kind, o.ctrl.Submitting(), spin),
	}
	return styleDestructiveOverlay().Render(strings.Join(lines, "\n"))
}
