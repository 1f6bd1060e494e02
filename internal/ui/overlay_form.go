package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"biodex/internal/dialog"
	"biodex/internal/domain"
	"biodex/internal/schema"
)

// dialogOverlay is a modal driven by a dialog.Controller.
type dialogOverlay interface {
	Controller() *dialog.Controller
	// HandleKey processes a key while the overlay is on top.
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// Reset discards any draft after a successful submission.
	Reset()
	View(spin spinner.Model) string
}

var (
	submitKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "Submit"))
	cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel"))
)

// FormOverlay is the add or edit species dialog.
type FormOverlay struct {
	ctrl    *dialog.Controller
	form    *Form
	initial func() schema.Draft
}

// NewAddOverlay returns the add dialog. Each open starts from the default
// draft.
func NewAddOverlay(w dialog.Writer, author uuid.UUID) *FormOverlay {
	o := &FormOverlay{form: NewForm(), initial: schema.DefaultDraft}
	o.ctrl = dialog.NewAdd(w, author, o.form.Draft, dialog.WithOnOpen(o.reinit))
	return o
}

// NewEditOverlay returns the edit dialog for one species. source is read on
// every open so the form starts from the latest loaded record.
func NewEditOverlay(w dialog.Writer, id int64, source func() domain.Species) *FormOverlay {
	o := &FormOverlay{
		form:    NewForm(),
		initial: func() schema.Draft { return schema.DraftFrom(source()) },
	}
	o.ctrl = dialog.NewEdit(w, id, o.form.Draft, dialog.WithOnOpen(o.reinit))
	return o
}

func (o *FormOverlay) reinit() {
	o.form.Reset(o.initial())
}

// Controller implements dialogOverlay.
func (o *FormOverlay) Controller() *dialog.Controller { return o.ctrl }

// Form exposes the form for inspection.
func (o *FormOverlay) Form() *Form { return o.form }

// Reset implements dialogOverlay.
func (o *FormOverlay) Reset() {
	o.form.Reset(o.initial())
}

// HandleKey implements dialogOverlay.
func (o *FormOverlay) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, cancelKey):
		o.ctrl.Cancel()
		return nil
	case key.Matches(msg, submitKey):
		return o.submit()
	}
	return o.form.Update(msg)
}

func (o *FormOverlay) submit() tea.Cmd {
	dispatch, ok := o.ctrl.Submit()
	if !ok {
		var fieldErrs schema.FieldErrors
		if errors.As(o.ctrl.Err(), &fieldErrs) {
			o.form.ShowErrors(fieldErrs)
		}
		return nil
	}
	return runDispatch(dispatch)
}

// View implements dialogOverlay.
func (o *FormOverlay) View(spin spinner.Model) string {
	kind := o.ctrl.Kind()
	lines := []string{
		styleOverlayTitle().Render(kind.Title()),
		styleStatsDim().Width(formWidth).Render(kind.Description()),
		"",
		o.form.View(),
		"",
		submitRow(kind, o.ctrl.Submitting(), spin),
	}
	return styleOverlay().Render(strings.Join(lines, "\n"))
}

// submitRow renders the submit button with the state-dependent label and the
// key hints next to it.
func submitRow(kind dialog.Kind, submitting bool, spin spinner.Model) string {
	label := kind.SubmitLabel(submitting)
	if submitting {
		label = spin.View() + " " + label
	}
	button := styleButton(kind == dialog.KindDelete, !submitting).Render(label)
	hints := []footerHint{{submitKey.Help().Key, "Submit"}, {cancelKey.Help().Key, "Cancel"}}
	if kind == dialog.KindDelete {
		hints = []footerHint{{"⏎", "Delete"}, {cancelKey.Help().Key, "Cancel"}}
	}
	return button + "  " + renderHints(hints)
}
