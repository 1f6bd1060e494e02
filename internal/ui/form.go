package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"biodex/internal/schema"
)

const (
	formWidth         = 52
	descriptionHeight = 4
)

// Form edits a schema.Draft with one widget per field. Every edit is written
// into the draft and the edited field is re-validated immediately.
type Form struct {
	inputs []*formInput
	draft  schema.Draft
	errors map[string]string
	focus  int
	keys   formKeys
}

type formInput struct {
	field  schema.Field
	text   textinput.Model
	area   textarea.Model
	option int
}

type formKeys struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
}

func defaultFormKeys() formKeys {
	return formKeys{
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("⇥", "Next field")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧⇥", "Previous field")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Previous option")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Next option")),
	}
}

// NewForm builds a form over schema.Fields, starting from the default draft.
func NewForm() *Form {
	f := &Form{errors: map[string]string{}, keys: defaultFormKeys()}
	for _, field := range schema.Fields() {
		in := &formInput{field: field, option: -1}
		switch field.Kind {
		case schema.KindTextarea:
			in.area = textarea.New()
			in.area.Placeholder = field.Placeholder
			in.area.ShowLineNumbers = false
			// Unlimited, so loading a long description never clips it.
			in.area.CharLimit = 0
			in.area.MaxHeight = 0
			in.area.SetWidth(formWidth)
			in.area.SetHeight(descriptionHeight)
			in.area.Cursor.SetMode(cursor.CursorStatic)
		case schema.KindSelect:
		default:
			in.text = textinput.New()
			in.text.Prompt = ""
			in.text.Placeholder = field.Placeholder
			in.text.Width = formWidth - 2
			in.text.Cursor.SetMode(cursor.CursorStatic)
		}
		f.inputs = append(f.inputs, in)
	}
	f.Reset(schema.DefaultDraft())
	return f
}

// Reset replaces the draft, reloads every widget and clears errors. Focus
// returns to the first field.
func (f *Form) Reset(d schema.Draft) tea.Cmd {
	f.draft = d
	clear(f.errors)
	for _, in := range f.inputs {
		f.load(in)
	}
	f.focus = 0
	return f.applyFocus()
}

func (f *Form) load(in *formInput) {
	value := f.draft.Text(in.field.Key)
	switch in.field.Kind {
	case schema.KindTextarea:
		in.area.SetValue(value)
	case schema.KindSelect:
		in.option = slices.Index(in.field.Options, value)
	default:
		in.text.SetValue(value)
	}
}

// Draft returns the current working copy.
func (f *Form) Draft() schema.Draft {
	return f.draft
}

// Value returns the text a field currently shows.
func (f *Form) Value(field string) string {
	in := f.input(field)
	if in == nil {
		return ""
	}
	switch in.field.Kind {
	case schema.KindTextarea:
		return in.area.Value()
	case schema.KindSelect:
		if in.option < 0 {
			return ""
		}
		return in.field.Options[in.option]
	default:
		return in.text.Value()
	}
}

// SetValue writes raw into field key as if typed. Select fields only accept
// one of their options; anything else is ignored and false is returned.
func (f *Form) SetValue(field, raw string) bool {
	in := f.input(field)
	if in == nil {
		return false
	}
	if in.field.Kind == schema.KindSelect && !slices.Contains(in.field.Options, raw) {
		return false
	}
	if !f.draft.Set(field, raw) {
		return false
	}
	switch in.field.Kind {
	case schema.KindTextarea:
		in.area.SetValue(raw)
	case schema.KindSelect:
		in.option = slices.Index(in.field.Options, raw)
	default:
		in.text.SetValue(raw)
	}
	f.revalidate(field)
	return true
}

// Error returns the message shown under field key.
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// ShowErrors replaces the displayed errors, typically after a rejected submit.
func (f *Form) ShowErrors(errs schema.FieldErrors) {
	clear(f.errors)
	for k, msg := range errs {
		f.errors[k] = msg
	}
	for i, in := range f.inputs {
		if _, bad := errs[in.field.Key]; bad {
			f.focus = i
			f.applyFocus()
			break
		}
	}
}

// FocusedKey is the key of the field receiving input.
func (f *Form) FocusedKey() string {
	return f.inputs[f.focus].field.Key
}

// Update routes a key press to focus movement, option cycling or the focused
// widget.
func (f *Form) Update(msg tea.KeyMsg) tea.Cmd {
	in := f.inputs[f.focus]
	switch {
	case key.Matches(msg, f.keys.Next):
		return f.moveFocus(1)
	case key.Matches(msg, f.keys.Prev):
		return f.moveFocus(-1)
	}

	if in.field.Kind == schema.KindSelect {
		switch {
		case key.Matches(msg, f.keys.Left):
			f.cycle(in, -1)
		case key.Matches(msg, f.keys.Right):
			f.cycle(in, 1)
		}
		return nil
	}

	var cmd tea.Cmd
	before := f.Value(in.field.Key)
	if in.field.Kind == schema.KindTextarea {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.text, cmd = in.text.Update(msg)
	}
	if after := f.Value(in.field.Key); after != before {
		f.draft.Set(in.field.Key, after)
		f.revalidate(in.field.Key)
	}
	return cmd
}

func (f *Form) cycle(in *formInput, delta int) {
	n := len(in.field.Options)
	if n == 0 {
		return
	}
	next := (in.option + delta + n) % n
	if in.option < 0 && delta < 0 {
		next = n - 1
	}
	f.SetValue(in.field.Key, in.field.Options[next])
}

func (f *Form) moveFocus(delta int) tea.Cmd {
	n := len(f.inputs)
	f.focus = (f.focus + delta + n) % n
	return f.applyFocus()
}

func (f *Form) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i, in := range f.inputs {
		switch in.field.Kind {
		case schema.KindTextarea:
			if i == f.focus {
				cmd = in.area.Focus()
			} else {
				in.area.Blur()
			}
		case schema.KindSelect:
		default:
			if i == f.focus {
				cmd = in.text.Focus()
			} else {
				in.text.Blur()
			}
		}
	}
	return cmd
}

func (f *Form) revalidate(field string) {
	if msg := schema.ValidateField(f.draft, field); msg != "" {
		f.errors[field] = msg
		return
	}
	delete(f.errors, field)
}

func (f *Form) input(field string) *formInput {
	for _, in := range f.inputs {
		if in.field.Key == field {
			return in
		}
	}
	return nil
}

// View renders the fields top to bottom with inline errors.
func (f *Form) View() string {
	var blocks []string
	for i, in := range f.inputs {
		focused := i == f.focus
		lines := []string{styleFieldLabel(focused).Render(in.field.Label)}
		lines = append(lines, f.widgetView(in, focused))
		if msg := f.errors[in.field.Key]; msg != "" {
			lines = append(lines, styleFieldError().Render(msg))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (f *Form) widgetView(in *formInput, focused bool) string {
	switch in.field.Kind {
	case schema.KindTextarea:
		return in.area.View()
	case schema.KindSelect:
		return selectView(in, focused)
	default:
		return "› " + in.text.View()
	}
}

func selectView(in *formInput, focused bool) string {
	label := in.field.Placeholder
	style := styleStatsDim()
	if in.option >= 0 {
		label = in.field.Options[in.option]
		style = styleCommonName()
	}
	if focused {
		return styleFieldLabel(true).Render("‹ ") + style.Render(label) + styleFieldLabel(true).Render(" ›")
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(style.Render(label))
}
