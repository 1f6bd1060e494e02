package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/config"
	"biodex/internal/debug"
	"biodex/internal/dialog"
	"biodex/internal/ui/theme"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case speciesLoadedMsg:
		return m, m.applySpecies(msg)
	case profilesLoadedMsg:
		return m, m.applyProfiles(msg)
	case dialogResultMsg:
		return m, m.resolve(msg.result)
	case toastTickMsg:
		return m, m.handleToastTick()
	case copyResultMsg:
		if msg.err != nil {
			return m, m.notify(dialog.Failed(msg.err))
		}
		return m, m.notify(dialog.Notification{Title: "Copied to clipboard.", Description: msg.text})
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// resolve hands a settled call to the dialog that issued it and applies the
// effects it asks for.
func (m *App) resolve(r dialog.Result) tea.Cmd {
	for _, o := range m.dialogs() {
		ctrl := o.Controller()
		if !ctrl.Owns(r) {
			continue
		}
		out := ctrl.Resolve(r)
		cmds := []tea.Cmd{m.notify(out.Notification)}
		if out.Reset {
			o.Reset()
		}
		if out.Refresh {
			m.recordSuccess(ctrl.Kind())
			cmds = append(cmds, m.refreshSpecies())
		}
		if m.active == o && !ctrl.IsOpen() {
			m.active = nil
		}
		return tea.Batch(cmds...)
	}
	debug.Event("ui.result.orphaned", map[string]any{"err": r.Err})
	return nil
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.active != nil {
		return m.handleDialogKey(msg)
	}
	if m.details != nil {
		closed, cmd := m.details.Update(msg)
		if closed {
			m.details = nil
		}
		return cmd
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Switch):
		if m.page == pageSpecies {
			m.page = pageUsers
		} else {
			m.page = pageSpecies
		}
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toast = nil
		return nil
	case key.Matches(msg, m.keys.Refresh):
		return m.refreshAll()
	case key.Matches(msg, m.keys.Theme):
		name := theme.CycleTheme()
		if err := config.SaveTheme(name); err != nil {
			debug.Logf("save theme: %v", err)
		}
		return nil
	}

	if m.page == pageUsers {
		return m.handleUsersKey(msg)
	}
	return m.handleSpeciesKey(msg)
}

func (m *App) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	o := m.active
	cmd := o.HandleKey(msg)
	if !o.Controller().IsOpen() {
		m.active = nil
	}
	if o.Controller().Submitting() {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *App) openDialog(o dialogOverlay) tea.Cmd {
	o.Controller().Open()
	m.active = o
	if o.Controller().Submitting() {
		return m.spinner.Tick
	}
	return nil
}

func (m *App) handleSpeciesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(m.visible)-1, 0))
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = max(len(m.visible)-1, 0)
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m.filterInput.Focus()
	case key.Matches(msg, m.keys.Escape):
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.applyFilter()
		}
	case key.Matches(msg, m.keys.Add):
		return m.openDialog(m.add)
	}

	s, ok := m.selectedSpecies()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.details = NewSpeciesDetailOverlay(s, m.markdownRenderer(), m.height)
	case key.Matches(msg, m.keys.Edit):
		return m.openDialog(m.editOverlay(s.ID))
	case key.Matches(msg, m.keys.Delete):
		return m.openDialog(m.deleteOverlay(s.ID))
	case key.Matches(msg, m.keys.Copy):
		return m.copyCmd(s.ScientificName)
	}
	return nil
}

func (m *App) handleUsersKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.userCur = max(m.userCur-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.userCur = min(m.userCur+1, max(len(m.profiles)-1, 0))
	case key.Matches(msg, m.keys.Home):
		m.userCur = 0
	case key.Matches(msg, m.keys.End):
		m.userCur = max(len(m.profiles)-1, 0)
	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.selectedProfile(); ok {
			m.details = NewProfileDetailOverlay(p, m.markdownRenderer(), m.height)
		}
	}
	return nil
}

func (m *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filterInput.SetValue("")
		fallthrough
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		m.applyFilter()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *App) copyCmd(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copyResultMsg{text: text, err: write(text)}
	}
}

func (m *App) markdownRenderer() func(string) string {
	width := min(max(m.width-12, 20), detailOverlayWidth)
	return buildMarkdownRenderer(m.outputFormat, width)
}
