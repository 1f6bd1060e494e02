package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/debug"
	"biodex/internal/dialog"
	appErrors "biodex/internal/errors"
	"biodex/internal/store"
)

func loadSpeciesCmd(client store.Client) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListSpecies(context.Background())
		return speciesLoadedMsg{species: list, err: err}
	}
}

func loadProfilesCmd(client store.Client) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListProfiles(context.Background())
		return profilesLoadedMsg{profiles: list, err: err}
	}
}

// refreshSpecies reloads the species list, the only list a dialog changes.
func (m *App) refreshSpecies() tea.Cmd {
	m.loading++
	return tea.Batch(loadSpeciesCmd(m.client), m.spinner.Tick)
}

func (m *App) refreshAll() tea.Cmd {
	m.loading += 2
	return tea.Batch(loadSpeciesCmd(m.client), loadProfilesCmd(m.client), m.spinner.Tick)
}

func (m *App) applySpecies(msg speciesLoadedMsg) tea.Cmd {
	m.loading = max(m.loading-1, 0)
	if msg.err != nil {
		return m.loadFailed("species", msg.err)
	}
	m.lastError = ""
	m.species = msg.species
	m.recordInitialLoad(len(m.species))
	m.applyFilter()
	m.pruneDialogs()
	debug.Event("ui.species.loaded", map[string]any{"count": len(m.species)})
	return nil
}

func (m *App) applyProfiles(msg profilesLoadedMsg) tea.Cmd {
	m.loading = max(m.loading-1, 0)
	if msg.err != nil {
		return m.loadFailed("profiles", msg.err)
	}
	m.profiles = msg.profiles
	m.userCur = min(m.userCur, max(len(m.profiles)-1, 0))
	debug.Event("ui.profiles.loaded", map[string]any{"count": len(m.profiles)})
	return nil
}

func (m *App) loadFailed(what string, err error) tea.Cmd {
	m.lastError = appErrors.MessageOf(err)
	debug.Event("ui.load.failed", map[string]any{"what": what, "err": err})
	return m.notify(dialog.Failed(err))
}

// applyFilter recomputes the visible species and keeps the cursor in range.
func (m *App) applyFilter() {
	m.visible = filterSpecies(m.species, m.filterInput.Value())
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
}
