package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/dialog"
	"biodex/internal/domain"
)

type speciesLoadedMsg struct {
	species []domain.Species
	err     error
}

type profilesLoadedMsg struct {
	profiles []domain.Profile
	err      error
}

// dialogResultMsg carries a settled dialog call back into the event loop.
type dialogResultMsg struct {
	result dialog.Result
}

type toastTickMsg struct{}

type copyResultMsg struct {
	text string
	err  error
}

// runDispatch runs a dialog's remote call off the event loop.
func runDispatch(d dialog.Dispatch) tea.Cmd {
	return func() tea.Msg {
		return dialogResultMsg{result: d(context.Background())}
	}
}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
