package ui

import (
	"time"

	"biodex/internal/dialog"
)

// SessionInfo summarises what happened while the app was running.
type SessionInfo struct {
	StartTime time.Time
	// InitialSpecies is the size of the first successfully loaded list, or
	// -1 when no load succeeded.
	InitialSpecies int
	Added          int
	Edited         int
	Deleted        int
}

// Session returns the running session summary.
func (m *App) Session() SessionInfo {
	return m.session
}

func (m *App) recordInitialLoad(n int) {
	if m.session.InitialSpecies < 0 {
		m.session.InitialSpecies = n
	}
}

func (m *App) recordSuccess(kind dialog.Kind) {
	switch kind {
	case dialog.KindAdd:
		m.session.Added++
	case dialog.KindEdit:
		m.session.Edited++
	case dialog.KindDelete:
		m.session.Deleted++
	}
}
