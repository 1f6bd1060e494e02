package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"biodex/internal/dialog"
)

const (
	toastDuration            = 5 * time.Second
	destructiveToastDuration = 10 * time.Second
	toastMinWidth            = 30
	toastMaxWidth            = 60
)

type toast struct {
	note    dialog.Notification
	started time.Time
}

func (t toast) duration() time.Duration {
	if t.note.Variant == dialog.VariantDestructive {
		return destructiveToastDuration
	}
	return toastDuration
}

func (t toast) remaining(now time.Time) time.Duration {
	return max(t.duration()-now.Sub(t.started), 0)
}

// notify shows n, replacing any visible toast. An empty notification is
// ignored.
func (m *App) notify(n dialog.Notification) tea.Cmd {
	if n.Title == "" {
		return nil
	}
	m.toast = &toast{note: n, started: m.now()}
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return scheduleToastTick()
}

func (m *App) handleToastTick() tea.Cmd {
	if m.toast == nil || m.toast.remaining(m.now()) <= 0 {
		m.toast = nil
		m.toastTicking = false
		return nil
	}
	return scheduleToastTick()
}

// Notification returns the visible toast, if any.
func (m *App) Notification() (dialog.Notification, bool) {
	if m.toast == nil {
		return dialog.Notification{}, false
	}
	return m.toast.note, true
}

func (m *App) toastLayer() Layer {
	if m.toast == nil {
		return nil
	}
	t := *m.toast
	destructive := t.note.Variant == dialog.VariantDestructive

	width := max(lipgloss.Width(t.note.Title), toastMinWidth)
	var lines []string
	lines = append(lines, styleToastTitle(destructive).Render(t.note.Title))
	if t.note.Description != "" {
		desc := wrapLines(t.note.Description, toastMaxWidth, 3)
		for _, l := range desc {
			width = max(width, lipgloss.Width(l))
		}
		lines = append(lines, desc...)
	}
	countdown := fmt.Sprintf("[%ds]", int(t.remaining(m.now()).Round(time.Second).Seconds()))
	lines = append(lines, strings.Repeat(" ", max(width-len(countdown), 0))+styleStatsDim().Render(countdown))

	return bottomRightLayer(styleToast(destructive).Render(strings.Join(lines, "\n")), 2, 1)
}
