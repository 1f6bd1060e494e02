package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"biodex/internal/config"
	"biodex/internal/ui"
)

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func (c *cli) runTUI(ctx context.Context) error {
	client, err := c.openClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	author, err := c.author()
	if err != nil {
		return err
	}
	cfg := ui.Config{
		Client:       client,
		Author:       author,
		OutputFormat: config.GetString(config.KeyOutputFormat),
		Version:      Version,
		Source:       c.sourceLabel(),
	}
	app, err := runProgram(cfg, ui.NewApp, c.newProgram)
	if err != nil {
		return err
	}
	printExitSummary(c.out, Version, app.Session(), len(app.Species()), time.Now())
	return nil
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) (*ui.App, error) {
	app, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	return app, nil
}

var (
	summaryAppStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	summaryDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	summaryChangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	summaryRemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// printExitSummary prints what changed during the session once the alt
// screen is gone.
func printExitSummary(w io.Writer, version string, s ui.SessionInfo, endSpecies int, now time.Time) {
	header := summaryAppStyle.Render("Biodex")
	if version != "" {
		header += summaryDimStyle.Render(" v" + version)
	}
	header += summaryDimStyle.Render(fmt.Sprintf(" • %s session", formatDuration(now.Sub(s.StartTime))))

	stats := fmt.Sprintf("%d species", endSpecies)
	if s.InitialSpecies >= 0 && endSpecies != s.InitialSpecies {
		stats += " " + summaryChangeStyle.Render(formatDelta(endSpecies-s.InitialSpecies))
	}
	var parts []string
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", s.Added))
	}
	if s.Edited > 0 {
		parts = append(parts, fmt.Sprintf("%d edited", s.Edited))
	}
	if s.Deleted > 0 {
		parts = append(parts, summaryRemovedStyle.Render(fmt.Sprintf("%d deleted", s.Deleted)))
	}
	if len(parts) > 0 {
		stats += ": " + strings.Join(parts, ", ")
	}

	_, _ = fmt.Fprintln(w, header)
	_, _ = fmt.Fprintln(w, stats)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func formatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("(+%d)", delta)
	}
	return fmt.Sprintf("(%d)", delta)
}
