package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"biodex/internal/detail"
	"biodex/internal/dialog"
	"biodex/internal/domain"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

func (c *cli) printSpeciesTable(list []domain.Species) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No species.")
		return
	}
	t := newTable("ID", "Scientific Name", "Common Name", "Kingdom", "Population")
	for _, s := range list {
		population := ""
		if s.TotalPopulation != nil {
			population = humanize.Comma(*s.TotalPopulation)
		}
		common := ""
		if s.CommonName != nil {
			common = *s.CommonName
		}
		t.Row(strconv.FormatInt(s.ID, 10), s.ScientificName, common, string(s.Kingdom), population)
	}
	fmt.Fprintln(c.out, t.String())
}

func (c *cli) printProfileTable(list []domain.Profile) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No users.")
		return
	}
	t := newTable("Name", "Email", "Bio")
	for _, p := range list {
		t.Row(p.DisplayName, p.Email, p.BioPreview(40))
	}
	fmt.Fprintln(c.out, t.String())
}

func (c *cli) printDetail(rows []detail.Row) {
	fmt.Fprintln(c.out, detail.Plain(rows))
}

func (c *cli) printNotification(n dialog.Notification) {
	fmt.Fprintln(c.out, successStyle.Render(n.Title))
	if n.Description != "" {
		fmt.Fprintln(c.out, n.Description)
	}
}
