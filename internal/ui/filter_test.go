package ui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFilterSpeciesBlankQueryKeepsOrder(t *testing.T) {
	got := filterSpecies(fixtureSpecies(), "   ")
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterSpeciesMatchesCommonName(t *testing.T) {
	got := filterSpecies(fixtureSpecies(), "Guinea")
	if !slices.Equal(got, []int{1}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterSpeciesNoMatch(t *testing.T) {
	if got := filterSpecies(fixtureSpecies(), "zzz"); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := truncateText("Ailuropoda melanoleuca", 10)
	if lipgloss.Width(got) != 10 || got[len(got)-len(ellipsis):] != ellipsis {
		t.Fatalf("got %q", got)
	}
	if got := truncateText("anything", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestWrapLinesLimitsLines(t *testing.T) {
	lines := wrapLines("one two three four five six seven", 10, 2)
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	last := lines[1]
	if last[len(last)-len(ellipsis):] != ellipsis {
		t.Fatalf("last line not marked: %q", last)
	}
	if lipgloss.Width(last) > 10 {
		t.Fatalf("last line too wide: %q", last)
	}

	if got := wrapLines("  fits  ", 10, 2); !slices.Equal(got, []string{"fits"}) {
		t.Fatalf("got %q", got)
	}
	if got := wrapLines("   ", 10, 2); got != nil {
		t.Fatalf("got %q", got)
	}
}
