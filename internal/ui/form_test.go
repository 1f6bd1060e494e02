package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/domain"
	"biodex/internal/schema"
)

func TestNewFormStartsFromDefaultDraft(t *testing.T) {
	f := NewForm()

	if got := f.Value(schema.KeyKingdom); got != string(domain.DefaultKingdom) {
		t.Fatalf("kingdom = %q, want %q", got, domain.DefaultKingdom)
	}
	if got := f.Value(schema.KeyScientificName); got != "" {
		t.Fatalf("scientific name = %q, want empty", got)
	}
	if f.FocusedKey() != schema.KeyScientificName {
		t.Fatalf("focus = %q, want first field", f.FocusedKey())
	}
}

func TestFormTypingWritesDraftAndRevalidates(t *testing.T) {
	f := NewForm()
	f.ShowErrors(schema.FieldErrors{schema.KeyScientificName: schema.MsgScientificNameRequired})

	f.Update(runes("Vulpes"))

	if got := f.Draft().ScientificName; got != "Vulpes" {
		t.Fatalf("draft scientific name = %q", got)
	}
	if msg := f.Error(schema.KeyScientificName); msg != "" {
		t.Fatalf("expected error to clear after typing, got %q", msg)
	}
}

func TestFormRejectsUnknownKingdom(t *testing.T) {
	f := NewForm()

	if f.SetValue(schema.KeyKingdom, "Dinosauria") {
		t.Fatal("expected unknown kingdom to be rejected")
	}
	if got := f.Draft().Kingdom; got != domain.DefaultKingdom {
		t.Fatalf("kingdom changed to %q", got)
	}
	if !f.SetValue(schema.KeyKingdom, string(domain.KingdomFungi)) {
		t.Fatal("expected Fungi to be accepted")
	}
	if got := f.Value(schema.KeyKingdom); got != "Fungi" {
		t.Fatalf("kingdom = %q, want Fungi", got)
	}
}

func TestFormPopulationMessages(t *testing.T) {
	f := NewForm()

	f.SetValue(schema.KeyTotalPopulation, "abc")
	if msg := f.Error(schema.KeyTotalPopulation); msg != schema.MsgExpectedNumber {
		t.Fatalf("error = %q, want %q", msg, schema.MsgExpectedNumber)
	}

	f.SetValue(schema.KeyTotalPopulation, "2.5")
	if msg := f.Error(schema.KeyTotalPopulation); msg != schema.MsgExpectedInteger {
		t.Fatalf("error = %q, want %q", msg, schema.MsgExpectedInteger)
	}

	f.SetValue(schema.KeyTotalPopulation, "")
	if f.Draft().TotalPopulation != nil {
		t.Fatal("empty population should be absent")
	}
	if msg := f.Error(schema.KeyTotalPopulation); msg != "" {
		t.Fatalf("empty population should be valid, got %q", msg)
	}
}

func TestFormTabMovesFocusAndWraps(t *testing.T) {
	f := NewForm()
	n := len(schema.Fields())

	f.Update(keyTab)
	if f.FocusedKey() != schema.KeyCommonName {
		t.Fatalf("focus = %q after tab", f.FocusedKey())
	}
	for i := 1; i < n; i++ {
		f.Update(keyTab)
	}
	if f.FocusedKey() != schema.KeyScientificName {
		t.Fatalf("focus = %q, want wrap to first field", f.FocusedKey())
	}
}

func TestFormSelectCyclesWithArrows(t *testing.T) {
	f := NewForm()
	f.Update(keyTab)
	f.Update(keyTab)
	if f.FocusedKey() != schema.KeyKingdom {
		t.Fatalf("focus = %q, want kingdom", f.FocusedKey())
	}

	f.Update(keyRight)
	if got := f.Value(schema.KeyKingdom); got != "Plantae" {
		t.Fatalf("after right = %q, want Plantae", got)
	}
	f.Update(keyLeft)
	f.Update(keyLeft)
	if got := f.Value(schema.KeyKingdom); got != "Bacteria" {
		t.Fatalf("after two lefts = %q, want Bacteria", got)
	}
	if got := f.Draft().Kingdom; got != domain.KingdomBacteria {
		t.Fatalf("draft kingdom = %q", got)
	}
}

func TestFormShowErrorsFocusesFirstInvalidField(t *testing.T) {
	f := NewForm()
	f.ShowErrors(schema.FieldErrors{
		schema.KeyImage:           schema.MsgInvalidURL,
		schema.KeyTotalPopulation: schema.MsgAtLeastOne,
	})

	if f.FocusedKey() != schema.KeyTotalPopulation {
		t.Fatalf("focus = %q, want total population", f.FocusedKey())
	}
	if f.Error(schema.KeyImage) != schema.MsgInvalidURL {
		t.Fatalf("image error = %q", f.Error(schema.KeyImage))
	}
}

func TestFormResetLoadsDraftAndClearsErrors(t *testing.T) {
	f := NewForm()
	f.ShowErrors(schema.FieldErrors{schema.KeyScientificName: schema.MsgScientificNameRequired})

	f.Reset(schema.DraftFrom(fixtureSpecies()[0]))

	if got := f.Value(schema.KeyScientificName); got != "Canis lupus" {
		t.Fatalf("scientific name = %q", got)
	}
	if got := f.Value(schema.KeyTotalPopulation); got != "300000" {
		t.Fatalf("population = %q", got)
	}
	if got := f.Value(schema.KeyDescription); got != "Apex predator of the northern forests." {
		t.Fatalf("description = %q", got)
	}
	if f.Error(schema.KeyScientificName) != "" {
		t.Fatal("expected errors cleared")
	}
}

func TestFormViewShowsLabelsAndErrors(t *testing.T) {
	useASCII(t)
	f := NewForm()
	f.SetValue(schema.KeyImage, "not a url")

	view := f.View()
	for _, field := range schema.Fields() {
		requireContains(t, view, field.Label)
	}
	requireContains(t, view, schema.MsgInvalidURL)
}

func TestFormKeepsLongDescriptionIntact(t *testing.T) {
	cases := map[string]string{
		"long line":  strings.Repeat("abcdefghij", 250),
		"many lines": strings.TrimSuffix(strings.Repeat("A line of notes.\n", 150), "\n"),
	}
	for name, desc := range cases {
		t.Run(name, func(t *testing.T) {
			s := fixtureSpecies()[0]
			s.Description = &desc
			f := NewForm()
			f.Reset(schema.DraftFrom(s))

			if got := f.Value(schema.KeyDescription); got != desc {
				t.Fatalf("widget holds %d chars, want %d", len(got), len(desc))
			}

			for f.FocusedKey() != schema.KeyDescription {
				f.Update(keyTab)
			}
			f.Update(tea.KeyMsg{Type: tea.KeyBackspace})

			want := desc[:len(desc)-1]
			in, errs := schema.Validate(f.Draft())
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if in.Description == nil || *in.Description != want {
				t.Fatalf("description has %d chars after edit, want %d", len(deref(in.Description)), len(want))
			}
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
