package ui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"biodex/internal/domain"
	"biodex/internal/store"
)

var testAuthor = uuid.MustParse("0d3a8c1e-7f65-4b7a-9e1d-2c4b6a8f0e13")

// useASCII renders without colour for the rest of the test.
func useASCII(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func fixtureSpecies() []domain.Species {
	return []domain.Species{
		{
			ID:              1,
			Author:          testAuthor,
			ScientificName:  "Canis lupus",
			CommonName:      strPtr("Wolf"),
			Kingdom:         domain.KingdomAnimalia,
			TotalPopulation: int64Ptr(300000),
			Description:     strPtr("Apex predator of the northern forests."),
		},
		{
			ID:             2,
			Author:         testAuthor,
			ScientificName: "Cavia porcellus",
			CommonName:     strPtr("Guinea pig"),
			Kingdom:        domain.KingdomAnimalia,
		},
		{
			ID:             3,
			Author:         testAuthor,
			ScientificName: "Quercus robur",
			CommonName:     strPtr("English oak"),
			Kingdom:        domain.KingdomPlantae,
		},
	}
}

func fixtureProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: testAuthor, Email: "ada@example.com", DisplayName: "Ada Lovelace", Biography: strPtr("Wrote the first program.")},
		{ID: uuid.MustParse("7b1e2f3a-4c5d-4e6f-8a9b-0c1d2e3f4a5b"), Email: "alan@example.com", DisplayName: "Alan Turing"},
	}
}

func newFixtureMock() *store.MockClient {
	mock := store.NewMockClient()
	mock.ListSpeciesFn = func(context.Context) ([]domain.Species, error) {
		return fixtureSpecies(), nil
	}
	mock.ListProfilesFn = func(context.Context) ([]domain.Profile, error) {
		return fixtureProfiles(), nil
	}
	return mock
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type testHarness struct {
	app    *App
	mock   *store.MockClient
	clock  *fakeClock
	copied []string
}

// newTestApp builds an App over mock, sizes it and runs the initial load.
func newTestApp(t *testing.T, mock *store.MockClient) *testHarness {
	t.Helper()
	h := &testHarness{mock: mock, clock: newFakeClock()}
	app, err := NewApp(Config{
		Client:  mock,
		Author:  testAuthor,
		Version: "test",
		Source:  "mock",
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
		Now: h.clock.Now,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	h.app = app
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.drain(app.Init())
	return h
}

func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.app.Update(msg)
	return cmd
}

// press sends a key and settles every command it produces.
func (h *testHarness) press(k tea.KeyMsg) {
	h.drain(h.send(k))
}

func (h *testHarness) typeText(s string) {
	h.press(runes(s))
}

// drain runs cmd and feeds back the messages that carry data. Timer driven
// messages (spinner, toast and cursor ticks) are dropped.
func (h *testHarness) drain(cmd tea.Cmd) {
	for _, msg := range execCmd(cmd) {
		switch msg.(type) {
		case speciesLoadedMsg, profilesLoadedMsg, dialogResultMsg, copyResultMsg:
			h.drain(h.send(msg))
		}
	}
}

// execCmd runs cmd, flattening batches. Commands that do not return promptly
// are timers and are abandoned.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(250 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func plainView(a *App) string {
	return ansi.Strip(a.View())
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}
