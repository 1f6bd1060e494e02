package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"biodex/internal/domain"
	"biodex/internal/store"
)

const (
	headerHeight = 1
	footerHeight = 1
	minCardWidth = 40
	maxCardWidth = 96
)

type page int

const (
	pageSpecies page = iota
	pageUsers
)

// Config configures the catalog application.
type Config struct {
	Client store.Client
	// Author is recorded on species created from this session.
	Author       uuid.UUID
	OutputFormat string
	Version      string
	// Source names the data backend in the footer.
	Source string
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
	// Now defaults to time.Now.
	Now func() time.Time
}

// App is the Bubble Tea model for the species and users catalog.
type App struct {
	client store.Client
	author uuid.UUID
	keys   KeyMap
	page   page

	species  []domain.Species
	profiles []domain.Profile
	visible  []int
	cursor   int
	top      int
	userCur  int
	userTop  int

	filterInput textinput.Model
	filtering   bool

	add     *FormOverlay
	edits   map[int64]*FormOverlay
	deletes map[int64]*DeleteOverlay
	active  dialogOverlay
	details *DetailOverlay

	toast        *toast
	toastTicking bool
	session      SessionInfo

	spinner      spinner.Model
	loading      int
	lastError    string
	width        int
	height       int
	ready        bool
	outputFormat string
	version      string
	source       string
	copy         func(string) error
	now          func() time.Time
}

// NewApp builds the model. Data is loaded asynchronously from Init.
func NewApp(cfg Config) (*App, error) {
	if cfg.Client == nil {
		return nil, errors.New("ui: a store client is required")
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter species..."

	m := &App{
		client:       cfg.Client,
		author:       cfg.Author,
		keys:         DefaultKeyMap(),
		filterInput:  ti,
		edits:        make(map[int64]*FormOverlay),
		deletes:      make(map[int64]*DeleteOverlay),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		outputFormat: cfg.OutputFormat,
		version:      cfg.Version,
		source:       cfg.Source,
		copy:         cfg.Clipboard,
		now:          cfg.Now,
	}
	m.session = SessionInfo{StartTime: cfg.Now(), InitialSpecies: -1}
	m.add = NewAddOverlay(m.client, m.author)
	return m, nil
}

// Init starts the first load of both lists.
func (m *App) Init() tea.Cmd {
	m.loading = 2
	return tea.Batch(loadSpeciesCmd(m.client), loadProfilesCmd(m.client), m.spinner.Tick)
}

// Species returns the loaded species in list order.
func (m *App) Species() []domain.Species { return m.species }

// Profiles returns the loaded profiles.
func (m *App) Profiles() []domain.Profile { return m.profiles }

func (m *App) speciesByID(id int64) domain.Species {
	for _, s := range m.species {
		if s.ID == id {
			return s
		}
	}
	return domain.Species{ID: id}
}

func (m *App) selectedSpecies() (domain.Species, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Species{}, false
	}
	return m.species[m.visible[m.cursor]], true
}

func (m *App) selectedProfile() (domain.Profile, bool) {
	if m.userCur < 0 || m.userCur >= len(m.profiles) {
		return domain.Profile{}, false
	}
	return m.profiles[m.userCur], true
}

// editOverlay returns the edit dialog for id, creating it on first use. One
// instance per species keeps an in-flight call tied to its dialog.
func (m *App) editOverlay(id int64) *FormOverlay {
	if o, ok := m.edits[id]; ok {
		return o
	}
	o := NewEditOverlay(m.client, id, func() domain.Species { return m.speciesByID(id) })
	m.edits[id] = o
	return o
}

func (m *App) deleteOverlay(id int64) *DeleteOverlay {
	if o, ok := m.deletes[id]; ok {
		return o
	}
	o := NewDeleteOverlay(m.client, id, func() domain.Species { return m.speciesByID(id) })
	m.deletes[id] = o
	return o
}

func (m *App) dialogs() []dialogOverlay {
	all := []dialogOverlay{m.add}
	for _, o := range m.edits {
		all = append(all, o)
	}
	for _, o := range m.deletes {
		all = append(all, o)
	}
	return all
}

// pruneDialogs drops per-species dialogs whose species is gone, unless they
// are showing or still waiting on a call.
func (m *App) pruneDialogs() {
	present := make(map[int64]bool, len(m.species))
	for _, s := range m.species {
		present[s.ID] = true
	}
	for id, o := range m.edits {
		if !present[id] && !o.ctrl.Submitting() && dialogOverlay(o) != m.active {
			delete(m.edits, id)
		}
	}
	for id, o := range m.deletes {
		if !present[id] && !o.ctrl.Submitting() && dialogOverlay(o) != m.active {
			delete(m.deletes, id)
		}
	}
}

func (m *App) busy() bool {
	if m.loading > 0 {
		return true
	}
	for _, o := range m.dialogs() {
		if o.Controller().Submitting() {
			return true
		}
	}
	return false
}
