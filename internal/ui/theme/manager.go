package theme

import (
	"slices"
	"sync"
)

var registry = &manager{themes: make(map[string]Theme)}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Theme
	currentName string
	current     Theme
}

// RegisterTheme adds a theme. The first registered theme becomes current.
func RegisterTheme(name string, t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[name] = t
	if registry.current == nil {
		registry.currentName = name
		registry.current = t
	}
}

// SetTheme switches to a registered theme and reports whether it exists.
func SetTheme(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	t, ok := registry.themes[name]
	if !ok {
		return false
	}
	registry.currentName = name
	registry.current = t
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// CurrentName returns the active theme's name.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.currentName
}

// Available lists registered theme names, sorted.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.sortedNames()
}

// CycleTheme activates the next theme in name order and returns its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	names := registry.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := names[(slices.Index(names, registry.currentName)+1)%len(names)]
	registry.currentName = next
	registry.current = registry.themes[next]
	return next
}

func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
