package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Manager holds the built-in personas plus any custom themes registered at
// runtime. Built-ins are seeded at construction and never replaced; custom
// themes are keyed by the derived registry key and silently overwrite earlier
// customs with the same key.
type Manager struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	customs map[string]*Theme
}

// NewManager returns a manager seeded with the built-in personas.
func NewManager() *Manager {
	return &Manager{
		themes:  builtins(),
		customs: make(map[string]*Theme),
	}
}

// Get returns the theme registered under name. Built-ins shadow customs.
func (m *Manager) Get(name string) (*Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.themes[name]; ok {
		return t, nil
	}
	if t, ok := m.customs[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("theme %q: %w", name, ErrNotFound)
}

// List returns every registered theme key, built-ins first in their fixed
// order, then custom themes sorted by key.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.themes)+len(m.customs))
	keys = append(keys, builtinOrder...)
	customs := make([]string, 0, len(m.customs))
	for k := range m.customs {
		customs = append(customs, k)
	}
	sort.Strings(customs)
	return append(keys, customs...)
}

// All returns every registered theme keyed by registry key. Custom themes
// shadow built-ins that share a key.
func (m *Manager) All() map[string]*Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make(map[string]*Theme, len(m.themes)+len(m.customs))
	for k, t := range m.themes {
		all[k] = t
	}
	for k, t := range m.customs {
		all[k] = t
	}
	return all
}

// CreateCustom validates input and registers the theme under its derived key.
func (m *Manager) CreateCustom(input Input) (*Theme, error) {
	t, err := New(input)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.customs[Key(t.Name)] = t
	m.mu.Unlock()
	return t, nil
}

// Export returns the theme's portable representation.
func (m *Manager) Export(name string) (Input, error) {
	t, err := m.Get(name)
	if err != nil {
		return Input{}, err
	}
	return t.Input(), nil
}

// Import registers an exported theme as a custom theme.
func (m *Manager) Import(input Input) (*Theme, error) {
	return m.CreateCustom(input)
}

// Summary returns the condensed view of the named theme.
func (m *Manager) Summary(name string) (Summary, error) {
	t, err := m.Get(name)
	if err != nil {
		return Summary{}, err
	}
	return t.Summarize(), nil
}

// Recommend returns the keys of themes whose primary goal matches goal,
// falling back to the thought leader persona when nothing matches.
func (m *Manager) Recommend(goal string) []string {
	goal = strings.ToLower(goal)
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matches []string
	for _, key := range builtinOrder {
		if m.themes[key].PrimaryGoal == goal {
			matches = append(matches, key)
		}
	}
	customs := make([]string, 0, len(m.customs))
	for k := range m.customs {
		customs = append(customs, k)
	}
	sort.Strings(customs)
	for _, key := range customs {
		if m.customs[key].PrimaryGoal == goal {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return []string{"thought_leader"}
	}
	return matches
}
