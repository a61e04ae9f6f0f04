// Package extensions manages named modules of commands that can be loaded,
// unloaded and reloaded while the bot is running. A module is registered in
// the catalog once; loading it adds its commands to the live registry,
// unloading removes them.
package extensions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/keshon/devtools/pkg/cmd"
)

// Extension is one named module of commands. Names are dotted paths
// ("modules.core") so related modules can be reloaded together by prefix.
type Extension struct {
	Name     string
	Commands []cmd.Command
}

// Manager tracks the catalog and which modules are currently live.
type Manager struct {
	mu       sync.Mutex
	catalog  map[string]*Extension
	loaded   map[string]bool
	registry *cmd.Registry
	// onChange, when set, runs after every successful load/unload/reload
	// (e.g. to refresh the host's command tree).
	onChange func()
}

// NewManager returns a manager operating on the given live registry.
func NewManager(registry *cmd.Registry) *Manager {
	return &Manager{
		catalog:  make(map[string]*Extension),
		loaded:   make(map[string]bool),
		registry: registry,
	}
}

// OnChange installs a hook run after every successful mutation.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Add places an extension in the catalog without loading it.
func (m *Manager) Add(ext *Extension) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog[ext.Name] = ext
}

// Available lists every extension in the catalog, loaded or not.
func (m *Manager) Available() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.catalog))
	for name := range m.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Loaded lists the currently loaded extensions, sorted.
func (m *Manager) Loaded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.loaded))
	for name := range m.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load registers the extension's commands into the live registry.
func (m *Manager) Load(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ext, ok := m.catalog[name]
	if !ok {
		return fmt.Errorf("extension %q does not exist", name)
	}
	if m.loaded[name] {
		return fmt.Errorf("extension %q is already loaded", name)
	}
	for _, c := range ext.Commands {
		m.registry.Register(c)
	}
	m.loaded[name] = true
	m.changed()
	return nil
}

// Unload removes the extension's commands from the live registry.
func (m *Manager) Unload(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.unload(name); err != nil {
		return err
	}
	m.changed()
	return nil
}

func (m *Manager) unload(name string) error {
	if !m.loaded[name] {
		return fmt.Errorf("extension %q is not currently loaded", name)
	}
	for _, c := range m.catalog[name].Commands {
		m.registry.Remove(c.Name())
	}
	delete(m.loaded, name)
	return nil
}

// Reload unloads and re-loads the extension.
func (m *Manager) Reload(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.unload(name); err != nil {
		return err
	}
	for _, c := range m.catalog[name].Commands {
		m.registry.Register(c)
	}
	m.loaded[name] = true
	m.changed()
	return nil
}

func (m *Manager) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}
