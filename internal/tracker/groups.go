package tracker

import (
	"sort"
	"sync"
)

// Groups is a container of named trackers, created lazily on first access.
type Groups struct {
	mu     sync.Mutex
	groups map[string]*Tracker
}

// NewGroups seeds the container with the given tracker names.
func NewGroups(names ...string) *Groups {
	g := &Groups{groups: make(map[string]*Tracker)}
	for _, name := range names {
		g.groups[name] = New()
	}
	return g
}

// Get returns the named tracker, creating it when missing. An empty name is a
// no-op read returning nil.
func (g *Groups) Get(name string) *Tracker {
	if name == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.groups[name]; !ok {
		g.groups[name] = New()
	}
	return g.groups[name]
}

// Has reports whether the named tracker exists, without creating it.
func (g *Groups) Has(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.groups[name]
	return ok
}

// Names returns all tracker names, sorted.
func (g *Groups) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
