package permissions

import (
	"fmt"
	"sort"
	"sync"
)

// GlobalGroup is the reserved fallback group. It always exists, defaults to
// enabled, and is the target of one level of inherit indirection.
const GlobalGroup = "global"

// ControlGroups maps group names to access levels and resolves tier-based
// checks against three application-supplied role sets. All methods are safe
// for concurrent use.
type ControlGroups struct {
	mu             sync.Mutex
	groups         map[string]Level
	moderators     []int64
	administrators []int64
	developers     []int64
}

// NewControlGroups builds the container with the reserved global group set to
// enabled. Supplied defaults are validated (name charset, level value) and the
// first violation fails construction.
func NewControlGroups(moderators, administrators, developers []int64, defaults map[string]Level) (*ControlGroups, error) {
	g := &ControlGroups{
		groups:         map[string]Level{GlobalGroup: Enabled},
		moderators:     moderators,
		administrators: administrators,
		developers:     developers,
	}
	for name, level := range defaults {
		if err := EnsureName(name); err != nil {
			return nil, err
		}
		if _, ok := levels[level]; !ok {
			return nil, fmt.Errorf("%q is %w", string(level), ErrInvalidLevel)
		}
		g.groups[name] = level
	}
	return g, nil
}

// Get returns the level of the named group. An unknown name is lazily created
// with level inherit; that creation is a visible side effect. An empty name is
// a no-op read.
func (g *ControlGroups) Get(name string) Level {
	if name == "" {
		return ""
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.get(name)
}

func (g *ControlGroups) get(name string) Level {
	if _, ok := g.groups[name]; !ok {
		g.groups[name] = Inherit
	}
	return g.groups[name]
}

// Set inserts or overwrites the named group. It fails only when the level is
// not one of the six valid options; no existence check is performed.
func (g *ControlGroups) Set(name string, level Level) error {
	if _, ok := levels[level]; !ok {
		return fmt.Errorf("%q is %w", string(level), ErrInvalidLevel)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.groups[name] = level
	return nil
}

// SetAll sets every existing group to level and returns how many were changed.
func (g *ControlGroups) SetAll(level Level) (int, error) {
	if _, ok := levels[level]; !ok {
		return 0, fmt.Errorf("%q is %w", string(level), ErrInvalidLevel)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for name := range g.groups {
		g.groups[name] = level
	}
	return len(g.groups), nil
}

// Has reports whether the named group exists, without creating it.
func (g *ControlGroups) Has(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.groups[name]
	return ok
}

// Check resolves the group (inherit falls back to the global group, one level
// only) and decides whether the user passes. Tier levels admit:
//
//	modplus   moderators + administrators + developers
//	adminplus administrators + developers
//	devonly   developers
func (g *ControlGroups) Check(name string, userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	level := g.get(name)
	if level == Inherit {
		level = g.get(GlobalGroup)
	}
	switch level {
	case Inherit, Enabled:
		return true
	case ModPlus:
		return contains(g.moderators, userID) || contains(g.administrators, userID) || contains(g.developers, userID)
	case AdminPlus:
		return contains(g.administrators, userID) || contains(g.developers, userID)
	case DevOnly:
		return contains(g.developers, userID)
	}
	return false
}

// Snapshot returns a copy of all groups and their levels.
func (g *ControlGroups) Snapshot() map[string]Level {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]Level, len(g.groups))
	for name, level := range g.groups {
		out[name] = level
	}
	return out
}

// Names returns all group names, sorted.
func (g *ControlGroups) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
