package permissions

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrAlreadyPresent is returned by Add for a user already in the list.
	ErrAlreadyPresent = errors.New("already present")
	// ErrNotPresent is returned by Remove for a user absent from the list.
	ErrNotPresent = errors.New("not present")
)

// UserGroups is a set of named user-ID lists, used identically for whitelists
// and blacklists. Uniqueness is enforced by Add, not by construction. All
// methods are safe for concurrent use.
type UserGroups struct {
	mu     sync.Mutex
	groups map[string][]int64
}

// NewUserGroups validates the supplied defaults (name charset); the first
// violation fails construction.
func NewUserGroups(defaults map[string][]int64) (*UserGroups, error) {
	g := &UserGroups{groups: make(map[string][]int64)}
	for name, users := range defaults {
		if err := EnsureName(name); err != nil {
			return nil, err
		}
		g.groups[name] = append([]int64(nil), users...)
	}
	return g, nil
}

// Get returns a copy of the named list. An unknown name is lazily created
// empty. An empty name is a no-op read.
func (g *UserGroups) Get(name string) []int64 {
	if name == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int64(nil), g.get(name)...)
}

func (g *UserGroups) get(name string) []int64 {
	if _, ok := g.groups[name]; !ok {
		g.groups[name] = []int64{}
	}
	return g.groups[name]
}

// Check reports whether the user is in the named list, lazily creating it.
func (g *UserGroups) Check(name string, userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, v := range g.get(name) {
		if v == userID {
			return true
		}
	}
	return false
}

// Has reports whether the named list exists, without creating it.
func (g *UserGroups) Has(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.groups[name]
	return ok
}

// Add appends the user to the named list.
func (g *UserGroups) Add(name string, userID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := g.get(name)
	for _, v := range list {
		if v == userID {
			return fmt.Errorf("userid %d: %w", userID, ErrAlreadyPresent)
		}
	}
	g.groups[name] = append(list, userID)
	return nil
}

// Remove deletes the first occurrence of the user from the named list.
func (g *UserGroups) Remove(name string, userID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := g.get(name)
	for i, v := range list {
		if v == userID {
			g.groups[name] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("userid %d: %w", userID, ErrNotPresent)
}

// Names returns all list names, sorted.
func (g *UserGroups) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of every list.
func (g *UserGroups) Snapshot() map[string][]int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string][]int64, len(g.groups))
	for name, users := range g.groups {
		out[name] = append([]int64(nil), users...)
	}
	return out
}
