// Package storage persists the access-control state (control groups,
// whitelists, blacklists) between restarts. Persistence is optional: the
// facade works entirely in memory when no store is attached.
package storage

import (
	"context"
	"fmt"

	"github.com/keshon/datastore"
)

const stateKey = "devtools"

// State is the durable snapshot of the access-control containers.
type State struct {
	Groups     map[string]string  `json:"control_groups"`
	Whitelists map[string][]int64 `json:"control_whitelists"`
	Blacklists map[string][]int64 `json:"control_blacklists"`
}

// Store wraps the JSON datastore. Sets are held in memory and flushed on
// autosave and Close, so a crash loses at most the mutations since the last
// flush.
type Store struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc
}

// New opens (or creates) the datastore file at filePath.
func New(filePath string) (*Store, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Store{ds: ds, cancel: cancel}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Store) Close() error {
	s.cancel()
	return s.ds.Close()
}

// Load returns the stored state, or nil when nothing has been saved yet.
func (s *Store) Load() (*State, error) {
	var state State
	found, err := s.ds.Get(stateKey, &state)
	if err != nil {
		return nil, fmt.Errorf("error reading state: %w", err)
	}
	if !found {
		return nil, nil
	}
	if state.Groups == nil {
		state.Groups = map[string]string{}
	}
	if state.Whitelists == nil {
		state.Whitelists = map[string][]int64{}
	}
	if state.Blacklists == nil {
		state.Blacklists = map[string][]int64{}
	}
	return &state, nil
}

// Save replaces the stored state.
func (s *Store) Save(state *State) error {
	return s.ds.Set(stateKey, state)
}
