package storage

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadBeforeAnySave(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	state, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state != nil {
		t.Fatalf("state = %v, want nil before first save", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	saved := &State{
		Groups:     map[string]string{"global": "enabled", "fun": "devonly"},
		Whitelists: map[string][]int64{"vips": {42, 77}},
		Blacklists: map[string][]int64{"muted": {666}},
	}
	if err := s.Save(saved); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	state, err := reopened.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state == nil {
		t.Fatal("state missing after reopen")
	}
	if !reflect.DeepEqual(state.Groups, saved.Groups) {
		t.Fatalf("Groups = %v, want %v", state.Groups, saved.Groups)
	}
	if !reflect.DeepEqual(state.Whitelists, saved.Whitelists) {
		t.Fatalf("Whitelists = %v, want %v", state.Whitelists, saved.Whitelists)
	}
	if !reflect.DeepEqual(state.Blacklists, saved.Blacklists) {
		t.Fatalf("Blacklists = %v, want %v", state.Blacklists, saved.Blacklists)
	}
}

func TestLoadFixesNilMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Save(&State{}); err != nil {
		t.Fatal(err)
	}
	state, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state.Groups == nil || state.Whitelists == nil || state.Blacklists == nil {
		t.Fatal("nil maps survived Load")
	}
}
