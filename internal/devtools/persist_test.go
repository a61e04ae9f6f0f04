package devtools

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/keshon/devtools/internal/permissions"
	"github.com/keshon/devtools/internal/storage"
)

func TestMutationsPersistAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Store = store
	d := newFacade(t, &fakeHost{}, cfg)

	delegate(t, d, "cg -e fun devonly")
	delegate(t, d, "cw -a vips 77")
	delegate(t, d, "cb -r muted 666")
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	cfg2 := testConfig()
	cfg2.Store = reopened
	d2 := newFacade(t, &fakeHost{}, cfg2)

	if got := d2.groups.Get("fun"); got != permissions.DevOnly {
		t.Fatalf("restored group level = %q, want devonly", got)
	}
	if got := d2.whitelists.Get("vips"); !reflect.DeepEqual(got, []int64{42, 77}) {
		t.Fatalf("restored whitelist = %v", got)
	}
	if got := d2.blacklists.Get("muted"); len(got) != 0 {
		t.Fatalf("restored blacklist = %v, want empty", got)
	}
}

func TestStoredStateWinsOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(&storage.State{
		Groups: map[string]string{"fun": "disabled"},
	}); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig() // defaults say fun is enabled
	cfg.Store = store
	d := newFacade(t, &fakeHost{}, cfg)
	defer store.Close()

	if got := d.groups.Get("fun"); got != permissions.Disabled {
		t.Fatalf("group level = %q, stored state should win", got)
	}
}
