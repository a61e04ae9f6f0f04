package tracker

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func TestOpenRecordsActiveHistoryAndCount(t *testing.T) {
	tr := New()
	tr.now = fixedClock()

	s := tr.Open(7, 42)
	r := tr.Report()

	if want := []string{"42@7"}; !reflect.DeepEqual(r.Active, want) {
		t.Fatalf("Active = %v, want %v", r.Active, want)
	}
	if want := []string{"42@2024-05-01T12:00:01"}; !reflect.DeepEqual(r.History, want) {
		t.Fatalf("History = %v, want %v", r.History, want)
	}
	if want := map[int64]int{7: 1}; !reflect.DeepEqual(r.Counts, want) {
		t.Fatalf("Counts = %v, want %v", r.Counts, want)
	}

	s.Close()
	if r := tr.Report(); len(r.Active) != 0 {
		t.Fatalf("Active after close = %v, want empty", r.Active)
	}
}

func TestHistoryCapEvictsOldestFirst(t *testing.T) {
	tr := New()
	tr.now = fixedClock()

	for i := 0; i < HistoryLimit+5; i++ {
		tr.Open(1, int64(i)).Close()
	}
	r := tr.Report()
	if len(r.History) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(r.History), HistoryLimit)
	}
	// Most recent first: the last opened user leads, the evicted five are gone.
	if got, want := r.History[0][:3], fmt.Sprintf("%d@", HistoryLimit+4); got != want {
		t.Fatalf("History[0] = %q, want prefix %q", r.History[0], want)
	}
	last := r.History[len(r.History)-1]
	if want := "5@"; last[:2] != want {
		t.Fatalf("oldest kept entry = %q, want prefix %q", last, want)
	}
}

func TestCountsAccumulatePerGuild(t *testing.T) {
	tr := New()
	tr.now = fixedClock()
	tr.Open(1, 10).Close()
	tr.Open(1, 11).Close()
	tr.Open(2, 10).Close()

	r := tr.Report()
	if want := map[int64]int{1: 2, 2: 1}; !reflect.DeepEqual(r.Counts, want) {
		t.Fatalf("Counts = %v, want %v", r.Counts, want)
	}
}

func TestOverlappingSessionsRemoveOneTokenEach(t *testing.T) {
	tr := New()
	tr.now = fixedClock()
	s1 := tr.Open(7, 42)
	s2 := tr.Open(7, 42)

	if r := tr.Report(); len(r.Active) != 2 {
		t.Fatalf("Active = %v, want two tokens", r.Active)
	}
	s1.Close()
	if r := tr.Report(); !reflect.DeepEqual(r.Active, []string{"42@7"}) {
		t.Fatalf("Active after one close = %v, want one token", r.Active)
	}
	s2.Close()
	s2.Close() // idempotent
	if r := tr.Report(); len(r.Active) != 0 {
		t.Fatalf("Active after both closes = %v, want empty", r.Active)
	}
}

func TestGroupsLazyAccess(t *testing.T) {
	g := NewGroups("core")
	if !g.Has("core") {
		t.Fatal("seeded tracker missing")
	}
	if g.Has("extra") {
		t.Fatal("tracker exists before access")
	}
	if g.Get("extra") == nil {
		t.Fatal("Get returned nil for a name")
	}
	if !g.Has("extra") {
		t.Fatal("Get did not create the tracker")
	}
	if g.Get("") != nil {
		t.Fatal("empty name should return nil")
	}
	if want := []string{"core", "extra"}; !reflect.DeepEqual(g.Names(), want) {
		t.Fatalf("Names = %v, want %v", g.Names(), want)
	}
}
