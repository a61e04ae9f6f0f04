// Package tracker records command usage per named scope: who is inside a
// tracked command right now, a bounded log of recent invocations, and a
// per-guild invocation counter. State is process-wide and resets on restart.
package tracker

import (
	"fmt"
	"sync"
	"time"
)

// HistoryLimit caps the recent-invocation log; the oldest entry is evicted
// first once the cap is reached.
const HistoryLimit = 15

// Tracker tracks one named scope.
type Tracker struct {
	mu      sync.Mutex
	active  []string
	history []string // oldest first, capped at HistoryLimit
	counts  map[int64]int

	now func() time.Time
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{counts: make(map[int64]int), now: time.Now}
}

// Session is a scoped usage record. Close removes the session's token from the
// active set and must be called on every exit path; the usual form is
//
//	s := t.Open(guildID, userID)
//	defer s.Close()
//
// Two overlapping sessions for the same user and guild insert two identical
// tokens, and closing one removes a single occurrence; the active set is not
// reference-counted.
type Session struct {
	t     *Tracker
	token string
	once  sync.Once
}

// Close removes the session's token from the active set.
func (s *Session) Close() {
	s.once.Do(func() {
		s.t.mu.Lock()
		defer s.t.mu.Unlock()
		for i, v := range s.t.active {
			if v == s.token {
				s.t.active = append(s.t.active[:i], s.t.active[i+1:]...)
				return
			}
		}
	})
}

// Open records one invocation: the guild counter is incremented, a
// "user@timestamp" entry (UTC, second precision) is appended to the history,
// and a "user@guild" token enters the active set until Close.
func (t *Tracker) Open(guildID, userID int64) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[guildID]++
	entry := fmt.Sprintf("%d@%s", userID, t.now().UTC().Format("2006-01-02T15:04:05"))
	t.history = append(t.history, entry)
	if len(t.history) > HistoryLimit {
		t.history = t.history[len(t.history)-HistoryLimit:]
	}
	token := fmt.Sprintf("%d@%d", userID, guildID)
	t.active = append(t.active, token)
	return &Session{t: t, token: token}
}

// Report is a point-in-time copy of a tracker's state. History is ordered
// most recent first.
type Report struct {
	Active  []string
	History []string
	Counts  map[int64]int
}

// Report snapshots the tracker.
func (t *Tracker) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := Report{
		Active:  append([]string(nil), t.active...),
		History: make([]string, 0, len(t.history)),
		Counts:  make(map[int64]int, len(t.counts)),
	}
	for i := len(t.history) - 1; i >= 0; i-- {
		r.History = append(r.History, t.history[i])
	}
	for guild, n := range t.counts {
		r.Counts[guild] = n
	}
	return r
}
