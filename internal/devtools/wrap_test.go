package devtools

import (
	"context"
	"strings"
	"testing"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/pkg/cmd"
)

// recordCommand counts its own executions.
type recordCommand struct {
	name string
	runs int
}

func (c *recordCommand) Name() string        { return c.name }
func (c *recordCommand) Description() string { return "records runs" }

func (c *recordCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	c.runs++
	return nil
}

func TestWrapUnrestrictedCallsThrough(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	base := &recordCommand{name: "plain"}
	wrapped, err := d.Wrap(base, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := wrapped.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if base.runs != 1 {
		t.Fatalf("runs = %d, want 1", base.runs)
	}
}

func TestWrapRejectsNilAndUnnamed(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	if _, err := d.Wrap(nil, Options{}); err == nil {
		t.Fatal("nil command accepted")
	}
	if _, err := d.Wrap(&recordCommand{name: ""}, Options{}); err == nil {
		t.Fatal("unnamed command accepted")
	}
	if _, err := d.Wrap(&recordCommand{name: ""}, Options{SkipKindCheck: true}); err != nil {
		t.Fatalf("SkipKindCheck still rejected: %v", err)
	}
}

func TestWrapDeniedRepliesLocked(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	base := &recordCommand{name: "secret"}
	wrapped, err := d.Wrap(base, Options{Group: "locked"})
	if err != nil {
		t.Fatal(err)
	}

	actx := &fakeContext{user: 1, guild: 7}
	inv := &cmd.Invocation{Data: actx}
	if err := wrapped.Run(context.Background(), inv); err != nil {
		t.Fatal(err)
	}
	if base.runs != 0 {
		t.Fatal("denied invocation still ran the command")
	}
	if !strings.Contains(actx.last(t), message.CommandLocked) {
		t.Fatalf("reply %q missing locked notice", actx.last(t))
	}
}

func TestWrapAllowedRunsWithTrackerSession(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	base := &recordCommand{name: "tracked"}
	wrapped, err := d.Wrap(base, Options{Group: "fun", Tracker: "core"})
	if err != nil {
		t.Fatal(err)
	}

	actx := &fakeContext{user: 42, guild: 7}
	if err := wrapped.Run(context.Background(), &cmd.Invocation{Data: actx}); err != nil {
		t.Fatal(err)
	}
	if base.runs != 1 {
		t.Fatalf("runs = %d, want 1", base.runs)
	}

	r := d.trackers.Get("core").Report()
	if len(r.Active) != 0 {
		t.Fatalf("active sessions after run = %v, want none", r.Active)
	}
	if len(r.History) != 1 || !strings.HasPrefix(r.History[0], "42@") {
		t.Fatalf("history = %v, want one entry for user 42", r.History)
	}
	if r.Counts[7] != 1 {
		t.Fatalf("guild count = %d, want 1", r.Counts[7])
	}
}

func TestWrapNonActorDataCallsThrough(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	base := &recordCommand{name: "loose"}
	wrapped, err := d.Wrap(base, Options{Group: "locked"})
	if err != nil {
		t.Fatal(err)
	}
	// No identifiable actor on the invocation: the gate cannot apply.
	if err := wrapped.Run(context.Background(), &cmd.Invocation{Data: "plain string"}); err != nil {
		t.Fatal(err)
	}
	if base.runs != 1 {
		t.Fatalf("runs = %d, want 1", base.runs)
	}
}

func TestWrapLazilyCreatesSelectors(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	if _, err := d.Wrap(&recordCommand{name: "c"}, Options{
		Group:     "fresh_group",
		Whitelist: "fresh_wl",
		Blacklist: "fresh_bl",
		Tracker:   "fresh_tr",
	}); err != nil {
		t.Fatal(err)
	}
	if !d.groups.Has("fresh_group") || !d.whitelists.Has("fresh_wl") ||
		!d.blacklists.Has("fresh_bl") || !d.trackers.Has("fresh_tr") {
		t.Fatal("wrapping did not create the referenced selectors")
	}
}

func TestPlaceholderAndResolve(t *testing.T) {
	base := &recordCommand{name: "deferred"}
	placed, err := Placeholder(base, Options{Group: "locked"})
	if err != nil {
		t.Fatal(err)
	}

	// Before resolution the command runs unrestricted.
	actx := &fakeContext{user: 1, guild: 7}
	if err := placed.Run(context.Background(), &cmd.Invocation{Data: actx}); err != nil {
		t.Fatal(err)
	}
	if base.runs != 1 {
		t.Fatalf("runs before resolve = %d, want 1", base.runs)
	}

	reg := cmd.NewRegistry()
	reg.Register(placed)

	d := newFacade(t, &fakeHost{}, testConfig())
	if err := d.Resolve(reg); err != nil {
		t.Fatal(err)
	}
	resolved := reg.Get("deferred")
	if _, isDeferred := resolved.(*cmd.Deferred); isDeferred {
		t.Fatal("resolve left the command deferred")
	}

	if err := resolved.Run(context.Background(), &cmd.Invocation{Data: actx}); err != nil {
		t.Fatal(err)
	}
	if base.runs != 1 {
		t.Fatal("resolved command ran despite the disabled group")
	}
	if !strings.Contains(actx.last(t), message.CommandLocked) {
		t.Fatalf("reply %q missing locked notice", actx.last(t))
	}
}

func TestAddCommandRegistersWrapped(t *testing.T) {
	d := newFacade(t, &fakeHost{}, testConfig())
	base := &recordCommand{name: "added"}
	if err := d.AddCommand(base, Options{Group: "fun"}); err != nil {
		t.Fatal(err)
	}
	c := d.Registry().Get("added")
	if c == nil {
		t.Fatal("command not registered")
	}
	if cmd.Root(c) != base {
		t.Fatal("registered command does not unwrap to the original")
	}
}
