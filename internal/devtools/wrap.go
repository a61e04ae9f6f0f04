package devtools

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/pkg/cmd"
)

// ErrNotACommand is returned when a wrap target does not satisfy the minimal
// command shape (non-nil, named).
var ErrNotACommand = errors.New("decoration target must be a named command")

// Options selects the controls applied to a wrapped command. Empty selector
// names mean "not controlled by that axis".
type Options struct {
	Group     string
	Whitelist string
	Blacklist string
	Tracker   string
	// SkipKindCheck skips target validation, for callers that already
	// validated the target at declaration time.
	SkipKindCheck bool
}

func (o Options) unrestricted() bool {
	return o.Group == "" && o.Whitelist == "" && o.Blacklist == "" && o.Tracker == ""
}

func (o Options) encode() map[string]string {
	m := make(map[string]string, 4)
	for key, v := range map[string]string{
		"group":     o.Group,
		"whitelist": o.Whitelist,
		"blacklist": o.Blacklist,
		"tracker":   o.Tracker,
	} {
		if v != "" {
			m[key] = v
		}
	}
	return m
}

func decodeOptions(m map[string]string) Options {
	return Options{
		Group:     m["group"],
		Whitelist: m["whitelist"],
		Blacklist: m["blacklist"],
		Tracker:   m["tracker"],
	}
}

// Wrap returns a command with the same calling convention whose every
// invocation passes the access gate, and, when a tracker is named, runs
// inside a usage session. Selector names referenced here are lazily created
// so the list operations can see them immediately. Invocations without an
// identifiable actor call through unchanged.
func (d *DevTools) Wrap(c cmd.Command, opts Options) (cmd.Command, error) {
	if c == nil {
		return nil, ErrNotACommand
	}
	if !opts.SkipKindCheck && c.Name() == "" {
		return nil, ErrNotACommand
	}

	d.groups.Get(opts.Group)
	d.whitelists.Get(opts.Whitelist)
	d.blacklists.Get(opts.Blacklist)
	d.trackers.Get(opts.Tracker)

	d.log.WithFields(logrus.Fields{
		"command":   c.Name(),
		"group":     opts.Group,
		"whitelist": opts.Whitelist,
		"blacklist": opts.Blacklist,
		"tracker":   opts.Tracker,
	}).Debug("wrapping command")

	return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
		if opts.unrestricted() || inv == nil {
			return c.Run(ctx, inv)
		}
		actx, ok := inv.Data.(Context)
		if !ok {
			return c.Run(ctx, inv)
		}
		if !d.Authorize(opts.Group, opts.Whitelist, opts.Blacklist, actx.UserID()) {
			d.log.WithFields(logrus.Fields{"command": c.Name(), "user": actx.UserID()}).Debug("command locked")
			return actx.Reply(message.Neg(message.CommandLocked))
		}
		if opts.Tracker != "" {
			session := d.trackers.Get(opts.Tracker).Open(actx.GuildID(), actx.UserID())
			defer session.Close()
		}
		return c.Run(ctx, inv)
	}), nil
}

// Placeholder marks a command with wrap options without wrapping it, for
// commands declared before any facade exists. The returned command runs
// unrestricted until a facade resolves it.
func Placeholder(c cmd.Command, opts Options) (cmd.Command, error) {
	if c == nil || c.Name() == "" {
		return nil, ErrNotACommand
	}
	return &cmd.Deferred{Inner: c, Options: opts.encode()}, nil
}

// Resolve scans reg for deferred commands and wires each one retroactively,
// skipping the kind check since the declaration site already performed it.
func (d *DevTools) Resolve(reg *cmd.Registry) error {
	for _, c := range reg.GetAll() {
		def, ok := c.(*cmd.Deferred)
		if !ok {
			continue
		}
		opts := decodeOptions(def.Options)
		opts.SkipKindCheck = true
		wrapped, err := d.Wrap(def.Inner, opts)
		if err != nil {
			return err
		}
		reg.Replace(def.Name(), wrapped)
	}
	return nil
}

// AddCommand wraps c programmatically and registers it into the facade's
// registry, skipping the kind check.
func (d *DevTools) AddCommand(c cmd.Command, opts Options) error {
	opts.SkipKindCheck = true
	wrapped, err := d.Wrap(c, opts)
	if err != nil {
		return err
	}
	d.registry.Register(wrapped)
	return nil
}
