package cmd

import "context"

// Deferred marks a command whose wrapping options were declared before the
// component that applies them exists (e.g. commands registered at init time,
// wired to an access controller constructed later). Until resolved it runs the
// inner command unmodified. Resolvers scan a Registry for Deferred commands
// and Replace each with the wired version; declaring sites opt in explicitly,
// no runtime reflection over arbitrary objects is involved.
type Deferred struct {
	Inner   Command
	Options map[string]string
}

// Name delegates to the inner command.
func (d *Deferred) Name() string { return d.Inner.Name() }

// Description delegates to the inner command.
func (d *Deferred) Description() string { return d.Inner.Description() }

// Run runs the inner command directly; a Deferred command is unrestricted
// until a resolver wires it.
func (d *Deferred) Run(ctx context.Context, inv *Invocation) error {
	return d.Inner.Run(ctx, inv)
}

// Unwrap returns the inner command.
func (d *Deferred) Unwrap() Command { return d.Inner }
