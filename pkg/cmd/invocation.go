// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is registered and
// dispatched (Discord slash, text prefix, CLI) is defined by adapters that wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: arguments
// and an opaque payload. Adapters set Data to their own context value; wrappers
// that need caller identity type-assert Data against Actor.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Permissions,
// flags, and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Actor identifies the invoking user when an adapter can supply one. A zero
// guild means the invocation happened outside any guild (e.g. direct message).
type Actor interface {
	UserID() int64
	GuildID() int64
}
