package cmd

// Middleware wraps a command (e.g. access control, usage tracking, logging).
// The wrapped value remains a Command.
type Middleware func(Command) Command

// Apply applies middlewares in order; the last in the list is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
