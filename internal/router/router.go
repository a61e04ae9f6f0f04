// Package router turns a tokenized delegate command line into one named
// operation with typed positional arguments. The grammar is fixed at compile
// time. Parsing never prints and never exits: every diagnostic (usage text,
// per-flag errors) accumulates into a ParseError value that the dispatch
// boundary renders as a single reply.
package router

import "strings"

// Invocation is a successfully routed command line.
type Invocation struct {
	// Op is the operation key, e.g. OpControlGroupsEdit.
	Op string
	// Args holds the positional string arguments.
	Args []string
	// Int carries the parsed integer of a string+integer operation.
	Int    int64
	HasInt bool
}

// ParseError carries every diagnostic produced while routing a command line,
// in order. It is the structured replacement for a CLI parser's
// print-and-exit behavior.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// Parser routes tokens against the fixed grammar. It is stateless; each Parse
// call is independent.
type Parser struct {
	prog string
}

// New returns a parser whose diagnostics are prefixed with the given program
// name.
func New(prog string) *Parser {
	return &Parser{prog: prog}
}
