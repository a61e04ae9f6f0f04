package router

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse routes tokens to an operation. On failure it returns a *ParseError
// holding the ordered diagnostics; no output is printed and the process is
// never terminated.
func (p *Parser) Parse(tokens []string) (*Invocation, error) {
	grp := &routes[0]
	if len(tokens) > 0 && !strings.HasPrefix(tokens[0], "-") {
		sub := findGroup(tokens[0])
		if sub == nil {
			return nil, p.fail(grp, fmt.Sprintf("argument command: invalid choice: %q (choose from %s)",
				tokens[0], groupChoices()))
		}
		grp = sub
		tokens = tokens[1:]
	}

	var selected *flagSpec
	var args []string
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok == "-h" || tok == "--help" {
			return nil, p.helpFail(grp)
		}
		flag := grp.flag(tok)
		if flag == nil {
			return nil, p.fail(grp, fmt.Sprintf("unrecognized arguments: %s", strings.Join(tokens[i:], " ")))
		}
		if selected != nil {
			return nil, p.fail(grp, fmt.Sprintf("argument %s: not allowed with argument %s",
				flag.display(), selected.display()))
		}
		selected = flag
		i++

		var err *ParseError
		args, i, err = p.consume(grp, flag, tokens, i)
		if err != nil {
			return nil, err
		}
	}

	if selected == nil {
		// The root group is optional; bare input behaves as a help request.
		// Subcommand groups require exactly one flag.
		if grp.name == "" {
			return nil, p.helpFail(grp)
		}
		return nil, p.fail(grp, fmt.Sprintf("one of the arguments %s is required", grp.flagList()))
	}

	inv := &Invocation{Op: selected.op, Args: args}
	if selected.kind == argsStrInt {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, p.fail(grp, fmt.Sprintf("argument %s: argument 2 must be an integer", selected.display()))
		}
		inv.Args = args[:1]
		inv.Int = n
		inv.HasInt = true
	}
	return inv, nil
}

// consume collects the positional arguments of flag starting at tokens[i].
func (p *Parser) consume(grp *groupSpec, flag *flagSpec, tokens []string, i int) ([]string, int, *ParseError) {
	fixed := map[arity]int{argsNone: 0, argsOne: 1, argsTwo: 2, argsStrInt: 2}
	switch flag.kind {
	case argsNone, argsOne, argsTwo, argsStrInt:
		n := fixed[flag.kind]
		if len(tokens)-i < n {
			return nil, i, p.fail(grp, fmt.Sprintf("argument %s: expected %d argument(s)", flag.display(), n))
		}
		return tokens[i : i+n], i + n, nil
	case argsVariadicPlus, argsVariadicStar:
		args := []string{}
		for i < len(tokens) && !strings.HasPrefix(tokens[i], "-") {
			args = append(args, tokens[i])
			i++
		}
		if flag.kind == argsVariadicPlus && len(args) == 0 {
			return nil, i, p.fail(grp, fmt.Sprintf("argument %s: expected at least one argument", flag.display()))
		}
		return args, i, nil
	}
	return nil, i, p.fail(grp, "internal: unknown argument arity")
}

func (g *groupSpec) flag(token string) *flagSpec {
	for i := range g.flags {
		if g.flags[i].matches(token) {
			return &g.flags[i]
		}
	}
	return nil
}

// flagList renders the group's flags for a "one of ... is required" message.
func (g *groupSpec) flagList() string {
	parts := make([]string, 0, len(g.flags))
	for i := range g.flags {
		parts = append(parts, g.flags[i].display())
	}
	return strings.Join(parts, " | ")
}

func groupChoices() string {
	parts := []string{}
	for i := range routes {
		if routes[i].name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%q, %q", routes[i].name, routes[i].alias))
	}
	return strings.Join(parts, ", ")
}
