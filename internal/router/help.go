package router

import (
	"fmt"
	"strings"
)

// fail produces the usage-plus-error diagnostic pair for grp.
func (p *Parser) fail(grp *groupSpec, msg string) *ParseError {
	return &ParseError{Messages: []string{p.usage(grp), fmt.Sprintf("%s: error: %s", p.progFor(grp), msg)}}
}

// Errorf builds a ParseError in the same shape as a routing failure, for
// operation handlers that reject their input after parsing (unknown names,
// unusable instance configuration). An empty group name targets the root.
func (p *Parser) Errorf(group string, format string, a ...interface{}) *ParseError {
	grp := &routes[0]
	if group != "" {
		if g := findGroup(group); g != nil {
			grp = g
		}
	}
	return p.fail(grp, fmt.Sprintf(format, a...))
}

// helpFail produces the full help text of grp as a structured failure.
func (p *Parser) helpFail(grp *groupSpec) *ParseError {
	var b strings.Builder
	b.WriteString(p.usage(grp))
	b.WriteString("\n\n")
	b.WriteString(grp.desc)
	b.WriteString("\n\noptions:\n")
	b.WriteString("  -h, --help\n        show this help message\n")
	for i := range grp.flags {
		f := &grp.flags[i]
		b.WriteString("  " + f.invocation() + "\n        " + f.help + "\n")
	}
	if grp.name == "" {
		b.WriteString("\ncommands:\n")
		for i := range routes {
			if routes[i].name == "" {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s (%s)\n        %s\n", routes[i].name, routes[i].alias, routes[i].desc))
		}
	}
	return &ParseError{Messages: []string{b.String()}}
}

// usage renders the one-line usage summary of grp.
func (p *Parser) usage(grp *groupSpec) string {
	alts := make([]string, 0, len(grp.flags))
	for i := range grp.flags {
		alts = append(alts, grp.flags[i].invocation())
	}
	line := fmt.Sprintf("usage: %s [-h] [%s]", p.progFor(grp), strings.Join(alts, " | "))
	if grp.name == "" {
		line += " <command> ..."
	}
	return line
}

func (p *Parser) progFor(grp *groupSpec) string {
	if grp.name == "" {
		return p.prog
	}
	return p.prog + " " + grp.name
}

// invocation renders a flag with its metavars, e.g. "-e/--edit <name> <value>".
func (f *flagSpec) invocation() string {
	s := f.display()
	switch f.kind {
	case argsOne, argsTwo, argsStrInt:
		s += " " + strings.Join(f.metavars, " ")
	case argsVariadicPlus:
		s += " " + f.metavars[0] + " ..."
	case argsVariadicStar:
		s += " [" + f.metavars[0] + " ...]"
	}
	return s
}
