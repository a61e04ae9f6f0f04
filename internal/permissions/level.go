// Package permissions holds the in-memory access-control model: control groups
// with tiered access levels, and user groups (whitelists/blacklists).
package permissions

import (
	"errors"
	"fmt"
)

// Level is the access level of a control group.
type Level string

const (
	Disabled Level = "disabled"
	Enabled  Level = "enabled"
	Inherit  Level = "inherit"
	// ModPlus admits moderators, administrators and developers.
	ModPlus Level = "modplus"
	// AdminPlus admits administrators and developers. The name is narrower
	// than the semantics; it is kept for compatibility with existing configs.
	AdminPlus Level = "adminplus"
	// DevOnly admits developers only.
	DevOnly Level = "devonly"
)

// ErrInvalidLevel is returned when a string does not name one of the six levels.
var ErrInvalidLevel = errors.New("not a valid control group option")

var levels = map[Level]struct{}{
	Disabled:  {},
	Enabled:   {},
	Inherit:   {},
	ModPlus:   {},
	AdminPlus: {},
	DevOnly:   {},
}

// ParseLevel converts a string into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if _, ok := levels[l]; !ok {
		return "", fmt.Errorf("%q is %w", s, ErrInvalidLevel)
	}
	return l, nil
}

// LevelNames lists the valid level names in declaration order, for error texts.
func LevelNames() []string {
	return []string{"disabled", "enabled", "inherit", "modplus", "adminplus", "devonly"}
}
