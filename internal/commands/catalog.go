package commands

import (
	"github.com/keshon/devtools/internal/devtools"
	"github.com/keshon/devtools/internal/extensions"
	"github.com/keshon/devtools/pkg/cmd"
)

// Catalog declares the shipped command modules with their control options.
// The commands run unrestricted until a facade resolves the registry.
func Catalog() ([]*extensions.Extension, error) {
	ping, err := devtools.Placeholder(Ping{}, devtools.Options{
		Group:   "global",
		Tracker: "core",
	})
	if err != nil {
		return nil, err
	}
	echo, err := devtools.Placeholder(Echo{}, devtools.Options{
		Group:     "fun",
		Blacklist: "muted",
		Tracker:   "core",
	})
	if err != nil {
		return nil, err
	}
	return []*extensions.Extension{
		{Name: "modules.core", Commands: []cmd.Command{ping}},
		{Name: "modules.fun", Commands: []cmd.Command{echo}},
	}, nil
}
