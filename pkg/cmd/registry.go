package cmd

import "sort"

// Registry stores commands by name. It does not perform dispatch; each adapter
// looks up commands and invokes them with its own context.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, overwriting any previous command of the same name.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
}

// Remove deletes the command with the given name, if present.
func (r *Registry) Remove(name string) {
	delete(r.commands, name)
}

// Replace swaps the stored command for name with c. Used by resolvers that
// rewrap deferred commands after the wiring component exists.
func (r *Registry) Replace(name string, c Command) {
	if _, ok := r.commands[name]; ok {
		r.commands[name] = c
	}
}

// Get returns the command with the given name, or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
