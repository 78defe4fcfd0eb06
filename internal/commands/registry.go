package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps verbs and their aliases to commands.
type Registry struct {
	mu    sync.RWMutex
	verbs map[string]Command
	cmds  []Command // one entry per command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Command)}
}

// Register adds c under its name and aliases.
// Nothing is added if any of those names is empty or taken.
func (r *Registry) Register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, name := range names {
		if name == "" {
			return fmt.Errorf("command %q has an empty name or alias", c.Name())
		}
		if _, taken := r.verbs[name]; taken {
			if i == 0 {
				return fmt.Errorf("command already registered: %s", name)
			}
			return fmt.Errorf("command alias already registered: %s", name)
		}
	}

	for _, name := range names {
		r.verbs[name] = c
	}
	r.cmds = append(r.cmds, c)
	return nil
}

// Find looks up a command by verb or alias.
func (r *Registry) Find(verb string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.verbs[verb]
	return cmd, ok
}

// All returns every command sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	all := slices.Clone(r.cmds)
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

// DefaultRegistry holds every verb registered by this package's init funcs.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
// It panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
