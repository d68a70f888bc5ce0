package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/specialistvlad/read2env/internal/read2env"
	"github.com/specialistvlad/read2env/internal/varstore"
	"github.com/zclconf/go-cty/cty"
)

// ErrUnknownCommand is wrapped by the host when a script or invocation names
// a command that is not registered.
var ErrUnknownCommand = errors.New("unknown command")

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
	Unregister(r *Registry)
}

// Env is what a running command may touch in the host.
type Env struct {
	Vars        *varstore.Store
	Out         io.Writer
	Opener      read2env.Opener
	MaxFileSize int64
}

// Handler runs a command with already-bound arguments.
type Handler func(ctx context.Context, env *Env, args Args) error

// Option describes one named argument a command accepts.
type Option struct {
	Name        string
	Type        cty.Type
	Description string
}

// Command is a registered, named handler with its option table.
type Command struct {
	Name        string
	Description string
	Options     []Option
	Run         Handler
}

// Registry holds the commands of a single host instance.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd. Registering an invalid command or a duplicate name is
// a programmer error and panics.
func (r *Registry) Register(cmd *Command) {
	if err := validateCommand(cmd); err != nil {
		panic(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("command with name '%s' already registered", cmd.Name))
	}
	slog.Debug("Registering command.", "name", cmd.Name)
	r.commands[cmd.Name] = cmd
}

// Unregister removes the named command and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; !exists {
		return false
	}
	slog.Debug("Unregistering command.", "name", name)
	delete(r.commands, name)
	return true
}

// Lookup returns the named command.
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
