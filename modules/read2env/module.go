// Package read2env provides the read2env command: load a file into a
// variable, optionally filtering wide text down to printable bytes.
package read2env

import (
	"context"

	"github.com/specialistvlad/read2env/internal/read2env"
	"github.com/specialistvlad/read2env/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// CommandName is the name the command registers under.
const CommandName = "read2env"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options mirrors the command's argument table.
var Options = []registry.Option{
	{Name: "path", Type: cty.String, Description: "path to file"},
	{Name: "set", Type: cty.String, Description: "name of variable"},
	{Name: "utf16", Type: cty.Bool, Description: "is file utf16-encoded"},
	{Name: "debug", Type: cty.Bool, Description: "print the value and a hex dump before setting it"},
}

// OnRunRead2Env is the handler for the 'read2env' command.
func OnRunRead2Env(ctx context.Context, env *registry.Env, args registry.Args) error {
	loader := &read2env.Loader{
		Opener:    env.Opener,
		Sink:      env.Vars,
		Allocator: read2env.HeapAllocator{Limit: env.MaxFileSize},
		Diag:      env.Out,
	}
	return loader.Load(ctx, read2env.Options{
		Path:  args.String("path"),
		Set:   args.String("set"),
		UTF16: args.Bool("utf16"),
		Debug: args.Bool("debug"),
	})
}

// Register registers the command with the host.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Command{
		Name:        CommandName,
		Description: "Sets variable with file contents.",
		Options:     Options,
		Run:         OnRunRead2Env,
	})
}

// Unregister removes the command from the host.
func (m *Module) Unregister(r *registry.Registry) {
	r.Unregister(CommandName)
}
