// Package print provides the print command, which writes variables to the
// host's output.
package print

import (
	"context"
	"fmt"

	"github.com/specialistvlad/read2env/internal/ctxlog"
	"github.com/specialistvlad/read2env/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// CommandName is the name the command registers under.
const CommandName = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunPrint writes `name = "value"` for each requested variable, or for
// every variable when none are named. Unset names print as (null).
func OnRunPrint(ctx context.Context, env *registry.Env, args registry.Args) error {
	names := args.Strings("vars")
	if len(names) == 0 {
		names = env.Vars.Names(ctx)
	}
	ctxlog.FromContext(ctx).Debug("Printing variables.", "count", len(names))

	for _, name := range names {
		value, ok := env.Vars.Get(ctx, name)
		if !ok {
			if _, err := fmt.Fprintf(env.Out, "%s = (null)\n", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(env.Out, "%s = %q\n", name, value); err != nil {
			return err
		}
	}
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Command{
		Name:        CommandName,
		Description: "Prints variables.",
		Options: []registry.Option{
			{Name: "vars", Type: cty.List(cty.String), Description: "names to print; all when empty"},
		},
		Run: OnRunPrint,
	})
}

// Unregister removes the command from the host.
func (m *Module) Unregister(r *registry.Registry) {
	r.Unregister(CommandName)
}
