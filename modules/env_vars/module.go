// Package env_vars provides the env_vars command, which copies process
// environment variables into the host's variable store.
package env_vars

import (
	"context"
	"os"
	"strings"

	"github.com/specialistvlad/read2env/internal/ctxlog"
	"github.com/specialistvlad/read2env/internal/registry"
	"github.com/specialistvlad/read2env/internal/varstore"
	"github.com/zclconf/go-cty/cty"
)

// CommandName is the name the command registers under.
const CommandName = "env_vars"

// Module implements the registry.Module interface for this package.
type Module struct{}

// environ is swapped out in tests.
var environ = os.Environ

// OnRunEnvVars imports every environment variable whose name starts with
// prefix. With strip_prefix the prefix is removed from the stored name.
// Names the store cannot hold are skipped.
func OnRunEnvVars(ctx context.Context, env *registry.Env, args registry.Args) error {
	logger := ctxlog.FromContext(ctx)
	prefix := args.String("prefix")
	strip := args.Bool("strip_prefix")

	imported := 0
	for _, e := range environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		name := pair[0]
		if strip {
			name = strings.TrimPrefix(name, prefix)
		}
		if !varstore.ValidName(name) {
			logger.Debug("Skipping environment variable with unsupported name.", "name", name)
			continue
		}
		if err := env.Vars.Set(ctx, name, pair[1]); err != nil {
			return err
		}
		imported++
	}

	logger.Debug("Environment variables imported.", "count", imported, "prefix", prefix)
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Command{
		Name:        CommandName,
		Description: "Imports process environment variables.",
		Options: []registry.Option{
			{Name: "prefix", Type: cty.String, Description: "only import names with this prefix"},
			{Name: "strip_prefix", Type: cty.Bool, Description: "drop the prefix from imported names"},
		},
		Run: OnRunEnvVars,
	})
}

// Unregister removes the command from the host.
func (m *Module) Unregister(r *registry.Registry) {
	r.Unregister(CommandName)
}
