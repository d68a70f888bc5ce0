package script

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/read2env/internal/ctxlog"
	"github.com/specialistvlad/read2env/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Executor runs a named command and supplies the variables expressions may
// refer to.
type Executor interface {
	Exec(ctx context.Context, command string, raw map[string]cty.Value) error
	EvalContext(ctx context.Context) *hcl.EvalContext
}

// Parse reads and decodes a script file without running it.
func Parse(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script %s: %w", path, diags)
	}
	attrs, diags := f.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script %s: %w", path, diags)
	}
	if len(attrs) > 0 {
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("script %s: unexpected top-level attributes %v", path, names)
	}
	return &f, nil
}

// RunPath runs a single script file, or every .hcl file under a directory
// in lexical path order.
func RunPath(ctx context.Context, path string, exec Executor) error {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat script path: %w", err)
	}
	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return fmt.Errorf("failed to walk script directory %s: %w", path, err)
		}
		if len(paths) == 0 {
			logger.Warn("No .hcl script files found in path", "path", path)
			return nil
		}
	}

	for _, p := range paths {
		if err := RunFile(ctx, p, exec); err != nil {
			return err
		}
	}
	return nil
}

// RunFile parses and runs one script file, stopping at the first failure.
func RunFile(ctx context.Context, path string, exec Executor) error {
	logger := ctxlog.FromContext(ctx).With("script", path)

	f, err := Parse(path)
	if err != nil {
		return err
	}
	logger.Debug("Script parsed.", "runs", len(f.Runs))

	for i, run := range f.Runs {
		raw, err := evaluate(run, exec.EvalContext(ctx))
		if err != nil {
			return err
		}
		logger.Debug("Running block.", "index", i, "command", run.Command)
		if err := exec.Exec(ctx, run.Command, raw); err != nil {
			return fmt.Errorf("%s: run %q: %w", run.DefRange, run.Command, err)
		}
	}
	logger.Info("Script finished.", "runs", len(f.Runs))
	return nil
}

func evaluate(run *Run, evalCtx *hcl.EvalContext) (map[string]cty.Value, error) {
	attrs, diags := run.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("run %q: %w", run.Command, diags)
	}
	raw := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("run %q: %w", run.Command, diags)
		}
		raw[name] = val
	}
	return raw, nil
}
