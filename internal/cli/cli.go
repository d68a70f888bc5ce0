package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/read2env/internal/app"
	"github.com/specialistvlad/read2env/internal/read2env"
	"github.com/zclconf/go-cty/cty"
)

// Environment variables that supply flag defaults.
const (
	EnvLogLevel  = "READ2ENV_LOG_LEVEL"
	EnvLogFormat = "READ2ENV_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error // optional cause
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func envDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("read2env", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
read2env - Sets variable with file contents.

Usage:
  read2env -path FILE -set NAME [-utf16] [-debug] [options]
  read2env -script FILE|DIR [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		path, set   string
		utf16, dbg  bool
		scriptPath  string
		envFile     string
		exportPath  string
		maxFileSize int64
	)
	flagSet.StringVar(&path, "path", "", "Path to file.")
	flagSet.StringVar(&path, "p", "", "Path to file (shorthand).")
	flagSet.StringVar(&set, "set", "", "Name of variable.")
	flagSet.StringVar(&set, "s", "", "Name of variable (shorthand).")
	flagSet.BoolVar(&utf16, "utf16", false, "File is utf16-encoded; keep printable bytes only.")
	flagSet.BoolVar(&utf16, "u", false, "File is utf16-encoded (shorthand).")
	flagSet.BoolVar(&dbg, "debug", false, "Print the value and a hex dump before setting it.")
	flagSet.BoolVar(&dbg, "d", false, "Print the value and a hex dump (shorthand).")
	flagSet.StringVar(&scriptPath, "script", "", "Path to an .hcl script or a directory of scripts.")
	flagSet.StringVar(&envFile, "env-file", "", "Dotenv file to seed variables from.")
	flagSet.StringVar(&exportPath, "export", "", "Write variables as dotenv to this file; '-' for stdout.")
	flagSet.Int64Var(&maxFileSize, "max-size", read2env.DefaultMaxSize, "Largest file, in bytes, that may be loaded.")
	logFormatFlag := flagSet.String("log-format", envDefault(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envDefault(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	var invoke map[string]cty.Value
	if path != "" || set != "" || utf16 || dbg {
		invoke = map[string]cty.Value{}
		if path != "" {
			invoke["path"] = cty.StringVal(path)
		}
		if set != "" {
			invoke["set"] = cty.StringVal(set)
		}
		if utf16 {
			invoke["utf16"] = cty.True
		}
		if dbg {
			invoke["debug"] = cty.True
		}
	}

	if invoke == nil && scriptPath == "" {
		slog.Debug("Nothing to run, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Invoke:      invoke,
		ScriptPath:  scriptPath,
		EnvFile:     envFile,
		ExportPath:  exportPath,
		MaxFileSize: maxFileSize,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
