// Package app contains the host application: it owns the variable store and
// the command registry, registers the core modules at startup, and drives a
// run (env file import, a direct read2env invocation, scripts, export)
// independently of any entrypoint like a CLI.
package app
