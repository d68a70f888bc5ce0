// Package registry maps command names to the Go handlers that implement
// them.
//
// Modules add their commands when the host starts and remove them when it
// shuts down; nothing in this package is global. Each command declares a
// table of options with cty types, and Bind checks raw arguments against
// that table before the handler ever runs, so handlers only see values of
// the type they asked for.
package registry
