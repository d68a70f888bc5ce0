// Package varstore is the host's variable environment: a thread-safe,
// in-memory map of names to string values.
//
// The Store is the default sink for read2env bindings. It also renders its
// contents as an HCL evaluation context so scripts can refer to earlier
// results as var.NAME, and imports and exports dotenv files.
package varstore
