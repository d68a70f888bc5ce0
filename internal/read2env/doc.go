// Package read2env implements the file-to-variable loading pipeline.
//
// A single call to Load opens a byte source, reads it into a buffer sized
// exactly to the source's declared size, optionally filters the buffer down
// to printable narrow characters, optionally writes a diagnostic dump, and
// binds the result into a Sink under the requested key.
//
// The pipeline owns two resources for the duration of a call: the ByteSource
// and the Buffer obtained from an Allocator. Both are released exactly once on
// every exit path. The Sink is touched only after every earlier stage has
// succeeded, so a failed call never leaves a partial binding behind.
package read2env
