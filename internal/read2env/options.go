package read2env

import "io"

// Options are the already-parsed arguments of one invocation.
type Options struct {
	Path  string // file to read
	Set   string // destination variable name
	UTF16 bool   // filter to printable narrow characters
	Debug bool   // write diagnostics before commit
}

// Validate fails with ArgumentError when Path or Set is missing.
func (o Options) Validate() error {
	if o.Path == "" || o.Set == "" {
		return &Error{Kind: KindArgument}
	}
	return nil
}

// Loader holds the collaborators a pipeline run needs. The zero value is not
// usable; Opener and Sink are required.
type Loader struct {
	Opener    Opener
	Sink      Sink
	Allocator Allocator // HeapAllocator{} when nil
	Diag      io.Writer // io.Discard when nil
}

func (l *Loader) allocator() Allocator {
	if l.Allocator == nil {
		return HeapAllocator{}
	}
	return l.Allocator
}

func (l *Loader) diag() io.Writer {
	if l.Diag == nil {
		return io.Discard
	}
	return l.Diag
}
