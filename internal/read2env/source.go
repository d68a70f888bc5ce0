package read2env

import (
	"context"
	"errors"
	"fmt"
)

// ByteSource is an open file with a size fixed at open time.
//
// Read requests len(p) bytes. Implementations return fewer only when the
// underlying data ended early; a short count with a nil error is how a
// truncated source is reported.
type ByteSource interface {
	Size() int64
	Read(p []byte) (int, error)
	Close() error
}

// Opener opens a ByteSource by path.
type Opener interface {
	Open(path string) (ByteSource, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (ByteSource, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (ByteSource, error) { return f(path) }

// Sink receives the committed variable binding.
type Sink interface {
	Set(ctx context.Context, key, value string) error
}

// Allocator hands out and takes back the pipeline's buffer.
type Allocator interface {
	Alloc(size int64) ([]byte, error)
	Free(buf []byte)
}

// ErrTooLarge is wrapped by HeapAllocator when a file exceeds its limit.
var ErrTooLarge = errors.New("exceeds max-size")

// DefaultMaxSize is the largest file HeapAllocator accepts when no limit is given.
const DefaultMaxSize int64 = 64 << 20

// HeapAllocator allocates zeroed buffers from the Go heap, refusing sizes
// above Limit. Free wipes the buffer.
type HeapAllocator struct {
	Limit int64
}

// Alloc returns a zeroed slice of exactly size bytes.
func (a HeapAllocator) Alloc(size int64) (buf []byte, err error) {
	limit := a.Limit
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	if size < 0 || size > limit || int64(int(size)) != size {
		return nil, fmt.Errorf("requested %d bytes: %w %d", size, ErrTooLarge, limit)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("allocating %d bytes: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}

// Free zeroes buf so file contents do not linger after release.
func (HeapAllocator) Free(buf []byte) {
	clear(buf)
}
