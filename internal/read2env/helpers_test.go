package read2env

import (
	"context"
	"sync"
)

// fakeSource serves data and records how it was used.
type fakeSource struct {
	data     []byte
	size     int64 // declared size; len(data) when negative
	readN    int   // forced return count when non-zero
	readErr  error
	closeErr error

	reads  int
	closes int
}

func (s *fakeSource) Size() int64 {
	if s.size < 0 {
		return int64(len(s.data))
	}
	return s.size
}

func (s *fakeSource) Read(p []byte) (int, error) {
	s.reads++
	if s.readErr != nil {
		return 0, s.readErr
	}
	n := copy(p, s.data)
	if s.readN != 0 {
		n = s.readN
	}
	return n, nil
}

func (s *fakeSource) Close() error {
	s.closes++
	return s.closeErr
}

func newSource(data string) *fakeSource {
	return &fakeSource{data: []byte(data), size: -1}
}

// fakeOpener hands out a single source or fails.
type fakeOpener struct {
	src   *fakeSource
	err   error
	opens []string
}

func (o *fakeOpener) Open(path string) (ByteSource, error) {
	o.opens = append(o.opens, path)
	if o.err != nil {
		return nil, o.err
	}
	return o.src, nil
}

// countingAllocator wraps HeapAllocator and counts calls.
type countingAllocator struct {
	HeapAllocator
	err    error
	allocs int
	frees  int
}

func (a *countingAllocator) Alloc(size int64) ([]byte, error) {
	a.allocs++
	if a.err != nil {
		return nil, a.err
	}
	return a.HeapAllocator.Alloc(size)
}

func (a *countingAllocator) Free(buf []byte) {
	a.frees++
	a.HeapAllocator.Free(buf)
}

// mapSink stores bindings in a map.
type mapSink struct {
	mu   sync.Mutex
	vars map[string]string
	err  error
	sets int
}

func (s *mapSink) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.err != nil {
		return s.err
	}
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	s.vars[key] = value
	return nil
}
