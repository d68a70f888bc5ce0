// Package bytesource provides file-backed implementations of read2env.Opener.
package bytesource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/specialistvlad/read2env/internal/read2env"
)

// file adapts an fs.File whose size was captured at open time.
type file struct {
	f    fs.File
	size int64
}

func (s *file) Size() int64 { return s.size }

// Read fills p as far as the file allows. An early end of data is reported
// by the count alone so callers can tell a short read from an I/O failure.
func (s *file) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.f, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}

func (s *file) Close() error { return s.f.Close() }

func open(f fs.File) (read2env.ByteSource, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", info.Name())
	}
	return &file{f: f, size: info.Size()}, nil
}

// OS opens paths on the host filesystem.
type OS struct{}

// Open implements read2env.Opener.
func (OS) Open(path string) (read2env.ByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return open(f)
}

// FS opens paths inside an fs.FS, such as os.DirFS or testing/fstest.MapFS.
type FS struct {
	FS fs.FS
}

// Open implements read2env.Opener.
func (o FS) Open(path string) (read2env.ByteSource, error) {
	f, err := o.FS.Open(path)
	if err != nil {
		return nil, err
	}
	return open(f)
}

var (
	_ read2env.Opener = OS{}
	_ read2env.Opener = FS{}
)
