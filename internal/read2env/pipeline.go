package read2env

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/read2env/internal/ctxlog"
)

// Load runs the pipeline once for opts.
//
// An empty file is not an error: Load logs a notice and returns nil without
// touching the sink.
func (l *Loader) Load(ctx context.Context, opts Options) error {
	logger := ctxlog.FromContext(ctx).With("path", opts.Path, "set", opts.Set)

	if err := opts.Validate(); err != nil {
		return err
	}

	src, err := l.Opener.Open(opts.Path)
	if err != nil {
		return &Error{Kind: KindOpen, Path: opts.Path, Err: err}
	}
	closed := false
	defer func() {
		if closed {
			return
		}
		if cerr := src.Close(); cerr != nil {
			logger.Warn("Closing source after failure also failed.", "error", cerr)
		}
	}()

	size := src.Size()
	logger.Debug("Source opened.", "size", size)
	if size == 0 {
		logger.Info("File is empty, variable left unchanged.")
		return nil
	}

	alloc := l.allocator()
	buf, err := alloc.Alloc(size)
	if err != nil {
		return &Error{Kind: KindOutOfMemory, Path: opts.Path, Err: err}
	}
	defer alloc.Free(buf)

	n, err := src.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return &Error{Kind: KindRead, Path: opts.Path, Err: err}
	}
	if n < 0 || int64(n) < size {
		logger.Debug("Short read.", "want", size, "got", n)
		return &Error{Kind: KindShortRead, Path: opts.Path}
	}

	closed = true
	if err := src.Close(); err != nil {
		return &Error{Kind: KindClose, Path: opts.Path, Err: err}
	}

	length := len(buf)
	if opts.UTF16 {
		length = FilterPrintable(buf)
		logger.Debug("Buffer normalized.", "before", size, "after", length)
	}
	value := buf[:length]

	if opts.Debug {
		if err := WriteDiagnostics(l.diag(), opts.Set, value, buf); err != nil {
			logger.Warn("Failed to write diagnostics.", "error", err)
		}
	}

	if err := l.Sink.Set(ctx, opts.Set, string(value)); err != nil {
		return &Error{Kind: KindBind, Key: opts.Set, Err: err}
	}
	logger.Debug("Variable set.", "length", length)
	return nil
}
