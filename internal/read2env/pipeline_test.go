package read2env

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	opener *fakeOpener
	alloc  *countingAllocator
	sink   *mapSink
	diag   *bytes.Buffer
	loader *Loader
}

func newHarness(src *fakeSource) *harness {
	h := &harness{
		opener: &fakeOpener{src: src},
		alloc:  &countingAllocator{},
		sink:   &mapSink{},
		diag:   &bytes.Buffer{},
	}
	h.loader = &Loader{Opener: h.opener, Sink: h.sink, Allocator: h.alloc, Diag: h.diag}
	return h
}

func TestLoad_RawBytesAreBoundVerbatim(t *testing.T) {
	src := newSource("H\x00I\x00")
	h := newHarness(src)

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V"})
	require.NoError(t, err)

	assert.Equal(t, "H\x00I\x00", h.sink.vars["V"])
	assert.Len(t, h.sink.vars["V"], 4)
	assert.Equal(t, 1, src.closes)
	assert.Equal(t, 1, h.alloc.allocs)
	assert.Equal(t, 1, h.alloc.frees)
	assert.Empty(t, h.diag.String(), "diagnostics must stay silent without debug")
}

func TestLoad_UTF16IsFilteredToNarrow(t *testing.T) {
	src := &fakeSource{data: []byte{0x48, 0x00, 0x49, 0x00}, size: -1}
	h := newHarness(src)

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V", UTF16: true})
	require.NoError(t, err)
	assert.Equal(t, "HI", h.sink.vars["V"])
}

func TestLoad_UTF16WithBOMAndNewlines(t *testing.T) {
	// FF FE marker, "a", CR LF, "b" in little-endian wide text.
	data := []byte{0xff, 0xfe, 'a', 0, '\r', 0, '\n', 0, 'b', 0}
	h := newHarness(&fakeSource{data: data, size: -1})

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V", UTF16: true})
	require.NoError(t, err)
	assert.Equal(t, "ab", h.sink.vars["V"])
}

func TestLoad_DebugWritesDiagnostics(t *testing.T) {
	h := newHarness(newSource("AB"))

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "V=\"AB\"\nxxd(V)=\"4142\"\n", h.diag.String())
}

func TestLoad_DebugDumpsWholeBufferAfterFilter(t *testing.T) {
	h := newHarness(&fakeSource{data: []byte{'A', 0, 'B', 0}, size: -1})

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V", UTF16: true, Debug: true})
	require.NoError(t, err)
	// The value line shows the filtered prefix; the dump covers all four bytes.
	assert.Equal(t, "V=\"AB\"\nxxd(V)=\"41424200\"\n", h.diag.String())
	assert.Equal(t, "AB", h.sink.vars["V"])
}

func TestLoad_EmptyFileIsNotAnError(t *testing.T) {
	src := newSource("")
	h := newHarness(src)
	h.sink.vars = map[string]string{"V": "old"}

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V"})
	require.NoError(t, err)

	assert.Equal(t, "old", h.sink.vars["V"])
	assert.Zero(t, h.sink.sets)
	assert.Zero(t, h.alloc.allocs)
	assert.Equal(t, 1, src.closes)
}

func TestLoad_MissingArgumentsFailBeforeIO(t *testing.T) {
	for _, opts := range []Options{
		{Set: "V"},
		{Path: "f"},
		{},
	} {
		h := newHarness(newSource("data"))

		err := h.loader.Load(context.Background(), opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrArgument)
		assert.Equal(t, KindArgument, KindOf(err))
		assert.Empty(t, h.opener.opens, "source must not be opened")
	}
}

func TestLoad_OpenFailure(t *testing.T) {
	h := newHarness(nil)
	h.opener.err = fs.ErrNotExist

	err := h.loader.Load(context.Background(), Options{Path: "missing", Set: "V"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "file open failed: missing")
	assert.Zero(t, h.alloc.allocs)
	assert.Zero(t, h.sink.sets)
}

func TestLoad_FailurePathsReleaseResourcesOnce(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		src       *fakeSource
		allocErr  error
		sinkErr   error
		wantKind  Kind
		wantFrees int
	}{
		{
			name:     "allocation",
			src:      newSource("data"),
			allocErr: boom,
			wantKind: KindOutOfMemory,
		},
		{
			name:      "read",
			src:       &fakeSource{data: []byte("data"), size: -1, readErr: boom},
			wantKind:  KindRead,
			wantFrees: 1,
		},
		{
			name:      "short read",
			src:       &fakeSource{data: []byte("da"), size: 4},
			wantKind:  KindShortRead,
			wantFrees: 1,
		},
		{
			name:      "negative count",
			src:       &fakeSource{data: []byte("data"), size: -1, readN: -1},
			wantKind:  KindShortRead,
			wantFrees: 1,
		},
		{
			name:      "short read hides close error",
			src:       &fakeSource{data: []byte("da"), size: 4, closeErr: boom},
			wantKind:  KindShortRead,
			wantFrees: 1,
		},
		{
			name:      "close",
			src:       &fakeSource{data: []byte("data"), size: -1, closeErr: boom},
			wantKind:  KindClose,
			wantFrees: 1,
		},
		{
			name:      "bind",
			src:       newSource("data"),
			sinkErr:   boom,
			wantKind:  KindBind,
			wantFrees: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(tc.src)
			h.alloc.err = tc.allocErr
			h.sink.err = tc.sinkErr

			err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V"})
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, KindOf(err), "got %v", err)
			assert.Equal(t, 1, tc.src.closes, "source must be closed exactly once")
			assert.Equal(t, tc.wantFrees, h.alloc.frees, "buffer must be freed exactly once")
			if tc.wantKind != KindBind {
				assert.Empty(t, h.sink.vars, "no binding may be visible after a failure")
			}
		})
	}
}

func TestLoad_ShortReadIsNeverBound(t *testing.T) {
	h := newHarness(&fakeSource{data: []byte("abc"), size: 10})

	err := h.loader.Load(context.Background(), Options{Path: "f", Set: "V"})
	require.ErrorIs(t, err, ErrShortRead)
	assert.Zero(t, h.sink.sets)
}

func TestLoad_EOFWithFullCountIsAccepted(t *testing.T) {
	src := &eofSource{fakeSource: newSource("xyz")}
	sink := &mapSink{}
	l := &Loader{
		Opener: OpenerFunc(func(string) (ByteSource, error) { return src, nil }),
		Sink:   sink,
	}

	err := l.Load(context.Background(), Options{Path: "f", Set: "V"})
	require.NoError(t, err)
	assert.Equal(t, "xyz", sink.vars["V"])
	assert.Equal(t, 1, src.closes)
}

// eofSource reports io.EOF alongside a complete read.
type eofSource struct{ *fakeSource }

func (s *eofSource) Read(p []byte) (int, error) {
	n, _ := s.fakeSource.Read(p)
	return n, io.EOF
}

func TestLoad_DefaultsApplyWithoutAllocatorOrDiag(t *testing.T) {
	sink := &mapSink{}
	l := &Loader{Opener: &fakeOpener{src: newSource("ok")}, Sink: sink}

	err := l.Load(context.Background(), Options{Path: "f", Set: "V", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "ok", sink.vars["V"])
}

func TestLoad_SizeAboveLimitIsOutOfMemory(t *testing.T) {
	src := &fakeSource{data: []byte("0123456789"), size: -1}
	sink := &mapSink{}
	l := &Loader{Opener: &fakeOpener{src: src}, Sink: sink, Allocator: HeapAllocator{Limit: 4}}

	err := l.Load(context.Background(), Options{Path: "f", Set: "V"})
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Contains(t, err.Error(), "requested 10 bytes: exceeds max-size 4")
	assert.Equal(t, 1, src.closes)
	assert.Zero(t, src.reads)
}
