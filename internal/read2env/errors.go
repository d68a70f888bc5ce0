package read2env

import (
	"errors"
	"fmt"
)

// Kind identifies the pipeline stage that failed.
type Kind int

const (
	KindArgument Kind = iota + 1
	KindOpen
	KindOutOfMemory
	KindRead
	KindShortRead
	KindClose
	KindBind
)

// Sentinel errors, one per Kind. Use errors.Is against these.
var (
	ErrArgument    = errors.New("--path and --set should be set")
	ErrOpen        = errors.New("file open failed")
	ErrOutOfMemory = errors.New("can't allocate memory for file")
	ErrRead        = errors.New("error occurred in file read")
	ErrShortRead   = errors.New("file read ended in wrong size")
	ErrClose       = errors.New("error occurred while closing the file")
	ErrBind        = errors.New("environment variable set failed")
)

func (k Kind) sentinel() error {
	switch k {
	case KindArgument:
		return ErrArgument
	case KindOpen:
		return ErrOpen
	case KindOutOfMemory:
		return ErrOutOfMemory
	case KindRead:
		return ErrRead
	case KindShortRead:
		return ErrShortRead
	case KindClose:
		return ErrClose
	case KindBind:
		return ErrBind
	}
	return nil
}

// String returns the error kind name, e.g. "ShortReadError".
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "ArgumentError"
	case KindOpen:
		return "OpenError"
	case KindOutOfMemory:
		return "OutOfMemoryError"
	case KindRead:
		return "ReadError"
	case KindShortRead:
		return "ShortReadError"
	case KindClose:
		return "CloseError"
	case KindBind:
		return "BindError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by Load for every failure. It unwraps to both the
// sentinel for its Kind and the underlying cause, if any.
type Error struct {
	Kind Kind
	Path string
	Key  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Kind == KindBind && e.Key != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Key)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the kind sentinel and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the Kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
