package dirops

import (
	"errors"
	"io/fs"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrIO           = errors.New("i/o error")
	ErrLaunch       = errors.New("launch failed")
)

// OpError matches both its Kind and the underlying error with errors.Is.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path + ": " + e.Kind.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns one of the Err* sentinels, or nil for a nil error.
func KindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, ErrLaunch):
		return ErrLaunch
	default:
		return ErrIO
	}
}

func newOpError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Path: path, Kind: classify(err), Err: err}
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrAccessDenied
	default:
		return ErrIO
	}
}
