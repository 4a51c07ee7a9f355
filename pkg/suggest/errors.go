package suggest

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound means the corpus path does not exist.
	ErrNotFound = errors.New("corpus not found")
	// ErrIO means the corpus exists but could not be opened or read.
	ErrIO = errors.New("corpus read failed")
	// ErrEmptyInput means the query was empty after trimming whitespace.
	ErrEmptyInput = errors.New("empty input")
)

// LoadError describes a failed corpus load.
// It matches ErrNotFound or ErrIO with errors.Is, as well as the underlying cause.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newLoadError(path string, err error) *LoadError {
	kind := ErrIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrNotFound
	}
	return &LoadError{Path: path, Kind: kind, Err: err}
}
