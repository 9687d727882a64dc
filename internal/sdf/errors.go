package sdf

import "fmt"

// ReadError wraps every failure to load a measurement export
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading measurement '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func newReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}
