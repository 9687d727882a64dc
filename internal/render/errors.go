package render

import (
	"errors"
	"fmt"
)

// ErrFigureClosed is returned when a closed figure is used
var ErrFigureClosed = errors.New("figure is closed")

// Error is a failure reported by the plotting backend
type Error struct {
	Op   string // "plot" or "save"
	Path string // output path, empty for "plot"
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("render %s '%s': %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
