package todo

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports an intent that addressed a row the current
// filtered view does not contain.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError carries the offending position and the size of the
// filtered view it was resolved against.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Len, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
