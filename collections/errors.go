package collections

import "errors"

// Sentinel failure conditions. Fallible operations return these wrapped
// with a stack trace via stackerr, so callers can match them with
// errors.Is. A failed operation never leaves the list partially
// modified.
var (
	ErrIndexOutOfRange     = errors.New("collections: index out of range")
	ErrInvalidRange        = errors.New("collections: invalid sublist range")
	ErrEmptyList           = errors.New("collections: list is empty")
	ErrValueNotFound       = errors.New("collections: value not found")
	ErrEndOfList           = errors.New("collections: iterator reached the end of the list")
	ErrNothingToRemove     = errors.New("collections: iterator has no last returned element to remove")
	ErrNothingToReplace    = errors.New("collections: iterator has no last returned element to replace")
	ErrIteratorInvalidated = errors.New("collections: iterator invalidated by a list mutation")
)
