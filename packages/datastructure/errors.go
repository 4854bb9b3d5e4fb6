package datastructure

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidAccess is returned when an iterator that does not point to an element is dereferenced.
	ErrInvalidAccess = errors.New("iterator does not point to an element")

	// ErrStaleIterator is returned when an iterator is dereferenced after its list was structurally modified.
	ErrStaleIterator = errors.New("list was modified after the iterator was positioned")
)
