package datastructure

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// region ListIterator /////////////////////////////////////////////////////////////////////////////////////////////////

// ListIterator is a read-only cursor over the nodes of a SortedList. It either points to a node or is empty.
//
// Every structural modification of the list (insert, remove, clear, assign) turns existing iterators stale. A stale
// iterator refuses to be dereferenced, reports neither a first nor a last node, and drops to the empty cursor on the
// next call to Next or Prev, so that a traversal loop on IsEmpty always terminates. Start repositions it at the head and
// makes it usable again. The zero value is an empty iterator that belongs to no list. Copying a ListIterator yields an
// independent cursor at the same position.
type ListIterator[T constraints.Ordered] struct {
	list       *SortedList[T]
	current    *node[T]
	generation uint64
}

func newListIterator[T constraints.Ordered](list *SortedList[T], startNode *node[T]) ListIterator[T] {
	return ListIterator[T]{
		list:       list,
		current:    startNode,
		generation: list.generation,
	}
}

// Next moves the iterator to the following node. Moving past the last node, or moving a stale iterator, leaves the
// iterator empty.
func (i *ListIterator[T]) Next() {
	if i.current == nil {
		return
	}

	if i.IsStale() {
		i.current = nil
		return
	}

	i.current = i.current.next
}

// Prev moves the iterator to the preceding node. Moving before the first node, or moving a stale iterator, leaves the
// iterator empty.
func (i *ListIterator[T]) Prev() {
	if i.current == nil {
		return
	}

	if i.IsStale() {
		i.current = nil
		return
	}

	i.current = i.current.prev
}

// Start moves the iterator to the current first node of its list.
func (i *ListIterator[T]) Start() {
	if i.list == nil {
		i.current = nil
		return
	}

	i.current = i.list.head
	i.generation = i.list.generation
}

// IsEmpty returns true if the iterator does not point to a node.
func (i *ListIterator[T]) IsEmpty() bool {
	return i.current == nil
}

// IsFirstNode returns true if the iterator points to a node without predecessor.
func (i *ListIterator[T]) IsFirstNode() bool {
	return i.current != nil && !i.IsStale() && i.current.prev == nil
}

// IsLastNode returns true if the iterator points to a node without successor.
func (i *ListIterator[T]) IsLastNode() bool {
	return i.current != nil && !i.IsStale() && i.current.next == nil
}

// IsStale returns true if the list was structurally modified since the iterator was positioned.
func (i *ListIterator[T]) IsStale() bool {
	if i.list == nil {
		return false
	}

	return i.generation != i.list.generation || (i.current != nil && i.current.list != i.list)
}

// Value returns the element the iterator points to.
func (i *ListIterator[T]) Value() (value T, err error) {
	if i.current == nil {
		return value, errors.WithStack(ErrInvalidAccess)
	}

	if i.IsStale() {
		return value, errors.WithStack(ErrStaleIterator)
	}

	return i.current.value, nil
}

// MustValue returns the element the iterator points to and panics if it can not be accessed.
func (i *ListIterator[T]) MustValue() T {
	value, err := i.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
