package datastructure

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// region SortedList ///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedList is a doubly linked list that keeps its elements in non-decreasing order. Elements are placed by a linear
// scan on insertion.
//
// A SortedList is not safe for concurrent use. Callers that share it between goroutines need to guard every operation
// (including iteration) with their own mutex.
type SortedList[T constraints.Ordered] struct {
	head       *node[T]
	tail       *node[T]
	count      int
	generation uint64
}

// New returns an empty SortedList.
func New[T constraints.Ordered]() *SortedList[T] {
	return &SortedList[T]{}
}

// Clone returns a deep copy of the SortedList. The copy owns its own nodes.
func (l *SortedList[T]) Clone() *SortedList[T] {
	clone := New[T]()
	clone.copyFrom(l)

	return clone
}

// Assign replaces the content of the SortedList with a deep copy of other. Assigning a list to itself does nothing and
// assigning nil leaves the SortedList empty.
func (l *SortedList[T]) Assign(other *SortedList[T]) {
	if l == other {
		return
	}

	l.Clear()
	if other != nil {
		l.copyFrom(other)
	}
}

// Insert adds the item at its sorted position, which is in front of the first element that is greater or equal. New
// items therefore precede existing equal elements.
func (l *SortedList[T]) Insert(item T) {
	entry := newNode(l, item)

	switch {
	case l.head == nil:
		l.head = entry
		l.tail = entry
	case l.head.value >= item:
		entry.next = l.head
		l.head.prev = entry
		l.head = entry
	default:
		current := l.head
		for current.next != nil && current.next.value < item {
			current = current.next
		}

		entry.prev = current
		entry.next = current.next
		if current.next != nil {
			current.next.prev = entry
		} else {
			l.tail = entry
		}
		current.next = entry
	}

	l.count++
	l.generation++
}

// Remove deletes the first element that is equal to the item. It returns false if no such element exists, in which
// case the list stays untouched.
func (l *SortedList[T]) Remove(item T) bool {
	current := l.find(item)
	if current == nil {
		return false
	}

	if current.prev != nil {
		current.prev.next = current.next
	} else {
		l.head = current.next
	}

	if current.next != nil {
		current.next.prev = current.prev
	} else {
		l.tail = current.prev
	}

	current.detach()
	l.count--
	l.generation++

	return true
}

// Contains returns true if an element equal to the item is stored in the list.
func (l *SortedList[T]) Contains(item T) bool {
	return l.find(item) != nil
}

// Size returns the number of elements in the list.
func (l *SortedList[T]) Size() int {
	return l.count
}

// IsEmpty returns true if the list holds no elements.
func (l *SortedList[T]) IsEmpty() bool {
	return l.count == 0
}

// Begin returns an iterator that points to the first element (or an empty iterator if the list is empty).
func (l *SortedList[T]) Begin() ListIterator[T] {
	return newListIterator(l, l.head)
}

// End returns an iterator that points to the last element (or an empty iterator if the list is empty). Note that the
// iterator points at the last element and not behind it.
func (l *SortedList[T]) End() ListIterator[T] {
	return newListIterator(l, l.tail)
}

// Clear releases all nodes of the list.
func (l *SortedList[T]) Clear() {
	for current := l.head; current != nil; {
		next := current.next
		current.detach()
		current = next
	}

	l.head = nil
	l.tail = nil
	l.count = 0
	l.generation++
}

// Values returns the elements of the list in order.
func (l *SortedList[T]) Values() []T {
	values := make([]T, 0, l.count)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.value)
	}

	return values
}

// String returns a human-readable version of the list.
func (l *SortedList[T]) String() string {
	var builder strings.Builder
	for current := l.head; current != nil; current = current.next {
		if current != l.head {
			builder.WriteString(" ")
		}
		builder.WriteString(fmt.Sprint(current.value))
	}

	return builder.String()
}

func (l *SortedList[T]) find(item T) *node[T] {
	current := l.head
	for current != nil && current.value != item {
		current = current.next
	}

	return current
}

func (l *SortedList[T]) copyFrom(other *SortedList[T]) {
	for current := other.head; current != nil; current = current.next {
		l.Insert(current.value)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
