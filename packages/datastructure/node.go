package datastructure

import (
	"golang.org/x/exp/constraints"
)

// node is a single storage cell of a SortedList. Its links are only ever modified by the list that owns it.
type node[T constraints.Ordered] struct {
	value T
	prev  *node[T]
	next  *node[T]
	list  *SortedList[T]
}

func newNode[T constraints.Ordered](list *SortedList[T], value T) *node[T] {
	return &node[T]{
		value: value,
		list:  list,
	}
}

// detach cuts all links of a node that left its list.
func (n *node[T]) detach() {
	n.prev = nil
	n.next = nil
	n.list = nil
}
