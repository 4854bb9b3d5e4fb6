package datastructure

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIterator_Forward(t *testing.T) {
	sortedList := newTestList(5, 3, 8, 3)

	iterator := sortedList.Begin()
	require.True(t, iterator.IsFirstNode())

	values := make([]int, 0)
	for !iterator.IsEmpty() {
		values = append(values, iterator.MustValue())
		iterator.Next()
	}
	assert.Equal(t, []int{3, 3, 5, 8}, values)

	// stepping an empty iterator keeps it empty
	iterator.Next()
	assert.True(t, iterator.IsEmpty())
}

func TestListIterator_Backward(t *testing.T) {
	sortedList := newTestList(5, 3, 8, 3)

	iterator := sortedList.End()
	require.True(t, iterator.IsLastNode())

	values := make([]int, 0)
	for !iterator.IsEmpty() {
		values = append(values, iterator.MustValue())
		iterator.Prev()
	}
	assert.Equal(t, []int{8, 5, 3, 3}, values)

	iterator.Prev()
	assert.True(t, iterator.IsEmpty())
}

func TestListIterator_ForwardAndBackwardAreReversed(t *testing.T) {
	sortedList := newTestList(9, -1, 4, 4, 0, 12, 4, 7)

	forward := make([]int, 0)
	for iterator := sortedList.Begin(); !iterator.IsEmpty(); iterator.Next() {
		forward = append(forward, iterator.MustValue())
	}

	backward := make([]int, 0)
	for iterator := sortedList.End(); !iterator.IsEmpty(); iterator.Prev() {
		backward = append(backward, iterator.MustValue())
	}

	require.Len(t, backward, len(forward))
	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestListIterator_Positions(t *testing.T) {
	sortedList := newTestList(1, 2, 3)

	iterator := sortedList.Begin()
	assert.True(t, iterator.IsFirstNode())
	assert.False(t, iterator.IsLastNode())

	iterator.Next()
	assert.False(t, iterator.IsFirstNode())
	assert.False(t, iterator.IsLastNode())

	iterator.Next()
	assert.False(t, iterator.IsFirstNode())
	assert.True(t, iterator.IsLastNode())

	iterator.Next()
	assert.True(t, iterator.IsEmpty())
	assert.False(t, iterator.IsFirstNode())
	assert.False(t, iterator.IsLastNode())

	iterator.Start()
	assert.True(t, iterator.IsFirstNode())
	assert.Equal(t, 1, iterator.MustValue())

	single := newTestList(7)
	singleIterator := single.Begin()
	assert.True(t, singleIterator.IsFirstNode())
	assert.True(t, singleIterator.IsLastNode())
}

func TestListIterator_InvalidAccess(t *testing.T) {
	emptyList := New[int]()

	begin := emptyList.Begin()
	assert.True(t, begin.IsEmpty())
	_, err := begin.Value()
	assert.True(t, errors.Is(err, ErrInvalidAccess))

	end := emptyList.End()
	_, err = end.Value()
	assert.True(t, errors.Is(err, ErrInvalidAccess))

	sortedList := newTestList(1)
	pastLast := sortedList.Begin()
	pastLast.Next()
	_, err = pastLast.Value()
	assert.True(t, errors.Is(err, ErrInvalidAccess))

	beforeFirst := sortedList.Begin()
	beforeFirst.Prev()
	assert.Panics(t, func() { beforeFirst.MustValue() })
}

func TestListIterator_Copy(t *testing.T) {
	sortedList := newTestList(1, 2, 3)

	iterator := sortedList.Begin()
	previous := iterator
	iterator.Next()

	assert.Equal(t, 1, previous.MustValue())
	assert.Equal(t, 2, iterator.MustValue())
}

func TestListIterator_Stale(t *testing.T) {
	sortedList := newTestList(1, 2, 3)

	iterator := sortedList.Begin()
	iterator.Next()
	require.Equal(t, 2, iterator.MustValue())

	require.True(t, sortedList.Remove(2))
	assert.True(t, iterator.IsStale())

	_, err := iterator.Value()
	assert.True(t, errors.Is(err, ErrStaleIterator))

	assert.False(t, iterator.IsFirstNode())
	assert.False(t, iterator.IsLastNode())

	// moving a stale iterator empties it
	iterator.Next()
	assert.True(t, iterator.IsEmpty())
	_, err = iterator.Value()
	assert.True(t, errors.Is(err, ErrInvalidAccess))

	iterator.Start()
	assert.False(t, iterator.IsStale())
	assert.Equal(t, 1, iterator.MustValue())

	// failed removals are no structural modification
	assert.False(t, sortedList.Remove(99))
	assert.False(t, iterator.IsStale())

	sortedList.Insert(0)
	assert.True(t, iterator.IsStale())

	end := sortedList.End()
	sortedList.Clear()
	_, err = end.Value()
	assert.True(t, errors.Is(err, ErrStaleIterator))

	end.Start()
	assert.True(t, end.IsEmpty())
}

func TestListIterator_StaleTraversalTerminates(t *testing.T) {
	for name, mutate := range map[string]func(sortedList *SortedList[int]){
		"insert": func(sortedList *SortedList[int]) { sortedList.Insert(3) },
		"remove": func(sortedList *SortedList[int]) { sortedList.Remove(1) },
		"clear":  func(sortedList *SortedList[int]) { sortedList.Clear() },
		"assign": func(sortedList *SortedList[int]) { sortedList.Assign(newTestList(7, 8, 9)) },
	} {
		t.Run(name, func(t *testing.T) {
			sortedList := newTestList(1, 2, 4, 5)

			forward := sortedList.Begin()
			backward := sortedList.End()
			mutate(sortedList)

			steps := 0
			for !forward.IsEmpty() {
				forward.Next()
				steps++
				require.LessOrEqual(t, steps, 1)
			}

			steps = 0
			for !backward.IsEmpty() {
				backward.Prev()
				steps++
				require.LessOrEqual(t, steps, 1)
			}

			forward.Start()
			assert.False(t, forward.IsStale())
			assert.Equal(t, sortedList.Values(), collect(forward))
		})
	}
}

func TestListIterator_ZeroValue(t *testing.T) {
	var iterator ListIterator[int]

	assert.True(t, iterator.IsEmpty())
	assert.False(t, iterator.IsStale())
	assert.False(t, iterator.IsFirstNode())
	assert.False(t, iterator.IsLastNode())

	iterator.Next()
	iterator.Prev()
	iterator.Start()
	assert.True(t, iterator.IsEmpty())

	_, err := iterator.Value()
	assert.True(t, errors.Is(err, ErrInvalidAccess))
}

func collect(iterator ListIterator[int]) []int {
	values := make([]int, 0)
	for ; !iterator.IsEmpty(); iterator.Next() {
		values = append(values, iterator.MustValue())
	}

	return values
}

func newTestList(items ...int) *SortedList[int] {
	sortedList := New[int]()
	for _, item := range items {
		sortedList.Insert(item)
	}

	return sortedList
}
