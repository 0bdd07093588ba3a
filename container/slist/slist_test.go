package slist

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyds/collections/compare"
	"github.com/polyds/collections/errs"
)

// assertChain verifies the structural invariants of the node chain: the
// size matches the number of reachable nodes, the forward walk ends at the
// tail, and the values appear in the expected order.
func assertChain[T comparable](t *testing.T, l *List[T], want ...T) {
	t.Helper()

	require.Equal(t, len(want), l.size, "list length mismatch")

	if len(want) == 0 {
		assert.Nil(t, l.head, "empty list must have no head")
		assert.Nil(t, l.tail, "empty list must have no tail")
		return
	}

	i, n := 0, l.head
	for ; n != nil; i, n = i+1, n.next {
		require.Less(t, i, len(want), "list contains too many elements")
		assert.Equal(t, want[i], n.value, "element at index %d", i)
		if n.next == nil {
			require.Same(t, l.tail, n, "forward walk must end at tail")
		}
	}
	require.Equal(t, len(want), i, "wrong number of elements")
	assert.Nil(t, l.tail.next, "tail must have no successor")
}

func TestList(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T)
	}{
		{
			scenario: "a new list is empty and renders as SLList[]",
			function: testListEmpty,
		},

		{
			scenario: "constructors produce the requested elements in order",
			function: testListConstruct,
		},

		{
			scenario: "push and pop maintain the chain at both ends",
			function: testListPushPop,
		},

		{
			scenario: "indexed access supports negative indexes and rejects out of bounds",
			function: testListGet,
		},

		{
			scenario: "forward iteration visits every element and stops at the sentinel",
			function: testListIter,
		},

		{
			scenario: "insert before the head, the sentinel and interior positions",
			function: testListInsert,
		},

		{
			scenario: "erase relinks the chain around the removed element",
			function: testListErase,
		},

		{
			scenario: "reverse flips the chain in place",
			function: testListReverse,
		},

		{
			scenario: "concatenation copies values and splicing empties the source",
			function: testListConcat,
		},

		{
			scenario: "sorting is stable and orders the elements",
			function: testListSort,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) { test.function(t) })
	}
}

func testListEmpty(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
	assert.True(t, l.Begin().Eq(l.End()))
	assert.Equal(t, "SLList[]", l.String())

	_, err := l.PopFront()
	require.ErrorIs(t, err, errs.ErrEmptyContainer)

	_, err = l.Begin().Value()
	require.ErrorIs(t, err, errs.ErrDereference)
}

func testListConstruct(t *testing.T) {
	assertChain(t, Of(1, 2, 3), 1, 2, 3)

	r, err := Repeat("x", 3)
	require.NoError(t, err)
	assertChain(t, r, "x", "x", "x")

	_, err = Repeat("x", -1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	f := FromFunc(4, func(i int) int { return i * i })
	assertChain(t, f, 0, 1, 4, 9)
	assert.Equal(t, "SLList[0,1,4,9]", f.String())

	c := f.Clone()
	assert.True(t, Equal(c, f))
	c.PushBack(16)
	assert.False(t, Equal(c, f))
}

func testListPushPop(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assertChain(t, l, 1, 2, 3)

	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assertChain(t, l, 2, 3)

	l.Clear()
	assertChain(t, l)
}

func testListGet(t *testing.T) {
	l := Of(10, 20, 30)

	for i := int64(0); i < 3; i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		w, err := l.Get(i - 3)
		require.NoError(t, err)
		assert.Equal(t, v, w)
	}

	_, err := l.Get(3)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	_, err = l.Get(-4)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func testListIter(t *testing.T) {
	l := Of(1, 2, 3)

	it := l.Begin()
	for _, want := range []int{1, 2, 3} {
		v, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, want, v)

		next, err := it.Next()
		require.NoError(t, err)
		it = next
	}
	assert.True(t, it.Eq(l.End()))

	// This iterator is not cyclic: advancing the sentinel is an error.
	_, err := it.Next()
	require.ErrorIs(t, err, errs.ErrInvalidIterator)
}

func testListInsert(t *testing.T) {
	l := New[int]()

	it := l.Insert(l.Begin(), 2)
	assert.True(t, it.Eq(l.Begin()))
	it = l.Insert(l.Begin(), 1)
	assert.True(t, it.Eq(l.Begin()))
	assertChain(t, l, 1, 2)

	it = l.Insert(l.End(), 4)
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assertChain(t, l, 1, 2, 4)

	// Interior insert before the tail.
	pos, err := l.Begin().Next()
	require.NoError(t, err)
	pos, err = pos.Next()
	require.NoError(t, err)
	it = l.Insert(pos, 3)
	v, err = it.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assertChain(t, l, 1, 2, 3, 4)
}

func testListErase(t *testing.T) {
	l := Of(1, 2, 3, 4)

	// Erase the head.
	it, err := l.Erase(l.Begin())
	require.NoError(t, err)
	assert.True(t, it.Eq(l.Begin()))
	assertChain(t, l, 2, 3, 4)

	// Erase an interior element; returned iterator designates the
	// successor.
	pos, err := l.Begin().Next()
	require.NoError(t, err)
	it, err = l.Erase(pos)
	require.NoError(t, err)
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assertChain(t, l, 2, 4)

	// Erase the tail; returned iterator is the sentinel and the tail link
	// moves back.
	it, err = l.Erase(it)
	require.NoError(t, err)
	assert.True(t, it.Eq(l.End()))
	assertChain(t, l, 2)

	_, err = l.Erase(l.End())
	require.ErrorIs(t, err, errs.ErrInvalidIterator)
}

func testListReverse(t *testing.T) {
	l := New[int]()
	l.Reverse()
	assertChain(t, l)

	l = Of(1)
	l.Reverse()
	assertChain(t, l, 1)

	l = Of(1, 2, 3, 4, 5)
	l.Reverse()
	assertChain(t, l, 5, 4, 3, 2, 1)
	l.Reverse()
	assertChain(t, l, 1, 2, 3, 4, 5)
}

func testListConcat(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4)

	a.Concat(b)
	assertChain(t, a, 1, 2, 3, 4)
	assertChain(t, b, 3, 4)

	a.ConcatMove(b)
	assertChain(t, a, 1, 2, 3, 4, 3, 4)
	assertChain(t, b)

	c := New[int]()
	c.ConcatMove(a)
	assertChain(t, c, 1, 2, 3, 4, 3, 4)
	assertChain(t, a)
}

func testListSort(t *testing.T) {
	l := New[int64]()
	Sort(l)
	assertChain(t, l)

	l = Of[int64](6, 7, 1, 5, 3, 2, 4)
	Sort(l)
	assertChain(t, l, 1, 2, 3, 4, 5, 6, 7)

	// Stability: sorting by tens bucket preserves the original relative
	// order within each bucket.
	got := Of(22, 10, 31, 28, 24, 39, 12, 20, 11, 26)
	got.SortFunc(func(a, b int) bool { return a/10 < b/10 })
	want := Of(10, 12, 11, 22, 28, 24, 20, 26, 31, 39)
	assert.True(t, Equal(want, got), "want %v, got %v", want, got)

	desc := Of(3, 1, 2)
	desc.SortFunc(compare.Greater[int])
	assertChain(t, desc, 3, 2, 1)
}

func TestListLengthInvariant(t *testing.T) {
	err := quick.Check(func(ops []uint8) bool {
		l := New[int]()
		count := 0
		for i, op := range ops {
			switch op % 4 {
			case 0:
				l.PushFront(i)
				count++
			case 1:
				l.PushBack(i)
				count++
			case 2:
				if _, err := l.PopFront(); err == nil {
					count--
				}
			case 3:
				l.Insert(l.Begin(), i)
				count++
			}
		}
		if l.Len() != count {
			return false
		}
		n := 0
		l.Range(func(int) bool { n++; return true })
		return n == count
	}, nil)
	assert.NoError(t, err)
}
