package list

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyds/collections/compare"
)

func TestSort(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T)
	}{
		{
			scenario: "sorting an empty list is a no-op",
			function: testSortEmpty,
		},

		{
			scenario: "sorting small lists produces ascending order",
			function: testSortSmall,
		},

		{
			scenario: "sorting an already sorted list leaves it unchanged",
			function: testSortIdempotent,
		},

		{
			scenario: "elements comparing as equal keep their original order",
			function: testSortStable,
		},

		{
			scenario: "a custom predicate reverses the order",
			function: testSortReversed,
		},

		{
			scenario: "sorting a multiplicative permutation restores 1..n-1",
			function: testSortPrimitiveRoot,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) { test.function(t) })
	}
}

func testSortEmpty(t *testing.T) {
	l := New[int64]()
	Sort(l)
	assertChain(t, l)
}

func testSortSmall(t *testing.T) {
	l := Of[int64](7)
	Sort(l)
	assertChain(t, l, 7)

	l = Of[int64](7, 6)
	Sort(l)
	assertChain(t, l, 6, 7)

	l = Of[int64](6, 7, 1, 5, 3, 2, 4)
	Sort(l)
	assertChain(t, l, 1, 2, 3, 4, 5, 6, 7)
}

func testSortIdempotent(t *testing.T) {
	l := Of(1, 2, 2, 3, 5, 8, 13)
	Sort(l)
	assertChain(t, l, 1, 2, 2, 3, 5, 8, 13)
	Sort(l)
	assertChain(t, l, 1, 2, 2, 3, 5, 8, 13)
}

func testSortStable(t *testing.T) {
	// Sorting by tens bucket only must preserve the original relative order
	// within each bucket: the result equals the input pre-sorted by full
	// value within buckets.
	want := Of(10, 12, 11, 22, 28, 24, 20, 26, 31, 39)
	got := Of(22, 10, 31, 28, 24, 39, 12, 20, 11, 26)
	got.SortFunc(func(a, b int) bool { return a/10 < b/10 })
	require.True(t, Equal(want, got), "want %v, got %v", want, got)

	// Same property comparing only the first letter of strings.
	words := Of("art", "center", "bats", "coat", "ant", "curve", "apple", "bat", "bark")
	words.SortFunc(func(a, b string) bool { return a[0] < b[0] })
	assertChain(t, words, "art", "ant", "apple", "bats", "bat", "bark", "center", "coat", "curve")
}

func testSortReversed(t *testing.T) {
	l := Of(3, 1, 4, 1, 5, 9, 2, 6)
	l.SortFunc(compare.Greater[int])
	assertChain(t, l, 9, 6, 5, 4, 3, 2, 1, 1)

	l.SortFunc(compare.Reversed(compare.Greater[int]))
	assertChain(t, l, 1, 1, 2, 3, 4, 5, 6, 9)
}

func testSortPrimitiveRoot(t *testing.T) {
	// 42 is a primitive root mod 1103, so the successive powers visit every
	// residue 1..1102 exactly once.
	const mod = 1103
	l := New[int64]()
	x := int64(1)
	for i := 1; i < mod; i++ {
		x = (x * 42) % mod
		l.PushBack(x)
	}
	desc := l.Clone()

	Sort(l)
	desc.SortFunc(compare.Greater[int64])

	up, down := l.Begin(), desc.Begin()
	for i := int64(1); i < mod; i++ {
		v, err := up.Value()
		require.NoError(t, err)
		require.Equal(t, i, v)

		w, err := down.Value()
		require.NoError(t, err)
		require.Equal(t, mod-i, w)

		up, down = up.Next(), down.Next()
	}
	assert.True(t, up.Eq(l.End()))
	assert.True(t, down.Eq(desc.End()))
}

func TestSortMatchesReference(t *testing.T) {
	// Sorting a list agrees with the standard library's stable sort over the
	// same values, including ties (all values are taken mod 10 so that
	// duplicates are frequent).
	err := quick.Check(func(values []int) bool {
		for i := range values {
			values[i] %= 10
		}

		l := Of(values...)
		Sort(l)

		ref := append([]int(nil), values...)
		sort.SliceStable(ref, func(i, j int) bool { return ref[i] < ref[j] })

		return Equal(l, Of(ref...))
	}, nil)
	assert.NoError(t, err)
}
