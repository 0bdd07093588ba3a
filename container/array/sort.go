package array

import (
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/compare"
)

// Sort sorts the array in ascending natural order. The sort is not
// guaranteed to be stable.
func Sort[T constraints.Ordered](a *Array[T]) {
	a.SortFunc(compare.Less[T])
}

// StableSort sorts the array in ascending natural order, keeping equal
// elements in their original order.
func StableSort[T constraints.Ordered](a *Array[T]) {
	a.StableSortFunc(compare.Less[T])
}
