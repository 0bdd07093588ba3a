package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/compare"
)

// Sort sorts the vector in ascending natural order. The sort is not
// guaranteed to be stable.
func Sort[T constraints.Ordered](v *Vector[T]) {
	v.SortFunc(compare.Less[T])
}

// StableSort sorts the vector in ascending natural order, keeping equal
// elements in their original order.
func StableSort[T constraints.Ordered](v *Vector[T]) {
	v.StableSortFunc(compare.Less[T])
}
