package fn

import (
	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// MaxFactorial is the largest n for which n! fits in a uint64.
const MaxFactorial = 20

// factorials holds n! for n in [0, MaxFactorial], computed once at package
// initialization.
var factorials = func() [MaxFactorial + 1]uint64 {
	var table [MaxFactorial + 1]uint64
	table[0] = 1
	for n := uint64(1); n <= MaxFactorial; n++ {
		table[n] = n * table[n-1]
	}
	return table
}()

// Factorial returns n!. Values of n above MaxFactorial overflow a uint64
// and fail with errs.ErrOutOfRange.
func Factorial(n uint64) (uint64, error) {
	if n > MaxFactorial {
		return 0, errors.Wrapf(errs.ErrOutOfRange, "%d! overflows uint64", n)
	}
	return factorials[n], nil
}
