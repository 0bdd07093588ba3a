package fn

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyds/collections/errs"
)

func TestOperators(t *testing.T) {
	assert.Equal(t, 7, Add(3, 4))
	assert.Equal(t, "ab", Add("a", "b"))
	assert.Equal(t, -1, Sub(3, 4))
	assert.Equal(t, 12, Mul(3, 4))
	assert.Equal(t, 2.5, Div(5.0, 2.0))
	assert.Equal(t, 1, Mod(7, 3))

	assert.Equal(t, 0b1000, BitAnd(0b1100, 0b1010))
	assert.Equal(t, 0b1110, BitOr(0b1100, 0b1010))
	assert.Equal(t, 0b0110, BitXor(0b1100, 0b1010))
	assert.Equal(t, uint8(0b11110011), BitNot(uint8(0b00001100)))
	assert.Equal(t, 12, Shl(3, 2))
	assert.Equal(t, 3, Shr(12, 2))

	assert.True(t, And(true, true))
	assert.False(t, And(true, false))
	assert.True(t, Or(false, true))
	assert.False(t, Or(false, false))
	assert.True(t, Not(false))

	assert.Equal(t, -3, Neg(3))
	assert.Equal(t, 1.5, Neg(-1.5))

	assert.True(t, Lt(1, 2))
	assert.False(t, Lt(2, 2))
	assert.True(t, Le(2, 2))
	assert.True(t, Gt("b", "a"))
	assert.True(t, Ge("a", "a"))
	assert.True(t, Eq(1, 1))
	assert.True(t, Ne(1, 2))
}

func TestMapFilter(t *testing.T) {
	assert.Equal(t, []int{1, 4, 9}, Map(func(x int) int { return x * x }, []int{1, 2, 3}))
	assert.Equal(t, []string{"1", "2"}, Map(strconv.Itoa, []int{1, 2}))

	even := func(x int) bool { return x%2 == 0 }
	assert.Equal(t, []int{2, 4}, Filter(even, []int{1, 2, 3, 4, 5}))
	assert.Nil(t, Filter(even, []int{1, 3}))
}

func TestFolds(t *testing.T) {
	assert.Equal(t, 10, Foldl0(Add[int], 0, []int{1, 2, 3, 4}))
	assert.Equal(t, 24, Foldl0(Mul[int], 1, []int{1, 2, 3, 4}))
	assert.Equal(t, 0, Foldl0(Add[int], 0, nil))

	// Left and right folds associate differently.
	assert.Equal(t, (((10-1)-2)-3), Foldl0(Sub[int], 10, []int{1, 2, 3}))
	assert.Equal(t, (1-(2-(3-10))), Foldr0(Sub[int], 10, []int{1, 2, 3}))

	v, err := Foldl1(Add[string], []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	w, err := Foldr1(Sub[int], []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1-(2-3), w)

	_, err = Foldl1(Add[int], nil)
	require.ErrorIs(t, err, errs.ErrEmptyContainer)
	_, err = Foldr1(Add[int], []int{})
	require.ErrorIs(t, err, errs.ErrEmptyContainer)
}

func TestFactorial(t *testing.T) {
	want := []uint64{
		1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
		39916800, 479001600, 6227020800, 87178291200, 1307674368000,
		20922789888000, 355687428096000, 6402373705728000,
		121645100408832000, 2432902008176640000,
	}
	for n, expected := range want {
		got, err := Factorial(uint64(n))
		require.NoError(t, err)
		assert.Equal(t, expected, got, "%d!", n)
	}

	_, err := Factorial(MaxFactorial + 1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}
