package math

import bignumber "github.com/Ask4r/BigNumber"

// Sqrt sets z to the square root of x, truncated to the precision of x, and
// returns it.
//
// The function panics with bignumber.ErrNegativeSqrt if x < 0. The value of
// z is undefined in that case.
//
// This function is a proxy for z.Sqrt(x)
func Sqrt(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return z.Sqrt(x)
}

// Floor sets z to x truncated toward zero and returns z.
//
// This function is a proxy for z.Floor(x)
func Floor(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return z.Floor(x)
}

// Ceil sets z to x rounded to an integer away from zero and returns z.
//
// This function is a proxy for z.Ceil(x)
func Ceil(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return z.Ceil(x)
}
