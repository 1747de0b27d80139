package math

import (
	"errors"

	bignumber "github.com/Ask4r/BigNumber"
)

// ErrNonConvergence is returned by series evaluations that did not settle
// within their iteration bound.
var ErrNonConvergence = errors.New("bignumber/math: series did not converge")

const (
	wordBits      = 64 // precision of one mantissa word
	maxReductions = 63 // bound on argument halvings in Atan, keeps 1<<r in a word
)

// withPrec returns a copy of x with its precision changed to prec.
func withPrec(x *bignumber.BigNumber, prec uint) *bignumber.BigNumber {
	return new(bignumber.BigNumber).Set(x).SetPrec(prec)
}

// negligible reports whether t lies entirely below the precision window of
// s, give or take slack words, so that adding it can no longer change s
// beyond a borrow from its lowest word.
func negligible(t, s *bignumber.BigNumber, slack int64) bool {
	switch {
	case t.IsZero():
		return true
	case s.IsZero():
		return false
	}
	words := int64(s.Prec() / wordBits)
	return t.Magnitude() <= s.Magnitude()-words+slack
}

// Pow sets z to x**n by binary exponentiation and returns z. Every product
// is truncated to the precision of x. Pow(z, x, 0) is 1 for any x.
func Pow(z, x *bignumber.BigNumber, n uint64) *bignumber.BigNumber {
	prec := x.Prec()
	if n == 0 {
		return z.Set(bignumber.New(prec).SetUint64(1))
	}
	var (
		y = bignumber.New(prec).SetUint64(1)
		b = new(bignumber.BigNumber).Set(x)
	)
	for n > 1 {
		if n%2 != 0 {
			y.Mul(y, b)
		}
		b.Mul(b, b)
		n /= 2
	}
	return z.Mul(b, y)
}

// Factorial sets z to x! and returns z. The result has the precision of x
// and is 0 if x is negative or not an integer. 0! is 1.
func Factorial(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	prec := x.Prec()
	if x.IsNegative() || !x.IsInt() {
		return z.Set(bignumber.New(prec))
	}
	var (
		r   = bignumber.New(prec).SetUint64(1)
		one = bignumber.New(prec).SetUint64(1)
		i   = bignumber.New(prec).SetUint64(1)
	)
	for ; i.Cmp(x) <= 0; i.Add(i, one) {
		r.Mul(r, i)
	}
	return z.Set(r)
}
