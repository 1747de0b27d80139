package math

import (
	bignumber "github.com/Ask4r/BigNumber"
)

// Atan sets z to the arctangent of x, in radians, and returns z. The result
// has the precision of x and is truncated.
//
// The argument is first reduced with atan x = 2·atan(x/(1+√(1+x²))) until
// |x| <= 1/8, then the alternating Taylor series is summed until two
// successive terms fall below the precision of the sum. If that does not
// happen within the iteration bound, Atan returns ErrNonConvergence and z
// is left unchanged.
func Atan(z, x *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	prec := x.Prec()
	if x.IsZero() {
		return z.Set(bignumber.New(prec)), nil
	}

	var (
		p      = prec + wordBits // one guard word
		neg    = x.IsNegative()
		y      = withPrec(x, p)
		one    = bignumber.New(p).SetUint64(1)
		eighth = bignumber.New(p).SetFloat64(0.125)
		t      = bignumber.New(p)
	)
	y.Abs(y)

	var r uint
	for y.Cmp(eighth) > 0 {
		if r == maxReductions {
			return z, ErrNonConvergence
		}
		// y = y / (1 + √(1 + y²))
		t.Mul(y, y)
		t.Sqrt(t.Add(t, one))
		y.Quo(y, t.Add(t, one))
		r++
	}

	// atan y = y - y³/3 + y⁵/5 - ...
	var (
		y2   = bignumber.New(p).Mul(y, y)
		pw   = withPrec(y, p) // y**(2k+1)
		sum  = withPrec(y, p)
		term = bignumber.New(p)
		iter = uint64(p)
	)
	quiet := 0
	for k := uint64(1); quiet < 2; k++ {
		if k > iter {
			return z, ErrNonConvergence
		}
		pw.Mul(pw, y2)
		term.QuoUint64(pw, 2*k+1)
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if negligible(term, sum, 0) {
			quiet++
		} else {
			quiet = 0
		}
	}

	sum.MulUint64(sum, 1<<r)
	if neg {
		sum.Neg(sum)
	}
	return z.Set(sum.SetPrec(prec)), nil
}
