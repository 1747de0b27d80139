// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic operations of BigNumbers.
//
// The result of a binary operation has the larger precision of its two
// operands and is truncated toward zero. The receiver may alias either
// operand.

package bignumber

// Add sets z to the truncated sum x+y and returns z.
func (z *BigNumber) Add(x, y *BigNumber) *BigNumber {
	return z.add(x, y, y.neg)
}

// Sub sets z to the truncated difference x-y and returns z.
func (z *BigNumber) Sub(x, y *BigNumber) *BigNumber {
	return z.add(x, y, !y.neg)
}

// add sets z to x + (-1)**yneg × |y|.
func (z *BigNumber) add(x, y *BigNumber, yneg bool) *BigNumber {
	n := max(len(x.mant), len(y.mant))
	switch {
	case y.IsZero():
		return z.setMant(mant(nil).set(x.mant), x.exp, x.neg, n)
	case x.IsZero():
		return z.setMant(mant(nil).set(y.mant), y.exp, yneg, n)
	case x.neg == yneg:
		m, e := uadd(x, y, n)
		return z.setMant(m, e, x.neg, n)
	}
	// signs differ: subtract the smaller magnitude from the larger
	switch x.CmpAbs(y) {
	case 0:
		return z.setZero(n)
	case 1:
		m, e := usub(x, y, n)
		return z.setMant(m, e, x.neg, n)
	default:
		m, e := usub(y, x, n)
		return z.setMant(m, e, yneg, n)
	}
}

// align returns the mantissas of the non-zero x and y laid out over a
// common exponent lo, with one spare word on top for a carry. Words of an
// operand lying more than n+2 words below the top of the result cannot
// affect the truncated result beyond a borrow: they are folded into a
// single sticky word.
func align(x, y *BigNumber, n int) (a, b mant, lo int64) {
	xm, ym := x.mant.norm(), y.mant.norm()
	hi := max(x.exp+int64(len(xm)), y.exp+int64(len(ym)))
	floor := hi - int64(n) - 2
	xm, xe := sticky(xm, x.exp, floor)
	ym, ye := sticky(ym, y.exp, floor)
	lo = min(xe, ye)
	width := hi - lo + 1
	a = make(mant, width)
	copy(a[xe-lo:], xm)
	b = make(mant, width)
	copy(b[ye-lo:], ym)
	return a, b, lo
}

// sticky returns m×(2**64)**e with every word below floor replaced by a
// single word at floor-1 which is 1 if any of them was non-zero.
func sticky(m mant, e, floor int64) (mant, int64) {
	if e >= floor {
		return m, e
	}
	k := floor - e
	if k >= int64(len(m)) {
		return mant{1}, floor - 1
	}
	r := make(mant, int64(len(m))-k+1)
	if !m[:k].isZero() {
		r[0] = 1
	}
	copy(r[1:], m[k:])
	return r, floor - 1
}

// uadd returns |x|+|y| over exponent e.
func uadd(x, y *BigNumber, n int) (m mant, e int64) {
	a, b, lo := align(x, y, n)
	addVV(a, a, b) // the spare top word absorbs the carry
	return a, lo
}

// usub returns |x|-|y| over exponent e. |x| must be > |y|.
func usub(x, y *BigNumber, n int) (m mant, e int64) {
	a, b, lo := align(x, y, n)
	if subVV(a, a, b) != 0 {
		panic("bignumber: usub underflow")
	}
	return a, lo
}

// Mul sets z to the truncated product x*y and returns z.
func (z *BigNumber) Mul(x, y *BigNumber) *BigNumber {
	n := max(len(x.mant), len(y.mant))
	if x.IsZero() || y.IsZero() {
		return z.setZero(n)
	}
	m := mant(nil).mul(x.mant.norm(), y.mant.norm())
	return z.setMant(m, x.exp+y.exp, x.neg != y.neg, n)
}

// Quo sets z to the truncated quotient x/y and returns z. Quo panics with
// ErrDivisionByZero if y == 0.
func (z *BigNumber) Quo(x, y *BigNumber) *BigNumber {
	n := max(len(x.mant), len(y.mant))
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	if x.IsZero() {
		return z.setZero(n)
	}
	u, v := x.mant.norm(), y.mant.norm()
	// shift u up so that the quotient has n+1 significant words
	s := max(n+1+len(v)-len(u), 0)
	un := make(mant, len(u)+s)
	copy(un[s:], u)
	q, _ := mant(nil).div(un, v)
	return z.setMant(q, x.exp-y.exp-int64(s), x.neg != y.neg, n)
}

// MulUint64 sets z to the truncated product x*y and returns z.
func (z *BigNumber) MulUint64(x *BigNumber, y uint64) *BigNumber {
	n := len(x.mant)
	m := mant(nil).mulW(x.mant.norm(), Word(y))
	return z.setMant(m, x.exp, x.neg, n)
}

// QuoUint64 sets z to the truncated quotient x/y and returns z. It panics
// with ErrDivisionByZero if y == 0.
func (z *BigNumber) QuoUint64(x *BigNumber, y uint64) *BigNumber {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	n := len(x.mant)
	u := x.mant.norm()
	s := n + 1
	un := make(mant, len(u)+s)
	copy(un[s:], u)
	q, _ := un.divW(un, Word(y))
	return z.setMant(q, x.exp-int64(s), x.neg, n)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// The comparison is exact, regardless of the precisions of x and y.
func (x *BigNumber) Cmp(y *BigNumber) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	r := x.CmpAbs(y)
	if xs < 0 {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
func (x *BigNumber) CmpAbs(y *BigNumber) int {
	xm, ym := x.mant.norm(), y.mant.norm()
	switch {
	case len(xm) == 0 && len(ym) == 0:
		return 0
	case len(xm) == 0:
		return -1
	case len(ym) == 0:
		return 1
	}
	// the top word is non-zero: compare positions first
	xt, yt := x.exp+int64(len(xm)), y.exp+int64(len(ym))
	if xt != yt {
		if xt < yt {
			return -1
		}
		return 1
	}
	i, j := len(xm)-1, len(ym)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if xm[i] != ym[j] {
			if xm[i] < ym[j] {
				return -1
			}
			return 1
		}
	}
	// equal prefix: the longer one has more (non-zero) low words
	switch {
	case i >= 0 && !xm[:i+1].isZero():
		return 1
	case j >= 0 && !ym[:j+1].isZero():
		return -1
	}
	return 0
}
