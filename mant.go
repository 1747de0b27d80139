// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

// mant is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with _B = 2**64, 0 <= x[i] < _B and 0 <= i < n, stored in a slice of length
// n with the digits x[i] as the slice elements.
//
// The mantissa of a BigNumber is a mant of fixed length (the precision in
// words). It may contain leading zero words; norm strips them when a
// minimal representation is needed. Unlike big.nat, the empty or nil slice
// and an all-zero slice both represent 0.
type mant []Word

// norm returns z with its leading zero words truncated.
func (z mant) norm() mant {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z mant) make(n int) mant {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most mants start small and stay that way; don't over-allocate.
		return make(mant, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mant, n, n+e)
}

// set returns a copy of x that does not share storage with x.
func (z mant) set(x mant) mant {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z mant) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (x mant) isZero() bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// lsw returns the index of the least significant non-zero word of x, or
// len(x) if x is zero.
func (x mant) lsw() int {
	for i, w := range x {
		if w != 0 {
			return i
		}
	}
	return len(x)
}

// cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Comparison is lexicographic from the most significant word down. Vectors
// of different lengths are compared by value.
func (x mant) cmp(y mant) (r int) {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case m == 0:
		// both zero
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// mul sets z = x*y using schoolbook multiplication and returns z. The result
// has exactly len(x)+len(y) words. z must not alias x or y.
func (z mant) mul(x, y mant) mant {
	m, n := len(x), len(y)
	z = z.make(m + n)
	z.clear()
	if m == 0 || n == 0 {
		return z
	}
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}
	return z
}

// mulW sets z = x*y and returns z. The result has len(x)+1 words.
func (z mant) mulW(x mant, y Word) mant {
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z
}

// divW sets z = x/y and returns z and the remainder. z has len(x) words.
func (z mant) divW(x mant, y Word) (q mant, r Word) {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	z = z.make(len(x))
	r = divWVW(z, 0, x, y)
	return z, r
}

// shl shifts x left by s bits into z, keeping len(x) words: whole words
// move up by s/_W positions with zero fill, then the remaining s%_W bits are
// shifted with inter-word carry. Bits shifted out of the top are lost.
func (z mant) shl(x mant, s uint) mant {
	n := len(x)
	z = z.make(n)
	nw, nb := int(s/_W), s%_W
	if nw >= n {
		z.clear()
		return z
	}
	copy(z[nw:], x[:n-nw])
	for i := 0; i < nw; i++ {
		z[i] = 0
	}
	shlVU(z[nw:], z[nw:], nb)
	return z
}

// shr shifts x right by s bits into z, keeping len(x) words. Bits shifted
// out of the bottom are lost.
func (z mant) shr(x mant, s uint) mant {
	n := len(x)
	z = z.make(n)
	nw, nb := int(s/_W), s%_W
	if nw >= n {
		z.clear()
		return z
	}
	copy(z[:n-nw], x[nw:])
	for i := n - nw; i < n; i++ {
		z[i] = 0
	}
	shrVU(z[:n-nw], z[:n-nw], nb)
	return z
}

// normalize reduces x to exactly n words and returns the result and the
// number of low words dropped, which the caller adds to its exponent.
//
// At most n significant words are kept: if x is wider, its least
// significant words are discarded (truncation). Trailing zero words are
// dropped as well, so that a value that fits has a non-zero lowest word.
// The result is zero padded to n words. A zero x yields n zero words and a
// shift of 0.
func (x mant) normalize(n int) (mant, int64) {
	top := len(x.norm())
	if top == 0 {
		z := x.make(n)
		z.clear()
		return z, 0
	}
	shift := x.lsw()
	if top-n > shift {
		shift = top - n
	}
	var z mant
	if len(x) >= n {
		z = x
		copy(z, x[shift:top])
		z = z[:n]
	} else {
		z = make(mant, n)
		copy(z, x[shift:top])
	}
	for i := top - shift; i < n; i++ {
		z[i] = 0
	}
	return z, int64(shift)
}
