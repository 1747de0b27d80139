// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

import "math/bits"

// A Word represents a single digit of a mantissa in base 2**64.
type Word uint64

const (
	_S = 8         // word size in bytes
	_W = 64        // word size in bits
	_M = 1<<_W - 1 // digit mask

	// Largest power of 10 that fits in a Word and its number of digits.
	_DB = 10000000000000000000
	_DW = 19
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func pow10(n int) Word {
	return Word(pow10tab[n])
}

//-----------------------------------------------------------------------------
// Elementary operations on words
//
// These operations are used by the vector operations below.
// The comment near the top of math/big's arith.go discusses the loop
// conditions of the vector operations: they iterate over the shortest of
// their arguments so that the bounds checks can be eliminated.

// z1<<_W + z0 = x*y
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Word(hi), Word(lo)
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	var cc uint64
	lo, cc = bits.Add64(lo, uint64(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v. u1 must be < v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div64(uint64(u1), uint64(u0), uint64(v))
	return Word(qq), Word(rr)
}

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2)
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

//-----------------------------------------------------------------------------
// Vector operations

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add64(uint64(x[i]), uint64(y[i]), uint64(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1. A borrow means x < y and z holds
// the two's complement deficit.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub64(uint64(x[i]), uint64(y[i]), uint64(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW sets z = x + y and returns the carry, 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add64(uint64(x[i]), uint64(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return
}

// subVW sets z = x - y and returns the borrow, 0 or 1.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Sub64(uint64(x[i]), uint64(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return
}

// shlVU sets z to x<<s, 0 < s < _W, and returns the bits shifted out of the
// top word. z and x may be the same slice.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1 // hint to the compiler that shifts by s don't need guard code
	ŝ := _W - s
	ŝ &= _W - 1 // ditto
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z to x>>s, 0 < s < _W, and returns the bits shifted out of the
// bottom word, left aligned. z and x may be the same slice.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1
	ŝ := _W - s
	ŝ &= _W - 1
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// mulAddVWW sets z = x*y + r and returns the overflow word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y and returns the overflow word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add64(uint64(z0), uint64(c), 0)
		c, z[i] = z1+Word(cc), Word(lo)
	}
	return
}

// divWVW sets z to (xn<<(_W*len(x)) + x) / y and returns the remainder.
// xn must be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
