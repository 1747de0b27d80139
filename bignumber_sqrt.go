// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

// Floor sets z to x with its fractional part dropped and returns z. The
// result is truncated toward zero, so Floor(-2.5) is -2.
func (z *BigNumber) Floor(x *BigNumber) *BigNumber {
	return z.integral(x, false)
}

// Ceil sets z to the integer part of x, with its magnitude incremented if
// the fractional part is not zero, and returns z. The result is rounded
// away from zero, so Ceil(-2.5) is -3.
func (z *BigNumber) Ceil(x *BigNumber) *BigNumber {
	return z.integral(x, true)
}

// integral sets z to x with its fractional words shifted out. If away is
// set and the dropped words were not all zero, the magnitude is incremented.
func (z *BigNumber) integral(x *BigNumber, away bool) *BigNumber {
	n := len(x.mant)
	if x.exp >= 0 || x.IsZero() {
		return z.Set(x)
	}
	k := -x.exp
	// one spare word for the carry out of the increment
	t := make(mant, n+1)
	inexact := true
	if k < int64(n) {
		copy(t, x.mant)
		inexact = !x.mant[:k].isZero()
		t = t.shr(t, uint(k)*_W)
	}
	if away && inexact {
		addVW(t, t, 1)
	}
	return z.setMant(t, 0, x.neg, n)
}

// Sqrt sets z to the square root of x, truncated toward zero, and returns
// it. The result has the precision of x.
//
// Sqrt panics with ErrNegativeSqrt if x < 0. The value of z is undefined in
// that case.
func (z *BigNumber) Sqrt(x *BigNumber) *BigNumber {
	n := len(x.mant)
	if x.IsZero() {
		return z.setZero(n)
	}
	if x.neg {
		panic(ErrNegativeSqrt)
	}

	// Compute √(m·B**e) as √(m·B**k)·B**((e-k)/2) where k words are
	// appended below m so that e-k is even and the integer square root
	// keeps n+1 significant words.
	m := x.mant.norm()
	e := x.exp
	k := max(int64(2*n+2-len(m)), 0)
	if (e-k)%2 != 0 {
		k++
	}
	tm := make(mant, int64(len(m))+k)
	copy(tm[k:], m)

	// All the search runs in a scratch precision of three times the input
	// width so that mid² is always exact.
	ws := (3*n + 4) * _W
	target := New(uint(ws)).setMant(tm, 0, false, 3*n+4)
	low := New(uint(ws))
	high := New(uint(ws)).setMant(mant{1}, int64(len(tm)+1)/2, false, 3*n+4)
	one := New(uint(ws)).SetUint64(1)
	half := New(uint(ws)).setMant(mant{1 << (_W - 1)}, -1, false, 3*n+4)
	mid := New(uint(ws))
	sq := New(uint(ws))
	root := New(uint(ws))

	// largest mid with mid² <= target
	for low.Cmp(high) <= 0 {
		mid.Add(low, high)
		mid.Floor(mid.Mul(mid, half))
		sq.Mul(mid, mid)
		c := sq.Cmp(target)
		if c == 0 {
			root.Set(mid)
			break
		}
		if c < 0 {
			root.Set(mid)
			low.Add(mid, one)
		} else {
			high.Sub(mid, one)
		}
	}

	return z.setMant(mant(nil).set(root.mant), root.exp+(e-k)/2, false, n)
}
