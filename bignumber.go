// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

import (
	"encoding/binary"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// A BigNumber represents a signed number of fixed binary precision:
//
//	value = (-1)**neg × mant × (2**64)**exp
//
// where mant is read as an unsigned integer in base 2**64. The length of
// mant is the precision in words and is preserved by every operation.
//
// A zero BigNumber has an all-zero mantissa, exp == 0 and neg == false.
// The zero value of a BigNumber is 0 with precision 0; operations on it
// adopt the precision of their other operand.
type BigNumber struct {
	mant mant
	exp  int64
	neg  bool
}

// New returns a new BigNumber of value 0 with the given precision in bits,
// rounded up to a multiple of 64.
func New(prec uint) *BigNumber {
	return &BigNumber{mant: make(mant, precWords(prec))}
}

// NewInt returns a new BigNumber set to x with the given precision.
func NewInt[T constraints.Integer](x T, prec uint) *BigNumber {
	z := New(prec)
	if x < 0 {
		return z.SetInt64(int64(x))
	}
	return z.SetUint64(uint64(x))
}

// NewFloat returns a new BigNumber set to the value of x with the given
// precision. It panics with ErrNotFinite if x is ±Inf or NaN.
func NewFloat[T constraints.Float](x T, prec uint) *BigNumber {
	z := New(prec)
	if f, ok := any(x).(float32); ok {
		return z.SetFloat32(f)
	}
	return z.SetFloat64(float64(x))
}

// Prec returns the mantissa precision of x in bits. It is always a multiple
// of 64.
func (x *BigNumber) Prec() uint {
	return uint(len(x.mant)) * _W
}

// Words returns the precision of x in 64-bit words.
func (x *BigNumber) Words() int {
	return len(x.mant)
}

// SetPrec sets z's precision to prec bits, rounded up to a multiple of 64,
// and returns z. Lowering the precision truncates the value toward zero.
func (z *BigNumber) SetPrec(prec uint) *BigNumber {
	return z.setMant(z.mant, z.exp, z.neg, precWords(prec))
}

// setMant sets z to ±m×(2**64)**exp normalized to n words and returns z.
// m's storage may be taken over by z and must not be shared.
func (z *BigNumber) setMant(m mant, exp int64, neg bool, n int) *BigNumber {
	m, shift := m.normalize(n)
	z.mant = m
	if m.isZero() {
		z.exp, z.neg = 0, false
		return z
	}
	z.exp = exp + shift
	z.neg = neg
	return z
}

// setZero sets z to 0 with a precision of n words.
func (z *BigNumber) setZero(n int) *BigNumber {
	z.mant = z.mant.make(n)
	z.mant.clear()
	z.exp, z.neg = 0, false
	return z
}

// words returns z's precision in words, or 1 for zero-precision values.
func (z *BigNumber) words() int {
	if len(z.mant) == 0 {
		return 1
	}
	return len(z.mant)
}

// Set sets z to a copy of x, precision included, and returns z.
func (z *BigNumber) Set(x *BigNumber) *BigNumber {
	if z != x {
		z.mant = z.mant.set(x.mant)
		z.exp = x.exp
		z.neg = x.neg
	}
	return z
}

// SetInt64 sets z to x and returns z. If z's precision is 0, it is changed
// to 64.
func (z *BigNumber) SetInt64(x int64) *BigNumber {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return z.setMant(mant{Word(u)}, 0, x < 0, z.words())
}

// SetUint64 sets z to x and returns z. If z's precision is 0, it is changed
// to 64.
func (z *BigNumber) SetUint64(x uint64) *BigNumber {
	return z.setMant(mant{Word(x)}, 0, false, z.words())
}

// SetInt sets z to the (possibly truncated) value of x and returns z. If z's
// precision is 0, it is changed to fit x exactly.
func (z *BigNumber) SetInt(x *big.Int) *BigNumber {
	m := mant(nil).setBytes(x.Bytes())
	n := len(z.mant)
	if n == 0 {
		n = len(m)
		if n == 0 {
			n = 1
		}
	}
	return z.setMant(m, 0, x.Sign() < 0, n)
}

// SetFloat64 sets z to the exact value of x and returns z. If z's precision
// is 0, it is changed to 128 which holds any float64 exactly. SetFloat64
// panics with ErrNotFinite if x is ±Inf or NaN.
func (z *BigNumber) SetFloat64(x float64) *BigNumber {
	const (
		expBits  = 11
		fracBits = 52
		bias     = 1023
	)
	b := math.Float64bits(x)
	neg := b>>63 != 0
	e := int64(b>>fracBits) & (1<<expBits - 1)
	f := b & (1<<fracBits - 1)
	return z.setFloatBits(neg, e, f, expBits, fracBits, bias)
}

// SetFloat32 sets z to the exact value of x and returns z. If z's precision
// is 0, it is changed to 128. SetFloat32 panics with ErrNotFinite if x is
// ±Inf or NaN.
func (z *BigNumber) SetFloat32(x float32) *BigNumber {
	const (
		expBits  = 8
		fracBits = 23
		bias     = 127
	)
	b := math.Float32bits(x)
	neg := b>>31 != 0
	e := int64(b>>fracBits) & (1<<expBits - 1)
	f := uint64(b) & (1<<fracBits - 1)
	return z.setFloatBits(neg, e, f, expBits, fracBits, bias)
}

// setFloatBits sets z from the fields of an IEEE-754 binary number: the
// sign, the biased exponent e and the fraction f of the given field widths.
func (z *BigNumber) setFloatBits(neg bool, e int64, f uint64, expBits, fracBits uint, bias int64) *BigNumber {
	n := len(z.mant)
	if n == 0 {
		n = 2
	}
	if e == 1<<expBits-1 {
		panic(ErrNotFinite)
	}
	// value = sig × 2**p
	var sig uint64
	var p int64
	if e == 0 {
		// zero or subnormal
		sig, p = f, 1-bias-int64(fracBits)
	} else {
		sig, p = f|1<<fracBits, e-bias-int64(fracBits)
	}
	if sig == 0 {
		return z.setZero(n)
	}
	// p = q×64 + s with 0 <= s < 64
	q := p >> 6
	s := uint(p & (_W - 1))
	m := mant{Word(sig), 0}
	m = m.shl(m, s)
	return z.setMant(m, q, neg, n)
}

// IsPositive reports whether x has no sign. Zero is positive.
func (x *BigNumber) IsPositive() bool {
	return !x.neg
}

// IsNegative reports whether x < 0.
func (x *BigNumber) IsNegative() bool {
	return x.neg
}

// IsZero reports whether x == 0.
func (x *BigNumber) IsZero() bool {
	return x.mant.isZero()
}

// IsInt reports whether x is an integer.
func (x *BigNumber) IsInt() bool {
	if x.exp >= 0 {
		return true
	}
	k := -x.exp
	if k >= int64(len(x.mant)) {
		return x.IsZero()
	}
	return x.mant[:k].isZero()
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is  0
//	+1 if x >   0
func (x *BigNumber) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Magnitude returns m such that (2**64)**(m-1) <= |x| < (2**64)**m, that is
// the position of x's most significant word. It returns 0 for x == 0.
func (x *BigNumber) Magnitude() int64 {
	top := len(x.mant.norm())
	if top == 0 {
		return 0
	}
	return x.exp + int64(top)
}

// Neg sets z to x with its sign negated, and returns z.
func (z *BigNumber) Neg(x *BigNumber) *BigNumber {
	z.Set(x)
	if !z.IsZero() {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *BigNumber) Abs(x *BigNumber) *BigNumber {
	z.Set(x)
	z.neg = false
	return z
}

// Int sets z to the integer part of x, truncated toward zero, and returns
// z. If z is nil, a new big.Int is allocated.
func (x *BigNumber) Int(z *big.Int) *big.Int {
	if z == nil {
		z = new(big.Int)
	}
	ip, _ := x.split()
	z.SetBytes(ip.bytes())
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Rat sets z to the exact value of x and returns z. If z is nil, a new
// big.Rat is allocated.
func (x *BigNumber) Rat(z *big.Rat) *big.Rat {
	if z == nil {
		z = new(big.Rat)
	}
	m := x.mant.norm()
	num := new(big.Int).SetBytes(m.bytes())
	if x.neg {
		num.Neg(num)
	}
	if x.exp >= 0 {
		num.Lsh(num, uint(x.exp)*_W)
		return z.SetInt(num)
	}
	den := new(big.Int).Lsh(big.NewInt(1), uint(-x.exp)*_W)
	return z.SetFrac(num, den)
}

// split returns the integer and fractional parts of |x| as separate
// mantissas. The fractional part f stands for f/(2**64)**len(f).
func (x *BigNumber) split() (ip, fp mant) {
	m := x.mant.norm()
	if len(m) == 0 {
		return nil, nil
	}
	if x.exp >= 0 {
		ip = make(mant, len(m)+int(x.exp))
		copy(ip[x.exp:], m)
		return ip, nil
	}
	k := -x.exp
	if k >= int64(len(m)) {
		fp = make(mant, k)
		copy(fp, m)
		return nil, fp
	}
	return mant(nil).set(m[k:]), mant(nil).set(m[:k])
}

// bytes returns x as a big-endian byte slice of len(x)*_S bytes.
func (x mant) bytes() []byte {
	buf := make([]byte, len(x)*_S)
	for i, w := range x {
		binary.BigEndian.PutUint64(buf[(len(x)-1-i)*_S:], uint64(w))
	}
	return buf
}

// setBytes interprets buf as a big-endian unsigned integer, sets z to that
// value and returns z normalized.
func (z mant) setBytes(buf []byte) mant {
	z = z.make((len(buf) + _S - 1) / _S)
	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = Word(binary.BigEndian.Uint64(buf[i-_S : i]))
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}
	return z.norm()
}
