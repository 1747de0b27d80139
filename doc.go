// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignumber implements arbitrary-precision binary numbers of the form

	±mant × (2**64)**exp

where mant is a fixed-length little-endian vector of 64-bit words. The length
of the vector is the precision of the number. The exponent counts whole words:
normalization keeps the most significant words of a value and drops the
others, so results of an operation are truncated toward zero rather than
rounded.

The zero value for a BigNumber corresponds to 0 with a precision of 0. Thus,
new values can be declared in the usual ways and denote 0 without further
initialization:

	x := new(BigNumber) // x is a *BigNumber of value 0

Alternatively, new BigNumber values can be allocated and initialized with the
functions:

	func New(prec uint) *BigNumber
	func NewInt[T constraints.Integer](x T, prec uint) *BigNumber
	func NewFloat[T constraints.Float](x T, prec uint) *BigNumber
	func ParseBigNumber(s string, prec uint) (*BigNumber, error)

Precisions are given in bits and rounded up to a multiple of 64. An operation
produces a result whose precision is the largest of its operands' precisions.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *BigNumber) SetV(v V) *BigNumber               // z = v
	func (z *BigNumber) Unary(x *BigNumber) *BigNumber      // z = unary x
	func (z *BigNumber) Binary(x, y *BigNumber) *BigNumber  // z = x binary y
	func (x *BigNumber) Pred() P                            // p = pred(x)

For unary and binary operations, the result is the receiver; if it is one of
the operands x or y it may be safely overwritten. Accumulating values in a sum
is written

	sum.Add(sum, x)

Operations that have no defined result, such as a division by zero or the
square root of a negative number, panic with an ErrNaN. Package context wraps
these panics into errors.

Decimal strings convert exactly in the output direction: String prints every
digit of the binary fraction. In the input direction, Parse truncates decimal
fractions that have no finite binary representation, and rejects malformed
input with an error wrapping ErrSyntax.

*BigNumber satisfies the fmt package's Scanner interface for scanning and the
Formatter interface for formatted printing.
*/
package bignumber
