// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides precision contexts for BigNumbers.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bignumber.BigNumber
//
// create a new bignumber.BigNumber set to the value of x, truncated to c's
// precision.
//
// Operators that set a receiver z to a function of other arguments like:
//
//	func (c *Context) UnaryOp(z, x *bignumber.BigNumber) *bignumber.BigNumber
//	func (c *Context) BinaryOp(z, x, y *bignumber.BigNumber) *bignumber.BigNumber
//
// set z to the result of z.Op(args), truncated to c's precision, and return z.
//
// A Context catches the ErrNaN panics of BigNumber operations, such as a
// division by zero, and the errors of the series evaluations of package
// math: the failing operation silently succeeds with an undefined result.
// Further operations with the context are no-ops (they simply return the
// receiver z) until (*Context).Err is called to check for errors.
package context

import (
	"errors"
	"math/big"

	bignumber "github.com/Ask4r/BigNumber"
	bmath "github.com/Ask4r/BigNumber/math"
)

// A Context is a wrapper around BigNumbers that facilitates management of
// precision and error handling.
type Context struct {
	prec uint32
	err  error
}

// New creates a new context with the given precision in bits. If prec is 0,
// it is set to bignumber.DefaultPrec.
func New(prec uint) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns c's precision in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetPrec sets c's precision to prec bits and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// bignumber.DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = bignumber.DefaultPrec
	}
	// general case
	if prec > bignumber.MaxPrec {
		prec = bignumber.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// New returns a new bignumber.BigNumber with value 0 and precision set to
// c's precision.
func (c *Context) New() *bignumber.BigNumber {
	return bignumber.New(uint(c.prec))
}

// NewInt returns a new *bignumber.BigNumber set to the (possibly truncated)
// value of x.
func (c *Context) NewInt(x *big.Int) *bignumber.BigNumber {
	return c.New().SetInt(x)
}

// NewInt64 returns a new *bignumber.BigNumber set to x.
func (c *Context) NewInt64(x int64) *bignumber.BigNumber {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *bignumber.BigNumber set to x.
func (c *Context) NewUint64(x uint64) *bignumber.BigNumber {
	return c.New().SetUint64(x)
}

// NewFloat64 returns a new *bignumber.BigNumber set to the (possibly
// truncated) value of x. A ±Inf or NaN x is recorded as an error and yields
// 0.
func (c *Context) NewFloat64(x float64) *bignumber.BigNumber {
	z := c.New()
	return c.do(z, func() *bignumber.BigNumber { return z.SetFloat64(x) })
}

// NewString returns a new BigNumber with the value of s and a boolean
// indicating success. s must be a number of the format accepted by
// (*bignumber.BigNumber).Parse. If the operation failed, the returned value
// is nil.
func (c *Context) NewString(s string) (d *bignumber.BigNumber, success bool) {
	return c.New().SetString(s)
}

// Parse is like bignumber.ParseBigNumber(s, c.Prec()).
func (c *Context) Parse(s string) (*bignumber.BigNumber, error) {
	return bignumber.ParseBigNumber(s, uint(c.prec))
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Round sets z to the value of x truncated to c's precision and returns z.
func (c *Context) Round(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	if c.err != nil {
		return z
	}
	return c.apply(z.Set(x))
}

// apply applies c's precision to z and returns z.
func (c *Context) apply(z *bignumber.BigNumber) *bignumber.BigNumber {
	if z.Prec() != uint(c.prec) {
		z.SetPrec(uint(c.prec))
	}
	return z
}

// do runs op unless an error is pending, applies c's precision to its
// result, and records an ErrNaN panic as c's error.
func (c *Context) do(z *bignumber.BigNumber, op func() *bignumber.BigNumber) (r *bignumber.BigNumber) {
	if c.err != nil {
		return z
	}
	defer func() {
		if e := recover(); e != nil {
			var nan bignumber.ErrNaN
			if err, ok := e.(error); !ok || !errors.As(err, &nan) {
				panic(e)
			}
			c.err = nan
			r = z
		}
	}()
	return c.apply(op())
}

// try is like do for operations that report errors.
func (c *Context) try(z *bignumber.BigNumber, op func() (*bignumber.BigNumber, error)) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber {
		r, err := op()
		if err != nil {
			c.err = err
			return z
		}
		return r
	})
}

// Add sets z to the truncated sum x+y and returns z.
func (c *Context) Add(z, x, y *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Add(x, y) })
}

// Sub sets z to the truncated difference x-y and returns z.
func (c *Context) Sub(z, x, y *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Sub(x, y) })
}

// Mul sets z to the truncated product x*y and returns z.
func (c *Context) Mul(z, x, y *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Mul(x, y) })
}

// Quo sets z to the truncated quotient x/y and returns z. A division by zero
// is recorded as an error.
func (c *Context) Quo(z, x, y *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Quo(x, y) })
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Neg(x) })
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Abs(x) })
}

// Floor sets z to x truncated toward zero and returns z.
func (c *Context) Floor(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Floor(x) })
}

// Ceil sets z to x rounded to an integer away from zero and returns z.
func (c *Context) Ceil(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Ceil(x) })
}

// Sqrt sets z to the truncated square root of x and returns z. The square
// root of a negative number is recorded as an error.
func (c *Context) Sqrt(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return z.Sqrt(x) })
}

// Pow sets z to x**n and returns z.
func (c *Context) Pow(z, x *bignumber.BigNumber, n uint64) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return bmath.Pow(z, x, n) })
}

// Factorial sets z to x! and returns z.
func (c *Context) Factorial(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.do(z, func() *bignumber.BigNumber { return bmath.Factorial(z, x) })
}

// Atan sets z to the arctangent of x and returns z. A series that does not
// converge is recorded as an error.
func (c *Context) Atan(z, x *bignumber.BigNumber) *bignumber.BigNumber {
	return c.try(z, func() (*bignumber.BigNumber, error) { return bmath.Atan(z, x) })
}

// Pi sets z to π at c's precision and returns z.
func (c *Context) Pi(z *bignumber.BigNumber) *bignumber.BigNumber {
	return c.try(z, func() (*bignumber.BigNumber, error) { return bmath.Pi(c.apply(z)) })
}
