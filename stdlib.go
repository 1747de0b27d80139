// This file mirrors types and helpers from math/big.

package bignumber

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Precision limits, in bits.
const (
	DefaultPrec = 640            // precision used when a zero-precision value must pick one
	MaxPrec     = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
)

// An ErrNaN panic is raised by a BigNumber operation that has no defined
// result, such as a division by zero or the square root of a negative
// number. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// Values panicked with by BigNumber operations.
var (
	ErrDivisionByZero = ErrNaN{"bignumber: division by zero"}
	ErrNegativeSqrt   = ErrNaN{"bignumber: square root of negative operand"}
	ErrNotFinite      = ErrNaN{"bignumber: cannot represent ±Inf or NaN"}
)

// ErrSyntax is wrapped by every error reported for a malformed numeric
// string.
var ErrSyntax = errors.New("bignumber: invalid syntax")

// scan errors
var (
	errNoDigits = fmt.Errorf("%w: number has no digits", ErrSyntax)
	errInvalSep = fmt.Errorf("%w: '_' must separate successive digits", ErrSyntax)
)

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// precWords returns the number of words needed for prec bits.
func precWords(prec uint) int {
	return int((uint64(prec) + _W - 1) / _W)
}
