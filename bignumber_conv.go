// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversions of BigNumbers.

package bignumber

import (
	"fmt"
	"io"
	"strings"
)

var bignumberZero BigNumber

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a number of the format accepted by Parse. The entire
// string (not just a prefix) must be valid for success. If the operation
// failed, z is set to 0 and the returned value is nil.
func (z *BigNumber) SetString(s string) (*BigNumber, bool) {
	if f, err := z.Parse(s); err == nil {
		return f, true
	}
	return nil, false
}

// scan is like Parse but reads the longest possible prefix representing a
// valid number from an io.ByteScanner rather than a string. It serves as the
// implementation of Parse and does not expect EOF at the end.
func (z *BigNumber) scan(r io.ByteScanner) (f *BigNumber, err error) {
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return nil, err
	}
	m, count, err := mant(nil).scan(r)
	if err != nil {
		return nil, err
	}

	n := len(z.mant)
	if n == 0 {
		// fit the integer digits and leave a word for the fraction
		n = len(m)
		if count < 0 || n == 0 {
			n++
		}
	}
	return z.setDigits(m, count, neg, n), nil
}

// setDigits sets z to ±m×10**min(count, 0) with a precision of n words.
//
// A fraction is computed by long division of m by a power of ten, m being
// first shifted up so that the quotient has at least n+1 significant words.
// The result is truncated toward zero; dyadic fractions are exact.
func (z *BigNumber) setDigits(m mant, count int, neg bool, n int) *BigNumber {
	if count >= 0 {
		return z.setMant(m, 0, neg, n)
	}
	d := mant(nil).pow10(-count)
	s := n + 1 + len(d) - len(m)
	if s < 0 {
		s = 0
	}
	u := make(mant, len(m)+s)
	copy(u[s:], m)
	q, _ := mant(nil).div(u, d)
	return z.setMant(q, -int64(s), neg, n)
}

// Parse parses s which must contain a text representation of a decimal
// number, and sets z to its value truncated to z's precision. If z's
// precision is 0, it is changed to fit all integer digits plus one word of
// fraction. The entire string (not just a prefix) must be consumed for
// success. The number must be of the form:
//
//	number   = [ sign ] mantissa .
//	sign     = "+" | "-" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	digits   = digit { [ "_" ] digit } .
//	digit    = "0" ... "9" .
//
// An underscore may appear between successive digits; such underscores do
// not change the value of the number.
//
// On error, Parse sets z to 0, keeping its precision, and returns z along
// with an error wrapping ErrSyntax (or the reader error). Callers that want
// lenient parsing may ignore the error and use the zero value.
func (z *BigNumber) Parse(s string) (f *BigNumber, err error) {
	r := strings.NewReader(s)
	if f, err = z.scan(r); err != nil {
		return z.setZero(len(z.mant)), err
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		err = fmt.Errorf("%w: expected end of string, found %q", ErrSyntax, ch)
	} else if err2 != io.EOF {
		err = err2
	}
	if err != nil {
		return z.setZero(len(z.mant)), err
	}
	return f, nil
}

// ParseBigNumber is like new(BigNumber).SetPrec(prec).Parse(s).
func ParseBigNumber(s string, prec uint) (*BigNumber, error) {
	return New(prec).Parse(s)
}

var _ fmt.Scanner = &bignumberZero // *BigNumber must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'v', 'f', 'F', 'g' and 'G'.
func (z *BigNumber) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'v', 'f', 'F', 'g', 'G':
	default:
		return fmt.Errorf("bignumber: invalid verb %c for Scan", ch)
	}
	s.SkipSpace()
	_, err := z.scan(byteReader{s})
	if err != nil {
		z.setZero(len(z.mant))
	}
	return err
}

// String returns the exact decimal representation of x. Integers print
// without a decimal point; other values print all fractional digits with
// trailing zeros removed. Zero prints as "0".
func (x *BigNumber) String() string {
	return x.Text(-1)
}

// Text returns the decimal representation of x with the given number of
// fractional digits, rounded half away from zero. A negative digits value
// selects the exact representation returned by String.
func (x *BigNumber) Text(digits int) string {
	return string(x.Append(make([]byte, 0, 32), digits))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x *BigNumber) Append(buf []byte, digits int) []byte {
	ip, fp := x.split()
	is := ip.utoa()
	var fs []byte
	if digits < 0 {
		fs = fp.ftoa(-1)
		i := len(fs)
		for i > 0 && fs[i-1] == '0' {
			i--
		}
		fs = fs[:i]
	} else {
		fs = fp.ftoa(digits + 1)
		if len(fs) > digits {
			round := fs[digits] >= '5'
			fs = fs[:digits]
			if round && incDigits(fs) && incDigits(is) {
				is = append([]byte{'1'}, is...)
			}
		}
		for len(fs) < digits {
			fs = append(fs, '0')
		}
	}

	if x.neg && !(allZeros(is) && allZeros(fs)) {
		buf = append(buf, '-')
	}
	buf = append(buf, is...)
	if len(fs) > 0 {
		buf = append(buf, '.')
		buf = append(buf, fs...)
	}
	return buf
}

// incDigits adds one to the decimal digit string s in place and reports
// whether it overflowed.
func incDigits(s []byte) bool {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '9' {
			s[i]++
			return false
		}
		s[i] = '0'
	}
	return true
}

func allZeros(s []byte) bool {
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

var _ fmt.Formatter = &bignumberZero // *BigNumber must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the verbs 'v', 's', 'f' and
// 'F'. A precision sets the number of fractional digits as with Text.
// The '+' and ' ' flags control the sign of positive values, a width pads
// with spaces (or zeros with the '0' flag), and '-' justifies left.
func (x *BigNumber) Format(s fmt.State, ch rune) {
	switch {
	case ch != 'v' && ch != 's' && ch != 'f' && ch != 'F':
		fmt.Fprintf(s, "%%!%c(*bignumber.BigNumber=%s)", ch, x.String())
		return
	case x == nil:
		fmt.Fprint(s, "<nil>")
		return
	}

	digits := -1
	if p, ok := s.Precision(); ok {
		digits = p
	}
	num := x.Append(nil, digits)

	// determine sign character
	sign := ""
	switch {
	case num[0] == '-':
		sign = "-"
		num = num[1:]
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var left, zeros, right int
	length := len(sign) + len(num)
	if width, ok := s.Width(); ok && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0'):
			zeros = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeros)
	_, _ = s.Write(num)
	writeMultiple(s, " ", right)
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}
