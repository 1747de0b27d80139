// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

import "io"

// scan reads the longest prefix of r that forms a decimal digit sequence
// with an optional decimal point and returns the digits as the integer res.
// count is the number of digits read; if a decimal point was seen, count is
// instead minus the number of digits after it, so that the scanned value is
// res × 10**min(count, 0).
//
// An underscore may appear between successive digits; misplaced underscores
// are reported with errInvalSep if there are no other errors.
func (z mant) scan(r io.ByteScanner) (res mant, count int, err error) {
	// prev encodes the previously seen char: it is one of '_', '0' (a
	// digit), or '.' (anything else).
	prev := '.'
	invalSep := false

	// Algorithm: collect digits in groups of at most _DW digits in di and
	// then use mulAddWW for every such group to add them to the result.
	z = z[:0]
	di := Word(0) // 0 <= di < 10**i < _DB
	i := 0        // 0 <= i < _DW
	dp := -1      // position of decimal point
	fracOk := true

	ch, err := r.ReadByte()
	for err == nil {
		if ch == '.' && fracOk {
			fracOk = false
			if prev == '_' {
				invalSep = true
			}
			prev = '.'
			dp = count
		} else if ch == '_' {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			if ch < '0' || '9' < ch {
				err = r.UnreadByte() // ch does not belong to number anymore
				break
			}
			prev = '0'
			count++

			di = di*10 + Word(ch-'0')
			i++

			// if di is "full", add it to the result
			if i == _DW {
				z = z.mulAddWW(z, _DB, di)
				di = 0
				i = 0
			}
		}

		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}

	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}

	if count == 0 && err == nil {
		err = errNoDigits
	}

	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow10(i), di)
	}
	res = z.norm()

	// adjust count for fraction, if any
	if dp >= 0 {
		// 0 <= dp <= count
		count = dp - count
	}

	return
}

// mulAddWW sets z = x*y + r and returns z normalized. z and x may alias.
func (z mant) mulAddWW(x mant, y, r Word) mant {
	m := len(x)
	if m == 0 || y == 0 {
		if r == 0 {
			return z[:0]
		}
		z = z.make(1)
		z[0] = r
		return z
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// pow10 sets z to 10**n and returns z.
func (z mant) pow10(n int) mant {
	z = z.make(1)
	z[0] = 1
	for ; n >= _DW; n -= _DW {
		z = z.mulAddWW(z, _DB, 0)
	}
	if n > 0 {
		z = z.mulAddWW(z, pow10(n), 0)
	}
	return z
}

// utoa returns the decimal representation of the integer x. It returns
// "0" for x == 0.
func (x mant) utoa() []byte {
	q := mant(nil).set(x.norm())
	if len(q) == 0 {
		return []byte("0")
	}

	// a word holds less than 20 decimal digits
	s := make([]byte, len(q)*20)
	i := len(s)
	var r Word
	for len(q) > 0 {
		// extract least significant, base _DB "digit"
		q, r = q.divW(q, _DB)
		q = q.norm()
		for j := 0; j < _DW && i > 0; j++ {
			i--
			t := r / 10
			s[i] = '0' + byte(r-t*10)
			r = t
		}
	}

	// strip leading zeros
	for s[i] == '0' {
		i++
	}
	return s[i:]
}

// ftoa returns the decimal digits of the fraction x/(2**64)**len(x),
// without the leading "0.". Digits are produced until the fraction is
// exhausted, which always happens since 10 is a multiple of 2, or until
// limit digits have been produced if limit >= 0. Trailing zeros are kept.
func (x mant) ftoa(limit int) []byte {
	f := mant(nil).set(x)
	var s []byte
	var buf [_DW]byte
	for !f.isZero() && (limit < 0 || len(s) < limit) {
		// the word shifted out of the top holds the next _DW digits
		r := mulAddVWW(f, f, _DB, 0)
		for j := _DW - 1; j >= 0; j-- {
			t := r / 10
			buf[j] = '0' + byte(r-t*10)
			r = t
		}
		s = append(s, buf[:]...)
		// drop words that have become zero
		f = f[f.lsw():]
	}
	if limit >= 0 && len(s) > limit {
		s = s[:limit]
	}
	return s
}
