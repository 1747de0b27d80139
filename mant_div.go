// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

// div returns q = u/v and r = u%v. It panics with ErrDivisionByZero if v is
// zero. Neither u nor v is modified.
//
// This is Knuth's Algorithm D (TAOCP vol. 2, section 4.3.1) in base 2**64.
func (z mant) div(u, v mant) (q, r mant) {
	v = v.norm()
	u = u.norm()
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}
	if u.cmp(v) < 0 {
		return z[:0], mant(nil).set(u)
	}

	// The quotient digit estimate needs a divisor of at least two words:
	// pad both operands with a zero low word, which leaves the quotient
	// unchanged and scales the remainder by _B.
	padded := len(v) == 1
	if padded {
		u = append(mant{0}, u...)
		v = mant{0, v[0]}
	}

	n := len(v)
	m := len(u) - n

	// D1. Normalize: scale u and v by d so that v's leading word is >= _B/2.
	d := Word(1)
	if v[n-1] != _M {
		d, _ = divWW(1, 0, v[n-1]+1)
	}
	un := mant(nil).mulW(u, d) // len(u)+1 words
	vn := mant(nil).mulW(v, d)
	if vn[n] != 0 {
		panic("bignumber: divisor normalization overflow")
	}
	vn = vn[:n]

	q = z.make(m + 1)
	qhatv := make(mant, n+1)
	vn1, vn2 := vn[n-1], vn[n-2]

	// D2. Loop over the quotient words, most significant first.
	for j := m; j >= 0; j-- {
		// D3. Estimate q̂ from the top two words of the current window and
		// correct it (at most twice) using the next divisor word.
		qhat := Word(_M)
		ujn := un[j+n]
		if ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, un[j+n-1], vn1)
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				// r̂ overflowed _B, the test can no longer succeed
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4. Multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], vn, qhat, 0)
		c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)

		// D5/D6. The estimate was one too large: add back.
		if c != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}
	q = q.norm()

	// D8. Unnormalize the remainder.
	r = un[:n]
	if d != 1 {
		divWVW(r, 0, r, d)
	}
	if padded {
		r = r[1:]
	}
	return q, r.norm()
}
