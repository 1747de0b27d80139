// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fromBig returns the normalized mant of |x|.
func fromBig(x *big.Int) mant {
	return mant(nil).setBytes(x.Bytes())
}

func TestMant_normalize(t *testing.T) {
	td := []struct {
		x     mant
		n     int
		want  mant
		shift int64
	}{
		{mant{0, 5, 0}, 2, mant{5, 0}, 1},
		{mant{1, 2, 3}, 2, mant{2, 3}, 1},
		{mant{1, 2, 3}, 3, mant{1, 2, 3}, 0},
		{mant{0, 0}, 3, mant{0, 0, 0}, 0},
		{nil, 2, mant{0, 0}, 0},
		{mant{7}, 3, mant{7, 0, 0}, 0},
		{mant{0, 0, 9, 1}, 1, mant{1}, 3},
		{mant{0, 4, 9, 1}, 2, mant{9, 1}, 2},
		{mant{3, 0, 0, 0, 0}, 2, mant{3, 0}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, shift := d.x.normalize(d.n)
			if diff := cmp.Diff(d.want, got); diff != "" || shift != d.shift {
				t.Fatalf("normalize shift = %d, want %d; mantissa mismatch (-want +got):\n%s", shift, d.shift, diff)
			}
		})
	}
}

func TestMant_cmp(t *testing.T) {
	td := []struct {
		x, y mant
		r    int
	}{
		{nil, nil, 0},
		{nil, mant{0, 0}, 0},
		{mant{1}, mant{1, 0}, 0},
		{mant{1}, mant{2}, -1},
		{mant{0, 1}, mant{_M}, 1},
		{mant{5, 3}, mant{4, 3}, 1},
		{mant{5, 3}, mant{6, 3}, -1},
	}
	for _, d := range td {
		if r := d.x.cmp(d.y); r != d.r {
			t.Errorf("%v.cmp(%v) = %d, want %d", d.x, d.y, r, d.r)
		}
	}
}

func TestMant_shifts(t *testing.T) {
	x := mant(rndV(4))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 4*_W), big.NewInt(1))
	for _, s := range []uint{0, 1, 63, 64, 65, 130, 255, 256, 300} {
		want := new(big.Int).Lsh(toBig(x), s)
		want.And(want, mask)
		if got := toBig(mant(nil).shl(x, s)); got.Cmp(want) != 0 {
			t.Errorf("shl(%d) = %v, want %v", s, got, want)
		}
		want.Rsh(toBig(x), s)
		if got := toBig(mant(nil).shr(x, s)); got.Cmp(want) != 0 {
			t.Errorf("shr(%d) = %v, want %v", s, got, want)
		}
	}
}

func TestMant_mul(t *testing.T) {
	for m := 1; m < 6; m++ {
		for n := 1; n < 6; n++ {
			x, y := mant(rndV(m)), mant(rndV(n))
			z := mant(nil).mul(x, y)
			if len(z) != m+n {
				t.Fatalf("len(mul) = %d, want %d", len(z), m+n)
			}
			want := new(big.Int).Mul(toBig(x), toBig(y))
			if got := toBig(z); got.Cmp(want) != 0 {
				t.Fatalf("%v * %v = %v, want %v", x, y, got, want)
			}
		}
	}
}

func checkDiv(t *testing.T, u, v mant) {
	t.Helper()
	wq, wr := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
	q, r := mant(nil).div(u, v)
	if diff := cmp.Diff(fromBig(wq), q, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("%v / %v: quotient mismatch (-want +got):\n%s", u, v, diff)
	}
	if diff := cmp.Diff(fromBig(wr), r, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("%v / %v: remainder mismatch (-want +got):\n%s", u, v, diff)
	}
}

func TestMant_div(t *testing.T) {
	// quotient estimate edge cases
	td := []struct{ u, v mant }{
		{mant{7}, mant{3}},
		{mant{3}, mant{7}},
		{mant{0, 1}, mant{1}},
		{mant{_M, _M, _M, _M}, mant{_M, _M}},
		{mant{0, 0, 1 << 63}, mant{1, 1 << 63}},
		{mant{0, 0, 0, 1}, mant{1, 0, 1}},
		{mant{_M, _M, _M - 1}, mant{_M, _M}},
		{mant{0, 0, 0x7fffffffffffffff, 0x8000000000000000}, mant{1, 0, 0x8000000000000000}},
		{mant{0, 1, 0, 5}, mant{0, 0, 1}},
		{mant{12345, 0, 0}, mant{12345, 0}},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) { checkDiv(t, d.u, d.v) })
	}

	// random operands
	for i := 0; i < 2000; i++ {
		m := rnd.Intn(8) + 1
		n := rnd.Intn(m+1) + 1
		u, v := mant(rndV(m)), mant(rndV(n))
		switch i % 4 {
		case 1:
			// small leading divisor word: large normalization factor
			v[n-1] = rndW() % 16
			if v[n-1] == 0 {
				v[n-1] = 1
			}
		case 2:
			v[n-1] = _M
		}
		checkDiv(t, u, v)
	}
}

func TestMant_divPreservesOperands(t *testing.T) {
	u, v := mant(rndV(6)), mant(rndV(3))
	uc, vc := mant(nil).set(u), mant(nil).set(v)
	mant(nil).div(u, v)
	if diff := cmp.Diff(uc, u); diff != "" {
		t.Fatalf("dividend modified:\n%s", diff)
	}
	if diff := cmp.Diff(vc, v); diff != "" {
		t.Fatalf("divisor modified:\n%s", diff)
	}
}

func TestMant_divByZero(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrDivisionByZero {
			t.Fatalf("got panic %v, want ErrDivisionByZero", r)
		}
	}()
	mant(nil).div(mant{1}, mant{0, 0})
}

func TestMant_utoa(t *testing.T) {
	if s := string(mant(nil).utoa()); s != "0" {
		t.Fatalf("utoa(0) = %q", s)
	}
	for n := 1; n < 10; n++ {
		x := mant(rndV(n))
		if got, want := string(x.utoa()), toBig(x).String(); got != want {
			t.Fatalf("utoa(%v) = %s, want %s", x, got, want)
		}
	}
}

func TestMant_ftoa(t *testing.T) {
	for n := 1; n < 6; n++ {
		x := mant(rndV(n))
		// x/B**n = x×5**(64n)/10**(64n)
		k := 64 * n
		num := new(big.Int).Mul(toBig(x), new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
		want := num.String()
		want = strings.Repeat("0", k-len(want)) + want
		want = strings.TrimRight(want, "0")
		got := strings.TrimRight(string(x.ftoa(-1)), "0")
		if got != want {
			t.Fatalf("ftoa(%v) = %s, want %s", x, got, want)
		}
		if lim := string(x.ftoa(7)); lim != want[:7] {
			t.Fatalf("ftoa(%v, 7) = %s, want %s", x, lim, want[:7])
		}
	}
}

func TestMant_scan(t *testing.T) {
	td := []struct {
		s     string
		want  string
		count int
		err   error
	}{
		{"0", "0", 1, nil},
		{"1234567890123456789012345", "1234567890123456789012345", 25, nil},
		{"12.5", "125", -1, nil},
		{"1_000.000_1", "10000001", -4, nil},
		{".5", "5", -1, nil},
		{"5.", "5", 0, nil},
		{"", "0", 0, errNoDigits},
		{".", "0", 0, errNoDigits},
		{"1__0", "10", 2, errInvalSep},
		{"_1", "1", 1, errInvalSep},
		{"1_", "1", 1, errInvalSep},
		{"1_.5", "15", -1, errInvalSep},
	}
	for _, d := range td {
		t.Run(d.s, func(t *testing.T) {
			r := strings.NewReader(d.s)
			z, count, err := mant(nil).scan(r)
			if err != d.err {
				t.Fatalf("scan(%q) error = %v, want %v", d.s, err, d.err)
			}
			if err != nil {
				return
			}
			if got := string(z.utoa()); got != d.want || count != d.count {
				t.Fatalf("scan(%q) = %s, %d, want %s, %d", d.s, got, count, d.want, d.count)
			}
		})
	}
}
