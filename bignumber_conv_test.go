// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignumber

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigNumber_Parse(t *testing.T) {
	td := []struct {
		s    string
		prec uint
	}{
		{"0", 64},
		{"-0", 64},
		{"+17", 64},
		{"0.1", 64},
		{"0.1", 640},
		{"-0.1", 128},
		{".5", 64},
		{"5.", 64},
		{"3.14159265358979323846264338327950288419716939937510", 192},
		{"18446744073709551616", 64},
		{"18446744073709551617", 64},
		{"18446744073709551617", 128},
		{"-98765432109876543210.0123456789", 128},
		{"0.000000000000000000000000000000000000001", 64},
		{"0.000000000000000000000000000000000000001", 256},
		{"99999999999999999999999999999999999999.99999999999", 320},
	}
	for _, d := range td {
		t.Run(d.s+"/"+strconv.Itoa(int(d.prec)), func(t *testing.T) {
			x, err := ParseBigNumber(d.s, d.prec)
			require.NoError(t, err)
			r, ok := new(big.Rat).SetString(d.s)
			require.True(t, ok)
			n := precWords(d.prec)
			assertRat(t, truncRat(r, n), x, d.s)
			assert.Equal(t, uint(n*_W), x.Prec())
		})
	}

	// underscores
	x, err := ParseBigNumber("-1_000_000.000_5", 128)
	require.NoError(t, err)
	y, err := ParseBigNumber("-1000000.0005", 128)
	require.NoError(t, err)
	assert.Zero(t, x.Cmp(y))
}

func TestBigNumber_ParseInvalid(t *testing.T) {
	for _, s := range []string{
		"", "-", "+", ".", "-.", "1.2.3", "abc", "1e5", "--1", "+-1",
		"1__2", "_1", "1_", " 1", "1 ", "0x10", "1,5", "١",
	} {
		t.Run(s, func(t *testing.T) {
			x := NewInt(5, 128)
			f, err := x.Parse(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax), "%v", err)
			// the receiver is left at zero, with its precision
			assert.Same(t, x, f)
			assert.True(t, x.IsZero())
			assert.Equal(t, uint(128), x.Prec())

			_, ok := New(64).SetString(s)
			assert.False(t, ok)
		})
	}
}

func TestBigNumber_ParsePrec0(t *testing.T) {
	td := []struct {
		s    string
		want string
		prec uint
	}{
		{"0", "0", 64},
		{"123", "123", 64},
		{"123.5", "123.5", 128},
		{"12345678901234567890123", "12345678901234567890123", 128},
		{"-0.25", "-0.25", 128},
	}
	for _, d := range td {
		t.Run(d.s, func(t *testing.T) {
			x, err := new(BigNumber).Parse(d.s)
			require.NoError(t, err)
			assert.Equal(t, d.want, x.String())
			assert.Equal(t, d.prec, x.Prec())
		})
	}
}

func TestBigNumber_StringRoundTrip(t *testing.T) {
	for i := 0; i < 300; i++ {
		n := rnd.Intn(5) + 1
		x := rndNum(n)
		s := x.String()
		y, err := ParseBigNumber(s, uint(n*_W))
		require.NoError(t, err, s)
		require.Zero(t, x.Cmp(y), "%s -> %s", s, y)

		// the decimal expansion of a dyadic value is exact
		r, ok := new(big.Rat).SetString(s)
		require.True(t, ok, s)
		require.Zero(t, r.Cmp(x.Rat(nil)), s)
	}
}

func TestBigNumber_Text(t *testing.T) {
	td := []struct {
		s      string
		digits int
		want   string
	}{
		{"2.375", 2, "2.38"},
		{"2.375", -1, "2.375"},
		{"2.375", 5, "2.37500"},
		{"-2.375", 2, "-2.38"},
		{"9.99609375", 2, "10.00"},
		{"-9.99609375", 0, "-10"},
		{"0.5", 0, "1"},
		{"0.25", 1, "0.3"},
		{"-0.03125", 1, "0.0"},
		{"-0.03125", 3, "-0.031"},
		{"12", 3, "12.000"},
		{"12", 0, "12"},
		{"0", 2, "0.00"},
		{"0", -1, "0"},
		{"-7", -1, "-7"},
		{"0.0625", 2, "0.06"},
		{"0.9375", 1, "0.9"},
		{"999.96875", 1, "1000.0"},
	}
	for _, d := range td {
		t.Run(d.s+"/"+strconv.Itoa(d.digits), func(t *testing.T) {
			x, err := ParseBigNumber(d.s, 128)
			require.NoError(t, err)
			assert.Equal(t, d.want, x.Text(d.digits))
			assert.Equal(t, "<"+d.want, string(x.Append([]byte("<"), d.digits)))
		})
	}
}

func TestBigNumber_Format(t *testing.T) {
	x, err := ParseBigNumber("-1.5", 128)
	require.NoError(t, err)
	y := new(BigNumber).Neg(x)
	td := []struct {
		format string
		x      *BigNumber
		want   string
	}{
		{"%v", x, "-1.5"},
		{"%s", y, "1.5"},
		{"%f", y, "1.5"},
		{"%.2f", y, "1.50"},
		{"%.0F", x, "-2"},
		{"%08.2f", x, "-0001.50"},
		{"%08.2f", y, "00001.50"},
		{"%10.2f", y, "      1.50"},
		{"%-10.2f|", y, "1.50      |"},
		{"%-08v|", y, "1.5     |"},
		{"%+v", y, "+1.5"},
		{"% v", y, " 1.5"},
		{"%+ v", y, "+1.5"},
		{"%+v", x, "-1.5"},
		{"%3v", y, "1.5"},
		{"%x", y, "%!x(*bignumber.BigNumber=1.5)"},
		{"%d", x, "%!d(*bignumber.BigNumber=-1.5)"},
	}
	for _, d := range td {
		assert.Equal(t, d.want, fmt.Sprintf(d.format, d.x), d.format)
	}
}

func TestBigNumber_Scan(t *testing.T) {
	var x, y BigNumber
	x.SetPrec(128)
	n, err := fmt.Sscan("1.5 -2_000", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1.5", x.String())
	assert.Equal(t, "-2000", y.String())
	assert.Equal(t, uint(128), x.Prec())

	_, err = fmt.Sscanf("3.25", "%g", &x)
	require.NoError(t, err)
	assert.Equal(t, "3.25", x.String())

	_, err = fmt.Sscanf("1", "%d", &x)
	assert.Error(t, err)

	_, err = fmt.Sscan("x", &x)
	assert.Error(t, err)
	assert.True(t, x.IsZero())
}

func BenchmarkBigNumber_String(b *testing.B) {
	x := rndNum(10)
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkBigNumber_Parse(b *testing.B) {
	s := rndNum(10).String()
	z := New(640)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = z.Parse(s)
	}
}
