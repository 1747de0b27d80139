package math

import (
	"sync"

	bignumber "github.com/Ask4r/BigNumber"
)

// _pi caches the most precise π computed so far by Pi.
var (
	piMu sync.Mutex
	_pi  *bignumber.BigNumber
)

// Pi sets z to π truncated to z's precision and returns z. If z's precision
// is 0, it is set to bignumber.DefaultPrec.
//
// π is computed with Machin's formula 16·atan(1/5) - 4·atan(1/239) and
// cached; Pi is safe for concurrent use.
func Pi(z *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = bignumber.DefaultPrec
	}

	piMu.Lock()
	defer piMu.Unlock()
	if _pi == nil || _pi.Prec() < prec {
		p, err := machin(prec)
		if err != nil {
			return z, err
		}
		_pi = p
	}
	return z.Set(withPrec(_pi, prec)), nil
}

// machin returns π computed with one guard word over prec.
func machin(prec uint) (*bignumber.BigNumber, error) {
	p := prec + wordBits
	a := bignumber.New(p).SetUint64(1)
	a.QuoUint64(a, 5)
	if _, err := Atan(a, a); err != nil {
		return nil, err
	}
	b := bignumber.New(p).SetUint64(1)
	b.QuoUint64(b, 239)
	if _, err := Atan(b, b); err != nil {
		return nil, err
	}
	a.MulUint64(a, 16)
	b.MulUint64(b, 4)
	return a.Sub(a, b).SetPrec(prec), nil
}

// PiBBP sets z to π computed with the Bailey–Borwein–Plouffe series
//
//	π = Σ 16**-k × (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6))
//
// truncated to z's precision, and returns z. If z's precision is 0, it is
// set to bignumber.DefaultPrec.
func PiBBP(z *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = bignumber.DefaultPrec
	}

	var (
		p    = prec + wordBits
		sum  = bignumber.New(p)
		f    = bignumber.New(p).SetUint64(1) // 16**-k
		term = bignumber.New(p)
		t    = bignumber.New(p)
		iter = uint64(p)/4 + 16
	)
	quiet := 0
	for k := uint64(0); quiet < 2; k++ {
		if k > iter {
			return z, ErrNonConvergence
		}
		term.QuoUint64(t.SetUint64(4), 8*k+1)
		term.Sub(term, t.QuoUint64(t.SetUint64(2), 8*k+4))
		term.Sub(term, t.QuoUint64(t.SetUint64(1), 8*k+5))
		term.Sub(term, t.QuoUint64(t.SetUint64(1), 8*k+6))
		term.Mul(term, f)
		sum.Add(sum, term)
		f.QuoUint64(f, 16)
		if negligible(term, sum, 0) {
			quiet++
		} else {
			quiet = 0
		}
	}
	return z.Set(sum.SetPrec(prec)), nil
}

// PiGaussLegendre sets z to π computed with the Gauss-Legendre algorithm,
// truncated to z's precision, and returns z. If z's precision is 0, it is
// set to bignumber.DefaultPrec.
func PiGaussLegendre(z *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = bignumber.DefaultPrec
	}

	var (
		// Truncation leaves the last words of a and b off by a few units:
		// carry a whole guard word and stop when they agree above it.
		pp   = prec + wordBits
		one  = bignumber.New(pp).SetUint64(1)
		half = bignumber.New(pp).SetFloat64(0.5)
		a    = bignumber.New(pp).SetUint64(1)
		u    = bignumber.New(pp).SetUint64(2)
		b    = bignumber.New(pp)
		t    = bignumber.New(pp).SetFloat64(0.25)
		p    = bignumber.New(pp).SetUint64(1)
		w    = bignumber.New(pp)
	)
	b.Quo(one, u.Sqrt(u))

	for i := 0; ; i++ {
		if i == maxReductions {
			return z, ErrNonConvergence
		}
		u.Set(a)                 // a_n
		a.Mul(w.Add(a, b), half) // a_n+1
		b.Sqrt(w.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)²
		w.Sub(u, a)
		w.Mul(w, w)
		t.Sub(t, w.Mul(w, p))

		if negligible(w.Sub(a, b), a, 1) {
			break
		}

		p.MulUint64(p, 2)
	}
	w.Add(a, b)
	w.Mul(w, w)
	t.MulUint64(t, 4)
	return z.Set(w.Quo(w, t).SetPrec(prec)), nil
}
