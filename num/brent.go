// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements a bounded scalar root finder based on Brent's method
//  References:
//   [1] Brent RP (1973) Algorithms for Minimization without Derivatives.
//       Prentice-Hall, Englewood Cliffs, New Jersey
package num

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MACHEPS is the machine epsilon for float64
const MACHEPS = 2.220446049250313e-16

// Ffcn defines the scalar residual function f(x) whose root is sought
type Ffcn func(x float64) (float64, error)

// Brent solves f(x) = 0 for x guaranteed to lie within [xa, xb]. The method
// combines bisection, the secant rule and inverse quadratic interpolation and
// keeps the root bracketed by a pair of opposite-sign counterpart points at
// all times; thus [xa, xb] must bracket the root: f(xa)·f(xb) ≤ 0
//  Note: one Brent instance must not be shared by concurrent solves; use one
//        instance per solve or the package-level Root function
type Brent struct {

	// constants
	ItMax   int     // max number of iterations
	Ftol    float64 // residual tolerance: |f(x)| ≤ Ftol accepts x
	Xtol    float64 // bracket tolerance: |bracket|/2 ≤ 2·MACHEPS·|x| + Xtol/2 accepts x
	Verbose bool    // show residuals during iterations

	// statistics
	It     int // number of iterations from last call to Root
	NFeval int // number of function evaluations from last call to Root
}

// Defaults sets default constants
func (o *Brent) Defaults() {
	o.ItMax = 100
	o.Ftol = 1e-13
	o.Xtol = 1e-11
}

// Init initialises the solver with default constants and optional parameters
//  prms: optional parameters overriding the defaults
//        "itmax", "ftol", "xtol", "verbose"
func (o *Brent) Init(prms dbf.Params) {
	o.Defaults()
	for _, p := range prms {
		switch p.N {
		case "itmax":
			o.ItMax = int(p.V)
		case "ftol":
			o.Ftol = p.V
		case "xtol":
			o.Xtol = p.V
		case "verbose":
			o.Verbose = p.V > 0
		}
	}
}

// Root finds the root of f within [xa, xb]
//  Note: fails immediately if f(xa) and f(xb) have the same sign
func (o *Brent) Root(f Ffcn, xa, xb float64) (res float64, err error) {

	// counterpart points: fa and fb must have opposite signs
	a, b := xa, xb
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	o.It = 0
	o.NFeval = 2

	// early out: root at an endpoint
	if math.Abs(fa) <= o.Ftol {
		return a, nil
	}
	if math.Abs(fb) <= o.Ftol {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, chk.Err("brent: root is not bracketed: f(%g)=%g and f(%g)=%g have the same sign", xa, fa, xb, fb)
	}

	// message
	if o.Verbose {
		io.PfYel("%6s%25s%25s%25s\n", "it", "x", "f(x)", "bracket")
	}

	// iterations
	c, fc := a, fa
	d := b - a // step from the previous iteration
	e := d     // step from the iteration before the previous one
	for o.It = 1; o.It <= o.ItMax; o.It++ {

		// re-arrange counterpart points: b holds the best guess, c the counterpart
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, fa = b, fb
			b, fb = c, fc
			c, fc = a, fa
		}

		// convergence check on bracket width and residual
		tol := 2.0*MACHEPS*math.Abs(b) + 0.5*o.Xtol
		m := 0.5 * (c - b)
		if o.Verbose {
			io.Pfyel("%6d%25.15e%25.15e%25.15e\n", o.It, b, fb, c-b)
		}
		if math.Abs(m) <= tol || math.Abs(fb) <= o.Ftol {
			return b, nil
		}

		// choose step: interpolation when it helps, bisection otherwise
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			d = m
			e = m
		} else {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant rule with two distinct points
				p = 2.0 * m * s
				q = 1.0 - s
			} else {
				// inverse quadratic interpolation with three distinct points
				q = fa / fc
				r := fb / fc
				p = s * (2.0*m*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			// keep interpolated step only if it stays in bounds and shrinks fast enough
			if 2.0*p < math.Min(3.0*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}

		// move best guess; never step less than the tolerance
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, m)
		}
		fb, err = f(b)
		if err != nil {
			return 0, err
		}
		o.NFeval++
	}
	return 0, chk.Err("brent: fail to converge after %d iterations: x=%g f(x)=%g", o.ItMax, b, fb)
}

// Root finds the root of f within [xa, xb] using a fresh solver with default
// constants. [xa, xb] must bracket the root
func Root(f Ffcn, xa, xb float64) (float64, error) {
	var o Brent
	o.Defaults()
	return o.Root(f, xa, xb)
}
