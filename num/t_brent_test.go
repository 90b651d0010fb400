// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_brent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent01. cubic equation of Wallis")

	// f(x) = x³ - 2x - 5
	ffcn := func(x float64) (float64, error) {
		return x*x*x - 2.0*x - 5.0, nil
	}

	var sol Brent
	sol.Defaults()
	x, err := sol.Root(ffcn, 2.0, 3.0)
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	io.Pforan("x      = %.15f\n", x)
	io.Pforan("it     = %d\n", sol.It)
	io.Pforan("nfeval = %d\n", sol.NFeval)
	chk.Float64(tst, "x", 1e-10, x, 2.0945514815423265)
	if sol.It < 1 || sol.It > sol.ItMax {
		tst.Errorf("wrong iteration count: %d\n", sol.It)
	}
	if sol.NFeval < sol.It {
		tst.Errorf("nfeval=%d must be at least it=%d\n", sol.NFeval, sol.It)
	}
}

func Test_brent02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent02. fixed point of cosine")

	// f(x) = cos(x) - x
	ffcn := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}

	x, err := Root(ffcn, 0.0, 1.0)
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-10, x, 0.7390851332151607)
}

func Test_brent03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent03. root at endpoint")

	ffcn := func(x float64) (float64, error) {
		return x*x - 1.0, nil
	}

	// f(xa) == 0 returns xa without iterating
	var sol Brent
	sol.Defaults()
	x, err := sol.Root(ffcn, 1.0, 3.0)
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-17, x, 1.0)
	if sol.It != 0 {
		tst.Errorf("endpoint root must not iterate; it=%d\n", sol.It)
	}

	// f(xb) == 0 likewise
	x, err = sol.Root(ffcn, -3.0, -1.0)
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-17, x, -1.0)
}

func Test_brent04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent04. failure cases")

	// no sign change within [xa, xb]
	pos := func(x float64) (float64, error) {
		return x*x + 1.0, nil
	}
	_, err := Root(pos, 0.0, 1.0)
	if err == nil {
		tst.Errorf("Root must fail when the root is not bracketed\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// iteration budget exhausted
	ffcn := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}
	var sol Brent
	sol.Defaults()
	sol.ItMax = 2
	_, err = sol.Root(ffcn, 0.0, 1.0)
	if err == nil {
		tst.Errorf("Root must fail when ItMax is too small\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// error from f propagates
	bad := func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, chk.Err("cannot evaluate f(%g)", x)
		}
		return x - 0.75, nil
	}
	_, err = Root(bad, 0.0, 1.0)
	if err == nil {
		tst.Errorf("Root must propagate errors from f\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_brent05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent05. parameters and descending bracket")

	sol := new(Brent)
	sol.Init(dbf.Params{
		&dbf.P{N: "itmax", V: 33},
		&dbf.P{N: "ftol", V: 1e-10},
		&dbf.P{N: "xtol", V: 1e-8},
	})
	chk.Int(tst, "itmax", sol.ItMax, 33)
	chk.Float64(tst, "ftol", 1e-17, sol.Ftol, 1e-10)
	chk.Float64(tst, "xtol", 1e-17, sol.Xtol, 1e-8)

	// decreasing function: f(xa) > 0 > f(xb)
	ffcn := func(x float64) (float64, error) {
		return 5.0 - math.Exp(x), nil
	}
	x, err := sol.Root(ffcn, 0.0, 3.0)
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-8, x, math.Log(5.0))
}
