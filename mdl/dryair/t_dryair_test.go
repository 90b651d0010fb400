// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dryair

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dryair01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dryair01. properties against tabulated data")

	// specific heat [kJ/(kg・K)]
	chk.AnaNum(tst, "cp(0)  ", 1e-3, Cp(0), 1.005, chk.Verbose)
	chk.AnaNum(tst, "cp(20) ", 1e-3, Cp(20), 1.006, chk.Verbose)
	chk.AnaNum(tst, "cp(100)", 5e-3, Cp(100), 1.011, chk.Verbose)

	// enthalpy reference is zero at 0°C
	chk.Float64(tst, "h(0)", 1e-17, H(0), 0)
	chk.AnaNum(tst, "h(30)", 1e-2, H(30), 30.20, chk.Verbose)

	// density at standard atmosphere [kg/m³]
	chk.AnaNum(tst, "rho(20)", 1e-3, Rho(20, 101325), 1.2041, chk.Verbose)
	chk.AnaNum(tst, "rho(0) ", 1e-3, Rho(0, 101325), 1.2922, chk.Verbose)

	// viscosity [Pa・s] and conductivity [W/(m・K)]
	chk.AnaNum(tst, "mu(20)   ", 1e-7, Mu(20), 1.813e-5, chk.Verbose)
	chk.AnaNum(tst, "mu(100)  ", 2e-7, Mu(100), 2.181e-5, chk.Verbose)
	chk.AnaNum(tst, "kappa(20)", 2e-4, Kappa(20), 0.0259, chk.Verbose)
}

func Test_dryair02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dryair02. monotonic behaviour over working range")

	T := utl.LinSpace(-90, 200, 30)
	for i := 1; i < len(T); i++ {
		if H(T[i]) <= H(T[i-1]) {
			tst.Errorf("enthalpy must increase with temperature: h(%g)=%g h(%g)=%g\n", T[i-1], H(T[i-1]), T[i], H(T[i]))
			return
		}
		if Mu(T[i]) <= Mu(T[i-1]) {
			tst.Errorf("viscosity must increase with temperature\n")
			return
		}
		if Kappa(T[i]) <= Kappa(T[i-1]) {
			tst.Errorf("conductivity must increase with temperature\n")
			return
		}
		if Rho(T[i], 101325) >= Rho(T[i-1], 101325) {
			tst.Errorf("density must decrease with temperature\n")
			return
		}
	}
}
