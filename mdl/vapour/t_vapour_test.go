// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapour

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vapour01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vapour01. properties against tabulated data")

	// specific heat [kJ/(kg・K)]
	chk.AnaNum(tst, "cp(0)  ", 2e-3, Cp(0), 1.858, chk.Verbose)
	chk.AnaNum(tst, "cp(50) ", 3e-3, Cp(50), 1.868, chk.Verbose)
	chk.AnaNum(tst, "cp(100)", 5e-3, Cp(100), 1.881, chk.Verbose)

	// enthalpy carries the latent heat at the 0°C reference
	chk.Float64(tst, "h(0)", 1e-14, H(0), R0)
	chk.AnaNum(tst, "h(30)", 0.1, H(30), 2556.8, chk.Verbose)

	// density of saturated vapour at 20°C (pw = 2339 Pa) [kg/m³]
	chk.AnaNum(tst, "rho(20)", 1e-4, Rho(20, 2339), 0.01729, chk.Verbose)

	// transport properties [Pa・s] and [W/(m・K)]
	chk.AnaNum(tst, "mu(20)    ", 2e-7, Mu(20), 8.86e-6, chk.Verbose)
	chk.AnaNum(tst, "mu(100)   ", 2e-7, Mu(100), 1.206e-5, chk.Verbose)
	chk.AnaNum(tst, "kappa(20) ", 2e-4, Kappa(20), 0.0188, chk.Verbose)
	chk.AnaNum(tst, "kappa(100)", 3e-4, Kappa(100), 0.0248, chk.Verbose)
}
