// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gopsychro/out"
	"github.com/cpmech/gopsychro/proc/heating"
	"github.com/cpmech/gopsychro/tests"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_heat01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("heat01. warm a 10000 kg/h stream from 10 to 30 °C")

	sc, flw := tests.ReadFlow(tst, "data/heating01.sim")

	res, err := heating.FromTemperature(flw, sc.Target)
	if err != nil {
		tst.Errorf("heating failed: %v\n", err)
		return
	}
	io.Pf("%v\n", out.ReportHeating(res))

	// duty and outlet within the correlation set tolerance
	chk.Float64(tst, "t2", 1e-15, res.Outlet.State.Tta, 30)
	chk.Float64(tst, "x2", 1e-17, res.Outlet.State.X, flw.State.X)
	chk.Float64(tst, "q", 561.0, res.Q, 56093)
	chk.Float64(tst, "rh2", 0.1, res.Outlet.State.RH, 17.35)

	// the three drivers land on the same point
	resP, err := heating.FromPower(flw, res.Q)
	if err != nil {
		tst.Errorf("power driver failed: %v\n", err)
		return
	}
	chk.Float64(tst, "t2 from power", 1e-6, resP.Outlet.State.Tta, 30)

	resR, err := heating.FromRelHum(flw, res.Outlet.State.RH)
	if err != nil {
		tst.Errorf("humidity driver failed: %v\n", err)
		return
	}
	chk.Float64(tst, "t2 from rh", 1e-6, resR.Outlet.State.Tta, 30)
}
