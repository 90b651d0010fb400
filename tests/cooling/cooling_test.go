// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gopsychro/out"
	"github.com/cpmech/gopsychro/proc/cooling"
	"github.com/cpmech/gopsychro/tests"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cool01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cool01. dry a 34 °C stream over a 11.5 °C coil wall")

	sc, flw := tests.ReadFlow(tst, "data/cooling01.sim")

	cool, err := cooling.NewCoolant(sc.Coolant.Supply, sc.Coolant.Return)
	if err != nil {
		tst.Errorf("coolant failed: %v\n", err)
		return
	}
	res, err := cooling.FromTemperature(flw, cool, sc.Target)
	if err != nil {
		tst.Errorf("cooling failed: %v\n", err)
		return
	}
	io.Pf("%v\n", out.ReportCooling(res))

	// duty, outlet moisture and condensate within the correlation set tolerance
	chk.Float64(tst, "t2", 1e-15, res.Outlet.State.Tta, 17)
	chk.Float64(tst, "q", 268.0, res.Q, -26835)
	chk.Float64(tst, "x2", 1e-4, res.Outlet.State.X, 0.009773)
	chk.Float64(tst, "mcond", 4e-5, res.Condensate.M, 0.003760)
	chk.Float64(tst, "tcond", 1e-15, res.Condensate.State.Tta, res.Twall)

	// the three drivers land on the same point
	resP, err := cooling.FromPower(flw, cool, res.Q)
	if err != nil {
		tst.Errorf("power driver failed: %v\n", err)
		return
	}
	chk.Float64(tst, "t2 from power", 1e-6, resP.Outlet.State.Tta, 17)

	resR, err := cooling.FromRelHum(flw, cool, res.Outlet.State.RH)
	if err != nil {
		tst.Errorf("humidity driver failed: %v\n", err)
		return
	}
	chk.Float64(tst, "t2 from rh", 1e-6, resR.Outlet.State.Tta, 17)

	// chart output
	if chk.Verbose {
		cht := out.NewChart(sc.Desc, flw.State.P)
		cht.AddProcess("cooling path", flw.State, res.Outlet.State)
		err = cht.Save(sc.DirOut, sc.Chart)
		if err != nil {
			tst.Errorf("chart failed: %v\n", err)
			return
		}
	}
}
