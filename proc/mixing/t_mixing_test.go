// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixing

import (
	"testing"

	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mixing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixing01. adiabatic mixing balance")

	stA, err := air.NewStateRH(101325, 30, 40)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	stB, err := air.NewStateRH(101325, 10, 60)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	flwA, err := air.NewFlow(stA, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	flwB, err := air.NewFlow(stB, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}

	res, err := Mix(flwA, flwB)
	if err != nil {
		tst.Errorf("mixing failed: %v\n", err)
		return
	}
	out := res.Outlet.State
	io.Pf("t3 = %v °C\n", out.Tta)
	io.Pf("x3 = %v\n", out.X)
	io.Pf("i3 = %v kJ/kg\n", out.I)

	chk.Float64(tst, "mda3", 1e-15, res.Outlet.Mda, 2)
	chk.Float64(tst, "x3 balance", 1e-16, out.X, (stA.X+stB.X)/2.0)
	chk.Float64(tst, "i3 balance", 1e-8, out.I, (stA.I+stB.I)/2.0)
	chk.Float64(tst, "t3", 0.1, out.Tta, 20.06)
	if out.Tta <= stB.Tta || out.Tta >= stA.Tta {
		tst.Errorf("outlet temperature must sit between the streams: %v\n", out.Tta)
		return
	}

	// dry-air weighting
	flwB3, err := air.NewFlow(stB, 3.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	res3, err := Mix(flwA, flwB3)
	if err != nil {
		tst.Errorf("mixing failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x3 weighted", 1e-16, res3.Outlet.State.X, (flwA.Mda*stA.X+flwB3.Mda*stB.X)/4.0)
	chk.Float64(tst, "i3 weighted", 1e-8, res3.Outlet.State.I, (flwA.Mda*stA.I+flwB3.Mda*stB.I)/4.0)

	// an empty second stream leaves the first one alone
	empty, err := air.NewFlow(stB, 0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	resE, err := Mix(flwA, empty)
	if err != nil {
		tst.Errorf("mixing failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x3 empty", 1e-16, resE.Outlet.State.X, stA.X)
	chk.Float64(tst, "t3 empty", 1e-9, resE.Outlet.State.Tta, stA.Tta)

	// two near-saturated streams far apart in temperature make fog
	stC, err := air.NewStateRH(101325, 30, 98)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	stD, err := air.NewStateRH(101325, 5, 98)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	flwC, err := air.NewFlow(stC, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	flwD, err := air.NewFlow(stD, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	resF, err := Mix(flwC, flwD)
	if err != nil {
		tst.Errorf("mixing failed: %v\n", err)
		return
	}
	fog := resF.Outlet.State
	io.Pf("fog: t3 = %v °C  x3 = %v  rh3 = %v %%\n", fog.Tta, fog.X, fog.RH)
	chk.Int(tst, "fog vap", int(fog.Vap), int(air.WaterMist))
	chk.Float64(tst, "fog i3 balance", 1e-8, fog.I, (stC.I+stD.I)/2.0)
	if fog.RH <= 100 {
		tst.Errorf("fog must sit beyond saturation: rh=%v\n", fog.RH)
		return
	}
	if fog.Tta <= stD.Tta || fog.Tta >= stC.Tta {
		tst.Errorf("fog temperature must sit between the streams: %v\n", fog.Tta)
		return
	}
}

func Test_mixing02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixing02. sizing the second stream and input checks")

	stA, err := air.NewStateRH(101325, 30, 40)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	stB, err := air.NewStateRH(101325, 10, 60)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	flwA, err := air.NewFlow(stA, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}

	res, err := FromTargetHumidity(flwA, stB, 0.008)
	if err != nil {
		tst.Errorf("sizing failed: %v\n", err)
		return
	}
	io.Pf("mda2 = %v kg/s\n", res.Second.Mda)
	chk.Float64(tst, "mda2", 1e-15, res.Second.Mda, flwA.Mda*(0.008-stA.X)/(stB.X-0.008))
	chk.Float64(tst, "x3", 1e-12, res.Outlet.State.X, 0.008)
	if res.Second.Mda <= 0 {
		tst.Errorf("second stream must carry dry air: mda2=%v\n", res.Second.Mda)
		return
	}

	// hitting the first stream's own humidity needs no second stream
	resSame, err := FromTargetHumidity(flwA, stB, stA.X)
	if err != nil {
		tst.Errorf("sizing failed: %v\n", err)
		return
	}
	chk.Float64(tst, "mda2 same", 1e-15, resSame.Second.Mda, 0)
	chk.Float64(tst, "x3 same", 1e-12, resSame.Outlet.State.X, stA.X)

	// invalid requests
	if _, err := FromTargetHumidity(flwA, stB, 0.02); err == nil {
		tst.Errorf("target above both streams must fail\n")
		return
	}
	if _, err := FromTargetHumidity(flwA, stB, 0.002); err == nil {
		tst.Errorf("target below both streams must fail\n")
		return
	}
	if _, err := FromTargetHumidity(flwA, stB, stB.X); err == nil {
		tst.Errorf("target on the second stream must fail\n")
		return
	}
	stP, err := air.NewStateRH(100000, 10, 60)
	if err != nil {
		tst.Fatalf("state failed: %v\n", err)
	}
	if _, err := FromTargetHumidity(flwA, stP, 0.008); err == nil {
		tst.Errorf("pressure mismatch must fail\n")
		return
	}
	flwP, err := air.NewFlow(stP, 1.0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	if _, err := Mix(flwA, flwP); err == nil {
		tst.Errorf("pressure mismatch must fail\n")
		return
	}
	emptyA, err := air.NewFlow(stA, 0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	emptyB, err := air.NewFlow(stB, 0)
	if err != nil {
		tst.Fatalf("flow failed: %v\n", err)
	}
	if _, err := Mix(emptyA, emptyB); err == nil {
		tst.Errorf("two empty streams must fail\n")
		return
	}
}
