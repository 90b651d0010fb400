// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gopsychro/out"
	"github.com/cpmech/gopsychro/proc/mixing"
	"github.com/cpmech/gopsychro/tests"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mix01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("mix01. blend a 30 °C stream with a 10 °C one")

	sc, first := tests.ReadFlow(tst, "data/mixing01.sim")

	second, err := sc.Second.Flow()
	if err != nil {
		tst.Errorf("second stream failed: %v\n", err)
		return
	}
	res, err := mixing.Mix(first, second)
	if err != nil {
		tst.Errorf("mixing failed: %v\n", err)
		return
	}
	io.Pf("%v\n", out.ReportMixing(res))

	// balances on a dry air basis
	mixed := res.Outlet
	mda := first.Mda + second.Mda
	chk.Float64(tst, "mda3", 1e-15, mixed.Mda, mda)
	chk.Float64(tst, "x3", 1e-16, mixed.State.X, (first.Mda*first.State.X+second.Mda*second.State.X)/mda)
	chk.Float64(tst, "i3", 1e-8, mixed.State.I, (first.Mda*first.State.I+second.Mda*second.State.I)/mda)
	if mixed.State.Tta <= second.State.Tta || mixed.State.Tta >= first.State.Tta {
		tst.Errorf("outlet temperature must sit between the streams: %v\n", mixed.State.Tta)
		return
	}
}
