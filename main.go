// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopsychro/inp"
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gopsychro/out"
	"github.com/cpmech/gopsychro/proc/cooling"
	"github.com/cpmech/gopsychro/proc/heating"
	"github.com/cpmech/gopsychro/proc/mixing"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	io.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nGopsychro -- Psychrometric Properties and Processes\n")
		io.Pf("Copyright 2016 The Gopsychro Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"draw figure", "doplot", doplot,
		))
	}

	// read scenario
	sc, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read scenario:\n%v", err)
	}

	// inlet stream
	flw, err := sc.Flow()
	if err != nil {
		chk.Panic("cannot build inlet stream:\n%v", err)
	}

	// run process
	var report string
	states := []*air.State{flw.State}
	switch sc.Process {

	case "heating":
		var res *heating.Result
		switch sc.Mode {
		case "power":
			res, err = heating.FromPower(flw, sc.Target)
		case "temperature":
			res, err = heating.FromTemperature(flw, sc.Target)
		case "rh":
			res, err = heating.FromRelHum(flw, sc.Target)
		}
		if err != nil {
			chk.Panic("heating failed:\n%v", err)
		}
		report = out.ReportHeating(res)
		states = append(states, res.Outlet.State)

	case "cooling":
		cool, err2 := cooling.NewCoolant(sc.Coolant.Supply, sc.Coolant.Return)
		if err2 != nil {
			chk.Panic("cannot build coolant:\n%v", err2)
		}
		var res *cooling.Result
		switch sc.Mode {
		case "power":
			res, err = cooling.FromPower(flw, cool, sc.Target)
		case "temperature":
			res, err = cooling.FromTemperature(flw, cool, sc.Target)
		case "rh":
			res, err = cooling.FromRelHum(flw, cool, sc.Target)
		}
		if err != nil {
			chk.Panic("cooling failed:\n%v", err)
		}
		report = out.ReportCooling(res)
		states = append(states, res.Outlet.State)

	case "mixing":
		var res *mixing.Result
		switch sc.Mode {
		case "flow":
			second, err2 := sc.Second.Flow()
			if err2 != nil {
				chk.Panic("cannot build second stream:\n%v", err2)
			}
			res, err = mixing.Mix(flw, second)
		case "humratio":
			second, err2 := sc.Second.State()
			if err2 != nil {
				chk.Panic("cannot build second stream:\n%v", err2)
			}
			res, err = mixing.FromTargetHumidity(flw, second, sc.Target)
		}
		if err != nil {
			chk.Panic("mixing failed:\n%v", err)
		}
		report = out.ReportMixing(res)
		states = append(states, res.Second.State, res.Outlet.State)
	}

	// report
	if sc.Report {
		io.Pf("%v\n", report)
	}

	// chart
	if sc.Chart != "" {
		cht := out.NewChart(sc.Desc, flw.State.P)
		cht.AddProcess("process path", states...)
		err = cht.Save(sc.DirOut, sc.Chart)
		if err != nil {
			chk.Panic("cannot save chart:\n%v", err)
		}
		io.Pf("file <%s/%s> written\n", sc.DirOut, sc.Chart)
	}

	// figure
	if doplot {
		err = out.Plot(sc.DirOut, sc.Key, flw.State.P, states...)
		if err != nil {
			chk.Panic("cannot save figure:\n%v", err)
		}
	}
}
