// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting, charting and plotting of process results
package out

import (
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gopsychro/proc/cooling"
	"github.com/cpmech/gopsychro/proc/heating"
	"github.com/cpmech/gopsychro/proc/mixing"
	"github.com/cpmech/gosl/io"
	"github.com/dustin/go-humanize"
)

// power formats a heat rate with an SI prefix
func power(q float64) string {
	return humanize.SIWithDigits(q, 3, "W")
}

// waterflow formats a small water mass flow with an SI prefix
func waterflow(m float64) string {
	return humanize.SIWithDigits(m*1000, 3, "g/s")
}

// FlowTable returns a table with the properties of one humid air stream
func FlowTable(title string, flw *air.Flow) string {
	st := flw.State
	return io.Sf("\n%v", io.ArgsTable(title,
		"absolute pressure [Pa]", "p", io.Sf("%g", st.P),
		"dry-bulb temperature [°C]", "tta", io.Sf("%.2f", st.Tta),
		"humidity ratio [g/kg]", "x", io.Sf("%.4f", st.X*1000),
		"relative humidity [%]", "rh", io.Sf("%.2f", st.RH),
		"specific enthalpy [kJ/kg]", "i", io.Sf("%.3f", st.I),
		"wet-bulb temperature [°C]", "twb", io.Sf("%.2f", st.Twb),
		"dew point temperature [°C]", "tdp", io.Sf("%.2f", st.Tdp),
		"density [kg/m³]", "rho", io.Sf("%.4f", st.Rho),
		"moisture condition", "vap", st.Vap.String(),
		"dry air mass flow [kg/s]", "mda", io.Sf("%.4f", flw.Mda),
		"total mass flow [kg/s]", "m", io.Sf("%.4f", flw.M),
		"volume flow [m³/s]", "v", io.Sf("%.4f", flw.V),
	))
}

// ReportHeating returns a report of a heating step
func ReportHeating(res *heating.Result) string {
	return io.Sf("\n%v", io.ArgsTable("heating",
		"heat added", "q", power(res.Q),
	)) + FlowTable("inlet", res.Inlet) + FlowTable("outlet", res.Outlet)
}

// ReportCooling returns a report of a cooling step
func ReportCooling(res *cooling.Result) string {
	return io.Sf("\n%v", io.ArgsTable("cooling",
		"heat removed", "q", power(res.Q),
		"coil bypass factor", "bf", io.Sf("%.4f", res.BF),
		"coil wall temperature [°C]", "twall", io.Sf("%.2f", res.Twall),
		"condensate flow", "mcond", waterflow(res.Condensate.M),
		"chilled water flow [kg/s]", "mc", io.Sf("%.4f", res.CoolantSupply.M),
		"chilled water supply [°C]", "tsup", io.Sf("%.2f", res.CoolantSupply.State.Tta),
		"chilled water return [°C]", "tret", io.Sf("%.2f", res.CoolantReturn.State.Tta),
	)) + FlowTable("inlet", res.Inlet) + FlowTable("outlet", res.Outlet)
}

// ReportMixing returns a report of a mixing step
func ReportMixing(res *mixing.Result) string {
	return FlowTable("first", res.First) + FlowTable("second", res.Second) + FlowTable("outlet", res.Outlet)
}
