// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot draws the saturation line, constant relative humidity curves and an
// optional process path, saving an EPS figure under dirout
func Plot(dirout, fnkey string, p float64, states ...*air.State) error {
	plt.Reset(false, nil)

	// saturation pressure along the temperature grid
	tt := utl.LinSpace(0, 50, 101)
	pss := make([]float64, len(tt))
	for i, t := range tt {
		ps, err := air.SatPressure(t)
		if err != nil {
			return err
		}
		pss[i] = ps
	}

	// saturation line and constant relative humidity curves
	for _, rh := range []float64{20, 40, 60, 80, 100} {
		xx := make([]float64, 0, len(tt))
		tv := make([]float64, 0, len(tt))
		for i, t := range tt {
			if rh/100.0*pss[i] >= 0.5*p {
				break
			}
			tv = append(tv, t)
			xx = append(xx, air.HumRatio(rh, pss[i], p)*1000)
		}
		args := &plt.A{C: "#b7b7b7", Ls: "--"}
		if rh == 100 {
			args = &plt.A{C: "b", Ls: "-", L: "saturation"}
		}
		plt.Plot(tv, xx, args)
	}

	// process path
	if len(states) > 0 {
		tp := make([]float64, len(states))
		xp := make([]float64, len(states))
		for i, st := range states {
			tp[i] = st.Tta
			xp[i] = st.X * 1000
		}
		plt.Plot(tp, xp, &plt.A{C: "r", Ls: "-", M: "o", L: "process"})
	}

	plt.Gll("$t$ [°C]", "$x$ [g/kg]", nil)
	plt.Save(dirout, fnkey)
	return nil
}
