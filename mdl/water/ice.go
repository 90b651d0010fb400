// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

// Lf is the latent heat of fusion of water at 0°C [kJ/kg]
const Lf = 333.55

// CpIce returns the specific heat of ice [kJ/(kg・K)]. Linear fit to
// tabulated data for -100 to 0°C
//  t: temperature [°C] (t ≤ 0 for physical ice)
func CpIce(t float64) float64 {
	return 2.108 + 0.0068*t
}

// HIce returns the specific enthalpy of ice [kJ/kg] relative to liquid
// water at 0°C; it is negative for all physical ice temperatures because
// of the latent heat of fusion
//  t: temperature [°C]
func HIce(t float64) float64 {
	return -Lf + t*(2.108+0.0034*t)
}
