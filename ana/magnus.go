// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed form approximations to psychrometric
// properties. these are simpler and less accurate than the correlations in
// mdl and serve as independent cross checks
package ana

import "math"

// constants of the Magnus form over liquid water
//  References:
//   [1] Alduchov OA and Eskridge RE (1996) Improved Magnus form approximation
//       of saturation vapor pressure, Journal of Applied Meteorology,
//       35(4):601-609
const (
	MagnusA = 610.94  // [Pa]
	MagnusB = 17.625  // [-]
	MagnusC = 243.04  // [°C]
)

// constants of the Magnus form over ice [1]
const (
	MagnusIceA = 611.15  // [Pa]
	MagnusIceB = 22.587  // [-]
	MagnusIceC = 273.86  // [°C]
)

// MagnusPs computes the saturation pressure of water vapour over liquid water
//  Input:
//   t -- temperature [°C]
//  Output:
//   ps -- saturation pressure [Pa]
func MagnusPs(t float64) float64 {
	return MagnusA * math.Exp(MagnusB*t/(MagnusC+t))
}

// MagnusPsIce computes the saturation pressure of water vapour over ice
//  Input:
//   t -- temperature [°C] (t < 0)
//  Output:
//   ps -- saturation pressure [Pa]
func MagnusPsIce(t float64) float64 {
	return MagnusIceA * math.Exp(MagnusIceB*t/(MagnusIceC+t))
}

// MagnusDewPoint computes the dew point temperature by inverting the Magnus
// form over liquid water
//  Input:
//   t  -- dry bulb temperature [°C]
//   rh -- relative humidity [%]
//  Output:
//   tdp -- dew point temperature [°C]
func MagnusDewPoint(t, rh float64) float64 {
	γ := math.Log(rh/100.0) + MagnusB*t/(MagnusC+t)
	return MagnusC * γ / (MagnusB - γ)
}
