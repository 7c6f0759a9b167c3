// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for batch adsorption runs
package ana

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/mjmahoneyCU/batch-adsorption/misotherm"
)

// Equilibrium computes the rest state of a well-mixed batch vessel by
// intersecting the isotherm with the operating line of the mass balance
//
//   q
//   |                      _ - qeq(c)
//   |                 , '
//   |             , '
//   |          ,*   <- rest state
//   |       , '|
//   |    , '   |  q = (c0 - c) / R
//   |  ,       |
//   |'_________|__________ c
//             ceq
//
// Rate coefficients only set how fast this state is approached, never where
// it lies.
type Equilibrium struct {

	// input
	Iso misotherm.Model // isotherm model
	R   float64         // solid to liquid phase-volume ratio
	C0  float64         // initial liquid concentration
}

// Init initialises this structure
func (o *Equilibrium) Init(iso misotherm.Model, R, c0 float64) {
	o.Iso, o.R, o.C0 = iso, R, c0
}

// Ceq returns the equilibrium liquid concentration
func (o Equilibrium) Ceq() float64 {
	var nls num.NlSolver
	defer nls.Clean()
	Res := []float64{o.C0 / 2.0} // initial values
	nls.Init(1, o.fx_fun, nil, o.dfdx_fun, true, false, nil)
	nls.Solve(Res, true)
	return Res[0]
}

// Qeq returns the equilibrium resin loading
func (o Equilibrium) Qeq() float64 {
	return (o.C0 - o.Ceq()) / o.R
}

// LangmuirCeq returns the closed-form equilibrium concentration of a
// langmuir resin with saturation capacity qmax and half-saturation
// concentration kl; i.e. the positive root of
//
//   c² + (kl + R qmax - c0) c - kl c0 = 0
//
func LangmuirCeq(kl, qmax, R, c0 float64) float64 {
	b := kl + R*qmax - c0
	return (-b + math.Sqrt(b*b+4.0*kl*c0)) / 2.0
}

// HenryCeq returns the closed-form equilibrium concentration of a linear
// resin with partition coefficient kh
func HenryCeq(kh, R, c0 float64) float64 {
	return c0 / (1.0 + R*kh)
}

// auxiliary /////////////////////////////////////////////////////////////////////

// fx_fun implements the nonlinear problem to be solved when finding ceq
func (o Equilibrium) fx_fun(fx, X []float64) (err error) {
	c := X[0]
	fx[0] = c + o.R*o.Iso.Qeq(c) - o.C0
	return
}

// dfdx_fun is the derivative of fx_fun
func (o Equilibrium) dfdx_fun(dfdx [][]float64, X []float64) (err error) {
	c := X[0]
	dfdx[0][0] = 1.0 + o.R*o.Iso.DqeqDc(c)
	return
}
