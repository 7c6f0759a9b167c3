// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package batch implements a simulator for the uptake kinetics of a solute
// onto an adsorbent in a well-mixed batch vessel
package batch

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"

	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/misotherm"
)

// System represents the kinetic rate equations of a well-mixed batch vessel
// based on the linear driving force approximation
//
//   y := {c, q}
//
//              / dc/dt \   / -R k (qeq(c) - q) \
//    dy/dt  =  |       | = |                   |
//              \ dq/dt /   \  k (qeq(c) - q)   /
//
// The system becomes stiff when k (1 + R dqeq/dc) is large compared to the
// output sampling rate; implicit integrators handle this without step-size
// restrictions.
type System struct {

	// input
	Iso misotherm.Model // isotherm model
	K   float64         // lumped mass-transfer rate coefficient
	Bal Balance         // liquid-solid phase balance
	C0  float64         // initial liquid concentration

	// callback functions
	Fcn ode.Cb_fcn // rate equations
	Jac ode.Cb_jac // analytical Jacobian
}

// Init initialises the system and validates the kinetic data
func (o *System) Init(iso misotherm.Model, k float64, bal Balance, c0 float64) (err error) {

	// check
	if k <= 0 {
		return inp.Invalid("k", k, "rate coefficient must be positive")
	}
	if c0 < 0 {
		return inp.Invalid("c0", c0, "initial concentration cannot be negative")
	}
	err = bal.Check()
	if err != nil {
		return
	}

	// set data
	o.Iso, o.K, o.Bal, o.C0 = iso, k, bal, c0
	R := bal.Ratio()

	// y := {c, q}
	o.Fcn = func(f []float64, dt, t float64, y []float64) error {
		f[1] = o.K * (o.Iso.Qeq(y[0]) - y[1]) // dq/dt
		f[0] = -R * f[1]                      // dc/dt
		return nil
	}

	o.Jac = func(dfdy *la.Triplet, dt, t float64, y []float64) error {
		if dfdy.Max() == 0 {
			dfdy.Init(2, 2, 4)
		}
		D := o.Iso.DqeqDc(y[0])
		dfdy.Start()
		dfdy.Put(0, 0, -R*o.K*D)
		dfdy.Put(0, 1, R*o.K)
		dfdy.Put(1, 0, o.K*D)
		dfdy.Put(1, 1, -o.K)
		return nil
	}
	return
}

// IniState returns the initial state vector; the resin starts clean
func (o System) IniState() []float64 {
	return []float64{o.C0, 0}
}

// Closure returns the mass-balance closure residual for a given state
func (o System) Closure(c, q float64) float64 {
	return c + o.Bal.Ratio()*q - o.C0
}
