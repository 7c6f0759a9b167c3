// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"

	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

// Integrator wraps a scheme advancing the kinetic system in time
type Integrator interface {
	Init(ndim int, fcn ode.Cb_fcn, jac ode.Cb_jac, sd *inp.SolverData) // initialises scheme
	Advance(y []float64, ta, tb float64) error                        // advances y from ta to tb, in place
}

// NewIntegrator returns an initialised integrator according to the name in
// the solver data
func NewIntegrator(sd *inp.SolverData, ndim int, fcn ode.Cb_fcn, jac ode.Cb_jac) (Integrator, error) {
	alloc, ok := integrators[sd.Itg]
	if !ok {
		return nil, chk.Err("batch: cannot find integrator %q. e.g. {radau5, bweuler, dopri5, fweuler}", sd.Itg)
	}
	itg := alloc()
	itg.Init(ndim, fcn, jac, sd)
	return itg, nil
}

// integrators holds all available integrators
var integrators = make(map[string]func() Integrator)

// OdeSolver implements Integrator using the implicit/explicit Runge-Kutta
// schemes from gosl/ode
type OdeSolver struct {
	method string
	fixed  bool // scheme has no error estimator; use fixed substeps
	sol    ode.Solver
}

// nsubFixed is the number of substeps per output segment taken by schemes
// without step-size control
const nsubFixed = 10

// add integrators to factory
func init() {
	for key, m := range map[string]struct {
		method string
		fixed  bool
	}{
		"radau5":  {"Radau5", false},
		"dopri5":  {"Dopri5", false},
		"bweuler": {"BwEuler", true},
		"fweuler": {"FwEuler", true},
	} {
		m := m
		integrators[key] = func() Integrator { return &OdeSolver{method: m.method, fixed: m.fixed} }
	}
}

// Init initialises the scheme
func (o *OdeSolver) Init(ndim int, fcn ode.Cb_fcn, jac ode.Cb_jac, sd *inp.SolverData) {
	o.sol.Init(o.method, ndim, fcn, jac, nil, nil)
	o.sol.SetTol(sd.Atol, sd.Rtol)
	o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
}

// Advance integrates the system from ta to tb, updating y in place
func (o *OdeSolver) Advance(y []float64, ta, tb float64) error {
	if o.fixed {
		return o.sol.Solve(y, ta, tb, (tb-ta)/float64(nsubFixed), true)
	}
	return o.sol.Solve(y, ta, tb, tb-ta, false)
}
