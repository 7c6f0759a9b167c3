// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements the calibration of kinetic and isotherm constants
// to observed uptake curves
package fit

import (
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/sweep"
)

// Uptake holds an observed liquid concentration series
type Uptake struct {
	T []float64 // sample times
	C []float64 // observed liquid concentrations
}

// Check validates the observed series
func (o *Uptake) Check() error {
	if len(o.T) < 1 {
		return chk.Err("fit: observed series is empty")
	}
	if len(o.T) != len(o.C) {
		return chk.Err("fit: observed series has %d times but %d concentrations", len(o.T), len(o.C))
	}
	return nil
}

// Par describes one calibrated parameter and its search range
type Par struct {
	Name string  // name in the material database; e.g. "k"
	Lo   float64 // lower bound
	Hi   float64 // upper bound
	Log  bool    // sample on a log scale (for coefficients spanning decades)
}

// Value maps a unit-interval sample onto the parameter range
func (o Par) Value(u float64) float64 {
	if o.Log {
		return mmaths.LogLinearTransform(o.Lo, o.Hi, u)
	}
	return mmaths.LinearTransform(o.Lo, o.Hi, u)
}

// Check validates the search range
func (o Par) Check() error {
	if o.Hi <= o.Lo {
		return chk.Err("fit: parameter %q has an empty search range [%g, %g]", o.Name, o.Lo, o.Hi)
	}
	if o.Log && o.Lo <= 0 {
		return chk.Err("fit: parameter %q needs a positive lower bound for log sampling", o.Name)
	}
	return nil
}

// penalty marks trial runs that could not be completed
const penalty = 1e30

// Objective returns the sum of squared residuals between trial runs and the
// observed series, as a function of the unit-interval samples u. Trials that
// cannot be run score the penalty value.
func Objective(gen sweep.Generator, pars []Par, obs *Uptake) func(u []float64) float64 {
	var trial int64
	return func(u []float64) float64 {
		x := make([]float64, len(pars))
		for j, p := range pars {
			x[j] = p.Value(u[j])
		}
		sim, err := gen(x)
		if err != nil {
			return penalty
		}

		// a per-trial key keeps isotherm model allocations private
		sim.Key = io.Sf("%s_trial%d", sim.Key, atomic.AddInt64(&trial, 1))

		sol, err := batch.NewSolver(sim)
		if err != nil {
			return penalty
		}
		res, err := sol.Run()
		if err != nil {
			return penalty
		}
		var sum float64
		for i, t := range obs.T {
			d := res.CAt(t) - obs.C[i]
			sum += d * d
		}
		return sum
	}
}

// Calibrate finds the parameter values minimising the misfit to the observed
// series. One-parameter problems use a Fibonacci line search; otherwise the
// shuffled complex evolution method runs nwrk concurrent trials.
//  nwrk -- number of concurrent trial runs; use 0 for GOMAXPROCS
func Calibrate(gen sweep.Generator, pars []Par, obs *Uptake, nwrk int) (x []float64, of float64, err error) {
	if len(pars) < 1 {
		return nil, 0, chk.Err("fit: at least one parameter is required")
	}
	for _, p := range pars {
		if err = p.Check(); err != nil {
			return nil, 0, err
		}
	}
	if err = obs.Check(); err != nil {
		return nil, 0, err
	}
	if nwrk < 1 {
		nwrk = runtime.GOMAXPROCS(0)
	}
	ofunc := Objective(gen, pars, obs)
	var ufinal []float64
	if len(pars) == 1 {
		u, o := glbopt.Fibonacci(ofunc)
		ufinal, of = []float64{u}, o
	} else {
		rng := rand.New(mrg63k3a.New())
		rng.Seed(time.Now().UnixNano())
		ufinal, of = glbopt.SCE(nwrk, len(pars), rng, ofunc, true)
	}
	x = make([]float64, len(pars))
	for j, p := range pars {
		x[j] = p.Value(ufinal[j])
		inp.Log("fit: %s = %g", p.Name, x[j])
	}
	inp.Log("fit: objective = %g", of)
	return
}
