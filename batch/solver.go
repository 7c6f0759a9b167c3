// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/misotherm"
)

// Solver runs one batch adsorption simulation. It holds no state between
// runs; Run may be called many times and always restarts from t=0 with a
// clean resin.
type Solver struct {
	Sim     *inp.Simulation // simulation data
	Sys     System          // kinetic system
	Itg     Integrator      // time integrator
	Verbose bool            // show messages
}

// NewSolver returns a ready-to-run solver. All input data are validated
// here; the integrator is only allocated once every check has passed.
func NewSolver(sim *inp.Simulation) (o *Solver, err error) {

	// check process and solver data
	err = sim.Batch.Check()
	if err != nil {
		return nil, err
	}
	err = sim.Solver.Check()
	if err != nil {
		return nil, err
	}

	// material
	if sim.Mdb == nil {
		return nil, chk.Err("batch: materials database is not available")
	}
	mat := sim.Mdb.Get(sim.Batch.Mat)
	if mat == nil {
		return nil, chk.Err("batch: cannot find material %q in database", sim.Batch.Mat)
	}
	err = mat.Check()
	if err != nil {
		return nil, err
	}
	k, err := mat.RateCoef()
	if err != nil {
		return nil, err
	}

	// isotherm model
	iso := misotherm.GetModel(sim.Key, mat.Name, mat.Model, false)
	if iso == nil {
		return nil, chk.Err("batch: cannot find isotherm model %q for material %q", mat.Model, mat.Name)
	}
	err = iso.Init(mat.Prms)
	if err != nil {
		return nil, err
	}

	// balance and kinetic system
	bal, err := NewBalance(&sim.Batch)
	if err != nil {
		return nil, err
	}
	o = new(Solver)
	o.Sim = sim
	err = o.Sys.Init(iso, k, bal, sim.Batch.C0)
	if err != nil {
		return nil, err
	}

	// integrator
	o.Itg, err = NewIntegrator(&sim.Solver, 2, o.Sys.Fcn, o.Sys.Jac)
	if err != nil {
		return nil, err
	}
	inp.Log("batch: solver ready: mat=%q model=%q itg=%q", mat.Name, mat.Model, sim.Solver.Itg)
	return
}

// Run simulates the batch process from t=0 to t=tend, sampling the state at
// npts evenly spaced times. On integrator failures no results are returned.
func (o *Solver) Run() (res *Results, err error) {

	// results and initial state
	dat := &o.Sim.Batch
	res = NewResults(&o.Sys, dat.Tend, dat.Npts)
	y := o.Sys.IniState()
	res.Set(0, y)

	// time loop
	cputime := time.Now()
	for i := 1; i < dat.Npts; i++ {
		err = o.Itg.Advance(y, res.T[i-1], res.T[i])
		if err != nil {
			inp.Log("batch: run failed after t=%g: %v", res.T[i-1], err)
			return nil, &IntegrationError{o.Sim.Solver.Itg, res.T[i-1], err}
		}
		res.Set(i, y)
	}

	// message
	if o.Verbose {
		io.Pf("\nfinal time = %v\n", res.T[dat.Npts-1])
		io.Pfblue2("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	inp.Log("batch: run completed: tend=%g npts=%d c=%g q=%g", dat.Tend, dat.Npts, res.FinalC(), res.FinalQ())
	return
}
