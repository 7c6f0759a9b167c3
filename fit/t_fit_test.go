// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// gen_k builds simulations with a trial rate coefficient
func gen_k(x []float64) (*inp.Simulation, error) {
	sim, err := inp.ReadSim("data/stir.sim", false)
	if err != nil {
		return nil, err
	}
	sim.Mdb.Get("iexA").Prms.Find("k").V = x[0]
	return sim, nil
}

// observe synthesises an observed series with the true coefficient ktrue
func observe(tst *testing.T, ktrue float64) *Uptake {
	sim, err := gen_k([]float64{ktrue})
	if err != nil {
		tst.Errorf("cannot read simulation file: %v", err)
		return nil
	}
	sol, err := batch.NewSolver(sim)
	if err != nil {
		tst.Errorf("solver allocation failed: %v", err)
		return nil
	}
	res, err := sol.Run()
	if err != nil {
		tst.Errorf("run failed: %v", err)
		return nil
	}
	obs := new(Uptake)
	for i := 0; i < len(res.T); i += 30 {
		obs.T = append(obs.T, res.T[i])
		obs.C = append(obs.C, res.C[i])
	}
	return obs
}

func Test_fit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fit01. objective function")

	obs := observe(tst, 0.8)
	if obs == nil {
		return
	}
	pars := []Par{{Name: "k", Lo: 0.2, Hi: 2.0}}
	ofunc := Objective(gen_k, pars, obs)

	// the objective vanishes at the true coefficient and grows away from it
	utruth := (0.8 - 0.2) / (2.0 - 0.2)
	at := ofunc([]float64{utruth})
	lo := ofunc([]float64{0.0})
	hi := ofunc([]float64{1.0})
	io.Pforan("objective: truth=%v lo=%v hi=%v\n", at, lo, hi)
	chk.Scalar(tst, "objective at truth", 1e-10, at, 0)
	if lo <= at || hi <= at {
		tst.Errorf("objective must grow away from the truth: %g, %g, %g", lo, at, hi)
		return
	}

	// impossible trials score the penalty
	bad := Objective(func(x []float64) (*inp.Simulation, error) {
		return nil, chk.Err("no such trial")
	}, pars, obs)
	chk.Scalar(tst, "penalty", 1e-17, bad([]float64{0.5}), penalty)
}

func Test_fit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fit02. rate coefficient calibration")

	obs := observe(tst, 0.8)
	if obs == nil {
		return
	}
	pars := []Par{{Name: "k", Lo: 0.2, Hi: 2.0}}
	x, of, err := Calibrate(gen_k, pars, obs, 0)
	if err != nil {
		tst.Errorf("calibration failed: %v", err)
		return
	}
	io.Pforan("k = %v (objective = %v)\n", x[0], of)
	if math.Abs(x[0]-0.8) > 0.05 {
		tst.Errorf("calibrated coefficient too far from the truth: %g", x[0])
	}
}

func Test_fit03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fit03. calibration input checks")

	obs := &Uptake{T: []float64{0, 1}, C: []float64{20, 18}}

	// parameter ranges
	if _, _, err := Calibrate(gen_k, nil, obs, 0); err == nil {
		tst.Errorf("empty parameter set must be rejected")
		return
	}
	pars := []Par{{Name: "k", Lo: 2, Hi: 0.2}}
	if _, _, err := Calibrate(gen_k, pars, obs, 0); err == nil {
		tst.Errorf("empty search range must be rejected")
		return
	}
	pars = []Par{{Name: "k", Lo: 0, Hi: 2, Log: true}}
	if _, _, err := Calibrate(gen_k, pars, obs, 0); err == nil {
		tst.Errorf("log sampling requires a positive lower bound")
		return
	}

	// observed series
	pars = []Par{{Name: "k", Lo: 0.2, Hi: 2}}
	if _, _, err := Calibrate(gen_k, pars, &Uptake{}, 0); err == nil {
		tst.Errorf("empty series must be rejected")
		return
	}
	mism := &Uptake{T: []float64{0, 1}, C: []float64{20}}
	if _, _, err := Calibrate(gen_k, pars, mism, 0); err == nil {
		tst.Errorf("mismatched series must be rejected")
		return
	}

	// parameter mapping
	p := Par{Name: "k", Lo: 0.2, Hi: 2.0}
	chk.Scalar(tst, "value(0)", 1e-15, p.Value(0), 0.2)
	chk.Scalar(tst, "value(1)", 1e-15, p.Value(1), 2.0)
	chk.Scalar(tst, "value(1/3)", 1e-15, p.Value(1.0/3.0), 0.8)
	plog := Par{Name: "k", Lo: 0.01, Hi: 100, Log: true}
	chk.Scalar(tst, "log value(0.5)", 1e-12, plog.Value(0.5), 1.0)
}
