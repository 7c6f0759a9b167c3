// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sweep implements parameter studies over repeated batch runs
package sweep

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/gosuri/uiprogress"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

// Final holds the final state of one run of a study
type Final struct {
	X  float64   // value of the swept parameter (one-parameter studies)
	U  []float64 // values of the swept parameters
	C  float64   // final liquid concentration
	Q  float64   // final resin loading
	Mb float64   // final bound mass; zero unless the balance is column based
}

// Generator builds a ready-to-run simulation for one sample x of the swept
// parameters. Generators must return a fresh Simulation on every call; they
// are invoked from many goroutines.
type Generator func(x []float64) (*inp.Simulation, error)

// Range studies one parameter sampled at n evenly spaced values in [lo, hi]
//  nwrk -- number of concurrent runs; use 0 for GOMAXPROCS
func Range(gen Generator, lo, hi float64, n, nwrk int) ([]*Final, error) {
	xs := make([][]float64, n)
	for k, x := range utl.LinSpace(lo, hi, n) {
		xs[k] = []float64{x}
	}
	finals, err := study(gen, xs, nwrk)
	if err != nil {
		return nil, err
	}
	for _, f := range finals {
		f.X = f.U[0]
	}
	return finals, nil
}

// MonteCarlo studies p parameters sampled with a latin hypercube plan of n
// points; sample k of parameter j lies in [lo[j], hi[j]]
func MonteCarlo(gen Generator, lo, hi []float64, n, nwrk int) ([]*Final, error) {
	p := len(lo)
	if len(hi) != p {
		return nil, chk.Err("sweep: lo and hi must have the same length. %d != %d", p, len(hi))
	}
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)
	xs := make([][]float64, n)
	for k := 0; k < n; k++ {
		x := make([]float64, p)
		for j := 0; j < p; j++ {
			x[j] = lo[j] + sp.U[j][k]*(hi[j]-lo[j])
		}
		xs[k] = x
	}
	return study(gen, xs, nwrk)
}

// study runs one simulation per sample using a pool of workers
func study(gen Generator, xs [][]float64, nwrk int) ([]*Final, error) {
	n := len(xs)
	finals := make([]*Final, n)
	errs := make([]error, n)

	var bar *uiprogress.Bar
	if io.Verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(n).AppendCompleted().PrependElapsed()
	}

	if nwrk < 1 {
		nwrk = runtime.GOMAXPROCS(0)
	}
	jobs := make(chan int, nwrk)
	var wg sync.WaitGroup
	wg.Add(nwrk)
	for w := 0; w < nwrk; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				finals[k], errs[k] = runone(gen, xs[k], k)
				if bar != nil {
					bar.Incr()
				}
			}
		}()
	}
	for k := 0; k < n; k++ {
		jobs <- k
	}
	close(jobs)
	wg.Wait()
	if io.Verbose {
		uiprogress.Stop()
	}
	for k, err := range errs {
		if err != nil {
			return nil, chk.Err("sweep: sample %d (x=%v) failed:\n%v", k, xs[k], err)
		}
	}
	return finals, nil
}

// runone simulates one sample
func runone(gen Generator, x []float64, k int) (*Final, error) {
	sim, err := gen(x)
	if err != nil {
		return nil, err
	}

	// a per-sample key keeps isotherm model allocations private to this run
	sim.Key = io.Sf("%s_smp%d", sim.Key, k)

	sol, err := batch.NewSolver(sim)
	if err != nil {
		return nil, err
	}
	res, err := sol.Run()
	if err != nil {
		return nil, err
	}
	return &Final{U: x, C: res.FinalC(), Q: res.FinalQ(), Mb: res.FinalMb()}, nil
}
