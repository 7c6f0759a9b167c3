// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package misotherm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Freundlich implements the Freundlich isotherm
//
//   qeq(c) = kf c^(1/n)
//
// The slope diverges at c = 0 for n > 1; below CZero the isotherm is
// linearised to keep the kinetic Jacobian finite.
type Freundlich struct {
	Kf float64 // capacity coefficient
	N  float64 // intensity exponent
}

// CZero is the smallest concentration for which the Freundlich slope is
// evaluated directly
const CZero = 1e-10

// add model to factory
func init() {
	allocators["freundlich"] = func() Model { return new(Freundlich) }
}

// Init initialises model
func (o *Freundlich) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kf":
			o.Kf = p.V
		case "n":
			o.N = p.V
		case "k", "ka":
		default:
			return chk.Err("freundlich: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Freundlich) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "kf", V: 12},
		&fun.Prm{N: "n", V: 2},
	}
}

// Qeq computes qeq = f(c)
func (o Freundlich) Qeq(c float64) float64 {
	if c <= 0 {
		return 0
	}
	return o.Kf * math.Pow(c, 1.0/o.N)
}

// DqeqDc computes dqeq/dc
func (o Freundlich) DqeqDc(c float64) float64 {
	if c < CZero {
		c = CZero
	}
	return o.Kf * math.Pow(c, 1.0/o.N-1.0) / o.N
}
