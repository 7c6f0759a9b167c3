// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package misotherm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Langmuir implements the Langmuir isotherm with the equilibrium constant
// written as the half-saturation concentration kl
//
//   qeq(c) = qmax c / (kl + c)
//
// At c = kl the resin holds half of its saturation capacity.
type Langmuir struct {
	Qmax float64 // saturation capacity of the resin
	Kl   float64 // half-saturation concentration
}

// add model to factory
func init() {
	allocators["langmuir"] = func() Model { return new(Langmuir) }
}

// Init initialises model
func (o *Langmuir) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "qmax":
			o.Qmax = p.V
		case "kl":
			o.Kl = p.V
		case "k", "ka":
		default:
			return chk.Err("langmuir: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Langmuir) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qmax", V: 65},
		&fun.Prm{N: "kl", V: 10},
	}
}

// Qeq computes qeq = f(c)
func (o Langmuir) Qeq(c float64) float64 {
	return o.Qmax * c / (o.Kl + c)
}

// DqeqDc computes dqeq/dc
func (o Langmuir) DqeqDc(c float64) float64 {
	return o.Qmax * o.Kl / ((o.Kl + c) * (o.Kl + c))
}
