// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import "github.com/cpmech/gosl/io"

// IntegrationError indicates that the time integrator gave up before reaching
// the final time. No results are returned alongside it.
type IntegrationError struct {
	Itg   string  // integrator name
	LastT float64 // last output time successfully reached
	Inner error   // diagnostic from the scheme
}

// Error returns the error message
func (e *IntegrationError) Error() string {
	return io.Sf("integrator %q failed after t=%g: %v", e.Itg, e.LastT, e.Inner)
}

// Unwrap returns the scheme diagnostic
func (e *IntegrationError) Unwrap() error { return e.Inner }
