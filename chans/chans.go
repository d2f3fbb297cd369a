// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the ion channels of the three-compartment inferior olive
cell model: steady-state gate values, time constants and alpha / beta rate
functions, each as a closed-form function of membrane potential (mV) or of the
intracellular calcium concentration.

All functions are evaluated literally, including the removable singularities
of the rate expressions (e.g., CaHParams.Beta at V = -8.5 mV and KvParams.Alpha
at V = -25 mV), which return NaN there instead of the analytic limit.
*/
package chans

import "math"

// Erev are the reversal potentials for the cell channels, in mV
type Erev struct {

	// sodium channels (soma and axon Na)
	Na float64 `def:"55"`

	// potassium channels (Kdr, fast K, KCa)
	K float64 `def:"-75"`

	// low- and high-threshold calcium channels
	Ca float64 `def:"120"`

	// hyperpolarization-activated h current (HCN)
	H float64 `def:"-43"`

	// leak, shared by all three compartments
	L float64 `def:"10"`
}

func (er *Erev) Defaults() {
	er.SetAll(55, -75, 120, -43, 10)
}

// SetAll sets all the values
func (er *Erev) SetAll(na, k, ca, h, l float64) {
	er.Na, er.K, er.Ca, er.H, er.L = na, k, ca, h, l
}

// Sigmoid returns the Boltzmann steady state 1 / (1 + exp(-(v + half) / slope)).
// A negative slope gives a gate that closes with depolarization.
func Sigmoid(v, half, slope float64) float64 {
	return 1 / (1 + math.Exp(-(v+half)/slope))
}

// Pow3 returns x^3
func Pow3(x float64) float64 {
	return x * x * x
}

// Pow4 returns x^4, computed by squaring
func Pow4(x float64) float64 {
	x2 := x * x
	return x2 * x2
}

// b2f is 1 for true, 0 for false
func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
