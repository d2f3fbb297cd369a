// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// KvParams are the fast potassium channel kinetics (soma Kv3.4, axon K),
// in alpha / beta rate form.  The X gate moves toward Alpha / (Alpha + Beta)
// at rate Alpha + Beta.
type KvParams struct {

	// alpha rate multiplier
	AlphaRate float64 `def:"0.13"`

	// alpha voltage offset -- Alpha has a removable singularity at V = -AlphaHalf
	AlphaHalf float64 `def:"25"`

	// alpha voltage scale
	AlphaSlope float64 `def:"10"`

	// beta rate multiplier
	BetaRate float64 `def:"1.69"`

	// beta voltage offset
	BetaHalf float64 `def:"35"`

	// beta voltage scale
	BetaSlope float64 `def:"80"`
}

func (kp *KvParams) Defaults() {
	kp.AlphaRate = 0.13
	kp.AlphaHalf = 25
	kp.AlphaSlope = 10
	kp.BetaRate = 1.69
	kp.BetaHalf = 35
	kp.BetaSlope = 80
}

// Alpha returns the opening rate at voltage v, per msec
func (kp *KvParams) Alpha(v float64) float64 {
	return kp.AlphaRate * (v + kp.AlphaHalf) / (1 - math.Exp(-(v+kp.AlphaHalf)/kp.AlphaSlope))
}

// Beta returns the closing rate at voltage v, per msec
func (kp *KvParams) Beta(v float64) float64 {
	return kp.BetaRate * math.Exp(-(v+kp.BetaHalf)/kp.BetaSlope)
}

// XInfRate returns the steady state of the X gate and its
// relaxation rate (inverse time constant) at voltage v
func (kp *KvParams) XInfRate(v float64) (xinf, rate float64) {
	a := kp.Alpha(v)
	rate = a + kp.Beta(v)
	xinf = a / rate
	return
}
