// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// KdrParams are the soma delayed rectifier potassium (Kv4.3, slow component)
// channel kinetics, in steady-state / time-constant form.
type KdrParams struct {

	// half-activation offset for N
	NHalf float64 `def:"3"`

	// slope of the N activation sigmoid
	NSlope float64 `def:"10"`

	// minimum time constant, in msec
	TauMin float64 `def:"5"`

	// voltage-dependent part of the time constant, in msec
	TauAmp float64 `def:"47"`
}

func (kp *KdrParams) Defaults() {
	kp.NHalf = 3
	kp.NSlope = 10
	kp.TauMin = 5
	kp.TauAmp = 47
}

// NInf returns the activation steady state at voltage v
func (kp *KdrParams) NInf(v float64) float64 {
	return Sigmoid(v, kp.NHalf, kp.NSlope)
}

// TauN returns the activation time constant in msec at voltage v
func (kp *KdrParams) TauN(v float64) float64 {
	return kp.TauMin + (kp.TauAmp * math.Exp((v+50)/900))
}
