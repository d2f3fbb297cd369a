// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// NaParams are the fast sodium channel kinetics, used in the soma (Nav1.6)
// and in the axon hillock with different inactivation parameters.
// Activation is instantaneous (m = MInf), only the H inactivation gate has dynamics.
type NaParams struct {

	// half-activation offset for M
	MHalf float64 `def:"30"`

	// slope of the M activation sigmoid
	MSlope float64 `def:"5.5"`

	// half-inactivation offset for H
	HHalf float64 `def:"70,60"`

	// slope of the H inactivation sigmoid -- negative = closes with depolarization
	HSlope float64 `def:"-5.8"`

	// multiplier on the H time constant, in msec
	TauH float64 `def:"3,1.5"`

	// voltage offset of the H time constant exponential
	TauHalf float64 `def:"40"`

	// voltage scale of the H time constant exponential
	TauSlope float64 `def:"33"`
}

// Defaults sets the soma sodium parameters -- see SetAxon for the axon hillock
func (np *NaParams) Defaults() {
	np.MHalf = 30
	np.MSlope = 5.5
	np.HHalf = 70
	np.HSlope = -5.8
	np.TauH = 3
	np.TauHalf = 40
	np.TauSlope = 33
}

// SetAxon sets the axon hillock inactivation, which is faster and
// shifted 10 mV relative to the soma
func (np *NaParams) SetAxon() {
	np.Defaults()
	np.HHalf = 60
	np.TauH = 1.5
}

// MInf returns the instantaneous activation at voltage v
func (np *NaParams) MInf(v float64) float64 {
	return Sigmoid(v, np.MHalf, np.MSlope)
}

// HInf returns the inactivation steady state at voltage v
func (np *NaParams) HInf(v float64) float64 {
	return Sigmoid(v, np.HHalf, np.HSlope)
}

// TauHFmV returns the inactivation time constant in msec at voltage v
func (np *NaParams) TauHFmV(v float64) float64 {
	return np.TauH * math.Exp(-(v+np.TauHalf)/np.TauSlope)
}
