// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

// SomaState is the dynamical state of the soma compartment
type SomaState struct {

	// membrane potential, mV
	V float64

	// CaL activation
	K float64

	// CaL inactivation
	L float64

	// Na inactivation
	H float64

	// Kdr activation
	N float64

	// fast K activation
	X float64
}

// Init sets the fixed initial soma state
func (s *SomaState) Init() {
	s.V = -60
	s.K = 0.7423159
	s.L = 0.0321349
	s.H = 0.3596066
	s.N = 0.2369847
	s.X = 0.1
}

// AxonState is the dynamical state of the axon hillock compartment
type AxonState struct {

	// membrane potential, mV
	V float64

	// Na inactivation
	H float64

	// K activation
	X float64
}

// Init sets the fixed initial axon state
func (a *AxonState) Init() {
	a.V = -60
	a.H = 0.9
	a.X = 0.2369847
}

// DendState is the dynamical state of the dendrite compartment
type DendState struct {

	// membrane potential, mV
	V float64

	// intracellular calcium concentration
	Ca float64

	// CaH activation
	R float64

	// KCa activation
	S float64

	// h current activation
	Q float64
}

// Init sets the fixed initial dendrite state
func (d *DendState) Init() {
	d.V = -60
	d.Ca = 3.715
	d.R = 0.0113
	d.S = 0.0049291
	d.Q = 0.0337836
}

// State is the full state of the cell: all three compartments
type State struct {
	Soma SomaState
	Axon AxonState
	Dend DendState
}

// Init sets all compartments to their fixed initial state
func (st *State) Init() {
	st.Soma.Init()
	st.Axon.Init()
	st.Dend.Init()
}
