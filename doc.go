// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iocell is the overall repository for a three-compartment conductance-based
model of an inferior olive neuron (soma, axon hillock and dendrite), integrated
with a fixed-step explicit Euler method, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* iocell: the cell parameters and state, the per-compartment update functions,
and the simulation driver that runs an unrecorded transient followed by the
recorded epochs, producing a 13-column trace of currents, voltages and time.

* chans: the closed-form channel kinetics (steady states, time constants and rates)
used by the compartments: Na, Kdr, fast K, low and high threshold Ca, Ca-dependent K,
h current and the dendritic calcium pool.

* noise: the sources of standard-normal samples driving the dendrite noise current.

* analysis: oscillation frequency and peak-to-peak amplitude of a trace.

* examples: examples/iolive runs a sweep of any parameter and saves the traces,
plots and params of each point, optionally split across MPI processes.
*/
package iocell
