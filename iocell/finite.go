// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

// finite records the name of the first non-finite value passed to chk
type finite struct {
	bad string
}

// chk checks x, which is NaN or Inf exactly when x - x is not 0
func (f *finite) chk(name string, x float64) {
	if f.bad == "" && x-x != 0 {
		f.bad = name
	}
}
