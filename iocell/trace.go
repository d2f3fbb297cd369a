// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import (
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/ki/kit"
	"gonum.org/v1/gonum/mat"
)

// Col are the columns of a Trace, in their fixed output order.
// The String of each is its name in table headers.
type Col int32

//go:generate stringer -type=Col -linecomment

var KiT_Col = kit.Enums.AddEnum(NCols, kit.NotBitFlag, nil)

func (ev Col) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Col) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	SomaIK   Col = iota // soma_Ik
	SomaIKdr            // soma_Ikdr
	SomaINa             // soma_Ina
	SomaICaL            // soma_Ical
	SomaV               // V_soma
	AxonINa             // axon_Ina
	AxonIK              // axon_Ik
	AxonV               // V_axon
	DendICaH            // dend_Icah
	DendIKCa            // dend_Ikca
	DendIH              // dend_Ih
	DendV               // V_dend
	TimeMs              // t

	NCols
)

// ColNames are the column names of a Trace, as used in table headers
var ColNames = func() (nms [NCols]string) {
	for c := range nms {
		nms[c] = Col(c).String()
	}
	return
}()

// Trace is the recorded output of a run: one row per recording epoch,
// NCols columns, holding the currents and voltages of the last micro-step
// of each epoch and the clock at the end of the epoch.
type Trace struct {

	// row-major values, NEpochs x NCols
	Data *mat.Dense
}

// NewTrace returns a new zeroed Trace with given number of rows, which must be > 0
func NewTrace(rows int) *Trace {
	return &Trace{Data: mat.NewDense(rows, int(NCols), nil)}
}

// Rows returns the number of rows
func (tr *Trace) Rows() int {
	r, _ := tr.Data.Dims()
	return r
}

// Row returns row i, sharing storage with the trace
func (tr *Trace) Row(i int) []float64 {
	return tr.Data.RawRowView(i)
}

// At returns the value at row i, column c
func (tr *Trace) At(i int, c Col) float64 {
	return tr.Data.At(i, int(c))
}

// Col returns a copy of column c
func (tr *Trace) Col(c Col) []float64 {
	return mat.Col(nil, int(c), tr.Data)
}

// Bytes returns the size of the value buffer
func (tr *Trace) Bytes() int {
	return tr.Rows() * int(NCols) * 8
}

// LogPrec is the number of significant digits of values written as csv,
// enough to read back every float64 exactly
const LogPrec = 17

// Table returns the trace as an etable.Table with one float64 column per Col
func (tr *Trace) Table() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "IOCellTrace")
	dt.SetMetaData("desc", "inferior olive cell trace")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{}
	for _, nm := range ColNames {
		sch = append(sch, etable.Column{Name: nm, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil})
	}
	rows := tr.Rows()
	dt.SetFromSchema(sch, rows)
	for i := 0; i < rows; i++ {
		for c, nm := range ColNames {
			dt.SetCellFloat(nm, i, tr.Data.At(i, c))
		}
	}
	return dt
}

// WriteCSV writes the trace as comma-separated values with a header row
func (tr *Trace) WriteCSV(w io.Writer) error {
	return tr.Table().WriteCSV(w, etable.Comma, etable.Headers)
}
