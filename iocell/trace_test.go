// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
)

func TestColNames(t *testing.T) {
	cor := []string{"soma_Ik", "soma_Ikdr", "soma_Ina", "soma_Ical", "V_soma", "axon_Ina", "axon_Ik", "V_axon", "dend_Icah", "dend_Ikca", "dend_Ih", "V_dend", "t"}
	if int(NCols) != len(cor) {
		t.Fatalf("NCols: %v, cor: %v\n", NCols, len(cor))
	}
	for i, nm := range cor {
		if Col(i).String() != nm || ColNames[i] != nm {
			t.Errorf("col %d: %v, cor: %v\n", i, Col(i), nm)
		}
	}
	if Recording.String() != "Recording" || Dend.String() != "Dend" {
		t.Errorf("enum names: %v %v\n", Recording, Dend)
	}
}

func TestTraceAccess(t *testing.T) {
	tr := NewTrace(3)
	tr.Row(1)[DendV] = -61
	if tr.At(1, DendV) != -61 {
		t.Errorf("Row should share storage\n")
	}
	col := tr.Col(DendV)
	if len(col) != 3 || col[1] != -61 {
		t.Errorf("Col: %v\n", col)
	}
	col[0] = 5
	if tr.At(0, DendV) != 0 {
		t.Errorf("Col should return a copy\n")
	}
	if tr.Bytes() != 3*13*8 {
		t.Errorf("Bytes: %v\n", tr.Bytes())
	}
}

func TestTraceTable(t *testing.T) {
	p := runParams(0, 0.01)
	tr, err := Simulate(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	dt := tr.Table()
	if dt.Rows != tr.Rows() || len(dt.Cols) != int(NCols) {
		t.Fatalf("table shape: %d x %d\n", dt.Rows, len(dt.Cols))
	}
	if v := dt.CellFloat("V_dend", 3); v != tr.At(3, DendV) {
		t.Errorf("table V_dend: %v, cor: %v\n", v, tr.At(3, DendV))
	}
	var b bytes.Buffer
	if err := tr.WriteCSV(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if n := strings.Count(out, "\n"); n != tr.Rows()+1 {
		t.Errorf("csv lines: %d, cor: %d\n", n, tr.Rows()+1)
	}
	hdr := out[:strings.Index(out, "\n")]
	if !strings.Contains(hdr, "V_soma") || !strings.Contains(hdr, "dend_Icah") {
		t.Errorf("csv header missing columns: %s\n", hdr)
	}
}

func TestTraceCSVExact(t *testing.T) {
	p := runParams(0, 0.01)
	tr, err := Simulate(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := tr.WriteCSV(&b); err != nil {
		t.Fatal(err)
	}
	recs, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != tr.Rows()+1 {
		t.Fatalf("csv records: %d, cor: %d\n", len(recs), tr.Rows()+1)
	}
	for ci, hdr := range recs[0] {
		if !strings.HasSuffix(hdr, ColNames[ci]) {
			t.Fatalf("csv header %d: %s, cor: %s\n", ci, hdr, ColNames[ci])
		}
	}
	for _, ri := range []int{0, tr.Rows() - 1} {
		for c := Col(0); c < NCols; c++ {
			v, err := strconv.ParseFloat(recs[ri+1][c], 64)
			if err != nil {
				t.Fatal(err)
			}
			if v != tr.At(ri, c) {
				t.Errorf("row %d %v: csv: %v, cor: %v\n", ri, c, v, tr.At(ri, c))
			}
		}
	}
}
