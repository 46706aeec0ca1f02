// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lowp

import "testing"

func TestPackLHSRejectsColMajor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ColMajor source passed to PackLHS")
		}
	}()
	src := MatrixView{Data: make([]byte, 16), Rows: 4, Cols: 4, Stride: 4, Order: ColMajor}
	dst := NewPackedSideBlock(4, 4, 4, 1)
	drv := NewDriver[Depth8, Cell4x2DepthMajor](1, 0, 0)
	PackLHS(dst, src, drv)
}

func TestPackRHSRejectsRowMajor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for RowMajor source passed to PackRHS")
		}
	}()
	src := MatrixView{Data: make([]byte, 16), Rows: 4, Cols: 4, Stride: 4, Order: RowMajor}
	dst := NewPackedSideBlock(4, 4, 4, 1)
	drv := NewDriver[Depth8, Cell4x2DepthMajor](1, 0, 0)
	PackRHS(dst, src, drv)
}

// TestPackLHSAndRHSAgreeOnATransposedPair checks that pack_lhs's (rows,
// cols, RowMajor) orientation and pack_rhs's (cols, rows, ColMajor)
// orientation fix to the same (width=rows, depth=cols) side map over
// the same buffer, per spec.md §4.5.
func TestPackLHSAndRHSAgreeOnATransposedPair(t *testing.T) {
	const rows, cols, kCells = 4, 16, 1
	const kernelWidth = 4 * kCells

	data := buildSource(rows, cols, func(w, d int) byte { return byte((w*5 + d) % 256) })

	lhs := MatrixView{Data: data, Rows: rows, Cols: cols, Stride: cols, Order: RowMajor}
	lhsDst := NewPackedSideBlock(rows, cols, kernelWidth, 1)
	PackLHS(lhsDst, lhs, NewDriver[Depth8, Cell4x2DepthMajor](kCells, 0, 0))

	rhs := MatrixView{Data: data, Rows: cols, Cols: rows, Stride: cols, Order: ColMajor}
	rhsDst := NewPackedSideBlock(rows, cols, kernelWidth, 1)
	PackRHS(rhsDst, rhs, NewDriver[Depth8, Cell4x2DepthMajor](kCells, 0, 0))

	for i := range lhsDst.Data() {
		if lhsDst.Data()[i] != rhsDst.Data()[i] {
			t.Fatalf("Data()[%d]: lhs=%d rhs=%d, want equal for A/A^T pair", i, lhsDst.Data()[i], rhsDst.Data()[i])
		}
	}
}
