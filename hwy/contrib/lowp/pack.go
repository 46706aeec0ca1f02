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

// MatrixOrder is a source matrix's storage order.
type MatrixOrder int

const (
	RowMajor MatrixOrder = iota
	ColMajor
)

// MatrixView describes the source matrix a pack reads from: a
// contiguous byte buffer, its logical shape, the pitch between rows
// (RowMajor) or columns (ColMajor), and which of those two it is.
type MatrixView struct {
	Data       []byte
	Rows, Cols int
	Stride     int
	Order      MatrixOrder
}

func (m MatrixView) sideMap() SideMap {
	switch m.Order {
	case RowMajor:
		return NewSideMap(m.Data, m.Rows, m.Cols, m.Stride, WidthMajor)
	case ColMajor:
		return NewSideMap(m.Data, m.Cols, m.Rows, m.Stride, WidthMajor)
	default:
		panic("lowp: unknown matrix order")
	}
}

// PackLHS packs a RowMajor source matrix as the left-hand side: the
// side map's width is the matrix's rows and its depth is the matrix's
// columns.
func PackLHS[B BitDepth, C CellFormat](dst *PackedSideBlock, src MatrixView, drv *Driver[B, C]) PackStats {
	if src.Order != RowMajor {
		panic("lowp: PackLHS requires a RowMajor source matrix")
	}
	return drv.PackL2(dst, src.sideMap())
}

// PackRHS packs a ColMajor source matrix as the right-hand side: the
// side map's width is the matrix's columns and its depth is the
// matrix's rows.
func PackRHS[B BitDepth, C CellFormat](dst *PackedSideBlock, src MatrixView, drv *Driver[B, C]) PackStats {
	if src.Order != ColMajor {
		panic("lowp: PackRHS requires a ColMajor source matrix")
	}
	return drv.PackL2(dst, src.sideMap())
}
