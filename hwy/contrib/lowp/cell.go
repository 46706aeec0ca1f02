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

// CellOrder is a cell's internal byte order.
type CellOrder int

const (
	DepthMajorCell CellOrder = iota
	WidthMajorCell
)

// CellFormat is a compile-time marker describing a cell's shape and
// internal byte order. A kernel side format tiles kCells of these
// along the width to build a register tile.
type CellFormat interface {
	Width() int
	Depth() int
	Order() CellOrder
}

// Cell4x2DepthMajor is the layout used by the reference SIMD
// specialization: 4 wide, 2 deep, DepthMajor internal order.
type Cell4x2DepthMajor struct{}

func (Cell4x2DepthMajor) Width() int       { return 4 }
func (Cell4x2DepthMajor) Depth() int       { return 2 }
func (Cell4x2DepthMajor) Order() CellOrder { return DepthMajorCell }

// Cell4x2WidthMajor is the same 4x2 shape with WidthMajor internal
// order, used only by the scalar reference path.
type Cell4x2WidthMajor struct{}

func (Cell4x2WidthMajor) Width() int       { return 4 }
func (Cell4x2WidthMajor) Depth() int       { return 2 }
func (Cell4x2WidthMajor) Order() CellOrder { return WidthMajorCell }

// OffsetIntoCell maps a (w, d) pair inside a cell of the given format
// to its linear byte offset, per the format's declared order.
func OffsetIntoCell[C CellFormat](w, d int) int {
	var c C
	if c.Order() == DepthMajorCell {
		return w*c.Depth() + d
	}
	return d*c.Width() + w
}

// CellSize returns the number of bytes a single cell occupies.
func CellSize[C CellFormat]() int {
	var c C
	return c.Width() * c.Depth()
}

// RegisterSize is the fixed register tile depth (kRegisterSize).
const RegisterSize = 16

// KernelWidth returns kKernelWidth = cellWidth * kCells for a kernel
// side format tiling kCells cells of format C along the width.
func KernelWidth[C CellFormat](kCells int) int {
	var c C
	return c.Width() * kCells
}
