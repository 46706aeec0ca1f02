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

// Order is a side map's storage order: which of its two logical axes
// (width, depth) is contiguous in memory.
type Order int

const (
	// WidthMajor lays depth out contiguously: a step in width moves by
	// stride, a step in depth moves by 1.
	WidthMajor Order = iota
	// DepthMajor lays width out contiguously: a step in depth moves by
	// stride, a step in width moves by 1.
	DepthMajor
)

// SideMap is a non-owning, rectangular view over a region of source
// matrix memory, addressed in (width, depth) coordinates regardless of
// how the underlying matrix is actually stored (row- or column-major).
type SideMap struct {
	base         []byte
	stride       int
	width, depth int
	order        Order
}

// NewSideMap constructs a view over base with the given logical shape.
// stride is the distance, in bytes, between consecutive elements along
// the non-contiguous axis.
func NewSideMap(base []byte, width, depth, stride int, order Order) SideMap {
	return SideMap{base: base, stride: stride, width: width, depth: depth, order: order}
}

func (m SideMap) Width() int  { return m.width }
func (m SideMap) Depth() int  { return m.depth }
func (m SideMap) Order() Order { return m.order }

func (m SideMap) widthStride() int {
	if m.order == DepthMajor {
		return 1
	}
	return m.stride
}

func (m SideMap) depthStride() int {
	if m.order == WidthMajor {
		return 1
	}
	return m.stride
}

// At returns the byte at logical (width, depth) coordinates.
func (m SideMap) At(w, d int) byte {
	return m.base[w*m.widthStride()+d*m.depthStride()]
}

// Row returns the contiguous byte slice for a fixed width covering
// [depthStart, depthStart+length) depth positions. Valid only when the
// view's depth axis is contiguous (WidthMajor); callers must check
// HasContiguousDepth first.
func (m SideMap) Row(w, depthStart, length int) []byte {
	if !m.HasContiguousDepth() {
		panic("lowp: Row requires a WidthMajor (depth-contiguous) side map")
	}
	start := w*m.widthStride() + depthStart
	return m.base[start : start+length]
}

// HasContiguousDepth reports whether consecutive depth indices are
// adjacent in memory (stride 1), i.e. the view is WidthMajor.
func (m SideMap) HasContiguousDepth() bool {
	return m.depthStride() == 1
}

// SubMap returns a rectangular sub-view. It panics if the requested
// region is not fully contained in the parent.
func (m SideMap) SubMap(wStart, dStart, width, depth int) SideMap {
	if wStart < 0 || dStart < 0 || width < 0 || depth < 0 ||
		wStart+width > m.width || dStart+depth > m.depth {
		panic("lowp: sub-view out of parent bounds")
	}
	offset := wStart*m.widthStride() + dStart*m.depthStride()
	return SideMap{base: m.base[offset:], stride: m.stride, width: width, depth: depth, order: m.order}
}
