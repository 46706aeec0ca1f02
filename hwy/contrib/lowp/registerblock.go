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

import "github.com/ajroetker/go-lowp/hwy"

// completeTile materializes a zero-padded kernelWidth x RegisterSize
// tile from src when src is smaller, so register-block packing always
// operates on a full tile. Bytes outside src's region are zero before
// requantization, and Requantize(0, *, *) == 0 regardless of rounding
// mode, so the padding survives requantization as zero.
func completeTile(kernelWidth int, src SideMap) SideMap {
	if src.Width() == kernelWidth && src.Depth() == RegisterSize {
		return src
	}
	buf := make([]byte, kernelWidth*RegisterSize)
	complete := NewSideMap(buf, kernelWidth, RegisterSize, RegisterSize, WidthMajor)
	for w := 0; w < src.Width(); w++ {
		for d := 0; d < src.Depth(); d++ {
			buf[w*RegisterSize+d] = src.At(w, d)
		}
	}
	return complete
}

// packTile is the scalar reference path (C7 Pack). tile must be a
// complete kernelWidth x RegisterSize block. startWidth is tile's
// absolute width offset within the side map, used to index the
// rank-one-update vector.
func packTile[B BitDepth, C CellFormat](dst *PackedSideBlock, tile SideMap, kCells int, mode RoundingMode, prng *Xorshift8, startWidth int) {
	var c C
	cellWidth, cellDepth := c.Width(), c.Depth()
	cellRows := RegisterSize / cellDepth
	cellBuf := make([]byte, cellWidth*cellDepth)
	localSum := make([]int32, cellWidth)

	for dc := 0; dc < cellRows; dc++ {
		for ci := 0; ci < kCells; ci++ {
			for i := range localSum {
				localSum[i] = 0
			}
			for wc := 0; wc < cellWidth; wc++ {
				for ddc := 0; ddc < cellDepth; ddc++ {
					sw := ci*cellWidth + wc
					sd := dc*cellDepth + ddc
					s := tile.At(sw, sd)
					r := Requantize[B](s, mode, prng)
					cellBuf[OffsetIntoCell[C](wc, ddc)] = r
					localSum[wc] += int32(r)
				}
			}
			for wc := 0; wc < cellWidth; wc++ {
				dst.AddRankOneUpdate(startWidth+ci*cellWidth+wc, localSum[wc])
			}
			for _, b := range cellBuf {
				dst.WriteByte(b)
			}
		}
	}
}

// packTileSIMD is the 128-bit SIMD specialization for Cell4x2DepthMajor
// cells packed from a WidthMajor source: it requantizes a full 16-byte
// depth row at a time with RequantizeVector16 and sums it with
// ReduceSum over a widened promotion, instead of one byte (and one
// 2-byte cell-local sum) at a time. The resulting bytes are written in
// the same DepthMajor cell order as packTile, so the two paths are
// bit-identical in Nearest mode by construction: both iterate the same
// (depthCellRow, cellIndex, w, d) order and apply the same Requantize
// formula, only the hot inner byte-at-a-time loop is replaced by a
// vectorized row requantize.
func packTileSIMD(dst *PackedSideBlock, tile SideMap, kCells int, mode RoundingMode, prng *Xorshift8x16, startWidth int, reqRow func([16]byte, RoundingMode, *Xorshift8x16) [16]byte) {
	if !tile.HasContiguousDepth() {
		panic("lowp: packTileSIMD requires a WidthMajor source tile")
	}
	const cellWidth, cellDepth = 4, 2
	cellRows := RegisterSize / cellDepth

	rows := make([][16]byte, kCells*cellWidth)
	for w := range rows {
		var row [16]byte
		copy(row[:], tile.Row(w, 0, RegisterSize))
		rows[w] = reqRow(row, mode, prng)
	}

	// Sum each row's bytes along depth via a widening promotion
	// (u8->u16) and a vector reduce, rather than a per-byte scalar
	// accumulation; per spec, the rank-one-update contribution is
	// equivalent whether accumulated per-cell or once over the full
	// register tile depth, since AddRankOneUpdate is a running +=.
	for w, row := range rows {
		widened := hwy.PromoteU8ToU16(hwy.Load(row[:]))
		dst.AddRankOneUpdate(startWidth+w, int32(hwy.ReduceSum(widened)))
	}

	cellBuf := make([]byte, cellWidth*cellDepth)
	for dc := 0; dc < cellRows; dc++ {
		for ci := 0; ci < kCells; ci++ {
			for wc := 0; wc < cellWidth; wc++ {
				row := rows[ci*cellWidth+wc]
				for ddc := 0; ddc < cellDepth; ddc++ {
					offset := wc*cellDepth + ddc
					cellBuf[offset] = row[dc*cellDepth+ddc]
				}
			}
			for _, b := range cellBuf {
				dst.WriteByte(b)
			}
		}
	}
}
