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

// PackedSideBlock owns the destination buffer a pack writes into: a
// byte buffer in the kernel's cell layout, plus the parallel
// rank-one-update vector the kernel's accumulation step consumes.
//
// The byte buffer is organized strip-major by kernel width: logical
// width is divided into kernelWidth-wide strips (the last one padded
// up to a full strip if l2Width isn't a multiple of kernelWidth), and
// within a strip bytes appear in increasing depth order, matching
// exactly how PackRun writes them regardless of how many separate
// L1-depth-slice calls produce them. That makes SeekRun's mapping from
// (width, depth) coordinates to a byte offset a pure function, with no
// need to remember where a previous visit to the same strip left off.
type PackedSideBlock struct {
	data          []byte
	rankOneUpdate []int32
	pos           int

	l2Width, l2Depth        int
	kernelWidth             int
	rankOneUpdateMultiplier int32
}

// NewPackedSideBlock allocates a packed side block sized for an
// l2Width x l2Depth logical region, packed kernelWidth columns at a
// time, with the given rank-one-update multiplier.
func NewPackedSideBlock(l2Width, l2Depth, kernelWidth int, multiplier int32) *PackedSideBlock {
	if kernelWidth <= 0 {
		panic("lowp: kernelWidth must be positive")
	}
	strips := (l2Width + kernelWidth - 1) / kernelWidth
	paddedWidth := strips * kernelWidth
	return &PackedSideBlock{
		data:                    make([]byte, paddedWidth*l2Depth),
		rankOneUpdate:           make([]int32, l2Width),
		l2Width:                 l2Width,
		l2Depth:                 l2Depth,
		kernelWidth:             kernelWidth,
		rankOneUpdateMultiplier: multiplier,
	}
}

// Data returns the packed byte buffer.
func (p *PackedSideBlock) Data() []byte { return p.data }

// RankOneUpdate returns the rank-one-update vector, length l2Width.
func (p *PackedSideBlock) RankOneUpdate() []int32 { return p.rankOneUpdate }

// Multiplier returns the rank-one-update multiplier supplied at construction.
func (p *PackedSideBlock) Multiplier() int32 { return p.rankOneUpdateMultiplier }

// ZeroRankOneUpdate resets the rank-one-update vector to all zeros; the
// driver calls this once per L2 pack.
func (p *PackedSideBlock) ZeroRankOneUpdate() {
	for i := range p.rankOneUpdate {
		p.rankOneUpdate[i] = 0
	}
}

// SeekRun repositions the cursor to the start of the run at the given
// absolute (width, depth) coordinates. startWidth must be a multiple of
// the kernel width.
func (p *PackedSideBlock) SeekRun(startWidth, startDepth int) {
	if startWidth%p.kernelWidth != 0 {
		panic("lowp: SeekRun requires a kernel-width-aligned startWidth")
	}
	strip := startWidth / p.kernelWidth
	p.pos = strip*p.kernelWidth*p.l2Depth + startDepth*p.kernelWidth
}

// SeekForwardNCells advances the cursor by n cells of the given size.
func (p *PackedSideBlock) SeekForwardNCells(n, cellSize int) {
	p.pos += n * cellSize
}

// WriteByte writes b at the cursor and advances it by one.
func (p *PackedSideBlock) WriteByte(b byte) {
	p.data[p.pos] = b
	p.pos++
}

// AddRankOneUpdate adds sum, scaled by the block's multiplier, into the
// rank-one-update vector at the given absolute width index. Indices at or
// past l2Width (the zero-padded columns of a boundary strip) are ignored.
func (p *PackedSideBlock) AddRankOneUpdate(width int, sum int32) {
	if width >= len(p.rankOneUpdate) {
		return
	}
	p.rankOneUpdate[width] += sum * p.rankOneUpdateMultiplier
}
