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

// Driver walks an L2-sized source block in L1-sized, then kernel-sized,
// then register-sized tiles, delegating each complete or boundary tile
// to the register-block packer (C7). It owns the PRNG state for the
// duration of one pack; PRNGs are never shared across drivers.
type Driver[B BitDepth, C CellFormat] struct {
	KCells  int
	L1Width int
	L1Depth int

	scalarPRNG *Xorshift8
	vectorPRNG *Xorshift8x16
	seed       byte
	useSIMD    bool
}

// DriverOption configures a Driver at construction.
type DriverOption func(*driverConfig)

type driverConfig struct {
	seed    byte
	useSIMD bool
}

// WithSeed seeds both the scalar and vector PRNG from the same byte,
// per spec.md's PRNG reproducibility note: two packs with the same
// seed and traversal order produce identical output even in
// Probabilistic mode.
func WithSeed(seed byte) DriverOption {
	return func(c *driverConfig) { c.seed = seed }
}

// WithSIMD enables the 128-bit SIMD specialization for kernel formats
// it supports (Cell4x2DepthMajor over a WidthMajor source); formats it
// does not support always fall back to the scalar path regardless of
// this option.
func WithSIMD() DriverOption {
	return func(c *driverConfig) { c.useSIMD = true }
}

// NewDriver constructs a driver tiling kCells cells of format C along
// the kernel width, walking the source in l1Width x l1Depth slices.
func NewDriver[B BitDepth, C CellFormat](kCells, l1Width, l1Depth int, opts ...DriverOption) *Driver[B, C] {
	cfg := driverConfig{seed: defaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver[B, C]{
		KCells:     kCells,
		L1Width:    l1Width,
		L1Depth:    l1Depth,
		scalarPRNG: NewXorshift8Seed(cfg.seed),
		vectorPRNG: NewXorshift8x16Seed(cfg.seed),
		seed:       cfg.seed,
		useSIMD:    cfg.useSIMD,
	}
}

func (d *Driver[B, C]) kernelWidth() int {
	return KernelWidth[C](d.KCells)
}

// simdEligible reports whether the SIMD specialization applies to this
// driver's cell format; only Cell4x2DepthMajor over a WidthMajor
// source is specialized, per spec.md §4.3.
func (d *Driver[B, C]) simdEligible(src SideMap) bool {
	if !d.useSIMD {
		return false
	}
	var c C
	_, isDepthMajor4x2 := any(c).(Cell4x2DepthMajor)
	return isDepthMajor4x2 && src.HasContiguousDepth()
}

// PackL2 packs an entire L2-sized source side map into dst, zeroing
// dst's rank-one-update vector first and selecting the rounding mode
// once for the whole pack, per spec.md §4.4.
func (d *Driver[B, C]) PackL2(dst *PackedSideBlock, src SideMap) PackStats {
	dst.ZeroRankOneUpdate()

	var b B
	mode := RoundingModeFor(b.Bits(), src.Depth())
	stats := PackStats{Mode: mode}

	l1Width, l1Depth := d.L1Width, d.L1Depth
	if l1Width <= 0 {
		l1Width = src.Width()
	}
	if l1Depth <= 0 {
		l1Depth = src.Depth()
	}

	for sd := 0; sd < src.Depth(); sd += l1Depth {
		depth := min(l1Depth, src.Depth()-sd)
		for sw := 0; sw < src.Width(); sw += l1Width {
			width := min(l1Width, src.Width()-sw)
			d.packL1(dst, src, sw, sd, width, depth, mode, &stats)
		}
	}
	return stats
}

func (d *Driver[B, C]) packL1(dst *PackedSideBlock, src SideMap, startWidth, startDepth, width, depth int, mode RoundingMode, stats *PackStats) {
	kw := d.kernelWidth()
	for w := 0; w < width; w += kw {
		stripWidth := min(kw, width-w)
		absWidth := startWidth + w
		dst.SeekRun(absWidth, startDepth)
		d.packRun(dst, src, absWidth, startDepth, stripWidth, depth, mode, stats)
	}
}

// packRun packs one kernel-width strip across its full depth range,
// dispatching complete register tiles directly against the source and
// materializing a zero-padded boundary tile at the tail (or for the
// whole strip, if the strip itself is narrower than the kernel width).
func (d *Driver[B, C]) packRun(dst *PackedSideBlock, src SideMap, startWidth, startDepth, stripWidth, depth int, mode RoundingMode, stats *PackStats) {
	kw := d.kernelWidth()
	simd := d.simdEligible(src)

	emit := func(tile SideMap, boundary bool) {
		// simdEligible already confirmed C is Cell4x2DepthMajor when simd is true.
		if simd {
			packTileSIMD(dst, tile, d.KCells, mode, d.vectorPRNG, startWidth, RequantizeVector16[B])
		} else {
			packTile[B, C](dst, tile, d.KCells, mode, d.scalarPRNG, startWidth)
		}
		stats.TilesPacked++
		stats.BytesWritten += kw * RegisterSize
		if boundary {
			stats.BoundaryTiles++
		}
	}

	for dPos := 0; dPos < depth; dPos += RegisterSize {
		depthLen := min(RegisterSize, depth-dPos)
		if stripWidth == kw && depthLen == RegisterSize {
			tile := src.SubMap(startWidth, startDepth+dPos, kw, RegisterSize)
			emit(tile, false)
			continue
		}
		tile := src.SubMap(startWidth, startDepth+dPos, stripWidth, depthLen)
		emit(completeTile(kw, tile), true)
	}
}
