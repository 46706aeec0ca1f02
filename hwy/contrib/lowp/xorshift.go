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

// defaultSeed is the scalar and per-lane vector seed used when a caller
// does not supply one; 128 matches the reference generator so an
// unseeded pack is reproducible across runs.
const defaultSeed byte = 128

// Xorshift8 is an 8-bit Xorshift generator producing a stream of
// nonzero bytes for Probabilistic rounding. Measured against an 8-bit
// LCG on real activation data, this permutation is the one that was
// kept; do not substitute a different generator, the 255-value nonzero
// cycle is a correctness requirement of the rounding scheme, not a
// performance detail.
type Xorshift8 struct {
	x byte
}

// NewXorshift8 returns a generator seeded at 128, the reference default.
func NewXorshift8() *Xorshift8 {
	return &Xorshift8{x: defaultSeed}
}

// NewXorshift8Seed returns a generator seeded at the given nonzero
// byte. A zero seed is replaced with the default, since the generator
// can never recover from a zero state.
func NewXorshift8Seed(seed byte) *Xorshift8 {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Xorshift8{x: seed}
}

// Next returns the current state and advances it with the (7, 5, 3)
// permutation. The returned byte is always in [1, 255].
func (g *Xorshift8) Next() byte {
	out := g.x
	x := g.x
	x ^= x << 7
	x ^= x >> 5
	x ^= x << 3
	g.x = x
	return out
}

// Xorshift8x16 holds sixteen independent Xorshift8 lanes packed into a
// hwy vector, advanced together so a single Next call services an
// entire 16-byte SIMD requantize.
type Xorshift8x16 struct {
	state hwy.Vec[uint8]
}

// NewXorshift8x16 seeds sixteen lanes from 128 using a permutation
// distinct from the steady-state update, so the initial lanes are
// pairwise distinct instead of identical copies of the scalar seed.
func NewXorshift8x16() *Xorshift8x16 {
	return NewXorshift8x16Seed(defaultSeed)
}

// NewXorshift8x16Seed seeds sixteen lanes starting from the given
// nonzero byte, collecting 16 successive states of the (7, 7, 1)
// permutation into the lanes before switching to the (7, 5, 3)
// steady-state update.
func NewXorshift8x16Seed(seed byte) *Xorshift8x16 {
	if seed == 0 {
		seed = defaultSeed
	}
	lanes := make([]byte, 16)
	y := seed
	for i := range lanes {
		lanes[i] = y
		y ^= y << 7
		y ^= y >> 7
		y ^= y << 1
	}
	return &Xorshift8x16{state: hwy.Load(lanes)}
}

// Next returns the current 16-lane state and advances every lane
// in parallel with the (7, 5, 3) permutation.
func (g *Xorshift8x16) Next() [16]byte {
	var out [16]byte
	hwy.Store(g.state, out[:])

	x := g.state
	x = hwy.Xor(x, hwy.ShiftLeft(x, 7))
	x = hwy.Xor(x, hwy.ShiftRight(x, 5))
	x = hwy.Xor(x, hwy.ShiftLeft(x, 3))
	g.state = x

	return out
}
