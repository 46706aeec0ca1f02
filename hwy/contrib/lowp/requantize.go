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

// Requantize maps a source byte s in [0, 255] down to [0, 2^B-1].
//
// Rounding by right-shifting s*M by 8 bits approximates a divide by
// 256, not 255, and biases the result systematically. Instead this
// computes the exact divide-by-255 via the identity
// y/255 = (y + 1 + (y>>8)) >> 8 for y in [0, 65534], substituting
// x = y+1 so the offset folded into x is already "+1": Nearest uses
// x's offset of 128 (127+1), Probabilistic uses the PRNG's raw nonzero
// draw directly as that +1 offset.
func Requantize[B BitDepth](s byte, mode RoundingMode, prng *Xorshift8) byte {
	var b B
	if b.Bits() >= 8 {
		return s
	}
	m := uint32(Max[B]())
	scaled := uint32(s) * m

	var x uint32
	switch mode {
	case Nearest:
		x = scaled + 128
	case Probabilistic:
		x = scaled + uint32(prng.Next())
	default:
		panic("lowp: unknown rounding mode")
	}

	return byte((x + ((x - 1) >> 8)) >> 8)
}

// RequantizeVector16 requantizes 16 source bytes at once, producing
// bit-identical output to 16 independent Requantize[B] calls in
// Nearest mode (and the PRNG-matched equivalent in Probabilistic mode,
// provided prng is driven lane-for-lane the same way).
func RequantizeVector16[B BitDepth](src [16]byte, mode RoundingMode, prng *Xorshift8x16) [16]byte {
	var b B
	if b.Bits() >= 8 {
		return src
	}
	m := uint16(Max[B]())

	in := hwy.Load(src[:])
	widened := hwy.PromoteU8ToU16(in)
	// hwy.Set[uint16] would clamp to MaxLanes[uint16](), which is half
	// MaxLanes[uint8]() on a 16-byte register; build the multiplier and
	// offset vectors as bytes first and widen them the same way as the
	// source, so lane counts always match widened's 16 lanes.
	mVec := hwy.PromoteU8ToU16(hwy.Set[uint8](byte(m)))
	scaled := hwy.Mul(widened, mVec)

	var offset hwy.Vec[uint16]
	switch mode {
	case Nearest:
		offset = hwy.PromoteU8ToU16(hwy.Set[uint8](128))
	case Probabilistic:
		draws := prng.Next()
		offset = hwy.PromoteU8ToU16(hwy.Load(draws[:]))
	default:
		panic("lowp: unknown rounding mode")
	}

	x := hwy.Add(scaled, offset)
	one := hwy.PromoteU8ToU16(hwy.Set[uint8](1))
	xMinus1 := hwy.Sub(x, one)
	shifted := hwy.ShiftRight(xMinus1, 8)
	num := hwy.Add(x, shifted)
	result16 := hwy.ShiftRight(num, 8)
	result8 := hwy.DemoteU16ToU8(result16)

	var out [16]byte
	hwy.Store(result8, out[:])
	return out
}
