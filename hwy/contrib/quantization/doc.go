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

// Package quantization documents the low-precision integer formats that
// feed a narrow-accumulator GEMM kernel.
//
// The external input and output of a low-precision matrix multiply stay
// unsigned 8-bit, but the kernel itself may accumulate over a narrower
// per-side bit depth (for example 7 bits on the left operand and 5 bits
// on the right) to shrink the accumulator width and raise SIMD throughput.
// Going from 8 bits down to B bits is lossy: the packing stage is where
// that loss is introduced, and it is introduced deliberately, with a
// rounding policy chosen to keep the bias low enough that it does not
// compound across the accumulation depth.
//
// # Packing
//
// The hwy/contrib/lowp package implements the packing stage: it
// requantizes each source byte from [0, 255] to [0, 2^B-1], reorders the
// result into the kernel's cell layout, and accumulates a per-column (or
// per-row) rank-one correction term that the kernel's accumulation step
// needs to undo the bias introduced by treating the operands as unsigned.
//
//	import "github.com/ajroetker/go-lowp/hwy/contrib/lowp"
//
//	drv := lowp.NewDriver[lowp.Depth7, lowp.Cell4x2DepthMajor](kCells, l1Width, l1Depth)
//	lowp.PackLHS(dst, src, drv)
//
// Unpacking (applying the inverse rational scale 255·255 /
// ((2^B-1)(2^C-1)) to the kernel's raw accumulator) and the kernel itself
// are out of scope for this package; lowp only produces the packed bytes
// and the rank-one-update vector they consume.
package quantization
