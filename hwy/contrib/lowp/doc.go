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

// Package lowp packs an 8-bit matrix panel into the layout a
// low-precision GEMM kernel expects.
//
// A low-precision matmul keeps unsigned 8-bit values at its public
// boundary but may accumulate over a narrower per-side bit depth
// internally (say 7 bits on the left operand, 5 bits on the right) to
// shrink the accumulator and raise SIMD throughput. lowp is the packing
// stage: for a panel of the source matrix it
//
//   - requantizes each byte from [0, 255] down to [0, 2^B-1], picking a
//     rounding policy (Nearest or Probabilistic) by bit depth and
//     accumulation depth so the bias stays bounded,
//   - reorders the requantized bytes into the kernel's cell layout, and
//   - accumulates the rank-one-update vector the kernel's accumulation
//     step uses to undo the bias of treating the operands as unsigned.
//
// Usage:
//
//	dst := lowp.NewPackedSideBlock(l2Width, l2Depth, kernelWidth, +1)
//	drv := lowp.NewDriver[lowp.Depth7, lowp.Cell4x2DepthMajor](kCells, l1Width, l1Depth)
//	stats := lowp.PackLHS(dst, src, drv)
//
// The compute kernel that consumes dst, the unpack stage that applies
// the inverse rational scale, and block-size tuning are all out of
// scope here; lowp only produces packed bytes and the rank-one-update
// vector.
package lowp
