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

// Package contrib provides higher-level building blocks on top of the
// portable hwy vector API.
//
// # Subpackages
//
//   - quantization: documents the low-bit-depth formats consumed by a
//     low-precision GEMM kernel
//   - lowp: packs an 8-bit matrix panel into the cell layout a low-precision
//     kernel expects, requantizing each byte to a narrower bit depth and
//     accumulating the rank-one correction term along the way
//
// # Low-Precision Packing (hwy/contrib/lowp)
//
//	import "github.com/ajroetker/go-lowp/hwy/contrib/lowp"
//
//	drv := lowp.NewDriver[lowp.Depth7, lowp.Cell4x2DepthMajor](kCells, l1Width, l1Depth)
//	lowp.PackLHS(dst, src, drv)
//
// See the lowp package documentation for the full packing contract.
package contrib
