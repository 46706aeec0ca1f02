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

import "testing"

func BenchmarkRequantizeScalar(b *testing.B) {
	prng := NewXorshift8()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Requantize[Depth5](byte(i), Probabilistic, prng)
	}
}

func BenchmarkRequantizeVector16(b *testing.B) {
	var src [16]byte
	for i := range src {
		src[i] = byte(i * 17)
	}
	prng := NewXorshift8x16()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RequantizeVector16[Depth5](src, Probabilistic, prng)
	}
}

func BenchmarkPackL2Scalar(b *testing.B) {
	const width, depth, kCells = 64, 256, 4
	const kernelWidth = 4 * kCells

	src := buildSource(width, depth, func(w, d int) byte { return byte((w + d) % 256) })
	sm := NewSideMap(src, width, depth, depth, WidthMajor)
	dst := NewPackedSideBlock(width, depth, kernelWidth, 1)
	drv := NewDriver[Depth7, Cell4x2DepthMajor](kCells, 16, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drv.PackL2(dst, sm)
	}
}

func BenchmarkPackL2SIMD(b *testing.B) {
	const width, depth, kCells = 64, 256, 4
	const kernelWidth = 4 * kCells

	src := buildSource(width, depth, func(w, d int) byte { return byte((w + d) % 256) })
	sm := NewSideMap(src, width, depth, depth, WidthMajor)
	dst := NewPackedSideBlock(width, depth, kernelWidth, 1)
	drv := NewDriver[Depth7, Cell4x2DepthMajor](kCells, 16, 64, WithSIMD())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drv.PackL2(dst, sm)
	}
}
