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

func TestXorshift8Cycle(t *testing.T) {
	g := NewXorshift8()
	var outputs [256]byte
	for i := range outputs {
		outputs[i] = g.Next()
	}

	if outputs[255] != outputs[0] {
		t.Fatalf("cycle did not repeat: outputs[0]=%d outputs[255]=%d", outputs[0], outputs[255])
	}

	seen := make(map[byte]bool, 255)
	for _, b := range outputs[:255] {
		if b == 0 {
			t.Fatalf("Xorshift8 produced zero")
		}
		if seen[b] {
			t.Fatalf("byte %d repeated before the cycle closed", b)
		}
		seen[b] = true
	}
	if len(seen) != 255 {
		t.Fatalf("cycle visited %d distinct values, want 255", len(seen))
	}
}

func TestXorshift8NeverZero(t *testing.T) {
	g := NewXorshift8Seed(7)
	for i := 0; i < 10_000; i++ {
		if b := g.Next(); b == 0 {
			t.Fatalf("Xorshift8 produced zero at draw %d", i)
		}
	}
}

func TestXorshift8x16LanesDistinct(t *testing.T) {
	g := NewXorshift8x16()
	state := g.Next()
	seen := make(map[byte]bool, 16)
	for _, b := range state {
		if b == 0 {
			t.Fatalf("Xorshift8x16 lane is zero")
		}
		if seen[b] {
			t.Fatalf("Xorshift8x16 lanes are not pairwise distinct: %v", state)
		}
		seen[b] = true
	}
}

func TestXorshift8x16NeverZero(t *testing.T) {
	g := NewXorshift8x16Seed(3)
	for i := 0; i < 1000; i++ {
		for _, b := range g.Next() {
			if b == 0 {
				t.Fatalf("Xorshift8x16 produced zero at draw %d", i)
			}
		}
	}
}

func TestXorshift8SeedReproducible(t *testing.T) {
	a := NewXorshift8Seed(42)
	b := NewXorshift8Seed(42)
	for i := 0; i < 500; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
}
