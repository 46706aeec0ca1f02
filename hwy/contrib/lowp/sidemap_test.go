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

func TestSideMapWidthMajorAt(t *testing.T) {
	// 3 rows (width) x 4 cols (depth), row-major storage.
	data := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	m := NewSideMap(data, 3, 4, 4, WidthMajor)
	for w := 0; w < 3; w++ {
		for d := 0; d < 4; d++ {
			want := byte(w*4 + d)
			if got := m.At(w, d); got != want {
				t.Errorf("At(%d,%d) = %d, want %d", w, d, got, want)
			}
		}
	}
}

func TestSideMapDepthMajorAt(t *testing.T) {
	// width 3 x depth 4, DepthMajor storage: the 3 width entries of one
	// depth index are contiguous, so At(w, d) is data[d*3+w].
	data := []byte{
		0, 1, 2, // depth 0 (width 0..2)
		3, 4, 5, // depth 1
		6, 7, 8, // depth 2
		9, 10, 11, // depth 3
	}
	m := NewSideMap(data, 3, 4, 3, DepthMajor)
	for w := 0; w < 3; w++ {
		for d := 0; d < 4; d++ {
			want := data[d*3+w]
			if got := m.At(w, d); got != want {
				t.Errorf("At(%d,%d) = %d, want %d", w, d, got, want)
			}
		}
	}
}

func TestSideMapSubMap(t *testing.T) {
	data := make([]byte, 8*8)
	for i := range data {
		data[i] = byte(i)
	}
	m := NewSideMap(data, 8, 8, 8, WidthMajor)
	sub := m.SubMap(2, 3, 4, 2)
	if sub.Width() != 4 || sub.Depth() != 2 {
		t.Fatalf("SubMap shape = (%d,%d), want (4,2)", sub.Width(), sub.Depth())
	}
	for w := 0; w < 4; w++ {
		for d := 0; d < 2; d++ {
			if got, want := sub.At(w, d), m.At(2+w, 3+d); got != want {
				t.Errorf("sub.At(%d,%d) = %d, want %d", w, d, got, want)
			}
		}
	}
}

func TestSideMapSubMapOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds sub-view")
		}
	}()
	m := NewSideMap(make([]byte, 16), 4, 4, 4, WidthMajor)
	m.SubMap(2, 2, 4, 4)
}

func TestSideMapRowRequiresWidthMajor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when Row is called on a DepthMajor side map")
		}
	}()
	m := NewSideMap(make([]byte, 16), 4, 4, 4, DepthMajor)
	m.Row(0, 0, 4)
}
