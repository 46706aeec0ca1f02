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

// PackStats summarizes a completed pack for tests and benchmarks. It
// is not part of the kernel contract; nothing downstream consumes it.
type PackStats struct {
	// TilesPacked counts register tiles processed, complete or boundary.
	TilesPacked int
	// BoundaryTiles counts tiles that required zero-padding.
	BoundaryTiles int
	// BytesWritten counts bytes written into the destination buffer.
	BytesWritten int
	// Mode is the rounding mode selected for this pack.
	Mode RoundingMode
}
