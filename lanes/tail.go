// Copyright 2025 go-reduceflicker Authors
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

package lanes

// SplitRow splits a row of width elements into the part covered by whole
// vectors of n lanes and the remainder that must be finished by scalar code.
//
// Example:
//
//	full, rem := lanes.SplitRow(width, v.NumLanes())
//	for x := 0; x < full; x += v.NumLanes() {
//	    // vector body on row[x : x+lanes]
//	}
//	if rem > 0 {
//	    // scalar tail on row[full:width]
//	}
func SplitRow(width, n int) (full, rem int) {
	if n <= 0 || width <= 0 {
		return 0, max(width, 0)
	}
	rem = width % n
	return width - rem, rem
}

// AlignedSize rounds size up to the next multiple of align bytes.
func AlignedSize(size, align int) int {
	if align <= 0 {
		return size
	}
	return ((size + align - 1) / align) * align
}

// IsAligned returns true if size is a multiple of n.
func IsAligned(size, n int) bool {
	if n <= 0 {
		return true
	}
	return size%n == 0
}
