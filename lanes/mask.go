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

import "math"

// Masks are stored in the lane type itself: all bits set for true, all bits
// clear for false. Float masks are therefore NaN bit patterns and must only be
// consumed by And/AndNot, never by arithmetic.

const floatMaskBits = 0xFFFFFFFF

func maskOf[T UnsignedInts](b bool) T {
	if b {
		return ^T(0)
	}
	return 0
}

func floatMask(b bool) float32 {
	if b {
		return math.Float32frombits(floatMaskBits)
	}
	return 0
}

func andFloat(m, x float32) float32 {
	return math.Float32frombits(math.Float32bits(m) & math.Float32bits(x))
}

func andNotFloat(m, x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ math.Float32bits(m))
}
