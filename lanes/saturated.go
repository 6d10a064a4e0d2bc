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

// This file provides per-lane saturating arithmetic. Every lane type in the
// package is built from these primitives, so the tiers share one definition of
// overflow behavior.

// MaxValue returns the largest value representable by T.
func MaxValue[T UnsignedInts]() T {
	return ^T(0)
}

// SaturatedAdd returns a + b clamped to the range of T.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T UnsignedInts](a, b T) T {
	s := a + b
	if s < a {
		return ^T(0)
	}
	return s
}

// SaturatedSub returns a - b clamped at zero.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T UnsignedInts](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// RoundedAvg returns (a + b + 1) / 2 without overflowing T.
func RoundedAvg[T UnsignedInts](a, b T) T {
	return (a | b) - ((a ^ b) >> 1)
}

// AbsDiff returns |a - b|.
func AbsDiff[T Sample](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// MaxViaSat computes max(x, y) as y + satsub(x, y). This is how unsigned
// 16-bit max is built on vector units that only provide saturating subtract.
func MaxViaSat[T UnsignedInts](x, y T) T {
	return y + SaturatedSub(x, y)
}

// MinViaSat computes min(x, y) as x - satsub(x, y).
func MinViaSat[T UnsignedInts](x, y T) T {
	return x - SaturatedSub(x, y)
}

// weightedAvg is the integer blend every tier uses:
// avg(satsub(avg(a, b), 1), v).
func weightedAvg[T UnsignedInts](a, b, v T) T {
	return RoundedAvg(SaturatedSub(RoundedAvg(a, b), 1), v)
}

// weightedAvgFloat is the float blend used by vector tiers. Pairs are summed
// first, which can round differently from a left-to-right scalar sum.
func weightedAvgFloat(a, b, v float32) float32 {
	return ((a + b) + (v + v)) * 0.25
}
