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

// Package lanes provides fixed-width lane types and saturating arithmetic
// for the temporal filter kernels, with runtime detection of the widest
// vector tier the CPU supports.
//
// Two tiers are provided. Tier A works on 128-bit vectors:
//
//	Uint8x16, Uint16x8, Float32x4
//
// Tier B works on 256-bit vectors:
//
//	Uint8x32, Uint16x16, Float32x8
//
// Every lane type is a plain value array, so vectors live in registers or on
// the stack and no operation allocates. All lane types share one method set
// (Load, Store, Min, Max, AbsDiff, SubFloor, AddCeil, WeightedAvg,
// GreaterEqual, And, AndNot), which lets kernels be written once as generic
// code and instantiated per tier.
//
// Basic usage:
//
//	var v lanes.Uint8x16
//	a := v.Load(row0[x:])
//	b := v.Load(row1[x:])
//	a.Max(b).Store(out[x:])
package lanes

// Floats is a constraint for floating-point sample types.
type Floats interface {
	~float32
}

// UnsignedInts is a constraint for the unsigned integer sample types.
type UnsignedInts interface {
	~uint8 | ~uint16
}

// Sample is a constraint for every sample type a plane can hold.
type Sample interface {
	UnsignedInts | Floats
}

// Vec is the method set shared by every lane type. V is the lane type itself,
// T its element type.
//
// Mask-producing methods (GreaterEqual) return a V whose lanes have every bit
// set where the predicate holds and every bit clear elsewhere. And and AndNot
// treat the receiver as such a mask.
type Vec[T Sample, V any] interface {
	// NumLanes returns the number of elements in the vector.
	NumLanes() int

	// Load returns a vector holding src[0:NumLanes()]. It panics if src is
	// shorter than the vector.
	Load(src []T) V

	// Store writes the vector to dst[0:NumLanes()].
	Store(dst []T)

	Min(y V) V
	Max(y V) V

	// AbsDiff returns |v - y| per lane.
	AbsDiff(y V) V

	// SubFloor returns v - y, saturating at zero for integer lanes.
	SubFloor(y V) V

	// AddCeil returns v + y, saturating at the type maximum for integer lanes.
	AddCeil(y V) V

	// WeightedAvg blends the receiver with a and b, giving the receiver half of
	// the weight. Integer lanes compute avg(max(avg(a,b)-1, 0), v) with
	// rounding-up averages; float lanes compute (a + b + 2v) / 4.
	WeightedAvg(a, b V) V

	// GreaterEqual returns a mask of lanes where v >= y.
	GreaterEqual(y V) V

	// And returns m & x for mask m.
	And(x V) V

	// AndNot returns x &^ m for mask m.
	AndNot(x V) V
}
