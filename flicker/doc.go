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

// Package flicker implements the ReduceFlicker temporal filter.
//
// Each output sample is a blend of the current sample with its immediate
// neighbors in time, clamped to a range derived from how far the more distant
// "bracket" frames deviate from the current one:
//
//	strength  blend neighbors  bracket frames
//	1         -1, +1           -2
//	2         -1, +1           -2, +2
//	3         -1, +1           -2, +2, -3, +3
//
// The symmetric variant bounds the deviation with a single distance d, the
// smallest |cur - b| over all bracket frames b. The aggressive variant keeps
// two one-sided distances and collapses a side to zero as soon as one bracket
// frame disagrees in direction.
//
// Kernels exist for uint8, uint16 and float32 samples, in a scalar form and in
// two vector tiers built on the lanes package. Select resolves the kernel for
// a set of Params once; the returned Kernel is immutable, allocates nothing and
// can be shared between goroutines:
//
//	k, err := flicker.New(flicker.Params{Strength: 2, Kind: plane.Uint8})
//	if err != nil {
//	    return err
//	}
//	k.Process(&window, out)
package flicker
