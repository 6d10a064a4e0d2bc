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

// Package plane provides strided views over single-channel sample grids and
// the temporal window of planes consumed by the flicker kernels.
//
// A Plane does not own its memory. Several planes may view the same buffer
// (see SubRows), and a Plane is cheap to copy by value.
//
// Example usage:
//
//	p := plane.New(plane.Uint8, 640, 480)
//	for y := 0; y < p.Height; y++ {
//	    row := plane.Row[uint8](p, y)
//	    for x := range row {
//	        row[x] = 128
//	    }
//	}
package plane

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ajroetker/go-reduceflicker/lanes"
)

// SampleKind is the element type stored in a plane.
type SampleKind uint8

const (
	// Uint8 is an 8-bit unsigned integer sample.
	Uint8 SampleKind = iota

	// Uint16 is a 16-bit unsigned integer sample, used for 9 to 16 bit content.
	Uint16

	// Float32 is a 32-bit float sample.
	Float32
)

// Valid reports whether k is one of the known sample kinds.
func (k SampleKind) Valid() bool {
	return k <= Float32
}

// Size returns the element size in bytes, or 0 for an unknown kind.
func (k SampleKind) Size() int {
	switch k {
	case Uint8:
		return 1
	case Uint16:
		return 2
	case Float32:
		return 4
	default:
		return 0
	}
}

// Max returns the largest sample value of the kind. Float planes are
// nominally normalized to [0, 1].
func (k SampleKind) Max() float64 {
	switch k {
	case Uint8:
		return 255
	case Uint16:
		return 65535
	default:
		return 1
	}
}

func (k SampleKind) String() string {
	switch k {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("SampleKind(%d)", uint8(k))
	}
}

// ParseSampleKind parses the names produced by SampleKind.String, plus the
// common aliases "u8", "u16", "f32", "8", "16" and "float".
func ParseSampleKind(s string) (SampleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uint8", "u8", "8":
		return Uint8, nil
	case "uint16", "u16", "16":
		return Uint16, nil
	case "float32", "f32", "float", "32":
		return Float32, nil
	}
	return 0, fmt.Errorf("plane: unknown sample kind %q", s)
}

// KindOf returns the SampleKind matching the Go type T.
func KindOf[T lanes.Sample]() SampleKind {
	var one T = 1
	switch {
	case one/2 != 0:
		return Float32
	case unsafe.Sizeof(one) == 1:
		return Uint8
	default:
		return Uint16
	}
}
