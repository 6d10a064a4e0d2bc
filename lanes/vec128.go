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

// Tier A: 128-bit vectors.
//
// The unsigned 16-bit min/max of this tier are emulated with saturating
// subtraction (MinViaSat, MaxViaSat), matching 128-bit instruction sets that
// only provide min/max for unsigned bytes.

// Uint8x16 holds 16 uint8 lanes.
type Uint8x16 [16]uint8

// Uint16x8 holds 8 uint16 lanes.
type Uint16x8 [8]uint16

// Float32x4 holds 4 float32 lanes.
type Float32x4 [4]float32

var (
	_ Vec[uint8, Uint8x16]    = Uint8x16{}
	_ Vec[uint16, Uint16x8]   = Uint16x8{}
	_ Vec[float32, Float32x4] = Float32x4{}
)

func (Uint8x16) NumLanes() int { return 16 }

func (Uint8x16) Load(src []uint8) Uint8x16 { return Uint8x16(src[:16]) }

func (v Uint8x16) Store(dst []uint8) { copy(dst[:16], v[:]) }

func (v Uint8x16) Min(y Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = min(v[i], y[i])
	}
	return v
}

func (v Uint8x16) Max(y Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = max(v[i], y[i])
	}
	return v
}

func (v Uint8x16) AbsDiff(y Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i]) | SaturatedSub(y[i], v[i])
	}
	return v
}

func (v Uint8x16) SubFloor(y Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i])
	}
	return v
}

func (v Uint8x16) AddCeil(y Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = SaturatedAdd(v[i], y[i])
	}
	return v
}

func (v Uint8x16) WeightedAvg(a, b Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = weightedAvg(a[i], b[i], v[i])
	}
	return v
}

func (v Uint8x16) GreaterEqual(y Uint8x16) Uint8x16 {
	m := v.Max(y)
	for i := range v {
		v[i] = maskOf[uint8](v[i] == m[i])
	}
	return v
}

func (v Uint8x16) And(x Uint8x16) Uint8x16 {
	for i := range v {
		v[i] &= x[i]
	}
	return v
}

func (v Uint8x16) AndNot(x Uint8x16) Uint8x16 {
	for i := range v {
		v[i] = x[i] &^ v[i]
	}
	return v
}

func (Uint16x8) NumLanes() int { return 8 }

func (Uint16x8) Load(src []uint16) Uint16x8 { return Uint16x8(src[:8]) }

func (v Uint16x8) Store(dst []uint16) { copy(dst[:8], v[:]) }

// Min is emulated as x - satsub(x, y).
func (v Uint16x8) Min(y Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = MinViaSat(v[i], y[i])
	}
	return v
}

// Max is emulated as y + satsub(x, y).
func (v Uint16x8) Max(y Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = MaxViaSat(v[i], y[i])
	}
	return v
}

func (v Uint16x8) AbsDiff(y Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i]) | SaturatedSub(y[i], v[i])
	}
	return v
}

func (v Uint16x8) SubFloor(y Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i])
	}
	return v
}

func (v Uint16x8) AddCeil(y Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = SaturatedAdd(v[i], y[i])
	}
	return v
}

func (v Uint16x8) WeightedAvg(a, b Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = weightedAvg(a[i], b[i], v[i])
	}
	return v
}

func (v Uint16x8) GreaterEqual(y Uint16x8) Uint16x8 {
	m := v.Max(y)
	for i := range v {
		v[i] = maskOf[uint16](v[i] == m[i])
	}
	return v
}

func (v Uint16x8) And(x Uint16x8) Uint16x8 {
	for i := range v {
		v[i] &= x[i]
	}
	return v
}

func (v Uint16x8) AndNot(x Uint16x8) Uint16x8 {
	for i := range v {
		v[i] = x[i] &^ v[i]
	}
	return v
}

func (Float32x4) NumLanes() int { return 4 }

func (Float32x4) Load(src []float32) Float32x4 { return Float32x4(src[:4]) }

func (v Float32x4) Store(dst []float32) { copy(dst[:4], v[:]) }

func (v Float32x4) Min(y Float32x4) Float32x4 {
	for i := range v {
		v[i] = min(v[i], y[i])
	}
	return v
}

func (v Float32x4) Max(y Float32x4) Float32x4 {
	for i := range v {
		v[i] = max(v[i], y[i])
	}
	return v
}

// AbsDiff is computed as max - min, which is exact for finite inputs.
func (v Float32x4) AbsDiff(y Float32x4) Float32x4 {
	hi, lo := v.Max(y), v.Min(y)
	for i := range v {
		v[i] = hi[i] - lo[i]
	}
	return v
}

func (v Float32x4) SubFloor(y Float32x4) Float32x4 {
	for i := range v {
		v[i] -= y[i]
	}
	return v
}

func (v Float32x4) AddCeil(y Float32x4) Float32x4 {
	for i := range v {
		v[i] += y[i]
	}
	return v
}

func (v Float32x4) WeightedAvg(a, b Float32x4) Float32x4 {
	for i := range v {
		v[i] = weightedAvgFloat(a[i], b[i], v[i])
	}
	return v
}

func (v Float32x4) GreaterEqual(y Float32x4) Float32x4 {
	m := v.Max(y)
	for i := range v {
		v[i] = floatMask(v[i] == m[i])
	}
	return v
}

func (v Float32x4) And(x Float32x4) Float32x4 {
	for i := range v {
		v[i] = andFloat(v[i], x[i])
	}
	return v
}

func (v Float32x4) AndNot(x Float32x4) Float32x4 {
	for i := range v {
		v[i] = andNotFloat(v[i], x[i])
	}
	return v
}
