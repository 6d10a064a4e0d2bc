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

// Tier B: 256-bit vectors.
//
// Unlike Tier A, unsigned 16-bit min/max are direct lane compares here.

// Uint8x32 holds 32 uint8 lanes.
type Uint8x32 [32]uint8

// Uint16x16 holds 16 uint16 lanes.
type Uint16x16 [16]uint16

// Float32x8 holds 8 float32 lanes.
type Float32x8 [8]float32

var (
	_ Vec[uint8, Uint8x32]    = Uint8x32{}
	_ Vec[uint16, Uint16x16]  = Uint16x16{}
	_ Vec[float32, Float32x8] = Float32x8{}
)

func (Uint8x32) NumLanes() int { return 32 }

func (Uint8x32) Load(src []uint8) Uint8x32 { return Uint8x32(src[:32]) }

func (v Uint8x32) Store(dst []uint8) { copy(dst[:32], v[:]) }

func (v Uint8x32) Min(y Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = min(v[i], y[i])
	}
	return v
}

func (v Uint8x32) Max(y Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = max(v[i], y[i])
	}
	return v
}

func (v Uint8x32) AbsDiff(y Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i]) | SaturatedSub(y[i], v[i])
	}
	return v
}

func (v Uint8x32) SubFloor(y Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i])
	}
	return v
}

func (v Uint8x32) AddCeil(y Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = SaturatedAdd(v[i], y[i])
	}
	return v
}

func (v Uint8x32) WeightedAvg(a, b Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = weightedAvg(a[i], b[i], v[i])
	}
	return v
}

func (v Uint8x32) GreaterEqual(y Uint8x32) Uint8x32 {
	m := v.Max(y)
	for i := range v {
		v[i] = maskOf[uint8](v[i] == m[i])
	}
	return v
}

func (v Uint8x32) And(x Uint8x32) Uint8x32 {
	for i := range v {
		v[i] &= x[i]
	}
	return v
}

func (v Uint8x32) AndNot(x Uint8x32) Uint8x32 {
	for i := range v {
		v[i] = x[i] &^ v[i]
	}
	return v
}

func (Uint16x16) NumLanes() int { return 16 }

func (Uint16x16) Load(src []uint16) Uint16x16 { return Uint16x16(src[:16]) }

func (v Uint16x16) Store(dst []uint16) { copy(dst[:16], v[:]) }

func (v Uint16x16) Min(y Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = min(v[i], y[i])
	}
	return v
}

func (v Uint16x16) Max(y Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = max(v[i], y[i])
	}
	return v
}

func (v Uint16x16) AbsDiff(y Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i]) | SaturatedSub(y[i], v[i])
	}
	return v
}

func (v Uint16x16) SubFloor(y Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = SaturatedSub(v[i], y[i])
	}
	return v
}

func (v Uint16x16) AddCeil(y Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = SaturatedAdd(v[i], y[i])
	}
	return v
}

func (v Uint16x16) WeightedAvg(a, b Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = weightedAvg(a[i], b[i], v[i])
	}
	return v
}

func (v Uint16x16) GreaterEqual(y Uint16x16) Uint16x16 {
	m := v.Max(y)
	for i := range v {
		v[i] = maskOf[uint16](v[i] == m[i])
	}
	return v
}

func (v Uint16x16) And(x Uint16x16) Uint16x16 {
	for i := range v {
		v[i] &= x[i]
	}
	return v
}

func (v Uint16x16) AndNot(x Uint16x16) Uint16x16 {
	for i := range v {
		v[i] = x[i] &^ v[i]
	}
	return v
}

func (Float32x8) NumLanes() int { return 8 }

func (Float32x8) Load(src []float32) Float32x8 { return Float32x8(src[:8]) }

func (v Float32x8) Store(dst []float32) { copy(dst[:8], v[:]) }

func (v Float32x8) Min(y Float32x8) Float32x8 {
	for i := range v {
		v[i] = min(v[i], y[i])
	}
	return v
}

func (v Float32x8) Max(y Float32x8) Float32x8 {
	for i := range v {
		v[i] = max(v[i], y[i])
	}
	return v
}

// AbsDiff is computed as max - min, which is exact for finite inputs.
func (v Float32x8) AbsDiff(y Float32x8) Float32x8 {
	hi, lo := v.Max(y), v.Min(y)
	for i := range v {
		v[i] = hi[i] - lo[i]
	}
	return v
}

func (v Float32x8) SubFloor(y Float32x8) Float32x8 {
	for i := range v {
		v[i] -= y[i]
	}
	return v
}

func (v Float32x8) AddCeil(y Float32x8) Float32x8 {
	for i := range v {
		v[i] += y[i]
	}
	return v
}

func (v Float32x8) WeightedAvg(a, b Float32x8) Float32x8 {
	for i := range v {
		v[i] = weightedAvgFloat(a[i], b[i], v[i])
	}
	return v
}

func (v Float32x8) GreaterEqual(y Float32x8) Float32x8 {
	m := v.Max(y)
	for i := range v {
		v[i] = floatMask(v[i] == m[i])
	}
	return v
}

func (v Float32x8) And(x Float32x8) Float32x8 {
	for i := range v {
		v[i] = andFloat(v[i], x[i])
	}
	return v
}

func (v Float32x8) AndNot(x Float32x8) Float32x8 {
	for i := range v {
		v[i] = andNotFloat(v[i], x[i])
	}
	return v
}
