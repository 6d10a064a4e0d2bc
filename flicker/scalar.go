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

package flicker

import "github.com/ajroetker/go-reduceflicker/lanes"

// Scalar reference kernels. Integer samples are widened to int, so no step
// can overflow; the vector tiers reach the same results with saturating
// arithmetic.

// rowFunc filters one row. br holds nb bracket rows in fold order.
type rowFunc[T lanes.Sample] func(out, cur, p0, n0 []T, br [4][]T, nb int)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// blendInt is avg(max(avg(p, n) - 1, 0), c) with averages rounding up.
func blendInt(p, n, c int) int {
	t := max((p+n+1)/2-1, 0)
	return (t + c + 1) / 2
}

func symmetricInt[T lanes.UnsignedInts](out, cur, p0, n0 []T, br [4][]T, nb int) {
	for x := range out {
		c := int(cur[x])
		d := absInt(c - int(br[0][x]))
		for i := 1; i < nb; i++ {
			d = min(d, absInt(c-int(br[i][x])))
		}
		p, n := int(p0[x]), int(n0[x])
		ul := max(min(p, n)-d, c)
		ll := min(max(p, n)+d, c)
		out[x] = T(min(max(blendInt(p, n, c), ll), ul))
	}
}

func aggressiveInt[T lanes.UnsignedInts](out, cur, p0, n0 []T, br [4][]T, nb int) {
	for x := range out {
		c := int(cur[x])
		d1, d2 := int(br[0][x])-c, 0
		if d1 < 0 {
			d1, d2 = 0, -d1
		}
		for i := 1; i < nb; i++ {
			if d := int(br[i][x]) - c; d >= 0 {
				d1, d2 = min(d1, d), 0
			} else {
				d1, d2 = 0, min(d2, -d)
			}
		}
		p, n := int(p0[x]), int(n0[x])
		ul := max(min(p, n)-d1, c)
		ll := min(max(p, n)+d2, c)
		out[x] = T(min(max(blendInt(p, n, c), ll), ul))
	}
}

func symmetricFloat(out, cur, p0, n0 []float32, br [4][]float32, nb int) {
	for x := range out {
		c := cur[x]
		d := lanes.AbsDiff(c, br[0][x])
		for i := 1; i < nb; i++ {
			d = min(d, lanes.AbsDiff(c, br[i][x]))
		}
		p, n := p0[x], n0[x]
		avg := (p + n + c + c) * 0.25
		ul := max(min(p, n)-d, c)
		ll := min(max(p, n)+d, c)
		out[x] = min(max(avg, ll), ul)
	}
}

func aggressiveFloat(out, cur, p0, n0 []float32, br [4][]float32, nb int) {
	for x := range out {
		c := cur[x]
		d1, d2 := br[0][x]-c, float32(0)
		if d1 < 0 {
			d1, d2 = 0, -d1
		}
		for i := 1; i < nb; i++ {
			if d := br[i][x] - c; d >= 0 {
				d1, d2 = min(d1, d), 0
			} else {
				d1, d2 = 0, min(d2, -d)
			}
		}
		p, n := p0[x], n0[x]
		avg := (p + n + c + c) * 0.25
		ul := max(min(p, n)-d1, c)
		ll := min(max(p, n)+d2, c)
		out[x] = min(max(avg, ll), ul)
	}
}
