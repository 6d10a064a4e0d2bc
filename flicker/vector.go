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

// Vector kernels, generic over a lane type V holding T samples. Each row is
// processed in whole vectors; the last width%lanes samples go to the scalar
// row kernel tail, so no load or store touches memory past the row.

func symmetricVec[T lanes.Sample, V lanes.Vec[T, V]](tail rowFunc[T]) rowFunc[T] {
	return func(out, cur, p0, n0 []T, br [4][]T, nb int) {
		var z V
		step := z.NumLanes()
		full, rem := lanes.SplitRow(len(out), step)
		for x := 0; x < full; x += step {
			c := z.Load(cur[x:])
			d := c.AbsDiff(z.Load(br[0][x:]))
			for i := 1; i < nb; i++ {
				d = d.Min(c.AbsDiff(z.Load(br[i][x:])))
			}
			p, n := z.Load(p0[x:]), z.Load(n0[x:])
			ul := p.Min(n).SubFloor(d).Max(c)
			ll := p.Max(n).AddCeil(d).Min(c)
			c.WeightedAvg(p, n).Max(ll).Min(ul).Store(out[x:])
		}
		if rem > 0 {
			tail(out[full:], cur[full:], p0[full:], n0[full:], tailRows(br, nb, full), nb)
		}
	}
}

func aggressiveVec[T lanes.Sample, V lanes.Vec[T, V]](tail rowFunc[T]) rowFunc[T] {
	return func(out, cur, p0, n0 []T, br [4][]T, nb int) {
		var z V
		step := z.NumLanes()
		full, rem := lanes.SplitRow(len(out), step)
		for x := 0; x < full; x += step {
			c := z.Load(cur[x:])
			b := z.Load(br[0][x:])
			up := b.GreaterEqual(c)
			d := b.AbsDiff(c)
			d1, d2 := up.And(d), up.AndNot(d)
			for i := 1; i < nb; i++ {
				b = z.Load(br[i][x:])
				up = b.GreaterEqual(c)
				d = b.AbsDiff(c)
				d1 = up.And(d.Min(d1))
				d2 = up.AndNot(d.Min(d2))
			}
			p, n := z.Load(p0[x:]), z.Load(n0[x:])
			ul := p.Min(n).SubFloor(d1).Max(c)
			ll := p.Max(n).AddCeil(d2).Min(c)
			c.WeightedAvg(p, n).Max(ll).Min(ul).Store(out[x:])
		}
		if rem > 0 {
			tail(out[full:], cur[full:], p0[full:], n0[full:], tailRows(br, nb, full), nb)
		}
	}
}

func tailRows[T lanes.Sample](br [4][]T, nb, from int) [4][]T {
	for i := 0; i < nb; i++ {
		br[i] = br[i][from:]
	}
	return br
}
