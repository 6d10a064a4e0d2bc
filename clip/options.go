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

package clip

import (
	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/plane"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

// Options configures a Filter. Start from DefaultOptions; the zero value
// has an invalid strength.
type Options struct {
	// Strength is the temporal reach of the bracket frames, 1 to 3.
	Strength int

	// Aggressive selects the directional variant.
	Aggressive bool

	// Grey leaves the chroma planes of YUV formats untouched.
	Grey bool

	// Luma filters the luma plane of YUV and gray formats.
	Luma bool

	// Tier requests a kernel tier; TierAuto picks the widest available.
	Tier flicker.Tier

	// RandomAccess fetches the window from the farthest future frame
	// backwards, which suits sources that seek cheaply. When false frames
	// are fetched in display order.
	RandomAccess bool

	// Edge maps neighbor frame numbers outside the clip back into it. The
	// zero value replicates the first and last frames.
	Edge plane.EdgeMode

	// Workers is the number of goroutines used per frame; <= 0 means
	// GOMAXPROCS. Ignored when Pool is set.
	Workers int

	// Pool, if set, is used instead of a pool owned by the Filter.
	Pool *workerpool.Pool

	// MinBandRows is the smallest band a plane is split into.
	MinBandRows int

	// CacheFrames is the number of source frames kept between calls. Zero
	// picks a size covering a few consecutive windows; negative disables
	// caching.
	CacheFrames int
}

// DefaultOptions returns the options matching the filter's usual defaults:
// strength 2, symmetric, luma and chroma filtered, random access fetching.
func DefaultOptions() Options {
	return Options{
		Strength:     2,
		Luma:         true,
		RandomAccess: true,
		MinBandRows:  16,
	}
}

func (o Options) params(f Format) flicker.Params {
	return flicker.Params{
		Strength:   o.Strength,
		Aggressive: o.Aggressive,
		Kind:       f.Kind,
		Tier:       o.Tier,
	}
}

// processPlanes reports for each plane of f whether it is filtered. RGB
// filters every color plane; otherwise plane 0 follows Luma and the chroma
// planes follow !Grey. Alpha is never filtered.
func (o Options) processPlanes(f Format) []bool {
	out := make([]bool, f.NumPlanes())
	for i := 0; i < f.ColorPlanes(); i++ {
		switch {
		case f.Family == RGB:
			out[i] = true
		case i == 0:
			out[i] = o.Luma
		default:
			out[i] = !o.Grey
		}
	}
	return out
}
