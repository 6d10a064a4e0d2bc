package flicker

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

var allKinds = []plane.SampleKind{plane.Uint8, plane.Uint16, plane.Float32}

// pixelWindow builds a window of width x 1 planes where every sample of the
// plane at offset off equals vals[off]. Offsets missing from vals are zero.
func pixelWindow[T lanes.Sample](width int, vals map[plane.Offset]T) (*plane.Window, plane.Plane) {
	kind := plane.KindOf[T]()
	w := &plane.Window{}
	for off := plane.Offset(-3); off <= 3; off++ {
		p := plane.New(kind, width, 1)
		plane.Fill(p, vals[off])
		w.SetAt(off, p)
	}
	return w, plane.New(kind, width, 1)
}

// randomWindow fills a full window with random samples. One in four samples
// is 0 or the kind's maximum. Strides get a random amount of padding.
func randomWindow(rng *rand.Rand, kind plane.SampleKind, width, height int) *plane.Window {
	w := &plane.Window{}
	for off := plane.Offset(-3); off <= 3; off++ {
		w.SetAt(off, randomPlane(rng, kind, width, height))
	}
	return w
}

func randomPlane(rng *rand.Rand, kind plane.SampleKind, width, height int) plane.Plane {
	pad := rng.IntN(5)
	stride := (width + pad) * kind.Size()
	buf := plane.New(kind, (width+pad)*height+1, 1).Pix
	p, err := plane.FromBytes(buf, kind, width, height, stride)
	if err != nil {
		panic(err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch kind {
			case plane.Uint8:
				plane.Set(p, x, y, uint8(randomSample(rng, 255)))
			case plane.Uint16:
				plane.Set(p, x, y, uint16(randomSample(rng, 65535)))
			case plane.Float32:
				plane.Set(p, x, y, float32(randomSample(rng, 1<<20))/(1<<20))
			}
		}
	}
	return p
}

func randomSample(rng *rand.Rand, top int) int {
	switch rng.IntN(8) {
	case 0:
		return 0
	case 1:
		return top
	default:
		return rng.IntN(top + 1)
	}
}

// rows copies the samples of p into a slice per row, for cmp.Diff.
func rows[T lanes.Sample](p plane.Plane) [][]T {
	out := make([][]T, p.Height)
	for y := range out {
		out[y] = append([]T(nil), plane.Row[T](p, y)...)
	}
	return out
}

// sampleAt returns the sample at (x, y) as a float64 regardless of kind.
func sampleAt(p plane.Plane, x, y int) float64 {
	switch p.Kind {
	case plane.Uint8:
		return float64(plane.At[uint8](p, x, y))
	case plane.Uint16:
		return float64(plane.At[uint16](p, x, y))
	default:
		return float64(plane.At[float32](p, x, y))
	}
}

func mustSelect(t testing.TB, p Params, l lanes.Level) Kernel {
	t.Helper()
	k, err := Select(p, l)
	if err != nil {
		t.Fatalf("Select(%+v, %v): %v", p, l, err)
	}
	return k
}

var concreteTiers = []Tier{TierScalar, TierA, TierB}
