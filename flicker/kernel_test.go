package flicker

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

// Widths cover a scalar-only row, rows shorter than one vector, exact vector
// multiples and vector bodies followed by a remainder.
var testWidths = []int{1, 3, 8, 15, 16, 17, 31, 32, 40, 71}

func TestScenarioA(t *testing.T) {
	for _, tier := range concreteTiers {
		for _, width := range testWidths {
			t.Run(fmt.Sprintf("%v/w%d", tier, width), func(t *testing.T) {
				w, dst := pixelWindow(width, map[plane.Offset]uint8{-2: 90, -1: 100, 0: 120, 1: 140})
				k := mustSelect(t, Params{Strength: 1, Kind: plane.Uint8, Tier: tier}, lanes.Level256)
				k.Process(w, dst)
				for x, got := range plane.Row[uint8](dst, 0) {
					if got != 120 {
						t.Fatalf("x=%d: got %d, want 120", x, got)
					}
				}
			})
		}
	}
}

func TestScenarioB(t *testing.T) {
	for _, tier := range concreteTiers {
		for _, width := range testWidths {
			t.Run(fmt.Sprintf("%v/w%d", tier, width), func(t *testing.T) {
				w, dst := pixelWindow(width, map[plane.Offset]float32{-2: 10, -1: 10, 0: 15, 1: 20})
				k := mustSelect(t, Params{Strength: 1, Kind: plane.Float32, Tier: tier}, lanes.Level256)
				k.Process(w, dst)
				for x, got := range plane.Row[float32](dst, 0) {
					if got != 15 {
						t.Fatalf("x=%d: got %v, want 15", x, got)
					}
				}
			})
		}
	}
}

func TestStrengthOneIgnoresForwardBracket(t *testing.T) {
	// cur=100, neighbors 110 and 130, blend 110. The -2 bracket at 104 gives
	// d=4 and caps the output at 106. A +2 frame equal to cur would give d=0,
	// which only counts from strength 2 on.
	base := map[plane.Offset]uint16{-2: 104, -1: 110, 0: 100, 1: 130, 2: 100}

	cases := []struct {
		strength int
		want     uint16
	}{
		{1, 106},
		{2, 110},
	}
	for _, tier := range concreteTiers {
		for _, c := range cases {
			w, dst := pixelWindow(19, base)
			k := mustSelect(t, Params{Strength: c.strength, Kind: plane.Uint16, Tier: tier}, lanes.Level256)
			k.Process(w, dst)
			if got := plane.At[uint16](dst, 18, 0); got != c.want {
				t.Errorf("%v strength %d: got %d, want %d", tier, c.strength, got, c.want)
			}
		}

		// Moving the +2 frame anywhere leaves strength 1 unchanged.
		for _, v := range []uint16{0, 100, 104, 65535} {
			vals := map[plane.Offset]uint16{-2: 104, -1: 110, 0: 100, 1: 130, 2: v}
			w, dst := pixelWindow(19, vals)
			mustSelect(t, Params{Strength: 1, Kind: plane.Uint16, Tier: tier}, lanes.Level256).Process(w, dst)
			if got := plane.At[uint16](dst, 0, 0); got != 106 {
				t.Errorf("%v: +2=%d changed strength 1 output to %d", tier, v, got)
			}
		}
	}
}

func TestAggressiveDirectionDisagreement(t *testing.T) {
	// -2 lies above cur and +2 below, so the aggressive variant zeroes both
	// one-sided bounds while the symmetric one keeps d=4.
	vals := map[plane.Offset]uint8{-2: 120, -1: 110, 0: 100, 1: 130, 2: 96}
	cases := []struct {
		aggressive bool
		want       uint8
	}{
		{false, 106},
		{true, 110},
	}
	for _, tier := range concreteTiers {
		for _, c := range cases {
			w, dst := pixelWindow(33, vals)
			k := mustSelect(t, Params{Strength: 2, Aggressive: c.aggressive, Kind: plane.Uint8, Tier: tier}, lanes.Level256)
			k.Process(w, dst)
			for x, got := range plane.Row[uint8](dst, 0) {
				if got != c.want {
					t.Fatalf("%v aggressive=%v x=%d: got %d, want %d", tier, c.aggressive, x, got, c.want)
				}
			}
		}
	}
}

func TestAggressiveAgreement(t *testing.T) {
	// All brackets above cur: d1 = min distance, d2 = 0.
	vals := map[plane.Offset]float32{-3: 0.9, -2: 0.5, -1: 0.6, 0: 0.4, 1: 0.8, 2: 0.45, 3: 0.7}
	for _, tier := range concreteTiers {
		w, dst := pixelWindow(9, vals)
		k := mustSelect(t, Params{Strength: 3, Aggressive: true, Kind: plane.Float32, Tier: tier}, lanes.Level256)
		k.Process(w, dst)
		// ul = max(0.6 - 0.05, 0.4) = 0.55, avg = 0.55, ll = 0.4.
		got := plane.At[float32](dst, 8, 0)
		if d := got - 0.55; d > 1e-6 || d < -1e-6 {
			t.Errorf("%v: got %v, want 0.55", tier, got)
		}
	}
}

func TestStaticScene(t *testing.T) {
	constants := map[plane.SampleKind][]float64{
		plane.Uint8:   {0, 1, 77, 254, 255},
		plane.Uint16:  {0, 1, 1234, 65534, 65535},
		plane.Float32: {0, 0.25, 0.5, 1},
	}
	for _, kind := range allKinds {
		for _, tier := range concreteTiers {
			for strength := 1; strength <= 3; strength++ {
				for _, aggressive := range []bool{false, true} {
					k := mustSelect(t, Params{Strength: strength, Aggressive: aggressive, Kind: kind, Tier: tier}, lanes.Level256)
					for _, c := range constants[kind] {
						w := &plane.Window{}
						for off := plane.Offset(-3); off <= 3; off++ {
							w.SetAt(off, constPlane(kind, 37, 3, c))
						}
						dst := plane.New(kind, 37, 3)
						k.Process(w, dst)
						for y := 0; y < dst.Height; y++ {
							for x := 0; x < dst.Width; x++ {
								if got := sampleAt(dst, x, y); got != c {
									t.Fatalf("%v C=%v: (%d,%d) = %v", k, c, x, y, got)
								}
							}
						}
					}
				}
			}
		}
	}
}

func constPlane(kind plane.SampleKind, w, h int, c float64) plane.Plane {
	p := plane.New(kind, w, h)
	switch kind {
	case plane.Uint8:
		plane.Fill(p, uint8(c))
	case plane.Uint16:
		plane.Fill(p, uint16(c))
	default:
		plane.Fill(p, float32(c))
	}
	return p
}

func TestProcessChecked(t *testing.T) {
	k := mustSelect(t, Params{Strength: 2, Kind: plane.Uint8, Tier: TierScalar}, lanes.Level256)
	w, dst := pixelWindow(8, map[plane.Offset]uint8{0: 5})
	if err := k.ProcessChecked(w, dst); err != nil {
		t.Fatalf("valid window: %v", err)
	}
	if err := k.ProcessChecked(w, w.Next[1]); err == nil {
		t.Error("output aliasing +2 was accepted")
	}
	if err := k.ProcessChecked(w, plane.New(plane.Uint8, 9, 1)); err == nil {
		t.Error("wider output was accepted")
	}
	fw, fdst := pixelWindow(8, map[plane.Offset]float32{0: 5})
	if err := k.ProcessChecked(fw, fdst); err == nil {
		t.Error("float planes were accepted by a uint8 kernel")
	}
}

func TestProcessDoesNotAllocate(t *testing.T) {
	for _, kind := range allKinds {
		k := mustSelect(t, Params{Strength: 3, Aggressive: true, Kind: kind, Tier: TierScalar}, lanes.Level256)
		w := &plane.Window{}
		for off := plane.Offset(-3); off <= 3; off++ {
			w.SetAt(off, plane.New(kind, 64, 8))
		}
		dst := plane.New(kind, 64, 8)
		if n := testing.AllocsPerRun(20, func() { k.Process(w, dst) }); n != 0 {
			t.Errorf("%v: %v allocations per Process", k, n)
		}
	}
}

func TestProcessOnBands(t *testing.T) {
	// Filtering horizontal bands separately gives the same plane as filtering
	// it whole, which is what lets hosts split a plane across goroutines.
	rng := newRand(t)
	for _, tier := range concreteTiers {
		k := mustSelect(t, Params{Strength: 3, Kind: plane.Uint16, Tier: tier}, lanes.Level256)
		w := randomWindow(rng, plane.Uint16, 45, 10)
		whole := plane.New(plane.Uint16, 45, 10)
		k.Process(w, whole)

		banded := plane.New(plane.Uint16, 45, 10)
		for y := 0; y < 10; y += 3 {
			y1 := min(y+3, 10)
			sub := w.SubRows(y, y1)
			k.Process(&sub, banded.SubRows(y, y1))
		}
		for y := 0; y < 10; y++ {
			for x := 0; x < 45; x++ {
				if a, b := plane.At[uint16](whole, x, y), plane.At[uint16](banded, x, y); a != b {
					t.Fatalf("%v (%d,%d): whole %d, banded %d", tier, x, y, a, b)
				}
			}
		}
	}
}
