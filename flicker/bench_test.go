package flicker

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

func BenchmarkProcess(b *testing.B) {
	const width, height = 1920, 1080
	for _, kind := range allKinds {
		w := &plane.Window{}
		for off := plane.Offset(-3); off <= 3; off++ {
			w.SetAt(off, plane.New(kind, width, height))
		}
		dst := plane.New(kind, width, height)
		for _, tier := range concreteTiers {
			for _, aggressive := range []bool{false, true} {
				k := mustSelect(b, Params{Strength: 2, Aggressive: aggressive, Kind: kind, Tier: tier}, lanes.Level256)
				b.Run(fmt.Sprint(k), func(b *testing.B) {
					b.SetBytes(int64(width * height * kind.Size()))
					b.ReportAllocs()
					for i := 0; i < b.N; i++ {
						k.Process(w, dst)
					}
				})
			}
		}
	}
}
