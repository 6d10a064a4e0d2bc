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

import (
	"fmt"

	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

// Key identifies one kernel in the dispatch table. Tier is always concrete,
// never TierAuto.
type Key struct {
	Tier       Tier
	Strength   int
	Aggressive bool
	Kind       plane.SampleKind
}

func (k Key) String() string {
	variant := "symmetric"
	if k.Aggressive {
		variant = "aggressive"
	}
	return fmt.Sprintf("%v/%s/s%d/%v", k.Tier, variant, k.Strength, k.Kind)
}

// kernelFunc filters a whole window into dst.
type kernelFunc func(w *plane.Window, dst plane.Plane)

// planeKernel runs row over every row of the window.
func planeKernel[T lanes.Sample](strength int, row rowFunc[T]) kernelFunc {
	return func(w *plane.Window, dst plane.Plane) {
		b, nb := w.Brackets(strength)
		var br [4][]T
		for y := 0; y < dst.Height; y++ {
			for i := 0; i < nb; i++ {
				br[i] = plane.Row[T](b[i], y)
			}
			row(plane.Row[T](dst, y), plane.Row[T](w.Cur, y),
				plane.Row[T](w.Prev[0], y), plane.Row[T](w.Next[0], y), br, nb)
		}
	}
}

// Kernel is a resolved filter entry point. The zero Kernel is not usable;
// obtain one from Select or New.
type Kernel struct {
	key Key
	fn  kernelFunc
}

// Select resolves the kernel for p on a CPU supporting the available level.
// It is the only place configuration errors are reported.
func Select(p Params, available lanes.Level) (Kernel, error) {
	if err := p.Validate(); err != nil {
		return Kernel{}, err
	}
	tier := p.Tier
	switch tier {
	case TierAuto:
		tier = tierFor(available)
	case TierA, TierB:
		if !available.Supports(tier.Level()) {
			return Kernel{}, &UnsupportedTierError{Requested: tier, Available: available}
		}
	}
	key := Key{Tier: tier, Strength: p.Strength, Aggressive: p.Aggressive, Kind: p.Kind}
	fn, ok := kernels[key]
	if !ok {
		return Kernel{}, &ConfigError{Param: "kernel", Value: key, Reason: "no table entry"}
	}
	return Kernel{key: key, fn: fn}, nil
}

// New resolves the kernel for p on the running CPU.
func New(p Params) (Kernel, error) {
	return Select(p, lanes.CurrentLevel())
}

// Process filters w into dst. The window must hold every plane the kernel's
// strength requires, all of dst's shape, and dst must not overlap any of
// them. These preconditions are not checked; see ProcessChecked.
func (k Kernel) Process(w *plane.Window, dst plane.Plane) {
	k.fn(w, dst)
}

// ProcessChecked validates the window and output before calling Process.
func (k Kernel) ProcessChecked(w *plane.Window, dst plane.Plane) error {
	if w.Cur.Kind != k.key.Kind {
		return fmt.Errorf("%w: %v kernel given %v planes", plane.ErrWindow, k.key.Kind, w.Cur.Kind)
	}
	if err := w.Validate(k.key.Strength, dst); err != nil {
		return err
	}
	k.Process(w, dst)
	return nil
}

// Key returns the table key the kernel was resolved to.
func (k Kernel) Key() Key { return k.key }

func (k Kernel) String() string { return k.key.String() }

// Keys returns every key in the dispatch table.
func Keys() []Key {
	keys := make([]Key, 0, len(kernels))
	for k := range kernels {
		keys = append(keys, k)
	}
	return keys
}
