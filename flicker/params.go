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
	"strconv"
	"strings"

	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

// Tier selects the kernel implementation.
type Tier int

const (
	// TierAuto picks the widest tier the CPU supports.
	TierAuto Tier = iota

	// TierScalar forces the scalar reference kernels.
	TierScalar

	// TierA uses 128-bit lanes.
	TierA

	// TierB uses 256-bit lanes.
	TierB
)

func (t Tier) String() string {
	switch t {
	case TierAuto:
		return "auto"
	case TierScalar:
		return "scalar"
	case TierA:
		return "a"
	case TierB:
		return "b"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t >= TierAuto && t <= TierB
}

// Level returns the lane level a concrete tier needs. TierAuto and
// TierScalar report LevelScalar.
func (t Tier) Level() lanes.Level {
	switch t {
	case TierA:
		return lanes.Level128
	case TierB:
		return lanes.Level256
	default:
		return lanes.LevelScalar
	}
}

// tierFor returns the widest concrete tier a CPU at level l can run.
func tierFor(l lanes.Level) Tier {
	switch {
	case l >= lanes.Level256:
		return TierB
	case l >= lanes.Level128:
		return TierA
	default:
		return TierScalar
	}
}

// ParseTier accepts tier names, instruction set names and the numeric "opt"
// levels -1 (auto), 0 (scalar), 1 (128-bit) and 2 (256-bit).
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "-1", "":
		return TierAuto, nil
	case "scalar", "c", "0":
		return TierScalar, nil
	case "a", "128", "sse2", "neon", "1":
		return TierA, nil
	case "b", "256", "avx2", "2":
		return TierB, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return 0, &ConfigError{Param: "opt", Value: n, Reason: "must be -1, 0, 1 or 2"}
	}
	return 0, &ConfigError{Param: "tier", Value: strconv.Quote(s), Reason: "unknown tier"}
}

// Params configures a filter instance.
type Params struct {
	// Strength is the temporal reach of the bracket frames, 1 to 3.
	Strength int

	// Aggressive selects the directional variant.
	Aggressive bool

	Kind plane.SampleKind
	Tier Tier
}

// Validate checks everything Select checks except tier availability.
func (p Params) Validate() error {
	if p.Strength < 1 || p.Strength > plane.MaxStrength {
		return &ConfigError{Param: "strength", Value: p.Strength, Reason: "must be 1, 2 or 3"}
	}
	if !p.Kind.Valid() {
		return &ConfigError{Param: "sample kind", Value: p.Kind, Reason: "must be uint8, uint16 or float32"}
	}
	if !p.Tier.Valid() {
		return &ConfigError{Param: "tier", Value: p.Tier, Reason: "unknown tier"}
	}
	return nil
}

// Variant names the filter variant for p.
func (p Params) Variant() string {
	if p.Aggressive {
		return "aggressive"
	}
	return "symmetric"
}
