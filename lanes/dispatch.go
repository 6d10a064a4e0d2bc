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

import (
	"os"
	"strconv"
	"sync"
)

// Level is a vector tier the running CPU can execute. Levels are ordered:
// a CPU that supports a level supports every lower one.
type Level int

const (
	// LevelScalar indicates no vector tier, scalar kernels only.
	LevelScalar Level = iota

	// Level128 indicates 128-bit vectors (SSE2 on amd64, NEON on arm64).
	Level128

	// Level256 indicates 256-bit vectors (AVX2 on amd64).
	Level256
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case Level128:
		return "128"
	case Level256:
		return "256"
	default:
		return "unknown"
	}
}

// Width returns the vector width in bytes, or 0 for LevelScalar.
func (l Level) Width() int {
	switch l {
	case Level128:
		return 16
	case Level256:
		return 32
	default:
		return 0
	}
}

// Supports reports whether a CPU at level l can run code written for level x.
func (l Level) Supports(x Level) bool {
	return x >= LevelScalar && x <= l
}

// detectedLevel and detectedName are set by init() in dispatch_*.go files.
var (
	detectedLevel Level
	detectedName  string
)

var (
	overrideMu sync.RWMutex
	override   *Level
)

// CurrentLevel returns the widest tier available on this CPU, or the level
// forced by SetLevelForTesting.
func CurrentLevel() Level {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	if override != nil {
		return *override
	}
	return detectedLevel
}

// CurrentWidth returns the vector width in bytes for CurrentLevel.
func CurrentWidth() int {
	return CurrentLevel().Width()
}

// CurrentName returns the instruction set behind the detected level,
// for example "avx2", "sse2", "neon" or "scalar".
func CurrentName() string {
	if CurrentLevel() != detectedLevel {
		return CurrentLevel().String()
	}
	return detectedName
}

// SetLevelForTesting pretends the CPU supports exactly level l.
// It is intended for tests that exercise tier selection.
func SetLevelForTesting(l Level) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	override = &l
}

// ResetLevel clears any level forced by SetLevelForTesting.
func ResetLevel() {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	override = nil
}

// NoSimdEnv checks if the RF_NO_SIMD environment variable is set.
// When set, detection reports LevelScalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("RF_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	detectedLevel = LevelScalar
	detectedName = "scalar"
}
