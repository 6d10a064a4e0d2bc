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

package plane

import "fmt"

// Edge handling for indices that fall outside [0, size), used for both
// temporal (frame number) and spatial lookups.

// Clamp returns index limited to [0, size-1], replicating the edge element.
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Mirror reflects index about the edges without repeating the edge element:
// -1 maps to 1 and size maps to size-2.
func Mirror(index, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2 * (size - 1)
	index %= period
	if index < 0 {
		index += period
	}
	if index >= size {
		index = period - index
	}
	return index
}

// Wrap returns index modulo size.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}

// EdgeMode selects one of the edge functions.
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeMirror
	EdgeWrap
)

// Apply maps index into [0, size) using the mode.
func (m EdgeMode) Apply(index, size int) int {
	switch m {
	case EdgeMirror:
		return Mirror(index, size)
	case EdgeWrap:
		return Wrap(index, size)
	default:
		return Clamp(index, size)
	}
}

// ParseEdgeMode parses the names produced by EdgeMode.String.
func ParseEdgeMode(s string) (EdgeMode, error) {
	for _, m := range []EdgeMode{EdgeClamp, EdgeMirror, EdgeWrap} {
		if s == m.String() {
			return m, nil
		}
	}
	return EdgeClamp, fmt.Errorf("plane: unknown edge mode %q", s)
}

func (m EdgeMode) String() string {
	switch m {
	case EdgeMirror:
		return "mirror"
	case EdgeWrap:
		return "wrap"
	default:
		return "clamp"
	}
}
