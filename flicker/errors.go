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
	"errors"
	"fmt"

	"github.com/ajroetker/go-reduceflicker/lanes"
)

// Sentinel errors for Select. Every error Select returns wraps one of them.
var (
	// ErrConfig is wrapped by *ConfigError.
	ErrConfig = errors.New("flicker: invalid configuration")

	// ErrUnsupportedTier is wrapped by *UnsupportedTierError.
	ErrUnsupportedTier = errors.New("flicker: vector tier not supported")
)

// ConfigError reports a parameter outside its documented domain.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("flicker: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// UnsupportedTierError reports an explicitly requested vector tier wider than
// what the running CPU supports.
type UnsupportedTierError struct {
	Requested Tier
	Available lanes.Level
}

func (e *UnsupportedTierError) Error() string {
	return fmt.Sprintf("flicker: tier %v requires %d-bit vectors, CPU supports %v",
		e.Requested, e.Requested.Level().Width()*8, e.Available)
}

func (e *UnsupportedTierError) Unwrap() error { return ErrUnsupportedTier }
