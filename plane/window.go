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

import (
	"errors"
	"fmt"
)

// MaxStrength is the largest supported temporal reach in each direction.
const MaxStrength = 3

// ErrWindow is wrapped by every error returned from Window.Validate.
var ErrWindow = errors.New("plane: malformed window")

// Window is the set of planes used to produce one output plane. Prev[k-1]
// holds the plane at temporal offset -k and Next[k-1] the plane at +k.
// Planes beyond the strength in use may be left zero.
type Window struct {
	Cur  Plane
	Prev [MaxStrength]Plane
	Next [MaxStrength]Plane
}

// Offset is a temporal offset relative to the current frame.
type Offset int

// Required returns the temporal offsets a kernel of the given strength reads,
// blend neighbors first and then brackets in bracket order.
func Required(strength int) []Offset {
	offs := []Offset{-1, 1}
	switch strength {
	case 1:
		offs = append(offs, -2)
	case 2:
		offs = append(offs, -2, 2)
	case 3:
		offs = append(offs, -2, 2, -3, 3)
	}
	return offs
}

// At returns the plane at temporal offset off, which must lie in
// [-MaxStrength, MaxStrength].
func (w *Window) At(off Offset) Plane {
	switch {
	case off == 0:
		return w.Cur
	case off < 0:
		return w.Prev[-off-1]
	default:
		return w.Next[off-1]
	}
}

// SetAt stores p at temporal offset off.
func (w *Window) SetAt(off Offset, p Plane) {
	switch {
	case off == 0:
		w.Cur = p
	case off < 0:
		w.Prev[-off-1] = p
	default:
		w.Next[off-1] = p
	}
}

// Brackets returns the bracket planes for strength in the order they are
// folded: -2, +2, -3, +3. Strength 1 brackets only against -2. The second
// result is the number of valid entries.
func (w *Window) Brackets(strength int) ([4]Plane, int) {
	var b [4]Plane
	switch strength {
	case 1:
		b[0] = w.Prev[1]
		return b, 1
	case 2:
		b[0], b[1] = w.Prev[1], w.Next[1]
		return b, 2
	default:
		b[0], b[1], b[2], b[3] = w.Prev[1], w.Next[1], w.Prev[2], w.Next[2]
		return b, 4
	}
}

// SubRows returns a window whose planes are the [y0, y1) band of w's planes.
// Planes that are empty in w stay empty.
func (w *Window) SubRows(y0, y1 int) Window {
	sub := Window{Cur: w.Cur.SubRows(y0, y1)}
	for i := range w.Prev {
		if !w.Prev[i].Empty() {
			sub.Prev[i] = w.Prev[i].SubRows(y0, y1)
		}
		if !w.Next[i].Empty() {
			sub.Next[i] = w.Next[i].SubRows(y0, y1)
		}
	}
	return sub
}

// Validate checks the window and output plane for a kernel of the given
// strength: every required plane must be valid and share Cur's shape, and
// dst must not overlap any input.
func (w *Window) Validate(strength int, dst Plane) error {
	if strength < 1 || strength > MaxStrength {
		return fmt.Errorf("%w: strength %d", ErrWindow, strength)
	}
	if err := w.Cur.Validate(); err != nil {
		return fmt.Errorf("%w: current: %w", ErrWindow, err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("%w: output: %w", ErrWindow, err)
	}
	if !SameShape(w.Cur, dst) {
		return fmt.Errorf("%w: output is %dx%d %v, current is %dx%d %v", ErrWindow,
			dst.Width, dst.Height, dst.Kind, w.Cur.Width, w.Cur.Height, w.Cur.Kind)
	}
	if Overlaps(dst, w.Cur) {
		return fmt.Errorf("%w: output aliases current", ErrWindow)
	}
	for _, off := range Required(strength) {
		p := w.At(off)
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: offset %+d: %w", ErrWindow, off, err)
		}
		if !SameShape(w.Cur, p) {
			return fmt.Errorf("%w: offset %+d is %dx%d %v, current is %dx%d %v", ErrWindow, off,
				p.Width, p.Height, p.Kind, w.Cur.Width, w.Cur.Height, w.Cur.Kind)
		}
		if Overlaps(dst, p) {
			return fmt.Errorf("%w: output aliases offset %+d", ErrWindow, off)
		}
	}
	return nil
}
