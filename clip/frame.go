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
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/ajroetker/go-reduceflicker/plane"
)

// ErrFrameRange is returned when a frame number lies outside the clip.
var ErrFrameRange = errors.New("clip: frame number out of range")

// ErrFrameMismatch is returned when a source hands out a frame whose format,
// size or planes differ from the clip's.
var ErrFrameMismatch = errors.New("clip: frame does not match clip")

// Frame is one picture of a clip. Frames handed out by a Source are shared
// and must not be modified.
type Frame struct {
	Format Format
	Width  int
	Height int
	Planes []plane.Plane

	// Props carries per-frame metadata through the filter unchanged.
	Props map[string]any
}

// NewFrame allocates a zeroed frame.
func NewFrame(f Format, width, height int) *Frame {
	fr := &Frame{
		Format: f,
		Width:  width,
		Height: height,
		Planes: make([]plane.Plane, f.NumPlanes()),
	}
	for i := range fr.Planes {
		w, h := f.PlaneSize(i, width, height)
		fr.Planes[i] = plane.New(f.Kind, w, h)
	}
	return fr
}

// Clone returns a deep copy of the frame.
func (fr *Frame) Clone() *Frame {
	c := &Frame{
		Format: fr.Format,
		Width:  fr.Width,
		Height: fr.Height,
		Planes: make([]plane.Plane, len(fr.Planes)),
		Props:  maps.Clone(fr.Props),
	}
	for i, p := range fr.Planes {
		c.Planes[i] = p.Clone()
	}
	return c
}

// Validate checks that the frame's planes match its format and size.
func (fr *Frame) Validate() error {
	if err := fr.Format.Validate(); err != nil {
		return err
	}
	if len(fr.Planes) != fr.Format.NumPlanes() {
		return fmt.Errorf("clip: %v frame has %d planes, want %d", fr.Format, len(fr.Planes), fr.Format.NumPlanes())
	}
	for i, p := range fr.Planes {
		w, h := fr.Format.PlaneSize(i, fr.Width, fr.Height)
		if p.Width != w || p.Height != h || p.Kind != fr.Format.Kind {
			return fmt.Errorf("clip: plane %d is %dx%d %v, want %dx%d %v", i, p.Width, p.Height, p.Kind, w, h, fr.Format.Kind)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("clip: plane %d: %w", i, err)
		}
	}
	return nil
}

// Source is a random-access sequence of frames with a fixed format and size.
type Source interface {
	Format() Format
	Size() (width, height int)
	Len() int

	// Frame returns frame n, 0 <= n < Len(). The frame must not be modified.
	Frame(ctx context.Context, n int) (*Frame, error)
}

// SliceSource is a Source over frames held in memory.
type SliceSource struct {
	format        Format
	width, height int
	frames        []*Frame
}

// NewSliceSource returns a source over frames, which must be non-empty and
// share one format and size.
func NewSliceSource(frames ...*Frame) (*SliceSource, error) {
	if len(frames) == 0 {
		return nil, errors.New("clip: empty clip")
	}
	first := frames[0]
	for i, fr := range frames {
		if err := fr.Validate(); err != nil {
			return nil, fmt.Errorf("clip: frame %d: %w", i, err)
		}
		if fr.Format != first.Format || fr.Width != first.Width || fr.Height != first.Height {
			return nil, fmt.Errorf("clip: frame %d is %dx%d %v, frame 0 is %dx%d %v",
				i, fr.Width, fr.Height, fr.Format, first.Width, first.Height, first.Format)
		}
	}
	return &SliceSource{format: first.Format, width: first.Width, height: first.Height, frames: frames}, nil
}

func (s *SliceSource) Format() Format { return s.format }

func (s *SliceSource) Size() (int, int) { return s.width, s.height }

func (s *SliceSource) Len() int { return len(s.frames) }

func (s *SliceSource) Frame(ctx context.Context, n int) (*Frame, error) {
	if n < 0 || n >= len(s.frames) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameRange, n, len(s.frames))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.frames[n], nil
}
