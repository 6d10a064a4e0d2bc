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

// Package clip runs the flicker filter over a sequence of planar frames.
//
// It supplies everything the kernels leave to their host: fetching the
// neighbor frames of each output frame with edge replication, choosing which
// planes of a format to filter, copying the others through, and splitting
// planes into bands processed on a worker pool.
//
// A Filter is itself a Source, so filters can be chained:
//
//	src, _ := clip.NewSliceSource(frames...)
//	f, err := clip.New(src, clip.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	out, err := f.Frame(ctx, 10)
package clip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-reduceflicker/plane"
)

// Family is the color model of a format.
type Family int

const (
	Gray Family = iota
	YUV
	RGB
)

func (f Family) String() string {
	switch f {
	case Gray:
		return "gray"
	case YUV:
		return "yuv"
	case RGB:
		return "rgb"
	default:
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
}

// Format describes the planes of a frame. All formats are planar.
type Format struct {
	Family Family
	Kind   plane.SampleKind

	// BitDepth is the number of significant bits per sample: 8 for Uint8,
	// 9 to 16 for Uint16 and 32 for Float32.
	BitDepth int

	// SubX and SubY are log2 chroma subsampling factors, YUV only.
	SubX, SubY int

	// Alpha adds a trailing alpha plane, which is never filtered.
	Alpha bool
}

// Common formats.
var (
	Gray8     = Format{Family: Gray, Kind: plane.Uint8, BitDepth: 8}
	Gray16    = Format{Family: Gray, Kind: plane.Uint16, BitDepth: 16}
	GrayS     = Format{Family: Gray, Kind: plane.Float32, BitDepth: 32}
	YUV420P8  = Format{Family: YUV, Kind: plane.Uint8, BitDepth: 8, SubX: 1, SubY: 1}
	YUV422P8  = Format{Family: YUV, Kind: plane.Uint8, BitDepth: 8, SubX: 1}
	YUV444P8  = Format{Family: YUV, Kind: plane.Uint8, BitDepth: 8}
	YUV420P10 = Format{Family: YUV, Kind: plane.Uint16, BitDepth: 10, SubX: 1, SubY: 1}
	RGBP8     = Format{Family: RGB, Kind: plane.Uint8, BitDepth: 8}
	RGBP16    = Format{Family: RGB, Kind: plane.Uint16, BitDepth: 16}
	RGBPS     = Format{Family: RGB, Kind: plane.Float32, BitDepth: 32}
)

// NumPlanes returns the number of planes, counting alpha.
func (f Format) NumPlanes() int {
	n := 3
	if f.Family == Gray {
		n = 1
	}
	if f.Alpha {
		n++
	}
	return n
}

// ColorPlanes returns the number of planes excluding alpha.
func (f Format) ColorPlanes() int {
	if f.Family == Gray {
		return 1
	}
	return 3
}

// PlaneSize returns the dimensions of plane i for a frame of width x height.
// Subsampled chroma dimensions round up.
func (f Format) PlaneSize(i, width, height int) (int, int) {
	if f.Family != YUV || i == 0 || i >= 3 {
		return width, height
	}
	return (width + 1<<f.SubX - 1) >> f.SubX, (height + 1<<f.SubY - 1) >> f.SubY
}

// Validate checks that the format is internally consistent.
func (f Format) Validate() error {
	if f.Family < Gray || f.Family > RGB {
		return fmt.Errorf("clip: unknown color family %v", f.Family)
	}
	switch f.Kind {
	case plane.Uint8:
		if f.BitDepth != 8 {
			return fmt.Errorf("clip: uint8 samples need bit depth 8, got %d", f.BitDepth)
		}
	case plane.Uint16:
		if f.BitDepth < 9 || f.BitDepth > 16 {
			return fmt.Errorf("clip: uint16 samples need bit depth 9 to 16, got %d", f.BitDepth)
		}
	case plane.Float32:
		if f.BitDepth != 32 {
			return fmt.Errorf("clip: float samples need bit depth 32, got %d", f.BitDepth)
		}
	default:
		return fmt.Errorf("clip: unknown sample kind %v", f.Kind)
	}
	if f.SubX < 0 || f.SubX > 2 || f.SubY < 0 || f.SubY > 2 {
		return fmt.Errorf("clip: subsampling %d,%d out of range", f.SubX, f.SubY)
	}
	if f.Family != YUV && (f.SubX != 0 || f.SubY != 0) {
		return fmt.Errorf("clip: %v formats cannot be subsampled", f.Family)
	}
	return nil
}

// String returns a name like "yuv420p10", "gray8", "rgbps" or "yuva444p8".
func (f Format) String() string {
	var b strings.Builder
	b.WriteString(f.Family.String())
	if f.Alpha {
		b.WriteByte('a')
	}
	if f.Family == YUV {
		switch {
		case f.SubX == 1 && f.SubY == 1:
			b.WriteString("420")
		case f.SubX == 1 && f.SubY == 0:
			b.WriteString("422")
		case f.SubX == 0 && f.SubY == 1:
			b.WriteString("440")
		case f.SubX == 2 && f.SubY == 0:
			b.WriteString("411")
		default:
			b.WriteString("444")
		}
	}
	if f.Family != Gray {
		b.WriteByte('p')
	}
	if f.Kind == plane.Float32 {
		b.WriteByte('s')
	} else {
		b.WriteString(strconv.Itoa(f.BitDepth))
	}
	return b.String()
}
