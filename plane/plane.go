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
	"unsafe"

	"github.com/ajroetker/go-reduceflicker/lanes"
)

// RowAlign is the byte alignment New uses for row strides, the width of the
// widest vector tier.
const RowAlign = 32

// ErrInvalid is wrapped by every error returned from Validate and FromBytes.
var ErrInvalid = errors.New("plane: invalid plane")

// Plane is a 2D grid of samples stored row-major in Pix. Row y starts at byte
// offset y*Stride; only the first Width*Kind.Size() bytes of a row belong to
// the plane, the rest is padding.
type Plane struct {
	Pix    []byte
	Width  int
	Height int
	Stride int // bytes between the starts of consecutive rows
	Kind   SampleKind
}

// New allocates a zeroed plane whose rows are padded to RowAlign bytes.
// Non-positive dimensions yield an empty plane.
func New(kind SampleKind, width, height int) Plane {
	if width <= 0 || height <= 0 || !kind.Valid() {
		return Plane{Kind: kind}
	}
	stride := lanes.AlignedSize(width*kind.Size(), RowAlign)
	return Plane{
		Pix:    alignedBytes(stride * height),
		Width:  width,
		Height: height,
		Stride: stride,
		Kind:   kind,
	}
}

// alignedBytes returns n zeroed bytes backed by 8-byte aligned memory, so the
// buffer can be viewed as any sample type.
func alignedBytes(n int) []byte {
	words := make([]uint64, (n+7)/8)
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n)
}

// FromSlice wraps data as a plane without copying. strideElems is the row
// pitch in elements; 0 means tightly packed.
func FromSlice[T lanes.Sample](data []T, width, height, strideElems int) (Plane, error) {
	if strideElems == 0 {
		strideElems = width
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	p := Plane{
		Width:  width,
		Height: height,
		Stride: strideElems * size,
		Kind:   KindOf[T](),
	}
	if len(data) > 0 {
		p.Pix = unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*size)
	}
	return p, p.Validate()
}

// FromBytes wraps an existing byte buffer as a plane without copying. The
// buffer must be aligned for kind and large enough for the declared extent.
func FromBytes(pix []byte, kind SampleKind, width, height, stride int) (Plane, error) {
	p := Plane{Pix: pix, Width: width, Height: height, Stride: stride, Kind: kind}
	return p, p.Validate()
}

// RowBytes returns the number of bytes of a row that belong to the plane.
func (p Plane) RowBytes() int {
	return p.Width * p.Kind.Size()
}

// Extent returns the number of bytes of Pix the plane addresses.
func (p Plane) Extent() int {
	if p.Width == 0 || p.Height == 0 {
		return 0
	}
	return (p.Height-1)*p.Stride + p.RowBytes()
}

// Empty reports whether the plane has no samples.
func (p Plane) Empty() bool {
	return p.Width <= 0 || p.Height <= 0
}

// Validate checks that the plane's geometry is consistent with its buffer.
func (p Plane) Validate() error {
	switch {
	case !p.Kind.Valid():
		return fmt.Errorf("%w: unknown sample kind %v", ErrInvalid, p.Kind)
	case p.Width < 0 || p.Height < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalid, p.Width, p.Height)
	case p.Stride < p.RowBytes():
		return fmt.Errorf("%w: stride %d shorter than row (%d bytes)", ErrInvalid, p.Stride, p.RowBytes())
	case !lanes.IsAligned(p.Stride, p.Kind.Size()):
		return fmt.Errorf("%w: stride %d not a multiple of %d", ErrInvalid, p.Stride, p.Kind.Size())
	case len(p.Pix) < p.Extent():
		return fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrInvalid, len(p.Pix), p.Extent())
	}
	if len(p.Pix) > 0 && uintptr(unsafe.Pointer(&p.Pix[0]))%uintptr(p.Kind.Size()) != 0 {
		return fmt.Errorf("%w: buffer not aligned for %v", ErrInvalid, p.Kind)
	}
	return nil
}

// SameShape reports whether a and b have the same dimensions and kind.
// Strides may differ.
func SameShape(a, b Plane) bool {
	return a.Width == b.Width && a.Height == b.Height && a.Kind == b.Kind
}

// Overlaps reports whether the byte ranges addressed by a and b intersect.
func Overlaps(a, b Plane) bool {
	ea, eb := a.Extent(), b.Extent()
	if ea == 0 || eb == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a.Pix[0]))
	b0 := uintptr(unsafe.Pointer(&b.Pix[0]))
	return a0 < b0+uintptr(eb) && b0 < a0+uintptr(ea)
}

// Row returns the samples of row y, exactly Width elements long. It panics if
// T does not match the plane's kind or y is out of range.
func Row[T lanes.Sample](p Plane, y int) []T {
	if KindOf[T]() != p.Kind {
		panic(fmt.Sprintf("plane: Row[%v] on %v plane", KindOf[T](), p.Kind))
	}
	if p.Width == 0 {
		return nil
	}
	off := y * p.Stride
	b := p.Pix[off : off+p.RowBytes()]
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), p.Width)
}

// At returns the sample at (x, y), or zero outside the plane.
func At[T lanes.Sample](p Plane, x, y int) T {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		var zero T
		return zero
	}
	return Row[T](p, y)[x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func Set[T lanes.Sample](p Plane, x, y int, v T) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	Row[T](p, y)[x] = v
}

// Fill sets every sample of the plane to v. Row padding is left untouched.
func Fill[T lanes.Sample](p Plane, v T) {
	for y := 0; y < p.Height; y++ {
		row := Row[T](p, y)
		for x := range row {
			row[x] = v
		}
	}
}

// SubRows returns a view of rows [y0, y1) sharing p's memory.
func (p Plane) SubRows(y0, y1 int) Plane {
	if y0 < 0 || y1 > p.Height || y0 > y1 {
		panic(fmt.Sprintf("plane: SubRows(%d, %d) out of range [0, %d]", y0, y1, p.Height))
	}
	sub := p
	sub.Height = y1 - y0
	if sub.Height == 0 || p.Width == 0 {
		sub.Pix = nil
		return sub
	}
	sub.Pix = p.Pix[y0*p.Stride : (y1-1)*p.Stride+p.RowBytes()]
	return sub
}

// Clone returns a deep copy of the plane with a freshly aligned stride.
func (p Plane) Clone() Plane {
	c := New(p.Kind, p.Width, p.Height)
	CopyInto(c, p)
	return c
}

// CopyInto copies the samples of src into dst. Both planes must have the
// same shape.
func CopyInto(dst, src Plane) {
	if !SameShape(dst, src) {
		panic(fmt.Sprintf("plane: CopyInto shape mismatch %dx%d %v vs %dx%d %v",
			dst.Width, dst.Height, dst.Kind, src.Width, src.Height, src.Kind))
	}
	n := src.RowBytes()
	for y := 0; y < src.Height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], src.Pix[y*src.Stride:y*src.Stride+n])
	}
}
