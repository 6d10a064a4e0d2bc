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

package frameio

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ajroetker/go-reduceflicker/clip"
	"github.com/ajroetker/go-reduceflicker/plane"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

// ConvertOptions controls the conversion between images and frames.
type ConvertOptions struct {
	// Float promotes samples to float32 normalized to [0, 1].
	Float bool

	// Pool, if set, converts bands of rows in parallel.
	Pool *workerpool.Pool
}

const minBandRows = 32

// FromImage converts img to a planar frame without resampling. Gray, YCbCr
// and 8/16-bit RGB images keep their native layout; anything else is
// converted to 8 or 16-bit RGB first. Non-opaque images get an alpha plane.
func FromImage(img image.Image, opts ConvertOptions) (*clip.Frame, error) {
	var fr *clip.Frame
	switch m := img.(type) {
	case *image.Gray:
		fr = fromGray(m, opts.Pool)
	case *image.Gray16:
		fr = fromGray16(m, opts.Pool)
	case *image.YCbCr:
		f, err := fromYCbCr(m, nil, opts.Pool)
		if err != nil {
			return nil, err
		}
		fr = f
	case *image.NYCbCrA:
		f, err := fromYCbCr(&m.YCbCr, m, opts.Pool)
		if err != nil {
			return nil, err
		}
		fr = f
	case *image.NRGBA:
		fr = fromNRGBA(m, opts.Pool)
	case *image.NRGBA64:
		fr = fromNRGBA64(m, opts.Pool)
	default:
		if wide(img.ColorModel()) {
			dst := image.NewNRGBA64(img.Bounds())
			draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Src)
			fr = fromNRGBA64(dst, opts.Pool)
		} else {
			dst := image.NewNRGBA(img.Bounds())
			draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Src)
			fr = fromNRGBA(dst, opts.Pool)
		}
	}
	if opts.Float {
		fr = ToFloat(fr, opts.Pool)
	}
	return fr, nil
}

func wide(m color.Model) bool {
	return m == color.RGBA64Model || m == color.NRGBA64Model || m == color.Gray16Model || m == color.Alpha16Model
}

func fromGray(m *image.Gray, pool *workerpool.Pool) *clip.Frame {
	b := m.Rect
	fr := clip.NewFrame(clip.Gray8, b.Dx(), b.Dy())
	pool.ParallelRows(b.Dy(), minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			copy(plane.Row[uint8](fr.Planes[0], y), m.Pix[off:off+b.Dx()])
		}
	})
	return fr
}

func fromGray16(m *image.Gray16, pool *workerpool.Pool) *clip.Frame {
	b := m.Rect
	fr := clip.NewFrame(clip.Gray16, b.Dx(), b.Dy())
	pool.ParallelRows(b.Dy(), minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			row := plane.Row[uint16](fr.Planes[0], y)
			for x := range row {
				row[x] = uint16(m.Pix[off+2*x])<<8 | uint16(m.Pix[off+2*x+1])
			}
		}
	})
	return fr
}

// subsampleShift maps a YCbCr ratio to log2 chroma subsampling factors.
func subsampleShift(r image.YCbCrSubsampleRatio) (int, int, error) {
	switch r {
	case image.YCbCrSubsampleRatio444:
		return 0, 0, nil
	case image.YCbCrSubsampleRatio422:
		return 1, 0, nil
	case image.YCbCrSubsampleRatio420:
		return 1, 1, nil
	case image.YCbCrSubsampleRatio440:
		return 0, 1, nil
	case image.YCbCrSubsampleRatio411:
		return 2, 0, nil
	case image.YCbCrSubsampleRatio410:
		return 2, 1, nil
	}
	return 0, 0, fmt.Errorf("frameio: unsupported subsample ratio %v", r)
}

func subsampleRatio(subX, subY int) (image.YCbCrSubsampleRatio, error) {
	for _, r := range []image.YCbCrSubsampleRatio{
		image.YCbCrSubsampleRatio444, image.YCbCrSubsampleRatio422, image.YCbCrSubsampleRatio420,
		image.YCbCrSubsampleRatio440, image.YCbCrSubsampleRatio411, image.YCbCrSubsampleRatio410,
	} {
		if x, y, _ := subsampleShift(r); x == subX && y == subY {
			return r, nil
		}
	}
	return 0, fmt.Errorf("frameio: no image layout for chroma subsampling %d,%d", subX, subY)
}

func fromYCbCr(m *image.YCbCr, alpha *image.NYCbCrA, pool *workerpool.Pool) (*clip.Frame, error) {
	subX, subY, err := subsampleShift(m.SubsampleRatio)
	if err != nil {
		return nil, err
	}
	if m.Rect.Min.X%(1<<subX) != 0 || m.Rect.Min.Y%(1<<subY) != 0 {
		return nil, fmt.Errorf("frameio: image origin %v not aligned to chroma", m.Rect.Min)
	}
	f := clip.Format{Family: clip.YUV, Kind: plane.Uint8, BitDepth: 8, SubX: subX, SubY: subY, Alpha: alpha != nil}
	b := m.Rect
	fr := clip.NewFrame(f, b.Dx(), b.Dy())

	yBase := m.YOffset(b.Min.X, b.Min.Y)
	cBase := m.COffset(b.Min.X, b.Min.Y)
	copyRows(fr.Planes[0], m.Y, yBase, m.YStride, pool)
	copyRows(fr.Planes[1], m.Cb, cBase, m.CStride, pool)
	copyRows(fr.Planes[2], m.Cr, cBase, m.CStride, pool)
	if alpha != nil {
		copyRows(fr.Planes[3], alpha.A, alpha.AOffset(b.Min.X, b.Min.Y), alpha.AStride, pool)
	}
	return fr, nil
}

func copyRows(p plane.Plane, src []byte, base, stride int, pool *workerpool.Pool) {
	pool.ParallelRows(p.Height, minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := base + y*stride
			copy(plane.Row[uint8](p, y), src[off:off+p.Width])
		}
	})
}

func fromNRGBA(m *image.NRGBA, pool *workerpool.Pool) *clip.Frame {
	f := clip.RGBP8
	f.Alpha = !m.Opaque()
	b := m.Rect
	fr := clip.NewFrame(f, b.Dx(), b.Dy())
	pool.ParallelRows(b.Dy(), minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			for c := range fr.Planes {
				row := plane.Row[uint8](fr.Planes[c], y)
				for x := range row {
					row[x] = m.Pix[off+4*x+c]
				}
			}
		}
	})
	return fr
}

func fromNRGBA64(m *image.NRGBA64, pool *workerpool.Pool) *clip.Frame {
	f := clip.RGBP16
	f.Alpha = !m.Opaque()
	b := m.Rect
	fr := clip.NewFrame(f, b.Dx(), b.Dy())
	pool.ParallelRows(b.Dy(), minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			for c := range fr.Planes {
				row := plane.Row[uint16](fr.Planes[c], y)
				for x := range row {
					i := off + 8*x + 2*c
					row[x] = uint16(m.Pix[i])<<8 | uint16(m.Pix[i+1])
				}
			}
		}
	})
	return fr
}

// ToFloat returns a copy of fr with samples promoted to float32 in [0, 1].
// Float frames are returned unchanged.
func ToFloat(fr *clip.Frame, pool *workerpool.Pool) *clip.Frame {
	if fr.Format.Kind == plane.Float32 {
		return fr
	}
	f := fr.Format
	f.Kind, f.BitDepth = plane.Float32, 32
	out := clip.NewFrame(f, fr.Width, fr.Height)
	out.Props = fr.Props
	scale := 1 / float32(int(1)<<fr.Format.BitDepth-1)
	for i, src := range fr.Planes {
		dst := out.Planes[i]
		pool.ParallelRows(src.Height, minBandRows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := plane.Row[float32](dst, y)
				switch src.Kind {
				case plane.Uint8:
					for x, v := range plane.Row[uint8](src, y) {
						row[x] = float32(v) * scale
					}
				case plane.Uint16:
					for x, v := range plane.Row[uint16](src, y) {
						row[x] = float32(v) * scale
					}
				}
			}
		})
	}
	return out
}

// FromFloat quantizes a float frame to integer samples of the given bit
// depth, clamping to [0, 1] first. Depth 8 yields uint8 samples, 9 to 16
// uint16.
func FromFloat(fr *clip.Frame, depth int, pool *workerpool.Pool) (*clip.Frame, error) {
	if fr.Format.Kind != plane.Float32 {
		return nil, fmt.Errorf("frameio: %v frame is not float", fr.Format)
	}
	f := fr.Format
	switch {
	case depth == 8:
		f.Kind = plane.Uint8
	case depth >= 9 && depth <= 16:
		f.Kind = plane.Uint16
	default:
		return nil, fmt.Errorf("frameio: cannot quantize to %d bits", depth)
	}
	f.BitDepth = depth
	out := clip.NewFrame(f, fr.Width, fr.Height)
	out.Props = fr.Props
	top := float32(int(1)<<depth - 1)
	for i, src := range fr.Planes {
		dst := out.Planes[i]
		pool.ParallelRows(src.Height, minBandRows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				in := plane.Row[float32](src, y)
				if dst.Kind == plane.Uint8 {
					row := plane.Row[uint8](dst, y)
					for x, v := range in {
						row[x] = uint8(quantize(v, top))
					}
				} else {
					row := plane.Row[uint16](dst, y)
					for x, v := range in {
						row[x] = uint16(quantize(v, top))
					}
				}
			}
		})
	}
	return out, nil
}

func quantize(v, top float32) float32 {
	if v != v {
		return 0
	}
	return min(max(v, 0), 1)*top + 0.5
}

// requantize returns fr with integer samples of the given depth, converting
// float frames and rescaling integer frames of another depth.
func requantize(fr *clip.Frame, depth int, pool *workerpool.Pool) (*clip.Frame, error) {
	if fr.Format.Kind != plane.Float32 && fr.Format.BitDepth == depth {
		return fr, nil
	}
	return FromFloat(ToFloat(fr, pool), depth, pool)
}

// ToImage converts a frame back to an image. 8-bit gray, YUV and RGB frames
// map onto Gray, YCbCr (NYCbCrA with alpha) and NRGBA. Deeper gray and RGB
// frames map onto Gray16 and NRGBA64; deeper YUV frames are reduced to 8
// bits since image has no wide YCbCr type.
func ToImage(fr *clip.Frame, pool *workerpool.Pool) (image.Image, error) {
	if err := fr.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, fr.Width, fr.Height)
	wideOut := fr.Format.Kind != plane.Uint8 && fr.Format.Family != clip.YUV
	depth := 8
	if wideOut {
		depth = 16
	}
	q, err := requantize(fr, depth, pool)
	if err != nil {
		return nil, err
	}

	switch fr.Format.Family {
	case clip.Gray:
		if !wideOut {
			m := image.NewGray(rect)
			pool.ParallelRows(fr.Height, minBandRows, func(y0, y1 int) {
				for y := y0; y < y1; y++ {
					copy(m.Pix[y*m.Stride:], plane.Row[uint8](q.Planes[0], y))
				}
			})
			return m, nil
		}
		m := image.NewGray16(rect)
		pool.ParallelRows(fr.Height, minBandRows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x, v := range plane.Row[uint16](q.Planes[0], y) {
					m.Pix[y*m.Stride+2*x] = uint8(v >> 8)
					m.Pix[y*m.Stride+2*x+1] = uint8(v)
				}
			}
		})
		return m, nil

	case clip.YUV:
		ratio, err := subsampleRatio(fr.Format.SubX, fr.Format.SubY)
		if err != nil {
			return nil, err
		}
		var m *image.YCbCr
		var out image.Image
		if fr.Format.Alpha {
			a := image.NewNYCbCrA(rect, ratio)
			m, out = &a.YCbCr, a
			writeRows(a.A, a.AStride, q.Planes[3], pool)
		} else {
			m = image.NewYCbCr(rect, ratio)
			out = m
		}
		writeRows(m.Y, m.YStride, q.Planes[0], pool)
		writeRows(m.Cb, m.CStride, q.Planes[1], pool)
		writeRows(m.Cr, m.CStride, q.Planes[2], pool)
		return out, nil

	default:
		n := len(q.Planes)
		if !wideOut {
			m := image.NewNRGBA(rect)
			pool.ParallelRows(fr.Height, minBandRows, func(y0, y1 int) {
				for y := y0; y < y1; y++ {
					pix := m.Pix[y*m.Stride:]
					for x := 0; x < fr.Width; x++ {
						pix[4*x+3] = 0xff
					}
					for c := 0; c < n; c++ {
						for x, v := range plane.Row[uint8](q.Planes[c], y) {
							pix[4*x+c] = v
						}
					}
				}
			})
			return m, nil
		}
		m := image.NewNRGBA64(rect)
		pool.ParallelRows(fr.Height, minBandRows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				pix := m.Pix[y*m.Stride:]
				for x := 0; x < fr.Width; x++ {
					pix[8*x+6], pix[8*x+7] = 0xff, 0xff
				}
				for c := 0; c < n; c++ {
					for x, v := range plane.Row[uint16](q.Planes[c], y) {
						pix[8*x+2*c] = uint8(v >> 8)
						pix[8*x+2*c+1] = uint8(v)
					}
				}
			}
		})
		return m, nil
	}
}

func writeRows(dst []byte, stride int, p plane.Plane, pool *workerpool.Pool) {
	pool.ParallelRows(p.Height, minBandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			copy(dst[y*stride:], plane.Row[uint8](p, y))
		}
	})
}
