package frameio

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-reduceflicker/clip"
	"github.com/ajroetker/go-reduceflicker/plane"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

func gradientNRGBA(w, h int, seed uint8) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x*7) + seed, G: uint8(y * 11), B: uint8(x + y), A: 0xff})
		}
	}
	return m
}

func assertPlanesEqual(t *testing.T, want, got *clip.Frame, planes int) {
	t.Helper()
	require.Equal(t, want.Width, got.Width)
	require.Equal(t, want.Height, got.Height)
	for i := 0; i < planes; i++ {
		p, q := want.Planes[i], got.Planes[i]
		require.Equal(t, p.Kind, q.Kind, "plane %d kind", i)
		for y := 0; y < p.Height; y++ {
			assert.Equal(t, p.Pix[y*p.Stride:y*p.Stride+p.RowBytes()], q.Pix[y*q.Stride:y*q.Stride+q.RowBytes()], "plane %d row %d", i, y)
		}
	}
}

func TestFromImageGray(t *testing.T) {
	m := image.NewGray(image.Rect(2, 3, 9, 8))
	for i := range m.Pix {
		m.Pix[i] = uint8(i * 3)
	}
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, clip.Gray8, fr.Format)
	assert.Equal(t, 7, fr.Width)
	assert.Equal(t, 5, fr.Height)
	assert.Equal(t, m.GrayAt(2, 3).Y, plane.At[uint8](fr.Planes[0], 0, 0))
	assert.Equal(t, m.GrayAt(8, 7).Y, plane.At[uint8](fr.Planes[0], 6, 4))

	img, err := ToImage(fr, nil)
	require.NoError(t, err)
	g := img.(*image.Gray)
	assert.Equal(t, m.GrayAt(5, 4), g.GrayAt(3, 1))
}

func TestFromImageGray16(t *testing.T) {
	m := image.NewGray16(image.Rect(0, 0, 5, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			m.SetGray16(x, y, color.Gray16{Y: uint16(x*4000 + y*13)})
		}
	}
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, clip.Gray16, fr.Format)
	assert.Equal(t, uint16(3*4000+2*13), plane.At[uint16](fr.Planes[0], 3, 2))

	img, err := ToImage(fr, nil)
	require.NoError(t, err)
	assert.Equal(t, m.Pix, img.(*image.Gray16).Pix)
}

func TestFromImageYCbCr(t *testing.T) {
	for _, tc := range []struct {
		ratio      image.YCbCrSubsampleRatio
		subX, subY int
	}{
		{image.YCbCrSubsampleRatio444, 0, 0},
		{image.YCbCrSubsampleRatio422, 1, 0},
		{image.YCbCrSubsampleRatio420, 1, 1},
		{image.YCbCrSubsampleRatio440, 0, 1},
		{image.YCbCrSubsampleRatio411, 2, 0},
		{image.YCbCrSubsampleRatio410, 2, 1},
	} {
		t.Run(tc.ratio.String(), func(t *testing.T) {
			m := image.NewYCbCr(image.Rect(0, 0, 9, 7), tc.ratio)
			for i := range m.Y {
				m.Y[i] = uint8(i)
			}
			for i := range m.Cb {
				m.Cb[i] = uint8(100 + i)
				m.Cr[i] = uint8(200 - i)
			}
			fr, err := FromImage(m, ConvertOptions{Pool: workerpool.New(2)})
			require.NoError(t, err)
			assert.Equal(t, clip.YUV, fr.Format.Family)
			assert.Equal(t, tc.subX, fr.Format.SubX)
			assert.Equal(t, tc.subY, fr.Format.SubY)
			cw, ch := fr.Format.PlaneSize(1, 9, 7)
			assert.Equal(t, cw, fr.Planes[1].Width)
			assert.Equal(t, ch, fr.Planes[1].Height)

			img, err := ToImage(fr, nil)
			require.NoError(t, err)
			back := img.(*image.YCbCr)
			assert.Equal(t, tc.ratio, back.SubsampleRatio)
			for y := 0; y < 7; y++ {
				for x := 0; x < 9; x++ {
					assert.Equal(t, m.YCbCrAt(x, y), back.YCbCrAt(x, y), "pixel %d,%d", x, y)
				}
			}
		})
	}
}

func TestFromImageAlpha(t *testing.T) {
	m := gradientNRGBA(6, 4, 0)
	m.SetNRGBA(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 40})
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)
	assert.True(t, fr.Format.Alpha)
	assert.Equal(t, 4, len(fr.Planes))
	assert.Equal(t, uint8(40), plane.At[uint8](fr.Planes[3], 2, 1))
	assert.Equal(t, uint8(2), plane.At[uint8](fr.Planes[1], 2, 1))

	img, err := ToImage(fr, nil)
	require.NoError(t, err)
	assert.Equal(t, m.Pix, img.(*image.NRGBA).Pix)
}

func TestFromImageFallback(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, clip.RGBP8, fr.Format)
	assert.Equal(t, uint8(20), plane.At[uint8](fr.Planes[1], 1, 1))

	wide := image.NewRGBA64(image.Rect(0, 0, 4, 3))
	for i := range wide.Pix {
		wide.Pix[i] = 0xff
	}
	fr, err = FromImage(wide, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, clip.RGBP16, fr.Format)
	assert.Equal(t, uint16(0xffff), plane.At[uint16](fr.Planes[2], 3, 2))
}

func TestFloatRoundTrip(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()
	m := gradientNRGBA(33, 70, 5)
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)

	f, err := FromImage(m, ConvertOptions{Float: true, Pool: pool})
	require.NoError(t, err)
	assert.Equal(t, clip.RGBPS, f.Format)
	assert.InDelta(t, float32(m.NRGBAAt(4, 0).R)/255, plane.At[float32](f.Planes[0], 4, 0), 1e-6)

	back, err := FromFloat(f, 8, pool)
	require.NoError(t, err)
	assertPlanesEqual(t, fr, back, 3)

	_, err = FromFloat(f, 4, pool)
	assert.Error(t, err)
}

func TestQuantizeClamps(t *testing.T) {
	fr := clip.NewFrame(clip.GrayS, 3, 1)
	row := plane.Row[float32](fr.Planes[0], 0)
	row[0], row[1], row[2] = -0.5, 0.5, 1.5
	q, err := FromFloat(fr, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 128, 255}, plane.Row[uint8](q.Planes[0], 0))

	row[1] = float32(math.NaN())
	q, err = FromFloat(fr, 16, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 0, 65535}, plane.Row[uint16](q.Planes[0], 0))
}

func TestToImageDeepYUV(t *testing.T) {
	fr := clip.NewFrame(clip.YUV420P10, 4, 4)
	plane.Fill(fr.Planes[0], uint16(1023))
	plane.Fill(fr.Planes[1], uint16(512))
	img, err := ToImage(fr, nil)
	require.NoError(t, err)
	m := img.(*image.YCbCr)
	assert.Equal(t, uint8(255), m.Y[0])
	assert.Equal(t, uint8(128), m.Cb[0])
	assert.Equal(t, uint8(0), m.Cr[0])
}

func TestEncodeRoundTrip(t *testing.T) {
	src := gradientNRGBA(17, 9, 3)
	want, err := FromImage(src, ConvertOptions{})
	require.NoError(t, err)

	for _, ext := range []string{".png", ".webp", ".tiff", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f"+ext)
			require.NoError(t, WriteFrame(path, want, WriteOptions{}))
			got, err := ReadFrame(path, ConvertOptions{})
			require.NoError(t, err)
			assert.Equal(t, clip.RGB, got.Format.Family)
			assert.Equal(t, path, got.Props["path"])
			assertPlanesEqual(t, want, got, 3)
		})
	}
}

func TestJPEGKeepsYCbCr(t *testing.T) {
	m := image.NewYCbCr(image.Rect(0, 0, 32, 16), image.YCbCrSubsampleRatio420)
	for i := range m.Y {
		m.Y[i] = 120
	}
	for i := range m.Cb {
		m.Cb[i], m.Cr[i] = 128, 128
	}
	fr, err := FromImage(m, ConvertOptions{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "f.jpg")
	require.NoError(t, WriteFrame(path, fr, WriteOptions{JPEGQuality: 100}))
	got, err := ReadFrame(path, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, clip.YUV420P8, got.Format)
	assert.InDelta(t, 120, plane.At[uint8](got.Planes[0], 5, 5), 2)
}

func TestUnknownExtension(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil), ".gif")
	assert.ErrorIs(t, err, ErrUnknownExt)
	err = WriteFrame(filepath.Join(t.TempDir(), "x.gif"), clip.NewFrame(clip.Gray8, 1, 1), WriteOptions{})
	assert.ErrorIs(t, err, ErrUnknownExt)
	assert.False(t, Supported("a.txt"))
	assert.True(t, Supported("A.JPG"))
	assert.Equal(t, []string{".bmp", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}, Extensions())
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestOpenDir(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"b.png", "a.png", "c.png"} {
		writePNG(t, filepath.Join(dir, name), gradientNRGBA(8, 6, uint8(i*50)))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	src, err := OpenDir(dir, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())
	assert.Equal(t, clip.RGBP8, src.Format())
	w, h := src.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 6, h)
	files := src.Files()
	assert.Equal(t, "a.png", filepath.Base(files[0]))
	assert.Equal(t, "c.png", filepath.Base(files[2]))

	ctx := context.Background()
	fr, err := src.Frame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), plane.At[uint8](fr.Planes[0], 0, 0), "b.png has seed 0")

	_, err = src.Frame(ctx, 3)
	assert.ErrorIs(t, err, clip.ErrFrameRange)

	writePNG(t, filepath.Join(dir, "d.png"), gradientNRGBA(4, 4, 0))
	src, err = OpenDir(dir, ConvertOptions{})
	require.NoError(t, err)
	_, err = src.Frame(ctx, 3)
	assert.Error(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.Frame(canceled, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenDirEmpty(t *testing.T) {
	_, err := OpenDir(t.TempDir(), ConvertOptions{})
	assert.Error(t, err)
	_, err = OpenFiles(nil, ConvertOptions{})
	assert.Error(t, err)
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "frame_00042.png", FrameName("frame_", 42, 100, ".png"))
	assert.Equal(t, "f0000007.webp", FrameName("f", 7, 1234567, ".webp"))
}
