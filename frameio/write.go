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
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-reduceflicker/clip"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

// WriteOptions controls encoding. The zero value writes lossless WebP and
// JPEG at quality 95.
type WriteOptions struct {
	// JPEGQuality is 1 to 100; 0 selects 95.
	JPEGQuality int

	// WebPLossy selects lossy WebP at WebPQuality (0 to 100; 0 selects 90).
	WebPLossy   bool
	WebPQuality float32

	// Pool, if set, converts bands of rows in parallel.
	Pool *workerpool.Pool
}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, ext string, img image.Image, opts WriteOptions) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		q := opts.JPEGQuality
		if q == 0 {
			q = 95
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case ".webp":
		wo := webp.DefaultOptions()
		wo.Lossless = !opts.WebPLossy
		if opts.WebPLossy {
			wo.Quality = 90
			if opts.WebPQuality > 0 {
				wo.Quality = opts.WebPQuality
			}
		}
		return webp.Encode(w, img, wo)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownExt, ext)
}

// WriteFrame converts fr to an image and writes it to path, choosing the
// codec from the extension.
func WriteFrame(path string, fr *clip.Frame, opts WriteOptions) (err error) {
	if !Supported(path) {
		return fmt.Errorf("%w: %q", ErrUnknownExt, filepath.Ext(path))
	}
	img, err := ToImage(fr, opts.Pool)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err := Encode(bw, filepath.Ext(path), img, opts); err != nil {
		return fmt.Errorf("frameio: encoding %s: %w", path, err)
	}
	return bw.Flush()
}

// FrameName returns the file name of output frame n, zero-padded to the
// width of the clip length, for example "frame_00042.png".
func FrameName(prefix string, n, total int, ext string) string {
	width := max(len(fmt.Sprint(total-1)), 5)
	return fmt.Sprintf("%s%0*d%s", prefix, width, n, ext)
}
