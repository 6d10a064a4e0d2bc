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

// Package frameio reads and writes clips as directories of still images.
//
// Each file in a directory is one frame, ordered by file name. PNG, JPEG,
// WebP, TIFF and BMP are supported for reading and writing. Frames keep the
// native layout of the decoded image where one exists, so JPEG frames arrive
// as subsampled YUV and PNG frames as gray or planar RGB.
package frameio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/deepteams/webp"
	"github.com/gen2brain/jpegn"
	"github.com/samber/lo"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-reduceflicker/clip"
)

// ErrUnknownExt is returned for files whose extension has no codec.
var ErrUnknownExt = errors.New("frameio: unsupported file extension")

type decodeFunc func(io.Reader) (image.Image, error)

var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  decodeJPEG,
	".jpeg": decodeJPEG,
	".webp": webp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".bmp":  bmp.Decode,
}

// JPEG frames stay in YCbCr so chroma can be filtered at native resolution.
// EXIF rotation is not applied since it would convert to RGBA.
func decodeJPEG(r io.Reader) (image.Image, error) {
	return jpegn.Decode(r, &jpegn.Options{ToRGBA: false})
}

// Extensions returns the supported file extensions, sorted.
func Extensions() []string {
	exts := lo.Keys(decoders)
	slices.Sort(exts)
	return exts
}

// Supported reports whether path has a supported image extension.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Decode decodes an image, choosing the codec from ext.
func Decode(r io.Reader, ext string) (image.Image, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExt, ext)
	}
	return dec(r)
}

// ReadImage decodes the image file at path.
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(bufio.NewReader(f), filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("frameio: decoding %s: %w", path, err)
	}
	return img, nil
}

// ReadFrame decodes the image file at path into a frame.
func ReadFrame(path string, opts ConvertOptions) (*clip.Frame, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	fr, err := FromImage(img, opts)
	if err != nil {
		return nil, fmt.Errorf("frameio: %s: %w", path, err)
	}
	fr.Props = map[string]any{"path": path}
	return fr, nil
}

// ListFrames returns the supported image files in dir sorted by name.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return filepath.Join(dir, e.Name()), e.Type().IsRegular() && Supported(e.Name())
	})
	slices.Sort(files)
	return files, nil
}

// DirSource is a clip.Source over image files. Frames are decoded on demand;
// wrap it in a clip.Filter, which caches, rather than fetching the same
// frame repeatedly.
type DirSource struct {
	files         []string
	format        clip.Format
	width, height int
	opts          ConvertOptions
}

var _ clip.Source = (*DirSource)(nil)

// OpenDir opens every supported image in dir as a clip. The first frame
// fixes the format and size; frames that differ fail when fetched.
func OpenDir(dir string, opts ConvertOptions) (*DirSource, error) {
	files, err := ListFrames(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("frameio: no images in %s (supported: %s)", dir, strings.Join(Extensions(), " "))
	}
	return OpenFiles(files, opts)
}

// OpenFiles opens the given image files, in order, as a clip.
func OpenFiles(files []string, opts ConvertOptions) (*DirSource, error) {
	if len(files) == 0 {
		return nil, errors.New("frameio: empty clip")
	}
	first, err := ReadFrame(files[0], opts)
	if err != nil {
		return nil, err
	}
	return &DirSource{
		files:  slices.Clone(files),
		format: first.Format,
		width:  first.Width,
		height: first.Height,
		opts:   opts,
	}, nil
}

// Files returns the frame files in clip order.
func (d *DirSource) Files() []string { return slices.Clone(d.files) }

func (d *DirSource) Format() clip.Format { return d.format }

func (d *DirSource) Size() (int, int) { return d.width, d.height }

func (d *DirSource) Len() int { return len(d.files) }

func (d *DirSource) Frame(ctx context.Context, n int) (*clip.Frame, error) {
	if n < 0 || n >= len(d.files) {
		return nil, fmt.Errorf("%w: %d of %d", clip.ErrFrameRange, n, len(d.files))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fr, err := ReadFrame(d.files[n], d.opts)
	if err != nil {
		return nil, err
	}
	if fr.Format != d.format || fr.Width != d.width || fr.Height != d.height {
		return nil, fmt.Errorf("frameio: %s is %dx%d %v, clip is %dx%d %v",
			d.files[n], fr.Width, fr.Height, fr.Format, d.width, d.height, d.format)
	}
	return fr, nil
}
