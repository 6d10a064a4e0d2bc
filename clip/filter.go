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
	"log/slog"
	"maps"

	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

// Filter is a Source producing the flicker-filtered frames of another
// Source. It is safe for concurrent use; frames may be requested in any
// order.
type Filter struct {
	src     Source
	opts    Options
	kernel  flicker.Kernel
	process []bool
	offsets []plane.Offset
	cache   *frameCache
	pool    *workerpool.Pool
	ownPool bool
}

// New validates opts against src and resolves the kernel. All configuration
// errors are reported here; see flicker.Select for the kernel errors.
func New(src Source, opts Options) (*Filter, error) {
	return NewAt(src, opts, lanes.CurrentLevel())
}

// NewAt is New for a CPU supporting the given lane level.
func NewAt(src Source, opts Options, available lanes.Level) (*Filter, error) {
	if src == nil || src.Len() == 0 {
		return nil, errors.New("clip: empty clip")
	}
	format := src.Format()
	if err := format.Validate(); err != nil {
		return nil, err
	}
	k, err := flicker.Select(opts.params(format), available)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		src:     src,
		opts:    opts,
		kernel:  k,
		process: opts.processPlanes(format),
		offsets: fetchOrder(opts.Strength, opts.RandomAccess),
		pool:    opts.Pool,
	}
	if f.pool == nil {
		f.pool = workerpool.New(opts.Workers)
		f.ownPool = true
	}

	capacity := opts.CacheFrames
	if capacity == 0 {
		capacity = 2*(2*opts.Strength+1) + f.pool.NumWorkers()
	}
	f.cache = newFrameCache(src, capacity)

	w, h := src.Size()
	Logger().Info("reduceflicker filter",
		slog.String("kernel", k.String()),
		slog.String("cpu", lanes.CurrentName()),
		slog.String("format", format.String()),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("frames", src.Len()),
		slog.Any("planes", f.process))
	return f, nil
}

// fetchOrder lists the offsets of a window in the order they are requested
// from the source.
func fetchOrder(strength int, randomAccess bool) []plane.Offset {
	var order []plane.Offset
	if randomAccess {
		switch strength {
		case 3:
			order = []plane.Offset{3, 2, 1, 0, -1, -2, -3}
		case 2:
			order = []plane.Offset{2, 1, 0, -1, -2}
		default:
			order = []plane.Offset{1, 0, -2, -1}
		}
	} else {
		switch strength {
		case 3:
			order = []plane.Offset{-3, -2, -1, 0, 1, 2, 3}
		case 2:
			order = []plane.Offset{-2, -1, 0, 1, 2}
		default:
			order = []plane.Offset{-2, -1, 0, 1}
		}
	}
	return order
}

func (f *Filter) Format() Format { return f.src.Format() }

func (f *Filter) Size() (int, int) { return f.src.Size() }

func (f *Filter) Len() int { return f.src.Len() }

// Kernel returns the kernel selected for the filter.
func (f *Filter) Kernel() flicker.Kernel { return f.kernel }

// ProcessedPlanes reports which planes are filtered; the others are copied
// from the current frame.
func (f *Filter) ProcessedPlanes() []bool {
	return append([]bool(nil), f.process...)
}

// CacheStats reports source frame cache activity.
func (f *Filter) CacheStats() CacheStats { return f.cache.stats() }

// Close releases the worker pool if the filter owns it.
func (f *Filter) Close() {
	if f.ownPool {
		f.pool.Close()
	}
}

// checkFrame rejects source frames that do not match the clip, which would
// otherwise fault inside a pool worker.
func (f *Filter) checkFrame(fr *Frame) error {
	w, h := f.src.Size()
	if fr.Format != f.src.Format() || fr.Width != w || fr.Height != h {
		return fmt.Errorf("%w: got %dx%d %v, clip is %dx%d %v",
			ErrFrameMismatch, fr.Width, fr.Height, fr.Format, w, h, f.src.Format())
	}
	if err := fr.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrFrameMismatch, err)
	}
	return nil
}

// Frame returns filtered frame n. Neighbor frames beyond either end of the
// clip are mapped back into it by Options.Edge.
func (f *Filter) Frame(ctx context.Context, n int) (*Frame, error) {
	last := f.src.Len() - 1
	if n < 0 || n > last {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameRange, n, f.src.Len())
	}

	var frames [2*plane.MaxStrength + 1]*Frame
	for _, off := range f.offsets {
		idx := f.opts.Edge.Apply(n+int(off), f.src.Len())
		fr, err := f.cache.get(ctx, idx)
		if err != nil {
			return nil, fmt.Errorf("clip: fetching frame %d for %d: %w", idx, n, err)
		}
		if err := f.checkFrame(fr); err != nil {
			return nil, fmt.Errorf("clip: frame %d: %w", idx, err)
		}
		frames[int(off)+plane.MaxStrength] = fr
	}
	cur := frames[plane.MaxStrength]
	Logger().Debug("window resolved",
		slog.Int("frame", n),
		slog.Int("from", n-f.opts.Strength),
		slog.Int("to", n+f.opts.Strength),
		slog.String("edge", f.opts.Edge.String()))

	dst := NewFrame(cur.Format, cur.Width, cur.Height)
	dst.Props = maps.Clone(cur.Props)

	type job struct {
		plane  int
		y0, y1 int
	}
	var jobs []job
	for i := range dst.Planes {
		for _, b := range f.pool.Bands(dst.Planes[i].Height, f.opts.MinBandRows) {
			jobs = append(jobs, job{i, b.Y0, b.Y1})
		}
	}

	f.pool.ParallelForAtomic(len(jobs), func(j int) {
		job := jobs[j]
		out := dst.Planes[job.plane].SubRows(job.y0, job.y1)
		if !f.process[job.plane] {
			plane.CopyInto(out, cur.Planes[job.plane].SubRows(job.y0, job.y1))
			return
		}
		var w plane.Window
		for _, off := range f.offsets {
			w.SetAt(off, frames[int(off)+plane.MaxStrength].Planes[job.plane].SubRows(job.y0, job.y1))
		}
		f.kernel.Process(&w, out)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dst, nil
}
