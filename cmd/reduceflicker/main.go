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

// Command reduceflicker removes temporal flicker from a directory of frames.
//
// Usage:
//
//	reduceflicker [flags] <input-dir>
//	reduceflicker --strength 3 --aggressive --out cleaned frames/
//	reduceflicker --grey --format webp --out out frames/
//
// Every image in the input directory is one frame, ordered by file name.
// Filtered frames are written to the output directory as frame_NNNNN.<format>.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-reduceflicker/clip"
	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/frameio"
	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
	"github.com/ajroetker/go-reduceflicker/workerpool"
)

type config struct {
	out        string
	prefix     string
	format     string
	strength   int
	aggressive bool
	grey       bool
	luma       bool
	opt        string
	raccess    bool
	edge       string
	workers    int
	jobs       int
	float      bool
	verbose    bool
	first      int
	last       int
	quality    int
	lossy      bool
}

func newRootCmd() *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:   "reduceflicker [flags] <input-dir>",
		Short: "Reduce temporal flicker in a sequence of frames",
		Long: `reduceflicker clamps each pixel of every frame toward a weighted average of
its neighbors in time, but only where the neighbors indicate the change is
flicker rather than motion.

Strength 1 compares with frames -1, +1 and -2; strength 2 adds +2 and
strength 3 adds -3 and +3. The aggressive variant treats a pixel as flicker
whenever the bracketing frames agree on the direction of the deviation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.out, "out", "o", "out", "output directory")
	f.StringVar(&cfg.prefix, "prefix", "frame_", "output file name prefix")
	f.StringVarP(&cfg.format, "format", "f", "png", "output format: "+strings.Join(formats(), ", "))
	f.IntVarP(&cfg.strength, "strength", "s", 2, "temporal reach, 1 to 3")
	f.BoolVarP(&cfg.aggressive, "aggressive", "a", false, "use the directional variant")
	f.BoolVar(&cfg.grey, "grey", false, "leave chroma planes untouched")
	f.BoolVar(&cfg.luma, "luma", true, "filter the luma plane")
	f.StringVar(&cfg.opt, "opt", "auto", "kernel tier: auto, scalar, a (128-bit) or b (256-bit)")
	f.BoolVar(&cfg.raccess, "raccess", true, "fetch neighbor frames newest first")
	f.StringVar(&cfg.edge, "edge", "clamp", "neighbors past the clip ends: clamp, mirror or wrap")
	f.IntVarP(&cfg.workers, "workers", "w", 0, "goroutines per frame (0 = GOMAXPROCS)")
	f.IntVarP(&cfg.jobs, "jobs", "j", 2, "frames processed concurrently")
	f.BoolVar(&cfg.float, "float", false, "filter in 32-bit float")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log per-frame progress")
	f.IntVar(&cfg.first, "first", 0, "first frame to write")
	f.IntVar(&cfg.last, "last", -1, "last frame to write (-1 = end of clip)")
	f.IntVar(&cfg.quality, "quality", 0, "JPEG or lossy WebP quality (0 = codec default)")
	f.BoolVar(&cfg.lossy, "lossy", false, "write lossy WebP")
	return cmd
}

func formats() []string {
	exts := frameio.Extensions()
	for i, e := range exts {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return exts
}

func run(ctx context.Context, cfg config, in string, stdout io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	clip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tier, err := flicker.ParseTier(cfg.opt)
	if err != nil {
		return err
	}
	edge, err := plane.ParseEdgeMode(cfg.edge)
	if err != nil {
		return err
	}
	ext := "." + strings.ToLower(strings.TrimPrefix(cfg.format, "."))
	if !frameio.Supported("x" + ext) {
		return fmt.Errorf("unsupported output format %q (supported: %s)", cfg.format, strings.Join(formats(), ", "))
	}
	if cfg.jobs < 1 {
		cfg.jobs = 1
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	src, err := frameio.OpenDir(in, frameio.ConvertOptions{Float: cfg.float, Pool: pool})
	if err != nil {
		return err
	}

	opts := clip.DefaultOptions()
	opts.Strength = cfg.strength
	opts.Aggressive = cfg.aggressive
	opts.Grey = cfg.grey
	opts.Luma = cfg.luma
	opts.Tier = tier
	opts.RandomAccess = cfg.raccess
	opts.Edge = edge
	opts.Pool = pool
	opts.CacheFrames = 2*(2*cfg.strength+1) + cfg.jobs
	filter, err := clip.New(src, opts)
	if err != nil {
		return err
	}
	defer filter.Close()

	first, last := cfg.first, cfg.last
	if last < 0 || last >= src.Len() {
		last = src.Len() - 1
	}
	if first < 0 || first > last {
		return fmt.Errorf("frame range %d..%d outside clip of %d frames", cfg.first, cfg.last, src.Len())
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}

	w, h := src.Size()
	clip.Logger().Info("reduceflicker: processing",
		"input", in, "frames", last-first+1, "size", fmt.Sprintf("%dx%d", w, h),
		"format", src.Format(), "kernel", filter.Kernel().String(), "cpu", lanes.CurrentName())

	wo := frameio.WriteOptions{JPEGQuality: cfg.quality, WebPLossy: cfg.lossy, WebPQuality: float32(cfg.quality), Pool: pool}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for n := first; n <= last; n++ {
		g.Go(func() error {
			fr, err := filter.Frame(gctx, n)
			if err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
			path := filepath.Join(cfg.out, frameio.FrameName(cfg.prefix, n, src.Len(), ext))
			if err := frameio.WriteFrame(path, fr, wo); err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
			clip.Logger().Debug("reduceflicker: wrote frame", "n", n, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats := filter.CacheStats()
	elapsed := time.Since(start)
	fmt.Fprintf(stdout, "wrote %d frames to %s in %v (cache hits %d, misses %d)\n",
		last-first+1, cfg.out, elapsed.Round(time.Millisecond), stats.Hits, stats.Misses)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
