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

// Package workerpool runs plane bands on a fixed set of goroutines.
//
// The pool is created once per filter and reused for every frame, so frame
// processing does not pay for goroutine startup:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for n := range frames {
//	    pool.ParallelRows(height, 16, func(y0, y1 int) {
//	        filterRows(n, y0, y1)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines. A Pool is safe for
// concurrent use; calls from different goroutines share the workers.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines, or GOMAXPROCS goroutines if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued work completes. Later calls run their
// work on the calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// sequential reports whether work of the given parallelism should run inline.
func (p *Pool) sequential(parts int) bool {
	return p == nil || p.closed.Load() || parts <= 1 || p.numWorkers == 1
}

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most one band per worker, each at least
// minRows tall except when height itself is smaller.
func (p *Pool) Bands(height, minRows int) []Band {
	if height <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	parts := (height + minRows - 1) / minRows
	if p.sequential(parts) {
		return []Band{{0, height}}
	}
	parts = min(parts, p.numWorkers)
	rows := (height + parts - 1) / parts
	bands := make([]Band, 0, parts)
	for y0 := 0; y0 < height; y0 += rows {
		bands = append(bands, Band{y0, min(y0+rows, height)})
	}
	return bands
}

// ParallelRows calls fn once per band of Bands(height, minRows) and returns
// when every call has returned.
func (p *Pool) ParallelRows(height, minRows int, fn func(y0, y1 int)) {
	bands := p.Bands(height, minRows)
	if len(bands) <= 1 || p.sequential(len(bands)) {
		for _, b := range bands {
			fn(b.Y0, b.Y1)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, b := range bands {
		p.tasks <- task{fn: func() { fn(b.Y0, b.Y1) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven items balance across workers.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := n
	if p != nil {
		workers = min(p.numWorkers, n)
	}
	if p.sequential(workers) {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
