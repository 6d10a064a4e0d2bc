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
	"container/list"
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// frameCache keeps the most recently used source frames. Consecutive output
// frames share all but one of their window frames, so a cache a little larger
// than one window turns sequential filtering into one source fetch per frame.
// Concurrent requests for the same frame share a single fetch.
type frameCache struct {
	src      Source
	capacity int

	mu      sync.Mutex
	entries map[int]*list.Element
	order   *list.List // front is most recently used

	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	n     int
	frame *Frame
}

func newFrameCache(src Source, capacity int) *frameCache {
	return &frameCache{
		src:      src,
		capacity: capacity,
		entries:  make(map[int]*list.Element),
		order:    list.New(),
	}
}

func (c *frameCache) get(ctx context.Context, n int) (*Frame, error) {
	if c.capacity <= 0 {
		return c.src.Frame(ctx, n)
	}

	c.mu.Lock()
	if e, ok := c.entries[n]; ok {
		c.order.MoveToFront(e)
		c.mu.Unlock()
		c.hits.Add(1)
		return e.Value.(*cacheEntry).frame, nil
	}
	c.mu.Unlock()

	// The shared fetch outlives any one caller; each caller stops waiting
	// when its own context ends.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.Itoa(n), func() (any, error) {
		c.misses.Add(1)
		fr, err := c.src.Frame(fetchCtx, n)
		if err != nil {
			return nil, err
		}
		c.put(n, fr)
		return fr, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Frame), nil
	}
}

func (c *frameCache) put(n int, fr *Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[n]; ok {
		c.order.MoveToFront(e)
		return
	}
	c.entries[n] = c.order.PushFront(&cacheEntry{n: n, frame: fr})
	for c.order.Len() > c.capacity {
		last := c.order.Back()
		c.order.Remove(last)
		delete(c.entries, last.Value.(*cacheEntry).n)
	}
}

func (c *frameCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CacheStats reports frame cache activity.
type CacheStats struct {
	Hits, Misses int64
	Cached       int
}

func (c *frameCache) stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Cached: c.len()}
}
