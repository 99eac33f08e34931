// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmldict

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// queue is the queue of pending paths shared by the workers.
type queue struct {
	mu    sync.Mutex
	paths []string
	next  int
}

func newQueue(paths []string) *queue {
	return &queue{
		paths: paths,
	}
}

// claim returns the next unclaimed path and its index in discovery order. It
// returns false once every path has been claimed.
func (q *queue) claim() (int, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next >= len(q.paths) {
		return 0, "", false
	}
	i := q.next
	q.next++
	return i, q.paths[i], true
}

// processFunc processes the file at path.
type processFunc func(path string) Outcome

// distribute runs jobs workers that claim paths from q until it is empty and
// sends each outcome to out. distribute returns early only if ctx is done.
func distribute(ctx context.Context, q *queue, jobs int, process processFunc, out chan<- Outcome) error {
	g, ctx := errgroup.WithContext(ctx)
	for range jobs {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				i, path, ok := q.claim()
				if !ok {
					return nil
				}

				o := process(path)
				o.Index = i
				o.Path = path

				select {
				case out <- o:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}
	//nolint:wrapcheck // only context errors are returned.
	return g.Wait()
}
