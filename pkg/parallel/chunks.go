package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Chunk is a half-open index range [Start, End) assigned to one worker.
type Chunk struct {
	Index int
	Start int
	End   int
}

// SplitRange divides [0, n) into at most workers contiguous chunks.
// The split is overflow-safe for large n.
func SplitRange(n, workers int) []Chunk {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	chunkSize := int((int64(n) + int64(workers) - 1) / int64(workers))
	if chunkSize < 1 {
		chunkSize = 1
	}

	chunks := make([]Chunk, 0, workers)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Start: start, End: end})
	}
	return chunks
}

// ForEachChunk runs fn once per chunk of [0, n) across the given
// number of workers and waits for all of them. The first non-nil
// error wins; ctx cancellation is fn's responsibility to observe (the
// algorithms check it at each source-node boundary) but a context
// already canceled before fan-out short-circuits here.
func ForEachChunk(ctx context.Context, n, workers int, fn func(c Chunk) error) error {
	chunks := SplitRange(n, workers)
	if len(chunks) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(chunks) == 1 {
		return fn(chunks[0])
	}

	pool, err := NewWorkerPool(len(chunks))
	if err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for _, c := range chunks {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			if err := fn(c); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		})
	}
	wg.Wait()
	pool.Close()
	return firstErr
}
