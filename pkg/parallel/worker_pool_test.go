package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}

	var counter atomic.Int64
	for i := 0; i < 100; i++ {
		if !pool.Submit(func() { counter.Add(1) }) {
			t.Fatal("Submit returned false on open pool")
		}
	}
	pool.Close()

	if got := counter.Load(); got != 100 {
		t.Errorf("expected 100 tasks to run, got %d", got)
	}
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool, err := NewWorkerPool(1)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit should return false after Close")
	}
}

func TestWorkerPool_ZeroWorkersClamped(t *testing.T) {
	pool, err := NewWorkerPool(0)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
	pool.Close()
}

func TestWorkerPool_TooManyWorkers(t *testing.T) {
	_, err := NewWorkerPool(MaxWorkers + 1)
	if !errors.Is(err, ErrTooManyWorkers) {
		t.Errorf("expected ErrTooManyWorkers, got %v", err)
	}
}

func TestWorkerPool_PanicDoesNotKillWorker(t *testing.T) {
	pool, err := NewWorkerPool(1)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}

	pool.Submit(func() { panic("boom") })

	// The single worker must survive to run this.
	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
	pool.Close()
}

func TestSplitRange_CoversWholeRange(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{
		{0, 4}, {1, 4}, {4, 4}, {10, 3}, {100, 7}, {5, 0},
	} {
		chunks := SplitRange(tc.n, tc.workers)

		covered := 0
		prevEnd := 0
		for _, c := range chunks {
			if c.Start != prevEnd {
				t.Errorf("n=%d workers=%d: chunk %d starts at %d, expected %d", tc.n, tc.workers, c.Index, c.Start, prevEnd)
			}
			covered += c.End - c.Start
			prevEnd = c.End
		}
		if covered != tc.n {
			t.Errorf("n=%d workers=%d: chunks cover %d items", tc.n, tc.workers, covered)
		}
	}
}

func TestForEachChunk_VisitsEveryIndex(t *testing.T) {
	const n = 57

	var mu sync.Mutex
	seen := make(map[int]bool, n)

	err := ForEachChunk(context.Background(), n, 4, func(c Chunk) error {
		mu.Lock()
		defer mu.Unlock()
		for i := c.Start; i < c.End; i++ {
			if seen[i] {
				return errors.New("index visited twice")
			}
			seen[i] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachChunk failed: %v", err)
	}
	if len(seen) != n {
		t.Errorf("expected %d indices visited, got %d", n, len(seen))
	}
}

func TestForEachChunk_PropagatesError(t *testing.T) {
	wantErr := errors.New("chunk failed")

	err := ForEachChunk(context.Background(), 10, 2, func(c Chunk) error {
		if c.Index == 1 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected chunk error, got %v", err)
	}
}

func TestForEachChunk_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForEachChunk(ctx, 10, 2, func(c Chunk) error {
		t.Error("fn should not run with a canceled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
