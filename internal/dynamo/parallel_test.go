package dynamo

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestParallelFor_CoversRangeOnce(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		minChunk int
		workers  int
	}{
		{"inline small", 5, 16, 4},
		{"single worker", 100, 1, 1},
		{"even split", 100, 10, 4},
		{"uneven split", 101, 7, 3},
		{"default workers", 64, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make([]int, tt.n)

			err := ParallelFor(context.Background(), tt.n, tt.minChunk, tt.workers, func(_ context.Context, start, end int) error {
				mu.Lock()
				defer mu.Unlock()
				for i := start; i < end; i++ {
					seen[i]++
				}
				return nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i, c := range seen {
				if c != 1 {
					t.Errorf("index %d visited %d times", i, c)
				}
			}
		})
	}
}

func TestParallelFor_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := ParallelFor(context.Background(), 100, 10, 4, func(_ context.Context, start, _ int) error {
		if start == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
