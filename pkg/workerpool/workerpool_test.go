package workerpool

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestMap(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		ctx         func() context.Context
		workerCount int
		items       []int
		fn          func(context.Context, int) (int, error)
		want        []int
		wantErr     error
	}{
		{
			name:        "results keep input order",
			ctx:         context.Background,
			workerCount: 3,
			items:       []int{4, 1, 3, 2},
			fn: func(_ context.Context, v int) (int, error) {
				time.Sleep(time.Duration(v) * time.Millisecond)
				return v * 10, nil
			},
			want: []int{40, 10, 30, 20},
		},
		{
			name:        "zero workers still processes",
			ctx:         context.Background,
			workerCount: 0,
			items:       []int{1, 2},
			fn: func(_ context.Context, v int) (int, error) {
				return v + 1, nil
			},
			want: []int{2, 3},
		},
		{
			name:        "empty input",
			ctx:         context.Background,
			workerCount: 2,
			fn: func(_ context.Context, v int) (int, error) {
				return v, nil
			},
			want: []int{},
		},
		{
			name:        "first error is returned",
			ctx:         context.Background,
			workerCount: 2,
			items:       []int{1, 2, 3},
			fn: func(_ context.Context, v int) (int, error) {
				if v == 2 {
					return 0, errBoom
				}
				return v, nil
			},
			wantErr: errBoom,
		},
		{
			name: "canceled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			workerCount: 2,
			items:       []int{1, 2},
			fn: func(_ context.Context, v int) (int, error) {
				return v, nil
			},
			wantErr: context.Canceled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.ctx(), tt.workerCount, tt.items, tt.fn)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Map() error = %v, wantErr %v", err, tt.wantErr)
				}
				if got != nil {
					t.Fatalf("Map() got = %v, want nil on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Map() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMap_BoundsConcurrency(t *testing.T) {
	var running, peak int32
	items := make([]int, 20)

	_, err := Map(context.Background(), 3, items, func(_ context.Context, v int) (int, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&running, -1)
		return v, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if peak > 3 {
		t.Fatalf("expected at most 3 concurrent calls, got %d", peak)
	}
}
