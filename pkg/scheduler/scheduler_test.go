package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_IntervalJob(t *testing.T) {
	var runs atomic.Int32
	s := New(0)
	s.Add(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	got := runs.Load()
	assert.Greater(t, got, int32(2))

	// No runs after Stop.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, got, runs.Load())
}

func TestScheduler_JobsDoNotOverlap(t *testing.T) {
	var inFlight atomic.Int32
	var overlapped atomic.Bool
	s := New(0)
	s.Add(Job{
		Name:     "slow",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			if inFlight.Add(1) > 1 {
				overlapped.Store(true)
			}
			defer inFlight.Add(-1)
			time.Sleep(20 * time.Millisecond)
			return nil
		},
	})

	s.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	assert.False(t, overlapped.Load())
}

func TestScheduler_StopWaitsForInFlightRun(t *testing.T) {
	var finished atomic.Bool
	s := New(0)
	s.Add(Job{
		Name:     "slow",
		Interval: time.Millisecond,
		Run: func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			finished.Store(true)
			return nil
		},
	})

	s.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	assert.True(t, finished.Load())
}

func TestScheduler_ContextCancelStopsJobs(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	s := New(0)
	s.Add(Job{
		Name:     "tick",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	got := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, got, runs.Load())
	s.Stop()
}

func TestNextSlot(t *testing.T) {
	utc := time.UTC
	slots := []string{"07:00", "16:00"}

	t.Run("before first slot", func(t *testing.T) {
		now := time.Date(2026, 8, 24, 6, 30, 0, 0, utc)
		next := NextSlot(now, slots, utc)
		assert.Equal(t, time.Date(2026, 8, 24, 7, 0, 0, 0, utc), next)
	})

	t.Run("between slots", func(t *testing.T) {
		now := time.Date(2026, 8, 24, 7, 0, 0, 0, utc)
		next := NextSlot(now, slots, utc)
		assert.Equal(t, time.Date(2026, 8, 24, 16, 0, 0, 0, utc), next)
	})

	t.Run("after last slot wraps to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 8, 24, 23, 30, 0, 0, utc)
		next := NextSlot(now, slots, utc)
		assert.Equal(t, time.Date(2026, 8, 25, 7, 0, 0, 0, utc), next)
	})

	t.Run("honors the location", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) // 08:00 in New York
		next := NextSlot(now, []string{"07:00", "16:00"}, loc)
		assert.Equal(t, 16, next.In(loc).Hour())
		assert.Equal(t, 24, next.In(loc).Day())
	})
}
