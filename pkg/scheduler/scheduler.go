// Package scheduler runs the pipeline's named background jobs: interval
// jobs with jitter, and wall-clock daily jobs for briefings. Each job
// gets one goroutine, so a job never overlaps itself.
package scheduler

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// Job is a named periodic task. Run errors are logged, never fatal.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// DailyJob runs at fixed wall-clock slots in a given location.
type DailyJob struct {
	Name     string
	Slots    []string // "15:04" format, validated at config load
	Location *time.Location
	Run      func(ctx context.Context) error
}

// Scheduler owns all background jobs.
type Scheduler struct {
	jobs     []Job
	daily    []DailyJob
	jitter   float64
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// New creates a scheduler. jitter is the fraction of each interval to
// randomize (0.1 = +/-10%), spreading load when many jobs share an
// interval.
func New(jitter float64) *Scheduler {
	if jitter < 0 {
		jitter = 0
	}
	return &Scheduler{jitter: jitter, stopCh: make(chan struct{})}
}

// Add registers an interval job. Must be called before Start.
func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

// AddDaily registers a wall-clock job. Must be called before Start.
func (s *Scheduler) AddDaily(job DailyJob) {
	s.daily = append(s.daily, job)
}

// Start launches one goroutine per job. Safe to call once; subsequent
// calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	if s.started {
		slog.Warn("Scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true

	slog.Info("Starting scheduler", "interval_jobs", len(s.jobs), "daily_jobs", len(s.daily))

	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.runInterval(ctx, job)
		}(job)
	}
	for _, job := range s.daily {
		s.wg.Add(1)
		go func(job DailyJob) {
			defer s.wg.Done()
			s.runDaily(ctx, job)
		}(job)
	}
}

// Stop signals all jobs to stop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runInterval(ctx context.Context, job Job) {
	// First run happens after one jittered interval, not at startup;
	// startup already runs whatever catch-up work main wires explicitly.
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-time.After(s.jittered(job.Interval)):
		}
		s.runOne(ctx, job.Name, job.Run)
	}
}

func (s *Scheduler) runDaily(ctx context.Context, job DailyJob) {
	for {
		wait := time.Until(NextSlot(time.Now().In(job.Location), job.Slots, job.Location))
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-time.After(wait):
		}
		s.runOne(ctx, job.Name, job.Run)
	}
}

func (s *Scheduler) runOne(ctx context.Context, name string, run func(ctx context.Context) error) {
	start := time.Now()
	if err := run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("Scheduled job failed", "job", name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduled job complete", "job", name, "duration", time.Since(start))
}

func (s *Scheduler) jittered(d time.Duration) time.Duration {
	if s.jitter == 0 {
		return d
	}
	spread := 1 + s.jitter*(2*rand.Float64()-1)
	return time.Duration(float64(d) * spread)
}

// NextSlot returns the next wall-clock occurrence of any slot strictly
// after now. Slots use "15:04" format in the given location.
func NextSlot(now time.Time, slots []string, loc *time.Location) time.Time {
	now = now.In(loc)
	var next time.Time
	for _, slot := range slots {
		t, err := time.ParseInLocation("15:04", slot, loc)
		if err != nil {
			continue
		}
		candidate := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc)
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		if next.IsZero() || candidate.Before(next) {
			next = candidate
		}
	}
	if next.IsZero() {
		// No parseable slots; effectively never fires.
		return now.AddDate(1, 0, 0)
	}
	return next
}
