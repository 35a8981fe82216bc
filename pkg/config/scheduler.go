package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// SchedulerConfig holds the job intervals and the wall-clock briefing
// slots. Each named job runs with max concurrency 1.
type SchedulerConfig struct {
	IngestInterval    time.Duration
	ExtractInterval   time.Duration
	ClusterInterval   time.Duration
	ScoreInterval     time.Duration
	LifecycleInterval time.Duration

	// Jitter randomizes each interval by up to this fraction so
	// replicas don't thunder in lockstep.
	JitterFraction float64

	// BriefingTimes are "HH:MM" wall-clock slots in BriefingTimezone.
	BriefingTimes    []string
	BriefingTimezone string
}

// DefaultSchedulerConfig returns the built-in schedule.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		IngestInterval:    5 * time.Minute,
		ExtractInterval:   5 * time.Minute,
		ClusterInterval:   10 * time.Minute,
		ScoreInterval:     10 * time.Minute,
		LifecycleInterval: time.Hour,
		JitterFraction:    0.1,
		BriefingTimes:     []string{"07:00", "16:00"},
		BriefingTimezone:  "UTC",
	}
}

func (c *SchedulerConfig) loadEnv() error {
	if v := os.Getenv("BRIEFING_TIMES"); v != "" {
		c.BriefingTimes = strings.Split(v, ",")
		for i := range c.BriefingTimes {
			c.BriefingTimes[i] = strings.TrimSpace(c.BriefingTimes[i])
		}
	}
	if v := os.Getenv("BRIEFING_TIMEZONE"); v != "" {
		c.BriefingTimezone = v
	}
	return nil
}

func (c SchedulerConfig) validate() error {
	for _, slot := range c.BriefingTimes {
		if _, err := time.Parse("15:04", slot); err != nil {
			return fmt.Errorf("%w: BRIEFING_TIMES slot %q", ErrInvalidValue, slot)
		}
	}
	if _, err := time.LoadLocation(c.BriefingTimezone); err != nil {
		return fmt.Errorf("%w: BRIEFING_TIMEZONE=%q", ErrInvalidValue, c.BriefingTimezone)
	}
	return nil
}
