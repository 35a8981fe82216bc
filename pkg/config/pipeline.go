package config

import (
	"fmt"
	"time"
)

// PipelineConfig tunes extraction batching, clustering, merging, and
// lifecycle thresholds.
type PipelineConfig struct {
	// BatchSizeExtraction is the number of articles per LLM call.
	BatchSizeExtraction int

	// BatchDelay paces consecutive extraction batches.
	BatchDelay time.Duration

	// ArticleDelay paces individual retry calls within a batch.
	ArticleDelay time.Duration

	// LookbackCluster bounds which articles the clusterer considers.
	LookbackCluster time.Duration

	// LookbackSignal bounds which mentions the signal scorer considers.
	LookbackSignal time.Duration

	// MinClusterSize is the smallest cluster that becomes a narrative.
	MinClusterSize int

	// MergeThresholdRecent applies when a narrative was updated within
	// the last 48h; MergeThresholdOld otherwise. The lower wins.
	MergeThresholdRecent float64
	MergeThresholdOld    float64

	// DormantAfter and ArchiveAfter are staleness cutoffs in days.
	DormantAfterDays int
	ArchiveAfterDays int

	// EmergingScoreFloor is the minimum score for is_emerging.
	EmergingScoreFloor float64

	// FanOut caps concurrent I/O within a job.
	FanOut int
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		BatchSizeExtraction:  15,
		BatchDelay:           30 * time.Second,
		ArticleDelay:         1 * time.Second,
		LookbackCluster:      48 * time.Hour,
		LookbackSignal:       168 * time.Hour,
		MinClusterSize:       3,
		MergeThresholdRecent: 0.5,
		MergeThresholdOld:    0.6,
		DormantAfterDays:     7,
		ArchiveAfterDays:     30,
		EmergingScoreFloor:   5.0,
		FanOut:               4,
	}
}

func (c *PipelineConfig) loadEnv() error {
	var err error
	if c.BatchSizeExtraction, err = envInt("BATCH_SIZE_EXTRACTION", c.BatchSizeExtraction); err != nil {
		return err
	}
	if c.BatchDelay, err = envSeconds("BATCH_DELAY_SECONDS", c.BatchDelay); err != nil {
		return err
	}
	if c.ArticleDelay, err = envSeconds("ARTICLE_DELAY_SECONDS", c.ArticleDelay); err != nil {
		return err
	}

	var hours int
	if hours, err = envInt("LOOKBACK_HOURS_CLUSTER", int(c.LookbackCluster.Hours())); err != nil {
		return err
	}
	c.LookbackCluster = time.Duration(hours) * time.Hour
	if hours, err = envInt("LOOKBACK_HOURS_SIGNAL", int(c.LookbackSignal.Hours())); err != nil {
		return err
	}
	c.LookbackSignal = time.Duration(hours) * time.Hour

	if c.MinClusterSize, err = envInt("MIN_CLUSTER_SIZE", c.MinClusterSize); err != nil {
		return err
	}
	if c.MergeThresholdRecent, err = envFloat("MERGE_THRESHOLD_RECENT", c.MergeThresholdRecent); err != nil {
		return err
	}
	if c.MergeThresholdOld, err = envFloat("MERGE_THRESHOLD_OLD", c.MergeThresholdOld); err != nil {
		return err
	}
	if c.DormantAfterDays, err = envInt("DORMANT_DAYS", c.DormantAfterDays); err != nil {
		return err
	}
	if c.ArchiveAfterDays, err = envInt("ARCHIVE_DAYS", c.ArchiveAfterDays); err != nil {
		return err
	}
	if c.EmergingScoreFloor, err = envFloat("EMERGING_SCORE_FLOOR", c.EmergingScoreFloor); err != nil {
		return err
	}
	return nil
}

func (c PipelineConfig) validate() error {
	if c.BatchSizeExtraction < 1 || c.BatchSizeExtraction > 15 {
		return fmt.Errorf("%w: BATCH_SIZE_EXTRACTION=%d (want 1..15)", ErrInvalidValue, c.BatchSizeExtraction)
	}
	if c.MinClusterSize < 1 {
		return fmt.Errorf("%w: MIN_CLUSTER_SIZE=%d", ErrInvalidValue, c.MinClusterSize)
	}
	if c.MergeThresholdRecent <= 0 || c.MergeThresholdRecent > 1 ||
		c.MergeThresholdOld <= 0 || c.MergeThresholdOld > 1 {
		return fmt.Errorf("%w: merge thresholds must be in (0,1]", ErrInvalidValue)
	}
	if c.MergeThresholdRecent > c.MergeThresholdOld {
		return fmt.Errorf("%w: MERGE_THRESHOLD_RECENT must not exceed MERGE_THRESHOLD_OLD", ErrInvalidValue)
	}
	if c.DormantAfterDays <= 0 || c.ArchiveAfterDays <= c.DormantAfterDays {
		return fmt.Errorf("%w: DORMANT_DAYS=%d ARCHIVE_DAYS=%d", ErrInvalidValue, c.DormantAfterDays, c.ArchiveAfterDays)
	}
	if c.LookbackCluster <= 0 || c.LookbackSignal <= 0 {
		return fmt.Errorf("%w: lookback windows must be positive", ErrInvalidValue)
	}
	return nil
}
