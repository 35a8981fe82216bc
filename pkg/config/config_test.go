package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pipelineEnvKeys = []string{
	"BATCH_SIZE_EXTRACTION", "BATCH_DELAY_SECONDS", "ARTICLE_DELAY_SECONDS",
	"LOOKBACK_HOURS_CLUSTER", "LOOKBACK_HOURS_SIGNAL", "MIN_CLUSTER_SIZE",
	"MERGE_THRESHOLD_RECENT", "MERGE_THRESHOLD_OLD", "DORMANT_DAYS", "ARCHIVE_DAYS",
	"CACHE_URL", "CACHE_TTL_SIGNALS_SECONDS", "CACHE_TTL_NARRATIVES_SECONDS",
	"LLM_MODEL_ENTITY", "LLM_MODEL_NARRATIVE", "LLM_TPM_BUDGET",
	"LLM_SAFETY_MARGIN", "LLM_MAX_CONCURRENT", "HTTP_PORT", "LOG_LEVEL",
	"BRIEFING_TIMES", "BRIEFING_TIMEZONE", "EMERGING_SCORE_FLOOR",
	"FEEDS", "FEEDS_FILE",
}

func clearPipelineEnv(t *testing.T) {
	t.Helper()
	for _, key := range pipelineEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range pipelineEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearPipelineEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelEntity)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelNarrative)
	assert.Equal(t, 25000, cfg.LLM.TokensPerMinute)
	assert.Equal(t, 0.8, cfg.LLM.SafetyMargin)

	assert.Equal(t, 15, cfg.Pipeline.BatchSizeExtraction)
	assert.Equal(t, 48*time.Hour, cfg.Pipeline.LookbackCluster)
	assert.Equal(t, 168*time.Hour, cfg.Pipeline.LookbackSignal)
	assert.Equal(t, 3, cfg.Pipeline.MinClusterSize)
	assert.Equal(t, 0.5, cfg.Pipeline.MergeThresholdRecent)
	assert.Equal(t, 0.6, cfg.Pipeline.MergeThresholdOld)
	assert.Equal(t, 7, cfg.Pipeline.DormantAfterDays)
	assert.Equal(t, 30, cfg.Pipeline.ArchiveAfterDays)
	assert.Equal(t, 5.0, cfg.Pipeline.EmergingScoreFloor)

	assert.Equal(t, 120*time.Second, cfg.Cache.TTLSignals)
	assert.Equal(t, 600*time.Second, cfg.Cache.TTLNarratives)
	assert.Empty(t, cfg.Cache.URL)

	assert.Equal(t, []string{"07:00", "16:00"}, cfg.Scheduler.BriefingTimes)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Empty(t, cfg.Feeds)
}

func TestLoadFeeds(t *testing.T) {
	clearPipelineEnv(t)
	os.Setenv("FEEDS", "coindesk=https://feeds.example.com/coindesk, theblock=https://feeds.example.com/theblock")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Feeds, 2)
	assert.Equal(t, FeedConfig{Name: "coindesk", URL: "https://feeds.example.com/coindesk"}, cfg.Feeds[0])
	assert.Equal(t, "theblock", cfg.Feeds[1].Name)
}

func TestLoadFeedsFromFile(t *testing.T) {
	clearPipelineEnv(t)

	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"- name: coindesk\n  url: https://feeds.example.com/coindesk\n"), 0o600))
	os.Setenv("FEEDS_FILE", path)
	os.Setenv("FEEDS", "decrypt=https://feeds.example.com/decrypt")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Feeds, 2)
	assert.Equal(t, "coindesk", cfg.Feeds[0].Name)
	assert.Equal(t, "decrypt", cfg.Feeds[1].Name)
}

func TestLoadFeedsRejectsMalformedEntries(t *testing.T) {
	for _, raw := range []string{"coindesk", "=https://feeds.example.com", "coindesk=not a url"} {
		t.Run(raw, func(t *testing.T) {
			clearPipelineEnv(t)
			os.Setenv("FEEDS", raw)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	clearPipelineEnv(t)
	os.Setenv("BATCH_SIZE_EXTRACTION", "10")
	os.Setenv("MERGE_THRESHOLD_RECENT", "0.45")
	os.Setenv("CACHE_URL", "redis://localhost:6379/0")
	os.Setenv("BRIEFING_TIMES", "06:30, 18:00")
	os.Setenv("LOOKBACK_HOURS_CLUSTER", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Pipeline.BatchSizeExtraction)
	assert.Equal(t, 0.45, cfg.Pipeline.MergeThresholdRecent)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.URL)
	assert.Equal(t, []string{"06:30", "18:00"}, cfg.Scheduler.BriefingTimes)
	assert.Equal(t, 24*time.Hour, cfg.Pipeline.LookbackCluster)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"BATCH_SIZE_EXTRACTION":  "40",
		"MERGE_THRESHOLD_RECENT": "1.5",
		"LLM_SAFETY_MARGIN":      "0",
		"HTTP_PORT":              "-1",
		"BRIEFING_TIMES":         "25:99",
		"MIN_CLUSTER_SIZE":       "zero",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearPipelineEnv(t)
			os.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestValidateThresholdOrdering(t *testing.T) {
	clearPipelineEnv(t)
	os.Setenv("MERGE_THRESHOLD_RECENT", "0.7")
	os.Setenv("MERGE_THRESHOLD_OLD", "0.6")

	_, err := Load()
	require.Error(t, err)
}
