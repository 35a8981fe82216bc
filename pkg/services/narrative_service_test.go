package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	entnarrative "github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/narrative"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

// seedCluster inserts size enriched articles sharing a nucleus and
// returns the clusterer's view of them.
func seedCluster(t *testing.T, client *ent.Client, nucleus string, size int, now time.Time, actors, actions []string) narrative.Cluster {
	t.Helper()
	articles := make([]*ent.Article, 0, size)
	for i := 0; i < size; i++ {
		articles = append(articles, seedArticle(t, client, nucleus, "coindesk", models.TierHigh,
			now.Add(-time.Duration(i+1)*time.Hour), actors, actions))
	}
	clusters := narrative.BuildClusters(ClusterInputs(articles), 1)
	require.Len(t, clusters, 1)
	return clusters[0]
}

func TestNarrativeService_AssignClusters(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNarrativeService(client.Client, testThresholds(), testLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("new cluster creates an emerging narrative", func(t *testing.T) {
		c := seedCluster(t, client.Client, "Bitcoin", 3, now,
			[]string{"Bitcoin", "BlackRock"}, []string{"approved etf"})

		require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, now))

		narratives, err := service.ListActive(ctx, models.NarrativeFilters{})
		require.NoError(t, err)
		require.Len(t, narratives, 1)
		n := narratives[0]
		assert.Equal(t, "Bitcoin", n.NucleusEntity)
		assert.Equal(t, entnarrative.LifecycleStateEmerging, n.LifecycleState)
		assert.Equal(t, 3, n.ArticleCount)
		assert.Equal(t, []string{"BlackRock", "Bitcoin"}, n.Entities)
		assert.Equal(t, 1, n.Version)
		require.Len(t, n.LifecycleHistory, 1)
		assert.Equal(t, models.StateEmerging, n.LifecycleHistory[0].State)

		// Member articles carry the back-reference.
		members, err := NewArticleService(client.Client).GetByIDs(ctx, n.ArticleIds)
		require.NoError(t, err)
		for _, a := range members {
			require.NotNil(t, a.NarrativeID)
			assert.Equal(t, n.ID, *a.NarrativeID)
		}
	})

	t.Run("similar cluster attaches instead of creating", func(t *testing.T) {
		c := seedCluster(t, client.Client, "Bitcoin", 3, now,
			[]string{"Bitcoin", "BlackRock"}, []string{"record inflows"})

		require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, now))

		narratives, err := service.ListActive(ctx, models.NarrativeFilters{})
		require.NoError(t, err)
		require.Len(t, narratives, 1)
		n := narratives[0]
		assert.Equal(t, 6, n.ArticleCount)
		assert.Len(t, n.ArticleIds, 6)
		assert.Equal(t, 2, n.Version)
	})

	t.Run("attaching the same cluster twice is a no-op", func(t *testing.T) {
		before, err := service.ListActive(ctx, models.NarrativeFilters{})
		require.NoError(t, err)
		require.Len(t, before, 1)

		c := narrative.Cluster{Nucleus: "Bitcoin"}
		members, err := NewArticleService(client.Client).GetByIDs(ctx, before[0].ArticleIds)
		require.NoError(t, err)
		c.Articles = ClusterInputs(members)

		require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, now))

		after, err := service.Get(ctx, before[0].ID)
		require.NoError(t, err)
		assert.Equal(t, before[0].Version, after.Version)
		assert.Equal(t, before[0].ArticleCount, after.ArticleCount)
	})

	t.Run("dissimilar cluster creates its own narrative", func(t *testing.T) {
		c := seedCluster(t, client.Client, "Solana", 3, now,
			[]string{"Solana", "Anza"}, []string{"halted block production"})

		require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, now))

		narratives, err := service.ListActive(ctx, models.NarrativeFilters{})
		require.NoError(t, err)
		assert.Len(t, narratives, 2)
	})
}

func TestNarrativeService_Resurrection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNarrativeService(client.Client, testThresholds(), testLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	c := seedCluster(t, client.Client, "Ripple", 3, now.Add(-10*24*time.Hour),
		[]string{"Ripple", "SEC"}, []string{"filed appeal"})
	require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, now.Add(-10*24*time.Hour)))

	narratives, err := service.ListActive(ctx, models.NarrativeFilters{})
	require.NoError(t, err)
	require.Len(t, narratives, 1)
	id := narratives[0].ID

	// Ten days of silence: the sweep moves it to dormant.
	require.NoError(t, service.LifecycleSweep(ctx, now))
	n, err := service.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, entnarrative.LifecycleStateDormant, n.LifecycleState)

	archived, err := service.ListArchived(ctx, 30, 0)
	require.NoError(t, err)
	require.Len(t, archived, 1)

	// Fresh coverage resurrects it.
	fresh := seedCluster(t, client.Client, "Ripple", 3, now,
		[]string{"Ripple", "SEC"}, []string{"settlement reached"})
	require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{fresh}, now))

	n, err = service.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, models.IsActiveState(string(n.LifecycleState)))
	assert.Equal(t, 1, n.ReawakeningCount)
	require.NotNil(t, n.ReawakenedFrom)
	assert.WithinDuration(t, now, *n.ReawakenedFrom, time.Second)
	require.NotNil(t, n.ResurrectionVelocity)
	assert.Greater(t, *n.ResurrectionVelocity, 0.0)

	resurrections, err := service.ListResurrections(ctx, 7, 0)
	require.NoError(t, err)
	require.Len(t, resurrections, 1)
	assert.Equal(t, id, resurrections[0].ID)
}

func TestNarrativeService_LifecycleSweepArchives(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNarrativeService(client.Client, testThresholds(), testLogger())
	ctx := context.Background()
	now := time.Now().UTC()
	then := now.Add(-31 * 24 * time.Hour)

	c := seedCluster(t, client.Client, "Terra", 3, then,
		[]string{"Terra", "Do Kwon"}, []string{"collapsed"})
	require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{c}, then))

	require.NoError(t, service.LifecycleSweep(ctx, now))

	active, err := service.ListActive(ctx, models.NarrativeFilters{})
	require.NoError(t, err)
	assert.Empty(t, active)

	archived, err := service.ListArchived(ctx, 60, 0)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	n := archived[0]
	assert.Equal(t, entnarrative.LifecycleStateArchived, n.LifecycleState)
	// History records the transition.
	last := n.LifecycleHistory[len(n.LifecycleHistory)-1]
	assert.Equal(t, models.StateArchived, last.State)
}

func TestNarrativeService_MergePass(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNarrativeService(client.Client, testThresholds(), testLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	// Case variants of one nucleus slip past the case-sensitive unique
	// index; the merge pass is what folds them back together.
	big := seedCluster(t, client.Client, "SEC", 3, now,
		[]string{"SEC", "Coinbase"}, []string{"sued exchange"})
	small := seedCluster(t, client.Client, "sec", 2, now,
		[]string{"SEC", "Coinbase"}, []string{"sued exchange"})
	require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{big}, now))

	// Force-create the second narrative: AssignClusters would attach it.
	fp := narrative.ComputeFingerprint(small, now)
	require.NoError(t, service.create(ctx, small, fp, now))

	merges, err := service.MergePass(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, merges)

	active, err := service.ListActive(ctx, models.NarrativeFilters{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	survivor := active[0]
	assert.Equal(t, "SEC", survivor.NucleusEntity)
	assert.Equal(t, 5, survivor.ArticleCount)

	all, err := client.Narrative.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, n := range all {
		if n.ID == survivor.ID {
			continue
		}
		assert.Equal(t, entnarrative.LifecycleStateArchived, n.LifecycleState)
		require.NotNil(t, n.MergedInto)
		assert.Equal(t, survivor.ID, *n.MergedInto)
		// Loser history survives the merge.
		assert.NotEmpty(t, n.LifecycleHistory)

		// Loser articles now point at the survivor.
		members, err := NewArticleService(client.Client).GetByIDs(ctx, n.ArticleIds)
		require.NoError(t, err)
		for _, a := range members {
			require.NotNil(t, a.NarrativeID)
			assert.Equal(t, survivor.ID, *a.NarrativeID)
		}
	}
}

func TestNarrativeService_MergePassKeepsForeignNucleiApart(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNarrativeService(client.Client, testThresholds(), testLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	// Sparse fingerprints with no actors or actions must not merge
	// across nuclei on missing data alone.
	btc := seedCluster(t, client.Client, "Bitcoin", 2, now, nil, nil)
	sol := seedCluster(t, client.Client, "Solana", 2, now, nil, nil)
	require.NoError(t, service.AssignClusters(ctx, []narrative.Cluster{btc, sol}, now))

	merges, err := service.MergePass(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, merges)

	active, err := service.ListActive(ctx, models.NarrativeFilters{})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
