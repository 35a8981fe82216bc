package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

func TestBuildClustersMinSizeBoundary(t *testing.T) {
	now := time.Now().UTC()
	articles := []ClusterArticle{
		{ID: "a1", Nucleus: "Ripple", PublishedAt: now.Add(-3 * time.Hour)},
		{ID: "a2", Nucleus: "ripple", PublishedAt: now.Add(-2 * time.Hour)},
		{ID: "a3", Nucleus: "RIPPLE", PublishedAt: now.Add(-1 * time.Hour)},
		{ID: "b1", Nucleus: "Solana", PublishedAt: now.Add(-1 * time.Hour)},
		{ID: "b2", Nucleus: "SOL", PublishedAt: now},
	}

	clusters := BuildClusters(articles, 3)

	// Ripple reaches the minimum through alias normalization; the
	// two-article Solana group is dropped.
	require.Len(t, clusters, 1)
	assert.Equal(t, "Ripple", clusters[0].Nucleus)
	assert.Equal(t, []string{"a1", "a2", "a3"}, clusters[0].ArticleIDs())
}

func TestBuildClustersDeterministicOrder(t *testing.T) {
	now := time.Now().UTC()
	var articles []ClusterArticle
	for i, n := range []string{"Bitcoin", "Bitcoin", "Bitcoin", "Aave", "Aave", "Aave", "Solana", "Solana", "Solana", "Solana"} {
		articles = append(articles, ClusterArticle{
			ID:          string(rune('a' + i)),
			Nucleus:     n,
			PublishedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	clusters := BuildClusters(articles, 3)
	require.Len(t, clusters, 3)

	// Size descending, then nucleus ascending.
	assert.Equal(t, "Solana", clusters[0].Nucleus)
	assert.Equal(t, "Aave", clusters[1].Nucleus)
	assert.Equal(t, "Bitcoin", clusters[2].Nucleus)
}

func TestBuildClustersIgnoresEmptyNucleus(t *testing.T) {
	now := time.Now().UTC()
	clusters := BuildClusters([]ClusterArticle{
		{ID: "a1", Nucleus: "", PublishedAt: now},
		{ID: "a2", Nucleus: "  ", PublishedAt: now},
	}, 1)
	assert.Empty(t, clusters)
}

func TestComputeFingerprint(t *testing.T) {
	now := time.Now().UTC()
	cluster := Cluster{
		Nucleus: "SEC",
		Articles: []ClusterArticle{
			{
				ID:            "a1",
				Nucleus:       "SEC",
				Actors:        []string{"SEC", "Binance", "CZ"},
				ActorSalience: map[string]int{"SEC": 5, "Binance": 4, "CZ": 3},
				KeyActions:    []string{"filed lawsuit"},
				PublishedAt:   now.Add(-2 * time.Hour),
			},
			{
				ID:            "a2",
				Nucleus:       "SEC",
				Actors:        []string{"SEC", "Binance"},
				ActorSalience: map[string]int{"SEC": 5, "Binance": 3},
				KeyActions:    []string{"Filed Lawsuit", "froze assets"},
				PublishedAt:   now.Add(-1 * time.Hour),
			},
		},
	}

	fp := ComputeFingerprint(cluster, now)

	assert.Equal(t, "SEC", fp.NucleusEntity)
	assert.Equal(t, []string{"SEC", "Binance", "CZ"}, fp.TopActors)
	// Actions are deduped case-insensitively, first-seen order.
	assert.Equal(t, []string{"filed lawsuit", "froze assets"}, fp.KeyActions)
	assert.Equal(t, now, fp.Timestamp)
}

func TestComputeFingerprintCapsActorsAndActions(t *testing.T) {
	now := time.Now().UTC()
	art := ClusterArticle{
		ID:      "a1",
		Nucleus: "Bitcoin",
		Actors:  []string{"A", "B", "C", "D", "E", "F", "G"},
		ActorSalience: map[string]int{
			"A": 5, "B": 5, "C": 4, "D": 3, "E": 2, "F": 1, "G": 1,
		},
		KeyActions:  []string{"one", "two", "three", "four"},
		PublishedAt: now,
	}
	fp := ComputeFingerprint(Cluster{Nucleus: "Bitcoin", Articles: []ClusterArticle{art}}, now)
	assert.Len(t, fp.TopActors, 5)
	assert.Len(t, fp.KeyActions, 3)
}

func TestSimilaritySharedNucleusPartialActors(t *testing.T) {
	fp1 := models.Fingerprint{
		NucleusEntity: "SEC",
		TopActors:     []string{"SEC", "Binance", "CZ"},
		KeyActions:    []string{"filed lawsuit"},
	}
	fp2 := models.Fingerprint{
		NucleusEntity: "SEC",
		TopActors:     []string{"SEC", "Coinbase", "Brian Armstrong"},
		KeyActions:    []string{"enforcement action"},
	}

	// 0.45 nucleus + 0.35*(1/5) actors + 0 actions + 0.10 boost = 0.62.
	assert.InDelta(t, 0.62, Similarity(fp1, fp2), 1e-9)
}

func TestSimilarityIdentityAndSymmetry(t *testing.T) {
	fp := models.Fingerprint{
		NucleusEntity: "Bitcoin",
		TopActors:     []string{"Bitcoin", "BlackRock"},
		KeyActions:    []string{"approved ETF"},
	}
	other := models.Fingerprint{
		NucleusEntity: "Ethereum",
		TopActors:     []string{"Ethereum", "BlackRock"},
		KeyActions:    []string{"approved ETF"},
	}

	assert.InDelta(t, 1.0, Similarity(fp, fp), 1e-9)
	assert.Equal(t, Similarity(fp, other), Similarity(other, fp))
}

func TestSimilarityDisjointFingerprints(t *testing.T) {
	a := models.Fingerprint{NucleusEntity: "Solana", TopActors: []string{"Solana"}, KeyActions: []string{"outage"}}
	b := models.Fingerprint{NucleusEntity: "Tether", TopActors: []string{"Tether"}, KeyActions: []string{"minted"}}
	assert.Zero(t, Similarity(a, b))
}

func TestSimilarityEmptySetsNeedSharedNucleus(t *testing.T) {
	// Fingerprints carrying no actors or actions only look identical
	// when they orbit the same nucleus.
	btc := models.Fingerprint{NucleusEntity: "Bitcoin"}
	sol := models.Fingerprint{NucleusEntity: "Solana"}
	assert.Zero(t, Similarity(btc, sol))
	assert.Equal(t, 1.0, Similarity(btc, btc))
	assert.Equal(t, 1.0, Similarity(btc, models.Fingerprint{NucleusEntity: "bitcoin"}))
}

func TestMergeThreshold(t *testing.T) {
	now := time.Now().UTC()
	recent := now.Add(-12 * time.Hour)
	old := now.Add(-96 * time.Hour)

	// Either side recent pulls the threshold down.
	assert.Equal(t, 0.5, MergeThreshold(recent, old, now, 0.5, 0.6))
	assert.Equal(t, 0.5, MergeThreshold(old, recent, now, 0.5, 0.6))
	assert.Equal(t, 0.5, MergeThreshold(recent, recent, now, 0.5, 0.6))
	assert.Equal(t, 0.6, MergeThreshold(old, old, now, 0.5, 0.6))
}

func timesAgo(now time.Time, hours ...float64) []time.Time {
	out := make([]time.Time, len(hours))
	for i, h := range hours {
		out[i] = now.Add(-time.Duration(h * float64(time.Hour)))
	}
	return out
}

func TestComputeVelocityUsesLookbackDenominator(t *testing.T) {
	now := time.Now().UTC()
	// 14 articles inside the window, one outside.
	var published []time.Time
	for i := 0; i < 14; i++ {
		published = append(published, now.Add(-time.Duration(i)*6*time.Hour))
	}
	published = append(published, now.Add(-10*24*time.Hour))

	assert.InDelta(t, 2.0, ComputeVelocity(published, now), 1e-9)
}

func TestComputeMomentum(t *testing.T) {
	now := time.Now().UTC()

	// All four articles in the recent half: growing.
	growing := timesAgo(now, 1, 2, 3, 4)
	assert.Equal(t, models.MomentumGrowing, ComputeMomentum(growing, now))

	// All four in the older half: declining.
	declining := timesAgo(now, 100, 110, 120, 130)
	assert.Equal(t, models.MomentumDeclining, ComputeMomentum(declining, now))

	// Even split: stable.
	stable := timesAgo(now, 1, 2, 100, 110)
	assert.Equal(t, models.MomentumStable, ComputeMomentum(stable, now))

	// Fewer than four in-window articles: unknown.
	sparse := timesAgo(now, 1, 2, 3)
	assert.Equal(t, models.MomentumUnknown, ComputeMomentum(sparse, now))
}

func TestRecencyScore(t *testing.T) {
	now := time.Now().UTC()
	window := 7 * 24 * time.Hour

	// Recent 20% of a 7d window is the last ~33.6h.
	published := timesAgo(now, 1, 10, 30, 100, 150)
	assert.InDelta(t, 0.6, RecencyScore(published, now, window), 1e-9)

	assert.Zero(t, RecencyScore(nil, now, window))
}

func TestEvaluateStateActivityRules(t *testing.T) {
	now := time.Now().UTC()
	fresh := now.Add(-1 * time.Hour)

	cases := []struct {
		name string
		in   LifecycleInput
		want string
	}{
		{
			name: "few articles stay emerging",
			in:   LifecycleInput{ArticleCount: 4, Velocity: 5, Momentum: models.MomentumGrowing, PreviousState: models.StateEmerging, LastUpdated: fresh, Now: now},
			want: models.StateEmerging,
		},
		{
			name: "growing momentum promotes to rising",
			in:   LifecycleInput{ArticleCount: 5, Velocity: 1.0, Momentum: models.MomentumGrowing, PreviousState: models.StateEmerging, LastUpdated: fresh, Now: now},
			want: models.StateRising,
		},
		{
			name: "sustained heavy coverage is mature",
			in:   LifecycleInput{ArticleCount: 10, Velocity: 3.5, Momentum: models.MomentumStable, PreviousState: models.StateHot, LastUpdated: fresh, Now: now},
			want: models.StateMature,
		},
		{
			name: "fast and stable is hot",
			in:   LifecycleInput{ArticleCount: 6, Velocity: 2.5, Momentum: models.MomentumStable, PreviousState: models.StateRising, LastUpdated: fresh, Now: now},
			want: models.StateHot,
		},
		{
			name: "fast but declining is cooling",
			in:   LifecycleInput{ArticleCount: 6, Velocity: 2.5, Momentum: models.MomentumDeclining, PreviousState: models.StateHot, LastUpdated: fresh, Now: now},
			want: models.StateCooling,
		},
		{
			name: "no rule matched keeps previous active state",
			in:   LifecycleInput{ArticleCount: 6, Velocity: 1.0, Momentum: models.MomentumStable, PreviousState: models.StateHot, LastUpdated: fresh, Now: now},
			want: models.StateHot,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EvaluateState(tc.in))
		})
	}
}

func TestEvaluateStateStaleness(t *testing.T) {
	now := time.Now().UTC()

	// Exactly 7.0 days is still non-dormant; strictly greater goes dormant.
	boundary := LifecycleInput{
		ArticleCount:  6,
		Velocity:      0,
		Momentum:      models.MomentumUnknown,
		PreviousState: models.StateCooling,
		LastUpdated:   now.Add(-7 * 24 * time.Hour),
		Now:           now,
	}
	assert.NotEqual(t, models.StateDormant, EvaluateState(boundary))

	boundary.LastUpdated = now.Add(-7*24*time.Hour - time.Minute)
	assert.Equal(t, models.StateDormant, EvaluateState(boundary))

	archived := boundary
	archived.LastUpdated = now.Add(-31 * 24 * time.Hour)
	assert.Equal(t, models.StateArchived, EvaluateState(archived))

	cooling := LifecycleInput{
		ArticleCount:  12,
		Velocity:      0,
		Momentum:      models.MomentumUnknown,
		PreviousState: models.StateHot,
		LastUpdated:   now.Add(-4 * 24 * time.Hour),
		Now:           now,
	}
	assert.Equal(t, models.StateCooling, EvaluateState(cooling))

	// Configured cutoffs override the defaults.
	tightened := boundary
	tightened.LastUpdated = now.Add(-5 * 24 * time.Hour)
	tightened.DormantAfter = 4
	assert.Equal(t, models.StateDormant, EvaluateState(tightened))
	tightened.ArchiveAfter = 4.5
	assert.Equal(t, models.StateArchived, EvaluateState(tightened))
}

func TestEvaluateStateResurrection(t *testing.T) {
	now := time.Now().UTC()

	// Dormant narrative, last_updated reset by a fresh attach: five new
	// articles at velocity 2.5 with growing momentum come back as rising.
	in := LifecycleInput{
		ArticleCount:  5,
		Velocity:      2.5,
		Momentum:      models.MomentumGrowing,
		PreviousState: models.StateDormant,
		LastUpdated:   now.Add(-30 * time.Minute),
		Now:           now,
	}
	next := EvaluateState(in)
	assert.Equal(t, models.StateRising, next)
	assert.True(t, IsResurrection(models.StateDormant, next))
	assert.True(t, IsResurrection(models.StateArchived, models.StateEmerging))
	assert.False(t, IsResurrection(models.StateCooling, models.StateRising))
	assert.False(t, IsResurrection(models.StateDormant, models.StateCooling))
}

func TestEvaluateStateIdempotent(t *testing.T) {
	now := time.Now().UTC()
	in := LifecycleInput{
		ArticleCount:  6,
		Velocity:      2.5,
		Momentum:      models.MomentumStable,
		PreviousState: models.StateRising,
		LastUpdated:   now.Add(-1 * time.Hour),
		Now:           now,
	}
	first := EvaluateState(in)
	in.PreviousState = first
	assert.Equal(t, first, EvaluateState(in))
}

func TestShouldAppendHistory(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, ShouldAppendHistory(nil, models.StateEmerging, now))

	history := []models.LifecycleEntry{{State: models.StateEmerging, Timestamp: now.Add(-time.Hour)}}
	assert.True(t, ShouldAppendHistory(history, models.StateRising, now))
	assert.False(t, ShouldAppendHistory(history, models.StateEmerging, now))

	stale := []models.LifecycleEntry{{State: models.StateHot, Timestamp: now.Add(-25 * time.Hour)}}
	assert.True(t, ShouldAppendHistory(stale, models.StateHot, now))
}
