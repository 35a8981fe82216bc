package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	entnarrative "github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/narrative"
)

// attachRetries is how many optimistic-concurrency attempts an attach
// gets before the cluster is deferred to the next cycle.
const attachRetries = 3

// NarrativeThresholds carries the merge thresholds and staleness
// cutoffs from configuration. Zero-valued cutoffs take the lifecycle
// engine's defaults.
type NarrativeThresholds struct {
	MergeRecent float64
	MergeOld    float64
	DormantDays int
	ArchiveDays int
}

// NarrativeService owns narratives: cluster assignment (attach or
// create), the periodic merge pass, and the lifecycle sweep. Narrative
// rows are only ever written here.
type NarrativeService struct {
	client     *ent.Client
	thresholds NarrativeThresholds
	logger     *slog.Logger
}

// NewNarrativeService creates a new NarrativeService.
func NewNarrativeService(client *ent.Client, thresholds NarrativeThresholds, logger *slog.Logger) *NarrativeService {
	return &NarrativeService{client: client, thresholds: thresholds, logger: logger}
}

// AssignClusters runs one matcher cycle: each candidate cluster either
// attaches to the most similar active narrative or becomes a new one.
// Clusters must already be in deterministic order (size desc, nucleus
// asc); a unique-index race on create falls back to attach.
func (s *NarrativeService) AssignClusters(ctx context.Context, clusters []narrative.Cluster, now time.Time) error {
	for _, c := range clusters {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.assignCluster(ctx, c, now); err != nil {
			s.logger.Error("cluster assignment failed, deferring to next cycle",
				"nucleus", c.Nucleus, "size", c.Size(), "error", err)
		}
	}
	return nil
}

func (s *NarrativeService) assignCluster(ctx context.Context, c narrative.Cluster, now time.Time) error {
	fp := narrative.ComputeFingerprint(c, now)

	candidates, err := s.nonArchived(ctx)
	if err != nil {
		return err
	}

	var best *ent.Narrative
	var bestSim float64
	for _, n := range candidates {
		sim := narrative.Similarity(fp, n.Fingerprint)
		threshold := narrative.MergeThreshold(n.LastUpdated, now, now, s.thresholds.MergeRecent, s.thresholds.MergeOld)
		if sim >= threshold && sim > bestSim {
			best, bestSim = n, sim
		}
	}

	if best != nil {
		return s.attach(ctx, best.ID, c, now)
	}

	err = s.create(ctx, c, fp, now)
	if err != nil && ent.IsConstraintError(err) {
		// Another cycle created a narrative with this nucleus first;
		// reprocess the cluster against the now-existing narrative.
		existing, qErr := s.activeByNucleus(ctx, c.Nucleus)
		if qErr != nil {
			return fmt.Errorf("failed to re-read narrative after create conflict: %w", qErr)
		}
		return s.attach(ctx, existing.ID, c, now)
	}
	return err
}

// create instantiates a narrative from a cluster. The deprecated theme
// field is written once here and never updated.
func (s *NarrativeService) create(ctx context.Context, c narrative.Cluster, fp models.Fingerprint, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	published := make([]time.Time, 0, len(c.Articles))
	for _, a := range c.Articles {
		published = append(published, a.PublishedAt)
	}
	velocity := narrative.ComputeVelocity(published, now)
	momentum := narrative.ComputeMomentum(published, now)
	recency := narrative.RecencyScore(published, now, narrative.LookbackWindow)

	entities := collectActors(c.Articles)
	history := []models.LifecycleEntry{{
		State:           models.StateEmerging,
		Timestamp:       now,
		ArticleCount:    c.Size(),
		MentionVelocity: velocity,
	}}

	id := uuid.NewString()
	err := s.client.Narrative.Create().
		SetID(id).
		SetTitle(c.Nucleus).
		SetSummary(latestSummary(c)).
		SetTheme(c.Nucleus).
		SetNucleusEntity(fp.NucleusEntity).
		SetEntities(entities).
		SetArticleIds(c.ArticleIDs()).
		SetArticleCount(c.Size()).
		SetFingerprint(fp).
		SetLifecycleState(entnarrative.LifecycleStateEmerging).
		SetLifecycleHistory(history).
		SetMentionVelocity(velocity).
		SetMomentum(entnarrative.Momentum(momentum)).
		SetRecencyScore(recency).
		SetFirstSeen(now).
		SetLastUpdated(now).
		SetPeakActivity(peakFromTimes(published, velocity)).
		Exec(ctx)
	if err != nil {
		return err
	}

	return s.setArticleNarrative(ctx, c.ArticleIDs(), id)
}

// attach appends a cluster's articles to an existing narrative with
// optimistic concurrency: read, recompute, write-with-expected-version,
// retry on conflict.
func (s *NarrativeService) attach(ctx context.Context, narrativeID string, c narrative.Cluster, now time.Time) error {
	for attempt := 0; attempt < attachRetries; attempt++ {
		n, err := s.client.Narrative.Get(ctx, narrativeID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("narrative %s: %w", narrativeID, ErrNotFound)
			}
			return fmt.Errorf("failed to read narrative %s: %w", narrativeID, err)
		}

		ids := unionStrings(n.ArticleIds, c.ArticleIDs())
		if len(ids) == len(n.ArticleIds) {
			// Every article is already a member; nothing to do.
			return nil
		}

		members, err := s.memberArticles(ctx, ids)
		if err != nil {
			return err
		}

		fp := narrative.ComputeFingerprint(narrative.Cluster{Nucleus: n.NucleusEntity, Articles: members}, now)
		published := publishTimes(members)
		velocity := narrative.ComputeVelocity(published, now)
		momentum := narrative.ComputeMomentum(published, now)
		recency := narrative.RecencyScore(published, now, narrative.LookbackWindow)

		prevState := string(n.LifecycleState)
		newState := narrative.EvaluateState(narrative.LifecycleInput{
			ArticleCount:  len(ids),
			Velocity:      velocity,
			Momentum:      momentum,
			PreviousState: prevState,
			LastUpdated:   now, // the attach itself counts as activity
			Now:           now,
			DormantAfter:  float64(s.thresholds.DormantDays),
			ArchiveAfter:  float64(s.thresholds.ArchiveDays),
		})

		update := s.client.Narrative.Update().
			Where(
				entnarrative.ID(narrativeID),
				entnarrative.Version(n.Version),
			).
			SetArticleIds(ids).
			SetArticleCount(len(ids)).
			SetEntities(collectActors(members)).
			SetFingerprint(fp).
			SetMentionVelocity(velocity).
			SetMomentum(entnarrative.Momentum(momentum)).
			SetRecencyScore(recency).
			SetLifecycleState(entnarrative.LifecycleState(newState)).
			SetLastUpdated(now).
			SetDaysActive(daysSince(n.FirstSeen, now)).
			SetVersion(n.Version + 1)

		if narrative.IsResurrection(prevState, newState) {
			update = update.
				SetReawakeningCount(n.ReawakeningCount + 1).
				SetReawakenedFrom(now).
				SetResurrectionVelocity(velocity)
			s.logger.Info("narrative resurrected",
				"narrative_id", narrativeID, "nucleus", n.NucleusEntity,
				"state", newState, "velocity", velocity)
		}

		if narrative.ShouldAppendHistory(n.LifecycleHistory, newState, now) {
			update = update.SetLifecycleHistory(append(n.LifecycleHistory, models.LifecycleEntry{
				State:           newState,
				Timestamp:       now,
				ArticleCount:    len(ids),
				MentionVelocity: velocity,
			}))
		}

		if peak := peakFromTimes(published, velocity); peak.ArticleCount > n.PeakActivity.ArticleCount {
			update = update.SetPeakActivity(peak)
		}

		affected, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update narrative %s: %w", narrativeID, err)
		}
		if affected == 0 {
			// Version moved underneath us; re-read and retry.
			continue
		}

		return s.setArticleNarrative(ctx, c.ArticleIDs(), narrativeID)
	}
	return fmt.Errorf("narrative %s: %w", narrativeID, ErrConcurrentModification)
}

// MergePass scans non-archived narratives sharing a nucleus pairwise
// (case-insensitive; case variants slip past the unique index) and
// merges any pair above the merge threshold: the one with fewer
// articles is archived with a merged_into pointer, the survivor unions
// articles and entities. History is preserved on the survivor. Returns
// the number of merges performed.
func (s *NarrativeService) MergePass(ctx context.Context, now time.Time) (int, error) {
	narratives, err := s.nonArchived(ctx)
	if err != nil {
		return 0, err
	}

	// Larger narratives first so the survivor of each pair comes first.
	sort.Slice(narratives, func(i, j int) bool {
		if narratives[i].ArticleCount != narratives[j].ArticleCount {
			return narratives[i].ArticleCount > narratives[j].ArticleCount
		}
		return narratives[i].NucleusEntity < narratives[j].NucleusEntity
	})

	absorbed := make(map[string]bool)
	merges := 0
	for i := 0; i < len(narratives); i++ {
		if absorbed[narratives[i].ID] {
			continue
		}
		for j := i + 1; j < len(narratives); j++ {
			if absorbed[narratives[j].ID] {
				continue
			}
			survivor, loser := narratives[i], narratives[j]
			if !strings.EqualFold(survivor.NucleusEntity, loser.NucleusEntity) {
				continue
			}

			sim := narrative.Similarity(survivor.Fingerprint, loser.Fingerprint)
			threshold := narrative.MergeThreshold(survivor.LastUpdated, loser.LastUpdated, now,
				s.thresholds.MergeRecent, s.thresholds.MergeOld)
			if sim < threshold {
				continue
			}

			if err := s.merge(ctx, survivor, loser, now); err != nil {
				s.logger.Error("narrative merge failed",
					"survivor", survivor.ID, "loser", loser.ID, "error", err)
				continue
			}
			absorbed[loser.ID] = true
			merges++
		}
	}
	return merges, nil
}

// merge folds loser into survivor. The loser is archived, not deleted,
// for auditability.
func (s *NarrativeService) merge(ctx context.Context, survivor, loser *ent.Narrative, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ids := unionStrings(survivor.ArticleIds, loser.ArticleIds)
	members, err := s.memberArticles(ctx, ids)
	if err != nil {
		return err
	}

	affected, err := s.client.Narrative.Update().
		Where(
			entnarrative.ID(survivor.ID),
			entnarrative.Version(survivor.Version),
		).
		SetArticleIds(ids).
		SetArticleCount(len(ids)).
		SetEntities(collectActors(members)).
		SetLastUpdated(now).
		SetVersion(survivor.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update merge survivor %s: %w", survivor.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("merge survivor %s: %w", survivor.ID, ErrConcurrentModification)
	}

	history := append(loser.LifecycleHistory, models.LifecycleEntry{
		State:           models.StateArchived,
		Timestamp:       now,
		ArticleCount:    loser.ArticleCount,
		MentionVelocity: loser.MentionVelocity,
	})
	err = s.client.Narrative.UpdateOneID(loser.ID).
		SetLifecycleState(entnarrative.LifecycleStateArchived).
		SetMergedInto(survivor.ID).
		SetLifecycleHistory(history).
		SetVersion(loser.Version + 1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive merge loser %s: %w", loser.ID, err)
	}

	s.logger.Info("narratives merged",
		"survivor", survivor.ID, "loser", loser.ID,
		"nucleus", survivor.NucleusEntity, "article_count", len(ids))

	return s.setArticleNarrative(ctx, loser.ArticleIds, survivor.ID)
}

// LifecycleSweep recomputes lifecycle state for every non-archived
// narrative, even without new articles. This is what moves stale
// narratives to cooling, dormant, and archived.
func (s *NarrativeService) LifecycleSweep(ctx context.Context, now time.Time) error {
	narratives, err := s.nonArchived(ctx)
	if err != nil {
		return err
	}

	for _, n := range narratives {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.sweepOne(ctx, n, now); err != nil {
			s.logger.Error("lifecycle sweep failed for narrative",
				"narrative_id", n.ID, "error", err)
		}
	}
	return nil
}

func (s *NarrativeService) sweepOne(ctx context.Context, n *ent.Narrative, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	members, err := s.memberArticles(ctx, n.ArticleIds)
	if err != nil {
		return err
	}
	published := publishTimes(members)
	velocity := narrative.ComputeVelocity(published, now)
	momentum := narrative.ComputeMomentum(published, now)
	recency := narrative.RecencyScore(published, now, narrative.LookbackWindow)

	newState := narrative.EvaluateState(narrative.LifecycleInput{
		ArticleCount:  n.ArticleCount,
		Velocity:      velocity,
		Momentum:      momentum,
		PreviousState: string(n.LifecycleState),
		LastUpdated:   n.LastUpdated,
		Now:           now,
		DormantAfter:  float64(s.thresholds.DormantDays),
		ArchiveAfter:  float64(s.thresholds.ArchiveDays),
	})

	update := s.client.Narrative.Update().
		Where(
			entnarrative.ID(n.ID),
			entnarrative.Version(n.Version),
		).
		SetMentionVelocity(velocity).
		SetMomentum(entnarrative.Momentum(momentum)).
		SetRecencyScore(recency).
		SetLifecycleState(entnarrative.LifecycleState(newState)).
		SetDaysActive(daysSince(n.FirstSeen, now)).
		SetVersion(n.Version + 1)

	if narrative.ShouldAppendHistory(n.LifecycleHistory, newState, now) {
		update = update.SetLifecycleHistory(append(n.LifecycleHistory, models.LifecycleEntry{
			State:           newState,
			Timestamp:       now,
			ArticleCount:    n.ArticleCount,
			MentionVelocity: velocity,
		}))
		if newState != string(n.LifecycleState) {
			s.logger.Info("narrative state changed",
				"narrative_id", n.ID, "nucleus", n.NucleusEntity,
				"from", n.LifecycleState, "to", newState)
		}
	}

	affected, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep narrative %s: %w", n.ID, err)
	}
	if affected == 0 {
		// An attach beat the sweep to this narrative; the attach already
		// recomputed lifecycle, so skipping is correct.
		return nil
	}
	return nil
}

// ListActive returns non-archived narratives, optionally filtered by
// lifecycle state, most recently updated first.
func (s *NarrativeService) ListActive(ctx context.Context, filters models.NarrativeFilters) ([]*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	q := s.client.Narrative.Query().
		Where(entnarrative.LifecycleStateNEQ(entnarrative.LifecycleStateArchived)).
		Order(ent.Desc(entnarrative.FieldLastUpdated))
	if filters.LifecycleState != "" {
		q = q.Where(entnarrative.LifecycleStateEQ(entnarrative.LifecycleState(filters.LifecycleState)))
	}
	if filters.Since != nil {
		q = q.Where(entnarrative.LastUpdatedGTE(*filters.Since))
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	narratives, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active narratives: %w", err)
	}
	return narratives, nil
}

// ListArchived returns dormant and archived narratives updated within
// the last N days.
func (s *NarrativeService) ListArchived(ctx context.Context, days, limit int) ([]*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -days)
	q := s.client.Narrative.Query().
		Where(
			entnarrative.LifecycleStateIn(
				entnarrative.LifecycleStateDormant,
				entnarrative.LifecycleStateArchived,
			),
			entnarrative.LastUpdatedGTE(since),
		).
		Order(ent.Desc(entnarrative.FieldLastUpdated))
	if limit > 0 {
		q = q.Limit(limit)
	}
	narratives, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived narratives: %w", err)
	}
	return narratives, nil
}

// ListResurrections returns narratives resurrected within the last N
// days, most recent resurrection first.
func (s *NarrativeService) ListResurrections(ctx context.Context, days, limit int) ([]*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -days)
	q := s.client.Narrative.Query().
		Where(
			entnarrative.ReawakeningCountGTE(1),
			entnarrative.ReawakenedFromGTE(since),
		).
		Order(ent.Desc(entnarrative.FieldReawakenedFrom))
	if limit > 0 {
		q = q.Limit(limit)
	}
	narratives, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resurrections: %w", err)
	}
	return narratives, nil
}

// MemberSummaries returns the non-empty member article summaries for a
// narrative, oldest first, as input for summary refinement.
func (s *NarrativeService) MemberSummaries(ctx context.Context, n *ent.Narrative) ([]string, error) {
	if len(n.ArticleIds) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.client.Article.Query().
		Where(article.IDIn(n.ArticleIds...)).
		Order(ent.Asc(article.FieldPublishedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load member summaries for narrative %s: %w", n.ID, err)
	}

	summaries := make([]string, 0, len(rows))
	for _, a := range rows {
		if a.NarrativeSummary != nil && *a.NarrativeSummary != "" {
			summaries = append(summaries, *a.NarrativeSummary)
		}
	}
	return summaries, nil
}

// UpdateSummary replaces a narrative's summary. Summaries are
// presentation text, not concurrency-critical state, so this write
// skips the version check.
func (s *NarrativeService) UpdateSummary(ctx context.Context, id, summary string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	err := s.client.Narrative.UpdateOneID(id).
		SetSummary(summary).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("narrative %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to update summary for narrative %s: %w", id, err)
	}
	return nil
}

// Get returns one narrative by id.
func (s *NarrativeService) Get(ctx context.Context, id string) (*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	n, err := s.client.Narrative.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("narrative %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get narrative %s: %w", id, err)
	}
	return n, nil
}

// ActiveEntityIndex maps canonical entity names to the ids of
// non-archived narratives containing them. The signal scorer uses this
// to populate narrative_ids.
func (s *NarrativeService) ActiveEntityIndex(ctx context.Context) (map[string][]string, error) {
	narratives, err := s.nonArchived(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string][]string)
	for _, n := range narratives {
		for _, e := range n.Entities {
			index[e] = append(index[e], n.ID)
		}
	}
	return index, nil
}

func (s *NarrativeService) nonArchived(ctx context.Context) ([]*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	narratives, err := s.client.Narrative.Query().
		Where(entnarrative.LifecycleStateNEQ(entnarrative.LifecycleStateArchived)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load non-archived narratives: %w", err)
	}
	return narratives, nil
}

func (s *NarrativeService) activeByNucleus(ctx context.Context, nucleus string) (*ent.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	n, err := s.client.Narrative.Query().
		Where(
			entnarrative.NucleusEntity(nucleus),
			entnarrative.LifecycleStateNEQ(entnarrative.LifecycleStateArchived),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// memberArticles loads member articles shaped for fingerprint and
// velocity computation.
func (s *NarrativeService) memberArticles(ctx context.Context, ids []string) ([]narrative.ClusterArticle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.client.Article.Query().
		Where(article.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load member articles: %w", err)
	}

	return ClusterInputs(rows), nil
}

func (s *NarrativeService) setArticleNarrative(ctx context.Context, articleIDs []string, narrativeID string) error {
	if len(articleIDs) == 0 {
		return nil
	}
	_, err := s.client.Article.Update().
		Where(article.IDIn(articleIDs...)).
		SetNarrativeID(narrativeID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set narrative id on member articles: %w", err)
	}
	return nil
}

// ClusterInputs shapes enriched articles for the clusterer.
func ClusterInputs(articles []*ent.Article) []narrative.ClusterArticle {
	out := make([]narrative.ClusterArticle, 0, len(articles))
	for _, a := range articles {
		in := narrative.ClusterArticle{
			ID:            a.ID,
			Actors:        a.Actors,
			ActorSalience: a.ActorSalience,
			KeyActions:    a.KeyActions,
			PublishedAt:   a.PublishedAt,
		}
		if a.NucleusEntity != nil {
			in.Nucleus = *a.NucleusEntity
		}
		if a.NarrativeSummary != nil {
			in.Summary = *a.NarrativeSummary
		}
		out = append(out, in)
	}
	return out
}

// collectActors returns the sorted deduped set of actors across
// articles.
func collectActors(articles []narrative.ClusterArticle) []string {
	seen := make(map[string]struct{})
	for _, a := range articles {
		for _, actor := range a.Actors {
			seen[actor] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for actor := range seen {
		out = append(out, actor)
	}
	sort.Strings(out)
	return out
}

func unionStrings(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing))
	out := make([]string, 0, len(existing)+len(added))
	for _, s := range existing {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range added {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func publishTimes(articles []narrative.ClusterArticle) []time.Time {
	out := make([]time.Time, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.PublishedAt)
	}
	return out
}

func daysSince(from, now time.Time) int {
	d := int(now.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// peakFromTimes finds the busiest UTC calendar day among the publish
// times.
func peakFromTimes(published []time.Time, velocity float64) models.PeakActivity {
	if len(published) == 0 {
		return models.PeakActivity{}
	}
	byDay := make(map[time.Time]int)
	for _, ts := range published {
		day := ts.UTC().Truncate(24 * time.Hour)
		byDay[day]++
	}
	var peak models.PeakActivity
	for day, count := range byDay {
		if count > peak.ArticleCount || (count == peak.ArticleCount && day.After(peak.Date)) {
			peak = models.PeakActivity{Date: day, ArticleCount: count, Velocity: velocity}
		}
	}
	return peak
}

// latestSummary picks the newest member article's narrative summary.
func latestSummary(c narrative.Cluster) string {
	summary := ""
	var latest time.Time
	for _, a := range c.Articles {
		if a.Summary != "" && (latest.IsZero() || a.PublishedAt.After(latest)) {
			summary = a.Summary
			latest = a.PublishedAt
		}
	}
	return summary
}
