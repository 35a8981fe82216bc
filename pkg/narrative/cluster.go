package narrative

import (
	"sort"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/entity"
)

// BuildClusters groups articles by canonical nucleus entity and drops
// clusters smaller than minSize. Articles without a nucleus are
// ignored. The result is deterministically ordered: size descending,
// then nucleus ascending, the order the matcher processes them in.
func BuildClusters(articles []ClusterArticle, minSize int) []Cluster {
	if minSize < 1 {
		minSize = 1
	}

	byNucleus := make(map[string][]ClusterArticle)
	for _, a := range articles {
		nucleus := entity.Normalize(a.Nucleus)
		if nucleus == "" {
			continue
		}
		a.Nucleus = nucleus
		byNucleus[nucleus] = append(byNucleus[nucleus], a)
	}

	clusters := make([]Cluster, 0, len(byNucleus))
	for nucleus, members := range byNucleus {
		if len(members) < minSize {
			continue
		}
		// Stable member order: oldest first.
		sort.Slice(members, func(i, j int) bool {
			if members[i].PublishedAt.Equal(members[j].PublishedAt) {
				return members[i].ID < members[j].ID
			}
			return members[i].PublishedAt.Before(members[j].PublishedAt)
		})
		clusters = append(clusters, Cluster{Nucleus: nucleus, Articles: members})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size() != clusters[j].Size() {
			return clusters[i].Size() > clusters[j].Size()
		}
		return clusters[i].Nucleus < clusters[j].Nucleus
	})

	return clusters
}
