// Package narrative implements clustering, fingerprinting, similarity
// matching, and the lifecycle state machine for narratives. All
// functions here are pure; persistence and orchestration live in the
// services layer.
package narrative

import "time"

// ClusterArticle is the slice of an article the clusterer needs.
// Nucleus and actors are canonical forms (normalized upstream).
type ClusterArticle struct {
	ID            string
	Nucleus       string
	Actors        []string
	ActorSalience map[string]int
	KeyActions    []string
	Summary       string
	PublishedAt   time.Time
}

// Cluster is a candidate group of articles sharing a nucleus entity.
type Cluster struct {
	Nucleus  string
	Articles []ClusterArticle
}

// Size returns the number of member articles.
func (c Cluster) Size() int { return len(c.Articles) }

// ArticleIDs returns member article ids in input order.
func (c Cluster) ArticleIDs() []string {
	ids := make([]string, len(c.Articles))
	for i, a := range c.Articles {
		ids[i] = a.ID
	}
	return ids
}
