package narrative

import (
	"sort"
	"strings"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

const (
	maxTopActors  = 5
	maxKeyActions = 3
)

// ComputeFingerprint derives the compact identity of a cluster:
//   - nucleus: the most common article nucleus, ties broken by highest
//     aggregate salience, then alphabetically;
//   - top actors: up to 5, ranked by max salience across the cluster,
//     then mention count, then alphabetically;
//   - key actions: up to 3 deduped action phrases in first-seen order.
func ComputeFingerprint(c Cluster, now time.Time) models.Fingerprint {
	type nucleusStat struct {
		count    int
		salience int
	}
	nuclei := make(map[string]*nucleusStat)

	type actorStat struct {
		maxSalience int
		mentions    int
	}
	actors := make(map[string]*actorStat)

	var actions []string
	seenActions := make(map[string]struct{})

	for _, a := range c.Articles {
		if a.Nucleus != "" {
			st, ok := nuclei[a.Nucleus]
			if !ok {
				st = &nucleusStat{}
				nuclei[a.Nucleus] = st
			}
			st.count++
			st.salience += a.ActorSalience[a.Nucleus]
		}

		for _, actor := range a.Actors {
			st, ok := actors[actor]
			if !ok {
				st = &actorStat{}
				actors[actor] = st
			}
			st.mentions++
			if s := a.ActorSalience[actor]; s > st.maxSalience {
				st.maxSalience = s
			}
		}

		for _, action := range a.KeyActions {
			key := strings.ToLower(strings.TrimSpace(action))
			if key == "" {
				continue
			}
			if _, ok := seenActions[key]; ok {
				continue
			}
			seenActions[key] = struct{}{}
			actions = append(actions, strings.TrimSpace(action))
		}
	}

	nucleus := c.Nucleus
	if len(nuclei) > 0 {
		names := make([]string, 0, len(nuclei))
		for n := range nuclei {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool {
			a, b := nuclei[names[i]], nuclei[names[j]]
			if a.count != b.count {
				return a.count > b.count
			}
			if a.salience != b.salience {
				return a.salience > b.salience
			}
			return names[i] < names[j]
		})
		nucleus = names[0]
	}

	actorNames := make([]string, 0, len(actors))
	for a := range actors {
		actorNames = append(actorNames, a)
	}
	sort.Slice(actorNames, func(i, j int) bool {
		a, b := actors[actorNames[i]], actors[actorNames[j]]
		if a.maxSalience != b.maxSalience {
			return a.maxSalience > b.maxSalience
		}
		if a.mentions != b.mentions {
			return a.mentions > b.mentions
		}
		return actorNames[i] < actorNames[j]
	})
	if len(actorNames) > maxTopActors {
		actorNames = actorNames[:maxTopActors]
	}

	if len(actions) > maxKeyActions {
		actions = actions[:maxKeyActions]
	}

	return models.Fingerprint{
		NucleusEntity: nucleus,
		TopActors:     actorNames,
		KeyActions:    actions,
		Timestamp:     now,
	}
}
