package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

type batchResponse struct {
	Articles []models.ArticleExtraction `json:"articles"`
}

// parseBatchResponse decodes the model output and indexes extractions
// by article id. Unknown ids are dropped; missing ids surface later as
// per-article validation failures.
func parseBatchResponse(text string, articles []Input) (map[string]models.ArticleExtraction, error) {
	text = stripCodeFence(text)

	var resp batchResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	known := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		known[a.ID] = struct{}{}
	}

	out := make(map[string]models.ArticleExtraction, len(resp.Articles))
	for _, ext := range resp.Articles {
		if _, ok := known[ext.ArticleID]; !ok {
			continue
		}
		out[ext.ArticleID] = ext
	}
	return out, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON
// in despite the JSON response mime type.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// validate enforces the extraction contract on one article's raw
// output. Violations route the article into the individual retry path.
func validate(ext models.ArticleExtraction) error {
	if strings.TrimSpace(ext.NucleusEntity) == "" {
		return fmt.Errorf("nucleus_entity is empty")
	}
	switch ext.Sentiment {
	case models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative:
	default:
		return fmt.Errorf("invalid sentiment %q", ext.Sentiment)
	}
	if len(ext.Entities) == 0 {
		return fmt.Errorf("no entities extracted")
	}
	for _, ent := range ext.Entities {
		if strings.TrimSpace(ent.Value) == "" {
			return fmt.Errorf("entity with empty value")
		}
		if !models.ValidEntityType(ent.Type) {
			return fmt.Errorf("invalid entity type %q for %q", ent.Type, ent.Value)
		}
		if ent.Confidence < 0 || ent.Confidence > 1 {
			return fmt.Errorf("confidence %v out of range for %q", ent.Confidence, ent.Value)
		}
	}
	for actor, salience := range ext.ActorSalience {
		if salience < 1 || salience > 5 {
			return fmt.Errorf("salience %d out of range for actor %q", salience, actor)
		}
	}
	return nil
}
