package models

// Entity types recognized by the extractor. Primary types are the ones
// that feed signal scoring.
const (
	EntityCryptocurrency = "cryptocurrency"
	EntityBlockchain     = "blockchain"
	EntityProtocol       = "protocol"
	EntityCompany        = "company"
	EntityOrganization   = "organization"
	EntityPerson         = "person"
	EntityLocation       = "location"
	EntityConcept        = "concept"
	EntityEvent          = "event"
)

// IsPrimaryEntityType reports whether mentions of this type are scored.
func IsPrimaryEntityType(t string) bool {
	switch t {
	case EntityCryptocurrency, EntityBlockchain, EntityProtocol, EntityCompany, EntityOrganization:
		return true
	}
	return false
}

// ValidEntityType reports whether t is one of the recognized types.
func ValidEntityType(t string) bool {
	switch t {
	case EntityCryptocurrency, EntityBlockchain, EntityProtocol, EntityCompany,
		EntityOrganization, EntityPerson, EntityLocation, EntityConcept, EntityEvent:
		return true
	}
	return false
}

// ExtractedEntity is one entity found in an article by the LLM.
type ExtractedEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	IsPrimary  bool    `json:"is_primary"`
}

// ArticleExtraction is the per-article result of one extraction batch.
type ArticleExtraction struct {
	ArticleID        string            `json:"article_id"`
	Entities         []ExtractedEntity `json:"entities"`
	Sentiment        string            `json:"sentiment"`
	NucleusEntity    string            `json:"nucleus_entity"`
	Actors           []string          `json:"actors"`
	ActorSalience    map[string]int    `json:"actor_salience"`
	KeyActions       []string          `json:"key_actions"`
	NarrativeSummary string            `json:"narrative_summary"`
}

// BatchUsage is the token/cost accounting for one extraction call.
type BatchUsage struct {
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	Cached       bool    `json:"cached"`
}

// ExtractionResult is the public contract of the extractor: per-article
// extractions plus batch-level usage.
type ExtractionResult struct {
	Articles []ArticleExtraction `json:"articles"`
	Usage    BatchUsage          `json:"usage"`
	Skipped  int                 `json:"skipped"`
}
