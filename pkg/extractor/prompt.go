package extractor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an entity extraction engine for crypto and financial news.
For every article you receive, identify the named entities, the article-level
sentiment, and the narrative structure: the single nucleus entity the story is
about, the actors involved with a 1-5 salience rating each, the key actions
taken, and a one-sentence summary.

Respond with JSON only, matching exactly this shape:
{
  "articles": [
    {
      "article_id": "<id as given>",
      "entities": [{"type": "<type>", "value": "<name>", "confidence": 0.0}],
      "sentiment": "positive|neutral|negative",
      "nucleus_entity": "<name>",
      "actors": ["<name>"],
      "actor_salience": {"<name>": 1},
      "key_actions": ["<short verb phrase>"],
      "narrative_summary": "<one sentence>"
    }
  ]
}

Entity types: cryptocurrency, blockchain, protocol, company, organization,
person, location, concept, event. nucleus_entity must be non-empty. Salience
values are integers 1-5. Include every article exactly once.`

const articleDelimiter = "\n---ARTICLE---\n"

// maxTextChars caps article bodies in the prompt to keep batches inside
// the token budget.
const maxTextChars = 4000

// buildBatchPrompt serializes a batch into one prompt with per-article
// delimiters. Article order matches the input.
func buildBatchPrompt(articles []Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract from the following %d article(s).\n", len(articles))
	for _, a := range articles {
		text := a.Text
		if len(text) > maxTextChars {
			text = text[:maxTextChars]
		}
		b.WriteString(articleDelimiter)
		fmt.Fprintf(&b, "id: %s\ntitle: %s\n\n%s\n", a.ID, a.Title, text)
	}
	return b.String()
}
