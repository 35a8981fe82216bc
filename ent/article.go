// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
)

// Article is the model entity for the Article schema.
type Article struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// UTC; normalized at ingestion
	PublishedAt time.Time `json:"published_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 1=high, 2=medium, 3=low (excluded from scoring)
	RelevanceTier *int `json:"relevance_tier,omitempty"`
	// RelevanceReason holds the value of the "relevance_reason" field.
	RelevanceReason *string `json:"relevance_reason,omitempty"`
	// SentimentLabel holds the value of the "sentiment_label" field.
	SentimentLabel article.SentimentLabel `json:"sentiment_label,omitempty"`
	// Canonical form; cluster key
	NucleusEntity *string `json:"nucleus_entity,omitempty"`
	// Actors holds the value of the "actors" field.
	Actors []string `json:"actors,omitempty"`
	// actor -> salience 1..5
	ActorSalience map[string]int `json:"actor_salience,omitempty"`
	// KeyActions holds the value of the "key_actions" field.
	KeyActions []string `json:"key_actions,omitempty"`
	// NarrativeSummary holds the value of the "narrative_summary" field.
	NarrativeSummary *string `json:"narrative_summary,omitempty"`
	// <extractor version>:<sha256(title+text)>; idempotence key
	NarrativeHash *string `json:"narrative_hash,omitempty"`
	// NarrativeID holds the value of the "narrative_id" field.
	NarrativeID *string `json:"narrative_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArticleQuery when eager-loading is set.
	Edges        ArticleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArticleEdges holds the relations/edges for other nodes in the graph.
type ArticleEdges struct {
	// Mentions holds the value of the mentions edge.
	Mentions []*EntityMention `json:"mentions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MentionsOrErr returns the Mentions value or an error if the edge
// was not loaded in eager-loading.
func (e ArticleEdges) MentionsOrErr() ([]*EntityMention, error) {
	if e.loadedTypes[0] {
		return e.Mentions, nil
	}
	return nil, &NotLoadedError{edge: "mentions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Article) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case article.FieldActors, article.FieldActorSalience, article.FieldKeyActions:
			values[i] = new([]byte)
		case article.FieldRelevanceTier:
			values[i] = new(sql.NullInt64)
		case article.FieldID, article.FieldURL, article.FieldTitle, article.FieldText, article.FieldSource, article.FieldRelevanceReason, article.FieldSentimentLabel, article.FieldNucleusEntity, article.FieldNarrativeSummary, article.FieldNarrativeHash, article.FieldNarrativeID:
			values[i] = new(sql.NullString)
		case article.FieldPublishedAt, article.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Article fields.
func (_m *Article) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case article.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case article.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case article.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case article.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case article.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case article.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = value.Time
			}
		case article.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case article.FieldRelevanceTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_tier", values[i])
			} else if value.Valid {
				_m.RelevanceTier = new(int)
				*_m.RelevanceTier = int(value.Int64)
			}
		case article.FieldRelevanceReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_reason", values[i])
			} else if value.Valid {
				_m.RelevanceReason = new(string)
				*_m.RelevanceReason = value.String
			}
		case article.FieldSentimentLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_label", values[i])
			} else if value.Valid {
				_m.SentimentLabel = article.SentimentLabel(value.String)
			}
		case article.FieldNucleusEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nucleus_entity", values[i])
			} else if value.Valid {
				_m.NucleusEntity = new(string)
				*_m.NucleusEntity = value.String
			}
		case article.FieldActors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Actors); err != nil {
					return fmt.Errorf("unmarshal field actors: %w", err)
				}
			}
		case article.FieldActorSalience:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actor_salience", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActorSalience); err != nil {
					return fmt.Errorf("unmarshal field actor_salience: %w", err)
				}
			}
		case article.FieldKeyActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyActions); err != nil {
					return fmt.Errorf("unmarshal field key_actions: %w", err)
				}
			}
		case article.FieldNarrativeSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_summary", values[i])
			} else if value.Valid {
				_m.NarrativeSummary = new(string)
				*_m.NarrativeSummary = value.String
			}
		case article.FieldNarrativeHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_hash", values[i])
			} else if value.Valid {
				_m.NarrativeHash = new(string)
				*_m.NarrativeHash = value.String
			}
		case article.FieldNarrativeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_id", values[i])
			} else if value.Valid {
				_m.NarrativeID = new(string)
				*_m.NarrativeID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Article.
// This includes values selected through modifiers, order, etc.
func (_m *Article) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMentions queries the "mentions" edge of the Article entity.
func (_m *Article) QueryMentions() *EntityMentionQuery {
	return NewArticleClient(_m.config).QueryMentions(_m)
}

// Update returns a builder for updating this Article.
// Note that you need to call Article.Unwrap() before calling this method if this Article
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Article) Update() *ArticleUpdateOne {
	return NewArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Article entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Article) Unwrap() *Article {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Article is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Article) String() string {
	var builder strings.Builder
	builder.WriteString("Article(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("published_at=")
	builder.WriteString(_m.PublishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RelevanceTier; v != nil {
		builder.WriteString("relevance_tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RelevanceReason; v != nil {
		builder.WriteString("relevance_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sentiment_label=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentLabel))
	builder.WriteString(", ")
	if v := _m.NucleusEntity; v != nil {
		builder.WriteString("nucleus_entity=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("actors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actors))
	builder.WriteString(", ")
	builder.WriteString("actor_salience=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorSalience))
	builder.WriteString(", ")
	builder.WriteString("key_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyActions))
	builder.WriteString(", ")
	if v := _m.NarrativeSummary; v != nil {
		builder.WriteString("narrative_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NarrativeHash; v != nil {
		builder.WriteString("narrative_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NarrativeID; v != nil {
		builder.WriteString("narrative_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Articles is a parsable slice of Article.
type Articles []*Article
