// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
)

// EntityMention is the model entity for the EntityMention schema.
type EntityMention struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID string `json:"article_id,omitempty"`
	// Canonical form (normalized before insert)
	Entity string `json:"entity,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType entitymention.EntityType `json:"entity_type,omitempty"`
	// True for cryptocurrency/blockchain/protocol/company/organization
	IsPrimary bool `json:"is_primary,omitempty"`
	// Sentiment holds the value of the "sentiment" field.
	Sentiment entitymention.Sentiment `json:"sentiment,omitempty"`
	// 0..1
	Confidence float64 `json:"confidence,omitempty"`
	// Propagated from article.source
	Source string `json:"source,omitempty"`
	// Equals article.published_at, not insert time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityMentionQuery when eager-loading is set.
	Edges        EntityMentionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityMentionEdges holds the relations/edges for other nodes in the graph.
type EntityMentionEdges struct {
	// Article holds the value of the article edge.
	Article *Article `json:"article,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticleOrErr returns the Article value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityMentionEdges) ArticleOrErr() (*Article, error) {
	if e.Article != nil {
		return e.Article, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "article"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityMention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case entitymention.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entitymention.FieldID, entitymention.FieldArticleID, entitymention.FieldEntity, entitymention.FieldEntityType, entitymention.FieldSentiment, entitymention.FieldSource:
			values[i] = new(sql.NullString)
		case entitymention.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityMention fields.
func (_m *EntityMention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitymention.FieldArticleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = value.String
			}
		case entitymention.FieldEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity", values[i])
			} else if value.Valid {
				_m.Entity = value.String
			}
		case entitymention.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = entitymention.EntityType(value.String)
			}
		case entitymention.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case entitymention.FieldSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment", values[i])
			} else if value.Valid {
				_m.Sentiment = entitymention.Sentiment(value.String)
			}
		case entitymention.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case entitymention.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case entitymention.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityMention.
// This includes values selected through modifiers, order, etc.
func (_m *EntityMention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticle queries the "article" edge of the EntityMention entity.
func (_m *EntityMention) QueryArticle() *ArticleQuery {
	return NewEntityMentionClient(_m.config).QueryArticle(_m)
}

// Update returns a builder for updating this EntityMention.
// Note that you need to call EntityMention.Unwrap() before calling this method if this EntityMention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityMention) Update() *EntityMentionUpdateOne {
	return NewEntityMentionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityMention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityMention) Unwrap() *EntityMention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityMention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityMention) String() string {
	var builder strings.Builder
	builder.WriteString("EntityMention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("article_id=")
	builder.WriteString(_m.ArticleID)
	builder.WriteString(", ")
	builder.WriteString("entity=")
	builder.WriteString(_m.Entity)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sentiment))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityMentions is a parsable slice of EntityMention.
type EntityMentions []*EntityMention
