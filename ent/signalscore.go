// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
)

// SignalScore is the model entity for the SignalScore schema.
type SignalScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Canonical form
	Entity string `json:"entity,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Score24h holds the value of the "score_24h" field.
	Score24h float64 `json:"score_24h,omitempty"`
	// Percent growth; 67.0 means +67%
	Velocity24h float64 `json:"velocity_24h,omitempty"`
	// Mentions24h holds the value of the "mentions_24h" field.
	Mentions24h int `json:"mentions_24h,omitempty"`
	// Recency24h holds the value of the "recency_24h" field.
	Recency24h float64 `json:"recency_24h,omitempty"`
	// Score7d holds the value of the "score_7d" field.
	Score7d float64 `json:"score_7d,omitempty"`
	// Velocity7d holds the value of the "velocity_7d" field.
	Velocity7d float64 `json:"velocity_7d,omitempty"`
	// Mentions7d holds the value of the "mentions_7d" field.
	Mentions7d int `json:"mentions_7d,omitempty"`
	// Recency7d holds the value of the "recency_7d" field.
	Recency7d float64 `json:"recency_7d,omitempty"`
	// Score30d holds the value of the "score_30d" field.
	Score30d float64 `json:"score_30d,omitempty"`
	// Velocity30d holds the value of the "velocity_30d" field.
	Velocity30d float64 `json:"velocity_30d,omitempty"`
	// Mentions30d holds the value of the "mentions_30d" field.
	Mentions30d int `json:"mentions_30d,omitempty"`
	// Recency30d holds the value of the "recency_30d" field.
	Recency30d float64 `json:"recency_30d,omitempty"`
	// SentimentAvg holds the value of the "sentiment_avg" field.
	SentimentAvg float64 `json:"sentiment_avg,omitempty"`
	// SentimentMin holds the value of the "sentiment_min" field.
	SentimentMin float64 `json:"sentiment_min,omitempty"`
	// SentimentMax holds the value of the "sentiment_max" field.
	SentimentMax float64 `json:"sentiment_max,omitempty"`
	// SentimentDivergence holds the value of the "sentiment_divergence" field.
	SentimentDivergence float64 `json:"sentiment_divergence,omitempty"`
	// SourceCount holds the value of the "source_count" field.
	SourceCount int `json:"source_count,omitempty"`
	// NarrativeIds holds the value of the "narrative_ids" field.
	NarrativeIds []string `json:"narrative_ids,omitempty"`
	// True iff no narrative contains the entity and a score exceeds the floor
	IsEmerging   bool `json:"is_emerging,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SignalScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signalscore.FieldNarrativeIds:
			values[i] = new([]byte)
		case signalscore.FieldIsEmerging:
			values[i] = new(sql.NullBool)
		case signalscore.FieldScore24h, signalscore.FieldVelocity24h, signalscore.FieldRecency24h, signalscore.FieldScore7d, signalscore.FieldVelocity7d, signalscore.FieldRecency7d, signalscore.FieldScore30d, signalscore.FieldVelocity30d, signalscore.FieldRecency30d, signalscore.FieldSentimentAvg, signalscore.FieldSentimentMin, signalscore.FieldSentimentMax, signalscore.FieldSentimentDivergence:
			values[i] = new(sql.NullFloat64)
		case signalscore.FieldMentions24h, signalscore.FieldMentions7d, signalscore.FieldMentions30d, signalscore.FieldSourceCount:
			values[i] = new(sql.NullInt64)
		case signalscore.FieldID, signalscore.FieldEntity, signalscore.FieldEntityType:
			values[i] = new(sql.NullString)
		case signalscore.FieldFirstSeen, signalscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SignalScore fields.
func (_m *SignalScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signalscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case signalscore.FieldEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity", values[i])
			} else if value.Valid {
				_m.Entity = value.String
			}
		case signalscore.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case signalscore.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case signalscore.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case signalscore.FieldScore24h:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_24h", values[i])
			} else if value.Valid {
				_m.Score24h = value.Float64
			}
		case signalscore.FieldVelocity24h:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity_24h", values[i])
			} else if value.Valid {
				_m.Velocity24h = value.Float64
			}
		case signalscore.FieldMentions24h:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mentions_24h", values[i])
			} else if value.Valid {
				_m.Mentions24h = int(value.Int64)
			}
		case signalscore.FieldRecency24h:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recency_24h", values[i])
			} else if value.Valid {
				_m.Recency24h = value.Float64
			}
		case signalscore.FieldScore7d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_7d", values[i])
			} else if value.Valid {
				_m.Score7d = value.Float64
			}
		case signalscore.FieldVelocity7d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity_7d", values[i])
			} else if value.Valid {
				_m.Velocity7d = value.Float64
			}
		case signalscore.FieldMentions7d:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mentions_7d", values[i])
			} else if value.Valid {
				_m.Mentions7d = int(value.Int64)
			}
		case signalscore.FieldRecency7d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recency_7d", values[i])
			} else if value.Valid {
				_m.Recency7d = value.Float64
			}
		case signalscore.FieldScore30d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_30d", values[i])
			} else if value.Valid {
				_m.Score30d = value.Float64
			}
		case signalscore.FieldVelocity30d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity_30d", values[i])
			} else if value.Valid {
				_m.Velocity30d = value.Float64
			}
		case signalscore.FieldMentions30d:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mentions_30d", values[i])
			} else if value.Valid {
				_m.Mentions30d = int(value.Int64)
			}
		case signalscore.FieldRecency30d:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recency_30d", values[i])
			} else if value.Valid {
				_m.Recency30d = value.Float64
			}
		case signalscore.FieldSentimentAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_avg", values[i])
			} else if value.Valid {
				_m.SentimentAvg = value.Float64
			}
		case signalscore.FieldSentimentMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_min", values[i])
			} else if value.Valid {
				_m.SentimentMin = value.Float64
			}
		case signalscore.FieldSentimentMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_max", values[i])
			} else if value.Valid {
				_m.SentimentMax = value.Float64
			}
		case signalscore.FieldSentimentDivergence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_divergence", values[i])
			} else if value.Valid {
				_m.SentimentDivergence = value.Float64
			}
		case signalscore.FieldSourceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_count", values[i])
			} else if value.Valid {
				_m.SourceCount = int(value.Int64)
			}
		case signalscore.FieldNarrativeIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NarrativeIds); err != nil {
					return fmt.Errorf("unmarshal field narrative_ids: %w", err)
				}
			}
		case signalscore.FieldIsEmerging:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_emerging", values[i])
			} else if value.Valid {
				_m.IsEmerging = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SignalScore.
// This includes values selected through modifiers, order, etc.
func (_m *SignalScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SignalScore.
// Note that you need to call SignalScore.Unwrap() before calling this method if this SignalScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SignalScore) Update() *SignalScoreUpdateOne {
	return NewSignalScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SignalScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SignalScore) Unwrap() *SignalScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SignalScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SignalScore) String() string {
	var builder strings.Builder
	builder.WriteString("SignalScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity=")
	builder.WriteString(_m.Entity)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("score_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score24h))
	builder.WriteString(", ")
	builder.WriteString("velocity_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.Velocity24h))
	builder.WriteString(", ")
	builder.WriteString("mentions_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mentions24h))
	builder.WriteString(", ")
	builder.WriteString("recency_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recency24h))
	builder.WriteString(", ")
	builder.WriteString("score_7d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score7d))
	builder.WriteString(", ")
	builder.WriteString("velocity_7d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Velocity7d))
	builder.WriteString(", ")
	builder.WriteString("mentions_7d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mentions7d))
	builder.WriteString(", ")
	builder.WriteString("recency_7d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recency7d))
	builder.WriteString(", ")
	builder.WriteString("score_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score30d))
	builder.WriteString(", ")
	builder.WriteString("velocity_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Velocity30d))
	builder.WriteString(", ")
	builder.WriteString("mentions_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mentions30d))
	builder.WriteString(", ")
	builder.WriteString("recency_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recency30d))
	builder.WriteString(", ")
	builder.WriteString("sentiment_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentAvg))
	builder.WriteString(", ")
	builder.WriteString("sentiment_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentMin))
	builder.WriteString(", ")
	builder.WriteString("sentiment_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentMax))
	builder.WriteString(", ")
	builder.WriteString("sentiment_divergence=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentDivergence))
	builder.WriteString(", ")
	builder.WriteString("source_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceCount))
	builder.WriteString(", ")
	builder.WriteString("narrative_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.NarrativeIds))
	builder.WriteString(", ")
	builder.WriteString("is_emerging=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEmerging))
	builder.WriteByte(')')
	return builder.String()
}

// SignalScores is a parsable slice of SignalScore.
type SignalScores []*SignalScore
