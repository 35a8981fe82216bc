// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Narrative is the model entity for the Narrative schema.
type Narrative struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Deprecated: written once at creation, read-only after
	Theme string `json:"theme,omitempty"`
	// Canonical form; mirrors fingerprint.nucleus_entity
	NucleusEntity string `json:"nucleus_entity,omitempty"`
	// Sorted deduped actors across member articles
	Entities []string `json:"entities,omitempty"`
	// ArticleIds holds the value of the "article_ids" field.
	ArticleIds []string `json:"article_ids,omitempty"`
	// ArticleCount holds the value of the "article_count" field.
	ArticleCount int `json:"article_count,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint models.Fingerprint `json:"fingerprint,omitempty"`
	// LifecycleState holds the value of the "lifecycle_state" field.
	LifecycleState narrative.LifecycleState `json:"lifecycle_state,omitempty"`
	// Append-only; last entry state == lifecycle_state
	LifecycleHistory []models.LifecycleEntry `json:"lifecycle_history,omitempty"`
	// Articles/day over the 7-day lookback (denominator = lookback)
	MentionVelocity float64 `json:"mention_velocity,omitempty"`
	// Momentum holds the value of the "momentum" field.
	Momentum narrative.Momentum `json:"momentum,omitempty"`
	// RecencyScore holds the value of the "recency_score" field.
	RecencyScore float64 `json:"recency_score,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// DaysActive holds the value of the "days_active" field.
	DaysActive int `json:"days_active,omitempty"`
	// ReawakeningCount holds the value of the "reawakening_count" field.
	ReawakeningCount int `json:"reawakening_count,omitempty"`
	// Timestamp of the most recent resurrection
	ReawakenedFrom *time.Time `json:"reawakened_from,omitempty"`
	// ResurrectionVelocity holds the value of the "resurrection_velocity" field.
	ResurrectionVelocity *float64 `json:"resurrection_velocity,omitempty"`
	// PeakActivity holds the value of the "peak_activity" field.
	PeakActivity models.PeakActivity `json:"peak_activity,omitempty"`
	// Set when archived by a merge; survivor narrative id
	MergedInto *string `json:"merged_into,omitempty"`
	// Optimistic concurrency token for attach updates
	Version      int `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Narrative) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case narrative.FieldEntities, narrative.FieldArticleIds, narrative.FieldFingerprint, narrative.FieldLifecycleHistory, narrative.FieldPeakActivity:
			values[i] = new([]byte)
		case narrative.FieldMentionVelocity, narrative.FieldRecencyScore, narrative.FieldResurrectionVelocity:
			values[i] = new(sql.NullFloat64)
		case narrative.FieldArticleCount, narrative.FieldDaysActive, narrative.FieldReawakeningCount, narrative.FieldVersion:
			values[i] = new(sql.NullInt64)
		case narrative.FieldID, narrative.FieldTitle, narrative.FieldSummary, narrative.FieldTheme, narrative.FieldNucleusEntity, narrative.FieldLifecycleState, narrative.FieldMomentum, narrative.FieldMergedInto:
			values[i] = new(sql.NullString)
		case narrative.FieldFirstSeen, narrative.FieldLastUpdated, narrative.FieldReawakenedFrom:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Narrative fields.
func (_m *Narrative) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case narrative.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case narrative.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case narrative.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case narrative.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case narrative.FieldNucleusEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nucleus_entity", values[i])
			} else if value.Valid {
				_m.NucleusEntity = value.String
			}
		case narrative.FieldEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entities); err != nil {
					return fmt.Errorf("unmarshal field entities: %w", err)
				}
			}
		case narrative.FieldArticleIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field article_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArticleIds); err != nil {
					return fmt.Errorf("unmarshal field article_ids: %w", err)
				}
			}
		case narrative.FieldArticleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_count", values[i])
			} else if value.Valid {
				_m.ArticleCount = int(value.Int64)
			}
		case narrative.FieldFingerprint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fingerprint); err != nil {
					return fmt.Errorf("unmarshal field fingerprint: %w", err)
				}
			}
		case narrative.FieldLifecycleState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle_state", values[i])
			} else if value.Valid {
				_m.LifecycleState = narrative.LifecycleState(value.String)
			}
		case narrative.FieldLifecycleHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LifecycleHistory); err != nil {
					return fmt.Errorf("unmarshal field lifecycle_history: %w", err)
				}
			}
		case narrative.FieldMentionVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_velocity", values[i])
			} else if value.Valid {
				_m.MentionVelocity = value.Float64
			}
		case narrative.FieldMomentum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field momentum", values[i])
			} else if value.Valid {
				_m.Momentum = narrative.Momentum(value.String)
			}
		case narrative.FieldRecencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recency_score", values[i])
			} else if value.Valid {
				_m.RecencyScore = value.Float64
			}
		case narrative.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case narrative.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		case narrative.FieldDaysActive:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_active", values[i])
			} else if value.Valid {
				_m.DaysActive = int(value.Int64)
			}
		case narrative.FieldReawakeningCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reawakening_count", values[i])
			} else if value.Valid {
				_m.ReawakeningCount = int(value.Int64)
			}
		case narrative.FieldReawakenedFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reawakened_from", values[i])
			} else if value.Valid {
				_m.ReawakenedFrom = new(time.Time)
				*_m.ReawakenedFrom = value.Time
			}
		case narrative.FieldResurrectionVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field resurrection_velocity", values[i])
			} else if value.Valid {
				_m.ResurrectionVelocity = new(float64)
				*_m.ResurrectionVelocity = value.Float64
			}
		case narrative.FieldPeakActivity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field peak_activity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PeakActivity); err != nil {
					return fmt.Errorf("unmarshal field peak_activity: %w", err)
				}
			}
		case narrative.FieldMergedInto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_into", values[i])
			} else if value.Valid {
				_m.MergedInto = new(string)
				*_m.MergedInto = value.String
			}
		case narrative.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Narrative.
// This includes values selected through modifiers, order, etc.
func (_m *Narrative) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Narrative.
// Note that you need to call Narrative.Unwrap() before calling this method if this Narrative
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Narrative) Update() *NarrativeUpdateOne {
	return NewNarrativeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Narrative entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Narrative) Unwrap() *Narrative {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Narrative is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Narrative) String() string {
	var builder strings.Builder
	builder.WriteString("Narrative(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("nucleus_entity=")
	builder.WriteString(_m.NucleusEntity)
	builder.WriteString(", ")
	builder.WriteString("entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entities))
	builder.WriteString(", ")
	builder.WriteString("article_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleIds))
	builder.WriteString(", ")
	builder.WriteString("article_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleCount))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fingerprint))
	builder.WriteString(", ")
	builder.WriteString("lifecycle_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.LifecycleState))
	builder.WriteString(", ")
	builder.WriteString("lifecycle_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.LifecycleHistory))
	builder.WriteString(", ")
	builder.WriteString("mention_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionVelocity))
	builder.WriteString(", ")
	builder.WriteString("momentum=")
	builder.WriteString(fmt.Sprintf("%v", _m.Momentum))
	builder.WriteString(", ")
	builder.WriteString("recency_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecencyScore))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("days_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysActive))
	builder.WriteString(", ")
	builder.WriteString("reawakening_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReawakeningCount))
	builder.WriteString(", ")
	if v := _m.ReawakenedFrom; v != nil {
		builder.WriteString("reawakened_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResurrectionVelocity; v != nil {
		builder.WriteString("resurrection_velocity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("peak_activity=")
	builder.WriteString(fmt.Sprintf("%v", _m.PeakActivity))
	builder.WriteString(", ")
	if v := _m.MergedInto; v != nil {
		builder.WriteString("merged_into=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// Narratives is a parsable slice of Narrative.
type Narratives []*Narrative
