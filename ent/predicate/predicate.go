// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APICost is the predicate function for apicost builders.
type APICost func(*sql.Selector)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// EntityMention is the predicate function for entitymention builders.
type EntityMention func(*sql.Selector)

// Narrative is the predicate function for narrative builders.
type Narrative func(*sql.Selector)

// SignalScore is the predicate function for signalscore builders.
type SignalScore func(*sql.Selector)
