// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APICostsColumns holds the columns for the "api_costs" table.
	APICostsColumns = []*schema.Column{
		{Name: "cost_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "operation", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "cache_key", Type: field.TypeString, Nullable: true},
	}
	// APICostsTable holds the schema information for the "api_costs" table.
	APICostsTable = &schema.Table{
		Name:       "api_costs",
		Columns:    APICostsColumns,
		PrimaryKey: []*schema.Column{APICostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apicost_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APICostsColumns[1]},
			},
			{
				Name:    "apicost_operation_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APICostsColumns[2], APICostsColumns[1]},
			},
			{
				Name:    "apicost_model_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APICostsColumns[3], APICostsColumns[1]},
			},
		},
	}
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "article_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "relevance_tier", Type: field.TypeInt, Nullable: true},
		{Name: "relevance_reason", Type: field.TypeString, Nullable: true},
		{Name: "sentiment_label", Type: field.TypeEnum, Nullable: true, Enums: []string{"positive", "neutral", "negative"}},
		{Name: "nucleus_entity", Type: field.TypeString, Nullable: true},
		{Name: "actors", Type: field.TypeJSON, Nullable: true},
		{Name: "actor_salience", Type: field.TypeJSON, Nullable: true},
		{Name: "key_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "narrative_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "narrative_hash", Type: field.TypeString, Nullable: true},
		{Name: "narrative_id", Type: field.TypeString, Nullable: true},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_published_at",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[5]},
			},
			{
				Name:    "article_narrative_id",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[16]},
			},
			{
				Name:    "article_narrative_hash",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[15]},
			},
			{
				Name:    "article_relevance_tier_published_at",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[7], ArticlesColumns[5]},
			},
		},
	}
	// EntityMentionsColumns holds the columns for the "entity_mentions" table.
	EntityMentionsColumns = []*schema.Column{
		{Name: "mention_id", Type: field.TypeString, Unique: true},
		{Name: "entity", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"cryptocurrency", "blockchain", "protocol", "company", "organization", "person", "location", "concept", "event"}},
		{Name: "is_primary", Type: field.TypeBool},
		{Name: "sentiment", Type: field.TypeEnum, Enums: []string{"positive", "neutral", "negative"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "source", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "article_id", Type: field.TypeString},
	}
	// EntityMentionsTable holds the schema information for the "entity_mentions" table.
	EntityMentionsTable = &schema.Table{
		Name:       "entity_mentions",
		Columns:    EntityMentionsColumns,
		PrimaryKey: []*schema.Column{EntityMentionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_mentions_articles_mentions",
				Columns:    []*schema.Column{EntityMentionsColumns[8]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitymention_article_id_entity",
				Unique:  true,
				Columns: []*schema.Column{EntityMentionsColumns[8], EntityMentionsColumns[1]},
			},
			{
				Name:    "entitymention_entity_is_primary_created_at",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[1], EntityMentionsColumns[3], EntityMentionsColumns[7]},
			},
			{
				Name:    "entitymention_article_id",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[8]},
			},
		},
	}
	// NarrativesColumns holds the columns for the "narratives" table.
	NarrativesColumns = []*schema.Column{
		{Name: "narrative_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "theme", Type: field.TypeString, Nullable: true},
		{Name: "nucleus_entity", Type: field.TypeString},
		{Name: "entities", Type: field.TypeJSON},
		{Name: "article_ids", Type: field.TypeJSON},
		{Name: "article_count", Type: field.TypeInt, Default: 0},
		{Name: "fingerprint", Type: field.TypeJSON},
		{Name: "lifecycle_state", Type: field.TypeEnum, Enums: []string{"emerging", "rising", "hot", "mature", "cooling", "dormant", "archived"}, Default: "emerging"},
		{Name: "lifecycle_history", Type: field.TypeJSON},
		{Name: "mention_velocity", Type: field.TypeFloat64, Default: 0},
		{Name: "momentum", Type: field.TypeEnum, Enums: []string{"growing", "stable", "declining", "unknown"}, Default: "unknown"},
		{Name: "recency_score", Type: field.TypeFloat64, Default: 0},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "days_active", Type: field.TypeInt, Default: 0},
		{Name: "reawakening_count", Type: field.TypeInt, Default: 0},
		{Name: "reawakened_from", Type: field.TypeTime, Nullable: true},
		{Name: "resurrection_velocity", Type: field.TypeFloat64, Nullable: true},
		{Name: "peak_activity", Type: field.TypeJSON, Nullable: true},
		{Name: "merged_into", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
	}
	// NarrativesTable holds the schema information for the "narratives" table.
	NarrativesTable = &schema.Table{
		Name:       "narratives",
		Columns:    NarrativesColumns,
		PrimaryKey: []*schema.Column{NarrativesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "narrative_nucleus_entity",
				Unique:  false,
				Columns: []*schema.Column{NarrativesColumns[4]},
			},
			{
				Name:    "narrative_last_updated",
				Unique:  false,
				Columns: []*schema.Column{NarrativesColumns[15]},
			},
			{
				Name:    "narrative_lifecycle_state_last_updated",
				Unique:  false,
				Columns: []*schema.Column{NarrativesColumns[9], NarrativesColumns[15]},
			},
			{
				Name:    "narrative_reawakened_from",
				Unique:  false,
				Columns: []*schema.Column{NarrativesColumns[18]},
			},
		},
	}
	// SignalScoresColumns holds the columns for the "signal_scores" table.
	SignalScoresColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString, Unique: true},
		{Name: "entity", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "score_24h", Type: field.TypeFloat64, Default: 0},
		{Name: "velocity_24h", Type: field.TypeFloat64, Default: 0},
		{Name: "mentions_24h", Type: field.TypeInt, Default: 0},
		{Name: "recency_24h", Type: field.TypeFloat64, Default: 0},
		{Name: "score_7d", Type: field.TypeFloat64, Default: 0},
		{Name: "velocity_7d", Type: field.TypeFloat64, Default: 0},
		{Name: "mentions_7d", Type: field.TypeInt, Default: 0},
		{Name: "recency_7d", Type: field.TypeFloat64, Default: 0},
		{Name: "score_30d", Type: field.TypeFloat64, Default: 0},
		{Name: "velocity_30d", Type: field.TypeFloat64, Default: 0},
		{Name: "mentions_30d", Type: field.TypeInt, Default: 0},
		{Name: "recency_30d", Type: field.TypeFloat64, Default: 0},
		{Name: "sentiment_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "sentiment_min", Type: field.TypeFloat64, Default: 0},
		{Name: "sentiment_max", Type: field.TypeFloat64, Default: 0},
		{Name: "sentiment_divergence", Type: field.TypeFloat64, Default: 0},
		{Name: "source_count", Type: field.TypeInt, Default: 0},
		{Name: "narrative_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "is_emerging", Type: field.TypeBool, Default: false},
	}
	// SignalScoresTable holds the schema information for the "signal_scores" table.
	SignalScoresTable = &schema.Table{
		Name:       "signal_scores",
		Columns:    SignalScoresColumns,
		PrimaryKey: []*schema.Column{SignalScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "signalscore_score_7d",
				Unique:  false,
				Columns: []*schema.Column{SignalScoresColumns[9]},
			},
			{
				Name:    "signalscore_score_24h",
				Unique:  false,
				Columns: []*schema.Column{SignalScoresColumns[5]},
			},
			{
				Name:    "signalscore_entity_type_score_7d",
				Unique:  false,
				Columns: []*schema.Column{SignalScoresColumns[2], SignalScoresColumns[9]},
			},
			{
				Name:    "signalscore_is_emerging",
				Unique:  false,
				Columns: []*schema.Column{SignalScoresColumns[23]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APICostsTable,
		ArticlesTable,
		EntityMentionsTable,
		NarrativesTable,
		SignalScoresTable,
	}
)

func init() {
	EntityMentionsTable.ForeignKeys[0].RefTable = ArticlesTable
}
