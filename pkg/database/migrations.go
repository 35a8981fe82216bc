package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes
// that Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
//
// The nucleus index is what makes "one active narrative per nucleus"
// hold: a duplicate CREATE races to a unique violation, which the
// matcher converts into an attach.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS narrative_nucleus_entity_non_archived
		ON narratives (nucleus_entity)
		WHERE lifecycle_state != 'archived'`)
	if err != nil {
		return fmt.Errorf("failed to create narrative nucleus index: %w", err)
	}

	return nil
}

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL (custom SQL
// not handled by the Ent schema). The entities index serves the signal
// scorer's narrative membership join (entity in narrative.entities).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_narratives_entities_gin
		ON narratives USING gin(entities jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create narrative entities GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_narratives_article_ids_gin
		ON narratives USING gin(article_ids jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create narrative article_ids GIN index: %w", err)
	}

	return nil
}
