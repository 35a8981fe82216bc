// Package database provides database client helpers for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/database"
	"github.com/mikechavez/crypto-news-aggregator-sub003/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Auto-migration cannot express the partial unique index or the
	// JSONB GIN indexes; create them the same way production startup does.
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
	return database.NewClientFromEnt(entClient, db)
}
