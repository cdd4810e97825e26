package database_test

import (
	"context"
	"testing"

	database "github.com/sebuszqo/FoodManager/db"
	"github.com/sebuszqo/FoodManager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	db := testutil.Postgres(t)
	ctx := context.Background()

	require.NoError(t, database.ApplyMigrations(ctx, db))
	require.NoError(t, database.ApplyMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, database.MigrationCount(), count)

	for _, table := range []string{"users", "ingredient_categories", "ingredients", "user_ingredients",
		"recipe_categories", "recipes", "recipe_ingredients", "carts"} {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}
