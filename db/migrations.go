package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  username VARCHAR(150) NOT NULL UNIQUE,
  email VARCHAR(254) NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  is_staff BOOLEAN NOT NULL DEFAULT FALSE,
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`,
	},
	{
		version: 2,
		name:    "ingredients",
		sql: `
CREATE TABLE IF NOT EXISTS ingredient_categories (
  id BIGSERIAL PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  slug VARCHAR(255) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_ingredient_categories_title ON ingredient_categories(title);

CREATE TABLE IF NOT EXISTS ingredients (
  id BIGSERIAL PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  category_id BIGINT NOT NULL,
  CONSTRAINT ingredients_category_id_fkey FOREIGN KEY (category_id)
    REFERENCES ingredient_categories(id) ON DELETE RESTRICT
);
CREATE INDEX IF NOT EXISTS idx_ingredients_title ON ingredients(title);
CREATE INDEX IF NOT EXISTS idx_ingredients_category_id ON ingredients(category_id);
`,
	},
	{
		version: 3,
		name:    "user_ingredients",
		sql: `
CREATE TABLE IF NOT EXISTS user_ingredients (
  id BIGSERIAL PRIMARY KEY,
  user_id UUID NOT NULL,
  ingredient_id BIGINT NOT NULL,
  quantity NUMERIC(5,1) NOT NULL CHECK (quantity >= 0),
  start_date DATE,
  end_date DATE,
  memo TEXT NOT NULL DEFAULT '',
  CONSTRAINT user_ingredients_user_id_fkey FOREIGN KEY (user_id)
    REFERENCES users(id) ON DELETE CASCADE,
  CONSTRAINT user_ingredients_ingredient_id_fkey FOREIGN KEY (ingredient_id)
    REFERENCES ingredients(id) ON DELETE CASCADE,
  CONSTRAINT user_ingredients_user_ingredient_key UNIQUE (user_id, ingredient_id),
  CONSTRAINT user_ingredients_dates_check CHECK (start_date IS NULL OR end_date IS NULL OR start_date <= end_date)
);
`,
	},
	{
		version: 4,
		name:    "recipes",
		sql: `
CREATE TABLE IF NOT EXISTS recipe_categories (
  id BIGSERIAL PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  slug VARCHAR(255) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_recipe_categories_title ON recipe_categories(title);

CREATE TABLE IF NOT EXISTS recipes (
  id BIGSERIAL PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  code INTEGER NOT NULL,
  category_id BIGINT NOT NULL,
  CONSTRAINT recipes_code_key UNIQUE (code),
  CONSTRAINT recipes_category_id_fkey FOREIGN KEY (category_id)
    REFERENCES recipe_categories(id) ON DELETE RESTRICT
);
CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
  id BIGSERIAL PRIMARY KEY,
  recipe_id BIGINT NOT NULL,
  ingredient_id BIGINT NOT NULL,
  CONSTRAINT recipe_ingredients_recipe_id_fkey FOREIGN KEY (recipe_id)
    REFERENCES recipes(id) ON DELETE CASCADE,
  CONSTRAINT recipe_ingredients_ingredient_id_fkey FOREIGN KEY (ingredient_id)
    REFERENCES ingredients(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe_id ON recipe_ingredients(recipe_id);
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_ingredient_id ON recipe_ingredients(ingredient_id);
`,
	},
	{
		version: 5,
		name:    "carts",
		sql: `
CREATE TABLE IF NOT EXISTS carts (
  id BIGSERIAL PRIMARY KEY,
  user_id UUID NOT NULL,
  ingredient_id BIGINT NOT NULL,
  buy BOOLEAN NOT NULL DEFAULT FALSE,
  CONSTRAINT carts_user_id_fkey FOREIGN KEY (user_id)
    REFERENCES users(id) ON DELETE CASCADE,
  CONSTRAINT carts_ingredient_id_fkey FOREIGN KEY (ingredient_id)
    REFERENCES ingredients(id) ON DELETE CASCADE,
  CONSTRAINT carts_user_ingredient_key UNIQUE (user_id, ingredient_id)
);
`,
	},
}

// MigrationCount is the number of versions ApplyMigrations records.
func MigrationCount() int {
	return len(migrations)
}

// ApplyMigrations runs every migration not yet recorded in schema_migrations,
// each inside its own transaction. Running it again is a no-op.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE version = $1`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, name) VALUES($1, $2)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}
