package db

import (
	"database/sql"
	"fmt"
)

// Schema bootstrap executed at process startup, outside the request path.
// The statements are idempotent, so running them on every start is safe.
// Uniqueness of names and the products→categories foreign key are enforced
// here, at the storage layer; request handlers only translate the resulting
// constraint errors.
const schema = `
CREATE TABLE IF NOT EXISTS product_categories (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL UNIQUE,
    description TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id               BIGSERIAL PRIMARY KEY,
    name             VARCHAR(150) NOT NULL UNIQUE,
    description      TEXT,
    price            NUMERIC(12,2) NOT NULL,
    image_url        VARCHAR(500),
    preparation_time INTEGER NOT NULL,
    category_id      BIGINT NOT NULL REFERENCES product_categories(id) ON DELETE RESTRICT,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id);
`

// Migrate provisions the schema.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}
