package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema DDL, applied idempotently at startup. Balances and supplies use
// BIGINT quantities; the application rejects values that would overflow the
// conservation arithmetic before they reach the database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pbm_types (
		id            BIGSERIAL PRIMARY KEY,
		category      TEXT        NOT NULL,
		settlement_at TIMESTAMPTZ NOT NULL,
		face_value    BIGINT      NOT NULL CHECK (face_value > 0),
		creator       TEXT        NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pbm_balances (
		holder   TEXT   NOT NULL,
		type_id  BIGINT NOT NULL REFERENCES pbm_types (id),
		quantity BIGINT NOT NULL CHECK (quantity >= 0),
		PRIMARY KEY (holder, type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS pbm_supplies (
		type_id     BIGINT PRIMARY KEY REFERENCES pbm_types (id),
		outstanding BIGINT NOT NULL CHECK (outstanding >= 0),
		escrow_in   BIGINT NOT NULL,
		escrow_out  BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pbm_audit_events (
		id             TEXT PRIMARY KEY,
		created_at     TIMESTAMPTZ NOT NULL,
		action         TEXT   NOT NULL,
		actor          TEXT   NOT NULL,
		type_id        BIGINT NOT NULL,
		category       TEXT   NOT NULL,
		target_type_id BIGINT NOT NULL,
		from_identity  TEXT   NOT NULL,
		to_identity    TEXT   NOT NULL,
		quantity       BIGINT NOT NULL,
		reserve_amount BIGINT NOT NULL,
		request_id     TEXT   NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pbm_audit_events_created_at_idx
		ON pbm_audit_events (created_at)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
