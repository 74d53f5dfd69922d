package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Un solo operador: pocas conexiones alcanzan.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS grooming_records (
	id             UUID PRIMARY KEY,
	seq            BIGSERIAL NOT NULL,
	recorded_at    TIMESTAMPTZ NOT NULL,
	customer_no    TEXT NOT NULL,
	owner_name     TEXT NOT NULL,
	dog_name       TEXT NOT NULL,
	breed          TEXT NOT NULL,
	style          TEXT NOT NULL DEFAULT '',
	requirements   TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	aftercare      TEXT NOT NULL DEFAULT '',
	payment_amount BIGINT NOT NULL DEFAULT 0,
	payment_status TEXT NOT NULL,
	before_file    TEXT NOT NULL,
	after_file     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS grooming_records_customer_idx ON grooming_records (customer_no);
`

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
