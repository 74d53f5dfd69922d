package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-grooming-intake/internal/domain/intake"

	_ "modernc.org/sqlite" // driver SQLite en Go puro
)

// Open abre (o crea) la base y asegura el esquema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite admite un solo escritor.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := InitSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS grooming_records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		recorded_at TEXT NOT NULL,
		customer_no TEXT NOT NULL,
		owner_name TEXT NOT NULL,
		dog_name TEXT NOT NULL,
		breed TEXT NOT NULL,
		style TEXT NOT NULL DEFAULT '',
		requirements TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		aftercare TEXT NOT NULL DEFAULT '',
		payment_amount INTEGER NOT NULL DEFAULT 0,
		payment_status TEXT NOT NULL,
		before_file TEXT NOT NULL,
		after_file TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS grooming_records_customer_idx ON grooming_records (customer_no);
	`)
	return err
}

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Append(ctx context.Context, rec intake.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO grooming_records (
			id, recorded_at,
			customer_no, owner_name, dog_name, breed, style,
			requirements, notes, aftercare,
			payment_amount, payment_status,
			before_file, after_file
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		rec.ID,
		rec.RecordedAt.Format(time.RFC3339),
		rec.CustomerNo,
		rec.OwnerName,
		rec.DogName,
		rec.Breed,
		rec.Style,
		rec.Requirements,
		rec.Notes,
		rec.Aftercare,
		rec.PaymentAmount,
		rec.PaymentStatus,
		rec.BeforeFile,
		rec.AfterFile,
	)
	return err
}

func (r *RecordsRepo) List(ctx context.Context, filter intake.ListFilter) ([]intake.Record, error) {
	query := `
		SELECT
			id, recorded_at,
			customer_no, owner_name, dog_name, breed, style,
			requirements, notes, aftercare,
			payment_amount, payment_status,
			before_file, after_file
		FROM grooming_records
	`
	args := make([]any, 0, 2)
	if no := strings.TrimSpace(filter.CustomerNo); no != "" {
		query += ` WHERE customer_no = ?`
		args = append(args, no)
	}
	query += ` ORDER BY seq ASC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Record, 0)
	for rows.Next() {
		var rec intake.Record
		var recordedAt string
		if err := rows.Scan(
			&rec.ID,
			&recordedAt,
			&rec.CustomerNo,
			&rec.OwnerName,
			&rec.DogName,
			&rec.Breed,
			&rec.Style,
			&rec.Requirements,
			&rec.Notes,
			&rec.Aftercare,
			&rec.PaymentAmount,
			&rec.PaymentStatus,
			&rec.BeforeFile,
			&rec.AfterFile,
		); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, err
		}
		rec.RecordedAt = t
		out = append(out, rec)
	}

	return out, rows.Err()
}
