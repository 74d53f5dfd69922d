package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-grooming-intake/internal/domain/intake"
)

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
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		rec.ID,
		rec.RecordedAt,
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
		args = append(args, no)
		query += ` WHERE customer_no = $1`
	}
	query += ` ORDER BY seq ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		if len(args) == 2 {
			query += ` LIMIT $2`
		} else {
			query += ` LIMIT $1`
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Record, 0)
	for rows.Next() {
		var rec intake.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.RecordedAt,
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
		out = append(out, rec)
	}

	return out, rows.Err()
}
