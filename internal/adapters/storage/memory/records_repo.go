package memory

import (
	"context"
	"sync"

	"pet-grooming-intake/internal/domain/intake"
)

type recordsRepo struct {
	mu   sync.RWMutex
	rows []intake.Record
}

func NewRecordsRepo() intake.Repository {
	return &recordsRepo{}
}

func (r *recordsRepo) Append(ctx context.Context, rec intake.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, rec)
	return nil
}

// List devuelve en orden de inserción (igual que las filas de la planilla).
func (r *recordsRepo) List(ctx context.Context, filter intake.ListFilter) ([]intake.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]intake.Record, 0)
	for _, rec := range r.rows {
		if filter.CustomerNo != "" && rec.CustomerNo != filter.CustomerNo {
			continue
		}
		out = append(out, rec)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}
