package memory

import (
	"context"
	"testing"

	"pet-grooming-intake/internal/domain/intake"
)

func TestRecordsRepo_FilterAndLimit(t *testing.T) {
	repo := NewRecordsRepo()
	ctx := context.Background()

	for _, no := range []string{"111", "222", "111", "111"} {
		if err := repo.Append(ctx, intake.Record{CustomerNo: no}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, _ := repo.List(ctx, intake.ListFilter{})
	if len(all) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(all))
	}

	some, _ := repo.List(ctx, intake.ListFilter{CustomerNo: "111", Limit: 2})
	if len(some) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(some))
	}
	for _, r := range some {
		if r.CustomerNo != "111" {
			t.Fatalf("unexpected row %+v", r)
		}
	}
}
