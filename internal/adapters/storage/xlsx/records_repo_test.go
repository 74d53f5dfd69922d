package xlsx

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pet-grooming-intake/internal/domain/intake"

	"github.com/xuri/excelize/v2"
)

func sampleRecord(customerNo, dog string) intake.Record {
	return intake.Record{
		RecordedAt:    time.Date(2025, 12, 7, 14, 34, 0, 0, time.Local),
		CustomerNo:    customerNo,
		OwnerName:     "Kim",
		DogName:       dog,
		Breed:         "Poodle",
		Style:         "teddy cut",
		Requirements:  "short ears",
		Notes:         "calm",
		Aftercare:     "brush daily",
		PaymentAmount: 15000,
		PaymentStatus: intake.PaymentPaid.Label(),
		BeforeFile:    "before.jpg",
		AfterFile:     "after.jpg",
	}
}

func TestAppend_CreatesWorkbookWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customer_data.xlsx")
	repo := NewRecordsRepo(path)

	if err := repo.Append(context.Background(), sampleRecord("01012345678", "Mango")); err != nil {
		t.Fatalf("append: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != SheetName {
		t.Fatalf("expected sheet %q, got %q", SheetName, name)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if len(rows[0]) != len(intake.Header) {
		t.Fatalf("expected %d header columns, got %d", len(intake.Header), len(rows[0]))
	}
	for i, h := range intake.Header {
		if rows[0][i] != h {
			t.Fatalf("header col %d: expected %q, got %q", i, h, rows[0][i])
		}
	}
	if rows[1][0] != "2025-12-07 14:34" || rows[1][1] != "01012345678" || rows[1][9] != "15000" {
		t.Fatalf("unexpected row %v", rows[1])
	}
}

func TestAppend_IsAppendOnlyAndListRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	repo := NewRecordsRepo(path)
	ctx := context.Background()

	_ = repo.Append(ctx, sampleRecord("01012345678", "Mango"))
	_ = repo.Append(ctx, sampleRecord("0109999", "Coco"))
	_ = repo.Append(ctx, sampleRecord("01012345678", "Bori"))

	all, err := repo.List(ctx, intake.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
	if all[0].DogName != "Mango" || all[2].DogName != "Bori" {
		t.Fatalf("rows out of order: %+v", all)
	}
	if all[0].PaymentAmount != 15000 || all[0].PaymentStatus != "결제완료" {
		t.Fatalf("unexpected payment fields %+v", all[0])
	}
	if !all[0].RecordedAt.Equal(time.Date(2025, 12, 7, 14, 34, 0, 0, time.Local)) {
		t.Fatalf("unexpected timestamp %v", all[0].RecordedAt)
	}

	mine, _ := repo.List(ctx, intake.ListFilter{CustomerNo: "01012345678", Limit: 1})
	if len(mine) != 1 || mine[0].DogName != "Mango" {
		t.Fatalf("unexpected filtered rows %+v", mine)
	}
}

func TestList_MissingFileIsEmpty(t *testing.T) {
	repo := NewRecordsRepo(filepath.Join(t.TempDir(), "none.xlsx"))
	out, err := repo.List(context.Background(), intake.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list")
	}
}
