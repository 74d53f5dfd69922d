package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"pet-grooming-intake/internal/domain/intake"

	"github.com/xuri/excelize/v2"
)

// SheetName es el nombre de la hoja que se crea con el archivo nuevo.
const SheetName = "고객기록"

// RecordsRepo guarda el registro en un libro .xlsx. Cada Append abre,
// agrega una fila y vuelve a guardar el archivo completo.
type RecordsRepo struct {
	mu   sync.Mutex
	path string
}

func NewRecordsRepo(path string) *RecordsRepo {
	return &RecordsRepo{path: path}
}

func (r *RecordsRepo) Path() string { return r.path }

// Ensure crea el libro con la fila de encabezado si todavía no existe.
func (r *RecordsRepo) Ensure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensure()
}

func (r *RecordsRepo) ensure() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]any, len(intake.Header))
	for i, h := range intake.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return r.save(f)
}

func (r *RecordsRepo) Append(ctx context.Context, rec intake.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensure(); err != nil {
		return err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}

	row := toRow(rec)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return r.save(f)
}

func (r *RecordsRepo) List(ctx context.Context, filter intake.ListFilter) ([]intake.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]intake.Record, 0)
	if _, err := os.Stat(r.path); errors.Is(err, os.ErrNotExist) {
		return out, nil
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		rec, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
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

// save escribe a un temporal en el mismo directorio y renombra,
// para no dejar un libro a medio escribir.
func (r *RecordsRepo) save(f *excelize.File) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".records-*.xlsx")
	if err != nil {
		return err
	}
	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

func toRow(rec intake.Record) []any {
	return []any{
		intake.FormatRecordedAt(rec.RecordedAt),
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
	}
}

func fromRow(row []string) (intake.Record, error) {
	// GetRows recorta celdas vacías al final de la fila.
	cols := make([]string, len(intake.Header))
	copy(cols, row)

	var rec intake.Record
	if strings.TrimSpace(cols[0]) != "" {
		t, err := intake.ParseRecordedAt(cols[0])
		if err != nil {
			return intake.Record{}, fmt.Errorf("timestamp %q: %w", cols[0], err)
		}
		rec.RecordedAt = t
	}

	rec.CustomerNo = cols[1]
	rec.OwnerName = cols[2]
	rec.DogName = cols[3]
	rec.Breed = cols[4]
	rec.Style = cols[5]
	rec.Requirements = cols[6]
	rec.Notes = cols[7]
	rec.Aftercare = cols[8]

	if v := strings.TrimSpace(cols[9]); v != "" {
		n, err := strconv.ParseInt(strings.ReplaceAll(v, ",", ""), 10, 64)
		if err != nil {
			return intake.Record{}, fmt.Errorf("payment amount %q: %w", v, err)
		}
		rec.PaymentAmount = n
	}

	rec.PaymentStatus = cols[10]
	rec.BeforeFile = cols[11]
	rec.AfterFile = cols[12]
	return rec, nil
}
