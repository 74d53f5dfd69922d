package intake_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pet-grooming-intake/internal/adapters/imaging"
	"pet-grooming-intake/internal/adapters/storage/memory"
	"pet-grooming-intake/internal/domain/intake"
)

var fixedNow = time.Date(2025, 12, 7, 14, 34, 0, 0, time.Local)

type failingRepo struct{}

func (failingRepo) Append(context.Context, intake.Record) error {
	return errors.New("disk full")
}

func (failingRepo) List(context.Context, intake.ListFilter) ([]intake.Record, error) {
	return nil, nil
}

func writePhoto(t *testing.T, path string) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for x := 0; x < 8; x++ {
		img.Set(x, 0, color.NRGBA{G: 200, A: 255})
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".png") {
		err = png.Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, nil)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func newService(t *testing.T, repo intake.Repository) (*intake.Service, string, string) {
	t.Helper()

	src := t.TempDir()
	root := filepath.Join(t.TempDir(), "고객사진")

	svc := intake.NewService(repo, imaging.New(), intake.Options{
		OutputRoot: root,
		Breeds:     []string{"Poodle", "Maltese", intake.BreedOther},
	})
	intake.SetNow(svc, func() time.Time { return fixedNow })
	return svc, src, root
}

func kimForm(src string) intake.Form {
	return intake.Form{
		BeforePath:    filepath.Join(src, "before.JPG"),
		AfterPath:     filepath.Join(src, "after.png"),
		DogName:       "Mango",
		OwnerName:     "Kim",
		Customer:      "010-1234-5678",
		Breed:         "Poodle",
		PaymentAmount: "15000",
		PaymentStatus: "pending",
	}
}

func assertEmptyRoot(t *testing.T, root string) {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected nothing under %s, found %d entries", root, len(entries))
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	repo := memory.NewRecordsRepo()
	svc, src, root := newService(t, repo)

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)

	res, err := svc.Submit(context.Background(), f)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if filepath.Base(res.Folder) != "01012345678 - Kim - Mango" {
		t.Fatalf("unexpected folder %q", res.Folder)
	}
	if !filepath.IsAbs(res.Folder) || !strings.HasPrefix(res.Folder, root) {
		t.Fatalf("folder %q must be absolute and under %q", res.Folder, root)
	}

	// before.JPG => JPEG con extensión en minúscula; after.png => PNG.
	if filepath.Ext(res.BeforePath) != ".jpg" || filepath.Ext(res.AfterPath) != ".png" {
		t.Fatalf("unexpected extensions %q %q", res.BeforePath, res.AfterPath)
	}
	for path, format := range map[string]string{res.BeforePath: "jpeg", res.AfterPath: "png"} {
		fh, err := os.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		_, got, err := image.DecodeConfig(fh)
		_ = fh.Close()
		if err != nil || got != format {
			t.Fatalf("expected %s at %s, got %q (%v)", format, path, got, err)
		}
	}

	entries, _ := os.ReadDir(res.Folder)
	if len(entries) != 2 {
		t.Fatalf("expected exactly 2 files (no staging left), got %d", len(entries))
	}

	rows, _ := repo.List(context.Background(), intake.ListFilter{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 logged row, got %d", len(rows))
	}
	row := rows[0]
	if row.ID == "" || row.CustomerNo != "01012345678" || row.PaymentAmount != 15000 {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.PaymentStatus != "입금 전" || row.Breed != "Poodle" {
		t.Fatalf("unexpected row labels %+v", row)
	}
	if row.BeforeFile != filepath.Base(res.BeforePath) || row.AfterFile != filepath.Base(res.AfterPath) {
		t.Fatalf("row filenames must be destination basenames: %+v", row)
	}
	if !row.RecordedAt.Equal(fixedNow) {
		t.Fatalf("unexpected timestamp %v", row.RecordedAt)
	}

	if res.Next.Customer != intake.CustomerPlaceholder || res.Next.Breed != "Poodle" || res.Next.BeforePath != "" {
		t.Fatalf("expected reset form, got %+v", res.Next)
	}
}

func TestSubmit_RejectsBeforeAnyWrite(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *intake.Form)
		want   intake.Reason
	}{
		{"invalid customer", func(f *intake.Form) { f.Customer = "010-12a4" }, intake.ReasonCustomerInvalidChars},
		{"filename too long", func(f *intake.Form) { f.DogName = strings.Repeat("m", 90) }, intake.ReasonFilenameTooLong},
		{"other breed without text", func(f *intake.Form) { f.Breed = intake.BreedOther }, intake.ReasonMissingBreedText},
		{"breed not in list", func(f *intake.Form) { f.Breed = "NotInList" }, intake.ReasonUnknownBreed},
		{"missing photo file", func(f *intake.Form) { f.AfterPath += ".missing.png" }, intake.ReasonPhotoNotFound},
		{"unsupported photo", func(f *intake.Form) { f.AfterPath = strings.TrimSuffix(f.AfterPath, ".png") + ".gif" }, intake.ReasonUnsupportedPhoto},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := memory.NewRecordsRepo()
			svc, src, root := newService(t, repo)

			f := kimForm(src)
			writePhoto(t, f.BeforePath)
			writePhoto(t, f.AfterPath)
			_ = os.WriteFile(filepath.Join(src, "after.gif"), []byte("GIF89a"), 0o644)
			tc.mutate(&f)

			_, err := svc.Submit(context.Background(), f)
			if r, _ := intake.ReasonOf(err); r != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}

			assertEmptyRoot(t, root)
			rows, _ := repo.List(context.Background(), intake.ListFilter{})
			if len(rows) != 0 {
				t.Fatalf("expected no logged rows, got %d", len(rows))
			}
		})
	}
}

func TestSubmit_OtherBreedWithText(t *testing.T) {
	repo := memory.NewRecordsRepo()
	svc, src, _ := newService(t, repo)

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)
	f.Breed = intake.BreedOther
	f.BreedOther = "Bedlington Terrier"

	res, err := svc.Submit(context.Background(), f)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Record.Breed != "Bedlington Terrier" {
		t.Fatalf("expected free-text breed, got %q", res.Record.Breed)
	}
}

func TestSubmit_EmptyBreedUsesFirstListBreed(t *testing.T) {
	repo := memory.NewRecordsRepo()
	svc, src, _ := newService(t, repo)

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)
	f.Breed = "  "

	res, err := svc.Submit(context.Background(), f)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Record.Breed != "Poodle" {
		t.Fatalf("expected first list breed, got %q", res.Record.Breed)
	}
}

func TestSubmit_RejectsWhenPhotoPairExists(t *testing.T) {
	repo := memory.NewRecordsRepo()
	svc, src, _ := newService(t, repo)

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)

	first, err := svc.Submit(context.Background(), f)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	before, _ := os.ReadFile(first.BeforePath)

	// Mismo cliente en el mismo minuto: mismos nombres de destino.
	_, err = svc.Submit(context.Background(), f)
	if r, _ := intake.ReasonOf(err); r != intake.ReasonPhotoExists {
		t.Fatalf("expected %s, got %v", intake.ReasonPhotoExists, err)
	}

	rows, _ := repo.List(context.Background(), intake.ListFilter{})
	if len(rows) != 1 {
		t.Fatalf("expected only the first row, got %d", len(rows))
	}
	entries, _ := os.ReadDir(first.Folder)
	if len(entries) != 2 {
		t.Fatalf("expected the first pair only, got %d entries", len(entries))
	}
	after, _ := os.ReadFile(first.BeforePath)
	if !bytes.Equal(before, after) {
		t.Fatalf("existing photo must not be replaced")
	}
}

func TestSubmit_AppendFailureLeavesNoPhotos(t *testing.T) {
	svc, src, root := newService(t, failingRepo{})

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)

	_, err := svc.Submit(context.Background(), f)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, intake.ErrValidation) {
		t.Fatalf("append failure is not a validation error: %v", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped cause, got %v", err)
	}

	assertEmptyRoot(t, root)
}

func TestSubmit_KeepsExistingFolderOnFailure(t *testing.T) {
	svc, src, root := newService(t, failingRepo{})

	existing := filepath.Join(root, "01012345678 - Kim - Mango")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	old := filepath.Join(existing, "old.jpg")
	_ = os.WriteFile(old, []byte("x"), 0o644)

	f := kimForm(src)
	writePhoto(t, f.BeforePath)
	writePhoto(t, f.AfterPath)

	if _, err := svc.Submit(context.Background(), f); err == nil {
		t.Fatalf("expected error")
	}

	entries, _ := os.ReadDir(existing)
	if len(entries) != 1 || entries[0].Name() != "old.jpg" {
		t.Fatalf("expected only the previous photo to remain, got %v", entries)
	}
}
